package render

import "git.home.luguber.info/inful/localsite/internal/profile"

func businessName(p *profile.BusinessProfile) string {
	return orDefault(p.Name, "This business")
}

func defaultAbout(p *profile.BusinessProfile) string {
	about := businessName(p) + " is a local business"
	if p.Category != "" {
		about = businessName(p) + " is a local " + p.Category
	}
	if p.City != "" {
		about += " serving " + p.City
	}
	return about + "."
}

func defaultPrivacy(p *profile.BusinessProfile) string {
	return businessName(p) + " only uses the contact details you share with us to respond to your enquiry. " +
		"We do not sell or share personal information with third parties."
}

func defaultTerms(p *profile.BusinessProfile) string {
	return "The information on this website is provided by " + businessName(p) + " for general guidance. " +
		"Prices and availability are confirmed when you contact us."
}
