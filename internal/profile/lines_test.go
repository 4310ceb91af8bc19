package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDelimited_Testimonials(t *testing.T) {
	raw := "Rahul S. | Best service ever!\nBadLineNoDelimiter\nAnjali P. | Highly professional."

	records, skipped := ParseDelimited(raw, TestimonialSeparator)

	require.Equal(t, 1, skipped)
	require.Equal(t, []Pair{
		{First: "Rahul S.", Second: "Best service ever!"},
		{First: "Anjali P.", Second: "Highly professional."},
	}, records)
}

func TestParseDelimited_FAQ(t *testing.T) {
	records, skipped := ParseDelimited("Is it 24/7 ? Yes, we operate 24/7.", FAQSeparator)

	require.Zero(t, skipped)
	require.Len(t, records, 1)
	require.Equal(t, "Is it 24/7", records[0].First)
	require.Equal(t, "Yes, we operate 24/7.", records[0].Second)
}

func TestParseDelimited_SplitsAtFirstSeparator(t *testing.T) {
	records, _ := ParseDelimited("Do you deliver? Yes? Within the city.", FAQSeparator)
	require.Equal(t, []Pair{{First: "Do you deliver", Second: "Yes? Within the city."}}, records)
}

func TestParseDelimited_BlankLinesAreNotMalformed(t *testing.T) {
	records, skipped := ParseDelimited("\r\n  \nA | B\r\n\n", TestimonialSeparator)
	require.Zero(t, skipped)
	require.Len(t, records, 1)
}

func TestParseLines(t *testing.T) {
	require.Equal(t, []string{"AC Repair", "Oven Service"}, ParseLines(" AC Repair \n\nOven Service\n"))
	require.Nil(t, ParseLines(""))
}
