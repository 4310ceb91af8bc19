package generator

// StageName is a strongly-typed identifier for a generation stage.
type StageName string

// Canonical stage names, in execution order.
const (
	StageValidateProfile StageName = "validate_profile"
	StageRenderPages     StageName = "render_pages"
	StageVerifyLinks     StageName = "verify_links"
	StageBuildAncillary  StageName = "build_ancillary"
	StagePackageArchive  StageName = "package_archive"
)

// StageDef pairs a stage name with its executing function.
type StageDef struct {
	Name StageName
	Fn   Stage
}

func pipeline() []StageDef {
	return []StageDef{
		{StageValidateProfile, stageValidateProfile},
		{StageRenderPages, stageRenderPages},
		{StageVerifyLinks, stageVerifyLinks},
		{StageBuildAncillary, stageBuildAncillary},
		{StagePackageArchive, stagePackageArchive},
	}
}
