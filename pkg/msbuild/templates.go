package msbuild

import (
	_ "embed"
	"text/template"
)

// The templates carry the fixed MSBuild and solution markup; every
// substituted value is pre-rendered XML or escaped text, so no template
// escaping is involved.

//go:embed templates/vcxproj.xml
var vcxprojText string

//go:embed templates/vcxproj.filters.xml
var filtersText string

//go:embed templates/solution.sln
var solutionText string

var (
	vcxprojTemplate  = template.Must(template.New("vcxproj").Parse(vcxprojText))
	filtersTemplate  = template.Must(template.New("filters").Parse(filtersText))
	solutionTemplate = template.Must(template.New("solution").Parse(solutionText))
)

type vcxprojData struct {
	Name               string
	Guid               string
	Target             string
	BazelPath          string
	ProjectConfigs     string
	ConfigProperties   string
	NMakeOutput        string
	TargetNameExt      string
	DefinesJoined      string
	IncludeDirsJoined  string
	CompileFlagsJoined string
	FileGroups         string
}

type filtersData struct {
	FilterItems string
	FileGroups  string
}

type solutionData struct {
	Projects    string
	Cfgs        string
	ProjectCfgs string
	Guid        string
}
