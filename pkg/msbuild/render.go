package msbuild

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/odvcencio/bazelvs/pkg/guid"
	"github.com/odvcencio/bazelvs/pkg/project"
)

// Renderer combines one run's configuration matrix and workspace paths
// and turns target info into documents.
type Renderer struct {
	Matrix *Matrix
	// Workspace is the bazel workspace root; generated file references
	// are absolute under it.
	Workspace string
	// Out is bazel's output_path, used for NMakeOutput locations.
	Out string
	// BazelPath is the bazel executable embedded into generated build
	// command lines.
	BazelPath string
}

func NewRenderer(m *Matrix, workspace, out, bazelPath string) *Renderer {
	return &Renderer{Matrix: m, Workspace: workspace, Out: out, BazelPath: bazelPath}
}

// RenderProject renders the .vcxproj document for one target. Files are
// listed flat; hierarchy lives in the filters document.
func (r *Renderer) RenderProject(info *project.Info) (string, error) {
	groups, _ := r.fileGroups(info, Flat)
	data := vcxprojData{
		Name:               info.Label.Name,
		Guid:               info.GUID,
		Target:             info.Label.Absolute(),
		BazelPath:          r.BazelPath,
		ProjectConfigs:     r.projectConfigs(),
		ConfigProperties:   r.configProperties(),
		NMakeOutput:        r.nmakeOutput(info),
		TargetNameExt:      targetNameExt(info),
		DefinesJoined:      xmlEscape(info.DefinesJoined()),
		IncludeDirsJoined:  xmlEscape(r.includeDirsJoined(info)),
		CompileFlagsJoined: xmlEscape(info.CompileFlagsJoined()),
		FileGroups:         groups,
	}
	var b strings.Builder
	if err := vcxprojTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderFilters renders the .vcxproj.filters document paired with a
// project: every filter in use with its deterministic identifier, plus
// each grouped file tagged with its filter.
func (r *Renderer) RenderFilters(info *project.Info) (string, error) {
	groups, filters := r.fileGroups(info, Grouped)
	data := filtersData{
		FilterItems: filterItems(filters),
		FileGroups:  groups,
	}
	var b strings.Builder
	if err := filtersTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RenderSolution renders the .sln document referencing every generated
// project.
func (r *Renderer) RenderSolution(name string, infos []*project.Info) (string, error) {
	data := solutionData{
		Projects:    slnProjects(infos),
		Cfgs:        r.slnConfigs(),
		ProjectCfgs: r.slnProjectConfigs(infos),
		Guid:        guid.FromString(name + ".sln"),
	}
	var b strings.Builder
	if err := solutionTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// projectConfigs builds the <ProjectConfiguration> enumeration items.
func (r *Renderer) projectConfigs() string {
	var b strings.Builder
	for _, bc := range r.Matrix.BuildConfigs {
		for _, p := range r.Matrix.Platforms {
			fmt.Fprintf(&b, "\n    <ProjectConfiguration Include=\"%[1]s|%[2]s\">"+
				"\n      <Configuration>%[1]s</Configuration>"+
				"\n      <Platform>%[2]s</Platform>"+
				"\n    </ProjectConfiguration>",
				bc.MSBuildName, p.MSBuildName)
		}
	}
	return b.String()
}

// configProperties builds one property group per (configuration,
// platform) pair, carrying the bazel options and output directory
// fragment that implement it.
func (r *Renderer) configProperties() string {
	var userCfg strings.Builder
	for _, name := range r.Matrix.UserConfigs {
		userCfg.WriteString(" --config=" + name)
	}
	props := make([]string, 0, len(r.Matrix.BuildConfigs)*len(r.Matrix.Platforms))
	for _, bc := range r.Matrix.BuildConfigs {
		for _, p := range r.Matrix.Platforms {
			props = append(props, fmt.Sprintf(
				"  <PropertyGroup Condition=\"'$(Configuration)|$(Platform)'=='%s|%s'\">"+
					"\n    <BazelCfgOpts>-c %s%s</BazelCfgOpts>"+
					"\n    <BazelCfgDirname>%s-%s</BazelCfgDirname>"+
					"\n  </PropertyGroup>",
				bc.MSBuildName, p.MSBuildName,
				bc.BazelName, userCfg.String(),
				p.BazelName, bc.BazelName))
		}
	}
	return strings.Join(props, "\n")
}

// nmakeOutput points the debugger at the target's primary build artifact.
// Empty when the target declares no outputs.
func (r *Renderer) nmakeOutput(info *project.Info) string {
	if info.Output == nil {
		return ""
	}
	out := strings.Join([]string{
		winPath(r.Out),
		"$(BazelCfgDirname)",
		"bin",
		winPath(info.Label.PackagePath()),
		info.Output.Basename,
	}, FilterDelim)
	return "<NMakeOutput>" + xmlEscape(out) + "</NMakeOutput>"
}

// targetNameExt splits the primary output's basename into TargetName and
// TargetExt on the last dot. Empty when the target declares no outputs.
func targetNameExt(info *project.Info) string {
	if info.Output == nil {
		return ""
	}
	name := info.Output.Basename
	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		name, ext = name[:i], name[i+1:]
	}
	return fmt.Sprintf("<TargetName>%s</TargetName><TargetExt>%s</TargetExt>",
		xmlEscape(name), xmlEscape(ext))
}

// fileGroups builds the source and header item groups. In Grouped mode it
// also returns the accumulated filter set; in Flat mode the set is nil.
func (r *Renderer) fileGroups(info *project.Info, mode GroupingMode) (string, *FilterSet) {
	var filters *FilterSet
	if mode == Grouped {
		filters = NewFilterSet()
	}
	groups := r.itemGroup(info, mode, filters, info.Srcs, "ClCompile") +
		r.itemGroup(info, mode, filters, info.Hdrs, "ClInclude")
	return groups, filters
}

func (r *Renderer) itemGroup(info *project.Info, mode GroupingMode, filters *FilterSet, files []string, tag string) string {
	if len(files) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  <ItemGroup>")
	for _, file := range files {
		item := r.fileItem(info, mode, filters, file, tag)
		if item == "" {
			continue
		}
		b.WriteString("\n    " + item)
	}
	b.WriteString("\n  </ItemGroup>")
	return b.String()
}

// fileItem renders one file reference. In Grouped mode, files living
// directly in the package directory are omitted: they sit at the project
// root and need no entry in the filters document.
func (r *Renderer) fileItem(info *project.Info, mode GroupingMode, filters *FilterSet, file, tag string) string {
	filterTag := ""
	if mode == Grouped {
		name := fileFilter(info.Label.PackagePath(), file)
		if name == "" {
			return ""
		}
		filters.Add(name)
		filterTag = "<Filter>" + xmlEscape(name) + "</Filter>"
	}
	full := filepath.Join(r.Workspace, filepath.FromSlash(file))
	return fmt.Sprintf("<%[1]s Include=\"%[2]s\">%[3]s</%[1]s>", tag, xmlEscape(full), filterTag)
}

// filterItems enumerates every registered filter with its deterministic
// identifier.
func filterItems(filters *FilterSet) string {
	items := make([]string, 0, len(filters.Names()))
	for _, name := range filters.Names() {
		items = append(items, fmt.Sprintf(
			"\n    <Filter Include=\"%s\">"+
				"\n      <UniqueIdentifier>%s</UniqueIdentifier>"+
				"\n    </Filter>",
			xmlEscape(name), guid.FromString(name)))
	}
	return strings.Join(items, "")
}

// includeDirsJoined rewrites and joins every include directory for the
// NMakeIncludeSearchPath property.
func (r *Renderer) includeDirsJoined(info *project.Info) string {
	dirs := info.IncludeDirs()
	rewritten := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		rewritten = append(rewritten, r.rewriteIncludePath(dir))
	}
	return strings.Join(rewritten, ";")
}

// rewriteIncludePath anchors an aspect-reported include directory under
// the workspace root and swaps the default configuration directory node
// for $(BazelCfgDirname), so each build configuration searches its own
// output tree.
func (r *Renderer) rewriteIncludePath(dir string) string {
	nodes := strings.Split(strings.ReplaceAll(dir, `\`, "/"), "/")
	for i, node := range nodes {
		if node == r.Matrix.DefaultCfgDirname() {
			nodes[i] = "$(BazelCfgDirname)"
		}
	}
	return filepath.Join(append([]string{r.Workspace}, nodes...)...)
}

func slnProjects(infos []*project.Info) string {
	lines := make([]string, 0, len(infos))
	for _, info := range infos {
		lines = append(lines, fmt.Sprintf(
			"Project(\"%s\") = \"%s\", \"%s%s%s.vcxproj\", \"%s\"\nEndProject",
			ProjectTypeGUID, info.Label.Name,
			winPath(info.Label.Package), FilterDelim, info.Label.Name,
			info.GUID))
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) slnConfigs() string {
	var lines []string
	for _, bc := range r.Matrix.BuildConfigs {
		for _, p := range r.Matrix.Platforms {
			lines = append(lines, fmt.Sprintf("%[1]s|%[2]s = %[1]s|%[2]s",
				bc.MSBuildName, p.MSBuildName))
		}
	}
	return strings.Join(lines, "\n\t\t")
}

// slnProjectConfigs builds the configuration × platform × project
// activation matrix.
func (r *Renderer) slnProjectConfigs(infos []*project.Info) string {
	var lines []string
	for _, bc := range r.Matrix.BuildConfigs {
		for _, p := range r.Matrix.Platforms {
			for _, info := range infos {
				lines = append(lines,
					fmt.Sprintf("%[1]s.%[2]s|%[3]s.ActiveCfg = %[2]s|%[3]s",
						info.GUID, bc.MSBuildName, p.MSBuildName),
					fmt.Sprintf("%[1]s.%[2]s|%[3]s.Build.0 = %[2]s|%[3]s",
						info.GUID, bc.MSBuildName, p.MSBuildName))
			}
		}
	}
	return strings.Join(lines, "\n\t\t")
}

// winPath converts a slash-separated path to backslash separators for use
// inside generated documents.
func winPath(p string) string {
	return strings.ReplaceAll(p, "/", FilterDelim)
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlEscaper.Replace(s)
}
