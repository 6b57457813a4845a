// Package msbuild renders Visual Studio project, filter, and solution
// documents from bazel target info.
package msbuild

// ProjectTypeGUID identifies Visual C++ projects inside solution files.
const ProjectTypeGUID = "{8BC9CEB8-8B4A-11D0-8D11-00A0C91BC942}"

// BuildConfig pairs an MSBuild configuration name with the bazel
// compilation mode that implements it.
type BuildConfig struct {
	MSBuildName string `toml:"msbuild"`
	BazelName   string `toml:"bazel"`
}

// PlatformConfig pairs an MSBuild platform with a bazel cpu value.
type PlatformConfig struct {
	MSBuildName string `toml:"msbuild"`
	BazelName   string `toml:"bazel"`
}

// Matrix is the build configuration × platform cross product shared by
// every document in one run. Read-only after construction.
type Matrix struct {
	BuildConfigs []BuildConfig
	Platforms    []PlatformConfig
	// UserConfigs are extra --config names baked into every generated
	// bazel command line.
	UserConfigs []string
}

// DefaultMatrix returns the stock Fastbuild/Debug/Release × x64 matrix.
func DefaultMatrix() *Matrix {
	return &Matrix{
		BuildConfigs: []BuildConfig{
			{MSBuildName: "Fastbuild", BazelName: "fastbuild"},
			{MSBuildName: "Debug", BazelName: "dbg"},
			{MSBuildName: "Release", BazelName: "opt"},
		},
		Platforms: []PlatformConfig{
			{MSBuildName: "x64", BazelName: "x64_windows"},
		},
	}
}

// DefaultCfgDirname is the bazel output directory fragment the aspect
// reports include paths under. Occurrences inside include paths are
// rewritten to $(BazelCfgDirname) so every configuration resolves its own
// tree.
func (m *Matrix) DefaultCfgDirname() string {
	return m.Platforms[0].BazelName + "-" + m.BuildConfigs[0].BazelName
}
