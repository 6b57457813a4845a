package bazel

// The msbuild aspect attaches to each target and writes a .msbuild info
// file next to the target's outputs under bazel-bin. Its repository is
// shipped alongside the tool and injected by override so no workspace
// edits are required.
const (
	aspectFlag       = "--aspects=@bazel-msbuild//bazel-msbuild:msbuild.bzl%msbuild_aspect"
	aspectOutputFlag = "--output_groups=msbuild_outputs"
)

// BuildAspect builds targets with the msbuild aspect applied, so that
// each target materializes its info file. Build progress streams to the
// caller's terminal.
func (r *Runner) BuildAspect(aspectDir string, targets []string) error {
	args := []string{
		"build",
		"--override_repository=bazel-msbuild=" + aspectDir,
		aspectFlag,
		aspectOutputFlag,
	}
	args = append(args, targets...)
	return r.runThrough(args...)
}
