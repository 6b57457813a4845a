// Package gen drives one full generation run: resolve targets, build the
// msbuild aspect, load each target's info, and write the project,
// filters, and solution documents.
//
// The run is synchronous and all-or-nothing: the first failing target
// aborts it, and partially written output is left in place.
package gen

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/odvcencio/bazelvs/pkg/bazel"
	"github.com/odvcencio/bazelvs/pkg/label"
	"github.com/odvcencio/bazelvs/pkg/msbuild"
	"github.com/odvcencio/bazelvs/pkg/project"
)

// DefaultKinds are the rule kinds that get a project generated when
// neither the command line nor bazelvs.toml overrides them.
var DefaultKinds = []string{"cc_library", "cc_inc_library", "cc_binary", "cc_test"}

// Options configures one generation run.
type Options struct {
	// Queries are bazel query patterns selecting targets; empty means
	// every target in the workspace.
	Queries []string
	// OutputDir receives the generated documents, one subdirectory per
	// package.
	OutputDir string
	// SolutionName names the .sln file; defaults to the workspace
	// directory name.
	SolutionName string
	// UserConfigs are extra bazel --config names baked into generated
	// build command lines.
	UserConfigs []string
	// Kinds overrides DefaultKinds.
	Kinds []string
	// BazelPath overrides the bazel executable.
	BazelPath string
	// AspectDir overrides the location of the bazel-msbuild aspect
	// repository; defaults to the "bazel" directory next to the
	// executable.
	AspectDir string
}

// Run executes one full generation.
func Run(opts Options) error {
	runner := bazel.NewRunner(opts.BazelPath, "")
	info, err := runner.Info()
	if err != nil {
		return err
	}

	fileCfg, err := LoadFileConfig(info.Workspace)
	if err != nil {
		return err
	}
	fileCfg.apply(&opts)

	if opts.SolutionName == "" {
		opts.SolutionName = filepath.Base(info.Workspace)
	}
	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = DefaultKinds
	}
	kindSet := make(map[string]bool, len(kinds))
	for _, k := range kinds {
		kindSet[k] = true
	}

	targets, err := runner.QueryTargets(opts.Queries, kindSet)
	if err != nil {
		return err
	}
	log.Debugf("resolved %d targets", len(targets))

	aspectDir := opts.AspectDir
	if aspectDir == "" {
		aspectDir = defaultAspectDir()
	}
	if err := runner.BuildAspect(aspectDir, targets); err != nil {
		return err
	}

	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return err
	}
	renderer := msbuild.NewRenderer(fileCfg.matrix(opts.UserConfigs),
		info.Workspace, info.Out, runner.Path())

	infos := make([]*project.Info, 0, len(targets))
	for _, target := range targets {
		l, err := label.Parse(target)
		if err != nil {
			return err
		}
		pi, err := project.Load(info.Bin, l)
		if err != nil {
			return err
		}
		infos = append(infos, pi)
		if err := writeProject(renderer, outputDir, pi); err != nil {
			return err
		}
	}
	return writeSolution(renderer, outputDir, opts.SolutionName, infos)
}

// writeProject writes the .vcxproj and .vcxproj.filters pair for one
// target under the output directory, mirroring the package path.
func writeProject(r *msbuild.Renderer, outputDir string, pi *project.Info) error {
	dir := filepath.Join(outputDir, filepath.FromSlash(pi.Label.Package))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	content, err := r.RenderProject(pi)
	if err != nil {
		return fmt.Errorf("render project for %s: %w", pi.Label, err)
	}
	if err := writeFile(filepath.Join(dir, pi.Label.Name+".vcxproj"), content); err != nil {
		return err
	}

	filters, err := r.RenderFilters(pi)
	if err != nil {
		return fmt.Errorf("render filters for %s: %w", pi.Label, err)
	}
	return writeFile(filepath.Join(dir, pi.Label.Name+".vcxproj.filters"), filters)
}

func writeSolution(r *msbuild.Renderer, outputDir, name string, infos []*project.Info) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", outputDir, err)
	}
	content, err := r.RenderSolution(name, infos)
	if err != nil {
		return fmt.Errorf("render solution: %w", err)
	}
	return writeFile(filepath.Join(outputDir, name+".sln"), content)
}

func writeFile(name, content string) error {
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	log.Infof("wrote %s", name)
	return nil
}

// defaultAspectDir locates the aspect repository shipped next to the
// installed binary.
func defaultAspectDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "bazel"
	}
	return filepath.Join(filepath.Dir(exe), "bazel")
}
