package gen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/odvcencio/bazelvs/pkg/msbuild"
)

// ConfigFile is the optional per-workspace configuration file name.
const ConfigFile = "bazelvs.toml"

// FileConfig is the decoded bazelvs.toml. Every field is optional;
// command line flags win over file values, which win over the built-in
// defaults.
type FileConfig struct {
	// Solution overrides the solution name.
	Solution string `toml:"solution"`
	// Kinds overrides the rule kinds that get a project generated.
	Kinds []string `toml:"kinds"`
	// Configs are extra bazel --config names for generated build lines.
	Configs []string `toml:"configs"`
	// BuildConfigs overrides the configuration list.
	BuildConfigs []msbuild.BuildConfig `toml:"build_config"`
	// Platforms overrides the platform list.
	Platforms []msbuild.PlatformConfig `toml:"platform"`
}

// LoadFileConfig reads bazelvs.toml from dir. A missing file is not an
// error and yields the zero config.
func LoadFileConfig(dir string) (FileConfig, error) {
	var cfg FileConfig
	_, err := toml.DecodeFile(filepath.Join(dir, ConfigFile), &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return FileConfig{}, nil
	}
	if err != nil {
		return FileConfig{}, fmt.Errorf("%s: %w", ConfigFile, err)
	}
	return cfg, nil
}

// apply fills unset options from the file config.
func (c FileConfig) apply(opts *Options) {
	if opts.SolutionName == "" {
		opts.SolutionName = c.Solution
	}
	if len(opts.Kinds) == 0 {
		opts.Kinds = c.Kinds
	}
	opts.UserConfigs = append(opts.UserConfigs, c.Configs...)
}

// matrix builds the run's configuration matrix from the file config,
// falling back to the defaults for any list it leaves empty.
func (c FileConfig) matrix(userConfigs []string) *msbuild.Matrix {
	m := msbuild.DefaultMatrix()
	if len(c.BuildConfigs) > 0 {
		m.BuildConfigs = c.BuildConfigs
	}
	if len(c.Platforms) > 0 {
		m.Platforms = c.Platforms
	}
	m.UserConfigs = userConfigs
	return m
}
