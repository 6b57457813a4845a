// Package project loads the per-target info records written by the
// msbuild aspect and exposes them as a normalized model.
package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/odvcencio/bazelvs/pkg/guid"
	"github.com/odvcencio/bazelvs/pkg/label"
)

// ErrInfoNotFound reports a missing info file. The aspect build runs
// immediately before loading, so this usually means a stale output tree
// or version skew, not bad input.
var ErrInfoNotFound = errors.New("target info file not found")

// ErrInfoMalformed reports an info file whose shape does not match the
// aspect's schema. The schema is a versioned contract; drift fails loudly
// instead of being guessed around.
var ErrInfoMalformed = errors.New("target info file malformed")

// infoFile is the on-disk schema of a .msbuild record. Required sections
// are pointers so absence can be told apart from emptiness.
type infoFile struct {
	Kind   *string        `json:"kind"`
	Files  *fileLists     `json:"files"`
	Target *targetSection `json:"target"`
	CC     *CCInfo        `json:"cc"`
}

type fileLists struct {
	Srcs []string `json:"srcs"`
	Hdrs []string `json:"hdrs"`
}

type targetSection struct {
	Files []string `json:"files"`
}

// CCInfo carries the compiler-specific fields present on cc_* rules.
// All lists keep the aspect's ordering.
type CCInfo struct {
	CompileFlags      []string `json:"compile_flags"`
	Defines           []string `json:"defines"`
	IncludeDirs       []string `json:"include_dirs"`
	SystemIncludeDirs []string `json:"system_include_dirs"`
	QuoteIncludeDirs  []string `json:"quote_include_dirs"`
}

// OutputFile is a target's first declared output, split for template use.
type OutputFile struct {
	Dir      string
	Basename string
}

// Info is the normalized build metadata for one target.
type Info struct {
	Label label.Label
	Kind  string
	// Srcs and Hdrs are workspace-relative, slash-separated.
	Srcs []string
	Hdrs []string
	// OutputFiles are the target's declared outputs in declaration order.
	OutputFiles []string
	// Output is the first declared output, or nil when the target
	// declares none.
	Output *OutputFile
	// CC is nil for rules carrying no compiler info.
	CC *CCInfo
	// GUID is derived from the canonical label, so it is stable across
	// regenerations without any persisted registry.
	GUID string
}

// Load reads the info record for l under binDir and builds its Info.
func Load(binDir string, l label.Label) (*Info, error) {
	rel, err := l.InfoPath()
	if err != nil {
		return nil, err
	}
	name := filepath.Join(binDir, filepath.FromSlash(rel))
	data, err := os.ReadFile(name)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %s", ErrInfoNotFound, l, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read info for %s: %w", l, err)
	}

	var raw infoFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInfoMalformed, l, err)
	}
	if raw.Kind == nil || raw.Files == nil || raw.Target == nil {
		return nil, fmt.Errorf("%w: %s: missing required section", ErrInfoMalformed, l)
	}

	info := &Info{
		Label:       l,
		Kind:        *raw.Kind,
		Srcs:        raw.Files.Srcs,
		Hdrs:        raw.Files.Hdrs,
		OutputFiles: raw.Target.Files,
		CC:          raw.CC,
		GUID:        guid.FromString(l.Absolute()),
	}
	if len(info.OutputFiles) > 0 {
		first := info.OutputFiles[0]
		info.Output = &OutputFile{Dir: path.Dir(first), Basename: path.Base(first)}
	}
	return info, nil
}

// CompileFlagsJoined returns the compile flags as one space-joined
// string, or "" without compiler info.
func (i *Info) CompileFlagsJoined() string {
	if i.CC == nil {
		return ""
	}
	return strings.Join(i.CC.CompileFlags, " ")
}

// DefinesJoined returns the preprocessor defines semicolon-joined, or ""
// without compiler info.
func (i *Info) DefinesJoined() string {
	if i.CC == nil {
		return ""
	}
	return strings.Join(i.CC.Defines, ";")
}

// IncludeDirs returns user, system, then quote include directories,
// each category in declaration order. Nil without compiler info.
func (i *Info) IncludeDirs() []string {
	if i.CC == nil {
		return nil
	}
	dirs := make([]string, 0, len(i.CC.IncludeDirs)+len(i.CC.SystemIncludeDirs)+len(i.CC.QuoteIncludeDirs))
	dirs = append(dirs, i.CC.IncludeDirs...)
	dirs = append(dirs, i.CC.SystemIncludeDirs...)
	dirs = append(dirs, i.CC.QuoteIncludeDirs...)
	return dirs
}
