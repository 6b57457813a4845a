// Package label parses Bazel target labels.
package label

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
)

// ErrMalformed reports a target string that does not match the label
// grammar or is not absolute.
var ErrMalformed = errors.New("malformed label")

// ErrExternalRepo reports a label in an external repository, which this
// tool cannot locate info files for.
var ErrExternalRepo = errors.New("external repository labels not supported")

// InfoExt is the extension of the per-target info file written by the
// msbuild aspect.
const InfoExt = ".msbuild"

// pattern mirrors Bazel's label grammar closely enough for any label a
// query can return: [@repo][//package][:name].
var pattern = regexp.MustCompile(`^((@[a-zA-Z0-9/._-]+)?//)?([a-zA-Z0-9/._-]*)(:([a-zA-Z0-9_/.+=,@~-]+))?$`)

// Label is the parsed form of an absolute target label. Immutable after
// Parse.
type Label struct {
	// Repo is the external repository segment including its leading "@",
	// or "" for the main repository.
	Repo string
	// Package is the package path exactly as written, slash-separated.
	// Empty for the repository root package. Not cleaned; use PackagePath
	// for filesystem work.
	Package string
	// Name is the target name. When the label omits ":name" it defaults
	// to the final segment of Package.
	Name string
}

// Parse parses an absolute label of the form [@repo]//package[:name].
// Relative labels are rejected; this tool never resolves a label against
// a current package.
func Parse(s string) (Label, error) {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Label{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	if m[1] == "" {
		return Label{}, fmt.Errorf("%w: %q is not absolute", ErrMalformed, s)
	}
	l := Label{Repo: m[2], Package: m[3], Name: m[5]}
	if l.Name == "" {
		if l.Package == "" {
			return Label{}, fmt.Errorf("%w: %q has no target name", ErrMalformed, s)
		}
		segs := strings.Split(l.Package, "/")
		l.Name = segs[len(segs)-1]
	}
	return l, nil
}

// Absolute returns the canonical absolute form [@repo]//package:name.
// Parsing the result yields an equal Label.
func (l Label) Absolute() string {
	return l.Repo + "//" + l.Package + ":" + l.Name
}

func (l Label) String() string {
	return l.Absolute()
}

// PackagePath returns the package path cleaned for filesystem use.
// Unlike Package it collapses "." and ".." segments, so it must not be
// fed back into Absolute.
func (l Label) PackagePath() string {
	return path.Clean(l.Package)
}

// InfoPath returns the path of the target's aspect-generated info file,
// relative to bazel-bin.
func (l Label) InfoPath() (string, error) {
	if l.Repo != "" {
		return "", fmt.Errorf("%w: %s", ErrExternalRepo, l)
	}
	return path.Join(l.Package, l.Name+InfoExt), nil
}
