package msbuild

import (
	"path"
	"path/filepath"
	"strings"
)

// FilterDelim separates filter hierarchy levels in MSBuild documents.
const FilterDelim = `\`

// GroupingMode selects how file item groups are rendered.
type GroupingMode int

const (
	// Flat emits every file untagged; used for the project document,
	// which lists files without presentation hierarchy.
	Flat GroupingMode = iota
	// Grouped tags each file with its filter, skips files that have
	// none, and accumulates the set of filters used; used for the
	// filters document.
	Grouped
)

// FilterSet accumulates the filter names used by one project, in
// first-use order. Registering a name registers all of its ancestors, so
// the rendered tree never has gaps.
type FilterSet struct {
	names []string
	seen  map[string]bool
}

func NewFilterSet() *FilterSet {
	return &FilterSet{seen: make(map[string]bool)}
}

// Add registers name and every prefix ancestor.
func (s *FilterSet) Add(name string) {
	if s.seen[name] {
		return
	}
	prefix := ""
	for _, part := range strings.Split(name, FilterDelim) {
		if prefix == "" {
			prefix = part
		} else {
			prefix += FilterDelim + part
		}
		if !s.seen[prefix] {
			s.seen[prefix] = true
			s.names = append(s.names, prefix)
		}
	}
}

// Contains reports whether name has been registered.
func (s *FilterSet) Contains(name string) bool {
	return s.seen[name]
}

// Names returns the registered filters in first-use order.
func (s *FilterSet) Names() []string {
	return s.names
}

// fileFilter computes the filter a file belongs to inside pkgPath's
// project: the file's directory relative to the package, with FilterDelim
// separators. Files directly in the package directory belong to no filter
// and get "".
func fileFilter(pkgPath, file string) string {
	dir := path.Dir(file)
	if dir == "" || dir == "." {
		return ""
	}
	rel, err := filepath.Rel(filepath.FromSlash(pkgPath), filepath.FromSlash(dir))
	if err != nil {
		return ""
	}
	rel = filepath.ToSlash(rel)
	if rel == "" || rel == "." {
		return ""
	}
	return strings.ReplaceAll(rel, "/", FilterDelim)
}
