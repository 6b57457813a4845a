package msbuild

import (
	"reflect"
	"testing"
)

func TestFilterSetAddsAncestors(t *testing.T) {
	s := NewFilterSet()
	s.Add(`a\b\c`)
	want := []string{"a", `a\b`, `a\b\c`}
	if !reflect.DeepEqual(s.Names(), want) {
		t.Errorf("Names = %v, want %v", s.Names(), want)
	}
	for _, name := range want {
		if !s.Contains(name) {
			t.Errorf("Contains(%q) = false", name)
		}
	}
}

func TestFilterSetDeduplicates(t *testing.T) {
	s := NewFilterSet()
	s.Add(`a\b`)
	s.Add(`a\c`)
	s.Add(`a\b`)
	want := []string{"a", `a\b`, `a\c`}
	if !reflect.DeepEqual(s.Names(), want) {
		t.Errorf("Names = %v, want %v", s.Names(), want)
	}
}

func TestFileFilter(t *testing.T) {
	tests := []struct {
		pkg  string
		file string
		want string
	}{
		{"a/b", "a/b/x.cc", ""},
		{"a/b", "a/b/c/x.cc", "c"},
		{"a/b", "a/b/c/d/x.cc", `c\d`},
		{".", "x.cc", ""},
		{".", "sub/x.cc", "sub"},
	}
	for _, tt := range tests {
		if got := fileFilter(tt.pkg, tt.file); got != tt.want {
			t.Errorf("fileFilter(%q, %q) = %q, want %q", tt.pkg, tt.file, got, tt.want)
		}
	}
}
