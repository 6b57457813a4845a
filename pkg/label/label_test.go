package label

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Label
	}{
		{"//pkg/sub:name", Label{Package: "pkg/sub", Name: "name"}},
		{"//pkg/sub", Label{Package: "pkg/sub", Name: "sub"}},
		{"//pkg", Label{Package: "pkg", Name: "pkg"}},
		{"//:top", Label{Package: "", Name: "top"}},
		{"@repo//pkg:name", Label{Repo: "@repo", Package: "pkg", Name: "name"}},
		{"@repo//pkg", Label{Repo: "@repo", Package: "pkg", Name: "pkg"}},
		{"//pkg:gen.out+extra", Label{Package: "pkg", Name: "gen.out+extra"}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []string{
		"pkg/sub",     // relative
		":name",       // relative
		"",            // relative
		"//",          // no name to infer
		"//pkg name",  // space violates the grammar
		"//pkg:a b",   // space in name
		"@repo",       // repo without //
	}
	for _, in := range tests {
		if _, err := Parse(in); !errors.Is(err, ErrMalformed) {
			t.Errorf("Parse(%q) err = %v, want ErrMalformed", in, err)
		}
	}
}

func TestAbsoluteRoundTrip(t *testing.T) {
	tests := []string{"//pkg/sub:name", "//pkg/sub", "@repo//a/b", "//:top"}
	for _, in := range tests {
		l, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		canonical := l.Absolute()
		l2, err := Parse(canonical)
		if err != nil {
			t.Fatalf("Parse(%q): %v", canonical, err)
		}
		if l2.Absolute() != canonical {
			t.Errorf("round trip of %q: got %q, want %q", in, l2.Absolute(), canonical)
		}
		if l2 != l {
			t.Errorf("round trip of %q: got %+v, want %+v", in, l2, l)
		}
	}
}

func TestPackagePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"//a/b:x", "a/b"},
		{"//a/./b:x", "a/b"},
		{"//a/../b:x", "b"},
		{"//:x", "."},
	}
	for _, tt := range tests {
		l, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got := l.PackagePath(); got != tt.want {
			t.Errorf("PackagePath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPackageNotNormalized(t *testing.T) {
	l, err := Parse("//a/./b:x")
	if err != nil {
		t.Fatal(err)
	}
	// Absolute must keep the package verbatim; only PackagePath cleans.
	if l.Package != "a/./b" {
		t.Errorf("Package = %q, want %q", l.Package, "a/./b")
	}
	if l.Absolute() != "//a/./b:x" {
		t.Errorf("Absolute = %q, want %q", l.Absolute(), "//a/./b:x")
	}
}

func TestInfoPath(t *testing.T) {
	l, err := Parse("//a/b:x")
	if err != nil {
		t.Fatal(err)
	}
	got, err := l.InfoPath()
	if err != nil {
		t.Fatalf("InfoPath: %v", err)
	}
	if want := "a/b/x.msbuild"; got != want {
		t.Errorf("InfoPath = %q, want %q", got, want)
	}
}

func TestInfoPathExternalRepo(t *testing.T) {
	l, err := Parse("@repo//a:x")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := l.InfoPath(); !errors.Is(err, ErrExternalRepo) {
		t.Errorf("InfoPath err = %v, want ErrExternalRepo", err)
	}
}
