package bazel

import (
	"errors"
	"testing"
)

func TestParseInfo(t *testing.T) {
	out := []byte(`bazel-bin: /work/bazel-out/x64_windows-fastbuild/bin
output_path: /work/bazel-out
workspace: /work
`)
	info, err := parseInfo(out)
	if err != nil {
		t.Fatalf("parseInfo: %v", err)
	}
	if info.Bin != "/work/bazel-out/x64_windows-fastbuild/bin" {
		t.Errorf("Bin = %q", info.Bin)
	}
	if info.Out != "/work/bazel-out" {
		t.Errorf("Out = %q", info.Out)
	}
	if info.Workspace != "/work" {
		t.Errorf("Workspace = %q", info.Workspace)
	}
}

func TestParseInfoIgnoresUnknownKeys(t *testing.T) {
	out := []byte(`bazel-bin: /w/bin
release: release 7.0.0
output_path: /w/out
workspace: /w
`)
	if _, err := parseInfo(out); err != nil {
		t.Fatalf("parseInfo: %v", err)
	}
}

func TestParseInfoMissingKey(t *testing.T) {
	out := []byte("bazel-bin: /w/bin\nworkspace: /w\n")
	if _, err := parseInfo(out); !errors.Is(err, ErrMalformedInfoOutput) {
		t.Errorf("err = %v, want ErrMalformedInfoOutput", err)
	}
}
