package bazel

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInfoOutput reports `bazel info` output missing a required
// key.
var ErrMalformedInfoOutput = errors.New("malformed bazel info output")

// Info holds the workspace paths a generation run needs.
type Info struct {
	// Bin is the bazel-bin output root, where the aspect writes its info
	// files.
	Bin string
	// Out is the configuration-independent output root (output_path).
	Out string
	// Workspace is the workspace root directory.
	Workspace string
}

// Info queries bazel for the workspace paths used during generation.
func (r *Runner) Info() (Info, error) {
	out, err := r.run("info", "bazel-bin", "output_path", "workspace")
	if err != nil {
		return Info{}, err
	}
	return parseInfo(out)
}

func parseInfo(out []byte) (Info, error) {
	var info Info
	for _, line := range strings.Split(string(out), "\n") {
		key, value, ok := strings.Cut(line, ": ")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "bazel-bin":
			info.Bin = strings.TrimSpace(value)
		case "output_path":
			info.Out = strings.TrimSpace(value)
		case "workspace":
			info.Workspace = strings.TrimSpace(value)
		}
	}
	if info.Bin == "" || info.Out == "" || info.Workspace == "" {
		return Info{}, fmt.Errorf("%w: %q", ErrMalformedInfoOutput, string(out))
	}
	return info, nil
}
