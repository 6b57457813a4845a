package bazel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedQueryOutput reports a query output line that does not match
// the `<kind> rule <label>` shape. Treated as fatal: an unparseable line
// means a bazel version skew that would silently corrupt everything
// downstream.
var ErrMalformedQueryOutput = errors.New("malformed bazel query output")

var labelKindPattern = regexp.MustCompile(`^(\w+) rule (.+)$`)

// QueryTargets resolves patterns to the labels of targets whose rule kind
// is in kinds, preserving first-seen order across patterns and dropping
// duplicates. An empty pattern list queries every target in the
// workspace.
func (r *Runner) QueryTargets(patterns []string, kinds map[string]bool) ([]string, error) {
	if len(patterns) == 0 {
		patterns = []string{"//..."}
	}
	outputs := make([][]byte, 0, len(patterns))
	for _, pattern := range patterns {
		out, err := r.run("query", pattern, "--output=label_kind")
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}
	return mergeQueryResults(outputs, kinds)
}

// mergeQueryResults parses each query output and merges the matching
// labels, de-duplicated in first-seen order.
func mergeQueryResults(outputs [][]byte, kinds map[string]bool) ([]string, error) {
	var targets []string
	seen := make(map[string]bool)
	for _, out := range outputs {
		labels, err := parseQueryOutput(out, kinds)
		if err != nil {
			return nil, err
		}
		for _, l := range labels {
			if seen[l] {
				continue
			}
			seen[l] = true
			targets = append(targets, l)
		}
	}
	return targets, nil
}

func parseQueryOutput(out []byte, kinds map[string]bool) ([]string, error) {
	var labels []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := labelKindPattern.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: %q", ErrMalformedQueryOutput, line)
		}
		if kinds[m[1]] {
			labels = append(labels, m[2])
		}
	}
	return labels, nil
}
