package bazel

import (
	"errors"
	"reflect"
	"testing"
)

var ccKinds = map[string]bool{
	"cc_library": true,
	"cc_binary":  true,
}

func TestParseQueryOutputFiltersKinds(t *testing.T) {
	out := []byte(`cc_library rule //a:x
py_library rule //a:y
cc_binary rule //a:z

`)
	got, err := parseQueryOutput(out, ccKinds)
	if err != nil {
		t.Fatalf("parseQueryOutput: %v", err)
	}
	want := []string{"//a:x", "//a:z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseQueryOutputMalformed(t *testing.T) {
	out := []byte("cc_library rule //a:x\nnot a query line\n")
	if _, err := parseQueryOutput(out, ccKinds); !errors.Is(err, ErrMalformedQueryOutput) {
		t.Errorf("err = %v, want ErrMalformedQueryOutput", err)
	}
}

func TestMergeQueryResultsDeduplicates(t *testing.T) {
	outputs := [][]byte{
		[]byte("cc_library rule //a:x\ncc_library rule //a:y\n"),
		[]byte("cc_library rule //a:y\ncc_binary rule //b:z\n"),
	}
	got, err := mergeQueryResults(outputs, ccKinds)
	if err != nil {
		t.Fatalf("mergeQueryResults: %v", err)
	}
	// First-seen order across patterns, duplicates dropped.
	want := []string{"//a:x", "//a:y", "//b:z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMergeQueryResultsPropagatesError(t *testing.T) {
	outputs := [][]byte{
		[]byte("cc_library rule //a:x\n"),
		[]byte("garbage\n"),
	}
	if _, err := mergeQueryResults(outputs, ccKinds); !errors.Is(err, ErrMalformedQueryOutput) {
		t.Errorf("err = %v, want ErrMalformedQueryOutput", err)
	}
}
