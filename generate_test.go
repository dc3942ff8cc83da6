package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunDeterministic(t *testing.T) {
	src := `describe("A texvc builder", function() {});
describe("A texvc builder", function() {});
describe("3D parser", function() {});
`
	first, err := run(src, nil)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	second, err := run(src, nil)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Errorf("run() output differs between identical runs:\n%s\n---\n%s", first, second)
	}
}

func TestRunFiltersPortedTitles(t *testing.T) {
	src := `describe("A parser", function() {});
describe("A texvc builder", function() {});
`
	out, err := run(src, map[string]bool{"A parser": true})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.Contains(string(out), "a_parser") {
		t.Errorf("run() generated a stub for a ported title:\n%s", out)
	}
	if !strings.Contains(string(out), "func a_texvc_builder(t *testing.T)") {
		t.Errorf("run() missing stub for unported title:\n%s", out)
	}
}

func TestRunTraceabilityComment(t *testing.T) {
	src := strings.Repeat("// filler\n", 41) + `describe("A weird, Title!", function() {});` + "\n"
	out, err := run(src, nil)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	want := `// TODO: port "A weird, Title!" from katex-spec.js:42`
	if !strings.Contains(string(out), want) {
		t.Errorf("run() output missing %q:\n%s", want, out)
	}
	if !strings.Contains(string(out), "func a_weird_title(t *testing.T)") {
		t.Errorf("run() output missing synthesized identifier:\n%s", out)
	}
}

func TestRunHeaderOnlyWhenNothingMatches(t *testing.T) {
	out, err := run("const x = 1;\n", portedTitles)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	s := string(out)
	if !strings.HasPrefix(s, "// Code generated by katex-spec-todos. DO NOT EDIT.") {
		t.Errorf("run() output missing generated-file header:\n%s", s)
	}
	if !strings.Contains(s, "package katexspec") {
		t.Errorf("run() output missing package clause:\n%s", s)
	}
	// With zero stubs the testing import would not compile, so it is omitted.
	if strings.Contains(s, "import") || strings.Contains(s, "func ") {
		t.Errorf("run() emitted blocks for an empty stub list:\n%s", s)
	}
}

func TestPortedTitlesMatchRawSpecText(t *testing.T) {
	// Titles are compared against the literal quoted span, so entries with
	// TeX escapes carry the spec file's doubled backslashes.
	for _, title := range []string{
		"A parser",
		`A \\KaTeX parser`,
		`A \\begingroup...\\endgroup parser`,
		"A href parser",
	} {
		if !portedTitles[title] {
			t.Errorf("portedTitles missing %q", title)
		}
	}
	if portedTitles["a parser"] {
		t.Error("portedTitles matched a case-folded title; membership must be exact")
	}
}
