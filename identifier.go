package main

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// fallbackIdent stands in for titles that normalize to nothing.
	fallbackIdent = "unknown"
	// identNamespace prefixes identifiers that would otherwise start with a
	// digit.
	identNamespace = "katex"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// namer synthesizes unique snake_case identifiers for one generation run.
// The duplicate counter lives on the namer, not in a package global, so
// repeated runs within one process never share state.
type namer struct {
	seen map[string]int // base identifier -> occurrences so far
}

func newNamer() *namer {
	return &namer{seen: make(map[string]int)}
}

// snakeify turns a suite title into a lowercase snake_case identifier that
// starts with an ASCII letter.
func snakeify(title string) string {
	// Backslashes and quotes become spaces before collapsing, so escape
	// sequences in the raw title do not glue words together.
	clean := strings.Map(func(r rune) rune {
		if r == '\\' || r == '"' || r == '\'' {
			return ' '
		}
		return r
	}, title)
	clean = nonAlnum.ReplaceAllString(clean, "_")
	clean = strings.ToLower(strings.Trim(clean, "_"))
	if clean == "" {
		clean = fallbackIdent
	}
	if clean[0] < 'a' || clean[0] > 'z' {
		clean = identNamespace + "_" + clean
	}
	return clean
}

// ident returns the run-unique identifier for title. The first occurrence of
// a base identifier keeps its plain form; later ones get _2, _3, and so on.
func (n *namer) ident(title string) string {
	base := snakeify(title)
	n.seen[base]++
	if c := n.seen[base]; c > 1 {
		return fmt.Sprintf("%s_%d", base, c)
	}
	return base
}
