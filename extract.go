package main

import (
	"bufio"
	"iter"
	"regexp"
	"strings"
)

// declPattern matches a top-level suite declaration: a describe call anchored
// at the very start of a line, with a double-quoted title as its first
// argument. Indented or nested declarations deliberately do not match; the
// titles they would contribute are not considered top-level.
var declPattern = regexp.MustCompile(`^describe\("([^"]+)`)

// entry is one recognized suite declaration.
type entry struct {
	Title string // literal quoted span, no unescaping applied
	Line  int    // 1-based line number in the spec file
}

// extract yields one entry per declaration line, in file order. The sequence
// is single-use. Lines that merely resemble a declaration yield nothing;
// there is no brace or paren tracking of any kind.
func extract(src string) iter.Seq[entry] {
	return func(yield func(entry) bool) {
		sc := bufio.NewScanner(strings.NewReader(src))
		sc.Buffer(make([]byte, 1024*1024), 10*1024*1024) // 10MB max line
		line := 0
		for sc.Scan() {
			line++
			m := declPattern.FindStringSubmatch(sc.Text())
			if m == nil {
				continue
			}
			if !yield(entry{Title: m[1], Line: line}) {
				return
			}
		}
	}
}
