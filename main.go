package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/term"
)

// specPath is where a KaTeX checkout keeps its Jest spec, relative to the
// repository root this tool is invoked from.
const specPath = "KaTeX/test/katex-spec.js"

// run executes the extract -> filter -> name -> render pipeline over the
// spec file text and returns the complete generated document.
func run(src string, ported map[string]bool) ([]byte, error) {
	n := newNamer()
	var stubs []stub
	for e := range unported(extract(src), ported) {
		stubs = append(stubs, stub{
			Title:      e.Title,
			Line:       e.Line,
			Identifier: n.ident(e.Title),
		})
	}
	return render(stubs)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("katex-spec-todos: ")

	src, err := os.ReadFile(specPath)
	if err != nil {
		log.Fatal(err)
	}

	out, err := run(string(src), portedTitles)
	if err != nil {
		log.Fatal(err)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "note: output is usually redirected, e.g. `go run . > katexspec/katex_spec_todo_test.go`")
	}

	if _, err := os.Stdout.Write(out); err != nil {
		log.Fatal(err)
	}
}
