package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"text/template"

	"golang.org/x/tools/txtar"
)

// stub is a to-do placeholder for one unported suite.
type stub struct {
	Title      string
	Line       int
	Identifier string
}

// genPackage is the package clause of the generated file.
const genPackage = "katexspec"

//go:embed templates.txt
var defaultTemplates []byte

var fileTemplate = template.Must(template.New("file").Parse(loadTemplate("file.tmpl")))

// loadTemplate pulls a single named template out of the embedded txtar
// archive.
func loadTemplate(name string) string {
	archive := txtar.Parse(defaultTemplates)
	for _, file := range archive.Files {
		if file.Name == name {
			return string(file.Data)
		}
	}
	panic(fmt.Sprintf("template %s not found in templates.txt", name))
}

// render assembles the complete generated document for stubs, in order, and
// normalizes it with gofmt. The whole document is built in memory; nothing
// is written until it has rendered successfully.
func render(stubs []stub) ([]byte, error) {
	data := struct {
		Package string
		Stubs   []stub
	}{
		Package: genPackage,
		Stubs:   stubs,
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w, was formatting\n%s", err, buf.String())
	}
	return formatted, nil
}
