// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

// Shape families understood by the generator.
const (
	KindVector = "vector"
	KindMatrix = "matrix"
)

// ErrUnknownKind is returned for a -kind outside KindVector/KindMatrix.
var ErrUnknownKind = errors.New("genshapes: unknown kind")

// Dims are the component counts rendered for both families.
var Dims = []int{2, 3, 4}

// Generator renders one family into one Go file.
type Generator struct {
	Kind    string       // KindVector or KindMatrix
	Output  string       // destination path; also the file name given to the formatter
	Package string       // package clause, defaults to Kind
	Logger  *slog.Logger // nil means slog.Default()
}

// Run renders and writes the output file.
func (g *Generator) Run() error {
	src, err := g.Render()
	if err != nil {
		return err
	}
	if err = os.WriteFile(g.Output, src, 0o644); err != nil {
		return fmt.Errorf("genshapes: write %s: %w", g.Output, err)
	}

	return nil
}

// Render executes the family template and returns gofmt-ed source.
func (g *Generator) Render() ([]byte, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.Default()
	}

	pkg := g.Package
	if pkg == "" {
		pkg = g.Kind
	}

	var (
		tmpl *template.Template
		data any
	)
	switch g.Kind {
	case KindVector:
		tmpl = vectorTemplate
		data = vectorFile{Package: pkg, Vectors: vectorShapes(Dims)}
	case KindMatrix:
		tmpl = matrixTemplate
		data = matrixFile{Package: pkg, Matrices: matrixShapes(Dims)}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, g.Kind)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("genshapes: execute %s template: %w", g.Kind, err)
	}
	logger.Debug("template rendered", "kind", g.Kind, "bytes", buf.Len())

	name := g.Output
	if name == "" {
		name = g.Kind + "_gen.go"
	}
	src, err := imports.Process(name, buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("genshapes: format %s: %w", name, err)
	}

	return src, nil
}
