// SPDX-License-Identifier: MIT

// Command genshapes renders the per-shape method sets of the vector and
// matrix packages from a single template per family.
//
// Usage:
//
//	genshapes -kind vector -out vectors_gen.go
//	genshapes -kind matrix -out matrices_gen.go -v
//
// Or via go:generate inside the target package:
//
//	//go:generate go run ../internal/cmd/genshapes -kind vector -out vectors_gen.go
//
// Every operator lives once as a generic kernel; the generated methods only
// instantiate those kernels with the concrete Vector/Matrix types, so the
// shape of each operand is checked by the compiler.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

var (
	kind    = flag.String("kind", "", "Shape family to render: "+KindVector+" or "+KindMatrix+" (required)")
	output  = flag.String("out", "", "Output Go file (required)")
	pkgName = flag.String("pkg", "", "Package clause of the output (default: same as -kind)")
	verbose = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *kind == "" || *output == "" {
		fmt.Fprintf(os.Stderr, "Error: -kind and -out are required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Kind:    *kind,
		Output:  *output,
		Package: *pkgName,
		Logger:  logger,
	}
	if err := gen.Run(); err != nil {
		logger.Error("generation failed", "kind", *kind, "out", *output, "err", err)
		os.Exit(1)
	}
	logger.Info("generated", "kind", *kind, "out", *output)
}
