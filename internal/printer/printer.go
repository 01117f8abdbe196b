// Package printer assembles emitted units into one formatted Go file.
package printer

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"

	"github.com/alexhholmes/wiregen/internal/codegen"
)

// Print renders units as a Go source file in package pkg. source names the
// input the file was generated from and appears in the header.
func Print(pkg, source string, units []codegen.Unit) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// Code generated by wiregen from %s. DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	writeImports(&buf, units)

	for _, u := range units {
		buf.WriteString(u.Source())
		buf.WriteString("\n")
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return out, nil
}

// writeImports writes the union of unit imports, standard library first
func writeImports(buf *bytes.Buffer, units []codegen.Unit) {
	seen := make(map[string]bool)
	var std, other []string
	for _, u := range units {
		for _, imp := range u.Imports {
			if seen[imp] {
				continue
			}
			seen[imp] = true
			if isStd(imp) {
				std = append(std, imp)
			} else {
				other = append(other, imp)
			}
		}
	}
	if len(std)+len(other) == 0 {
		return
	}
	sort.Strings(std)
	sort.Strings(other)

	buf.WriteString("import (\n")
	for _, imp := range std {
		fmt.Fprintf(buf, "\t%q\n", imp)
	}
	if len(std) > 0 && len(other) > 0 {
		buf.WriteString("\n")
	}
	for _, imp := range other {
		fmt.Fprintf(buf, "\t%q\n", imp)
	}
	buf.WriteString(")\n\n")
}

// isStd reports whether an import path belongs to the standard library
func isStd(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}
