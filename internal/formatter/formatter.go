// Package formatter gofmts generated Go source and groups its imports.
package formatter

import (
	"go/format"
	"regexp"
	"sort"
	"strings"

	"github.com/chronoarc/marvel-go/internal/errors"
)

var importBlock = regexp.MustCompile(`(?s)import\s*\((.+?)\)`)

// Formatter is responsible for formatting Go code according to standard conventions
type Formatter struct{}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format gofmts code and orders the first import block as standard library
// imports followed by everything else. Empty input yields empty output.
func (f *Formatter) Format(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", nil
	}

	formatted, err := format.Source([]byte(f.formatImports(code)))
	if err != nil {
		return "", errors.NewOutputError("failed to format generated Go code", err)
	}
	return string(formatted), nil
}

// formatImports rewrites the first import block into a standard library
// group and a third-party group separated by a blank line.
func (f *Formatter) formatImports(code string) string {
	match := importBlock.FindStringSubmatchIndex(code)
	if match == nil {
		return code
	}

	var std, others []string
	for _, line := range strings.Split(code[match[2]:match[3]], "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if isStdlib(importPath(line)) {
			std = append(std, line)
		} else {
			others = append(others, line)
		}
	}

	sort.Slice(std, func(i, j int) bool { return importPath(std[i]) < importPath(std[j]) })
	sort.Slice(others, func(i, j int) bool { return importPath(others[i]) < importPath(others[j]) })

	var b strings.Builder
	b.WriteString("import (\n")
	for _, imp := range std {
		b.WriteString("\t" + imp + "\n")
	}
	if len(std) > 0 && len(others) > 0 {
		b.WriteString("\n")
	}
	for _, imp := range others {
		b.WriteString("\t" + imp + "\n")
	}
	b.WriteString(")")

	return code[:match[0]] + b.String() + code[match[1]:]
}

// importPath extracts the quoted path of an import spec, which may carry an
// alias such as `stderrors "errors"`.
func importPath(spec string) string {
	start := strings.Index(spec, `"`)
	end := strings.LastIndex(spec, `"`)
	if start < 0 || end <= start {
		return spec
	}
	return spec[start+1 : end]
}

// isStdlib reports whether path belongs to the standard library, whose first
// path element never contains a dot.
func isStdlib(path string) bool {
	first, _, _ := strings.Cut(path, "/")
	return !strings.Contains(first, ".")
}
