// Package observability provides logging setup and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/site-placeholders/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display per category
	maxItemsToShow = 5
	// bulletPrefix marks list items in box content
	bulletPrefix = "• "
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = truncateLeft(line, boxWidth-4)
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncateLeft shortens line to width runes by cutting from the left, so file
// names at the end of paths stay visible. A leading bullet prefix is kept.
func truncateLeft(line string, width int) string {
	if utf8.RuneCountInString(line) <= width {
		return line
	}

	prefix := ""
	if i := strings.Index(line, bulletPrefix); i >= 0 && strings.TrimSpace(line[:i]) == "" {
		prefix = line[:i+len(bulletPrefix)]
		line = line[i+len(bulletPrefix):]
	}

	keep := width - utf8.RuneCountInString(prefix) - 3
	runes := []rune(line)
	return prefix + "..." + string(runes[len(runes)-keep:])
}

// PrintSummary outputs the generated artifacts grouped by category, in the order they were written.
func (p *Printer) PrintSummary(artifacts []types.GeneratedArtifact) {
	if len(artifacts) == 0 {
		p.printBox("PLACEHOLDERS GENERATED", "No artifacts written")
		return
	}

	var order []types.Category
	byCategory := make(map[types.Category][]types.GeneratedArtifact)
	totalBytes := 0
	for _, a := range artifacts {
		if _, ok := byCategory[a.Category]; !ok {
			order = append(order, a.Category)
		}
		byCategory[a.Category] = append(byCategory[a.Category], a)
		totalBytes += a.Bytes
	}

	var sb strings.Builder
	for _, c := range order {
		items := byCategory[c]
		sb.WriteString(fmt.Sprintf("%s (%d):\n", c, len(items)))

		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  %s%s\n", bulletPrefix, items[i].Path))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}
	sb.WriteString(fmt.Sprintf("\nTotal: %d files, %d bytes", len(artifacts), totalBytes))

	p.printBox("PLACEHOLDERS GENERATED", sb.String())
}
