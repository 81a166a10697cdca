// Package rendering provides functionality to render placeholder images as SVG markup.
package rendering

import "fmt"

// placeholderSVG is the fixed document structure: one full-bleed rect and one centered text node.
const placeholderSVG = `<svg width="%[1]d" height="%[2]d" viewBox="0 0 %[1]d %[2]d" xmlns="http://www.w3.org/2000/svg">
  <rect width="100%%" height="100%%" fill="%[3]s"/>
  <text x="50%%" y="50%%" font-family="sans-serif" font-size="%[4]d" font-weight="bold" fill="%[5]s" text-anchor="middle" dominant-baseline="middle">%[6]s</text>
</svg>
`

// FontSize returns the label font size for a canvas: floor(min(width, height) / 10).
// Degenerate negative sizes round down, so FontSize(-5, 400) is -1.
func FontSize(width, height int) int {
	n := min(width, height)
	size := n / 10
	if n%10 != 0 && n < 0 {
		size--
	}
	return size
}

// SynthesizePlaceholder renders an SVG placeholder of the given size.
// No validation is performed and the label is embedded verbatim, without
// escaping: markup characters in the label end up in the document as-is.
func SynthesizePlaceholder(width, height int, background, textColor, label string) string {
	return fmt.Sprintf(placeholderSVG, width, height, background, FontSize(width, height), textColor, label)
}
