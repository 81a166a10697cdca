// Package accent maps the site's named accent colors to fixed style bundles.
package accent

import "strings"

// Accent is one of the site's named accent colors.
type Accent int

const (
	Default Accent = iota
	Blue
	Orange
	Purple
	Teal
	Green
	Indigo
)

// Style is the immutable color bundle for an accent.
type Style struct {
	Background string
	Text       string
}

var names = map[Accent]string{
	Default: "default",
	Blue:    "blue",
	Orange:  "orange",
	Purple:  "purple",
	Teal:    "teal",
	Green:   "green",
	Indigo:  "indigo",
}

var styles = map[Accent]Style{
	Default: {Background: "#64748b", Text: "#ffffff"},
	Blue:    {Background: "#3b82f6", Text: "#ffffff"},
	Orange:  {Background: "#f97316", Text: "#ffffff"},
	Purple:  {Background: "#8b5cf6", Text: "#ffffff"},
	Teal:    {Background: "#14b8a6", Text: "#ffffff"},
	Green:   {Background: "#22c55e", Text: "#ffffff"},
	Indigo:  {Background: "#6366f1", Text: "#ffffff"},
}

// Parse resolves an accent name. Matching is case-insensitive; unknown or
// empty names resolve to Default.
func Parse(name string) Accent {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range names {
		if n == name {
			return a
		}
	}
	return Default
}

// String returns the accent's name.
func (a Accent) String() string {
	if n, ok := names[a]; ok {
		return n
	}
	return names[Default]
}

// Style returns the color bundle for the accent.
func (a Accent) Style() Style {
	if s, ok := styles[a]; ok {
		return s
	}
	return styles[Default]
}
