// Package types provides type definitions for the placeholder assets generated for the company site.
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Category groups asset specs that share a destination directory and default styling.
type Category string

const (
	// CategoryTeam holds square team portraits
	CategoryTeam Category = "team"
	// CategoryGallery holds gallery photos with mixed aspect ratios
	CategoryGallery Category = "gallery"
	// CategoryAbout holds the about-page illustration
	CategoryAbout Category = "about"
)

// Categories lists every known category in generation order.
var Categories = []Category{CategoryTeam, CategoryGallery, CategoryAbout}

// ParseCategory converts a string into a known Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// String returns the category name, which is also its directory name.
func (c Category) String() string {
	return string(c)
}

// AssetSpec describes one placeholder image to generate.
// ID is used both as the file stem and as the log key.
type AssetSpec struct {
	ID         string `json:"id" yaml:"id" validate:"required,max=64,slug"`
	Label      string `json:"label" yaml:"label"`
	Width      int    `json:"width" yaml:"width" validate:"gt=0"`
	Height     int    `json:"height" yaml:"height" validate:"gt=0"`
	Background string `json:"background" yaml:"background" validate:"required"`
	TextColor  string `json:"text_color" yaml:"text_color" validate:"required"`
}

// FileName returns the artifact file name for the spec.
// The extension is .jpg even though the content is SVG markup; consumers sniff the type.
func (s AssetSpec) FileName() string {
	return s.ID + ".jpg"
}

// CategorySet is the ordered sequence of specs for one category.
type CategorySet struct {
	Category Category    `json:"category" yaml:"category"`
	Specs    []AssetSpec `json:"assets" yaml:"assets"`
}

// Manifest is the full list of category sets processed by one run, in order.
type Manifest struct {
	Sets []CategorySet `json:"categories" yaml:"categories"`
}

// Count returns the total number of specs across all categories.
func (m *Manifest) Count() int {
	n := 0
	for _, set := range m.Sets {
		n += len(set.Specs)
	}
	return n
}

// GeneratedArtifact records one file written by the generator.
type GeneratedArtifact struct {
	Category Category
	ID       string
	Path     string
	Bytes    int
}

// Validate validates the AssetSpec using the validator.
// Generation itself never validates; this is for manifest files and the validate command.
func (s *AssetSpec) Validate() error {
	return newValidator().Struct(s)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	// slug: lowercase letters, digits and hyphens, safe as a file stem
	_ = validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if v == "" {
			return false
		}
		for _, r := range v {
			if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
				return false
			}
		}
		return true
	})
	return validate
}
