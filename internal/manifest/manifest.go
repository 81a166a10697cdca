// Package manifest loads placeholder asset manifests from JSON or YAML files.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/site-placeholders/internal/accent"
	"github.com/jonathan/site-placeholders/internal/catalog"
	"github.com/jonathan/site-placeholders/internal/schemas"
	"github.com/jonathan/site-placeholders/internal/types"
	rootschemas "github.com/jonathan/site-placeholders/schemas"
)

// File is the on-disk manifest shape. Unlike types.AssetSpec, entries may
// leave out size and colors and fall back to category defaults.
type File struct {
	Categories []CategoryEntry `json:"categories" yaml:"categories"`
}

// CategoryEntry is one category block of a manifest file.
type CategoryEntry struct {
	Category string       `json:"category" yaml:"category"`
	Assets   []AssetEntry `json:"assets" yaml:"assets"`
}

// AssetEntry is one asset of a manifest file.
type AssetEntry struct {
	ID         string `json:"id" yaml:"id"`
	Label      string `json:"label" yaml:"label"`
	Width      int    `json:"width,omitempty" yaml:"width,omitempty"`
	Height     int    `json:"height,omitempty" yaml:"height,omitempty"`
	Background string `json:"background,omitempty" yaml:"background,omitempty"`
	TextColor  string `json:"text_color,omitempty" yaml:"text_color,omitempty"`
	Accent     string `json:"accent,omitempty" yaml:"accent,omitempty"`
}

// Load reads, validates and resolves a manifest file.
// The format is chosen by extension: .json, .yaml or .yml.
func Load(path string) (*types.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	var doc interface{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse manifest JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported manifest extension %q (want .json, .yaml or .yml)", ext)
	}

	if err := schemas.ValidateDocument("asset_manifest", rootschemas.AssetManifest, doc); err != nil {
		return nil, err
	}

	file, err := decodeFile(doc)
	if err != nil {
		return nil, err
	}
	return file.Resolve()
}

// decodeFile converts a schema-checked document into a File. Both formats go
// through the same JSON encoding, so integral floats such as 400.0 decode as 400.
func decodeFile(doc interface{}) (*File, error) {
	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize manifest: %w", err)
	}

	var file File
	if err := json.Unmarshal(normalized, &file); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return &file, nil
}

// Resolve fills category defaults and validates every resulting spec.
func (f *File) Resolve() (*types.Manifest, error) {
	m := &types.Manifest{Sets: make([]types.CategorySet, 0, len(f.Categories))}
	// ids are unique per category across the whole file: a category may appear in several blocks
	seen := make(map[types.Category]map[string]bool)

	for i, entry := range f.Categories {
		category, err := types.ParseCategory(entry.Category)
		if err != nil {
			return nil, fmt.Errorf("categories[%d]: %w", i, err)
		}

		if seen[category] == nil {
			seen[category] = make(map[string]bool, len(entry.Assets))
		}
		specs := make([]types.AssetSpec, 0, len(entry.Assets))
		for j, asset := range entry.Assets {
			if seen[category][asset.ID] {
				return nil, fmt.Errorf("categories[%d].assets[%d]: duplicate id %q in %s", i, j, asset.ID, category)
			}
			seen[category][asset.ID] = true

			spec := asset.resolve(category)
			if err := spec.Validate(); err != nil {
				return nil, fmt.Errorf("categories[%d].assets[%d] (%s): %w", i, j, asset.ID, err)
			}
			specs = append(specs, spec)
		}

		m.Sets = append(m.Sets, types.CategorySet{Category: category, Specs: specs})
	}

	return m, nil
}

// resolve starts from the category defaults, applies the accent, then any explicit values.
func (a AssetEntry) resolve(category types.Category) types.AssetSpec {
	var spec types.AssetSpec
	switch category {
	case types.CategoryTeam:
		spec = catalog.TeamSpec(a.ID, a.Label)
	case types.CategoryAbout:
		spec = catalog.AboutSpec(a.ID, a.Label)
	default:
		spec = catalog.GallerySpec(a.ID, a.Label, DefaultGalleryWidth, DefaultGalleryHeight, accent.Default)
	}

	if a.Accent != "" {
		style := accent.Parse(a.Accent).Style()
		spec.Background = style.Background
		spec.TextColor = style.Text
	}
	if a.Width != 0 {
		spec.Width = a.Width
	}
	if a.Height != 0 {
		spec.Height = a.Height
	}
	if a.Background != "" {
		spec.Background = a.Background
	}
	if a.TextColor != "" {
		spec.TextColor = a.TextColor
	}
	return spec
}

// Gallery entries without explicit dimensions use a 3:2 landscape canvas.
const (
	DefaultGalleryWidth  = 600
	DefaultGalleryHeight = 400
)
