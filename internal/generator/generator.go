// Package generator writes placeholder image artifacts for each asset category.
package generator

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/site-placeholders/internal/rendering"
	"github.com/jonathan/site-placeholders/internal/types"
)

// EnsureDirectory creates path and any missing parents. It is a no-op when
// the directory already exists.
func EnsureDirectory(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return &DirectoryError{Path: path, Cause: err}
	}
	return nil
}

// Generator synthesizes placeholder markup and persists it through a Writer.
type Generator struct {
	writer Writer
	logger *zap.Logger
}

// New creates a Generator. A nil writer defaults to FileWriter and a nil logger to a no-op logger.
func New(writer Writer, logger *zap.Logger) *Generator {
	if writer == nil {
		writer = FileWriter{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{writer: writer, logger: logger}
}

// GenerateCategory writes one artifact per spec to destinationDir/<id>.jpg, in order.
// The directory is ensured once before the loop. The first failure aborts the
// category; artifacts written before it are returned alongside the error.
func (g *Generator) GenerateCategory(category string, specs []types.AssetSpec, destinationDir string) ([]types.GeneratedArtifact, error) {
	if err := EnsureDirectory(destinationDir); err != nil {
		return nil, err
	}
	g.logger.Debug("Ensured directory", zap.String("category", category), zap.String("path", destinationDir))

	artifacts := make([]types.GeneratedArtifact, 0, len(specs))
	for _, spec := range specs {
		markup := rendering.SynthesizePlaceholder(spec.Width, spec.Height, spec.Background, spec.TextColor, spec.Label)
		path := filepath.Join(destinationDir, spec.FileName())

		if err := g.writer.Write(path, []byte(markup)); err != nil {
			return artifacts, &WriteError{Category: category, ID: spec.ID, Path: path, Cause: err}
		}

		g.logger.Info("Generated placeholder",
			zap.String("category", category),
			zap.String("id", spec.ID),
			zap.String("path", path))

		artifacts = append(artifacts, types.GeneratedArtifact{
			Category: types.Category(category),
			ID:       spec.ID,
			Path:     path,
			Bytes:    len(markup),
		})
	}

	return artifacts, nil
}

// Run generates every category of the manifest under imagesRoot/<category>.
// Categories run in manifest order and the first error stops the run.
func (g *Generator) Run(manifest *types.Manifest, imagesRoot string) ([]types.GeneratedArtifact, error) {
	var all []types.GeneratedArtifact
	for _, set := range manifest.Sets {
		dir := filepath.Join(imagesRoot, set.Category.String())
		artifacts, err := g.GenerateCategory(set.Category.String(), set.Specs, dir)
		all = append(all, artifacts...)
		if err != nil {
			return all, err
		}
	}

	g.logger.Info("Placeholder generation complete", zap.Int("artifacts", len(all)), zap.String("root", imagesRoot))
	return all, nil
}
