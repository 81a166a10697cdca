package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/site-placeholders/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSummary([]types.GeneratedArtifact{
		{Category: types.CategoryTeam, ID: "alex", Path: "images/team/alex.jpg", Bytes: 300},
		{Category: types.CategoryGallery, ID: "office-space", Path: "images/gallery/office-space.jpg", Bytes: 320},
		{Category: types.CategoryAbout, ID: "team-photo", Path: "images/about/team-photo.jpg", Bytes: 310},
	})
	output := buf.String()

	assert.Contains(t, output, "PLACEHOLDERS GENERATED")
	assert.Contains(t, output, "team (1):")
	assert.Contains(t, output, "gallery (1):")
	assert.Contains(t, output, "images/about/team-photo.jpg")
	assert.Contains(t, output, "Total: 3 files, 930 bytes")

	assert.Less(t, strings.Index(output, "team (1)"), strings.Index(output, "gallery (1)"), "categories should keep write order")
	assert.Less(t, strings.Index(output, "gallery (1)"), strings.Index(output, "about (1)"))
}

func TestPrintSummary_TruncatesLongCategories(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	var artifacts []types.GeneratedArtifact
	for i := 0; i < 8; i++ {
		artifacts = append(artifacts, types.GeneratedArtifact{
			Category: types.CategoryGallery,
			ID:       fmt.Sprintf("g%d", i),
			Path:     fmt.Sprintf("gallery/g%d.jpg", i),
		})
	}

	p.PrintSummary(artifacts)
	output := buf.String()

	assert.Contains(t, output, "gallery (8):")
	assert.Contains(t, output, "gallery/g4.jpg")
	assert.NotContains(t, output, "gallery/g5.jpg")
	assert.Contains(t, output, "... and 3 more")
}

func TestPrintSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintSummary(nil)

	assert.Contains(t, buf.String(), "No artifacts written")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 100))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[3], "...")
}

func TestPrintSummary_LongPathKeepsFileName(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	longPath := "/home/deploy/sites/company-website/releases/current/public/images/gallery/collaboration.jpg"
	p.PrintSummary([]types.GeneratedArtifact{
		{Category: types.CategoryGallery, ID: "collaboration", Path: longPath, Bytes: 321},
	})

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	var pathLine string
	for _, line := range lines {
		if strings.Contains(line, "•") {
			pathLine = line
		}
	}
	require.NotEmpty(t, pathLine)
	assert.Contains(t, pathLine, "  • ...")
	assert.Contains(t, pathLine, "gallery/collaboration.jpg │")

	width := utf8.RuneCountInString(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(line), "box line %q should align with the border", line)
	}
}

func TestTruncateLeft(t *testing.T) {
	assert.Equal(t, "short", truncateLeft("short", 10))
	assert.Equal(t, "...6789", truncateLeft("0123456789", 7))
	assert.Equal(t, "  • ...89", truncateLeft("  • 0123456789", 9))
	assert.Equal(t, "  • 12", truncateLeft("  • 12", 6), "multi-byte bullet counts as one rune")
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(false)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel), "debug should be disabled by default")

	verbose, err := NewLogger(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel), "debug should be enabled in verbose mode")
}
