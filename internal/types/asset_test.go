package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetSpec_Validate_Valid(t *testing.T) {
	spec := AssetSpec{
		ID:         "office-space",
		Label:      "Office Space",
		Width:      800,
		Height:     400,
		Background: "#3b82f6",
		TextColor:  "#ffffff",
	}

	assert.NoError(t, spec.Validate())
}

func TestAssetSpec_Validate_Invalid(t *testing.T) {
	base := AssetSpec{
		ID:         "alex",
		Label:      "Alex J.",
		Width:      400,
		Height:     400,
		Background: "#1e293b",
		TextColor:  "#ffffff",
	}

	tests := []struct {
		name   string
		mutate func(s *AssetSpec)
		field  string
	}{
		{"missing id", func(s *AssetSpec) { s.ID = "" }, "ID"},
		{"id with slash", func(s *AssetSpec) { s.ID = "../alex" }, "ID"},
		{"uppercase id", func(s *AssetSpec) { s.ID = "Alex" }, "ID"},
		{"zero width", func(s *AssetSpec) { s.Width = 0 }, "Width"},
		{"negative height", func(s *AssetSpec) { s.Height = -10 }, "Height"},
		{"missing background", func(s *AssetSpec) { s.Background = "" }, "Background"},
		{"missing text color", func(s *AssetSpec) { s.TextColor = "" }, "TextColor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := base
			tt.mutate(&spec)

			err := spec.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestAssetSpec_Validate_EmptyLabelAllowed(t *testing.T) {
	spec := AssetSpec{ID: "blank", Width: 10, Height: 10, Background: "#000", TextColor: "#fff"}
	assert.NoError(t, spec.Validate())
}

func TestAssetSpec_FileName(t *testing.T) {
	spec := AssetSpec{ID: "team-photo"}
	assert.Equal(t, "team-photo.jpg", spec.FileName())
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseCategory("portfolio")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestManifest_Count(t *testing.T) {
	m := &Manifest{Sets: []CategorySet{
		{Category: CategoryTeam, Specs: []AssetSpec{{ID: "a"}, {ID: "b"}}},
		{Category: CategoryAbout, Specs: []AssetSpec{{ID: "c"}}},
	}}
	assert.Equal(t, 3, m.Count())
	assert.Equal(t, 0, (&Manifest{}).Count())
}
