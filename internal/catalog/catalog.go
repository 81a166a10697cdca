// Package catalog defines the built-in placeholder assets for the company site.
package catalog

import (
	"github.com/jonathan/site-placeholders/internal/accent"
	"github.com/jonathan/site-placeholders/internal/types"
)

// Team portraits are fixed-size squares on a dark background.
const (
	TeamSize       = 400
	TeamBackground = "#1e293b"
	TeamText       = "#ffffff"
)

// The about page has a single wide illustration.
const (
	AboutWidth      = 800
	AboutHeight     = 600
	AboutBackground = "#0f172a"
	AboutText       = "#ffffff"
)

// TeamSpec builds a team portrait spec with the category defaults.
func TeamSpec(id, label string) types.AssetSpec {
	return types.AssetSpec{
		ID:         id,
		Label:      label,
		Width:      TeamSize,
		Height:     TeamSize,
		Background: TeamBackground,
		TextColor:  TeamText,
	}
}

// GallerySpec builds a gallery spec colored by its accent.
func GallerySpec(id, label string, width, height int, a accent.Accent) types.AssetSpec {
	style := a.Style()
	return types.AssetSpec{
		ID:         id,
		Label:      label,
		Width:      width,
		Height:     height,
		Background: style.Background,
		TextColor:  style.Text,
	}
}

// AboutSpec builds the about-page illustration spec.
func AboutSpec(id, label string) types.AssetSpec {
	return types.AssetSpec{
		ID:         id,
		Label:      label,
		Width:      AboutWidth,
		Height:     AboutHeight,
		Background: AboutBackground,
		TextColor:  AboutText,
	}
}

// Team returns the team portraits in page order.
func Team() []types.AssetSpec {
	return []types.AssetSpec{
		TeamSpec("alex", "Alex J."),
		TeamSpec("sarah", "Sarah M."),
		TeamSpec("michael", "Michael C."),
		TeamSpec("emily", "Emily R."),
		TeamSpec("david", "David K."),
		TeamSpec("lisa", "Lisa T."),
	}
}

// Gallery returns the gallery photos in page order.
func Gallery() []types.AssetSpec {
	return []types.AssetSpec{
		GallerySpec("office-space", "Office Space", 800, 400, accent.Blue),
		GallerySpec("team-meeting", "Team Meeting", 600, 400, accent.Orange),
		GallerySpec("workshop", "Workshop", 400, 600, accent.Purple),
		GallerySpec("celebration", "Celebration", 600, 600, accent.Teal),
		GallerySpec("collaboration", "Collaboration", 800, 600, accent.Green),
		GallerySpec("presentation", "Presentation", 600, 400, accent.Indigo),
	}
}

// About returns the about-page illustration.
func About() []types.AssetSpec {
	return []types.AssetSpec{
		AboutSpec("team-photo", "Our Team"),
	}
}

// Default returns the built-in manifest: team, gallery, then about.
func Default() *types.Manifest {
	return &types.Manifest{
		Sets: []types.CategorySet{
			{Category: types.CategoryTeam, Specs: Team()},
			{Category: types.CategoryGallery, Specs: Gallery()},
			{Category: types.CategoryAbout, Specs: About()},
		},
	}
}
