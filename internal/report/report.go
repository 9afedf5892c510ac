// Package report summarizes a built catalog for the dashboard: which chart
// inputs are populated, how the tracks break down, and which tracks still
// lack local artwork.
package report

import (
	"slices"
	"sort"
	"strings"

	"koopa/internal/lookup"
	"koopa/pkg/models"

	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SuperstarReach is the combined reach at which a track counts as a superstar.
// Spotify popularity is weighted as one million views per point.
const SuperstarReach int64 = 50_000_000

// Chart names a dashboard chart and the record fields it is drawn from.
type Chart struct {
	Name   string
	Fields []string
}

// Charts lists the dashboard charts in display order.
var Charts = []Chart{
	{Name: "Nintendo Dominance", Fields: []string{"game", "developer", "publisher"}},
	{Name: "Superstar Tracks", Fields: []string{"track", "game", "spotify", "youtube", "ranking"}},
	{Name: "Correlation Analysis", Fields: []string{"spotify", "youtube", "source"}},
	{Name: "Time Distribution", Fields: []string{"spotifyRelease"}},
	{Name: "Song Type Performance", Fields: []string{"type", "spotify", "youtube"}},
	{Name: "Platform Performance", Fields: []string{"platforms", "ranking"}},
}

var franchises = []string{"mario", "zelda", "donkey kong"}

// FieldCoverage counts the tracks with a non-empty value for one field.
type FieldCoverage struct {
	Field   string
	Present int
}

// ChartReadiness is the field coverage of one chart.
type ChartReadiness struct {
	Chart  string
	Fields []FieldCoverage
}

// Ready reports whether every track has every field the chart needs.
func (c ChartReadiness) Ready(total int) bool {
	for _, f := range c.Fields {
		if f.Present < total {
			return false
		}
	}
	return total > 0
}

// TypeCount is the number of tracks of one song type.
type TypeCount struct {
	Type  string
	Count int
}

// ArtworkSuggestion proposes a local artwork path for a track without one.
type ArtworkSuggestion struct {
	Rank      int
	Track     string
	Suggested string
}

// Report is the analysis of one catalog.
type Report struct {
	Total           int
	Charts          []ChartReadiness
	FranchiseTracks int
	Superstars      []models.TrackRecord
	EarliestYear    int
	LatestYear      int
	SongTypes       []TypeCount
	Platforms       []string
	CleanedNames    int
	WithArtwork     int
	MissingArtwork  []ArtworkSuggestion

	// Export is set when the dashboard export was checked against the catalog.
	Export *ExportCheck
}

// Analyze computes the report for tracks. An empty catalog yields a zero
// report with every chart marked not ready.
func Analyze(tracks []models.TrackRecord) *Report {
	r := &Report{Total: len(tracks)}

	for _, chart := range Charts {
		readiness := ChartReadiness{Chart: chart.Name}
		for _, field := range chart.Fields {
			coverage := FieldCoverage{Field: field}
			for i := range tracks {
				if hasField(&tracks[i], field) {
					coverage.Present++
				}
			}
			readiness.Fields = append(readiness.Fields, coverage)
		}
		r.Charts = append(r.Charts, readiness)
	}

	displayNames := make(map[string]bool)
	for _, clean := range lookup.CleanNames() {
		displayNames[clean] = true
	}

	typeCounts := make(map[string]int)
	platforms := make(map[string]bool)
	titleCase := cases.Title(language.Und)

	for _, t := range tracks {
		if IsFranchiseTrack(t) {
			r.FranchiseTracks++
		}
		if Reach(t) >= SuperstarReach {
			r.Superstars = append(r.Superstars, t)
		}

		if year := int(t.SpotifyRelease); year > 0 {
			if r.EarliestYear == 0 || year < r.EarliestYear {
				r.EarliestYear = year
			}
			if year > r.LatestYear {
				r.LatestYear = year
			}
		}

		songType := strings.TrimSpace(t.Type)
		if songType == "" {
			songType = "Unknown"
		}
		typeCounts[titleCase.String(songType)]++

		for _, p := range strings.Split(t.Platforms, ", ") {
			if p = strings.TrimSpace(p); p != "" {
				platforms[p] = true
			}
		}

		if displayNames[t.Track] {
			r.CleanedNames++
		}
		if t.HasArtwork() {
			r.WithArtwork++
		} else {
			r.MissingArtwork = append(r.MissingArtwork, ArtworkSuggestion{
				Rank:      t.Rank,
				Track:     t.Track,
				Suggested: SuggestArtworkPath(t.Track),
			})
		}
	}

	for songType, count := range typeCounts {
		r.SongTypes = append(r.SongTypes, TypeCount{Type: songType, Count: count})
	}
	sort.Slice(r.SongTypes, func(i, j int) bool {
		if r.SongTypes[i].Count != r.SongTypes[j].Count {
			return r.SongTypes[i].Count > r.SongTypes[j].Count
		}
		return r.SongTypes[i].Type < r.SongTypes[j].Type
	})

	for p := range platforms {
		r.Platforms = append(r.Platforms, p)
	}
	slices.Sort(r.Platforms)

	return r
}

// FranchiseShare is the percentage of tracks from the Nintendo franchises.
func (r *Report) FranchiseShare() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.FranchiseTracks) / float64(r.Total) * 100
}

// IsFranchiseTrack reports whether the track's game belongs to Mario, Zelda
// or Donkey Kong.
func IsFranchiseTrack(t models.TrackRecord) bool {
	game := strings.ToLower(t.Game)
	for _, f := range franchises {
		if strings.Contains(game, f) {
			return true
		}
	}
	return false
}

// Reach combines Spotify popularity and YouTube views into one figure.
func Reach(t models.TrackRecord) int64 {
	return int64(t.Spotify)*1_000_000 + int64(t.YouTube)
}

// SuggestArtworkPath derives a local artwork path from a display name.
func SuggestArtworkPath(track string) string {
	name := slug.Make(track)
	if name == "" {
		name = "untitled"
	}
	return "/images/" + name + ".jpg"
}

func hasField(t *models.TrackRecord, field string) bool {
	switch field {
	case "track":
		return t.Track != ""
	case "game":
		return t.Game != ""
	case "artist":
		return t.Artist != ""
	case "developer":
		return t.Developer != ""
	case "publisher":
		return t.Publisher != ""
	case "source":
		return t.Source != ""
	case "type":
		return t.Type != ""
	case "platforms":
		return t.Platforms != ""
	case "spotify":
		return t.Spotify > 0
	case "youtube":
		return t.YouTube > 0
	case "ranking":
		return t.Ranking > 0
	case "spotifyRelease":
		return t.SpotifyRelease > 0
	default:
		return false
	}
}
