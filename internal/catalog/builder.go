// Package catalog turns source spreadsheet rows into the ranked track catalog
// and writes it as the JSON artifact served to the site.
package catalog

import (
	"koopa/internal/lookup"
	"koopa/internal/sheet"
	"koopa/pkg/models"
)

// Stats summarizes what a Build did to the source rows
type Stats struct {
	Rows         int `json:"rows"`
	CleanedNames int `json:"cleanedNames"`
	ArtworkHits  int `json:"artworkHits"`
	CoercedCells int `json:"coercedCells"`
}

// Build maps rows to track records in source order. The rank of each record
// is its 1-based position; rows are never dropped or re-sorted.
func Build(rows []sheet.Row) ([]models.TrackRecord, Stats) {
	tracks := make([]models.TrackRecord, 0, len(rows))
	stats := Stats{Rows: len(rows)}
	coerce := &cellCoercer{}

	for i, row := range rows {
		record := buildRecord(i+1, row, coerce)

		if record.Track != row.Get(ColumnTrackName) {
			stats.CleanedNames++
		}
		if record.HasArtwork() {
			stats.ArtworkHits++
		}
		tracks = append(tracks, record)
	}

	stats.CoercedCells = coerce.coerced
	return tracks, stats
}

func buildRecord(rank int, row sheet.Row, coerce *cellCoercer) models.TrackRecord {
	rawTitle := row.Get(ColumnTrackName)

	record := models.TrackRecord{
		Rank:           rank,
		Track:          lookup.CleanTrackName(rawTitle),
		Game:           row.Get(ColumnGameName),
		Artist:         row.Get(ColumnArtistName),
		Spotify:        coerce.popularity(row.Get(ColumnPopularity)),
		YouTube:        coerce.views(row.Get(ColumnYouTubeViews)),
		Ranking:        coerce.number(row.Get(ColumnRanking)),
		SpotifyRelease: models.Year(parseYear(row.Get(ColumnSpotifyRelease))),
		Genres:         row.Get(ColumnGenres),
		Type:           row.Get(ColumnSongType),
		Rating:         coerce.number(row.Get(ColumnRating)),
		Metacritic:     coerce.integer(row.Get(ColumnMetacritic)),
		Platforms:      row.Get(ColumnPlatforms),
		Developer:      row.Get(ColumnDevelopers),
		Publisher:      row.Get(ColumnPublishers),
		Source:         row.Get(ColumnSource),
		SpotifyLink:    row.Get(ColumnSpotifyLink),
		YouTubeLink:    row.Get(ColumnYouTubeLink),
	}

	// Artwork keys were curated against raw titles, not display names.
	if artwork, ok := lookup.ResolveArtwork(rawTitle); ok {
		record.SpotifyArtwork = artwork
	}

	if year := parseYear(row.Get(ColumnGameRelease)); year != 0 {
		record.GameRelease = &year
	}

	return record
}
