package catalog

import "koopa/internal/sheet"

// Source sheet column headers.
const (
	ColumnTrackName      = "track_name"
	ColumnGameName       = "game_name"
	ColumnArtistName     = "spotify_artist_name"
	ColumnPopularity     = "spotify_popularity"
	ColumnYouTubeViews   = "youtube_views"
	ColumnRanking        = "streaming_ranking"
	ColumnSpotifyRelease = "spotify_release_year"
	ColumnGenres         = "game_genres"
	ColumnSongType       = "song_type"
	ColumnRating         = "game_rating"
	ColumnMetacritic     = "game_metacritic"
	ColumnPlatforms      = "game_platforms"
	ColumnDevelopers     = "game_developers"
	ColumnPublishers     = "game_publishers"
	ColumnSource         = "discovery_source"
	ColumnSpotifyLink    = "popular_spotify_link"
	ColumnYouTubeLink    = "original_youtube_link"
	ColumnGameRelease    = "game_release_date"
)

// Columns lists every column the builder reads, in sheet order.
var Columns = []string{
	ColumnTrackName,
	ColumnGameName,
	ColumnArtistName,
	ColumnPopularity,
	ColumnYouTubeViews,
	ColumnRanking,
	ColumnSpotifyRelease,
	ColumnGenres,
	ColumnSongType,
	ColumnRating,
	ColumnMetacritic,
	ColumnPlatforms,
	ColumnDevelopers,
	ColumnPublishers,
	ColumnSource,
	ColumnSpotifyLink,
	ColumnYouTubeLink,
	ColumnGameRelease,
}

// EmptyColumns returns the builder columns that no row fills, in sheet order.
// A renamed or dropped header in the source shows up here.
func EmptyColumns(rows []sheet.Row) []string {
	var empty []string
	for _, column := range Columns {
		filled := false
		for _, row := range rows {
			if row.Get(column) != "" {
				filled = true
				break
			}
		}
		if !filled {
			empty = append(empty, column)
		}
	}
	return empty
}
