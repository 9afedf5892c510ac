package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// TrackRecord represents one ranked entry of the video game music catalog
type TrackRecord struct {
	Rank           int       `json:"rank"`
	Track          string    `json:"track"`
	Game           string    `json:"game"`
	Artist         string    `json:"artist"`
	Spotify        int       `json:"spotify"` // popularity, 0-100
	YouTube        ViewCount `json:"youtube"`
	Ranking        float64   `json:"ranking"` // precomputed streaming score
	SpotifyRelease Year      `json:"spotifyRelease"`
	Genres         string    `json:"genres"`
	Type           string    `json:"type"`
	Rating         float64   `json:"rating"`
	Metacritic     int       `json:"metacritic"`
	Platforms      string    `json:"platforms"`
	Developer      string    `json:"developer"`
	Publisher      string    `json:"publisher"`
	Source         string    `json:"source"`
	SpotifyLink    string    `json:"spotifyLink,omitempty"`
	YouTubeLink    string    `json:"youtubeLink,omitempty"`
	SpotifyArtwork string    `json:"spotifyArtwork,omitempty"`
	GameRelease    *int      `json:"gameRelease,omitempty"`
}

// HasArtwork reports whether a local artwork path was resolved for the track
func (t *TrackRecord) HasArtwork() bool {
	return t.SpotifyArtwork != ""
}

// Year is a release year. Zero means unknown and is encoded as "".
type Year int

// MarshalJSON writes the year as a number, or "" when unknown.
func (y Year) MarshalJSON() ([]byte, error) {
	if y == 0 {
		return []byte(`""`), nil
	}
	return []byte(strconv.Itoa(int(y))), nil
}

// UnmarshalJSON accepts a number, a numeric string, "" or null.
func (y *Year) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*y = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*y = 0
			return nil
		}
		data = []byte(s)
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", string(data), err)
	}
	*y = Year(int(f))
	return nil
}
