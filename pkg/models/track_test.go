package models

import (
	"encoding/json"
	"testing"
)

func TestYearJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Year
	}{
		{name: "number", input: `1996`, want: 1996},
		{name: "numeric string", input: `"2008"`, want: 2008},
		{name: "float", input: `2001.0`, want: 2001},
		{name: "empty string", input: `""`, want: 0},
		{name: "null", input: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var y Year
			if err := json.Unmarshal([]byte(tt.input), &y); err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tt.input, err)
			}
			if y != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.input, y, tt.want)
			}
		})
	}

	var y Year
	if err := json.Unmarshal([]byte(`"soon"`), &y); err == nil {
		t.Error("expected error for non-numeric year")
	}
}

func TestTrackRecordOptionalFields(t *testing.T) {
	record := TrackRecord{Rank: 1, Track: "Tetris Theme", Game: "Tetris"}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	for _, absent := range []string{"spotifyArtwork", "gameRelease", "spotifyLink", "youtubeLink"} {
		if _, ok := fields[absent]; ok {
			t.Errorf("expected %s to be omitted, got %v", absent, fields[absent])
		}
	}
	if fields["spotifyRelease"] != "" {
		t.Errorf("expected unknown spotifyRelease to encode as empty string, got %v", fields["spotifyRelease"])
	}
	if record.HasArtwork() {
		t.Error("HasArtwork() = true for record without artwork")
	}
}
