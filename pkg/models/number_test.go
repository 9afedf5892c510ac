package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"62", 62, true},
		{" 4.4 ", 4.4, true},
		{"1,204,332", 1204332, true},
		{"1.2E+07", 12000000, true},
		{"85%", 85, true},
		{"-3", -3, true},
		{"", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
		{"n/a", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseNumber(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseViewCount(t *testing.T) {
	tests := []struct {
		input  string
		want   ViewCount
		wantOK bool
	}{
		{"48213456", 48213456, true},
		{"1,204,332", 1204332, true},
		{"1.2E+07", 12000000, true},
		{"", 0, true},
		{"abc", 0, false},
		{"-5", 0, false},
		{"9e30", math.MaxInt64, false},
	}

	for _, tt := range tests {
		got, ok := ParseViewCount(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseViewCount(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestViewCountJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ViewCount
	}{
		{name: "number", input: `48213456`, want: 48213456},
		{name: "float", input: `1.2E+07`, want: 12000000},
		{name: "numeric string", input: `"48123456"`, want: 48123456},
		{name: "separated string", input: `"1,204,332"`, want: 1204332},
		{name: "empty string", input: `""`, want: 0},
		{name: "text", input: `"unknown"`, want: 0},
		{name: "null", input: `null`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v ViewCount
			if err := json.Unmarshal([]byte(tt.input), &v); err != nil {
				t.Fatalf("Unmarshal(%s) unexpected error: %v", tt.input, err)
			}
			if v != tt.want {
				t.Errorf("Unmarshal(%s) = %d, want %d", tt.input, v, tt.want)
			}
		})
	}

	data, err := json.Marshal(TrackRecord{YouTube: 1204332})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if fields["youtube"] != float64(1204332) {
		t.Errorf("Expected youtube to encode as a number, got %v", fields["youtube"])
	}
}

func TestTrackRecordMixedViews(t *testing.T) {
	input := `[
  {"rank": 1, "track": "Ground Theme", "youtube": "48123456"},
  {"rank": 2, "track": "Tetris Theme", "youtube": ""},
  {"rank": 3, "track": "Sweden", "youtube": 310000000}
]`

	var tracks []TrackRecord
	if err := json.Unmarshal([]byte(input), &tracks); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	want := []ViewCount{48123456, 0, 310000000}
	for i, w := range want {
		if tracks[i].YouTube != w {
			t.Errorf("tracks[%d].YouTube = %d, want %d", i, tracks[i].YouTube, w)
		}
	}
}
