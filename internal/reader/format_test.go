package reader

import (
	"testing"

	"koopa/pkg/models"
)

func TestFormatViews(t *testing.T) {
	tests := []struct {
		views models.ViewCount
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1K"},
		{1499, "1K"},
		{1500, "2K"},
		{999_499, "999K"},
		{999_999, "1000K"},
		{1_000_000, "1M"},
		{48_213_456, "48M"},
		{2_500_000, "3M"},
		{310_000_000, "310M"},
	}

	for _, tt := range tests {
		if got := FormatViews(tt.views); got != tt.want {
			t.Errorf("FormatViews(%d) = %q, want %q", tt.views, got, tt.want)
		}
	}
}
