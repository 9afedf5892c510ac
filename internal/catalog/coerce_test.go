package catalog

import "testing"

func TestCellCoercer(t *testing.T) {
	c := &cellCoercer{}

	if got := c.integer("75.9"); got != 75 {
		t.Errorf("integer(75.9) = %d, want 75", got)
	}
	if got := c.popularity("250"); got != 100 {
		t.Errorf("popularity(250) = %d, want 100", got)
	}
	if got := c.views("48213456"); got != 48213456 {
		t.Errorf("views(48213456) = %d", got)
	}
	if got := c.views("9e30"); got <= 0 {
		t.Errorf("views(9e30) = %d, want a positive clamp", got)
	}
	if got := c.number(""); got != 0 {
		t.Errorf("number(\"\") = %v, want 0", got)
	}
	if c.coerced != 2 {
		t.Errorf("Expected 2 coerced cells (clamped popularity and views), got %d", c.coerced)
	}

	c.number("bogus")
	c.number("-1")
	if c.coerced != 4 {
		t.Errorf("Expected malformed and negative cells to be counted, got %d", c.coerced)
	}
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"1985", 1985},
		{"2016.0", 2016},
		{"31303", 1985}, // Excel serial for 1985-09-13
		{"2011-11-18", 2011},
		{"9/13/1985", 1985},
		{"Sep 13, 1985", 1985},
		{"", 0},
		{"TBA", 0},
		{"12", 0},
		{"-4", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseYear(tt.input); got != tt.want {
				t.Errorf("parseYear(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
