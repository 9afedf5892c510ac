package reader

import (
	"math"
	"strconv"

	"koopa/pkg/models"
)

// FormatViews abbreviates a view count: whole millions with an M suffix,
// whole thousands with a K suffix, otherwise the plain number.
func FormatViews(views models.ViewCount) string {
	n := int64(views)
	switch {
	case n >= 1_000_000:
		return strconv.FormatInt(roundDiv(n, 1_000_000), 10) + "M"
	case n >= 1_000:
		return strconv.FormatInt(roundDiv(n, 1_000), 10) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// roundDiv divides rounding half up.
func roundDiv(n, d int64) int64 {
	return int64(math.Floor(float64(n)/float64(d) + 0.5))
}
