package catalog

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"koopa/pkg/models"

	"github.com/xuri/excelize/v2"
)

var yearPattern = regexp.MustCompile(`\b(1[89]\d{2}|2\d{3})\b`)

// maxExcelSerial is the serial number of 9999-12-31.
const maxExcelSerial = 2958465

// cellCoercer converts raw cells to numbers, counting cells that had a value
// but could not be used as-is.
type cellCoercer struct {
	coerced int
}

func (c *cellCoercer) number(s string) float64 {
	f, ok := models.ParseNumber(s)
	if !ok {
		if strings.TrimSpace(s) != "" {
			c.coerced++
		}
		return 0
	}
	if f < 0 {
		c.coerced++
		return 0
	}
	return f
}

// integer truncates toward zero.
func (c *cellCoercer) integer(s string) int {
	f := c.number(s)
	if f > math.MaxInt32 {
		c.coerced++
		return math.MaxInt32
	}
	return int(f)
}

func (c *cellCoercer) popularity(s string) int {
	n := c.integer(s)
	if n > 100 {
		c.coerced++
		return 100
	}
	return n
}

// views parses a view count cell with the same rules as the artifact decoder.
func (c *cellCoercer) views(s string) models.ViewCount {
	v, ok := models.ParseViewCount(s)
	if !ok {
		c.coerced++
	}
	return v
}

// parseYear extracts a calendar year from a cell holding a plain year, an
// Excel date serial or a formatted date string. Zero means unknown.
func parseYear(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		switch {
		case f >= 1000 && f < 10000:
			return int(f)
		case f >= 10000 && f <= maxExcelSerial:
			t, err := excelize.ExcelDateToTime(f, false)
			if err != nil {
				return 0
			}
			return t.Year()
		}
		return 0
	}

	if m := yearPattern.FindString(s); m != "" {
		year, err := strconv.Atoi(m)
		if err == nil {
			return year
		}
	}
	return 0
}
