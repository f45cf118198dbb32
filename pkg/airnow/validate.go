package airnow

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	naiveLayouts = []string{
		"2006-01-02",
		"2006-01-02T15",
		"2006-01-02T15:04",
		"2006-01-02T15:04:05",
	}
	zonedLayouts = buildZonedLayouts()
)

func buildZonedLayouts() []string {
	layouts := make([]string, 0, len(naiveLayouts)*3)
	for _, base := range naiveLayouts {
		for _, zone := range []string{"Z07:00", "Z0700", "Z07"} {
			layouts = append(layouts, base+zone)
		}
	}
	return layouts
}

// ValidateZipCode checks that s is a 5-digit US ZIP code and returns it
// unchanged.
func ValidateZipCode(s string) (string, error) {
	if len(s) != 5 {
		return "", invalid("ZIP code", s, ErrInvalidFormat)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return "", invalid("ZIP code", s, ErrInvalidFormat)
		}
	}
	return s, nil
}

// ValidateDate parses an ISO-8601 date or date-time. Values carrying a zone
// designator are rejected. The result is in time.UTC.
func ValidateDate(s string) (time.Time, error) {
	norm := strings.TrimSpace(s)
	if len(norm) > 10 && norm[10] == ' ' {
		norm = norm[:10] + "T" + norm[11:]
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, norm, time.UTC); err == nil {
			return t, nil
		}
	}
	for _, layout := range zonedLayouts {
		if _, err := time.Parse(layout, norm); err == nil {
			return time.Time{}, invalid("date", s, ErrTimezonePresent)
		}
	}
	return time.Time{}, invalid("date", s, ErrParseFailure)
}

// ValidateLatitude rejects values outside [-90, 90].
func ValidateLatitude(x float64) (float64, error) {
	if math.IsNaN(x) || math.Abs(x) > 90 {
		return 0, invalid("latitude", formatCoord(x), ErrOutOfRange)
	}
	return x, nil
}

// ValidateLongitude rejects values outside [-180, 180].
func ValidateLongitude(x float64) (float64, error) {
	if math.IsNaN(x) || math.Abs(x) > 180 {
		return 0, invalid("longitude", formatCoord(x), ErrOutOfRange)
	}
	return x, nil
}

// ValidateDistance rejects non-positive search distances.
func ValidateDistance(n int) (int, error) {
	if n <= 0 {
		return 0, invalid("distance", strconv.Itoa(n), ErrOutOfRange)
	}
	return n, nil
}

// formatCoord prints a coordinate with at least one decimal place, so 1
// becomes "1.0" and -71.05 stays "-71.05".
func formatCoord(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return s
	}
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
