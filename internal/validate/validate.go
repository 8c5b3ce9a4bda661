package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reQ  = regexp.MustCompile(`^[A-Za-z0-9 _'\-]{1,50}$`)
	reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// Category chips shown on the feed. "All" passes everything.
var categories = map[string]bool{
	"All": true, "Sneakers": true, "Outerwear": true, "Rare Finds": true, "Accessories": true,
}

// Q validates a search query: trims, enforces allowed characters and max length.
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 50 {
		s = s[:50]
	}
	return s, reQ.MatchString(s)
}

// ID validates a product identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Category normalizes a feed filter chip; unknown values fall back to All.
func Category(s string) string {
	s = strings.TrimSpace(s)
	if categories[s] {
		return s
	}
	return "All"
}

// Price parses a slider value and clamps it to the suggested range.
func Price(s string, lo, hi float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
