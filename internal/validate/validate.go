package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// US ZIP: 5 digits (ZIP+4 not accepted by the rate heuristic anyway)
	reZIP     = regexp.MustCompile(`^[0-9]{5}$`)
	reCountry = regexp.MustCompile(`^[A-Z]{2}$`)
	reID      = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reVINJunk = regexp.MustCompile(`[^A-Z0-9]`)
	reSort    = regexp.MustCompile(`^(relevance|price_asc|price_desc|year_asc|year_desc)$`)
)

func ZIP(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 5 {
		return "", false
	}
	return s, reZIP.MatchString(s)
}

// Country uppercases and checks for an ISO-2 code; empty defaults to US.
func Country(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if !reCountry.MatchString(s) {
		return "US"
	}
	return s
}

// ID validates a simple resource identifier (product ids, ai- listings).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// VIN strips separators and uppercases; a decodable VIN is exactly 17 chars.
func VIN(s string) (string, bool) {
	s = reVINJunk.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), "")
	return s, len(s) == 17
}

func Sort(s string) string {
	s = strings.TrimSpace(s)
	if !reSort.MatchString(s) {
		return "relevance"
	}
	return s
}

func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	} // clamp to avoid abuse
	return n
}

func Page(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

func PageSize(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 60
	}
	if n > 120 {
		return 120
	}
	return n
}
