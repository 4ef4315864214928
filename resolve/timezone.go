package resolve

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

const (
	DefaultTimezoneLimit  = 5
	DefaultTimezoneCutoff = 0.4
)

// Timezones matches query against catalog. A single exact hit comes back alone, as does any
// other name the tz database loads; otherwise substring hits, or failing those the closest
// names, up to limit. Empty means no match.
func Timezones(catalog []string, query string, limit int, cutoff float64) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	for _, tz := range catalog {
		if tz == query {
			return []string{tz}
		}
	}
	for _, tz := range catalog {
		if strings.EqualFold(tz, query) {
			return []string{tz}
		}
	}
	if _, err := Location(query); err == nil {
		return []string{query}
	}

	lower := strings.ToLower(query)
	tokens := strings.Fields(lower)

	var hits []string
	for _, tz := range catalog {
		entry := strings.ToLower(tz)
		if strings.Contains(entry, lower) || containsAny(entry, tokens) {
			hits = append(hits, tz)
			if len(hits) == limit {
				break
			}
		}
	}
	if len(hits) > 0 {
		return hits
	}

	lowered := make([]string, len(catalog))
	for i, tz := range catalog {
		lowered[i] = strings.ToLower(tz)
	}
	matches := closeMatches(lower, lowered, limit, cutoff)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		for i, l := range lowered {
			if l == m {
				out = append(out, catalog[i])
				break
			}
		}
	}
	return out
}

func containsAny(entry string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(entry, t) {
			return true
		}
	}
	return false
}

// Location loads a tz database name; the empty name and "Local" are rejected.
func Location(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" || strings.EqualFold(name, "local") {
		return nil, fmt.Errorf("unknown time zone %q", name)
	}
	return time.LoadLocation(name)
}
