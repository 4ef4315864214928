// Package resolve turns free-text identifiers into members and timezone names.
package resolve

import (
	"errors"
	"regexp"
	"strings"

	"github.com/disgoorg/snowflake/v2"
)

// DefaultMemberFloor is the similarity score a fuzzy member match must exceed.
const DefaultMemberFloor = 70

var ErrMemberNotFound = errors.New("member not found")

var mentionPattern = regexp.MustCompile(`^<@!?(\d+)>`)

// Candidate is the slice of a roster entry the resolver needs.
type Candidate struct {
	ID          snowflake.ID
	Name        string
	DisplayName string
}

// Member finds the roster entry named by identifier: a raw id, a mention, an exact
// display or primary name, and finally the closest name scoring above floor.
func Member(roster []Candidate, identifier string, floor int) (Candidate, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || len(roster) == 0 {
		return Candidate{}, ErrMemberNotFound
	}

	if isDigits(identifier) {
		if c, ok := byID(roster, identifier); ok {
			return c, nil
		}
	}

	if m := mentionPattern.FindStringSubmatch(identifier); m != nil {
		if c, ok := byID(roster, m[1]); ok {
			return c, nil
		}
	}

	for _, c := range roster {
		if strings.EqualFold(c.DisplayName, identifier) || strings.EqualFold(c.Name, identifier) {
			return c, nil
		}
	}

	best := Candidate{}
	bestScore := floor
	found := false
	for _, c := range roster {
		if s := Score(c.DisplayName, identifier); s > bestScore {
			best, bestScore, found = c, s, true
		}
		if s := Score(c.Name, identifier); s > bestScore {
			best, bestScore, found = c, s, true
		}
	}
	if !found {
		return Candidate{}, ErrMemberNotFound
	}
	return best, nil
}

func byID(roster []Candidate, raw string) (Candidate, bool) {
	id, err := snowflake.Parse(raw)
	if err != nil {
		return Candidate{}, false
	}
	for _, c := range roster {
		if c.ID == id {
			return c, true
		}
	}
	return Candidate{}, false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
