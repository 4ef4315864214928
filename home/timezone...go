package home

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/resolve"
	"github.com/leeineian/alpha/sys"
	"github.com/sho0pi/naturaltime"
)

const maxAutocompleteChoices = 25

var (
	timeParserOnce sync.Once
	timeParser     *naturaltime.Parser
	timeParserErr  error
)

func init() {
	sys.RegisterAutocompleteHandler("set-timezone", handleTimezoneAutocomplete)
	sys.RegisterAutocompleteHandler("time", handleTimezoneAutocomplete)
}

// resolveTimezone applies the resolver policy: one hit is used as is, several are offered back.
func resolveTimezone(query string) (string, []string) {
	cfg := sys.Cfg()
	matches := resolve.Timezones(resolve.Catalog, query, cfg.TimezoneLimit, cfg.TimezoneCutoff)
	if len(matches) == 1 {
		return matches[0], nil
	}
	return "", matches
}

// timezoneResolutionFailure explains why query did not pick a single timezone.
func timezoneResolutionFailure(query string, options []string) sys.Notice {
	if len(options) == 0 {
		return sys.Failure(sys.MsgTimezoneInvalidTitle, fmt.Sprintf(sys.MsgTimezoneInvalidBody, query))
	}
	quoted := make([]string, len(options))
	for i, o := range options {
		quoted[i] = fmt.Sprintf("• `%s`", o)
	}
	return sys.Warning(sys.MsgTimezoneAmbiguousTitle, fmt.Sprintf(sys.MsgTimezoneAmbiguousBody, query, strings.Join(quoted, "\n")))
}

func handleTimezoneAutocomplete(event *events.AutocompleteInteractionCreate) {
	var query string
	for _, opt := range event.Data.Options {
		if opt.Focused && opt.Value != nil {
			query = strings.Trim(string(opt.Value), `"`)
			break
		}
	}

	var names []string
	if strings.TrimSpace(query) == "" {
		names = resolve.Catalog[:min(maxAutocompleteChoices, len(resolve.Catalog))]
	} else {
		names = resolve.Timezones(resolve.Catalog, query, maxAutocompleteChoices, sys.Cfg().TimezoneCutoff)
	}

	choices := make([]discord.AutocompleteChoice, 0, len(names))
	for _, n := range names {
		choices = append(choices, discord.AutocompleteChoiceString{Name: n, Value: n})
	}
	_ = event.AutocompleteResult(choices)
}

// --- Time formatting ---

func formatClock(t time.Time) string { return t.Format("15:04:05") }

func formatClockZone(t time.Time) string { return t.Format("15:04:05 MST") }

func formatDate(t time.Time) string { return t.Format("2006-01-02") }

func formatDateTimeZone(t time.Time) string { return t.Format("2006-01-02 15:04:05 MST") }

func formatClock12(t time.Time) string { return t.Format("03:04:05 PM") }

func formatLongDate(t time.Time) string { return t.Format("Monday, January 02, 2006") }

// timezoneDisplay turns "America/New_York" into "America → New York".
func timezoneDisplay(name string) string {
	return strings.ReplaceAll(strings.ReplaceAll(name, "_", " "), "/", " → ")
}

// sessionLocation loads a stored session timezone, falling back to UTC.
func sessionLocation(name string) *time.Location {
	if loc, err := resolve.Location(name); err == nil {
		return loc
	}
	return time.UTC
}

// savedLocation returns the caller's saved timezone, or UTC with ok false when none loads.
func savedLocation(userID snowflake.ID) (string, *time.Location, bool) {
	name, ok := sys.Timezones.Get(userID)
	if !ok {
		return "UTC", time.UTC, false
	}
	loc, err := resolve.Location(name)
	if err != nil {
		return "UTC", time.UTC, false
	}
	return name, loc, true
}

// parseFixedTime reads "HH:MM" as that time today in loc, or "YYYY-MM-DD HH:MM" in loc.
func parseFixedTime(input string, loc *time.Location, now time.Time) (time.Time, bool) {
	input = strings.TrimSpace(input)
	if len(strings.Fields(input)) == 1 {
		t, err := time.ParseInLocation("15:04", input, loc)
		if err != nil {
			return time.Time{}, false
		}
		today := now.In(loc)
		return time.Date(today.Year(), today.Month(), today.Day(), t.Hour(), t.Minute(), 0, 0, loc), true
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", input, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// parseTimeInput tries the fixed layouts first and natural language ("tomorrow 9am") after.
func parseTimeInput(input string, loc *time.Location, now time.Time) (time.Time, error) {
	if t, ok := parseFixedTime(input, loc, now); ok {
		return t, nil
	}

	timeParserOnce.Do(func() {
		timeParser, timeParserErr = naturaltime.New()
		if timeParserErr != nil {
			sys.LogError(sys.MsgNaturalTimeInitFail, timeParserErr)
		}
	})
	if timeParserErr != nil {
		return time.Time{}, timeParserErr
	}

	result, err := timeParser.ParseDate(input, now.In(loc))
	if err != nil || result == nil {
		return time.Time{}, fmt.Errorf("could not parse time: %s", input)
	}
	return result.In(loc), nil
}
