package sys

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/disgoorg/disgo/rest"
)

// MaxMessageLength is the longest content the platform accepts in one message.
const MaxMessageLength = 2000

// Truncate truncates a string to maxLen runes with ellipsis at the end.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	r := []rune(s)
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// SanitizeInput defuses mass mentions and caps the text at one message.
func SanitizeInput(text string) string {
	text = strings.ReplaceAll(text, "@everyone", "@\u200beveryone")
	text = strings.ReplaceAll(text, "@here", "@\u200bhere")
	return strings.TrimSpace(Truncate(text, MaxMessageLength))
}

// FormatDuration renders a non-negative duration as "1h 2m 3s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%dh %dm %ds", total/3600, total%3600/60, total%60)
}

// FormatDurationShort renders a duration as "1h 2m".
func FormatDurationShort(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%dh %dm", total/3600, total%3600/60)
}

// --- Platform Errors ---

func restStatus(err error) int {
	var restErr *rest.Error
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode
	}
	return 0
}

// IsForbidden reports whether the platform refused the call for lack of access.
func IsForbidden(err error) bool {
	return err != nil && restStatus(err) == http.StatusForbidden
}

// IsNotFound reports whether the platform no longer knows the target.
func IsNotFound(err error) bool {
	return err != nil && restStatus(err) == http.StatusNotFound
}
