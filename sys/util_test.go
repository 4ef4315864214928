package sys

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"hello world", 8, "hello..."},
		{"héllo wörld", 8, "héllo..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.max), tt.in)
	}
}

func TestSanitizeInput(t *testing.T) {
	assert.Equal(t, "hi @\u200beveryone and @\u200bhere", SanitizeInput("  hi @everyone and @here "))

	long := strings.Repeat("a", MaxMessageLength+50)
	out := SanitizeInput(long)
	assert.Len(t, []rune(out), MaxMessageLength)
	assert.True(t, strings.HasSuffix(out, "..."))
}

func TestFormatDuration(t *testing.T) {
	d := time.Hour + 2*time.Minute + 3*time.Second + 400*time.Millisecond
	assert.Equal(t, "1h 2m 3s", FormatDuration(d))
	assert.Equal(t, "1h 2m", FormatDurationShort(d))
	assert.Equal(t, "0h 0m 0s", FormatDuration(-time.Minute))
	assert.Equal(t, "26h 0m", FormatDurationShort(26*time.Hour))
}

func TestRestErrorHelpersIgnoreNil(t *testing.T) {
	assert.False(t, IsForbidden(nil))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(assert.AnError))
}
