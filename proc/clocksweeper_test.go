package proc

import (
	"testing"
	"time"

	"github.com/leeineian/alpha/sys"
	"github.com/stretchr/testify/assert"
)

func TestReminderNotice(t *testing.T) {
	n := ReminderNotice(30 * time.Minute)

	assert.Equal(t, sys.ColorWarning, n.Color)
	assert.Equal(t, sys.MsgClockReminderTitle, n.Title)
	assert.Contains(t, n.Body, "30")
	assert.Contains(t, n.Body, sys.EmojiTick)
	assert.Contains(t, n.Body, sys.EmojiCross)
}

func TestOutcomeNotice(t *testing.T) {
	d := 2*time.Hour + 5*time.Minute

	n, ok := OutcomeNotice(Outcome{Action: ActionContinue})
	assert.True(t, ok)
	assert.Equal(t, sys.MsgClockContinueTitle, n.Title)

	n, ok = OutcomeNotice(Outcome{Action: ActionStop, Duration: d})
	assert.True(t, ok)
	assert.Equal(t, sys.ColorSuccess, n.Color)
	assert.Contains(t, n.Body, "2h 5m")

	n, ok = OutcomeNotice(Outcome{Action: ActionTimeout, Duration: d})
	assert.True(t, ok)
	assert.Equal(t, sys.ColorWarning, n.Color)
	assert.Contains(t, n.Body, "2h 5m")

	for _, a := range []Action{ActionGone, ActionAbandoned} {
		_, ok = OutcomeNotice(Outcome{Action: a})
		assert.False(t, ok)
	}
}

func TestReactionResponse(t *testing.T) {
	tests := []struct {
		emoji string
		want  Response
		ok    bool
	}{
		{sys.EmojiTick, ResponseContinue, true},
		{sys.EmojiCross, ResponseStop, true},
		{"👍", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		r, ok := reactionResponse(tt.emoji)
		assert.Equal(t, tt.ok, ok, tt.emoji)
		assert.Equal(t, tt.want, r, tt.emoji)
	}
}
