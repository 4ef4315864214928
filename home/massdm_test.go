package home

import (
	"context"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
)

func TestMassDMPromptDecisions(t *testing.T) {
	const owner, other snowflake.ID = 10, 20

	tests := []struct {
		name    string
		clicker snowflake.ID
		confirm bool
		click   clickResult
		fire    bool
		want    promptOutcome
	}{
		{name: "confirm", clicker: owner, confirm: true, click: clickAccepted, want: promptConfirmed},
		{name: "cancel", clicker: owner, confirm: false, click: clickAccepted, want: promptCancelled},
		{name: "timeout", fire: true, want: promptExpired},
		{name: "not owner", clicker: other, confirm: true, click: clickNotOwner, fire: true, want: promptExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompts := newMassDMPrompts()
			timer := make(chan time.Time, 1)
			prompts.after = func(time.Duration) <-chan time.Time { return timer }

			id := prompts.open(owner)
			if tt.clicker != 0 {
				assert.Equal(t, tt.click, prompts.click(id, tt.clicker, tt.confirm))
			}
			if tt.fire {
				timer <- time.Now()
			}

			assert.Equal(t, tt.want, prompts.wait(context.Background(), id, time.Minute))
			// Closed prompts reject late clicks.
			assert.Equal(t, clickExpired, prompts.click(id, owner, true))
		})
	}
}

func TestMassDMPromptSecondClickIgnored(t *testing.T) {
	prompts := newMassDMPrompts()
	id := prompts.open(10)

	assert.Equal(t, clickAccepted, prompts.click(id, 10, false))
	assert.Equal(t, clickExpired, prompts.click(id, 10, true))
	assert.Equal(t, promptCancelled, prompts.wait(context.Background(), id, time.Minute))
}

func TestMassDMPromptAbandoned(t *testing.T) {
	prompts := newMassDMPrompts()
	prompts.after = func(time.Duration) <-chan time.Time { return nil }
	id := prompts.open(10)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, promptAbandoned, prompts.wait(ctx, id, time.Minute))
	assert.Equal(t, promptExpired, prompts.wait(context.Background(), "missing", time.Minute))
}
