package proc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestBroadcastTally(t *testing.T) {
	t.Parallel()

	targets := []snowflake.ID{1, 2, 3, 4, 5, 6, 7}
	rejected := map[snowflake.ID]bool{2: true, 5: true, 6: true}

	var attempts []snowflake.ID
	send := func(_ context.Context, id snowflake.ID) error {
		attempts = append(attempts, id)
		if rejected[id] {
			return errors.New("cannot send messages to this user")
		}
		return nil
	}

	tally := Broadcast(context.Background(), targets, send, rate.NewLimiter(rate.Inf, 1))
	assert.Equal(t, Tally{Successful: 4, Failed: 3, Total: 7}, tally)
	assert.Equal(t, targets, attempts)
}

func TestBroadcastEmpty(t *testing.T) {
	t.Parallel()

	tally := Broadcast(context.Background(), nil, func(context.Context, snowflake.ID) error {
		t.Fatal("send called without targets")
		return nil
	}, NewPacer(0))
	assert.Equal(t, Tally{}, tally)
}

func TestBroadcastCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	sent := 0
	send := func(context.Context, snowflake.ID) error {
		sent++
		cancel()
		return nil
	}

	tally := Broadcast(ctx, []snowflake.ID{1, 2, 3}, send, NewPacer(time.Hour))
	require.Equal(t, 1, sent)
	assert.Equal(t, Tally{Successful: 1, Failed: 2, Total: 3}, tally)
}

func TestNewPacer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rate.Inf, NewPacer(0).Limit())
	assert.InDelta(t, 1.0, float64(NewPacer(time.Second).Limit()), 1e-9)
}
