package proc

import (
	"context"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"golang.org/x/time/rate"
)

// Tally counts the results of one broadcast. Successful+Failed always equals Total.
type Tally struct {
	Successful int
	Failed     int
	Total      int
}

// NewPacer allows one send per delay with no burst beyond the first.
func NewPacer(delay time.Duration) *rate.Limiter {
	if delay <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(delay), 1)
}

// Broadcast calls send once per target, paced by limiter. A target whose send fails, or
// that is still queued when ctx ends, counts as failed.
func Broadcast(ctx context.Context, targets []snowflake.ID, send func(context.Context, snowflake.ID) error, limiter *rate.Limiter) Tally {
	tally := Tally{Total: len(targets)}
	for i, id := range targets {
		if err := limiter.Wait(ctx); err != nil {
			tally.Failed += len(targets) - i
			return tally
		}
		if err := send(ctx, id); err != nil {
			tally.Failed++
			continue
		}
		tally.Successful++
	}
	return tally
}
