package proc

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestTracker() (*Tracker, *fakeClock) {
	clock := &fakeClock{now: time.Date(2025, 8, 10, 9, 0, 0, 0, time.UTC)}
	t := NewTracker()
	t.now = clock.Now
	return t, clock
}

const (
	alice snowflake.ID = 1001
	bob   snowflake.ID = 1002
)

func TestClockInTwice(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()
	first, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)
	again, err := tr.ClockIn(alice, 1, 3, "Asia/Tokyo")
	assert.ErrorIs(t, err, ErrAlreadyActive)
	assert.Equal(t, first.Start, again.Start)
	assert.Equal(t, "UTC", again.Timezone)
	assert.Equal(t, 1, tr.Active())
}

func TestClockOut(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()
	_, _, err := tr.ClockOut(alice)
	assert.ErrorIs(t, err, ErrNotActive)

	_, err = tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)
	clock.Advance(90*time.Minute + 5*time.Second)

	s, d, err := tr.ClockOut(alice)
	require.NoError(t, err)
	assert.Equal(t, alice, s.Owner)
	assert.Equal(t, 90*time.Minute+5*time.Second, d)

	_, _, ok := tr.Status(alice)
	assert.False(t, ok)
}

func TestSweepMarksOnce(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()
	_, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)
	clock.Advance(20 * time.Minute)
	_, err = tr.ClockIn(bob, 1, 2, "UTC")
	require.NoError(t, err)

	clock.Advance(10 * time.Minute)
	due := tr.Sweep(30 * time.Minute)
	require.Len(t, due, 1)
	assert.Equal(t, alice, due[0].Owner)
	assert.True(t, due[0].Reminded)

	assert.Empty(t, tr.Sweep(30*time.Minute))

	clock.Advance(20 * time.Minute)
	due = tr.Sweep(30 * time.Minute)
	require.Len(t, due, 1)
	assert.Equal(t, bob, due[0].Owner)
}

func TestRespondWithoutWait(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker()
	assert.False(t, tr.Respond(alice, 55, ResponseContinue))

	s, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)
	tr.Await(s, 55)
	assert.False(t, tr.Respond(bob, 55, ResponseContinue))
	assert.False(t, tr.Respond(alice, 56, ResponseContinue))
	assert.True(t, tr.Respond(alice, 55, ResponseContinue))
	assert.False(t, tr.Respond(alice, 55, ResponseStop))
}

func TestFollowContinue(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()
	_, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)

	clock.Advance(31 * time.Minute)
	due := tr.Sweep(30 * time.Minute)
	require.Len(t, due, 1)

	tr.Await(due[0], 77)
	require.True(t, tr.Respond(alice, 77, ResponseContinue))

	clock.Advance(time.Minute)
	out := tr.Follow(context.Background(), due[0], 77, 5*time.Minute)
	assert.Equal(t, ActionContinue, out.Action)

	s, elapsed, ok := tr.Status(alice)
	require.True(t, ok)
	assert.False(t, s.Reminded)
	assert.Zero(t, elapsed)

	clock.Advance(29 * time.Minute)
	assert.Empty(t, tr.Sweep(30*time.Minute))
	clock.Advance(time.Minute)
	assert.Len(t, tr.Sweep(30*time.Minute), 1)
}

func TestFollowStop(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()
	s, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)
	clock.Advance(32 * time.Minute)

	tr.Await(s, 78)
	require.True(t, tr.Respond(alice, 78, ResponseStop))

	out := tr.Follow(context.Background(), s, 78, 5*time.Minute)
	assert.Equal(t, ActionStop, out.Action)
	assert.Equal(t, 32*time.Minute, out.Duration)
	assert.Zero(t, tr.Active())
}

func TestFollowTimeout(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()
	timer := make(chan time.Time)
	tr.after = func(d time.Duration) <-chan time.Time {
		assert.Equal(t, 5*time.Minute, d)
		return timer
	}

	_, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)
	due := tr.Sweep(30 * time.Minute)
	require.Len(t, due, 1)

	done := make(chan Outcome, 1)
	go func() { done <- tr.Follow(context.Background(), due[0], 79, 5*time.Minute) }()

	clock.Advance(5 * time.Minute)
	timer <- clock.Now()

	out := <-done
	assert.Equal(t, ActionTimeout, out.Action)
	assert.Equal(t, 35*time.Minute, out.Duration)
	_, _, ok := tr.Status(alice)
	assert.False(t, ok)
}

func TestFollowAfterManualClockOut(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker()
	tr.after = func(time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- time.Time{}
		return ch
	}

	s, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)
	_, _, err = tr.ClockOut(alice)
	require.NoError(t, err)

	out := tr.Follow(context.Background(), s, 80, time.Minute)
	assert.Equal(t, ActionGone, out.Action)
}

func TestFollowCancelled(t *testing.T) {
	t.Parallel()

	tr, _ := newTestTracker()
	tr.after = func(time.Duration) <-chan time.Time { return nil }
	s, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := tr.Follow(ctx, s, 81, time.Minute)
	assert.Equal(t, ActionAbandoned, out.Action)
	assert.Equal(t, 1, tr.Active())
	assert.False(t, tr.Respond(alice, 81, ResponseStop))
}

func TestManualClockOutEndsPendingReminder(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()
	tr.after = func(time.Duration) <-chan time.Time { return nil }

	_, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)
	due := tr.Sweep(30 * time.Minute)
	require.Len(t, due, 1)

	tr.Await(due[0], 500)
	done := make(chan Outcome, 1)
	go func() { done <- tr.Follow(context.Background(), due[0], 500, 5*time.Minute) }()

	_, _, err = tr.ClockOut(alice)
	require.NoError(t, err)

	select {
	case out := <-done:
		assert.Equal(t, ActionGone, out.Action)
	case <-time.After(time.Second):
		t.Fatal("reminder wait still pending after clock-out")
	}
	assert.False(t, tr.Respond(alice, 500, ResponseContinue))
}

func TestStaleReminderLeavesNewSessionAlone(t *testing.T) {
	t.Parallel()

	tr, clock := newTestTracker()
	timer := make(chan time.Time, 1)
	tr.after = func(time.Duration) <-chan time.Time { return timer }

	_, err := tr.ClockIn(alice, 1, 2, "UTC")
	require.NoError(t, err)
	clock.Advance(30 * time.Minute)
	due := tr.Sweep(30 * time.Minute)
	require.Len(t, due, 1)

	_, _, err = tr.ClockOut(alice)
	require.NoError(t, err)
	fresh, err := tr.ClockIn(alice, 1, 3, "UTC")
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	timer <- clock.Now()
	out := tr.Follow(context.Background(), due[0], 500, 5*time.Minute)
	assert.Equal(t, ActionGone, out.Action)

	s, elapsed, ok := tr.Status(alice)
	require.True(t, ok)
	assert.Equal(t, fresh.Start, s.Start)
	assert.Equal(t, 2*time.Minute, elapsed)

	// An answer on the old reminder has nothing to act on either.
	assert.False(t, tr.Respond(alice, 500, ResponseContinue))
}
