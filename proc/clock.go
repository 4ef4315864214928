package proc

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/disgoorg/snowflake/v2"
)

var (
	ErrAlreadyActive = errors.New("session already active")
	ErrNotActive     = errors.New("no active session")
)

// Session is one user's open work period.
type Session struct {
	Owner     snowflake.ID
	GuildID   snowflake.ID
	ChannelID snowflake.ID
	Timezone  string
	Start     time.Time
	Reminded  bool

	// serial tells apart consecutive sessions of the same owner.
	serial uint64
}

// Response is the owner's answer to a reminder.
type Response int

const (
	ResponseContinue Response = iota + 1
	ResponseStop
)

type Action int

const (
	ActionContinue Action = iota
	ActionStop
	ActionTimeout
	// ActionGone means the session ended some other way while the reminder was pending.
	ActionGone
	ActionAbandoned
)

// Outcome is how a reminder wait resolved. Duration is set when the session closed.
type Outcome struct {
	Action   Action
	Duration time.Duration
}

type waitKey struct {
	owner   snowflake.ID
	message snowflake.ID
}

// pending is one reminder wait, bound to the session it was sent for.
type pending struct {
	serial uint64
	answer chan Response
	gone   chan struct{}
}

// Tracker owns every open session and every pending reminder wait.
type Tracker struct {
	mu       sync.Mutex
	now      func() time.Time
	after    func(time.Duration) <-chan time.Time
	serial   uint64
	sessions map[snowflake.ID]*Session
	waits    map[waitKey]*pending
}

func NewTracker() *Tracker {
	return &Tracker{
		now:      time.Now,
		after:    time.After,
		sessions: make(map[snowflake.ID]*Session),
		waits:    make(map[waitKey]*pending),
	}
}

// Clock is the process-wide tracker used by the commands and the sweeper.
var Clock = NewTracker()

func (t *Tracker) ClockIn(owner, guildID, channelID snowflake.ID, timezone string) (Session, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if s, ok := t.sessions[owner]; ok {
		return *s, ErrAlreadyActive
	}
	s := &Session{
		Owner:     owner,
		GuildID:   guildID,
		ChannelID: channelID,
		Timezone:  timezone,
		Start:     t.now(),
	}
	t.serial++
	s.serial = t.serial
	t.sessions[owner] = s
	return *s, nil
}

// ClockOut closes the owner's session and reports how long it ran.
func (t *Tracker) ClockOut(owner snowflake.ID) (Session, time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closeLocked(owner)
}

func (t *Tracker) closeLocked(owner snowflake.ID) (Session, time.Duration, error) {
	s, ok := t.sessions[owner]
	if !ok {
		return Session{}, 0, ErrNotActive
	}
	delete(t.sessions, owner)
	for key, w := range t.waits {
		if key.owner == owner {
			close(w.gone)
			delete(t.waits, key)
		}
	}
	return *s, t.now().Sub(s.Start), nil
}

func (t *Tracker) Status(owner snowflake.ID) (Session, time.Duration, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[owner]
	if !ok {
		return Session{}, 0, false
	}
	return *s, t.now().Sub(s.Start), true
}

// Sweep marks and returns every unreminded session open for at least threshold.
func (t *Tracker) Sweep(threshold time.Duration) []Session {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	var due []Session
	for _, s := range t.sessions {
		if s.Reminded || now.Sub(s.Start) < threshold {
			continue
		}
		s.Reminded = true
		due = append(due, *s)
	}
	return due
}

// Continue restarts the owner's timer and clears the reminder mark.
func (t *Tracker) Continue(owner snowflake.ID) (Session, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.sessions[owner]
	if !ok {
		return Session{}, false
	}
	return t.continueLocked(s), true
}

func (t *Tracker) continueLocked(s *Session) Session {
	s.Start = t.now()
	s.Reminded = false
	return *s
}

func (t *Tracker) Active() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.sessions)
}

// Await registers interest in the owner's answer on one reminder message sent for s.
// Calling it again for the same pair returns the same channel. A wait whose session is
// already over resolves as gone.
func (t *Tracker) Await(s Session, messageID snowflake.ID) <-chan Response {
	return t.await(s, messageID).answer
}

func (t *Tracker) await(s Session, messageID snowflake.ID) *pending {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := waitKey{owner: s.Owner, message: messageID}
	if w, ok := t.waits[key]; ok {
		return w
	}
	w := &pending{serial: s.serial, answer: make(chan Response, 1), gone: make(chan struct{})}
	if !t.currentLocked(s.Owner, w) {
		close(w.gone)
		return w
	}
	t.waits[key] = w
	return w
}

// currentLocked reports whether the session w was sent for is still the owner's open one.
func (t *Tracker) currentLocked(owner snowflake.ID, w *pending) bool {
	s, ok := t.sessions[owner]
	return ok && s.serial == w.serial
}

// Respond delivers an answer to a pending wait. It reports false when nothing waits
// on that (owner, message) pair or an answer is already queued.
func (t *Tracker) Respond(owner, messageID snowflake.ID, r Response) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, ok := t.waits[waitKey{owner: owner, message: messageID}]
	if !ok {
		return false
	}
	select {
	case w.answer <- r:
		return true
	default:
		return false
	}
}

func (t *Tracker) forget(key waitKey, w *pending) {
	t.mu.Lock()
	if t.waits[key] == w {
		delete(t.waits, key)
	}
	t.mu.Unlock()
}

// settle applies an outcome to the session w belongs to. A session that ended or was
// replaced in the meantime is left alone and the wait resolves as gone.
func (t *Tracker) settle(w *pending, owner snowflake.ID, action Action) Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.currentLocked(owner, w) {
		return Outcome{Action: ActionGone}
	}
	if action == ActionContinue {
		t.continueLocked(t.sessions[owner])
		return Outcome{Action: ActionContinue}
	}
	_, d, _ := t.closeLocked(owner)
	return Outcome{Action: action, Duration: d}
}

// Follow blocks until the owner answers the reminder sent for s, wait elapses or ctx ends,
// and applies the result: continue resets the timer, stop and timeout close the session.
// Ending the session any other way resolves the wait as gone.
func (t *Tracker) Follow(ctx context.Context, s Session, messageID snowflake.ID, wait time.Duration) Outcome {
	key := waitKey{owner: s.Owner, message: messageID}
	w := t.await(s, messageID)
	defer t.forget(key, w)

	select {
	case r := <-w.answer:
		if r == ResponseContinue {
			return t.settle(w, s.Owner, ActionContinue)
		}
		return t.settle(w, s.Owner, ActionStop)
	case <-w.gone:
		return Outcome{Action: ActionGone}
	case <-t.after(wait):
		return t.settle(w, s.Owner, ActionTimeout)
	case <-ctx.Done():
		return Outcome{Action: ActionAbandoned}
	}
}
