package proc

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/leeineian/alpha/sys"
)

var clockSweeperRunning int32

func init() {
	sys.OnClientReady(func(ctx context.Context, client *bot.Client) {
		sys.RegisterDaemon(sys.LogClock, func(ctx context.Context) (bool, func(), func()) { return StartClockSweeper(ctx, client) })
	})
	sys.RegisterEventListener(onReminderReaction)
}

// StartClockSweeper reminds every user whose session passed the configured timeout.
func StartClockSweeper(ctx context.Context, client *bot.Client) (bool, func(), func()) {
	if !atomic.CompareAndSwapInt32(&clockSweeperRunning, 0, 1) {
		return false, nil, nil
	}
	cfg := sys.Cfg()

	return true, func() {
			ticker := time.NewTicker(cfg.SweepInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					for _, s := range Clock.Sweep(cfg.ClockInTimeout) {
						sys.SafeGo(func() { remind(ctx, client, s, cfg) })
					}
				case <-ctx.Done():
					return
				}
			}
		}, func() {
			sys.LogClock(sys.MsgClockSweeperShutdown, Clock.Active())
		}
}

// ReminderNotice is the prompt posted when a session reaches timeout.
func ReminderNotice(timeout time.Duration) sys.Notice {
	return sys.Warning(sys.MsgClockReminderTitle, fmt.Sprintf(sys.MsgClockReminderBody, int(timeout.Minutes()), sys.EmojiTick, sys.EmojiCross))
}

// OutcomeNotice is what the reminder is edited into once the wait resolves.
// Outcomes that leave nothing to report return false.
func OutcomeNotice(out Outcome) (sys.Notice, bool) {
	switch out.Action {
	case ActionContinue:
		return sys.Success(sys.MsgClockContinueTitle, sys.MsgClockContinueBody), true
	case ActionStop:
		return sys.Success(sys.MsgClockOutTitle, fmt.Sprintf(sys.MsgClockStoppedBody, sys.FormatDurationShort(out.Duration))), true
	case ActionTimeout:
		return sys.Warning(sys.MsgClockAutoOutTitle, fmt.Sprintf(sys.MsgClockAutoOutBody, sys.FormatDurationShort(out.Duration))), true
	}
	return sys.Notice{}, false
}

func remind(ctx context.Context, client *bot.Client, s Session, cfg *sys.Config) {
	create := ReminderNotice(cfg.ClockInTimeout).CreateWithMention(fmt.Sprintf("<@%s>", s.Owner))

	msg, err := client.Rest.CreateMessage(s.ChannelID, create, rest.WithCtx(ctx))
	if err != nil {
		sys.LogClock(sys.MsgClockReminderChannelFail, s.Owner, s.ChannelID, err)

		dm, dmErr := client.Rest.CreateDMChannel(s.Owner, rest.WithCtx(ctx))
		if dmErr != nil {
			sys.LogClock(sys.MsgClockReminderDMFail, s.Owner, dmErr)
			return
		}
		msg, err = client.Rest.CreateMessage(dm.ID(), create, rest.WithCtx(ctx))
		if err != nil {
			sys.LogClock(sys.MsgClockReminderDMFail, s.Owner, err)
			return
		}
	}

	// Register before the reactions exist so an instant answer is not lost.
	Clock.Await(s, msg.ID)
	for _, emoji := range []string{sys.EmojiTick, sys.EmojiCross} {
		if err := client.Rest.AddReaction(msg.ChannelID, msg.ID, emoji, rest.WithCtx(ctx)); err != nil {
			sys.LogClock(sys.MsgClockReactionFail, emoji, err)
		}
	}
	sys.LogClock(sys.MsgClockReminderSent, s.Owner)

	out := Clock.Follow(ctx, s, msg.ID, cfg.ReminderWait)
	notice, ok := OutcomeNotice(out)
	if !ok {
		return
	}
	if out.Action == ActionTimeout {
		sys.LogClock(sys.MsgClockAutoOut, s.Owner, sys.FormatDuration(out.Duration))
	}
	if _, err := client.Rest.UpdateMessage(msg.ChannelID, msg.ID, notice.Update(), rest.WithCtx(ctx)); err != nil {
		sys.LogClock(sys.MsgClockReminderEditFail, msg.ID, err)
	}
}

func onReminderReaction(event *events.MessageReactionAdd) {
	if event.Emoji.Name == nil {
		return
	}
	if r, ok := reactionResponse(*event.Emoji.Name); ok {
		Clock.Respond(event.UserID, event.MessageID, r)
	}
}

// reactionResponse maps a reminder reaction to an answer; other emoji are ignored.
func reactionResponse(emoji string) (Response, bool) {
	switch emoji {
	case sys.EmojiTick:
		return ResponseContinue, true
	case sys.EmojiCross:
		return ResponseStop, true
	}
	return 0, false
}
