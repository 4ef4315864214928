package proc

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/gateway"
	"github.com/leeineian/alpha/sys"
)

// PresenceInterval is how long one activity text stays up.
const PresenceInterval = 2 * time.Minute

// presenceVisibleKey lets an operator pin the default presence by storing "false".
const presenceVisibleKey = "presence_rotation"

var presenceRunning int32

func init() {
	sys.OnClientReady(func(ctx context.Context, client *bot.Client) {
		sys.RegisterDaemon(sys.LogPresence, func(ctx context.Context) (bool, func(), func()) { return StartPresenceRotator(ctx, client) })
	})
}

// PresenceStats is what the rotating activity texts are built from.
type PresenceStats struct {
	Guilds  int
	Clocked int
	Uptime  time.Duration
}

// PresenceChoices lists every activity text worth showing for s. The default always comes first.
func PresenceChoices(s PresenceStats) []string {
	choices := []string{sys.MsgPresence}
	if s.Guilds > 1 {
		choices = append(choices, fmt.Sprintf(sys.MsgPresenceGuilds, s.Guilds))
	}
	if s.Clocked > 0 {
		choices = append(choices, fmt.Sprintf(sys.MsgPresenceClocked, s.Clocked))
	}
	if s.Uptime >= time.Hour {
		choices = append(choices, fmt.Sprintf(sys.MsgPresenceUptime, sys.FormatDurationShort(s.Uptime)))
	}
	return choices
}

// pickPresence avoids showing last twice in a row whenever there is an alternative.
func pickPresence(choices []string, last string, intn func(int) int) string {
	var fresh []string
	for _, c := range choices {
		if c != last {
			fresh = append(fresh, c)
		}
	}
	if len(fresh) == 0 {
		return choices[0]
	}
	return fresh[intn(len(fresh))]
}

// StartPresenceRotator cycles the watching activity through PresenceChoices.
func StartPresenceRotator(ctx context.Context, client *bot.Client) (bool, func(), func()) {
	if !atomic.CompareAndSwapInt32(&presenceRunning, 0, 1) {
		return false, nil, nil
	}

	return true, func() {
		ticker := time.NewTicker(PresenceInterval)
		defer ticker.Stop()

		last := sys.MsgPresence
		for {
			select {
			case <-ticker.C:
				last = rotatePresence(ctx, client, last)
			case <-ctx.Done():
				return
			}
		}
	}, nil
}

func rotatePresence(ctx context.Context, client *bot.Client, last string) string {
	if visible, err := sys.GetBotConfig(ctx, presenceVisibleKey); err == nil && visible == "false" {
		return last
	}

	stats := PresenceStats{Clocked: Clock.Active(), Uptime: time.Since(sys.StartupTime)}
	for range client.Caches.Guilds() {
		stats.Guilds++
	}

	next := pickPresence(PresenceChoices(stats), last, rand.Intn)
	if next == last {
		return last
	}
	err := client.SetPresence(ctx,
		gateway.WithWatchingActivity(next),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline),
	)
	if err != nil {
		sys.LogPresence(sys.MsgPresenceFailed, err)
		return last
	}
	sys.LogDebug(sys.MsgPresenceRotated, next)
	return next
}

// SetPresenceRotation stores whether the activity rotates. Turning it off puts the default back at once.
func SetPresenceRotation(ctx context.Context, client *bot.Client, enabled bool) error {
	if err := sys.SetBotConfig(ctx, presenceVisibleKey, strconv.FormatBool(enabled)); err != nil {
		return err
	}
	if enabled {
		return nil
	}
	return client.SetPresence(ctx,
		gateway.WithWatchingActivity(sys.MsgPresence),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline),
	)
}
