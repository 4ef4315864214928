package home

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/leeineian/alpha/sys"
)

func init() {
	sys.RegisterEventListener(onLoggedBan)
	sys.RegisterEventListener(onLoggedUnban)
}

func banNotice(u discord.User, reason string, at time.Time) sys.Notice {
	if reason == "" {
		reason = sys.MsgLogNoReason
	}
	n := sys.Failure(sys.MsgLogBannedTitle, fmt.Sprintf(sys.MsgLogBannedBody, u.Mention(), reason))
	return logRecord(n, userLabel(u), u.ID, at)
}

func unbanNotice(u discord.User, at time.Time) sys.Notice {
	n := sys.Success(sys.MsgLogUnbannedTitle, fmt.Sprintf(sys.MsgLogUnbannedBody, u.Mention()))
	return logRecord(n, userLabel(u), u.ID, at)
}

func onLoggedBan(event *events.GuildBan) {
	var reason string
	ban, err := event.Client().Rest.GetBan(event.GuildID, event.User.ID, rest.WithCtx(sys.AppContext))
	if err != nil {
		sys.LogDebug(sys.MsgLogBanFetchFailed, event.User.ID, err)
	} else if ban.Reason != nil {
		reason = *ban.Reason
	}
	forward(event.Client(), event.GuildID, sys.LogModeration, banNotice(event.User, reason, time.Now()))
}

func onLoggedUnban(event *events.GuildUnban) {
	forward(event.Client(), event.GuildID, sys.LogModeration, unbanNotice(event.User, time.Now()))
}
