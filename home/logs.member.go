package home

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/sys"
)

func init() {
	sys.RegisterEventListener(onLoggedMemberJoin)
	sys.RegisterEventListener(onLoggedMemberLeave)
	sys.RegisterEventListener(onLoggedMemberUpdate)
}

// roleNames resolves ids through the role cache, skipping @everyone (which shares the guild id).
func roleNames(client *bot.Client, guildID snowflake.ID, roleIDs []snowflake.ID) []string {
	var names []string
	for _, id := range roleIDs {
		if id == guildID {
			continue
		}
		if r, ok := client.Caches.Role(guildID, id); ok {
			names = append(names, r.Name)
		} else {
			names = append(names, fmt.Sprintf("<@&%s>", id))
		}
	}
	return names
}

func memberJoinNotice(m discord.Member, memberNumber int, at time.Time) sys.Notice {
	n := sys.Success(sys.MsgLogMemberJoinedTitle, fmt.Sprintf(sys.MsgLogMemberJoinedBody, relativeTime(m.User.CreatedAt()), memberNumber))
	return logRecord(n, memberLabel(m), m.User.ID, at)
}

func memberLeaveNotice(u discord.User, joinedAt time.Time, roles []string, at time.Time) sys.Notice {
	joined := sys.MsgLogUnknown
	if !joinedAt.IsZero() {
		joined = relativeTime(joinedAt)
	}
	n := sys.Failure(sys.MsgLogMemberLeftTitle, fmt.Sprintf(sys.MsgLogMemberLeftBody, joined, orNone(strings.Join(roles, ", "))))
	return logRecord(n, userLabel(u), u.ID, at)
}

func nickOrName(m discord.Member) string {
	if m.Nick != nil && *m.Nick != "" {
		return *m.Nick
	}
	return m.User.Username
}

// roleDiff returns the ids present only in after and only in before.
func roleDiff(before, after []snowflake.ID) (added, removed []snowflake.ID) {
	for _, id := range after {
		if !slices.Contains(before, id) {
			added = append(added, id)
		}
	}
	for _, id := range before {
		if !slices.Contains(after, id) {
			removed = append(removed, id)
		}
	}
	return added, removed
}

// memberUpdateNotice reports a nickname change first, then role changes; anything else is not logged.
func memberUpdateNotice(before, after discord.Member, names func([]snowflake.ID) []string, at time.Time) (sys.Notice, bool) {
	if nickOrName(before) != nickOrName(after) {
		n := sys.Info(sys.MsgLogNicknameTitle, fmt.Sprintf(sys.MsgLogNicknameBody, nickOrName(before), nickOrName(after)))
		return logRecord(n, memberLabel(after), after.User.ID, at), true
	}

	added, removed := roleDiff(before.RoleIDs, after.RoleIDs)
	if len(added) == 0 && len(removed) == 0 {
		return sys.Notice{}, false
	}
	var parts []string
	if len(added) > 0 {
		parts = append(parts, fmt.Sprintf(sys.MsgLogRolesAdded, strings.Join(names(added), ", ")))
	}
	if len(removed) > 0 {
		parts = append(parts, fmt.Sprintf(sys.MsgLogRolesRemoved, strings.Join(names(removed), ", ")))
	}
	n := sys.Info(sys.MsgLogRolesUpdatedTitle, strings.Join(parts, "\n"))
	return logRecord(n, memberLabel(after), after.User.ID, at), true
}

func onLoggedMemberJoin(event *events.GuildMemberJoin) {
	count := 0
	if g, ok := event.Client().Caches.Guild(event.GuildID); ok {
		count = g.MemberCount
	}
	forward(event.Client(), event.GuildID, sys.LogMembers, memberJoinNotice(event.Member, count, time.Now()))
}

func onLoggedMemberLeave(event *events.GuildMemberLeave) {
	roles := roleNames(event.Client(), event.GuildID, event.Member.RoleIDs)
	var joinedAt time.Time
	if event.Member.JoinedAt != nil {
		joinedAt = *event.Member.JoinedAt
	}
	forward(event.Client(), event.GuildID, sys.LogMembers, memberLeaveNotice(event.User, joinedAt, roles, time.Now()))
}

func onLoggedMemberUpdate(event *events.GuildMemberUpdate) {
	// Without a cached previous state there is nothing to compare against.
	if event.OldMember.User.ID == 0 {
		return
	}
	names := func(ids []snowflake.ID) []string { return roleNames(event.Client(), event.GuildID, ids) }
	if n, ok := memberUpdateNotice(event.OldMember, event.Member, names, time.Now()); ok {
		forward(event.Client(), event.GuildID, sys.LogMembers, n)
	}
}
