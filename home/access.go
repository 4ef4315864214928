package home

import (
	"context"
	"errors"
	"fmt"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/resolve"
	"github.com/leeineian/alpha/sys"
)

const memberPageSize = 1000

// displayName is the name a member shows in the guild: nickname, then global name, then username.
func displayName(m discord.Member) string {
	if m.Nick != nil && *m.Nick != "" {
		return *m.Nick
	}
	if m.User.GlobalName != nil && *m.User.GlobalName != "" {
		return *m.User.GlobalName
	}
	return m.User.Username
}

func userDisplayName(u discord.User) string {
	if u.GlobalName != nil && *u.GlobalName != "" {
		return *u.GlobalName
	}
	return u.Username
}

// fetchMembers pages through the guild's member list.
func fetchMembers(ctx context.Context, client *bot.Client, guildID snowflake.ID) ([]discord.Member, error) {
	var members []discord.Member
	var after snowflake.ID
	for {
		chunk, err := client.Rest.GetMembers(guildID, memberPageSize, after, rest.WithCtx(ctx))
		if err != nil {
			return nil, err
		}
		members = append(members, chunk...)
		if len(chunk) < memberPageSize {
			return members, nil
		}
		after = chunk[len(chunk)-1].User.ID
	}
}

func candidates(members []discord.Member) []resolve.Candidate {
	out := make([]resolve.Candidate, 0, len(members))
	for _, m := range members {
		out = append(out, resolve.Candidate{ID: m.User.ID, Name: m.User.Username, DisplayName: displayName(m)})
	}
	return out
}

// findMember resolves free text against the guild roster.
func findMember(ctx context.Context, client *bot.Client, guildID snowflake.ID, identifier string) (discord.Member, error) {
	members, err := fetchMembers(ctx, client, guildID)
	if err != nil {
		return discord.Member{}, fmt.Errorf("fetch members: %w", err)
	}
	c, err := resolve.Member(candidates(members), identifier, sys.Cfg().MemberMatchFloor)
	if err != nil {
		return discord.Member{}, err
	}
	for _, m := range members {
		if m.User.ID == c.ID {
			return m, nil
		}
	}
	return discord.Member{}, resolve.ErrMemberNotFound
}

// membersWithRole keeps the members holding roleID.
func membersWithRole(members []discord.Member, roleID snowflake.ID) []discord.Member {
	var out []discord.Member
	for _, m := range members {
		if hasRole(m.RoleIDs, roleID) {
			out = append(out, m)
		}
	}
	return out
}

func hasRole(roleIDs []snowflake.ID, roleID snowflake.ID) bool {
	for _, id := range roleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// --- Authorization ---

func isAdmin(perms discord.Permissions) bool {
	return perms.Has(discord.PermissionAdministrator)
}

func canManageRoles(perms discord.Permissions) bool {
	return perms.Has(discord.PermissionManageRoles) || isAdmin(perms)
}

// topPosition is the highest role position among roleIDs; members with no roles sit at 0.
func topPosition(positions map[snowflake.ID]int, roleIDs []snowflake.ID) int {
	top := 0
	for _, id := range roleIDs {
		if p, ok := positions[id]; ok && p > top {
			top = p
		}
	}
	return top
}

// canModifyMember reports whether a requester may change the target's roles.
// Nobody modifies themselves or anyone whose top role is at or above their own.
func canModifyMember(requesterID, targetID snowflake.ID, requesterTop, targetTop int, perms discord.Permissions) bool {
	if requesterID == targetID {
		return false
	}
	if targetTop >= requesterTop {
		return false
	}
	return canManageRoles(perms)
}

// roleTooHigh reports whether a role is out of the requester's reach. Administrators are exempt.
func roleTooHigh(rolePosition, requesterTop int, perms discord.Permissions) bool {
	return rolePosition >= requesterTop && !isAdmin(perms)
}

func rolePositions(client *bot.Client, guildID snowflake.ID, roleIDs ...[]snowflake.ID) map[snowflake.ID]int {
	positions := make(map[snowflake.ID]int)
	for _, ids := range roleIDs {
		for _, id := range ids {
			if r, ok := client.Caches.Role(guildID, id); ok {
				positions[id] = r.Position
			}
		}
	}
	return positions
}

// requester returns the invoking member and permissions; ok is false outside a guild.
func requester(event *events.ApplicationCommandInteractionCreate) (discord.ResolvedMember, snowflake.ID, bool) {
	guildID := event.GuildID()
	member := event.Member()
	if guildID == nil || member == nil {
		return discord.ResolvedMember{}, 0, false
	}
	return *member, *guildID, true
}

// requireGuild answers outside-guild invocations and reports whether to continue.
func requireGuild(event *events.ApplicationCommandInteractionCreate) (discord.ResolvedMember, snowflake.ID, bool) {
	member, guildID, ok := requester(event)
	if !ok {
		reply(event, sys.Failure(sys.MsgGuildOnlyTitle, sys.MsgGuildOnlyBody), true)
	}
	return member, guildID, ok
}

// requireAdmin answers non-administrators with Access Denied.
func requireAdmin(event *events.ApplicationCommandInteractionCreate, body string) (discord.ResolvedMember, snowflake.ID, bool) {
	member, guildID, ok := requireGuild(event)
	if !ok {
		return member, guildID, false
	}
	if !isAdmin(member.Permissions) {
		reply(event, sys.Failure(sys.MsgAccessDeniedTitle, body), true)
		return member, guildID, false
	}
	return member, guildID, true
}

// --- Replies ---

func reply(event *events.ApplicationCommandInteractionCreate, n sys.Notice, ephemeral bool) {
	if err := event.CreateMessage(n.Create(ephemeral)); err != nil {
		sys.LogDebug(sys.MsgReplyFailed, event.Data.CommandName(), err)
	}
}

// edit replaces a deferred response.
func edit(event *events.ApplicationCommandInteractionCreate, n sys.Notice) {
	if _, err := event.Client().Rest.UpdateInteractionResponse(event.ApplicationID(), event.Token(), n.Update()); err != nil {
		sys.LogDebug(sys.MsgReplyFailed, event.Data.CommandName(), err)
	}
}

// memberLookupFailure turns a findMember error into the notice shown to the invoker.
func memberLookupFailure(identifier string, err error) sys.Notice {
	if errors.Is(err, resolve.ErrMemberNotFound) {
		return sys.Failure(sys.MsgUserNotFoundTitle, fmt.Sprintf(sys.MsgUserNotFoundBody, identifier))
	}
	sys.LogError(sys.MsgMemberLookupFailed, identifier, err)
	return sys.Failure(sys.MsgErrorTitle, sys.MsgMemberLookupGeneric)
}
