package home

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/sys"
)

func init() {
	sys.RegisterEventListener(onLoggedChannelCreate)
	sys.RegisterEventListener(onLoggedChannelDelete)
	sys.RegisterEventListener(onLoggedRoleCreate)
	sys.RegisterEventListener(onLoggedRoleDelete)
}

func channelTypeName(t discord.ChannelType) string {
	switch t {
	case discord.ChannelTypeGuildText:
		return "Text"
	case discord.ChannelTypeGuildVoice:
		return "Voice"
	case discord.ChannelTypeGuildCategory:
		return "Category"
	case discord.ChannelTypeGuildNews:
		return "News"
	case discord.ChannelTypeGuildStageVoice:
		return "Stage Voice"
	case discord.ChannelTypeGuildForum:
		return "Forum"
	case discord.ChannelTypeGuildMedia:
		return "Media"
	}
	return fmt.Sprintf("Unknown (%d)", t)
}

func hexColor(c int) string {
	return fmt.Sprintf("#%06x", c)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func categoryName(client *bot.Client, parentID *snowflake.ID) string {
	if parentID == nil {
		return sys.MsgLogNone
	}
	if parent, ok := client.Caches.Channel(*parentID); ok {
		return parent.Name()
	}
	return sys.MsgLogNone
}

func channelCreateNotice(id snowflake.ID, kind discord.ChannelType, category string, at time.Time) sys.Notice {
	return sys.Success(sys.MsgLogChannelCreatedTitle, fmt.Sprintf(sys.MsgLogChannelBody, channelMention(id), channelTypeName(kind), category)).
		WithField(sys.MsgFieldChannelID, id.String(), true).
		WithTimestamp(at)
}

func channelDeleteNotice(id snowflake.ID, name string, kind discord.ChannelType, category string, at time.Time) sys.Notice {
	return sys.Failure(sys.MsgLogChannelDeletedTitle, fmt.Sprintf(sys.MsgLogChannelBody, "#"+name, channelTypeName(kind), category)).
		WithField(sys.MsgFieldChannelID, id.String(), true).
		WithTimestamp(at)
}

func roleCreateNotice(r discord.Role, at time.Time) sys.Notice {
	return sys.Success(sys.MsgLogRoleCreatedTitle, fmt.Sprintf(sys.MsgLogRoleCreatedBody,
		fmt.Sprintf("<@&%s>", r.ID), hexColor(r.Color), yesNo(r.Hoist), yesNo(r.Mentionable))).
		WithField(sys.MsgFieldRoleID, r.ID.String(), true).
		WithTimestamp(at)
}

func roleDeleteNotice(r discord.Role, members int, at time.Time) sys.Notice {
	return sys.Failure(sys.MsgLogRoleDeletedTitle, fmt.Sprintf(sys.MsgLogRoleDeletedBody, r.Name, hexColor(r.Color), members)).
		WithField(sys.MsgFieldRoleID, r.ID.String(), true).
		WithTimestamp(at)
}

func onLoggedChannelCreate(event *events.GuildChannelCreate) {
	client := event.Client()
	ch := event.Channel
	forward(client, event.GuildID, sys.LogServer, channelCreateNotice(ch.ID(), ch.Type(), categoryName(client, ch.ParentID()), time.Now()))
}

func onLoggedChannelDelete(event *events.GuildChannelDelete) {
	client := event.Client()
	ch := event.Channel
	forward(client, event.GuildID, sys.LogServer, channelDeleteNotice(ch.ID(), ch.Name(), ch.Type(), categoryName(client, ch.ParentID()), time.Now()))
}

func onLoggedRoleCreate(event *events.RoleCreate) {
	forward(event.Client(), event.GuildID, sys.LogServer, roleCreateNotice(event.Role, time.Now()))
}

func onLoggedRoleDelete(event *events.RoleDelete) {
	members := 0
	for m := range event.Client().Caches.Members(event.GuildID) {
		if hasRole(m.RoleIDs, event.RoleID) {
			members++
		}
	}
	forward(event.Client(), event.GuildID, sys.LogServer, roleDeleteNotice(event.Role, members, time.Now()))
}
