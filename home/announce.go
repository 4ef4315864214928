package home

import (
	"fmt"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/omit"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/sys"
)

func init() {
	adminPerm := discord.PermissionAdministrator

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "announce",
		Description:              "Send an announcement to the announcement channel",
		DefaultMemberPermissions: omit.New(&adminPerm),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "message",
				Description: "The announcement message to send",
				Required:    true,
			},
			discord.ApplicationCommandOptionChannel{
				Name:         "channel",
				Description:  "The channel to send the announcement (defaults to the configured channel)",
				Required:     false,
				ChannelTypes: []discord.ChannelType{discord.ChannelTypeGuildText, discord.ChannelTypeGuildNews},
			},
		},
	}, handleAnnounce)
}

// announcementNotice is the record posted to the target channel.
func announcementNotice(message, author string) sys.Notice {
	return sys.Primary(sys.MsgAnnounceTitle, sys.SanitizeInput(message)).
		WithAuthor(author).
		WithFooter(fmt.Sprintf(sys.MsgAnnounceFooter, author))
}

func handleAnnounce(event *events.ApplicationCommandInteractionCreate) {
	member, _, ok := requireAdmin(event, sys.MsgAccessDeniedAdmin)
	if !ok {
		return
	}
	data := event.SlashCommandInteractionData()

	var target snowflake.ID
	if ch, ok := data.OptChannel("channel"); ok {
		target = ch.ID
	} else if id := sys.Cfg().AnnouncementChannelID; id != 0 {
		target = id
	} else {
		reply(event, sys.Failure(sys.MsgAnnounceNoChannelTitle, sys.MsgAnnounceNoChannelBody), true)
		return
	}

	if _, ok := event.Client().Caches.Channel(target); !ok {
		reply(event, sys.Failure(sys.MsgChannelNotFoundTitle, sys.MsgChannelNotFoundBody), true)
		return
	}

	author := displayName(member.Member)
	notice := announcementNotice(data.String("message"), author)
	if _, err := event.Client().Rest.CreateMessage(target, notice.Create(false), rest.WithCtx(sys.AppContext)); err != nil {
		if sys.IsForbidden(err) {
			reply(event, sys.Failure(sys.MsgPermissionErrorTitle, sys.MsgAnnounceForbidden), true)
			return
		}
		sys.LogError(sys.MsgAnnounceFailed, target, err)
		reply(event, sys.Failure(sys.MsgErrorTitle, sys.MsgAnnounceGeneric), true)
		return
	}

	sys.LogAudit(sys.MsgAuditAnnounce, event.User().Username, target)
	reply(event, sys.Success(sys.MsgAnnounceSentTitle, fmt.Sprintf(sys.MsgAnnounceSentBody, target)), true)
}
