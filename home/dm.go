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
		Name:                     "dm",
		Description:              "Send a direct message to a user through the bot",
		DefaultMemberPermissions: omit.New(&adminPerm),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:        "user",
				Description: "The user to message (display name, username, or mention)",
				Required:    true,
			},
			discord.ApplicationCommandOptionString{
				Name:        "message",
				Description: "The message to send",
				Required:    true,
			},
		},
	}, handleDM)
}

// staffMessage is the DM body sent on behalf of the server staff.
func staffMessage(title, message, guildName, sender string) sys.Notice {
	return sys.Info(title, sys.SanitizeInput(message)).
		WithField(sys.MsgFieldServer, guildName, true).
		WithField(sys.MsgFieldSentBy, sender, true).
		WithFooter(sys.MsgStaffMessageFooter)
}

func guildName(event *events.ApplicationCommandInteractionCreate, guildID snowflake.ID) string {
	if g, ok := event.Client().Caches.Guild(guildID); ok {
		return g.Name
	}
	return guildID.String()
}

func handleDM(event *events.ApplicationCommandInteractionCreate) {
	member, guildID, ok := requireAdmin(event, sys.MsgAccessDeniedAdmin)
	if !ok {
		return
	}
	data := event.SlashCommandInteractionData()
	identifier := data.String("user")

	_ = event.DeferCreateMessage(true)

	ctx := sys.AppContext
	client := event.Client()

	target, err := findMember(ctx, client, guildID, identifier)
	if err != nil {
		edit(event, memberLookupFailure(identifier, err))
		return
	}

	name := displayName(target)
	notice := staffMessage(sys.MsgDMTitle, data.String("message"), guildName(event, guildID), displayName(member.Member))

	dm, err := client.Rest.CreateDMChannel(target.User.ID, rest.WithCtx(ctx))
	if err == nil {
		_, err = client.Rest.CreateMessage(dm.ID(), notice.Create(false), rest.WithCtx(ctx))
	}
	if err != nil {
		if sys.IsForbidden(err) {
			edit(event, sys.Failure(sys.MsgDMForbiddenTitle, fmt.Sprintf(sys.MsgDMForbiddenBody, name)))
			return
		}
		sys.LogError(sys.MsgDMFailed, target.User.ID, err)
		edit(event, sys.Failure(sys.MsgErrorTitle, sys.MsgDMGeneric))
		return
	}

	sys.LogAudit(sys.MsgAuditDM, event.User().Username, target.User.Username)
	edit(event, sys.Success(sys.MsgDMSentTitle, fmt.Sprintf(sys.MsgDMSentBody, name)))
}
