package home

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/omit"
	"github.com/leeineian/alpha/proc"
	"github.com/leeineian/alpha/sys"
)

func init() {
	adminPerm := discord.PermissionAdministrator

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "presence",
		Description:              "Turn the rotating bot activity on or off (Admin Only)",
		DefaultMemberPermissions: omit.New(&adminPerm),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionBool{
				Name:        "rotate",
				Description: "Cycle through server and clock statistics",
				Required:    true,
			},
		},
	}, handlePresence)
}

func presenceNotice(rotate bool) sys.Notice {
	if rotate {
		return sys.Success(sys.MsgPresenceTitle, sys.MsgPresenceOn)
	}
	return sys.Success(sys.MsgPresenceTitle, sys.MsgPresenceOff)
}

func handlePresence(event *events.ApplicationCommandInteractionCreate) {
	if _, _, ok := requireAdmin(event, sys.MsgAccessDeniedAdmin); !ok {
		return
	}
	rotate := event.SlashCommandInteractionData().Bool("rotate")

	if err := proc.SetPresenceRotation(sys.AppContext, event.Client(), rotate); err != nil {
		sys.LogError(sys.MsgPresenceFailed, err)
		reply(event, sys.Failure(sys.MsgErrorTitle, sys.MsgPresenceError), true)
		return
	}
	reply(event, presenceNotice(rotate), true)
}
