package home

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/leeineian/alpha/sys"
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "help",
		Description: "Show bot help and command information",
	}, handleHelp)
}

func helpNotice() sys.Notice {
	return sys.Primary(sys.MsgHelpTitle, sys.MsgHelpBody).
		WithField(sys.MsgHelpManagementTitle, sys.MsgHelpManagement, false).
		WithField(sys.MsgHelpTimeTitle, sys.MsgHelpTime, false).
		WithField(sys.MsgHelpLoggingTitle, sys.MsgHelpLogging, false).
		WithField(sys.MsgHelpInfoTitle, sys.MsgHelpInfo, false).
		WithField(sys.MsgHelpFeaturesTitle, sys.MsgHelpFeatures, false).
		WithFooter(sys.MsgHelpFooter)
}

func handleHelp(event *events.ApplicationCommandInteractionCreate) {
	reply(event, helpNotice(), false)
}
