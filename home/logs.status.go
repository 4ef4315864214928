package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/omit"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/sys"
)

func init() {
	adminPerm := discord.PermissionAdministrator

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "log-status",
		Description:              "Check logging configuration status",
		DefaultMemberPermissions: omit.New(&adminPerm),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
	}, handleLogStatus)
}

// logStatusNotice reports each configured route; exists says whether a channel still resolves.
func logStatusNotice(routes map[string]snowflake.ID, exists func(snowflake.ID) bool) sys.Notice {
	if len(routes) == 0 {
		return sys.Warning(sys.MsgLogsNotConfiguredTitle, sys.MsgLogsNotConfiguredBody)
	}

	var lines []string
	for _, cat := range sys.LogCategories {
		id, ok := routes[cat]
		if !ok {
			continue
		}
		if exists(id) {
			lines = append(lines, fmt.Sprintf(sys.MsgLogsStatusOK, categoryTitle(cat), id))
		} else {
			lines = append(lines, fmt.Sprintf(sys.MsgLogsStatusMissing, categoryTitle(cat)))
		}
	}
	return sys.Info(sys.MsgLogsStatusTitle, strings.Join(lines, "\n")).
		WithField(sys.MsgLogsActiveFeatures, sys.MsgLogsActiveFeaturesBody, false)
}

func handleLogStatus(event *events.ApplicationCommandInteractionCreate) {
	_, guildID, ok := requireAdmin(event, sys.MsgAccessDeniedAdmin)
	if !ok {
		return
	}
	caches := event.Client().Caches
	reply(event, logStatusNotice(sys.LogConfigs.Guild(guildID), func(id snowflake.ID) bool {
		_, ok := caches.Channel(id)
		return ok
	}), true)
}
