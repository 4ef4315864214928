package home

import (
	"fmt"
	"strings"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/omit"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/sys"
)

const logCategoryName = "📋 Server Logs"

// logChannelNames is the channel created for each log category.
var logChannelNames = map[string]string{
	sys.LogMessages:   "💬-message-logs",
	sys.LogMembers:    "👤-member-logs",
	sys.LogVoice:      "🔊-voice-logs",
	sys.LogModeration: "🔨-moderation-logs",
	sys.LogServer:     "⚙️-server-logs",
}

func init() {
	adminPerm := discord.PermissionAdministrator

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:                     "setup-logs",
		Description:              "Automatically set up all logging channels",
		DefaultMemberPermissions: omit.New(&adminPerm),
		Contexts: []discord.InteractionContextType{
			discord.InteractionContextTypeGuild,
		},
	}, handleSetupLogs)
}

// categoryTitle turns "message_logs" into "Message Logs".
func categoryTitle(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func findGuildChannel(client *bot.Client, guildID snowflake.ID, kind discord.ChannelType, match func(name string) bool) (discord.GuildChannel, bool) {
	for ch := range client.Caches.Channels() {
		if ch.GuildID() == guildID && ch.Type() == kind && match(ch.Name()) {
			return ch, true
		}
	}
	return nil, false
}

func handleSetupLogs(event *events.ApplicationCommandInteractionCreate) {
	_, guildID, ok := requireAdmin(event, sys.MsgAccessDeniedLogs)
	if !ok {
		return
	}

	_ = event.DeferCreateMessage(false)

	ctx := sys.AppContext
	client := event.Client()
	reason := rest.WithReason(fmt.Sprintf(sys.MsgLogsSetupReason, event.User().Username))

	category, ok := findGuildChannel(client, guildID, discord.ChannelTypeGuildCategory, func(name string) bool {
		return strings.EqualFold(name, logCategoryName)
	})
	if !ok {
		created, err := client.Rest.CreateGuildChannel(guildID, discord.GuildCategoryChannelCreate{
			Name: logCategoryName,
			PermissionOverwrites: []discord.PermissionOverwrite{
				discord.RolePermissionOverwrite{
					RoleID: guildID,
					Deny:   discord.PermissionViewChannel | discord.PermissionSendMessages,
				},
				discord.MemberPermissionOverwrite{
					UserID: client.ApplicationID,
					Allow:  discord.PermissionViewChannel | discord.PermissionSendMessages | discord.PermissionManageMessages,
				},
			},
		}, rest.WithCtx(ctx), reason)
		if err != nil {
			setupLogsFailure(event, err)
			return
		}
		category = created
	}

	routes := make(map[string]snowflake.ID, len(sys.LogCategories))
	var lines []string
	for _, cat := range sys.LogCategories {
		name := logChannelNames[cat]
		if existing, ok := findGuildChannel(client, guildID, discord.ChannelTypeGuildText, func(n string) bool { return n == name }); ok {
			routes[cat] = existing.ID()
			lines = append(lines, fmt.Sprintf(sys.MsgLogsChannelExisting, name))
			continue
		}

		created, err := client.Rest.CreateGuildChannel(guildID, discord.GuildTextChannelCreate{
			Name:     name,
			Topic:    fmt.Sprintf(sys.MsgLogsChannelTopic, categoryTitle(cat)),
			ParentID: category.ID(),
		}, rest.WithCtx(ctx), reason)
		if err != nil {
			setupLogsFailure(event, err)
			return
		}
		routes[cat] = created.ID()
		lines = append(lines, fmt.Sprintf(sys.MsgLogsChannelCreated, name))
	}

	if err := sys.LogConfigs.Merge(guildID, routes); err != nil {
		sys.LogStore(sys.MsgStoreSaveFailed, sys.LogConfigs.Path(), err)
	}
	sys.LogAudit(sys.MsgAuditLogsSetup, event.User().Username, guildID)

	body := fmt.Sprintf(sys.MsgLogsSetupBody, category.ID(), strings.Join(lines, "\n"))
	edit(event, sys.Success(sys.MsgLogsSetupTitle, body))
}

func setupLogsFailure(event *events.ApplicationCommandInteractionCreate, err error) {
	if sys.IsForbidden(err) {
		edit(event, sys.Failure(sys.MsgPermissionErrorTitle, sys.MsgLogsSetupForbidden))
		return
	}
	sys.LogError(sys.MsgLogsSetupFailed, err)
	edit(event, sys.Failure(sys.MsgLogsSetupErrorTitle, sys.MsgLogsSetupGeneric))
}
