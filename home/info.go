package home

import (
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/leeineian/alpha/sys"
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "info",
		Description: "Show detailed bot information and statistics",
	}, handleInfo)

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "version",
		Description: "Show version information and recent changes",
	}, handleVersion)
}

type botStats struct {
	Guilds   int
	Users    int
	Commands int
	Started  time.Time
}

func collectStats(client *bot.Client) botStats {
	stats := botStats{Commands: len(sys.CommandNames()), Started: sys.StartupTime}
	for g := range client.Caches.Guilds() {
		stats.Guilds++
		stats.Users += g.MemberCount
	}
	return stats
}

func bulletList(prefix string, items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = prefix + " " + item
	}
	return strings.Join(lines, "\n")
}

func infoNotice(s botStats) sys.Notice {
	return sys.Info(sys.MsgInfoTitle, sys.Description).
		WithField(sys.MsgInfoStatsTitle, fmt.Sprintf(sys.MsgInfoStats, s.Guilds, s.Users, s.Commands, s.Started.Unix()), true).
		WithField(sys.MsgInfoVersionTitle, fmt.Sprintf(sys.MsgInfoVersion, sys.Version, sys.ReleaseDate, sys.Author), true).
		WithField(sys.MsgInfoTechTitle, sys.MsgInfoTech, true).
		WithField(sys.MsgInfoFeaturesTitle, bulletList("•", sys.Features[:4]), false).
		WithField(sys.MsgInfoPermissionsTitle, sys.MsgInfoPermissions, false).
		WithFooter(fmt.Sprintf(sys.MsgInfoFooter, sys.Version))
}

func versionNotice() sys.Notice {
	return sys.Success(fmt.Sprintf(sys.MsgVersionTitle, sys.Version), fmt.Sprintf(sys.MsgVersionBody, sys.Description, sys.ReleaseDate)).
		WithField(sys.MsgVersionFeaturesTitle, bulletList(sys.EmojiTick, sys.Features), false).
		WithField(fmt.Sprintf(sys.MsgVersionNewTitle, sys.Version), sys.MsgVersionNew, false).
		WithField(sys.MsgVersionDevTitle, fmt.Sprintf(sys.MsgVersionDev, sys.Author), true).
		WithField(sys.MsgVersionResourcesTitle, sys.MsgVersionResources, true).
		WithFooter(sys.MsgVersionFooter)
}

func handleInfo(event *events.ApplicationCommandInteractionCreate) {
	reply(event, infoNotice(collectStats(event.Client())), false)
}

func handleVersion(event *events.ApplicationCommandInteractionCreate) {
	reply(event, versionNotice(), false)
}
