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

const pingRefreshID = "ping_refresh"

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "ping",
		Description: "Check bot latency and response time",
	}, handlePing)

	sys.RegisterComponentHandler(pingRefreshID, handlePingRefresh)
}

func pingNotice(gateway, roundTrip time.Duration, guilds int) sys.Notice {
	status := sys.MsgPingStarting
	if gateway > 0 {
		status = sys.MsgPingOnline
	}
	return sys.Info(sys.MsgPingTitle, fmt.Sprintf(sys.MsgPingBody, gateway.Milliseconds(), roundTrip.Milliseconds(), status)).
		WithField(sys.MsgPingPerformanceTitle, fmt.Sprintf(sys.MsgPingPerformance, guilds, len(sys.CommandNames())), true)
}

func pingComponents(n sys.Notice) []discord.LayoutComponent {
	return []discord.LayoutComponent{
		n.Container(),
		discord.NewActionRow(discord.NewSuccessButton(sys.MsgPingRefresh, pingRefreshID)),
	}
}

func cachedGuilds(client *bot.Client) int {
	count := 0
	for range client.Caches.Guilds() {
		count++
	}
	return count
}

func handlePing(event *events.ApplicationCommandInteractionCreate) {
	roundTrip := time.Since(snowflake.ID(event.ID()).Time())
	n := pingNotice(event.Client().Gateway.Latency(), roundTrip, cachedGuilds(event.Client()))

	err := event.CreateMessage(discord.NewMessageCreate().
		WithIsComponentsV2(true).
		AddComponents(pingComponents(n)...))
	if err != nil {
		sys.LogDebug(sys.MsgReplyFailed, "ping", err)
	}
}

func handlePingRefresh(event *events.ComponentInteractionCreate) {
	roundTrip := time.Since(snowflake.ID(event.ID()).Time())
	n := pingNotice(event.Client().Gateway.Latency(), roundTrip, cachedGuilds(event.Client()))

	err := event.UpdateMessage(discord.NewMessageUpdate().
		WithIsComponentsV2(true).
		WithComponents(pingComponents(n)...))
	if err != nil {
		sys.LogDebug(sys.MsgReplyFailed, "ping", err)
	}
}
