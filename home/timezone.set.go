package home

import (
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/leeineian/alpha/resolve"
	"github.com/leeineian/alpha/sys"
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "set-timezone",
		Description: "Set your timezone for time displays",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:         "timezone",
				Description:  "Your timezone (e.g., America/New_York, Europe/London, Asia/Tokyo)",
				Required:     true,
				Autocomplete: true,
			},
		},
	}, handleSetTimezone)
}

func handleSetTimezone(event *events.ApplicationCommandInteractionCreate) {
	query := event.SlashCommandInteractionData().String("timezone")

	name, options := resolveTimezone(query)
	if name == "" {
		reply(event, timezoneResolutionFailure(query, options), true)
		return
	}
	loc, err := resolve.Location(name)
	if err != nil {
		reply(event, timezoneResolutionFailure(query, nil), true)
		return
	}

	if err := sys.Timezones.Set(event.User().ID, name); err != nil {
		sys.LogStore(sys.MsgStoreSaveFailed, sys.TimezoneFile, err)
	}
	sys.LogClock(sys.MsgTimezoneSaved, event.User().Username, name)

	reply(event, sys.Success(sys.MsgTimezoneSetTitle, fmt.Sprintf(sys.MsgTimezoneSetBody, name, formatDateTimeZone(time.Now().In(loc)))), true)
}
