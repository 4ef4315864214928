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
		Name:        "time",
		Description: "Get current time in your timezone or convert between timezones",
		Options: []discord.ApplicationCommandOption{
			discord.ApplicationCommandOptionString{
				Name:         "timezone",
				Description:  "Timezone to show time for (optional, uses your saved timezone)",
				Required:     false,
				Autocomplete: true,
			},
			discord.ApplicationCommandOptionString{
				Name:        "time",
				Description: "Time to convert (HH:MM, YYYY-MM-DD HH:MM or e.g. \"tomorrow 9am\")",
				Required:    false,
			},
		},
	}, handleTime)
}

// currentTimeNotice shows now in loc with a shareable timestamp.
func currentTimeNotice(now time.Time, name string) sys.Notice {
	return sys.Info(sys.MsgCurrentTimeTitle, "").
		WithField(sys.MsgFieldTime, fmt.Sprintf("**%s**", formatClock(now)), true).
		WithField(sys.MsgFieldDate, fmt.Sprintf("**%s**", formatDate(now)), true).
		WithField(sys.MsgFieldTimezone, fmt.Sprintf("**%s**", name), true).
		WithField(sys.MsgFieldDiscordTimestamp, fmt.Sprintf("<t:%d:F>", now.Unix()), false).
		WithFooter(sys.MsgCurrentTimeFooter)
}

// conversionNotice reports input, read in sourceName, as seen in targetName.
func conversionNotice(input, sourceName string, converted time.Time, targetName string) sys.Notice {
	return sys.Info(sys.MsgConversionTitle, fmt.Sprintf(sys.MsgConversionBody, input, sourceName, formatDateTimeZone(converted), targetName))
}

func handleTime(event *events.ApplicationCommandInteractionCreate) {
	data := event.SlashCommandInteractionData()
	sourceName, sourceLoc, saved := savedLocation(event.User().ID)

	var targetName string
	if query, ok := data.OptString("timezone"); ok && query != "" {
		name, options := resolveTimezone(query)
		if name == "" {
			reply(event, timezoneResolutionFailure(query, options), true)
			return
		}
		targetName = name
	} else if saved {
		targetName = sourceName
	} else {
		reply(event, sys.Warning(sys.MsgNoTimezoneTitle, sys.MsgNoTimezoneBody), true)
		return
	}

	targetLoc, err := resolve.Location(targetName)
	if err != nil {
		reply(event, timezoneResolutionFailure(targetName, nil), true)
		return
	}

	now := time.Now()
	input, ok := data.OptString("time")
	if !ok || input == "" {
		reply(event, currentTimeNotice(now.In(targetLoc), targetName), false)
		return
	}

	t, err := parseTimeInput(input, sourceLoc, now)
	if err != nil {
		reply(event, sys.Failure(sys.MsgTimeFormatTitle, sys.MsgTimeFormatBody), true)
		return
	}
	reply(event, conversionNotice(input, sourceName, t.In(targetLoc), targetName), false)
}
