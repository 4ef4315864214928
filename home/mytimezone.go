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
		Name:        "mytimezone",
		Description: "Show your current timezone and time",
	}, handleMyTimezone)
}

func unsetTimezoneNotice(utc time.Time) sys.Notice {
	return sys.Warning(sys.MsgMyTimezoneUnsetTitle, sys.MsgMyTimezoneUnsetBody).
		WithField(sys.MsgFieldCurrentUTC, fmt.Sprintf("%s UTC\n%s", formatClock12(utc), formatLongDate(utc)), false).
		WithField(sys.MsgFieldHowToSet, sys.MsgMyTimezoneHowTo, false)
}

// myTimezoneNotice describes local, the caller's current time in the zone called name.
func myTimezoneNotice(local time.Time, name string) sys.Notice {
	_, week := local.ISOWeek()
	return sys.Success(sys.MsgMyTimezoneTitle, "").
		WithField(sys.MsgFieldRightNow, fmt.Sprintf("# %s\n**%s**", formatClock12(local), formatLongDate(local)), false).
		WithField(sys.MsgFieldYourTimezone, fmt.Sprintf("**%s**\nUTC %s (%s)", timezoneDisplay(name), local.Format("-07:00"), local.Format("MST")), false).
		WithField(sys.MsgFieldAdditionalInfo, fmt.Sprintf(sys.MsgMyTimezoneAdditional, week, local.YearDay(), local.Year()), true).
		WithField(sys.MsgFieldShareTime, fmt.Sprintf("`<t:%d:F>`", local.Unix()), true).
		WithFooter(sys.MsgMyTimezoneFooter)
}

func handleMyTimezone(event *events.ApplicationCommandInteractionCreate) {
	userID := event.User().ID
	now := time.Now()

	name, ok := sys.Timezones.Get(userID)
	if !ok {
		reply(event, unsetTimezoneNotice(now.UTC()), true)
		return
	}

	loc, err := resolve.Location(name)
	if err != nil {
		if err := sys.Timezones.Delete(userID); err != nil {
			sys.LogStore(sys.MsgStoreSaveFailed, sys.TimezoneFile, err)
		}
		sys.LogClock(sys.MsgTimezoneDropped, name, userID)
		reply(event, sys.Failure(sys.MsgMyTimezoneErrorTitle, fmt.Sprintf(sys.MsgMyTimezoneErrorBody, name)).
			WithField(sys.MsgFieldWhatToDo, sys.MsgMyTimezoneWhatToDo, false), true)
		return
	}

	reply(event, myTimezoneNotice(now.In(loc), name), true)
}
