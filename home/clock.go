package home

import (
	"errors"
	"fmt"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/proc"
	"github.com/leeineian/alpha/sys"
)

func init() {
	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "clockin",
		Description: "Clock in to start a work session",
	}, handleClockIn)

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "clockout",
		Description: "Clock out to end your work session",
	}, handleClockOut)

	sys.RegisterCommand(discord.SlashCommandCreate{
		Name:        "status",
		Description: "Check your current clock status",
	}, handleClockStatus)
}

func clockedInNotice(start time.Time, timeout time.Duration) sys.Notice {
	return sys.Success(sys.MsgClockedInTitle, fmt.Sprintf(sys.MsgClockedInBody,
		formatClockZone(start), formatDate(start), int(timeout.Minutes())))
}

func clockedOutNotice(start, end time.Time, d time.Duration) sys.Notice {
	return sys.Success(sys.MsgClockOutTitle, fmt.Sprintf(sys.MsgClockedOutBody,
		formatClock(start), formatClock(end), sys.FormatDuration(d), end.Format("2006-01-02 MST")))
}

// clockStatusNotice reports s, or the idle text when active is false.
func clockStatusNotice(s proc.Session, elapsed time.Duration, active bool) sys.Notice {
	if !active {
		return sys.Info(sys.MsgClockStatusTitle, sys.MsgClockStatusIdle)
	}
	start := s.Start.In(sessionLocation(s.Timezone))
	return sys.Info(sys.MsgClockStatusTitle, fmt.Sprintf(sys.MsgClockStatusActive,
		formatClock(start), sys.FormatDuration(elapsed), s.Timezone))
}

func handleClockIn(event *events.ApplicationCommandInteractionCreate) {
	user := event.User()
	tz := "UTC"
	if name, _, ok := savedLocation(user.ID); ok {
		tz = name
	}

	var guildID snowflake.ID
	if g := event.GuildID(); g != nil {
		guildID = *g
	}

	s, err := proc.Clock.ClockIn(user.ID, guildID, event.Channel().ID(), tz)
	if errors.Is(err, proc.ErrAlreadyActive) {
		start := s.Start.In(sessionLocation(s.Timezone))
		reply(event, sys.Warning(sys.MsgAlreadyClockedInTitle, fmt.Sprintf(sys.MsgAlreadyClockedInBody, formatClock(start))), true)
		return
	}

	sys.LogClock(sys.MsgClockInLogged, user.Username, tz)
	reply(event, clockedInNotice(s.Start.In(sessionLocation(tz)), sys.Cfg().ClockInTimeout), false)
}

func handleClockOut(event *events.ApplicationCommandInteractionCreate) {
	user := event.User()
	s, d, err := proc.Clock.ClockOut(user.ID)
	if errors.Is(err, proc.ErrNotActive) {
		reply(event, sys.Warning(sys.MsgNotClockedInTitle, sys.MsgNotClockedInBody), true)
		return
	}

	loc := sessionLocation(s.Timezone)
	start := s.Start.In(loc)
	sys.LogClock(sys.MsgClockOutLogged, user.Username, sys.FormatDuration(d))
	reply(event, clockedOutNotice(start, start.Add(d), d), false)
}

func handleClockStatus(event *events.ApplicationCommandInteractionCreate) {
	s, elapsed, ok := proc.Clock.Status(event.User().ID)
	reply(event, clockStatusNotice(s, elapsed, ok), true)
}
