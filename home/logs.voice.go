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

func init() {
	sys.RegisterEventListener(onLoggedVoiceState)
}

// voicePlace is a voice channel as it appears in a record.
type voicePlace struct {
	Name     string
	Category string
}

func lookupVoicePlace(client *bot.Client, id snowflake.ID) voicePlace {
	place := voicePlace{Name: channelMention(id), Category: sys.MsgLogNone}
	ch, ok := client.Caches.Channel(id)
	if !ok {
		return place
	}
	place.Name = ch.Name()
	if parentID := ch.ParentID(); parentID != nil {
		if parent, ok := client.Caches.Channel(*parentID); ok {
			place.Category = parent.Name()
		}
	}
	return place
}

// voiceNotice classifies a transition; nil means not in a channel. Callers drop
// same-channel updates (mute, deafen, stream) before getting here.
func voiceNotice(m discord.Member, before, after *voicePlace, at time.Time) (sys.Notice, bool) {
	var n sys.Notice
	switch {
	case before == nil && after == nil:
		return sys.Notice{}, false
	case before == nil:
		n = sys.Success(sys.MsgLogVoiceJoinTitle, fmt.Sprintf(sys.MsgLogVoicePlaceBody, after.Name, after.Category))
	case after == nil:
		n = sys.Failure(sys.MsgLogVoiceLeaveTitle, fmt.Sprintf(sys.MsgLogVoicePlaceBody, before.Name, before.Category))
	default:
		n = sys.Info(sys.MsgLogVoiceMoveTitle, fmt.Sprintf(sys.MsgLogVoiceMoveBody, before.Name, after.Name))
	}
	return logRecord(n, memberLabel(m), m.User.ID, at), true
}

func onLoggedVoiceState(event *events.GuildVoiceStateUpdate) {
	oldID, newID := event.OldVoiceState.ChannelID, event.VoiceState.ChannelID
	if oldID != nil && newID != nil && *oldID == *newID {
		return
	}

	client := event.Client()
	var before, after *voicePlace
	if oldID != nil {
		p := lookupVoicePlace(client, *oldID)
		before = &p
	}
	if newID != nil {
		p := lookupVoicePlace(client, *newID)
		after = &p
	}

	if n, ok := voiceNotice(event.Member, before, after, time.Now()); ok {
		forward(client, event.VoiceState.GuildID, sys.LogVoice, n)
	}
}
