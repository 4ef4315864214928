package home

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/sys"
)

type bulkDeletePayload struct {
	IDs       []snowflake.ID `json:"ids"`
	ChannelID snowflake.ID   `json:"channel_id"`
	GuildID   snowflake.ID   `json:"guild_id"`
}

func init() {
	sys.RegisterEventListener(onLoggedMessageCreate)
	sys.RegisterEventListener(onLoggedMessageUpdate)
	sys.RegisterEventListener(onLoggedMessageDelete)
	sys.RegisterSyncEventListener(onRawBulkDelete)
}

func jumpLink(guildID, channelID, messageID snowflake.ID) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

func messageDeleteNotice(s messageSnapshot, messageID snowflake.ID, at time.Time) sys.Notice {
	n := sys.Failure(sys.MsgLogMessageDeletedTitle, fmt.Sprintf(sys.MsgLogMessageDeletedBody,
		channelMention(s.ChannelID), contentOrPlaceholder(s.Content), messageID))
	n = logRecord(n, userLabel(s.Author), s.Author.ID, at)
	if len(s.Attachments) > 0 {
		n = n.WithField(sys.MsgFieldAttachments, "• "+strings.Join(s.Attachments, "\n• "), false)
	}
	return n
}

// messageEditNotice reports false when the text did not change, as happens for embed unfurls.
func messageEditNotice(before messageSnapshot, after string, messageID snowflake.ID, at time.Time) (sys.Notice, bool) {
	if before.Content == after {
		return sys.Notice{}, false
	}
	n := sys.Warning(sys.MsgLogMessageEditedTitle, fmt.Sprintf(sys.MsgLogMessageEditedBody,
		channelMention(before.ChannelID), messageID, jumpLink(before.GuildID, before.ChannelID, messageID)))
	n = logRecord(n, userLabel(before.Author), before.Author.ID, at).
		WithField(sys.MsgFieldBefore, contentOrPlaceholder(before.Content), false).
		WithField(sys.MsgFieldAfter, contentOrPlaceholder(after), false)
	return n, true
}

// bulkDeleteNotice lists at most ten distinct authors and counts the rest.
func bulkDeleteNotice(count int, channelID snowflake.ID, authors []string, at time.Time) sys.Notice {
	n := sys.Failure(sys.MsgLogBulkDeleteTitle, fmt.Sprintf(sys.MsgLogBulkDeleteBody, count, channelMention(channelID))).
		WithTimestamp(at)
	if len(authors) == 0 {
		return n
	}
	shown := authors[:min(bulkAuthorLimit, len(authors))]
	value := strings.Join(shown, "\n")
	if extra := len(authors) - len(shown); extra > 0 {
		value += fmt.Sprintf(sys.MsgLogAndMore, extra)
	}
	return n.WithField(sys.MsgFieldUsersAffected, value, false)
}

// bulkAuthors collects the distinct human authors among the snapshots still held.
func bulkAuthors(ids []snowflake.ID) []string {
	seen := make(map[snowflake.ID]bool)
	var authors []string
	for _, id := range ids {
		s, ok := snapshots.Peek(id)
		if !ok || s.Author.Bot || seen[s.Author.ID] {
			continue
		}
		seen[s.Author.ID] = true
		authors = append(authors, userDisplayName(s.Author))
	}
	return authors
}

func onLoggedMessageCreate(event *events.GuildMessageCreate) {
	snapshots.Add(event.MessageID, snapshotOf(event.GuildID, event.Message))
}

func onLoggedMessageUpdate(event *events.GuildMessageUpdate) {
	if event.Message.Author.Bot {
		return
	}
	before, ok := snapshots.Get(event.MessageID)
	if !ok {
		if event.OldMessage.ID == 0 {
			snapshots.Add(event.MessageID, snapshotOf(event.GuildID, event.Message))
			return
		}
		before = snapshotOf(event.GuildID, event.OldMessage)
	}
	snapshots.Add(event.MessageID, snapshotOf(event.GuildID, event.Message))

	if n, changed := messageEditNotice(before, event.Message.Content, event.MessageID, time.Now()); changed {
		forward(event.Client(), event.GuildID, sys.LogMessages, n)
	}
}

func onLoggedMessageDelete(event *events.GuildMessageDelete) {
	if _, bulk := bulkDeleted.Peek(event.MessageID); bulk {
		return
	}
	s, ok := snapshots.Peek(event.MessageID)
	if !ok || s.Author.Bot {
		return
	}
	snapshots.Remove(event.MessageID)
	forward(event.Client(), event.GuildID, sys.LogMessages, messageDeleteNotice(s, event.MessageID, time.Now()))
}

// onRawBulkDelete marks the ids before the per-message deletes are dispatched so they are
// reported once, as a batch.
func onRawBulkDelete(event *events.Raw) {
	if event.EventType != gateway.EventTypeMessageDeleteBulk {
		return
	}
	var payload bulkDeletePayload
	if err := json.NewDecoder(event.Payload).Decode(&payload); err != nil {
		sys.LogDebug(sys.MsgLogBulkDecodeFailed, err)
		return
	}
	if payload.GuildID == 0 || len(payload.IDs) == 0 {
		return
	}
	for _, id := range payload.IDs {
		bulkDeleted.Add(id, struct{}{})
	}

	client := event.Client()
	sys.SafeGo(func() {
		authors := bulkAuthors(payload.IDs)
		for _, id := range payload.IDs {
			snapshots.Remove(id)
		}
		forward(client, payload.GuildID, sys.LogMessages, bulkDeleteNotice(len(payload.IDs), payload.ChannelID, authors, time.Now()))
	})
}
