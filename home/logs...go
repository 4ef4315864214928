package home

import (
	"fmt"
	"strings"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/leeineian/alpha/sys"
)

const (
	snapshotCacheSize = 5000
	logContentLimit   = 1000
	bulkAuthorLimit   = 10
)

// messageSnapshot is what a log record needs once the message itself is gone.
type messageSnapshot struct {
	GuildID     snowflake.ID
	ChannelID   snowflake.ID
	Author      discord.User
	Content     string
	Attachments []string
}

var (
	snapshots   *lru.Cache[snowflake.ID, messageSnapshot]
	bulkDeleted *lru.Cache[snowflake.ID, struct{}]
)

func init() {
	snapshots, _ = lru.New[snowflake.ID, messageSnapshot](snapshotCacheSize)
	bulkDeleted, _ = lru.New[snowflake.ID, struct{}](snapshotCacheSize)
}

func snapshotOf(guildID snowflake.ID, m discord.Message) messageSnapshot {
	s := messageSnapshot{GuildID: guildID, ChannelID: m.ChannelID, Author: m.Author, Content: m.Content}
	for _, a := range m.Attachments {
		s.Attachments = append(s.Attachments, a.Filename)
	}
	return s
}

// userLabel renders "Display (username)".
func userLabel(u discord.User) string {
	return fmt.Sprintf("%s (%s)", userDisplayName(u), u.Username)
}

func memberLabel(m discord.Member) string {
	return fmt.Sprintf("%s (%s)", displayName(m), m.User.Username)
}

// logRecord stamps a notice with the acting user and the time it happened.
func logRecord(n sys.Notice, author string, userID snowflake.ID, at time.Time) sys.Notice {
	return n.WithAuthor(author).
		WithField(sys.MsgFieldUserID, userID.String(), true).
		WithTimestamp(at)
}

// forward posts a record to the guild's channel for category. Unconfigured categories and
// channels that no longer exist drop the record.
func forward(client *bot.Client, guildID snowflake.ID, category string, n sys.Notice) {
	channelID, ok := sys.LogConfigs.Destination(guildID, category)
	if !ok {
		return
	}
	if _, ok := client.Caches.Channel(channelID); !ok {
		return
	}
	if _, err := client.Rest.CreateMessage(channelID, n.Create(false)); err != nil {
		sys.LogDebug(sys.MsgLogForwardFailed, category, guildID, err)
	}
}

func channelMention(id snowflake.ID) string {
	return fmt.Sprintf("<#%s>", id)
}

func roleMentions(guildID snowflake.ID, roleIDs []snowflake.ID) string {
	var mentions []string
	for _, id := range roleIDs {
		if id == guildID {
			continue
		}
		mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
	}
	if len(mentions) == 0 {
		return sys.MsgLogNone
	}
	return strings.Join(mentions, ", ")
}

func relativeTime(t time.Time) string {
	return fmt.Sprintf("<t:%d:R>", t.Unix())
}

func orNone(s string) string {
	if s == "" {
		return sys.MsgLogNone
	}
	return s
}

func contentOrPlaceholder(content string) string {
	if content == "" {
		return sys.MsgLogNoContent
	}
	return sys.Truncate(content, logContentLimit)
}
