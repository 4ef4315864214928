package home

import (
	"strings"
	"testing"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
	"github.com/leeineian/alpha/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logAt = time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC)

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Message Logs", categoryTitle(sys.LogMessages))
	assert.Equal(t, "Moderation Logs", categoryTitle(sys.LogModeration))
	assert.Equal(t, "Single", categoryTitle("single"))
}

func TestLogStatusNotice(t *testing.T) {
	n := logStatusNotice(nil, nil)
	assert.Equal(t, sys.MsgLogsNotConfiguredTitle, n.Title)

	routes := map[string]snowflake.ID{sys.LogVoice: 20, sys.LogMessages: 10}
	n = logStatusNotice(routes, func(id snowflake.ID) bool { return id == 10 })

	assert.Equal(t, sys.MsgLogsStatusTitle, n.Title)
	lines := strings.Split(n.Body, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "✅ **Message Logs**: <#10>", lines[0])
	assert.Equal(t, "❌ **Voice Logs**: Channel not found", lines[1])
}

func TestLogRecordStamp(t *testing.T) {
	n := logRecord(sys.Info("t", "b"), "Alice (alice)", 7, logAt)

	assert.Equal(t, "Alice (alice)", n.Author)
	assert.Equal(t, logAt, n.Timestamp)
	require.Len(t, n.Fields, 1)
	assert.Equal(t, sys.MsgFieldUserID, n.Fields[0].Name)
	assert.Equal(t, "7", n.Fields[0].Value)
}

func TestRoleMentionsSkipsEveryone(t *testing.T) {
	assert.Equal(t, sys.MsgLogNone, roleMentions(1, []snowflake.ID{1}))
	assert.Equal(t, "<@&2>, <@&3>", roleMentions(1, []snowflake.ID{1, 2, 3}))
}

func TestContentOrPlaceholder(t *testing.T) {
	assert.Equal(t, sys.MsgLogNoContent, contentOrPlaceholder(""))
	assert.Len(t, []rune(contentOrPlaceholder(strings.Repeat("x", 1500))), logContentLimit)
}

func TestMessageEditNotice(t *testing.T) {
	before := messageSnapshot{GuildID: 1, ChannelID: 2, Author: discord.User{ID: 3, Username: "alice"}, Content: "helo"}

	_, ok := messageEditNotice(before, "helo", 4, logAt)
	assert.False(t, ok)

	n, ok := messageEditNotice(before, "hello", 4, logAt)
	require.True(t, ok)
	assert.Contains(t, n.Body, "https://discord.com/channels/1/2/4")
	assert.Equal(t, "alice (alice)", n.Author)
	require.Len(t, n.Fields, 3)
	assert.Equal(t, "helo", n.Fields[1].Value)
	assert.Equal(t, "hello", n.Fields[2].Value)
}

func TestMessageDeleteNoticeAttachments(t *testing.T) {
	s := messageSnapshot{ChannelID: 2, Author: discord.User{ID: 3, Username: "bob"}, Attachments: []string{"a.png", "b.txt"}}

	n := messageDeleteNotice(s, 9, logAt)
	assert.Contains(t, n.Body, sys.MsgLogNoContent)
	last := n.Fields[len(n.Fields)-1]
	assert.Equal(t, sys.MsgFieldAttachments, last.Name)
	assert.Equal(t, "• a.png\n• b.txt", last.Value)
}

func TestBulkDeleteNotice(t *testing.T) {
	n := bulkDeleteNotice(5, 2, nil, logAt)
	assert.Empty(t, n.Fields)

	authors := make([]string, 12)
	for i := range authors {
		authors[i] = "user"
	}
	n = bulkDeleteNotice(40, 2, authors, logAt)
	require.Len(t, n.Fields, 1)
	assert.Equal(t, bulkAuthorLimit, strings.Count(n.Fields[0].Value, "user"))
	assert.True(t, strings.HasSuffix(n.Fields[0].Value, "... and 2 more"))
}

func TestBulkAuthorsDistinctHumans(t *testing.T) {
	human := discord.User{ID: 501, Username: "carol"}
	robot := discord.User{ID: 502, Username: "beep", Bot: true}
	snapshots.Add(9001, messageSnapshot{Author: human})
	snapshots.Add(9002, messageSnapshot{Author: human})
	snapshots.Add(9003, messageSnapshot{Author: robot})

	assert.Equal(t, []string{"carol"}, bulkAuthors([]snowflake.ID{9001, 9002, 9003, 9004}))
}

func TestRoleDiff(t *testing.T) {
	added, removed := roleDiff([]snowflake.ID{1, 2, 3}, []snowflake.ID{2, 3, 4, 5})
	assert.Equal(t, []snowflake.ID{4, 5}, added)
	assert.Equal(t, []snowflake.ID{1}, removed)

	added, removed = roleDiff([]snowflake.ID{1}, []snowflake.ID{1})
	assert.Empty(t, added)
	assert.Empty(t, removed)
}

func TestMemberUpdateNotice(t *testing.T) {
	names := func(ids []snowflake.ID) []string {
		out := make([]string, len(ids))
		for i, id := range ids {
			out[i] = "role" + id.String()
		}
		return out
	}
	u := discord.User{ID: 8, Username: "dave"}

	n, ok := memberUpdateNotice(discord.Member{User: u}, discord.Member{User: u, Nick: strPtr("Davey")}, names, logAt)
	require.True(t, ok)
	assert.Equal(t, sys.MsgLogNicknameTitle, n.Title)
	assert.Contains(t, n.Body, "dave")
	assert.Contains(t, n.Body, "Davey")

	n, ok = memberUpdateNotice(
		discord.Member{User: u, RoleIDs: []snowflake.ID{1}},
		discord.Member{User: u, RoleIDs: []snowflake.ID{2}}, names, logAt)
	require.True(t, ok)
	assert.Equal(t, "**Added:** role2\n**Removed:** role1", n.Body)

	_, ok = memberUpdateNotice(discord.Member{User: u}, discord.Member{User: u}, names, logAt)
	assert.False(t, ok)
}

func TestMemberLeaveNoticeUnknownJoin(t *testing.T) {
	n := memberLeaveNotice(discord.User{ID: 1, Username: "erin"}, time.Time{}, nil, logAt)
	assert.Contains(t, n.Body, sys.MsgLogUnknown)
	assert.Contains(t, n.Body, sys.MsgLogNone)
}

func TestVoiceNotice(t *testing.T) {
	m := discord.Member{User: discord.User{ID: 1, Username: "frank"}}
	lobby := &voicePlace{Name: "Lobby", Category: "Voice"}
	games := &voicePlace{Name: "Games", Category: "Voice"}

	_, ok := voiceNotice(m, nil, nil, logAt)
	assert.False(t, ok)

	n, ok := voiceNotice(m, nil, lobby, logAt)
	require.True(t, ok)
	assert.Equal(t, sys.MsgLogVoiceJoinTitle, n.Title)
	assert.Equal(t, "**Channel:** Lobby\n**Category:** Voice", n.Body)

	n, _ = voiceNotice(m, lobby, nil, logAt)
	assert.Equal(t, sys.MsgLogVoiceLeaveTitle, n.Title)

	n, _ = voiceNotice(m, lobby, games, logAt)
	assert.Equal(t, sys.MsgLogVoiceMoveTitle, n.Title)
	assert.Equal(t, "**From:** Lobby\n**To:** Games", n.Body)
}

func TestServerRecords(t *testing.T) {
	assert.Equal(t, "Text", channelTypeName(discord.ChannelTypeGuildText))
	assert.Equal(t, "Stage Voice", channelTypeName(discord.ChannelTypeGuildStageVoice))
	assert.Equal(t, "#00ff00", hexColor(0x00ff00))
	assert.Equal(t, "#000000", hexColor(0))

	n := channelDeleteNotice(30, "general", discord.ChannelTypeGuildText, "Info", logAt)
	assert.Equal(t, "**Channel:** #general\n**Type:** Text\n**Category:** Info", n.Body)

	r := discord.Role{ID: 40, Name: "Mods", Color: 0xff0000}
	n = roleDeleteNotice(r, 3, logAt)
	assert.Equal(t, "**Role:** Mods\n**Color:** #ff0000\n**Members:** 3", n.Body)
	assert.Equal(t, "40", n.Fields[0].Value)
}
