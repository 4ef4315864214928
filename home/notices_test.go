package home

import (
	"testing"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/leeineian/alpha/proc"
	"github.com/leeineian/alpha/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMassDMPromptID(t *testing.T) {
	id := massDMPromptID("abc", "confirm")
	prompt, action, ok := parseMassDMPromptID(id)
	require.True(t, ok)
	assert.Equal(t, "abc", prompt)
	assert.Equal(t, "confirm", action)

	for _, bad := range []string{"abc:confirm", "massdm::confirm", "massdm:abc", "massdm:abc:explode"} {
		_, _, ok := parseMassDMPromptID(bad)
		assert.False(t, ok, bad)
	}
}

func TestTallyNotice(t *testing.T) {
	n := tallyNotice(proc.Tally{Successful: 8, Failed: 2, Total: 10})
	assert.Equal(t, "**Successful:** 8\n**Failed:** 2\n**Total:** 10", n.Body)
}

func TestAnnouncementNotice(t *testing.T) {
	n := announcementNotice("Party at @everyone", "alice")
	assert.Equal(t, sys.MsgAnnounceTitle, n.Title)
	assert.Equal(t, "Party at @\u200beveryone", n.Body)
	assert.Equal(t, "alice", n.Author)
}

func TestStaffMessage(t *testing.T) {
	n := staffMessage("Heads up", "  see you  ", "Guild", "bob")
	assert.Equal(t, "see you", n.Body)
	require.Len(t, n.Fields, 2)
	assert.Equal(t, "Guild", n.Fields[0].Value)
	assert.Equal(t, "bob", n.Fields[1].Value)
	assert.Equal(t, sys.MsgStaffMessageFooter, n.Footer)
}

func TestHelpAndVersion(t *testing.T) {
	assert.Len(t, helpNotice().Fields, 5)

	v := versionNotice()
	assert.Contains(t, v.Title, sys.Version)
	assert.Contains(t, v.Fields[0].Value, sys.EmojiTick+" "+sys.Features[0])
}

func TestInfoNotice(t *testing.T) {
	n := infoNotice(botStats{Guilds: 2, Users: 150, Commands: 18, Started: time.Unix(1754816400, 0)})
	assert.Contains(t, n.Fields[0].Value, "150")
	assert.Contains(t, n.Fields[0].Value, "1754816400")
	assert.Equal(t, "- a\n- b", bulletList("-", []string{"a", "b"}))
}

func TestPingNotice(t *testing.T) {
	n := pingNotice(0, 120*time.Millisecond, 3)
	assert.Contains(t, n.Body, sys.MsgPingStarting)
	assert.Contains(t, n.Body, "120ms")

	n = pingNotice(45*time.Millisecond, 0, 3)
	assert.Contains(t, n.Body, sys.MsgPingOnline)

	components := pingComponents(n)
	require.Len(t, components, 2)
	row, ok := components[1].(discord.ActionRowComponent)
	require.True(t, ok)
	assert.Len(t, row.Components, 1)
}

func TestPresenceNotice(t *testing.T) {
	assert.Equal(t, sys.MsgPresenceOn, presenceNotice(true).Body)
	assert.Equal(t, sys.MsgPresenceOff, presenceNotice(false).Body)
}
