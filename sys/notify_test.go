package sys

import (
	"testing"
	"time"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoticeRenderHeaderOnly(t *testing.T) {
	blocks := Success("Done", "All good").Render()

	require.Len(t, blocks, 2)
	assert.Equal(t, "### Done\nAll good", blocks[0])
	assert.Equal(t, "-# "+DefaultFooter, blocks[1])
}

func TestNoticeRenderFields(t *testing.T) {
	at := time.Unix(1754816400, 0)
	n := Info("Status", "").
		WithAuthor("alice").
		WithField("A", "1", true).
		WithField("B", "2", true).
		WithField("C", "3", false).
		WithFooter("Clock").
		WithTimestamp(at)

	blocks := n.Render()
	require.Len(t, blocks, 3)
	assert.Equal(t, "-# alice\n### Status", blocks[0])
	assert.Equal(t, "**A**\n1\n**B**\n2\n\n**C**\n3", blocks[1])
	assert.Equal(t, "-# Clock • <t:1754816400:f>", blocks[2])
}

func TestNoticeWithFieldDoesNotAlias(t *testing.T) {
	base := Warning("T", "B").WithField("one", "1", false)
	a := base.WithField("two", "2", false)
	b := base.WithField("three", "3", false)

	assert.Len(t, base.Fields, 1)
	assert.Equal(t, "two", a.Fields[1].Name)
	assert.Equal(t, "three", b.Fields[1].Name)
}

func TestNoticeColors(t *testing.T) {
	assert.Equal(t, ColorSuccess, Success("", "").Color)
	assert.Equal(t, ColorError, Failure("", "").Color)
	assert.Equal(t, ColorWarning, Warning("", "").Color)
	assert.Equal(t, ColorInfo, Info("", "").Color)
	assert.Equal(t, ColorPrimary, Primary("", "").Color)
}

func TestNoticeCreateEphemeral(t *testing.T) {
	msg := Failure("No", "Nope").Create(true)
	assert.True(t, msg.Flags.Has(discord.MessageFlagEphemeral))
	assert.Len(t, msg.Components, 1)

	public := Failure("No", "Nope").Create(false)
	assert.False(t, public.Flags.Has(discord.MessageFlagEphemeral))
}
