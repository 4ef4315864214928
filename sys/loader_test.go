package sys

import (
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/stretchr/testify/assert"
)

func TestCalculateCommandHash(t *testing.T) {
	a := []discord.ApplicationCommandCreate{discord.SlashCommandCreate{Name: "ping", Description: "Check latency"}}
	b := []discord.ApplicationCommandCreate{discord.SlashCommandCreate{Name: "ping", Description: "Check bot latency"}}

	assert.Len(t, calculateCommandHash(a), 64)
	assert.Equal(t, calculateCommandHash(a), calculateCommandHash(a))
	assert.NotEqual(t, calculateCommandHash(a), calculateCommandHash(b))
}
