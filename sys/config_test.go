package sys

import (
	"testing"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestConfigFromEnvDefaults(t *testing.T) {
	cfg, err := configFromEnv(envOf(map[string]string{EnvDiscordToken: "token"}))
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.Token)
	assert.Equal(t, "!", cfg.Prefix)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "data/alpha.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Minute, cfg.ClockInTimeout)
	assert.Equal(t, 5*time.Minute, cfg.ReminderWait)
	assert.Equal(t, 70, cfg.MemberMatchFloor)
	assert.Equal(t, snowflake.ID(0), cfg.AnnouncementChannelID)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnvOverrides(t *testing.T) {
	cfg, err := configFromEnv(envOf(map[string]string{
		EnvBotToken:            "fallback",
		EnvGuildID:             " 123456789012345678 ",
		EnvAnnouncementChannel: "987654321098765432",
		EnvDataDir:             "/var/lib/alpha",
		EnvClockInTimeout:      "45m",
		EnvMassDMDelay:         "0s",
		EnvTimezoneCutoff:      "0.6",
		EnvTimezoneLimit:       "3",
		EnvSilent:              "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "fallback", cfg.Token)
	assert.Equal(t, "123456789012345678", cfg.GuildID)
	assert.Equal(t, snowflake.ID(987654321098765432), cfg.AnnouncementChannelID)
	assert.Equal(t, "/var/lib/alpha/alpha.db", cfg.DatabasePath)
	assert.Equal(t, 45*time.Minute, cfg.ClockInTimeout)
	assert.Equal(t, time.Duration(0), cfg.MassDMDelay)
	assert.InDelta(t, 0.6, cfg.TimezoneCutoff, 1e-9)
	assert.Equal(t, 3, cfg.TimezoneLimit)
	assert.True(t, cfg.Silent)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnvRejectsGarbage(t *testing.T) {
	for key, value := range map[string]string{
		EnvAnnouncementChannel: "general",
		EnvReminderWait:        "five minutes",
		EnvMemberMatchFloor:    "high",
		EnvTimezoneCutoff:      "most",
	} {
		_, err := configFromEnv(envOf(map[string]string{EnvDiscordToken: "t", key: value}))
		assert.Error(t, err, key)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		c := DefaultConfig()
		c.Token = "t"
		return c
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"missing token", func(c *Config) { c.Token = "" }},
		{"short guild id", func(c *Config) { c.GuildID = "1234" }},
		{"zero timeout", func(c *Config) { c.ClockInTimeout = 0 }},
		{"negative delay", func(c *Config) { c.MassDMDelay = -time.Second }},
		{"floor above 100", func(c *Config) { c.MemberMatchFloor = 101 }},
		{"cutoff above 1", func(c *Config) { c.TimezoneCutoff = 1.5 }},
		{"no suggestions", func(c *Config) { c.TimezoneLimit = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestCfgFallsBackToDefaults(t *testing.T) {
	saved := GlobalConfig
	t.Cleanup(func() { GlobalConfig = saved })

	GlobalConfig = nil
	assert.Equal(t, DefaultConfig(), Cfg())
}
