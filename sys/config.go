package sys

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disgoorg/snowflake/v2"
	"github.com/joho/godotenv"
)

const (
	EnvDiscordToken        = "DISCORD_TOKEN"
	EnvBotToken            = "BOT_TOKEN"
	EnvGuildID             = "GUILD_ID"
	EnvPrefix              = "BOT_PREFIX"
	EnvAnnouncementChannel = "ANNOUNCEMENT_CHANNEL_ID"
	EnvDataDir             = "DATA_DIR"
	EnvDatabasePath        = "DATABASE_PATH"
	EnvClockInTimeout      = "CLOCKIN_TIMEOUT"
	EnvReminderWait        = "CLOCKIN_REMINDER_WAIT"
	EnvSweepInterval       = "CLOCKIN_SWEEP_INTERVAL"
	EnvMassDMDelay         = "MASS_DM_DELAY"
	EnvConfirmTimeout      = "CONFIRM_TIMEOUT"
	EnvMemberMatchFloor    = "MEMBER_MATCH_FLOOR"
	EnvTimezoneCutoff      = "TIMEZONE_MATCH_CUTOFF"
	EnvTimezoneLimit       = "TIMEZONE_MATCH_LIMIT"
	EnvSilent              = "SILENT"
)

// Log categories a guild can route records to.
const (
	LogMessages   = "message_logs"
	LogMembers    = "member_logs"
	LogVoice      = "voice_logs"
	LogModeration = "moderation_logs"
	LogServer     = "server_logs"
)

// LogCategories is ordered the way setup creates the channels.
var LogCategories = []string{LogMessages, LogMembers, LogVoice, LogModeration, LogServer}

// Palette
const (
	ColorSuccess = 0x00ff00
	ColorError   = 0xff0000
	ColorWarning = 0xffff00
	ColorInfo    = 0x0099ff
	ColorPrimary = 0x7289da
)

const (
	EmojiTick    = "✅"
	EmojiCross   = "❌"
	EmojiClock   = "🕐"
	EmojiBell    = "🔔"
	EmojiWarning = "⚠️"
)

type Config struct {
	Token                 string
	GuildID               string
	Prefix                string
	AnnouncementChannelID snowflake.ID
	DataDir               string
	DatabasePath          string
	ClockInTimeout        time.Duration
	ReminderWait          time.Duration
	SweepInterval         time.Duration
	MassDMDelay           time.Duration
	ConfirmTimeout        time.Duration
	MemberMatchFloor      int
	TimezoneCutoff        float64
	TimezoneLimit         int
	Silent                bool
}

var GlobalConfig *Config

// DefaultConfig returns the settings used when the environment leaves them unset.
func DefaultConfig() *Config {
	return &Config{
		Prefix:           "!",
		DataDir:          "./data",
		ClockInTimeout:   30 * time.Minute,
		ReminderWait:     5 * time.Minute,
		SweepInterval:    time.Minute,
		MassDMDelay:      time.Second,
		ConfirmTimeout:   30 * time.Second,
		MemberMatchFloor: 70,
		TimezoneCutoff:   0.4,
		TimezoneLimit:    5,
	}
}

// LoadConfig initializes the configuration from .env and the environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := configFromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Silent {
		SetSilentMode(true)
	}

	GlobalConfig = cfg
	return cfg, nil
}

func configFromEnv(getenv func(string) string) (*Config, error) {
	cfg := DefaultConfig()

	cfg.Token = getenv(EnvDiscordToken)
	if cfg.Token == "" {
		cfg.Token = getenv(EnvBotToken)
	}
	cfg.GuildID = strings.TrimSpace(getenv(EnvGuildID))

	if v := getenv(EnvPrefix); v != "" {
		cfg.Prefix = v
	}
	if v := getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	cfg.DatabasePath = getenv(EnvDatabasePath)
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(cfg.DataDir, "alpha.db")
	}

	if v := strings.TrimSpace(getenv(EnvAnnouncementChannel)); v != "" && v != "0" {
		id, err := snowflake.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvAnnouncementChannel, err)
		}
		cfg.AnnouncementChannelID = id
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{EnvClockInTimeout, &cfg.ClockInTimeout},
		{EnvReminderWait, &cfg.ReminderWait},
		{EnvSweepInterval, &cfg.SweepInterval},
		{EnvMassDMDelay, &cfg.MassDMDelay},
		{EnvConfirmTimeout, &cfg.ConfirmTimeout},
	}
	for _, d := range durations {
		v := getenv(d.key)
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", d.key, err)
		}
		*d.dst = parsed
	}

	if v := getenv(EnvMemberMatchFloor); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvMemberMatchFloor, err)
		}
		cfg.MemberMatchFloor = n
	}
	if v := getenv(EnvTimezoneCutoff); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTimezoneCutoff, err)
		}
		cfg.TimezoneCutoff = f
	}
	if v := getenv(EnvTimezoneLimit); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", EnvTimezoneLimit, err)
		}
		cfg.TimezoneLimit = n
	}

	cfg.Silent, _ = strconv.ParseBool(getenv(EnvSilent))
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Token == "" {
		return fmt.Errorf(MsgConfigMissingToken)
	}
	if c.GuildID != "" && (len(c.GuildID) < 17 || len(c.GuildID) > 20) {
		return fmt.Errorf("invalid GUILD_ID: must be a valid Snowflake")
	}
	for name, d := range map[string]time.Duration{
		EnvClockInTimeout: c.ClockInTimeout,
		EnvReminderWait:   c.ReminderWait,
		EnvSweepInterval:  c.SweepInterval,
		EnvConfirmTimeout: c.ConfirmTimeout,
	} {
		if d <= 0 {
			return fmt.Errorf("invalid %s: must be positive", name)
		}
	}
	if c.MassDMDelay < 0 {
		return fmt.Errorf("invalid %s: must not be negative", EnvMassDMDelay)
	}
	if c.MemberMatchFloor < 0 || c.MemberMatchFloor > 100 {
		return fmt.Errorf("invalid %s: must be between 0 and 100", EnvMemberMatchFloor)
	}
	if c.TimezoneCutoff < 0 || c.TimezoneCutoff > 1 {
		return fmt.Errorf("invalid %s: must be between 0 and 1", EnvTimezoneCutoff)
	}
	if c.TimezoneLimit < 1 {
		return fmt.Errorf("invalid %s: must be at least 1", EnvTimezoneLimit)
	}
	return nil
}

// Cfg returns the loaded configuration, or the defaults before LoadConfig ran.
func Cfg() *Config {
	if GlobalConfig == nil {
		return DefaultConfig()
	}
	return GlobalConfig
}

func GetProjectName() string {
	exePath, err := os.Executable()
	projectName := "alpha"
	if err == nil {
		projectName = filepath.Base(exePath)
		projectName = strings.TrimSuffix(projectName, ".exe")

		if projectName == "main" || strings.HasPrefix(projectName, "go_build_") || strings.HasSuffix(projectName, ".test") {
			projectName = "alpha"
		}
	}
	return projectName
}
