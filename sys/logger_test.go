package sys

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer, opts *BotLogHandlerOptions) *slog.Logger {
	h := NewBotLogHandler(buf, opts)
	h.now = func() time.Time { return time.Date(2025, 8, 10, 14, 30, 5, 0, time.UTC) }
	return slog.New(h)
}

func TestBotLogHandlerFormat(t *testing.T) {
	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	var buf bytes.Buffer
	logger := newTestLogger(&buf, &BotLogHandlerOptions{Level: slog.LevelDebug})

	logger.Info("plain")
	logger.Warn("careful", slog.String("component", "clock"))
	logger.Info("synced", slog.String("component", "loader"))
	logger.Debug("noise")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"14:30:05 [INFO] plain",
		"14:30:05 [WARN] [CLOCK] careful",
		"14:30:05 [LOADER] synced",
		"14:30:05 [DEBUG] noise",
	}, lines)
}

func TestBotLogHandlerLevelAndSilent(t *testing.T) {
	var buf bytes.Buffer
	newTestLogger(&buf, nil).Debug("hidden")
	assert.Empty(t, buf.String())

	newTestLogger(&buf, &BotLogHandlerOptions{Silent: true}).Error("hidden")
	assert.Empty(t, buf.String())
}

func TestStripANSIWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewStripANSIWriter(&buf)

	in := []byte("\x1b[31mred\x1b[0m text")
	n, err := w.Write(in)
	assert.NoError(t, err)
	assert.Equal(t, len(in), n)
	assert.Equal(t, "red text", buf.String())
}
