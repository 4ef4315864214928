package sys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/disgoorg/snowflake/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimezoneStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store := OpenTimezoneStore(dir)
	_, ok := store.Get(42)
	assert.False(t, ok)

	require.NoError(t, store.Set(42, "Europe/Berlin"))
	require.NoError(t, store.Set(43, "Asia/Tokyo"))
	require.NoError(t, store.Delete(43))

	reopened := OpenTimezoneStore(dir)
	tz, ok := reopened.Get(42)
	assert.True(t, ok)
	assert.Equal(t, "Europe/Berlin", tz)
	assert.Equal(t, map[string]string{"42": "Europe/Berlin"}, reopened.All())
}

func TestTimezoneStoreCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TimezoneFile), []byte("{not json"), 0o644))

	store := OpenTimezoneStore(dir)
	assert.Empty(t, store.All())

	require.NoError(t, store.Set(7, "UTC"))
	raw, err := os.ReadFile(filepath.Join(dir, TimezoneFile))
	require.NoError(t, err)
	assert.JSONEq(t, `{"7": "UTC"}`, string(raw))
}

func TestStoreWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := OpenTimezoneStore(filepath.Join(dir, "nested"))
	require.NoError(t, store.Set(1, "UTC"))

	entries, err := os.ReadDir(filepath.Join(dir, "nested"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, TimezoneFile, entries[0].Name())
}

func TestLogConfigStoreMerge(t *testing.T) {
	dir := t.TempDir()
	const guild snowflake.ID = 100

	store := OpenLogConfigStore(dir)
	assert.Nil(t, store.Guild(guild))

	require.NoError(t, store.Merge(guild, map[string]snowflake.ID{LogMessages: 1, LogVoice: 2}))
	require.NoError(t, store.Merge(guild, map[string]snowflake.ID{LogVoice: 3, LogServer: 4}))

	reopened := OpenLogConfigStore(dir)
	assert.Equal(t, map[string]snowflake.ID{LogMessages: 1, LogVoice: 3, LogServer: 4}, reopened.Guild(guild))

	id, ok := reopened.Destination(guild, LogVoice)
	assert.True(t, ok)
	assert.Equal(t, snowflake.ID(3), id)

	_, ok = reopened.Destination(guild, LogMembers)
	assert.False(t, ok)
	_, ok = reopened.Destination(999, LogMessages)
	assert.False(t, ok)
}

func TestLogConfigGuildIsACopy(t *testing.T) {
	store := OpenLogConfigStore(t.TempDir())
	require.NoError(t, store.Merge(5, map[string]snowflake.ID{LogMembers: 9}))

	g := store.Guild(5)
	g[LogMembers] = 0

	id, ok := store.Destination(5, LogMembers)
	assert.True(t, ok)
	assert.Equal(t, snowflake.ID(9), id)
}

func TestLogConfigStoreReadsNumericAndStringIDs(t *testing.T) {
	tests := []struct {
		name string
		file string
	}{
		{"number", `{"123":{"message_logs":456789012345678901}}`},
		{"string", `{"123":{"message_logs":"456789012345678901"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, LogConfigFile), []byte(tt.file), 0o644))

			store := OpenLogConfigStore(dir)
			id, ok := store.Destination(123, LogMessages)
			require.True(t, ok)
			assert.Equal(t, snowflake.ID(456789012345678901), id)

			// Rewrites keep the entry and use the string form.
			require.NoError(t, store.Merge(123, map[string]snowflake.ID{LogVoice: 7}))
			raw, err := os.ReadFile(filepath.Join(dir, LogConfigFile))
			require.NoError(t, err)
			assert.Contains(t, string(raw), `"456789012345678901"`)

			reopened := OpenLogConfigStore(dir)
			assert.Equal(t, map[string]snowflake.ID{LogMessages: 456789012345678901, LogVoice: 7}, reopened.Guild(123))
		})
	}
}

func TestLogConfigStoreRejectsMalformedID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, LogConfigFile), []byte(`{"123":{"message_logs":"abc"}}`), 0o644))

	store := OpenLogConfigStore(dir)
	_, ok := store.Destination(123, LogMessages)
	assert.False(t, ok)
}
