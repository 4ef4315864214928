package sys

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/disgoorg/snowflake/v2"
)

const (
	storeDirMode  = 0o755
	storeFileMode = 0o644

	TimezoneFile  = "timezones.json"
	LogConfigFile = "log_config.json"
)

// JSONStore keeps one JSON document in memory and rewrites the whole file on every mutation.
// Writes go through a temp file in the same directory and a rename, one writer at a time.
type JSONStore[T any] struct {
	path string
	mu   sync.Mutex
	data T
}

// OpenJSONStore loads path into a fresh value. A missing file is an empty store;
// an unreadable or corrupt one is logged and treated as empty.
func OpenJSONStore[T any](path string, empty func() T) *JSONStore[T] {
	s := &JSONStore[T]{path: path, data: empty()}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		LogStore(MsgStoreLoadFailed, path, err)
	default:
		loaded := empty()
		if err := json.Unmarshal(raw, &loaded); err != nil {
			LogStore(MsgStoreLoadFailed, path, err)
		} else {
			s.data = loaded
		}
	}
	return s
}

func (s *JSONStore[T]) Path() string {
	return s.path
}

// View runs fn with the current document under the store lock. fn must not retain it.
func (s *JSONStore[T]) View(fn func(T)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.data)
}

// Update mutates the document and persists it. The in-memory change is kept even when the
// write fails; the error is returned so the caller can log it.
func (s *JSONStore[T]) Update(fn func(T) T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = fn(s.data)
	return writeJSONFile(s.path, s.data)
}

func writeJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp %s: %w", filepath.Base(path), err)
	}
	tmpName := tmp.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Chmod(storeFileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp %s: %w", filepath.Base(path), err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	cleanup = false
	return nil
}

// --- Timezone Preferences ---

type TimezoneStore struct {
	store *JSONStore[map[string]string]
}

func OpenTimezoneStore(dir string) *TimezoneStore {
	return &TimezoneStore{store: OpenJSONStore(filepath.Join(dir, TimezoneFile), func() map[string]string {
		return map[string]string{}
	})}
}

func (t *TimezoneStore) Get(userID snowflake.ID) (string, bool) {
	var tz string
	var ok bool
	t.store.View(func(m map[string]string) {
		tz, ok = m[userID.String()]
	})
	return tz, ok
}

func (t *TimezoneStore) Set(userID snowflake.ID, tz string) error {
	return t.store.Update(func(m map[string]string) map[string]string {
		if m == nil {
			m = map[string]string{}
		}
		m[userID.String()] = tz
		return m
	})
}

func (t *TimezoneStore) Delete(userID snowflake.ID) error {
	return t.store.Update(func(m map[string]string) map[string]string {
		delete(m, userID.String())
		return m
	})
}

// All returns a copy of every stored preference.
func (t *TimezoneStore) All() map[string]string {
	out := map[string]string{}
	t.store.View(func(m map[string]string) {
		maps.Copy(out, m)
	})
	return out
}

// --- Log Channel Configuration ---

type logRoutes = map[string]map[string]routeID

// routeID is a channel id that reads from either a JSON string or a bare number.
// Older config files were written with numeric ids; it always writes the string form.
type routeID snowflake.ID

func (r *routeID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*r = 0
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var err error
		if raw, err = strconv.Unquote(raw); err != nil {
			return fmt.Errorf("channel id %s: %w", b, err)
		}
	}
	id, err := snowflake.Parse(raw)
	if err != nil {
		return fmt.Errorf("channel id %s: %w", b, err)
	}
	*r = routeID(id)
	return nil
}

func (r routeID) MarshalJSON() ([]byte, error) {
	return json.Marshal(snowflake.ID(r))
}

type LogConfigStore struct {
	store *JSONStore[logRoutes]
}

func OpenLogConfigStore(dir string) *LogConfigStore {
	return &LogConfigStore{store: OpenJSONStore(filepath.Join(dir, LogConfigFile), func() logRoutes {
		return logRoutes{}
	})}
}

func (l *LogConfigStore) Path() string {
	return l.store.Path()
}

// Destination returns the channel configured for a category of a guild.
func (l *LogConfigStore) Destination(guildID snowflake.ID, category string) (snowflake.ID, bool) {
	var id routeID
	var ok bool
	l.store.View(func(m logRoutes) {
		id, ok = m[guildID.String()][category]
	})
	return snowflake.ID(id), ok && id != 0
}

// Guild returns a copy of a guild's routing table, nil when it was never configured.
func (l *LogConfigStore) Guild(guildID snowflake.ID) map[string]snowflake.ID {
	var out map[string]snowflake.ID
	l.store.View(func(m logRoutes) {
		g, ok := m[guildID.String()]
		if !ok {
			return
		}
		out = make(map[string]snowflake.ID, len(g))
		for category, id := range g {
			out[category] = snowflake.ID(id)
		}
	})
	return out
}

// Merge adds or replaces entries of a guild's routing table.
func (l *LogConfigStore) Merge(guildID snowflake.ID, routes map[string]snowflake.ID) error {
	return l.store.Update(func(m logRoutes) logRoutes {
		if m == nil {
			m = logRoutes{}
		}
		g, ok := m[guildID.String()]
		if !ok {
			g = map[string]routeID{}
			m[guildID.String()] = g
		}
		for category, id := range routes {
			g[category] = routeID(id)
		}
		return m
	})
}

// --- Process-wide Stores ---

var (
	Timezones  *TimezoneStore
	LogConfigs *LogConfigStore
)

// InitStores opens both flat-file stores under dir.
func InitStores(dir string) {
	Timezones = OpenTimezoneStore(dir)
	LogConfigs = OpenLogConfigStore(dir)
	LogStore(MsgStoreReady, dir)
}
