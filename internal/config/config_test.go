package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TPD2004/kenton-car-wash/internal/domain"
)

func TestScheduleConfig_Weekly(t *testing.T) {
	fullWeek := func() map[string]DayHoursConfig {
		return map[string]DayHoursConfig{
			"monday":    {Start: 8, End: 17},
			"tuesday":   {Start: 8, End: 17},
			"wednesday": {Start: 8, End: 17},
			"thursday":  {Start: 8, End: 17},
			"friday":    {Start: 8, End: 17},
			"saturday":  {Start: 8, End: 12},
			"sunday":    {Closed: true},
		}
	}

	t.Run("full week builds a schedule", func(t *testing.T) {
		s := ScheduleConfig{Hours: fullWeek()}

		weekly, err := s.Weekly()
		require.NoError(t, err)

		assert.Nil(t, weekly.HoursFor(time.Sunday))
		require.NotNil(t, weekly.HoursFor(time.Monday))
		assert.Equal(t, 17, weekly.HoursFor(time.Monday).EndHour)
		assert.Equal(t, 12, weekly.HoursFor(time.Saturday).EndHour)
	})

	t.Run("empty schedule falls back to default", func(t *testing.T) {
		weekly, err := ScheduleConfig{}.Weekly()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultWeeklySchedule(), weekly)
	})

	t.Run("missing weekday is an error", func(t *testing.T) {
		hours := fullWeek()
		delete(hours, "thursday")

		_, err := ScheduleConfig{Hours: hours}.Weekly()
		require.Error(t, err)
	})

	t.Run("unknown weekday is an error", func(t *testing.T) {
		hours := fullWeek()
		hours["caturday"] = DayHoursConfig{Start: 8, End: 12}

		_, err := ScheduleConfig{Hours: hours}.Weekly()
		require.Error(t, err)
	})

	t.Run("inverted hours are an error", func(t *testing.T) {
		hours := fullWeek()
		hours["monday"] = DayHoursConfig{Start: 17, End: 8}

		_, err := ScheduleConfig{Hours: hours}.Weekly()
		require.Error(t, err)
	})
}

func TestScheduleConfig_Location(t *testing.T) {
	t.Run("empty timezone uses the default", func(t *testing.T) {
		loc, err := ScheduleConfig{}.Location()
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultTimezone, loc.String())
	})

	t.Run("invalid timezone is an error", func(t *testing.T) {
		_, err := ScheduleConfig{Timezone: "Mars/Olympus_Mons"}.Location()
		require.Error(t, err)
	})
}

func TestAdminConfig(t *testing.T) {
	t.Run("session keys decode from hex", func(t *testing.T) {
		a := AdminConfig{
			SessionHashKey:  "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff",
			SessionBlockKey: "ffeeddccbbaa99887766554433221100ffeeddccbbaa99887766554433221100",
		}

		hashKey, blockKey, err := a.SessionKeys()
		require.NoError(t, err)
		assert.Len(t, hashKey, 32)
		assert.Len(t, blockKey, 32)
	})

	t.Run("non-hex keys are an error", func(t *testing.T) {
		a := AdminConfig{SessionHashKey: "zz", SessionBlockKey: "00"}
		_, _, err := a.SessionKeys()
		require.Error(t, err)
	})

	t.Run("ttl defaults to 12 hours", func(t *testing.T) {
		assert.Equal(t, 12*time.Hour, AdminConfig{}.SessionTTL())
		assert.Equal(t, 30*time.Minute, AdminConfig{SessionTTLMinutes: 30}.SessionTTL())
	})
}

const validConfigTOML = `
[server]
http_port = 8080

[database]
host = "localhost"
port = 5432
user = "kcw"
password = "kcw"
dbname = "kenton_car_wash"
sslmode = "disable"

[logs]
file = ""
level = "info"

[metrics]
enabled = false

[admin]
secret_hash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
session_hash_key = "00112233445566778899aabbccddeeff00112233445566778899aabbccddeeff"
session_block_key = "ffeeddccbbaa99887766554433221100ffeeddccbbaa99887766554433221100"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config loads", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, validConfigTOML))
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Server.HTTPPort)
		assert.Contains(t, cfg.Database.DSN(), "dbname=kenton_car_wash")
	})

	t.Run("missing admin secret hash fails validation", func(t *testing.T) {
		broken := validConfigTOML + "\n"
		cfg, err := Load(writeConfig(t, broken))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		cfg.Admin.SecretHash = ""
		require.Error(t, cfg.validate())
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		require.Error(t, err)
	})
}
