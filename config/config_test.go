package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "cinema")
	t.Setenv("DB_NAME", "cinema")
	t.Setenv("JWT_SECRET", "secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8002", settings.Port)
	assert.Equal(t, "development", settings.Env)
	assert.Equal(t, uint64(5432), settings.DB.Port)
	assert.Equal(t, 10*time.Second, settings.QueryTimeout)
	assert.Equal(t, "Asia/Ho_Chi_Minh", settings.Location.String())
	assert.False(t, settings.DB.AutoMigrate)
	assert.Contains(t, settings.DB.DSN(), "host=localhost port=5432")
}

func TestLoadRejectsMissingDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"timezone": {"APP_TIMEZONE", "Mars/Olympus"},
		"env":      {"APP_ENV", "staging"},
		"port":     {"DB_PORT", "abc"},
		"timeout":  {"QUERY_TIMEOUT", "soon"},
		"migrate":  {"DB_AUTO_MIGRATE", "maybe"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(kv[0], kv[1])

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
