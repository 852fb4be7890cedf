package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := parse("client", nil)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Addr)
	assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.Equal(t, 3*time.Second, cfg.ResetDelay)
	assert.Equal(t, "ruboni:", cfg.Redis.Prefix)
}

func TestParse_EnvOverridesFlags(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("API_BASE_URL", "https://cms.example.com/api")
	t.Setenv("STORAGE", "redis")
	t.Setenv("BOOKING_RESET_DELAY", "500ms")

	cfg, err := parse("client", []string{"-port", "7000", "-api", "http://flag/api"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:9090", cfg.Addr)
	assert.Equal(t, "https://cms.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, StorageRedis, cfg.Storage)
	assert.Equal(t, 500*time.Millisecond, cfg.ResetDelay)
}

func TestParse_Errors(t *testing.T) {
	t.Run("bad port", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "eighty")
		_, err := parse("client", nil)
		assert.Error(t, err)
	})

	t.Run("unknown storage", func(t *testing.T) {
		_, err := parse("client", []string{"-storage", "sqlite"})
		assert.Error(t, err)
	})

	t.Run("bad reset delay", func(t *testing.T) {
		t.Setenv("BOOKING_RESET_DELAY", "soon")
		_, err := parse("client", nil)
		assert.Error(t, err)
	})
}

func TestParseDevCMS(t *testing.T) {
	cfg, err := parseDevCMS("devcms", []string{"-seed", "seed.yaml"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:1337", cfg.Addr)
	assert.Equal(t, "seed.yaml", cfg.Seed)
	assert.Equal(t, defaultCMSSecret, cfg.Secret)

	t.Setenv("CMS_PORT", "4000")
	t.Setenv("CMS_JWT_SECRET", "s3cret")
	cfg, err = parseDevCMS("devcms", nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost:4000", cfg.Addr)
	assert.Equal(t, "s3cret", cfg.Secret)
}
