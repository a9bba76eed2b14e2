package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("COMPLIMENTS_DB_PATH", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, DefaultDBPath, cfg.DBPath)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("COMPLIMENTS_DB_PATH", "/var/lib/compliments.db")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/compliments.db", cfg.DBPath)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "/var/lib/compliments.db", DBPathFromEnv())
}

func TestFromEnv_Errors(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "BOT_TOKEN")
	assert.Equal(t, []string{"BOT_TOKEN"}, CheckRequired())

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "LOG_LEVEL")
	assert.Empty(t, CheckRequired())
}

func TestWriteEnvFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), EnvFileName)

	err := writeEnvFile(path, map[string]string{
		"BOT_TOKEN":           "123:abc_DEF-xyz",
		"COMPLIMENTS_DB_PATH": "/tmp/c.db",
		"IGNORED":             "x",
	})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	values, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"BOT_TOKEN":           "123:abc_DEF-xyz",
		"COMPLIMENTS_DB_PATH": "/tmp/c.db",
	}, values)
}

func TestLoadEnvFile_DoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path, err := FilePath()
	require.NoError(t, err)
	require.NoError(t, writeEnvFile(path, map[string]string{
		"BOT_TOKEN":           "from-file",
		"COMPLIMENTS_DB_PATH": "file.db",
	}))

	t.Setenv("BOT_TOKEN", "from-env")
	t.Setenv("COMPLIMENTS_DB_PATH", "")
	os.Unsetenv("COMPLIMENTS_DB_PATH")

	LoadEnvFile()
	assert.Equal(t, "from-env", os.Getenv("BOT_TOKEN"))
	assert.Equal(t, "file.db", os.Getenv("COMPLIMENTS_DB_PATH"))
}
