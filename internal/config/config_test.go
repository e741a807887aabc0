package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jrc03c/matching-game-demo/internal/deck"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_LEVEL", "REDIS_ADDR", "SYMBOLS", "MISMATCH_DELAY", "SUMMARY_DELAY", "TICK_INTERVAL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Second, cfg.MismatchDelay)
	assert.Equal(t, 400*time.Millisecond, cfg.SummaryDelay)
	assert.Equal(t, deck.DefaultAlphabet, cfg.Alphabet())

	_, enabled := cfg.ActionLogOptions()
	assert.False(t, enabled)

	s := cfg.GameSettings(nil)
	assert.Equal(t, time.Second, s.MismatchDelay)
	assert.Len(t, s.Alphabet, 8)
	assert.Nil(t, s.Actions, "a nil action log leaves the game without a publisher")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SYMBOLS", "a, b,c")
	t.Setenv("MISMATCH_DELAY", "250ms")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("ACTION_QUEUE_NAME", "q")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, []deck.Symbol{"a", "b", "c"}, cfg.Alphabet())
	assert.Equal(t, 250*time.Millisecond, cfg.MismatchDelay)

	opts, enabled := cfg.ActionLogOptions()
	require.True(t, enabled)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "q", opts.Queue)

	assert.Equal(t, logrus.DebugLevel, cfg.NewLogger().GetLevel())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SYMBOLS", "a,a")
	_, err := Load()
	assert.ErrorIs(t, err, deck.ErrDuplicateSymbol)

	t.Setenv("SYMBOLS", "")
	t.Setenv("LOG_LEVEL", "chatty")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("TICK_INTERVAL", "0s")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadThemeWritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concentration", "theme.toml")

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), theme)
	_, err = os.Stat(path)
	require.NoError(t, err, "default theme should be written on first load")

	theme.CardBackColor = "magenta"
	theme.ShowSettings = true
	require.NoError(t, SaveTheme(path, theme))

	again, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "magenta", again.CardBackColor)
	assert.True(t, again.ShowSettings)
}

func TestLoadThemeKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(`card_back_color = "red"`+"\n"), 0644))

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "red", theme.CardBackColor)
	assert.Equal(t, "green", theme.MatchedColor)
}

func TestGetThemeFilePathHonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/concentration/theme.toml", GetThemeFilePath())
}
