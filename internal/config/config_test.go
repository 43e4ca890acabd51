package config

import (
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable config reads, restoring them after the test.
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"DEVELOPMENT",
		"BOMBCLEARER_NO_CLEAR",
		"BOMBCLEARER_LOG_FILE",
		"BOMBCLEARER_LOG_LEVEL",
		"BOMBCLEARER_LOG_MAX_SIZE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestNewDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.False(t, cfg.Development)
	assert.True(t, cfg.ClearScreen)
	assert.Equal(t, Log{
		File:    "bombclearer.log",
		Level:   logrus.InfoLevel,
		MaxSize: 10,
	}, cfg.Log)
}

func TestNewFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVELOPMENT", "1")
	t.Setenv("BOMBCLEARER_NO_CLEAR", "1")
	t.Setenv("BOMBCLEARER_LOG_FILE", "/tmp/mines.log")
	t.Setenv("BOMBCLEARER_LOG_MAX_SIZE", "3")

	cfg, err := New()
	require.NoError(t, err)

	assert.True(t, cfg.Development)
	assert.False(t, cfg.ClearScreen)
	assert.Equal(t, "/tmp/mines.log", cfg.Log.File)
	assert.Equal(t, logrus.DebugLevel, cfg.Log.Level)
	assert.Equal(t, 3, cfg.Log.MaxSize)
	assert.Equal(t, "debug", cfg.Fields()["log_level"])
}

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())

	t.Setenv("DEVELOPMENT", "yes")
	assert.True(t, Development())
}

func TestLogLevelOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEVELOPMENT", "1")
	t.Setenv("BOMBCLEARER_LOG_LEVEL", "warn")

	cfg, err := NewLog(Development())
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, cfg.Level)
}

func TestNewInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"level", "BOMBCLEARER_LOG_LEVEL", "loud"},
		{"size not a number", "BOMBCLEARER_LOG_MAX_SIZE", "big"},
		{"size not positive", "BOMBCLEARER_LOG_MAX_SIZE", "0"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(test.key, test.value)
			_, err := New()
			assert.Error(t, err)
		})
	}
}
