package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc-fetch.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
	assert.Zero(t, cfg.Timeout)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `{
		"base_url": "http://localhost:9999/",
		"user_agent": "me@example.com",
		"session_file": "cookie.txt",
		"timeout": "30s"
	}`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.BaseURL)
	assert.Equal(t, "me@example.com", cfg.UserAgent)
	assert.Equal(t, "cookie.txt", cfg.SessionFile)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `{"base_url": "http://from-file", "timeout": "5s"}`)
	t.Setenv("AOC_FETCH_BASE_URL", "http://from-env")
	t.Setenv("AOC_FETCH_TIMEOUT", "1m")

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://from-env", cfg.BaseURL)
	assert.Equal(t, time.Minute, cfg.Timeout)
	assert.Equal(t, defaultSessionFile, cfg.SessionFile)
}

func TestLoadConfig_BlankValuesFallBack(t *testing.T) {
	path := writeConfig(t, `{"base_url": " ", "user_agent": "", "session_file": ""}`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{`},
		{name: "relative base url", body: `{"base_url": "adventofcode.com"}`},
		{name: "negative timeout", body: `{"timeout": "-1s"}`},
		{name: "bad timeout", body: `{"timeout": "soon"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}
