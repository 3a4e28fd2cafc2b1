package main

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Default configuration values.
const (
	defaultBaseURL     = "https://adventofcode.com"
	defaultUA          = "aoc-fetch"
	defaultSessionFile = ".session.lock"
	defaultConfigFile  = "aoc-fetch.json"

	envPrefix = "AOC_FETCH_"
)

// appConfig holds the application configuration. It is resolved once at
// startup and handed to every component that needs it.
type appConfig struct {
	BaseURL     string        `json:"base_url"`
	UserAgent   string        `json:"user_agent"`
	SessionFile string        `json:"session_file"`
	Timeout     time.Duration `json:"timeout"`
}

func defaultConfig() appConfig {
	return appConfig{
		BaseURL:     defaultBaseURL,
		UserAgent:   defaultUA,
		SessionFile: defaultSessionFile,
	}
}

// loadConfig loads configuration from path and AOC_FETCH_* environment
// variables, in that order. A missing file is not an error.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultConfig()
	k := koanf.New(".")

	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
				return appConfig{}, fmt.Errorf("load config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return appConfig{}, fmt.Errorf("stat config: %w", err)
		}
	}

	envKey := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return appConfig{}, fmt.Errorf("load env: %w", err)
	}

	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	cfg.UserAgent = strings.TrimSpace(cfg.UserAgent)
	cfg.SessionFile = strings.TrimSpace(cfg.SessionFile)
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUA
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = defaultSessionFile
	}
	if err := cfg.validate(); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

func (c appConfig) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: scheme and host are required", c.BaseURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s: must not be negative", c.Timeout)
	}
	return nil
}
