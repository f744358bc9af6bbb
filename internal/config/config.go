package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Defaults for the application configuration file
const (
	DefaultAppID            = "com.ytget.soundboard"
	DefaultLogLevel         = "info"
	DefaultSampleRate       = 44100
	DefaultFadeOut          = 300 * time.Millisecond
	DefaultTrimPreviewFade  = 100 * time.Millisecond
	DefaultOverlayWidth     = 320
	DefaultOverlayHeight    = 480
	DefaultMainWindowWidth  = 900
	DefaultMainWindowHeight = 700
	configDirName           = "soundboard"
	configFileName          = "config.toml"
	minSampleRate           = 8000
	maxSampleRate           = 192000
	envLogLevel             = "SOUNDBOARD_LOG_LEVEL"
	envLanguage             = "SOUNDBOARD_LANGUAGE"
	envSampleRate           = "SOUNDBOARD_SAMPLE_RATE"
	envConfigFile           = "SOUNDBOARD_CONFIG"
)

// Config is the static application configuration. User state (tracks,
// settings, reactions) lives in the Store instead.
type Config struct {
	AppID           string
	LogLevel        string
	Language        string // empty means use the stored preference
	SampleRate      int
	FadeOut         time.Duration
	TrimPreviewFade time.Duration
	OverlayWidth    float32
	OverlayHeight   float32
	WindowWidth     float32
	WindowHeight    float32
}

type fileConfig struct {
	AppID             string  `toml:"app_id"`
	LogLevel          string  `toml:"log_level"`
	Language          string  `toml:"language"`
	SampleRate        int     `toml:"sample_rate"`
	FadeOutMs         int     `toml:"fade_out_ms"`
	TrimPreviewFadeMs int     `toml:"trim_preview_fade_ms"`
	OverlayWidth      float32 `toml:"overlay_width"`
	OverlayHeight     float32 `toml:"overlay_height"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		AppID:           DefaultAppID,
		LogLevel:        DefaultLogLevel,
		SampleRate:      DefaultSampleRate,
		FadeOut:         DefaultFadeOut,
		TrimPreviewFade: DefaultTrimPreviewFade,
		OverlayWidth:    DefaultOverlayWidth,
		OverlayHeight:   DefaultOverlayHeight,
		WindowWidth:     DefaultMainWindowWidth,
		WindowHeight:    DefaultMainWindowHeight,
	}
}

// Load reads the configuration file from the user config directory, if any,
// and applies environment overrides.
func Load() (*Config, error) {
	path := configFilePath()
	if path == "" {
		cfg := Default()
		applyEnvOverrides(cfg)
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads the configuration from path and applies environment overrides.
// A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else {
		fc.apply(cfg)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) {
	if fc.AppID != "" {
		cfg.AppID = fc.AppID
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	cfg.Language = fc.Language
	if fc.SampleRate > 0 {
		cfg.SampleRate = clampSampleRate(fc.SampleRate)
	}
	if fc.FadeOutMs > 0 {
		cfg.FadeOut = time.Duration(fc.FadeOutMs) * time.Millisecond
	}
	if fc.TrimPreviewFadeMs > 0 {
		cfg.TrimPreviewFade = time.Duration(fc.TrimPreviewFadeMs) * time.Millisecond
	}
	if fc.OverlayWidth > 0 {
		cfg.OverlayWidth = fc.OverlayWidth
	}
	if fc.OverlayHeight > 0 {
		cfg.OverlayHeight = fc.OverlayHeight
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(envLanguage); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv(envSampleRate); v != "" {
		if rate, err := strconv.Atoi(v); err == nil && rate > 0 {
			cfg.SampleRate = clampSampleRate(rate)
		}
	}
}

func clampSampleRate(rate int) int {
	if rate < minSampleRate {
		return minSampleRate
	}
	if rate > maxSampleRate {
		return maxSampleRate
	}
	return rate
}

func configFilePath() string {
	if v := os.Getenv(envConfigFile); v != "" {
		return v
	}

	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, configDirName)
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", configDirName)
	} else {
		return ""
	}

	path := filepath.Join(configDir, configFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
