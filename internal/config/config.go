// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for documind-tui.
//
// Configuration is TOML with sensible defaults and environment variable
// overrides. File location:
//   - ~/.documind/config.toml
//   - Built-in defaults when absent
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete documind-tui configuration.
type Config struct {
	Version string `toml:"version"`

	// Server configuration (the DocuMind answering service)
	Server ServerConfig `toml:"server"`

	// Chat behavior configuration
	Chat ChatConfig `toml:"chat"`

	// Download configuration
	Download DownloadConfig `toml:"download"`

	// UI configuration
	UI UIConfig `toml:"ui"`
}

// ServerConfig contains the answering-service endpoint configuration.
type ServerConfig struct {
	// BaseURL is the root URL of the DocuMind service
	BaseURL string `toml:"base_url"`
}

// ChatConfig contains chat behavior settings.
type ChatConfig struct {
	// TypingCharsPerTick is how many characters each reveal tick adds.
	TypingCharsPerTick int `toml:"typing_chars_per_tick"`
	// TypingTickMs is the reveal tick interval in milliseconds.
	TypingTickMs int `toml:"typing_tick_ms"`
	// ThinkingDelayMs is the fixed pre-display delay after a response
	// arrives, simulating "thinking". Capped at MaxThinkingDelayMs.
	ThinkingDelayMs int `toml:"thinking_delay_ms"`
	// MaxSuggestions is how many suggestion chips to offer.
	MaxSuggestions int `toml:"max_suggestions"`
}

// DownloadConfig contains document download settings.
type DownloadConfig struct {
	// Dir is the directory downloaded documents are written to.
	// Empty means ~/Downloads.
	Dir string `toml:"dir"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// Theme is the UI theme: "dark", "light", "auto"
	Theme string `toml:"theme"`
	// ShowTimestamps displays per-turn timestamps in the transcript
	ShowTimestamps bool `toml:"show_timestamps"`
	// CompactMode uses a more compact layout
	CompactMode bool `toml:"compact_mode"`
}

// MaxThinkingDelayMs caps the configured thinking delay. The delay is a
// display affordance and must never hold a response hostage.
const MaxThinkingDelayMs = 2000

// =============================================================================
// DEFAULT CONFIGURATION
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Version: "1.0.0",

		Server: ServerConfig{
			BaseURL: "http://127.0.0.1:5000",
		},

		Chat: ChatConfig{
			TypingCharsPerTick: 8,
			TypingTickMs:       40,
			ThinkingDelayMs:    800,
			MaxSuggestions:     3,
		},

		Download: DownloadConfig{
			Dir: "",
		},

		UI: UIConfig{
			Theme:          "dark",
			ShowTimestamps: false,
			CompactMode:    false,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the documind configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".documind"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// DownloadDir resolves the effective download directory: the configured
// one, or ~/Downloads, or the working directory as a last resort.
func (c *Config) DownloadDir() string {
	if c.Download.Dir != "" {
		return c.Download.Dir
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, "Downloads")
	}
	return "."
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file, falling back to
// defaults when the file is absent. Environment overrides apply last.
func Load() (*Config, error) {
	cfg := Default()
	var loadErr error

	path, err := ConfigPath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if err := LoadTOML(cfg, path); err != nil {
				loadErr = fmt.Errorf("failed to load TOML config: %w", err)
			}
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, loadErr
}

// LoadTOML loads configuration from a TOML file.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# documind-tui configuration file")
	fmt.Fprintln(file, "# Generated by documind-tui - edit with care")
	fmt.Fprintln(file, "")

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

// =============================================================================
// VALIDATION AND DEFAULTS
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if c.Server.BaseURL != "" {
		u, err := url.Parse(c.Server.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ValidationError{
				Field:   "server.base_url",
				Message: fmt.Sprintf("invalid URL %q", c.Server.BaseURL),
			}
		}
	}

	if c.Chat.TypingCharsPerTick < 0 {
		return ValidationError{
			Field:   "chat.typing_chars_per_tick",
			Message: "must be non-negative",
		}
	}
	if c.Chat.ThinkingDelayMs < 0 {
		return ValidationError{
			Field:   "chat.thinking_delay_ms",
			Message: "must be non-negative",
		}
	}

	validThemes := map[string]bool{"dark": true, "light": true, "auto": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		return ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: dark, light, auto", c.UI.Theme),
		}
	}

	return nil
}

// SetDefaults fills missing or zero-value fields and clamps the
// thinking delay to its cap.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = defaults.Server.BaseURL
	}
	if c.Chat.TypingCharsPerTick == 0 {
		c.Chat.TypingCharsPerTick = defaults.Chat.TypingCharsPerTick
	}
	if c.Chat.TypingTickMs == 0 {
		c.Chat.TypingTickMs = defaults.Chat.TypingTickMs
	}
	if c.Chat.ThinkingDelayMs == 0 {
		c.Chat.ThinkingDelayMs = defaults.Chat.ThinkingDelayMs
	}
	if c.Chat.ThinkingDelayMs > MaxThinkingDelayMs {
		c.Chat.ThinkingDelayMs = MaxThinkingDelayMs
	}
	if c.Chat.MaxSuggestions == 0 {
		c.Chat.MaxSuggestions = defaults.Chat.MaxSuggestions
	}
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported environment variables:
//   - DOCUMIND_URL: overrides server.base_url
//   - DOCUMIND_DOWNLOAD_DIR: overrides download.dir
//   - DOCUMIND_THEME: overrides ui.theme
func (c *Config) ApplyEnvOverrides() {
	if u := os.Getenv("DOCUMIND_URL"); u != "" {
		c.Server.BaseURL = u
	}
	if dir := os.Getenv("DOCUMIND_DOWNLOAD_DIR"); dir != "" {
		c.Download.Dir = dir
	}
	if theme := os.Getenv("DOCUMIND_THEME"); theme != "" {
		c.UI.Theme = theme
	}
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			// Log but don't fail - use defaults
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
			cfg = Default()
		}
		globalConfig = cfg
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state between tests.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
