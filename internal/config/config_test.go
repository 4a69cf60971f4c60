// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for documind-tui.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// DEFAULTS TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.BaseURL == "" {
		t.Error("default server.base_url is empty")
	}
	if cfg.Chat.TypingCharsPerTick != 8 {
		t.Errorf("default typing_chars_per_tick = %d, want 8", cfg.Chat.TypingCharsPerTick)
	}
	if cfg.Chat.ThinkingDelayMs != 800 {
		t.Errorf("default thinking_delay_ms = %d, want 800", cfg.Chat.ThinkingDelayMs)
	}
	if cfg.Chat.MaxSuggestions != 3 {
		t.Errorf("default max_suggestions = %d, want 3", cfg.Chat.MaxSuggestions)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestSetDefaults_FillsZeroValues(t *testing.T) {
	cfg := &Config{}
	cfg.SetDefaults()

	if cfg.Server.BaseURL == "" {
		t.Error("SetDefaults left server.base_url empty")
	}
	if cfg.Chat.TypingCharsPerTick == 0 {
		t.Error("SetDefaults left typing_chars_per_tick zero")
	}
	if cfg.UI.Theme == "" {
		t.Error("SetDefaults left ui.theme empty")
	}
}

func TestSetDefaults_ClampsThinkingDelay(t *testing.T) {
	cfg := Default()
	cfg.Chat.ThinkingDelayMs = 30_000
	cfg.SetDefaults()

	if cfg.Chat.ThinkingDelayMs != MaxThinkingDelayMs {
		t.Errorf("thinking_delay_ms = %d, want clamped to %d",
			cfg.Chat.ThinkingDelayMs, MaxThinkingDelayMs)
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad url", func(c *Config) { c.Server.BaseURL = "://not-a-url" }, true},
		{"relative url", func(c *Config) { c.Server.BaseURL = "localhost" }, true},
		{"negative pace", func(c *Config) { c.Chat.TypingCharsPerTick = -1 }, true},
		{"negative delay", func(c *Config) { c.Chat.ThinkingDelayMs = -100 }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "solarized" }, true},
		{"light theme", func(c *Config) { c.UI.Theme = "light" }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

// =============================================================================
// LOAD / SAVE TESTS
// =============================================================================

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
version = "2.0.0"

[server]
base_url = "http://docs.example.com:5000"

[chat]
typing_chars_per_tick = 4
thinking_delay_ms = 500
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Server.BaseURL != "http://docs.example.com:5000" {
		t.Errorf("base_url = %q", cfg.Server.BaseURL)
	}
	if cfg.Chat.TypingCharsPerTick != 4 {
		t.Errorf("typing_chars_per_tick = %d, want 4", cfg.Chat.TypingCharsPerTick)
	}
	if cfg.Chat.ThinkingDelayMs != 500 {
		t.Errorf("thinking_delay_ms = %d, want 500", cfg.Chat.ThinkingDelayMs)
	}
	// Unset fields get defaults.
	if cfg.Chat.MaxSuggestions != 3 {
		t.Errorf("max_suggestions = %d, want default 3", cfg.Chat.MaxSuggestions)
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Server.BaseURL = "http://10.0.0.2:5000"
	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if loaded.Server.BaseURL != cfg.Server.BaseURL {
		t.Errorf("round-trip base_url = %q, want %q", loaded.Server.BaseURL, cfg.Server.BaseURL)
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDE TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("DOCUMIND_URL", "http://override:5000")
	t.Setenv("DOCUMIND_DOWNLOAD_DIR", "/tmp/docs")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.BaseURL != "http://override:5000" {
		t.Errorf("base_url = %q, want env override", cfg.Server.BaseURL)
	}
	if cfg.Download.Dir != "/tmp/docs" {
		t.Errorf("download.dir = %q, want env override", cfg.Download.Dir)
	}
}

// =============================================================================
// GLOBAL SINGLETON TESTS
// =============================================================================

func TestSetGlobal(t *testing.T) {
	ResetGlobalForTesting()
	defer ResetGlobalForTesting()

	cfg := Default()
	cfg.Server.BaseURL = "http://set-global:5000"
	SetGlobal(cfg)

	if got := Global(); got.Server.BaseURL != "http://set-global:5000" {
		t.Errorf("Global().Server.BaseURL = %q", got.Server.BaseURL)
	}
}
