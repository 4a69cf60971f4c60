// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for
// documind-tui.
//
// Configuration lives in ~/.documind/config.toml with built-in
// defaults for every field, so a missing file is not an error.
// Environment variables (DOCUMIND_URL, DOCUMIND_DOWNLOAD_DIR,
// DOCUMIND_THEME) override file values.
//
// # Sections
//
//   - [server]   answering-service endpoint
//   - [chat]     typing reveal pace, thinking delay, suggestion count
//   - [download] target directory for document downloads
//   - [ui]       theme and layout flags
//
// Global() returns the lazily loaded process-wide instance.
package config
