// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for documind-tui:
// the header, status bar, welcome screen, suggestion chips, and the
// non-blocking toast notification system.
//
// Components are pure rendering units: they hold display state and
// produce strings. All mutation flows through the chat model's update
// loop.
package components
