// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view and its request lifecycle.
//
// This file defines the Bubble Tea messages the model consumes.
// Messages tied to a single request carry the generation they belong
// to; the update loop drops any message whose generation is stale.
package chat

import (
	"github.com/morganforge/documind-tui/internal/docmind"
)

// =============================================================================
// REQUEST LIFECYCLE MESSAGES (generation-tagged)
// =============================================================================

// answerMsg carries the outcome of an answer request.
type answerMsg struct {
	gen  int
	resp *docmind.AskResponse
	err  error
}

// thinkingDoneMsg fires when the fixed pre-display delay has elapsed.
// The answer is never shown before this, even if it arrived earlier.
type thinkingDoneMsg struct {
	gen int
}

// typingTickMsg advances the progressive reveal of a bot turn.
type typingTickMsg struct {
	gen   int
	msgID string
}

// =============================================================================
// BACKGROUND MESSAGES (not generation-tagged)
// =============================================================================

// registerMsg carries the outcome of the best-effort session registration.
type registerMsg struct {
	err error
}

// clearSyncMsg carries the outcome of the best-effort server-side clear.
type clearSyncMsg struct {
	err error
}

// statsMsg carries the statistics feed used for suggestion chips.
type statsMsg struct {
	stats *docmind.StatsResponse
	err   error
}

// listingMsg carries the document-directory listing.
type listingMsg struct {
	docs []docmind.DocumentInfo
	err  error
}

// healthMsg carries the startup reachability check result.
type healthMsg struct {
	online bool
}

// downloadMsg carries the outcome of a document download.
type downloadMsg struct {
	name string
	dest string
	err  error
}
