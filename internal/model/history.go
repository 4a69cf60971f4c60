// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation log.
package model

// =============================================================================
// SERVER-AUTHORITATIVE HISTORY
// =============================================================================

// ConversationEntry is one question/answer exchange as mirrored from
// the answering service. The service owns this sequence: the local copy
// is replaced wholesale on every successful answer and emptied on
// clear, never merged or diffed against the Transcript. The two may
// momentarily disagree (for example after a cancelled request); the
// interface only ever displays the Transcript.
type ConversationEntry struct {
	UserText  string `json:"user"`
	BotText   string `json:"assistant"`
	Timestamp string `json:"timestamp"`
}
