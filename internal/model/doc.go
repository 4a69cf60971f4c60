// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation log.
//
// Message is one visible conversation turn; Transcript is the ordered,
// append-only log of turns the interface displays. ConversationEntry
// mirrors the answering service's authoritative history and is held
// separately from the Transcript: the two are never merged, and the
// interface only ever displays the Transcript.
//
// # Mutation Rules
//
// Once appended, a Message's Origin, Text, and CreatedAt never change;
// only its RenderState may transition from RenderAnimating to
// RenderStatic. Individual turns are never deleted; the only wholesale
// mutation is Transcript.ReplaceAll, used by the clear-conversation
// operation to reset the log to a single welcome turn.
package model
