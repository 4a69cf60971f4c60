// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation log.
package model

// =============================================================================
// TRANSCRIPT
// =============================================================================

// Transcript is the ordered, append-only log of conversation turns.
// Turns are kept in append order and never reordered or individually
// deleted; ReplaceAll is the single wholesale-reset escape hatch used
// by the clear-conversation operation.
//
// The transcript is owned by the update loop and is not safe for
// concurrent use.
type Transcript struct {
	turns []*Message
}

// NewTranscript creates a transcript holding a single welcome turn.
func NewTranscript() *Transcript {
	return &Transcript{turns: []*Message{WelcomeMessage()}}
}

// Append adds a turn to the end of the log and returns its ID.
func (t *Transcript) Append(m *Message) string {
	t.turns = append(t.turns, m)
	return m.ID
}

// All returns the turns in append order. The returned slice must be
// treated as read-only.
func (t *Transcript) All() []*Message {
	return t.turns
}

// Len returns the number of turns.
func (t *Transcript) Len() int {
	return len(t.turns)
}

// ReplaceAll discards every turn and installs the given ones. Only the
// clear-conversation path calls this.
func (t *Transcript) ReplaceAll(turns ...*Message) {
	t.turns = append([]*Message(nil), turns...)
}

// Get returns the turn with the given ID, or nil if it is not present
// (for example after a clear).
func (t *Transcript) Get(id string) *Message {
	for _, m := range t.turns {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Settle marks the turn with the given ID as fully revealed. Settling
// an absent ID is a no-op.
func (t *Transcript) Settle(id string) {
	if m := t.Get(id); m != nil {
		m.RenderState = RenderStatic
	}
}

// LastBot returns the most recent bot turn, or nil if there is none.
func (t *Transcript) LastBot() *Message {
	for i := len(t.turns) - 1; i >= 0; i-- {
		if t.turns[i].Origin == OriginBot {
			return t.turns[i]
		}
	}
	return nil
}

// BotCount returns the number of bot turns in the log.
func (t *Transcript) BotCount() int {
	n := 0
	for _, m := range t.turns {
		if m.Origin == OriginBot {
			n++
		}
	}
	return n
}

// CountByOrigin returns the number of turns with the given origin.
func (t *Transcript) CountByOrigin(o Origin) int {
	n := 0
	for _, m := range t.turns {
		if m.Origin == o {
			n++
		}
	}
	return n
}
