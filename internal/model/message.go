// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation log.
package model

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// =============================================================================
// ORIGIN TYPE
// =============================================================================

// Origin identifies the author of a conversation turn.
type Origin string

const (
	OriginUser   Origin = "user"
	OriginBot    Origin = "bot"
	OriginSystem Origin = "system"
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	return string(o)
}

// DisplayName returns a human-readable name for the origin.
func (o Origin) DisplayName() string {
	switch o {
	case OriginUser:
		return "You"
	case OriginBot:
		return "DocuMind"
	case OriginSystem:
		return "System"
	default:
		return string(o)
	}
}

// =============================================================================
// RENDER STATE
// =============================================================================

// RenderState tracks whether a turn is mid progressive-reveal.
type RenderState int

const (
	// RenderStatic means the full text is displayed.
	RenderStatic RenderState = iota
	// RenderAnimating means the turn is being revealed a few characters
	// at a time and only a prefix of Text is currently visible.
	RenderAnimating
)

// =============================================================================
// CLASSIFICATION
// =============================================================================

// Classification carries the quality verdict attached to a bot turn.
type Classification struct {
	// Confidence is the service-reported score in [0, 1].
	Confidence float64
	// QualityLevel is the coarse service-supplied reliability label.
	QualityLevel string
	// ResponseKind is the service-supplied response type tag.
	ResponseKind string
	// Answered is the local verdict: false suppresses citations.
	Answered bool
}

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single turn in the conversation log.
type Message struct {
	ID        string    `json:"id"`
	Origin    Origin    `json:"origin"`
	CreatedAt time.Time `json:"created_at"`
	Text      string    `json:"text"`

	// Citations holds the source tokens shown under an answered bot
	// turn, already deduplicated. Empty for unanswered bot turns and
	// for user/system turns.
	Citations []string `json:"citations,omitempty"`

	// RenderState is the only mutable field after append.
	RenderState RenderState `json:"-"`

	// Classification is set on bot turns only.
	Classification Classification `json:"-"`
}

// NewMessage creates a message with a generated ID and current timestamp.
func NewMessage(origin Origin, text string) *Message {
	return &Message{
		ID:        generateID(),
		Origin:    origin,
		CreatedAt: time.Now(),
		Text:      text,
	}
}

// NewUserMessage creates a user turn.
func NewUserMessage(text string) *Message {
	return NewMessage(OriginUser, text)
}

// NewSystemMessage creates a system turn (welcome, stopped, errors).
func NewSystemMessage(text string) *Message {
	return NewMessage(OriginSystem, text)
}

// NewBotMessage creates a bot turn in the animating state, carrying its
// classification and the citations that survived filtering.
func NewBotMessage(text string, citations []string, c Classification) *Message {
	m := NewMessage(OriginBot, text)
	m.Citations = citations
	m.Classification = c
	m.RenderState = RenderAnimating
	return m
}

// WelcomeText is the greeting shown on a fresh conversation.
const WelcomeText = "Merhaba! Ben DocuMind. Yüklü dokümanlar hakkında " +
	"soru sorabilirsiniz. Size nasıl yardımcı olabilirim?"

// WelcomeMessage returns the single system turn a fresh transcript holds.
func WelcomeMessage() *Message {
	return NewSystemMessage(WelcomeText)
}

// IsAnimating reports whether the turn is mid progressive-reveal.
func (m *Message) IsAnimating() bool {
	return m.RenderState == RenderAnimating
}

// generateID creates a unique message ID from random bytes.
func generateID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// Fallback to timestamp-based ID
		return "msg_" + time.Now().Format("20060102150405.000000000")
	}
	return "msg_" + hex.EncodeToString(b)
}
