// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the conversation log.
package model

import (
	"testing"
	"time"
)

// =============================================================================
// MESSAGE TESTS
// =============================================================================

func TestNewMessage_GeneratesUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		m := NewUserMessage("hello")
		if m.ID == "" {
			t.Fatal("message ID is empty")
		}
		if seen[m.ID] {
			t.Fatalf("duplicate message ID: %s", m.ID)
		}
		seen[m.ID] = true
	}
}

func TestNewMessage_SetsTimestamp(t *testing.T) {
	before := time.Now()
	m := NewUserMessage("hello")
	after := time.Now()

	if m.CreatedAt.Before(before) || m.CreatedAt.After(after) {
		t.Errorf("CreatedAt %v outside [%v, %v]", m.CreatedAt, before, after)
	}
}

func TestNewBotMessage_StartsAnimating(t *testing.T) {
	m := NewBotMessage("answer", []string{"a.pdf"}, Classification{Answered: true})
	if !m.IsAnimating() {
		t.Error("new bot message should start in RenderAnimating")
	}
	if m.Origin != OriginBot {
		t.Errorf("Origin = %v, want %v", m.Origin, OriginBot)
	}
}

func TestOrigin_DisplayName(t *testing.T) {
	testCases := []struct {
		origin   Origin
		expected string
	}{
		{OriginUser, "You"},
		{OriginBot, "DocuMind"},
		{OriginSystem, "System"},
		{Origin("other"), "other"},
	}

	for _, tc := range testCases {
		if got := tc.origin.DisplayName(); got != tc.expected {
			t.Errorf("DisplayName(%v) = %q, want %q", tc.origin, got, tc.expected)
		}
	}
}

// =============================================================================
// TRANSCRIPT TESTS
// =============================================================================

func TestNewTranscript_SingleWelcomeTurn(t *testing.T) {
	tr := NewTranscript()
	if tr.Len() != 1 {
		t.Fatalf("fresh transcript has %d turns, want 1", tr.Len())
	}
	if tr.All()[0].Origin != OriginSystem {
		t.Errorf("welcome turn origin = %v, want %v", tr.All()[0].Origin, OriginSystem)
	}
	if tr.All()[0].Text != WelcomeText {
		t.Errorf("welcome turn text = %q", tr.All()[0].Text)
	}
}

func TestTranscript_AppendPreservesOrder(t *testing.T) {
	tr := NewTranscript()
	texts := []string{"first", "second", "third", "fourth"}
	for _, text := range texts {
		tr.Append(NewUserMessage(text))
	}

	turns := tr.All()
	if len(turns) != len(texts)+1 {
		t.Fatalf("Len = %d, want %d", len(turns), len(texts)+1)
	}
	for i, text := range texts {
		if turns[i+1].Text != text {
			t.Errorf("turn %d text = %q, want %q", i+1, turns[i+1].Text, text)
		}
	}
}

func TestTranscript_BotCountMatchesAppends(t *testing.T) {
	tr := NewTranscript()
	const n = 5
	for i := 0; i < n; i++ {
		tr.Append(NewUserMessage("q"))
		tr.Append(NewBotMessage("a", nil, Classification{Answered: true}))
	}

	if got := tr.BotCount(); got != n {
		t.Errorf("BotCount = %d, want %d", got, n)
	}
	// Arrival order preserved among bot turns.
	var prev time.Time
	for _, m := range tr.All() {
		if m.Origin != OriginBot {
			continue
		}
		if m.CreatedAt.Before(prev) {
			t.Error("bot turns out of arrival order")
		}
		prev = m.CreatedAt
	}
}

func TestTranscript_ReplaceAll(t *testing.T) {
	tr := NewTranscript()
	tr.Append(NewUserMessage("q"))
	tr.Append(NewBotMessage("a", nil, Classification{}))

	tr.ReplaceAll(WelcomeMessage())

	if tr.Len() != 1 {
		t.Fatalf("after ReplaceAll Len = %d, want 1", tr.Len())
	}
	if tr.All()[0].Origin != OriginSystem {
		t.Error("remaining turn should be the system welcome turn")
	}
}

func TestTranscript_Settle(t *testing.T) {
	tr := NewTranscript()
	id := tr.Append(NewBotMessage("answer", nil, Classification{Answered: true}))

	if !tr.Get(id).IsAnimating() {
		t.Fatal("bot turn should be animating before Settle")
	}
	tr.Settle(id)
	if tr.Get(id).IsAnimating() {
		t.Error("bot turn still animating after Settle")
	}

	// Settling an unknown ID must not panic.
	tr.Settle("msg_missing")
}

func TestTranscript_Get(t *testing.T) {
	tr := NewTranscript()
	id := tr.Append(NewUserMessage("hello"))

	if m := tr.Get(id); m == nil || m.Text != "hello" {
		t.Errorf("Get(%q) = %v", id, m)
	}
	if m := tr.Get("msg_absent"); m != nil {
		t.Errorf("Get on absent ID = %v, want nil", m)
	}
}

func TestTranscript_LastBot(t *testing.T) {
	tr := NewTranscript()
	if tr.LastBot() != nil {
		t.Error("LastBot on fresh transcript should be nil")
	}

	tr.Append(NewBotMessage("first", nil, Classification{}))
	tr.Append(NewUserMessage("q"))
	tr.Append(NewBotMessage("second", nil, Classification{}))

	if got := tr.LastBot(); got == nil || got.Text != "second" {
		t.Errorf("LastBot = %v, want the most recent bot turn", got)
	}
}
