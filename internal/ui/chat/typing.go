// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view and its request lifecycle.
//
// This file implements the progressive reveal of a bot turn: a fixed
// number of characters becomes visible on each tick until the full text
// is shown. The reveal runs once per turn, always terminates, and is
// never restarted; any fault settles the turn to its full text.
package chat

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/documind-tui/internal/model"
	"github.com/morganforge/documind-tui/internal/util"
)

// =============================================================================
// TYPING STATE
// =============================================================================

// typingState tracks the reveal of the single animating bot turn.
type typingState struct {
	msgID   string
	visible int
	total   int
}

// active reports whether a reveal is in progress.
func (t *typingState) active() bool {
	return t.msgID != ""
}

// reset clears the reveal state.
func (t *typingState) reset() {
	*t = typingState{}
}

// pace returns the configured characters-per-tick, guarding against a
// non-positive value that would make the reveal run forever.
func (m *Model) pace() int {
	p := m.cfg.Chat.TypingCharsPerTick
	if p <= 0 {
		p = 8
	}
	return p
}

// tickInterval returns the configured reveal tick interval.
func (m *Model) tickInterval() time.Duration {
	ms := m.cfg.Chat.TypingTickMs
	if ms <= 0 {
		ms = 40
	}
	return time.Duration(ms) * time.Millisecond
}

// =============================================================================
// REVEAL LIFECYCLE
// =============================================================================

// startTyping begins the reveal of a freshly appended bot turn and
// returns the first tick. A turn with empty text settles immediately.
func (m *Model) startTyping(msg *model.Message) tea.Cmd {
	total := util.RuneLen(msg.Text)
	if total == 0 {
		m.settleTyping(msg.ID)
		return nil
	}

	m.typing = typingState{msgID: msg.ID, visible: 0, total: total}
	return typingTickCmd(m.gen, msg.ID, m.tickInterval())
}

// advanceTyping handles one reveal tick. Returns the next tick, or nil
// once the turn has settled.
func (m *Model) advanceTyping(msg typingTickMsg) tea.Cmd {
	// Stale generation or a reveal that already settled.
	if msg.gen != m.gen || !m.typing.active() || m.typing.msgID != msg.msgID {
		return nil
	}

	// The turn can vanish mid-reveal (conversation cleared). Degrade by
	// abandoning the reveal rather than ticking forever.
	if m.transcript.Get(msg.msgID) == nil {
		m.typing.reset()
		m.finishDelivery()
		return nil
	}

	m.typing.visible += m.pace()
	if m.typing.visible >= m.typing.total {
		m.settleTyping(msg.msgID)
		return nil
	}

	m.refreshViewport()
	return typingTickCmd(m.gen, msg.msgID, m.tickInterval())
}

// settleTyping marks the turn fully revealed and returns to Idle.
func (m *Model) settleTyping(msgID string) {
	m.transcript.Settle(msgID)
	m.typing.reset()
	m.finishDelivery()
	m.refreshViewport()
}

// finishDelivery returns the lifecycle to Idle after a reveal ends.
func (m *Model) finishDelivery() {
	if m.state == StateDelivering {
		m.state = StateIdle
	}
	m.statusBar.SetPhase(phaseFor(m.state))
}

// visibleText returns the currently displayed text of a turn: the
// revealed prefix while animating, the full text otherwise.
func (m *Model) visibleText(msg *model.Message) string {
	if msg.IsAnimating() && m.typing.active() && m.typing.msgID == msg.ID {
		return util.PrefixRunes(msg.Text, m.typing.visible)
	}
	return msg.Text
}
