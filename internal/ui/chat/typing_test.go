// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"testing"

	"github.com/morganforge/documind-tui/internal/docmind"
	"github.com/morganforge/documind-tui/internal/model"
	"github.com/morganforge/documind-tui/internal/util"
)

// tickUntilSettled drives the reveal to completion, bounding the loop
// so a non-terminating reveal fails instead of hanging.
func tickUntilSettled(t *testing.T, m *Model, maxTicks int) int {
	t.Helper()
	ticks := 0
	for m.typing.active() {
		if ticks > maxTicks {
			t.Fatalf("reveal did not terminate within %d ticks", maxTicks)
		}
		m.Update(typingTickMsg{gen: m.gen, msgID: m.typing.msgID})
		ticks++
	}
	return ticks
}

func TestTypingRevealTerminates(t *testing.T) {
	m := newTestModel()
	m.submit("soru")

	resp := answeredResponse()
	resp.Response = strings.Repeat("a", 40)
	deliver(m, resp, nil)

	bot := m.transcript.LastBot()
	if !bot.IsAnimating() {
		t.Fatal("bot turn not animating after delivery")
	}

	// 40 runes at 8 per tick: exactly 5 ticks.
	if ticks := tickUntilSettled(t, m, 100); ticks != 5 {
		t.Errorf("reveal took %d ticks, want 5", ticks)
	}
	if bot.IsAnimating() {
		t.Error("bot turn still animating after reveal")
	}
	if m.state != StateIdle {
		t.Errorf("state = %v, want StateIdle after reveal", m.state)
	}
}

func TestTypingRevealsPrefixInOrder(t *testing.T) {
	m := newTestModel()
	m.submit("soru")

	resp := answeredResponse()
	resp.Response = "Yıllık izin süresi on dört gündür ve sözleşmede düzenlenir."
	deliver(m, resp, nil)

	bot := m.transcript.LastBot()
	full := []rune(bot.Text)

	prev := 0
	for m.typing.active() {
		visible := []rune(m.visibleText(bot))
		if len(visible) < prev {
			t.Fatal("revealed prefix shrank between ticks")
		}
		if string(visible) != string(full[:len(visible)]) {
			t.Fatalf("visible text %q is not a prefix of the answer", string(visible))
		}
		prev = len(visible)
		m.Update(typingTickMsg{gen: m.gen, msgID: m.typing.msgID})
	}

	if got := m.visibleText(bot); got != bot.Text {
		t.Errorf("settled text = %q, want full answer", got)
	}
}

func TestTypingNotRestartable(t *testing.T) {
	m := newTestModel()
	m.submit("soru")
	deliver(m, answeredResponse(), nil)

	msgID := m.typing.msgID
	gen := m.gen
	tickUntilSettled(t, m, 100)

	// Further ticks for the settled turn are no-ops.
	m.Update(typingTickMsg{gen: gen, msgID: msgID})
	if m.typing.active() {
		t.Error("reveal restarted by a late tick")
	}
	if m.transcript.LastBot().IsAnimating() {
		t.Error("settled turn went back to animating")
	}
}

func TestTypingStaleGenerationIgnored(t *testing.T) {
	m := newTestModel()
	m.submit("soru")
	deliver(m, answeredResponse(), nil)

	staleGen := m.gen
	msgID := m.typing.msgID
	visibleBefore := m.typing.visible

	m.Update(typingTickMsg{gen: staleGen - 1, msgID: msgID})
	if m.typing.visible != visibleBefore {
		t.Error("stale-generation tick advanced the reveal")
	}
}

func TestTypingFaultDegrades(t *testing.T) {
	m := newTestModel()
	m.submit("soru")
	deliver(m, answeredResponse(), nil)

	gen := m.gen
	msgID := m.typing.msgID

	// The turn vanishes mid-reveal (wholesale transcript replacement).
	m.transcript.ReplaceAll(model.WelcomeMessage())
	m.Update(typingTickMsg{gen: gen, msgID: msgID})

	if m.typing.active() {
		t.Error("reveal still active after its turn vanished")
	}
	if m.state != StateIdle {
		t.Errorf("state = %v, want StateIdle after degraded reveal", m.state)
	}
}

func TestEmptyAnswerSettlesImmediately(t *testing.T) {
	m := newTestModel()
	m.submit("soru")

	resp := &docmind.AskResponse{
		Response:     "",
		Confidence:   0.9,
		QualityLevel: "Yüksek",
	}
	deliver(m, resp, nil)

	if m.typing.active() {
		t.Error("empty answer left a reveal running")
	}
	if m.state != StateIdle {
		t.Errorf("state = %v, want StateIdle", m.state)
	}
}

func TestPrefixRunesHandlesTurkishText(t *testing.T) {
	s := "Yıllık izin süresi"
	if got := util.PrefixRunes(s, 6); got != "Yıllık" {
		t.Errorf("PrefixRunes(%q, 6) = %q, want %q", s, got, "Yıllık")
	}
}
