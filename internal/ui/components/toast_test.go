// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"
)

func TestToastManager_AddAndRemove(t *testing.T) {
	m := NewToastManager()

	id1 := m.AddError("indirme başarısız")
	id2 := m.AddStatus("kaydedildi")

	if id1 == id2 {
		t.Error("toast IDs are not unique")
	}
	if !m.HasToasts() {
		t.Error("HasToasts() = false after adding")
	}
	if got := len(m.Toasts()); got != 2 {
		t.Errorf("len(Toasts()) = %d, want 2", got)
	}

	m.Remove(id1)
	toasts := m.Toasts()
	if len(toasts) != 1 {
		t.Fatalf("len(Toasts()) = %d after remove, want 1", len(toasts))
	}
	if toasts[0].ID != id2 {
		t.Errorf("remaining toast ID = %d, want %d", toasts[0].ID, id2)
	}
}

func TestToastManager_NewestFirst(t *testing.T) {
	m := NewToastManager()
	m.AddStatus("first")
	m.AddStatus("second")

	toasts := m.Toasts()
	if toasts[0].Message != "second" {
		t.Errorf("toasts[0].Message = %q, want newest first", toasts[0].Message)
	}
}

func TestToastManager_MaxToasts(t *testing.T) {
	m := NewToastManager()
	for i := 0; i < 10; i++ {
		m.AddStatus("toast")
	}
	if got := len(m.Toasts()); got != 5 {
		t.Errorf("len(Toasts()) = %d, want capped at 5", got)
	}
}

func TestToastManager_TickDropsExpired(t *testing.T) {
	m := NewToastManager()
	m.AddStatus("stale")

	// Backdate past its duration.
	m.toasts[0].CreatedAt = time.Now().Add(-DefaultToastDuration - time.Second)

	remaining := m.Tick()
	if len(remaining) != 0 {
		t.Errorf("Tick() kept %d expired toasts, want 0", len(remaining))
	}
	if m.HasToasts() {
		t.Error("HasToasts() = true after expiry")
	}
}

func TestToastManager_Clear(t *testing.T) {
	m := NewToastManager()
	m.AddError("a")
	m.AddWarning("b")
	m.Clear()
	if m.HasToasts() {
		t.Error("HasToasts() = true after Clear")
	}
}

func TestRenderToast_ContainsMessage(t *testing.T) {
	toast := Toast{
		ID:        1,
		Message:   "sunucuya ulaşılamadı",
		Kind:      ToastKindError,
		CreatedAt: time.Now(),
		Duration:  ErrorToastDuration,
	}

	out := RenderToast(toast, 80)
	if !strings.Contains(out, "ulaşılamadı") {
		t.Errorf("rendered toast does not contain message: %q", out)
	}
}

func TestRenderToastStack_Empty(t *testing.T) {
	if out := RenderToastStack(nil, 80, 24); out != "" {
		t.Errorf("RenderToastStack(nil) = %q, want empty", out)
	}
}

func TestWrapToastText(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		maxWidth int
		wantMax  int
	}{
		{"short text unchanged", "hello", 20, 1},
		{"long text wraps", "one two three four five six seven eight", 12, 4},
		{"zero width unchanged", "hello world", 0, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := wrapToastText(tc.text, tc.maxWidth)
			lines := strings.Split(out, "\n")
			if len(lines) > tc.wantMax {
				t.Errorf("wrapped to %d lines, want <= %d: %q", len(lines), tc.wantMax, out)
			}
		})
	}
}
