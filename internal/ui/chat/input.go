// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view and its request lifecycle.
//
// This file implements the submit pipeline, cancellation, the
// clear-conversation reset, and the slash commands.
package chat

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/documind-tui/internal/model"
	"github.com/morganforge/documind-tui/internal/sources"
	"github.com/morganforge/documind-tui/internal/ui/components"
)

// =============================================================================
// SUBMIT PIPELINE
// =============================================================================

// submit runs the full submit pipeline for the input text. The user
// turn is appended synchronously before the request starts, so it is
// visible even if the request later fails or is cancelled.
func (m *Model) submit(text string) tea.Cmd {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if strings.HasPrefix(text, "/") {
		m.input.Reset()
		return m.runCommand(text)
	}

	// Single in-flight request: reject, never queue.
	if m.state != StateIdle {
		m.toasts.AddStatus("Önce mevcut yanıtın tamamlanmasını bekleyin.")
		return components.ToastTickCmd()
	}

	m.transcript.Append(model.NewUserMessage(text))
	m.input.Reset()
	m.suggestions.SetQuestions(nil)

	m.state = StateSending
	m.gen++
	m.pendingResp = nil
	m.pendingErr = nil
	m.thinkingDone = false
	m.statusBar.SetPhase(phaseFor(m.state))
	m.refreshViewport()

	ctx, cancelFn := context.WithCancel(context.Background())
	m.setCancelFunc(cancelFn)

	return tea.Batch(
		m.spinner.Tick,
		askCmd(ctx, m.client, m.gen, text, m.sessionID),
		thinkingCmd(m.gen, m.thinkingDelay()),
	)
}

// =============================================================================
// CANCELLATION
// =============================================================================

// stopGeneration cancels the in-flight request. Only Sending can be
// cancelled: once delivery has started the reveal runs to completion.
// Exactly one "stopped" system turn is appended; the late result of the
// cancelled request is discarded by the generation bump.
func (m *Model) stopGeneration() {
	if m.state != StateSending {
		return
	}

	m.gen++
	m.clearCancelFunc()
	m.pendingResp = nil
	m.pendingErr = nil
	m.thinkingDone = false

	m.transcript.Append(model.NewSystemMessage(StoppedText))
	m.state = StateIdle
	m.statusBar.SetPhase(phaseFor(m.state))
	m.refreshViewport()
}

// =============================================================================
// CLEAR CONVERSATION
// =============================================================================

// clearConversation resets the conversation optimistically: the local
// transcript collapses to the single welcome turn and the history is
// dropped before the server is told. A failed server-side clear is
// reported but never rolls the local state back.
func (m *Model) clearConversation() tea.Cmd {
	m.gen++
	m.clearCancelFunc()
	m.pendingResp = nil
	m.pendingErr = nil
	m.thinkingDone = false
	m.typing.reset()

	m.transcript.ReplaceAll(model.WelcomeMessage())
	m.history = nil
	m.state = StateIdle
	m.statusBar.SetPhase(phaseFor(m.state))
	m.refreshViewport()

	return clearSyncCmd(m.client, m.sessionID)
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// runCommand dispatches a slash command.
func (m *Model) runCommand(text string) tea.Cmd {
	parts := strings.Fields(text)
	switch parts[0] {
	case "/clear":
		return m.clearConversation()

	case "/download":
		if len(parts) < 2 {
			m.toasts.AddWarning("Kullanım: /download <kaynak numarası>")
			return components.ToastTickCmd()
		}
		n, err := strconv.Atoi(parts[1])
		if err != nil {
			m.toasts.AddWarning("Kullanım: /download <kaynak numarası>")
			return components.ToastTickCmd()
		}
		return m.downloadCitation(n)

	case "/help":
		m.toasts.AddStatus("/clear sohbeti sıfırlar, /download <n> kaynağı indirir")
		return components.ToastTickCmd()

	default:
		m.toasts.AddWarning("Bilinmeyen komut: " + parts[0])
		return components.ToastTickCmd()
	}
}

// downloadCitation starts the download of the n-th citation (1-based)
// of the most recent bot turn. The download route is decided by the
// same rule that produced the displayed name.
func (m *Model) downloadCitation(n int) tea.Cmd {
	last := m.transcript.LastBot()
	if last == nil || len(last.Citations) == 0 {
		m.toasts.AddWarning("İndirilecek kaynak yok.")
		return components.ToastTickCmd()
	}
	if n < 1 || n > len(last.Citations) {
		m.toasts.AddWarning("Kaynak numarası 1-" + strconv.Itoa(len(last.Citations)) + " arasında olmalı.")
		return components.ToastTickCmd()
	}

	token := last.Citations[n-1]
	return downloadCmd(
		m.client,
		sources.DownloadPath(token),
		m.resolver.DisplayName(token),
		m.cfg.DownloadDir(),
	)
}
