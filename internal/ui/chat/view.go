// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view and its request lifecycle.
//
// This file renders the view: header, transcript viewport, thinking
// indicator, suggestion chips, input area, status bar, and toasts.
package chat

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/documind-tui/internal/model"
	"github.com/morganforge/documind-tui/internal/ui/components"
	"github.com/morganforge/documind-tui/internal/ui/styles"
)

// View renders the full screen.
func (m *Model) View() string {
	if m.quitting {
		return "Görüşmek üzere!\n"
	}
	if !m.ready {
		return "Yükleniyor..."
	}

	sections := []string{
		m.header.View(),
		m.viewport.View(),
	}

	if m.state == StateSending {
		sections = append(sections, m.renderThinking())
	}

	// Chips are only offered on a fresh conversation.
	if m.freshConversation() && m.suggestions.HasSuggestions() {
		sections = append(sections, m.suggestions.View())
	}

	sections = append(sections,
		m.renderInput(),
		m.statusBar.View(),
	)

	screen := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.toasts.HasToasts() {
		screen += "\n" + components.RenderToastStack(m.toasts.Toasts(), m.width, 0)
	}
	return screen
}

// freshConversation reports whether only the welcome turn is present.
func (m *Model) freshConversation() bool {
	return m.transcript.Len() == 1 && m.state == StateIdle
}

// chromeHeight is the vertical space everything but the viewport takes.
func (m *Model) chromeHeight() int {
	h := 2 + 3 + 2 // header, input area, status bar
	if m.state == StateSending {
		h++
	}
	if m.freshConversation() && m.suggestions.HasSuggestions() {
		h++
	}
	return h
}

// =============================================================================
// TRANSCRIPT RENDERING
// =============================================================================

// refreshViewport re-renders the transcript and keeps the view pinned
// to the newest turn.
func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// renderTranscript renders every turn in append order.
func (m *Model) renderTranscript() string {
	var b strings.Builder

	if m.freshConversation() {
		b.WriteString(m.welcome.View())
		b.WriteString("\n\n")
	}

	for _, turn := range m.transcript.All() {
		b.WriteString(m.renderTurn(turn))
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderTurn renders a single turn as a labelled bubble.
func (m *Model) renderTurn(turn *model.Message) string {
	label := m.renderLabel(turn)
	body := m.renderBody(turn)

	var bubble lipgloss.Style
	switch turn.Origin {
	case model.OriginUser:
		bubble = m.theme.UserBubble
	case model.OriginBot:
		bubble = m.theme.BotBubble
	default:
		bubble = m.theme.SystemBubble
	}

	maxWidth := m.width - 8
	if maxWidth > 0 {
		bubble = bubble.MaxWidth(maxWidth)
	}

	out := label + "\n" + bubble.Render(body)

	if citations := m.renderCitations(turn); citations != "" {
		out += "\n" + citations
	}
	return out
}

// renderLabel renders the author line, with a timestamp when enabled.
func (m *Model) renderLabel(turn *model.Message) string {
	nameStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary).Bold(true)
	label := nameStyle.Render(turn.Origin.DisplayName())

	if m.cfg.UI.ShowTimestamps {
		tsStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		label += " " + tsStyle.Render(turn.CreatedAt.Format("15:04"))
	}
	return label
}

// renderBody renders the turn text. Settled bot turns go through the
// markdown renderer; animating turns show the raw revealed prefix so
// the reveal is not distorted by markdown reflow.
func (m *Model) renderBody(turn *model.Message) string {
	text := m.visibleText(turn)

	if turn.Origin == model.OriginBot && !turn.IsAnimating() && m.renderer != nil {
		if rendered, err := m.renderer.Render(text); err == nil {
			return strings.TrimSpace(rendered)
		}
	}
	return text
}

// renderCitations renders the numbered source chips under an answered
// bot turn. Unanswered turns carry no citations by construction.
func (m *Model) renderCitations(turn *model.Message) string {
	if turn.Origin != model.OriginBot || len(turn.Citations) == 0 || turn.IsAnimating() {
		return ""
	}

	labelStyle := m.theme.CitationLabel
	chips := make([]string, 0, len(turn.Citations)+1)
	chips = append(chips, labelStyle.Render("Kaynaklar:"))

	for i, token := range turn.Citations {
		name := m.resolver.DisplayName(token)
		chip := "[" + strconv.Itoa(i+1) + "] " + name
		chips = append(chips, m.theme.CitationChip.Render(chip))
	}
	return strings.Join(chips, " ")
}

// =============================================================================
// CHROME RENDERING
// =============================================================================

// renderThinking renders the spinner line shown while Sending.
func (m *Model) renderThinking() string {
	return m.spinner.View() + " " + m.theme.ThinkingText.Render("DocuMind düşünüyor...")
}

// renderInput renders the input area.
func (m *Model) renderInput() string {
	return m.theme.InputContainer.Width(m.width - 2).Render(m.input.View())
}
