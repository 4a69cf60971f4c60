// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for documind-tui.
package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/documind-tui/internal/ui/styles"
	"github.com/morganforge/documind-tui/internal/util"
)

// =============================================================================
// SUGGESTION CHIPS - popular questions offered above the input
// =============================================================================

// SuggestionBar renders numbered question chips above the input area.
// The chat layer supplies the already-filtered questions; pressing the
// chip's number submits it verbatim.
type SuggestionBar struct {
	questions []string
	Width     int
	theme     *styles.Theme
}

// NewSuggestionBar creates an empty suggestion bar.
func NewSuggestionBar(theme *styles.Theme) *SuggestionBar {
	return &SuggestionBar{
		Width: 80,
		theme: theme,
	}
}

// SetWidth updates the bar width.
func (b *SuggestionBar) SetWidth(width int) {
	b.Width = width
}

// SetQuestions replaces the offered questions.
func (b *SuggestionBar) SetQuestions(questions []string) {
	b.questions = questions
}

// Questions returns the offered questions.
func (b *SuggestionBar) Questions() []string {
	return b.questions
}

// Select returns the question for a 1-based chip number, or "" when the
// number is out of range.
func (b *SuggestionBar) Select(n int) string {
	if n < 1 || n > len(b.questions) {
		return ""
	}
	return b.questions[n-1]
}

// HasSuggestions reports whether any chips are available.
func (b *SuggestionBar) HasSuggestions() bool {
	return len(b.questions) > 0
}

// View renders the chips on a single line, truncating each question to
// fit. An empty bar renders nothing.
func (b *SuggestionBar) View() string {
	if len(b.questions) == 0 {
		return ""
	}

	keyStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	chipStyle := lipgloss.NewStyle().
		Foreground(styles.SuggestionFg).
		Background(styles.SuggestionBg).
		Padding(0, 1).
		MarginRight(1)
	if b.theme != nil {
		chipStyle = b.theme.SuggestionChip
		keyStyle = b.theme.SuggestionKey
	}

	perChip := b.Width/len(b.questions) - 8
	if perChip < 12 {
		perChip = 12
	}

	chips := make([]string, 0, len(b.questions))
	for i, q := range b.questions {
		label := q
		if util.StringWidth(label) > perChip {
			label = util.TruncateWidth(label, perChip)
		}
		chip := keyStyle.Render("["+strconv.Itoa(i+1)+"]") + " " + label
		chips = append(chips, chipStyle.Render(chip))
	}

	return strings.Join(chips, " ")
}
