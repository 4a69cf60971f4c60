// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for documind-tui.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/documind-tui/internal/ui/styles"
)

// =============================================================================
// WELCOME BANNER - shown above a fresh conversation
// =============================================================================

const welcomeLogo = `
 ___                 __  __ _         _
|   \ ___  __ _  _ |  \/  (_)_ _  __| |
| |) / _ \/ _| || || |\/| | | ' \/ _  |
|___/\___/\__|\_,_||_|  |_|_|_||_\__,_|
`

// WelcomeBanner is the boxed banner rendered while the transcript holds
// only the greeting turn.
type WelcomeBanner struct {
	Version   string
	ServerURL string
	DocCount  int
	Width     int
	theme     *styles.Theme
}

// NewWelcomeBanner creates the welcome banner.
func NewWelcomeBanner(theme *styles.Theme, version string) *WelcomeBanner {
	return &WelcomeBanner{
		Version: version,
		Width:   80,
		theme:   theme,
	}
}

// SetWidth updates the banner width.
func (w *WelcomeBanner) SetWidth(width int) {
	w.Width = width
}

// View renders the welcome banner. Narrow terminals get a single-line
// variant without the logo.
func (w *WelcomeBanner) View() string {
	if w.Width < 60 {
		return w.viewCompact()
	}

	var b strings.Builder

	logoStyle := lipgloss.NewStyle().Foreground(styles.Cyan).Bold(true)
	b.WriteString(logoStyle.Render(strings.TrimLeft(welcomeLogo, "\n")))
	b.WriteString("\n")

	if w.Version != "" {
		versionStyle := lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true)
		b.WriteString(versionStyle.Render("v" + w.Version))
		b.WriteString("\n")
	}

	infoStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	var infoParts []string
	if w.ServerURL != "" {
		infoParts = append(infoParts, w.ServerURL)
	}
	if w.DocCount > 0 {
		infoParts = append(infoParts, fmtNumber(w.DocCount)+" belge")
	}
	if len(infoParts) > 0 {
		b.WriteString(infoStyle.Render(strings.Join(infoParts, "  ·  ")))
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(styles.Purple).
		Padding(1, 4).
		Align(lipgloss.Center)

	return lipgloss.PlaceHorizontal(w.Width, lipgloss.Center, box.Render(b.String()))
}

func (w *WelcomeBanner) viewCompact() string {
	style := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)
	line := "DocuMind"
	if w.Version != "" {
		line += " v" + w.Version
	}
	return lipgloss.PlaceHorizontal(w.Width, lipgloss.Center, style.Render(line))
}
