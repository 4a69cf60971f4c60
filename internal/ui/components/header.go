// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for documind-tui.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/documind-tui/internal/ui/styles"
	"github.com/morganforge/documind-tui/internal/util"
)

// =============================================================================
// HEADER COMPONENT - top title bar
// =============================================================================

// Header is the application title bar.
type Header struct {
	Title    string
	Subtitle string
	Width    int
	theme    *styles.Theme
}

// NewHeader creates the title bar with the default branding.
func NewHeader(theme *styles.Theme) *Header {
	return &Header{
		Title:    "DocuMind",
		Subtitle: "Belge Asistanı",
		Width:    80,
		theme:    theme,
	}
}

// SetWidth updates the header width.
func (h *Header) SetWidth(width int) {
	h.Width = width
}

// View renders the header.
func (h *Header) View() string {
	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Bold(true)

	title := titleStyle.Render(h.Title)

	// Subtitle only when there is room for it.
	if h.Subtitle != "" && h.Width >= 60 {
		subtitleStyle := lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Italic(true)
		sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" - ")
		title += sep + subtitleStyle.Render(h.Subtitle)
	}

	if util.StringWidth(h.Title) > h.Width {
		title = titleStyle.Render(util.TruncateWidth(h.Title, h.Width))
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(styles.Overlay).
		Padding(0, 1).
		Width(h.Width).
		Render(title)
}
