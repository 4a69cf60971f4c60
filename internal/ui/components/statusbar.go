// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for documind-tui.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/morganforge/documind-tui/internal/ui/styles"
	"github.com/morganforge/documind-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - bottom status bar
// =============================================================================

// Phase represents the request lifecycle shown in the status bar.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseThinking
	PhaseAnswering
)

// String returns the display string for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Ready"
	case PhaseThinking:
		return "Thinking..."
	case PhaseAnswering:
		return "Answering..."
	default:
		return "Unknown"
	}
}

// Icon returns an icon for the phase.
// ACCESSIBILITY: Uses distinct shapes alongside colors for colorblind users
func (p Phase) Icon() string {
	switch p {
	case PhaseIdle:
		return styles.StatusIndicators.Success
	case PhaseThinking:
		return styles.StatusIndicators.Pending
	case PhaseAnswering:
		return styles.StatusIndicators.Active
	default:
		return "?"
	}
}

// StatusBar is the bottom status bar: service reachability, session
// identity, lifecycle phase, and keyboard shortcuts.
type StatusBar struct {
	ServiceOnline bool
	ServerURL     string
	SessionID     string
	Phase         Phase
	DocumentCount int
	Width         int
	ShowShortcuts bool
	theme         *styles.Theme
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	return &StatusBar{
		ServiceOnline: false,
		Phase:         PhaseIdle,
		Width:         80,
		ShowShortcuts: true,
		theme:         theme,
	}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// SetService updates the service reachability indicator.
func (s *StatusBar) SetService(online bool) {
	s.ServiceOnline = online
}

// SetPhase updates the lifecycle phase.
func (s *StatusBar) SetPhase(phase Phase) {
	s.Phase = phase
}

// SetSession updates the displayed session identity.
func (s *StatusBar) SetSession(id string) {
	s.SessionID = id
}

// SetDocumentCount updates the known document count.
func (s *StatusBar) SetDocumentCount(n int) {
	s.DocumentCount = n
}

// View renders the status bar for the current width.
func (s *StatusBar) View() string {
	if s.Width < 60 {
		return s.viewNarrow()
	}
	if s.Width < 100 {
		return s.viewMedium()
	}
	return s.viewWide()
}

// viewNarrow renders a compact status bar for narrow terminals.
// Format: [OK|X] Phase
func (s *StatusBar) viewNarrow() string {
	service := s.renderServiceBadge(true)
	phase := s.phaseStyle().Render(s.Phase.Icon())

	separator := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" ")
	result := service + separator + phase

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Width(s.Width).
		Render(result)
}

// viewMedium renders a medium-width status bar.
// Format: service | session | docs | phase
func (s *StatusBar) viewMedium() string {
	separator := lipgloss.NewStyle().
		Foreground(styles.Overlay).
		Render(" | ")

	parts := []string{s.renderServiceBadge(false)}

	if s.SessionID != "" {
		parts = append(parts, s.renderSession(12))
	}
	if s.DocumentCount > 0 {
		parts = append(parts, s.renderDocumentCount())
	}
	parts = append(parts, s.phaseStyle().Render(s.Phase.String()))

	result := strings.Join(parts, separator)

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(result)
}

// viewWide renders a full status bar for wide terminals.
// Format: service url | session | docs ... phase | shortcuts
func (s *StatusBar) viewWide() string {
	leftSep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")

	leftParts := []string{s.renderServiceBadge(false)}
	if s.ServerURL != "" {
		urlStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		leftParts = append(leftParts, urlStyle.Render(s.ServerURL))
	}
	if s.SessionID != "" {
		leftParts = append(leftParts, s.renderSession(24))
	}
	if s.DocumentCount > 0 {
		leftParts = append(leftParts, s.renderDocumentCount())
	}
	leftSection := strings.Join(leftParts, leftSep)

	rightParts := []string{s.phaseStyle().Render(s.Phase.String())}
	if s.ShowShortcuts {
		rightParts = append(rightParts, s.renderShortcuts())
	}
	rightSection := strings.Join(rightParts, " ")

	spacing := s.Width - lipgloss.Width(leftSection) - lipgloss.Width(rightSection) - 4
	if spacing < 1 {
		spacing = 1
	}

	result := leftSection + strings.Repeat(" ", spacing) + rightSection

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(styles.Overlay).
		Background(styles.SurfaceDim).
		Foreground(styles.TextSecondary).
		Padding(0, 1).
		Width(s.Width).
		Render(result)
}

// ==========================================================================
// HELPER RENDER METHODS
// ==========================================================================

// renderServiceBadge renders the service reachability indicator.
// ACCESSIBILITY: shape plus color, readable under red-green color blindness.
func (s *StatusBar) renderServiceBadge(compact bool) string {
	if s.ServiceOnline {
		label := "Online"
		if compact {
			label = styles.StatusIndicators.Success
		} else {
			label = styles.StatusIndicators.Success + " " + label
		}
		if s.theme != nil {
			return s.theme.ServiceOnline.Render(label)
		}
		return lipgloss.NewStyle().Foreground(styles.Emerald).Bold(true).Render(label)
	}

	label := "Offline"
	if compact {
		label = styles.StatusIndicators.Error
	} else {
		label = styles.StatusIndicators.Error + " " + label
	}
	if s.theme != nil {
		return s.theme.ServiceOffline.Render(label)
	}
	return lipgloss.NewStyle().Foreground(styles.Rose).Bold(true).Render(label)
}

// renderSession renders the truncated session identity.
func (s *StatusBar) renderSession(maxLen int) string {
	id := util.TruncateWidth(s.SessionID, maxLen)
	return lipgloss.NewStyle().Foreground(styles.TextMuted).Render(id)
}

// renderDocumentCount renders the document count badge.
func (s *StatusBar) renderDocumentCount() string {
	return lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(fmtNumber(s.DocumentCount) + " docs")
}

// phaseStyle returns the style for the current phase.
// ACCESSIBILITY: Uses high contrast colors with bold for colorblind users
func (s *StatusBar) phaseStyle() lipgloss.Style {
	switch s.Phase {
	case PhaseIdle:
		return lipgloss.NewStyle().Foreground(styles.SuccessHighContrast).Bold(true)
	case PhaseThinking:
		return lipgloss.NewStyle().Foreground(styles.WarningHighContrast).Bold(true)
	case PhaseAnswering:
		return lipgloss.NewStyle().Foreground(styles.InfoHighContrast).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMuted)
	}
}

// renderShortcuts renders keyboard shortcut hints.
func (s *StatusBar) renderShortcuts() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted)

	shortcuts := []string{
		keyStyle.Render("Enter") + descStyle.Render(" send"),
		keyStyle.Render("Esc") + descStyle.Render(" stop"),
		keyStyle.Render("^L") + descStyle.Render(" clear"),
		keyStyle.Render("^C") + descStyle.Render(" quit"),
	}

	return strings.Join(shortcuts, "  ")
}
