// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view and its request lifecycle.
package chat

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/morganforge/documind-tui/internal/config"
	"github.com/morganforge/documind-tui/internal/docmind"
	"github.com/morganforge/documind-tui/internal/model"
	"github.com/morganforge/documind-tui/internal/quality"
	"github.com/morganforge/documind-tui/internal/sources"
	"github.com/morganforge/documind-tui/internal/ui/components"
	"github.com/morganforge/documind-tui/internal/ui/styles"
)

// =============================================================================
// LIFECYCLE STATE
// =============================================================================

// State is the request lifecycle state.
type State int

const (
	// StateIdle means no request is in flight; submits are accepted.
	StateIdle State = iota
	// StateSending means a question is out and the answer has not been
	// shown yet. The only state that can be cancelled.
	StateSending
	// StateDelivering means the answer is being progressively revealed.
	// Not cancellable; the reveal is finite and always terminates.
	StateDelivering
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSending:
		return "sending"
	case StateDelivering:
		return "delivering"
	default:
		return "unknown"
	}
}

// StoppedText is the system turn appended when generation is cancelled.
const StoppedText = "Yanıt oluşturma durduruldu."

// unreachableAnswer is the bot turn shown when the service cannot be reached.
const unreachableAnswer = "Üzgünüm, şu anda sunucuya ulaşılamıyor. " +
	"Lütfen daha sonra tekrar deneyin."

// serviceFailurePrefix opens the bot turn for a failure the service
// itself reported; the service's message follows it.
const serviceFailurePrefix = "Üzgünüm, bir hata oluştu. "

// =============================================================================
// MODEL
// =============================================================================

// Model is the conversation view. All fields are owned by the update
// loop; the cancel manager is the single concurrency-aware member.
type Model struct {
	cfg       *config.Config
	client    *docmind.Client
	theme     *styles.Theme
	keys      KeyMap
	sessionID string

	transcript *model.Transcript
	history    []model.ConversationEntry
	filter     *quality.Filter
	resolver   *sources.Resolver

	state     State
	gen       int
	cancelMgr *cancelManager

	// Answer delivery is gated on both the response and the fixed
	// thinking delay; whichever arrives last triggers it.
	pendingResp  *docmind.AskResponse
	pendingErr   error
	thinkingDone bool

	typing typingState

	header      *components.Header
	statusBar   *components.StatusBar
	welcome     *components.WelcomeBanner
	suggestions *components.SuggestionBar
	toasts      *components.ToastManager

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	width    int
	height   int
	ready    bool
	docCount int
	quitting bool
}

// New creates the conversation view.
func New(cfg *config.Config, client *docmind.Client, sessionID string, version string) *Model {
	theme := styles.NewTheme()

	input := textinput.New()
	input.Placeholder = "Sorunuzu yazın..."
	input.Prompt = "> "
	input.CharLimit = 2000
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	statusBar := components.NewStatusBar(theme)
	statusBar.SetSession(sessionID)
	statusBar.ServerURL = client.BaseURL()

	welcome := components.NewWelcomeBanner(theme, version)
	welcome.ServerURL = client.BaseURL()

	// Markdown rendering is cosmetic; a renderer failure degrades to
	// plain text.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		renderer = nil
	}

	return &Model{
		cfg:         cfg,
		client:      client,
		theme:       theme,
		keys:        DefaultKeyMap(),
		sessionID:   sessionID,
		transcript:  model.NewTranscript(),
		filter:      quality.DefaultFilter(),
		resolver:    sources.NewResolver(),
		state:       StateIdle,
		cancelMgr:   newCancelManager(),
		header:      components.NewHeader(theme),
		statusBar:   statusBar,
		welcome:     welcome,
		suggestions: components.NewSuggestionBar(theme),
		toasts:      components.NewToastManager(),
		input:       input,
		spinner:     sp,
		renderer:    renderer,
	}
}

// Init starts the background fetches: session registration, the
// statistics feed, the document listing, and the health check. All are
// best effort.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		registerCmd(m.client, m.sessionID),
		statsCmd(m.client),
		listingCmd(m.client),
		healthCmd(m.client),
	)
}

// Transcript exposes the conversation log, mainly for rendering and tests.
func (m *Model) Transcript() *model.Transcript {
	return m.transcript
}

// History exposes the server-authoritative conversation history.
func (m *Model) History() []model.ConversationEntry {
	return m.history
}

// State returns the current lifecycle state.
func (m *Model) State() State {
	return m.state
}

// thinkingDelay returns the fixed pre-display delay, clamped to the
// configured maximum.
func (m *Model) thinkingDelay() time.Duration {
	ms := m.cfg.Chat.ThinkingDelayMs
	if ms < 0 {
		ms = 0
	}
	if ms > config.MaxThinkingDelayMs {
		ms = config.MaxThinkingDelayMs
	}
	return time.Duration(ms) * time.Millisecond
}
