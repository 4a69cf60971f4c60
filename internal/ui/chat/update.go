// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view and its request lifecycle.
//
// This file is the Bubble Tea update loop: every state mutation in the
// package happens here or in a helper it calls.
package chat

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/documind-tui/internal/docmind"
	"github.com/morganforge/documind-tui/internal/logging"
	"github.com/morganforge/documind-tui/internal/model"
	"github.com/morganforge/documind-tui/internal/quality"
	"github.com/morganforge/documind-tui/internal/sources"
	"github.com/morganforge/documind-tui/internal/ui/components"
)

// Update handles every incoming message.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case answerMsg:
		return m.handleAnswer(msg)

	case thinkingDoneMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.thinkingDone = true
		return m, m.maybeDeliver()

	case typingTickMsg:
		return m, m.advanceTyping(msg)

	case registerMsg:
		// Registration is best effort; a failure only matters for
		// server-side bookkeeping.
		if msg.err != nil {
			logging.Errorf("session registration failed: %v", msg.err)
		}
		return m, nil

	case clearSyncMsg:
		if msg.err != nil {
			logging.Errorf("server-side clear failed: %v", msg.err)
			m.toasts.AddWarning("Sunucu tarafında sohbet temizlenemedi.")
			return m, components.ToastTickCmd()
		}
		return m, nil

	case statsMsg:
		m.handleStats(msg)
		return m, nil

	case listingMsg:
		m.handleListing(msg)
		return m, nil

	case healthMsg:
		m.statusBar.SetService(msg.online)
		return m, nil

	case downloadMsg:
		return m.handleDownload(msg)

	case components.ToastTickMsg:
		m.toasts.Tick()
		if m.toasts.HasToasts() {
			return m, components.ToastTickCmd()
		}
		return m, nil

	case spinner.TickMsg:
		if m.state != StateSending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.clearCancelFunc()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Stop):
		m.stopGeneration()
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		return m, m.clearConversation()

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit(m.input.Value())

	case key.Matches(msg, m.keys.Up):
		m.viewport.LineUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.viewport.LineDown(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		return m, nil
	}

	// A bare digit with an empty input picks a suggestion chip.
	if m.input.Value() == "" && m.suggestions.HasSuggestions() && m.state == StateIdle {
		if n, err := strconv.Atoi(msg.String()); err == nil {
			if q := m.suggestions.Select(n); q != "" {
				return m, m.submit(q)
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// =============================================================================
// ANSWER DELIVERY
// =============================================================================

func (m *Model) handleAnswer(msg answerMsg) (tea.Model, tea.Cmd) {
	// Late result of a cancelled or superseded request.
	if msg.gen != m.gen {
		return m, nil
	}

	m.clearCancelFunc()
	m.pendingResp = msg.resp
	m.pendingErr = msg.err
	return m, m.maybeDeliver()
}

// maybeDeliver shows the answer once both gates are open: the response
// has arrived and the fixed thinking delay has elapsed. The delay is
// not skippable.
func (m *Model) maybeDeliver() tea.Cmd {
	if m.state != StateSending || !m.thinkingDone {
		return nil
	}
	if m.pendingResp == nil && m.pendingErr == nil {
		return nil
	}

	resp, err := m.pendingResp, m.pendingErr
	m.pendingResp = nil
	m.pendingErr = nil

	if err != nil {
		return m.deliverFailure(err)
	}
	return m.deliverAnswer(resp)
}

// deliverAnswer classifies the response, appends the bot turn, and
// starts the reveal. The server-authoritative history replaces the
// local copy wholesale.
func (m *Model) deliverAnswer(resp *docmind.AskResponse) tea.Cmd {
	answer := quality.Answer{
		Text:         resp.Response,
		Confidence:   resp.Confidence,
		QualityLevel: resp.QualityLevel,
	}
	answered := m.filter.Answered(answer)
	citations := m.filter.Citations(answer, resp.Sources)

	botMsg := model.NewBotMessage(resp.Response, citations, model.Classification{
		Confidence:   resp.Confidence,
		QualityLevel: resp.QualityLevel,
		ResponseKind: resp.Type,
		Answered:     answered,
	})
	m.transcript.Append(botMsg)

	if resp.ConversationHistory != nil {
		m.history = resp.ConversationHistory
	}

	m.state = StateDelivering
	m.statusBar.SetPhase(phaseFor(m.state))
	m.refreshViewport()

	return m.startTyping(botMsg)
}

// deliverFailure appends an apology bot turn carrying the failure
// detail and returns straight to Idle. Failure turns are never
// animated: the input must be usable again immediately.
func (m *Model) deliverFailure(err error) tea.Cmd {
	text := serviceFailurePrefix + docmind.ServiceMessage(err)
	if docmind.IsUnreachable(err) {
		text = unreachableAnswer
		m.toasts.AddError("Sunucuya ulaşılamadı.")
		m.statusBar.SetService(false)
	} else {
		m.toasts.AddError(docmind.ServiceMessage(err))
	}

	botMsg := model.NewBotMessage(text, nil, model.Classification{
		QualityLevel: "Hata",
		Answered:     false,
	})
	botMsg.RenderState = model.RenderStatic
	m.transcript.Append(botMsg)

	m.state = StateIdle
	m.statusBar.SetPhase(phaseFor(m.state))
	m.refreshViewport()

	return components.ToastTickCmd()
}

// =============================================================================
// BACKGROUND RESULTS
// =============================================================================

// handleStats screens the statistics feed and installs the surviving
// questions as suggestion chips. Bracketed topic tags are stripped
// before the question is screened or offered, so a chip submits clean
// text.
func (m *Model) handleStats(msg statsMsg) {
	if msg.err != nil {
		logging.Errorf("statistics fetch failed: %v", msg.err)
		return
	}
	if msg.stats == nil {
		return
	}

	maxChips := m.cfg.Chat.MaxSuggestions
	var questions []string
	for _, q := range msg.stats.TopQuestions {
		question := quality.StripTopic(q.Question)
		if !m.filter.SuggestionOK(question, q.Answer) {
			continue
		}
		questions = append(questions, question)
		if len(questions) >= maxChips {
			break
		}
	}
	m.suggestions.SetQuestions(questions)
}

// handleListing installs the document listing into the resolver.
func (m *Model) handleListing(msg listingMsg) {
	if msg.err != nil {
		logging.Errorf("document listing fetch failed: %v", msg.err)
		return
	}

	docs := make([]sources.Document, 0, len(msg.docs))
	for _, d := range msg.docs {
		docs = append(docs, sources.Document{
			Filename: d.Filename,
			Keyword:  d.Keyword,
			Content:  d.Content,
		})
	}
	m.resolver.SetListing(docs)
	m.docCount = len(docs)
	m.statusBar.SetDocumentCount(len(docs))
	m.welcome.DocCount = len(docs)
}

// handleDownload reports the download outcome.
func (m *Model) handleDownload(msg downloadMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if docmind.IsUnreachable(msg.err) {
			m.toasts.AddError("Sunucuya ulaşılamadı.")
		} else {
			m.toasts.AddError(docmind.ServiceMessage(msg.err))
		}
		return m, components.ToastTickCmd()
	}

	m.toasts.AddSuccess(msg.name + " kaydedildi: " + msg.dest)
	return m, components.ToastTickCmd()
}

// =============================================================================
// HELPERS
// =============================================================================

// phaseFor maps a lifecycle state to the status bar phase.
func phaseFor(s State) components.Phase {
	switch s {
	case StateSending:
		return components.PhaseThinking
	case StateDelivering:
		return components.PhaseAnswering
	default:
		return components.PhaseIdle
	}
}

// resize propagates the new terminal size to every component.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.theme.SetSize(width, height)

	m.header.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.welcome.SetWidth(width)
	m.suggestions.SetWidth(width)
	m.input.Width = width - 6

	viewportHeight := height - m.chromeHeight()
	if viewportHeight < 3 {
		viewportHeight = 3
	}
	if !m.ready {
		m.viewport = viewport.New(width, viewportHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = viewportHeight
	}
	m.refreshViewport()
}
