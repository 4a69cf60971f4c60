// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package docmind provides the HTTP client for the DocuMind service.
package docmind

import (
	"github.com/morganforge/documind-tui/internal/model"
)

// =============================================================================
// ANSWER REQUEST/RESPONSE
// =============================================================================

// AskRequest is the body of the answer request.
type AskRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// AskResponse is the answer payload. ConversationHistory, when present,
// replaces the locally held history wholesale. A non-empty Error field
// means the request failed regardless of transport status.
type AskResponse struct {
	Response            string                    `json:"response"`
	Type                string                    `json:"type"`
	Confidence          float64                   `json:"confidence"`
	QualityLevel        string                    `json:"quality_level"`
	Sources             []string                  `json:"sources"`
	ConversationHistory []model.ConversationEntry `json:"conversation_history"`
	Error               string                    `json:"error,omitempty"`
}

// =============================================================================
// SESSION REQUESTS
// =============================================================================

// SessionRequest is the body of session registration and conversation
// clear requests, keyed by the session identity.
type SessionRequest struct {
	UserID string `json:"user_id"`
}

// =============================================================================
// STATISTICS
// =============================================================================

// TopQuestion is one ranked entry of the statistics feed.
type TopQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Count    int    `json:"count"`
	Topic    string `json:"topic"`
}

// TopSource is one ranked source of the statistics feed.
type TopSource struct {
	Source  string `json:"source"`
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// StatsResponse is the statistics summary. Consumed read-only, for
// suggestion chips.
type StatsResponse struct {
	TopQuestions   []TopQuestion `json:"topQuestions"`
	TopSources     []TopSource   `json:"topSources"`
	TotalQuestions int           `json:"totalQuestions"`
	DailyQuestions int           `json:"dailyQuestions"`
}

// =============================================================================
// DOCUMENT LISTING
// =============================================================================

// DocumentInfo is one entry of the static document-directory listing.
type DocumentInfo struct {
	Filename string `json:"filename"`
	Keyword  string `json:"keyword"`
	Content  string `json:"content"`
}

// downloadError is the structured body of a failed retrieval.
type downloadError struct {
	Error string `json:"error"`
}
