// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package docmind provides the HTTP client for the DocuMind service.
package docmind

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the DocuMind client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown ErrorType = iota
	ErrTypeUnreachable
	ErrTypeService
	ErrTypeDownload
	ErrTypeInvalidResponse
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeUnreachable, Message: "could not reach server"}
)

// IsUnreachable checks whether an error is a transport failure.
func IsUnreachable(err error) bool {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Type == ErrTypeUnreachable
	}
	return errors.Is(err, ErrUnreachable)
}

// ServiceMessage extracts the human-readable message from a service or
// download error, or returns the plain error string.
func ServiceMessage(err error) string {
	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return clientErr.Message
	}
	return err.Error()
}

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the DocuMind client.
type ClientConfig struct {
	// BaseURL is the DocuMind service base URL (default: http://127.0.0.1:5000)
	BaseURL string

	// Timeout for auxiliary requests: registration, clear, stats,
	// listing, health, downloads (default: 30s). The answer request is
	// deliberately exempt and bounded only by its context.
	Timeout time.Duration
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		BaseURL: "http://127.0.0.1:5000",
		Timeout: 30 * time.Second,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the DocuMind service.
// It is safe for concurrent use.
type Client struct {
	config     *ClientConfig
	httpClient *http.Client
	// askClient has no timeout: the answer request stays outstanding
	// until the service responds or the context is cancelled.
	askClient *http.Client
}

// NewClient creates a client with default configuration.
func NewClient() *Client {
	return NewClientWithConfig(DefaultConfig())
}

// NewClientWithConfig creates a client with custom configuration.
func NewClientWithConfig(config *ClientConfig) *Client {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://127.0.0.1:5000"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		askClient: &http.Client{},
	}
}

// BaseURL returns the configured service base URL.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// =============================================================================
// ANSWER REQUEST
// =============================================================================

// Ask submits a question keyed by the session identity and returns the
// answer payload. A response carrying a non-empty error field is
// returned as a service failure, preferring the service's message.
func (c *Client) Ask(ctx context.Context, message, sessionID string) (*AskResponse, error) {
	body, err := json.Marshal(AskRequest{Message: message, UserID: sessionID})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.askClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	var result AskResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &ClientError{
				Type:    ErrTypeService,
				Message: "answer request failed: " + resp.Status,
			}
		}
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}

	// The service reports failures in-band; presence of the error field
	// is a failure regardless of transport status.
	if result.Error != "" {
		return nil, &ClientError{Type: ErrTypeService, Message: result.Error}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{
			Type:    ErrTypeService,
			Message: "answer request failed: " + resp.Status,
		}
	}

	return &result, nil
}

// =============================================================================
// SESSION OPERATIONS (BEST EFFORT)
// =============================================================================

// RegisterSession announces the session identity to the service.
// Best effort: callers log failures and continue.
func (c *Client) RegisterSession(ctx context.Context, sessionID string) error {
	return c.postSession(ctx, "/api/user/session", sessionID)
}

// ClearConversation requests server-side clearing of the conversation
// keyed by the session identity. Best effort: the local reset is
// optimistic and never rolled back.
func (c *Client) ClearConversation(ctx context.Context, sessionID string) error {
	return c.postSession(ctx, "/api/conversation/clear", sessionID)
}

func (c *Client) postSession(ctx context.Context, path, sessionID string) error {
	body, err := json.Marshal(SessionRequest{UserID: sessionID})
	if err != nil {
		return &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to marshal request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrUnreachable
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeService,
			Message: "request failed: " + resp.Status,
		}
	}
	return nil
}

// =============================================================================
// STATISTICS
// =============================================================================

// Stats fetches the read-only statistics summary.
func (c *Client) Stats(ctx context.Context) (*StatsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/api/admin/stats", nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{
			Type:    ErrTypeService,
			Message: "stats request failed: " + resp.Status,
		}
	}

	var result StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return &result, nil
}

// =============================================================================
// DOCUMENT LISTING
// =============================================================================

// DocumentIndex fetches the static document-directory listing used for
// citation display-name mapping. Fetched once at startup; failures
// degrade to token-only display.
func (c *Client) DocumentIndex(ctx context.Context) ([]DocumentInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/enhanced_document_data.json", nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ClientError{
			Type:    ErrTypeService,
			Message: "listing request failed: " + resp.Status,
		}
	}

	var result []DocumentInfo
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to decode response", Cause: err}
	}
	return result, nil
}

// =============================================================================
// DOWNLOADS
// =============================================================================

// Download retrieves a document's raw bytes. The path comes from the
// sources package's routing decision. A non-success response carries a
// structured {error} body which is surfaced as the failure message; a
// transport failure surfaces as ErrUnreachable.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+path, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var dlErr downloadError
		if err := json.NewDecoder(resp.Body).Decode(&dlErr); err == nil && dlErr.Error != "" {
			return nil, &ClientError{Type: ErrTypeDownload, Message: dlErr.Error}
		}
		return nil, &ClientError{
			Type:    ErrTypeDownload,
			Message: "download failed: " + resp.Status,
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeInvalidResponse, Message: "failed to read document body", Cause: err}
	}
	return data, nil
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// Health verifies that the service is reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/api/health", nil)
	if err != nil {
		return &ClientError{Type: ErrTypeUnreachable, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrUnreachable
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeService,
			Message: "unexpected status from service: " + resp.Status,
		}
	}
	return nil
}

// Helper to drain response body so connections can be reused.
func drainAndClose(r io.ReadCloser) {
	io.Copy(io.Discard, r)
	r.Close()
}
