// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view and its request lifecycle.
//
// This file holds the tea.Cmd constructors that call the service client
// off the update loop. Request-scoped commands tag their result with
// the generation they were started for.
package chat

import (
	"context"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/documind-tui/internal/docmind"
	"github.com/morganforge/documind-tui/internal/util"
)

// backgroundTimeout bounds the best-effort fetches (registration,
// stats, listing, health, downloads). The answer request is exempt.
const backgroundTimeout = 15 * time.Second

// =============================================================================
// REQUEST LIFECYCLE COMMANDS
// =============================================================================

// askCmd submits the question. The context comes from the cancel
// manager so Esc can abort it.
func askCmd(ctx context.Context, client *docmind.Client, gen int, text, sessionID string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Ask(ctx, text, sessionID)
		return answerMsg{gen: gen, resp: resp, err: err}
	}
}

// thinkingCmd fires after the fixed pre-display delay.
func thinkingCmd(gen int, delay time.Duration) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return thinkingDoneMsg{gen: gen} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return thinkingDoneMsg{gen: gen}
	})
}

// typingTickCmd schedules the next reveal step for a bot turn.
func typingTickCmd(gen int, msgID string, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return typingTickMsg{gen: gen, msgID: msgID}
	})
}

// =============================================================================
// BACKGROUND COMMANDS (BEST EFFORT)
// =============================================================================

// registerCmd announces the session identity to the service.
func registerCmd(client *docmind.Client, sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		return registerMsg{err: client.RegisterSession(ctx, sessionID)}
	}
}

// clearSyncCmd asks the service to drop the server-side conversation.
// The local reset has already happened by the time this runs.
func clearSyncCmd(client *docmind.Client, sessionID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		return clearSyncMsg{err: client.ClearConversation(ctx, sessionID)}
	}
}

// statsCmd fetches the statistics feed for suggestion chips.
func statsCmd(client *docmind.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		stats, err := client.Stats(ctx)
		return statsMsg{stats: stats, err: err}
	}
}

// listingCmd fetches the document-directory listing.
func listingCmd(client *docmind.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		docs, err := client.DocumentIndex(ctx)
		return listingMsg{docs: docs, err: err}
	}
}

// healthCmd checks service reachability.
func healthCmd(client *docmind.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()
		return healthMsg{online: client.Health(ctx) == nil}
	}
}

// downloadCmd retrieves a document and writes it to the download
// directory. The write is atomic so a failed download never leaves a
// truncated file behind.
func downloadCmd(client *docmind.Client, path, name, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), backgroundTimeout)
		defer cancel()

		data, err := client.Download(ctx, path)
		if err != nil {
			return downloadMsg{name: name, err: err}
		}

		dest := filepath.Join(dir, name)
		if err := util.AtomicWriteFile(dest, data, 0o644); err != nil {
			return downloadMsg{name: name, err: err}
		}
		return downloadMsg{name: name, dest: dest}
	}
}
