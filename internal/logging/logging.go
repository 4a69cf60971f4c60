// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package logging provides the file-backed application log.
//
// The TUI owns the terminal, so diagnostics must never be written to
// stdout or stderr while the program runs. Best-effort collaborator
// failures (session registration, remote clear, the statistics and
// listing fetches) are recorded here instead.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// FileName is the log file created under the config directory.
const FileName = "documind.log"

var (
	mu     sync.Mutex
	logger = log.New(io.Discard, "", log.LstdFlags)
	file   *os.File
	path   string
)

// =============================================================================
// LIFECYCLE
// =============================================================================

// Init opens (or creates) the log file under dir and routes subsequent
// records to it. Until Init succeeds, records are discarded.
func Init(dir string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	p := filepath.Join(dir, FileName)
	f, err := os.OpenFile(p, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if file != nil {
		file.Close()
	}
	file = f
	path = p
	logger = log.New(f, "", log.LstdFlags)
	return nil
}

// Close closes the log file and reverts to discarding records. Safe to
// call when Init never ran.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	path = ""
	logger = log.New(io.Discard, "", log.LstdFlags)
}

// Path returns the active log file path, or "" before Init.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return path
}

// =============================================================================
// RECORDING
// =============================================================================

// Errorf records a failure.
func Errorf(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf("ERROR "+format, args...)
}

// Infof records an informational event.
func Infof(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Printf("INFO "+format, args...)
}
