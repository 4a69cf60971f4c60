// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndErrorf(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	Errorf("session registration failed: %v", errors.New("connection refused"))

	data, err := os.ReadFile(Path())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "ERROR session registration failed: connection refused") {
		t.Errorf("log file %q missing the recorded failure", string(data))
	}
}

func TestInitCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer Close()

	if Path() != filepath.Join(dir, FileName) {
		t.Errorf("Path() = %q, want file under %q", Path(), dir)
	}
	if _, err := os.Stat(Path()); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestAppendsAcrossInits(t *testing.T) {
	dir := t.TempDir()
	if err := Init(dir); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	Errorf("first")
	Close()

	if err := Init(dir); err != nil {
		t.Fatalf("Re-init failed: %v", err)
	}
	defer Close()
	Errorf("second")

	data, err := os.ReadFile(Path())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file %q did not append across restarts", string(data))
	}
}

func TestDiscardsBeforeInit(t *testing.T) {
	Close()

	// Must not panic and must not create anything.
	Errorf("dropped: %v", errors.New("no sink"))
	Infof("dropped too")

	if Path() != "" {
		t.Errorf("Path() = %q before Init, want empty", Path())
	}
}
