// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides the anonymous session identity.
package session

import (
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestNewID_Format(t *testing.T) {
	id := NewID()

	parts := strings.SplitN(id, "_", 3)
	if len(parts) != 3 {
		t.Fatalf("ID %q does not have three underscore-separated parts", id)
	}
	if parts[0] != "user" {
		t.Errorf("ID prefix = %q, want %q", parts[0], "user")
	}

	millis, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		t.Fatalf("time component %q is not numeric: %v", parts[1], err)
	}
	now := time.Now().UnixMilli()
	if millis < now-60_000 || millis > now+60_000 {
		t.Errorf("time component %d not near current time %d", millis, now)
	}

	if len(parts[2]) != suffixLen {
		t.Errorf("suffix %q has length %d, want %d", parts[2], len(parts[2]), suffixLen)
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate session ID: %s", id)
		}
		seen[id] = true
	}
}

func TestNewIDAt_TimeComponent(t *testing.T) {
	at := time.UnixMilli(1700000000000)
	id := newIDAt(at)
	if !strings.HasPrefix(id, "user_1700000000000_") {
		t.Errorf("ID %q does not embed the given timestamp", id)
	}
}
