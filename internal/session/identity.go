// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides the anonymous session identity.
package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// suffixLen is the number of random characters appended to the time
// component.
const suffixLen = 9

// NewID generates a session identifier: a millisecond timestamp plus a
// random suffix, collision-resistant at practical scale.
func NewID() string {
	return newIDAt(time.Now())
}

// newIDAt is split out for tests.
func newIDAt(now time.Time) string {
	u := uuid.New()
	suffix := strings.ReplaceAll(u.String(), "-", "")[:suffixLen]
	return fmt.Sprintf("user_%d_%s", now.UnixMilli(), suffix)
}
