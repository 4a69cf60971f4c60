// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view and its request lifecycle.
//
// This file holds the cancel function for the in-flight answer request.
// The function is set from the update loop but invoked contexts may be
// touched from request goroutines, so access is mutex-protected.
package chat

import (
	"context"
	"sync"
)

// =============================================================================
// CANCEL FUNCTION MANAGEMENT (THREAD-SAFE)
// =============================================================================

// cancelManager guards the cancel function of the in-flight request.
// IMPORTANT: held as a pointer in the Model so the mutex is never copied.
type cancelManager struct {
	mu         sync.Mutex
	cancelFunc context.CancelFunc
}

func newCancelManager() *cancelManager {
	return &cancelManager{}
}

// set stores the cancel function for a newly started request.
func (cm *cancelManager) set(fn context.CancelFunc) {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.cancelFunc = fn
}

// clear cancels the stored context (if any) and drops the function.
// Always cancelling prevents context leaks. Safe to call repeatedly.
func (cm *cancelManager) clear() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	if cm.cancelFunc != nil {
		cm.cancelFunc()
		cm.cancelFunc = nil
	}
}

// =============================================================================
// MODEL METHODS (CONVENIENCE WRAPPERS)
// =============================================================================

// setCancelFunc stores the cancel function for the current request.
func (m *Model) setCancelFunc(fn context.CancelFunc) {
	m.cancelMgr.set(fn)
}

// clearCancelFunc cancels the in-flight request's context and clears it.
func (m *Model) clearCancelFunc() {
	m.cancelMgr.clear()
}
