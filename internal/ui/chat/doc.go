// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat implements the conversation view and its request
// lifecycle.
//
// The model moves through three states:
//
//	Idle -> Sending -> Delivering -> Idle
//
// Sending covers the window between submitting a question and showing
// its answer; Delivering covers the progressive reveal of the answer
// text. Only one request is in flight at a time: submits while busy are
// rejected, not queued. Cancellation is only possible from Sending and
// works through a generation counter: every submit, cancel, and clear
// bumps the generation, and messages tagged with a stale generation are
// silently discarded.
//
// All state lives in the Model and is mutated exclusively from the
// Bubble Tea update loop.
package chat
