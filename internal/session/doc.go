// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides the anonymous session identity.
//
// The identity is a process-lifetime opaque string created once at
// startup and sent as the correlation key with every answering-service
// and statistics-service call. It needs no server-side lookup to
// create, has no expiry, and is never persisted.
//
// # Format
//
//	user_<unix-millis>_<9-char random suffix>
//
// The time component makes identifiers sortable in server logs; the
// random suffix makes collisions implausible at practical scale.
package session
