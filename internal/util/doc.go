// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the documind-tui application.
//
// This package contains common helper functions used throughout the
// application for string manipulation and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: display-width aware truncation with ellipsis (CJK safe)
//   - PrefixRunes: UTF-8 safe prefix used by the progressive reveal
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync, used when
//     saving downloaded documents to disk
package util
