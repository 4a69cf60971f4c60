// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package sources resolves citation tokens to display labels and
// download locators.
//
// A citation token is either a bare filename ("notes.txt") or a
// path-like string naming the service's archive folder
// ("saved_pdfs/report.pdf"). Resolution is a pure function of the
// token's shape: the same decision drives both the label shown in the
// transcript and the retrieval route used at download time, so the two
// can never disagree.
//
// A Resolver additionally carries the read-only document listing
// fetched once at startup, used to map keywords to friendly display
// names. The listing is eventually consistent; a failed fetch degrades
// to token-only display.
package sources
