// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package quality classifies answering-service responses as answered
// or unanswered and decides whether citations are surfaced.
//
// The service reports reliability three ways: a coarse quality level, a
// numeric confidence score, and (least reliably) canned "could not
// find" phrasing inside the answer text itself. Any one signal marks
// the answer unanswered. The phrase matching is brittle by nature, so
// the conditions are kept as a pluggable predicate set rather than
// inlined strings; a structured service-side flag could replace a
// predicate without touching the callers.
//
// The same filter gates the statistics feed's top questions before
// they are offered as quick suggestions, with a stricter bar: the
// stored answer must also meet a minimum length, since a suggestion
// must be reliably answerable.
package quality
