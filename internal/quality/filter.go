// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package quality classifies answering-service responses.
package quality

import (
	"regexp"
	"strings"

	"github.com/morganforge/documind-tui/internal/util"
)

// =============================================================================
// ANSWER PAYLOAD
// =============================================================================

// Answer is the slice of a service response the filter inspects.
type Answer struct {
	Text         string
	Confidence   float64
	QualityLevel string
}

// =============================================================================
// PREDICATES
// =============================================================================

// Predicate reports whether an answer should be treated as unanswered.
type Predicate func(Answer) bool

// LowConfidenceThreshold marks answers at or below this score unanswered.
const LowConfidenceThreshold = 0.3

// MinSuggestionAnswerLen is the minimum stored-answer length (in runes)
// for a top question to qualify as a suggestion.
const MinSuggestionAnswerLen = 50

// unansweredLevels are the service quality labels that always mean "no
// usable answer". Matched exactly, as received.
var unansweredLevels = map[string]struct{}{
	"Bilgi Yok":   {},
	"Düşük Güven": {},
	"Hata":        {},
}

// fallbackPhrases are canned fragments the service embeds in answers it
// could not ground in a document. Case-sensitive substring match, as
// received.
var fallbackPhrases = []string{
	"kesin bilgi bulunamadı",
	"spesifik bir soru sormayı deneyebilirsiniz",
	"sorunuzu işlerken bir hata oluştu",
}

// suggestionPhrases extend fallbackPhrases when screening the
// statistics feed for suggestion chips.
var suggestionPhrases = []string{
	"yeterli bilgi bulunamadı",
	"Yeterince detaylı yanıt alınamadı",
	"Lütfen daha spesifik soru sorun",
}

// UnansweredLevel reports whether the quality label belongs to the
// fixed unanswered set.
func UnansweredLevel(a Answer) bool {
	_, ok := unansweredLevels[a.QualityLevel]
	return ok
}

// LowConfidence reports whether the confidence score is at or below
// the threshold.
func LowConfidence(a Answer) bool {
	return a.Confidence <= LowConfidenceThreshold
}

// ContainsFallbackPhrase reports whether the answer text contains any
// canned "could not find" phrase.
func ContainsFallbackPhrase(a Answer) bool {
	for _, phrase := range fallbackPhrases {
		if strings.Contains(a.Text, phrase) {
			return true
		}
	}
	return false
}

// =============================================================================
// FILTER
// =============================================================================

// Filter decides whether an answer is substantive. Any predicate
// returning true marks the answer unanswered.
type Filter struct {
	predicates []Predicate
}

// NewFilter builds a filter from the given predicates.
func NewFilter(predicates ...Predicate) *Filter {
	return &Filter{predicates: predicates}
}

// DefaultFilter returns the filter matching the service's observed
// signals: unanswered quality labels, low confidence, canned phrases.
func DefaultFilter() *Filter {
	return NewFilter(UnansweredLevel, LowConfidence, ContainsFallbackPhrase)
}

// Answered reports whether the answer passes every predicate.
func (f *Filter) Answered(a Answer) bool {
	for _, p := range f.predicates {
		if p(a) {
			return false
		}
	}
	return true
}

// Citations returns the source tokens to display for an answer:
// nil when the answer is unanswered (regardless of what the service
// returned in its sources field), otherwise the tokens deduplicated in
// first-seen order.
func (f *Filter) Citations(a Answer, sources []string) []string {
	if !f.Answered(a) {
		return nil
	}
	return Dedupe(sources)
}

// SuggestionOK reports whether a statistics-feed entry is reliable
// enough to offer as a quick suggestion. Stricter than Answered: the
// stored answer must also meet a minimum length and avoid the extended
// phrase set.
func (f *Filter) SuggestionOK(question, answer string) bool {
	if strings.TrimSpace(question) == "" {
		return false
	}
	if util.RuneLen(answer) < MinSuggestionAnswerLen {
		return false
	}
	if !f.Answered(Answer{Text: answer, Confidence: 1, QualityLevel: ""}) {
		return false
	}
	for _, phrase := range suggestionPhrases {
		if strings.Contains(answer, phrase) {
			return false
		}
	}
	return true
}

// topicTag matches the bracketed topic prefix some statistics-feed
// questions carry, e.g. "[izin] İzin süresi nedir?".
var topicTag = regexp.MustCompile(`\[[^\]]*\]`)

// StripTopic removes bracketed topic tags from a question and trims
// the surrounding whitespace. Questions without tags pass through
// unchanged.
func StripTopic(question string) string {
	return strings.TrimSpace(topicTag.ReplaceAllString(question, ""))
}

// Dedupe removes duplicate tokens preserving first-seen order. A nil
// or empty input yields nil.
func Dedupe(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
