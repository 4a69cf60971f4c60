// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package quality classifies answering-service responses.
package quality

import (
	"reflect"
	"strings"
	"testing"
)

// =============================================================================
// CLASSIFICATION TESTS
// =============================================================================

func TestFilter_Answered(t *testing.T) {
	f := DefaultFilter()

	testCases := []struct {
		name     string
		answer   Answer
		expected bool
	}{
		{
			name:     "high confidence ok level",
			answer:   Answer{Text: "Belgeye göre süre 30 gündür.", Confidence: 0.9, QualityLevel: "ok"},
			expected: true,
		},
		{
			name:     "low confidence overrides level",
			answer:   Answer{Text: "Belgeye göre süre 30 gündür.", Confidence: 0.2, QualityLevel: "Yüksek"},
			expected: false,
		},
		{
			name:     "confidence exactly at threshold",
			answer:   Answer{Text: "cevap", Confidence: 0.3, QualityLevel: "ok"},
			expected: false,
		},
		{
			name:     "confidence just above threshold",
			answer:   Answer{Text: "cevap", Confidence: 0.31, QualityLevel: "ok"},
			expected: true,
		},
		{
			name:     "no knowledge level",
			answer:   Answer{Text: "cevap", Confidence: 0.9, QualityLevel: "Bilgi Yok"},
			expected: false,
		},
		{
			name:     "low confidence level",
			answer:   Answer{Text: "cevap", Confidence: 0.9, QualityLevel: "Düşük Güven"},
			expected: false,
		},
		{
			name:     "error level",
			answer:   Answer{Text: "cevap", Confidence: 0.9, QualityLevel: "Hata"},
			expected: false,
		},
		{
			name:     "canned not-found phrase",
			answer:   Answer{Text: "Üzgünüm, kesin bilgi bulunamadı.", Confidence: 0.9, QualityLevel: "ok"},
			expected: false,
		},
		{
			name:     "canned retry phrase",
			answer:   Answer{Text: "Daha spesifik bir soru sormayı deneyebilirsiniz.", Confidence: 0.9, QualityLevel: "ok"},
			expected: false,
		},
		{
			name:     "canned error phrase",
			answer:   Answer{Text: "Maalesef sorunuzu işlerken bir hata oluştu.", Confidence: 0.8, QualityLevel: "ok"},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Answered(tc.answer); got != tc.expected {
				t.Errorf("Answered(%+v) = %v, want %v", tc.answer, got, tc.expected)
			}
		})
	}
}

func TestFilter_PhraseMatchIsCaseSensitive(t *testing.T) {
	f := DefaultFilter()
	// Uppercased variant must not trigger the predicate.
	a := Answer{Text: "KESIN BILGI BULUNAMADI", Confidence: 0.9, QualityLevel: "ok"}
	if !f.Answered(a) {
		t.Error("uppercased phrase should not match the case-sensitive predicate")
	}
}

// =============================================================================
// CITATION TESTS
// =============================================================================

func TestFilter_Citations_SuppressedWhenUnanswered(t *testing.T) {
	f := DefaultFilter()
	a := Answer{Text: "cevap", Confidence: 0.2, QualityLevel: "Yüksek"}

	got := f.Citations(a, []string{"a.pdf", "b.pdf"})
	if got != nil {
		t.Errorf("Citations for unanswered = %v, want nil", got)
	}
}

func TestFilter_Citations_DedupedFirstSeen(t *testing.T) {
	f := DefaultFilter()
	a := Answer{Text: "cevap", Confidence: 0.9, QualityLevel: "ok"}

	got := f.Citations(a, []string{"a.pdf", "a.pdf", "b.pdf"})
	want := []string{"a.pdf", "b.pdf"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Citations = %v, want %v", got, want)
	}
}

func TestDedupe(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, nil},
		{"no duplicates", []string{"a", "b"}, []string{"a", "b"}},
		{"adjacent duplicates", []string{"a", "a", "b"}, []string{"a", "b"}},
		{"scattered duplicates", []string{"a", "b", "a", "c", "b"}, []string{"a", "b", "c"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Dedupe(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Dedupe(%v) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

// =============================================================================
// SUGGESTION SCREENING TESTS
// =============================================================================

func TestFilter_SuggestionOK(t *testing.T) {
	f := DefaultFilter()
	longAnswer := strings.Repeat("Belgeye göre yanıt budur. ", 4) // > 50 runes

	testCases := []struct {
		name     string
		question string
		answer   string
		expected bool
	}{
		{"good entry", "İzin süresi nedir?", longAnswer, true},
		{"short answer", "İzin süresi nedir?", "Kısa yanıt.", false},
		{"empty question", "", longAnswer, false},
		{"extended phrase", "Soru?", longAnswer + " Ancak yeterli bilgi bulunamadı.", false},
		{"detail phrase", "Soru?", longAnswer + " Yeterince detaylı yanıt alınamadı.", false},
		{"base phrase", "Soru?", longAnswer + " kesin bilgi bulunamadı", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.SuggestionOK(tc.question, tc.answer); got != tc.expected {
				t.Errorf("SuggestionOK(%q, ...) = %v, want %v", tc.question, got, tc.expected)
			}
		})
	}
}

func TestStripTopic(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"no tag", "İzin süresi nedir?", "İzin süresi nedir?"},
		{"leading tag", "[izin] İzin süresi nedir?", "İzin süresi nedir?"},
		{"multiple tags", "[mesai][fazla mesai] Mesai ücreti nedir?", "Mesai ücreti nedir?"},
		{"tag only", "[izin]", ""},
		{"inner tag", "İzin [yıllık] süresi?", "İzin  süresi?"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripTopic(tc.input); got != tc.expected {
				t.Errorf("StripTopic(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

// =============================================================================
// PLUGGABILITY TESTS
// =============================================================================

func TestNewFilter_CustomPredicate(t *testing.T) {
	// A structured service-side flag can replace phrase matching
	// without touching the state machine.
	flagged := func(a Answer) bool { return a.QualityLevel == "flagged" }
	f := NewFilter(flagged)

	if f.Answered(Answer{QualityLevel: "flagged", Confidence: 0.9}) {
		t.Error("custom predicate should mark answer unanswered")
	}
	// Canned phrase no longer matters with the default set absent.
	if !f.Answered(Answer{Text: "kesin bilgi bulunamadı", Confidence: 0.1}) {
		t.Error("filter without default predicates should pass this answer")
	}
}
