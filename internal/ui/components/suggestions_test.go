// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
)

func TestSuggestionBar_Select(t *testing.T) {
	bar := NewSuggestionBar(nil)
	bar.SetQuestions([]string{"İzin süresi nedir?", "Mesai saatleri nelerdir?"})

	testCases := []struct {
		name string
		n    int
		want string
	}{
		{"first chip", 1, "İzin süresi nedir?"},
		{"second chip", 2, "Mesai saatleri nelerdir?"},
		{"zero out of range", 0, ""},
		{"past end", 3, ""},
		{"negative", -1, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := bar.Select(tc.n); got != tc.want {
				t.Errorf("Select(%d) = %q, want %q", tc.n, got, tc.want)
			}
		})
	}
}

func TestSuggestionBar_EmptyRendersNothing(t *testing.T) {
	bar := NewSuggestionBar(nil)
	if out := bar.View(); out != "" {
		t.Errorf("View() = %q for empty bar, want empty", out)
	}
	if bar.HasSuggestions() {
		t.Error("HasSuggestions() = true for empty bar")
	}
}

func TestSuggestionBar_ViewContainsNumbers(t *testing.T) {
	bar := NewSuggestionBar(nil)
	bar.SetWidth(120)
	bar.SetQuestions([]string{"İzin süresi nedir?", "Mesai saatleri nelerdir?"})

	out := bar.View()
	if !strings.Contains(out, "[1]") || !strings.Contains(out, "[2]") {
		t.Errorf("View() missing chip numbers: %q", out)
	}
}

func TestFmtNumber(t *testing.T) {
	testCases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tc := range testCases {
		if got := fmtNumber(tc.n); got != tc.want {
			t.Errorf("fmtNumber(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}
