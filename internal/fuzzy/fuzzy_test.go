package fuzzy

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"kanäle", "kanale", 1}, // rune-aware
	}
	for _, tt := range tests {
		if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio("abc", "abc"); got != 100 {
		t.Errorf("identical Ratio = %d", got)
	}
	if got := Ratio("", ""); got != 100 {
		t.Errorf("empty Ratio = %d", got)
	}
	if got := Ratio("abcd", "wxyz"); got != 0 {
		t.Errorf("disjoint Ratio = %d", got)
	}
}

func TestPartialRatio_ContainedSubstring(t *testing.T) {
	// A heading wrapped in markup still scores a perfect partial match.
	if got := PartialRatio("**customer segments:**", "customer segments"); got != 100 {
		t.Errorf("PartialRatio = %d, want 100", got)
	}
	if got := PartialRatio("customer segments", "1. customer segments and their needs"); got != 100 {
		t.Errorf("PartialRatio = %d, want 100", got)
	}
}

func TestPartialRatio_NearMiss(t *testing.T) {
	if got := PartialRatio("customer segmants", "customer segments"); got < 80 {
		t.Errorf("one-typo heading scored %d, want >= 80", got)
	}
	if got := PartialRatio("revenue streams", "customer segments"); got >= 80 {
		t.Errorf("unrelated heading scored %d, want < 80", got)
	}
}

func TestPartialRatio_Empty(t *testing.T) {
	if got := PartialRatio("", "customer segments"); got != 0 {
		t.Errorf("PartialRatio with empty input = %d", got)
	}
}
