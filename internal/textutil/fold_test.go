package textutil

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases", "Sci-Fi", "sci-fi"},
		{"keeps surrounding whitespace", "  Drama  ", "  drama  "},
		{"empty", "", ""},
		{"whitespace only", "   ", "   "},
		{"non ascii", "FILM NOIR É", "film noir é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.want {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestEqualFold(t *testing.T) {
	if !EqualFold("Inception", "INCEPTION") {
		t.Error("expected case-insensitive match")
	}
	if EqualFold(" Inception", "inception") {
		t.Error("expected stored whitespace to be significant")
	}
	if EqualFold("Inception", "Interstellar") {
		t.Error("expected different titles not to match")
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"sci-fi", "Sci-Fi"},
		{"romantic comedy", "Romantic Comedy"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.input); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
