package dto

import "testing"

func TestIsClean(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Mi refrigerador no enfría bien", true},
		{"La lavadora hace un ruido extraño al centrifugar", true},
		{"Esto es una mierda", false},
		{"ESTO ES UNA MIERDA", false},
		{"pinche lavadora no sirve", false},
		{"hijo de puta", false},
		{"", true},
		// Substrings inside innocent words must not match.
		{"Tengo una carabina", true},
		{"El computador está dañado", true},
		{"La mamadera del bebé", true},
	}

	for _, tt := range tests {
		if got := IsClean(tt.text); got != tt.want {
			t.Errorf("IsClean(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsCleanAggressive(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Mi refrigerador no enfría bien", true},
		{"", true},
		{"Esto es una mierda", false},
		// Obfuscations the word-boundary matcher misses.
		{"p.u.t.a", false},
		{"putaaa", false},
		{"m-i-e-r-d-a", false},
	}

	for _, tt := range tests {
		if got := IsCleanAggressive(tt.text); got != tt.want {
			t.Errorf("IsCleanAggressive(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"P.U.T.A", "puta"},
		{"holaaa", "hola"},
		{"año 2026", "año"},
	}

	for _, tt := range tests {
		if got := normalizeText(tt.in); got != tt.want {
			t.Errorf("normalizeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
