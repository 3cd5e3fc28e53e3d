package interpreter

import (
	"testing"
	"time"
)

func TestExtractTimeExpression(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"explicit hour and minutes", "reunião amanhã às 14h30", "14h30"},
		{"colon form", "consulta às 9:00 na clínica", "9:00"},
		{"hour only token", "reunião às 14h", "14h"},
		{"às with bare number", "encontro às 15 com o time", "15"},
		{"às with period word", "reunião às tarde", "tarde"},
		{"bare period mention", "tarefa hoje à tarde", "tarde"},
		{"morning period", "entrega de manhã", "manhã"},
		{"amanhã is not manhã", "reunião amanhã", ""},
		{"n horas form", "evento começa 16 horas", "16"},
		{"duration phrase is not a time", "tarefa com duração de 2 horas", ""},
		{"no cue", "reunião com joão", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTimeExpression(tt.input); got != tt.expected {
				t.Errorf("ExtractTimeExpression(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestResolveTime(t *testing.T) {
	now := time.Date(2024, time.December, 2, 10, 37, 0, 0, time.UTC)

	tests := []struct {
		name     string
		expr     string
		hour     int
		minute   int
		explicit bool
	}{
		{"morning canonical", "manhã", 9, 0, true},
		{"afternoon canonical", "tarde", 14, 0, true},
		{"evening canonical", "noite", 19, 0, true},
		{"hour and minutes", "14h30", 14, 30, true},
		{"colon form", "9:00", 9, 0, true},
		{"hour only defaults minutes to zero", "14h", 14, 0, true},
		{"bare hour number", "15", 15, 0, true},
		{"midnight", "0h", 0, 0, true},
		{"hour out of range falls back to clock", "27", 10, 37, false},
		{"empty falls back to clock", "", 10, 37, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTime(tt.expr, now)
			if got.Hour != tt.hour || got.Minute != tt.minute {
				t.Errorf("time = %02d:%02d, want %02d:%02d", got.Hour, got.Minute, tt.hour, tt.minute)
			}
			if got.Explicit != tt.explicit {
				t.Errorf("explicit = %v, want %v", got.Explicit, tt.explicit)
			}
		})
	}
}
