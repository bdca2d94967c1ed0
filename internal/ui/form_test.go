package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFormModel_Editing(t *testing.T) {
	tests := []struct {
		name  string
		input []tea.KeyMsg
		want  string
	}{
		{"digits", []tea.KeyMsg{keys("123")}, "123"},
		{"one decimal point", []tea.KeyMsg{keys("1.2.3")}, "1.23"},
		{"leading sign only", []tea.KeyMsg{keys("-1-2")}, "-12"},
		{"letters ignored", []tea.KeyMsg{keys("1a2")}, "12"},
		{"backspace", []tea.KeyMsg{keys("123"), {Type: tea.KeyBackspace}}, "12"},
		{"backspace on empty", []tea.KeyMsg{{Type: tea.KeyBackspace}}, ""},
		{"length capped", []tea.KeyMsg{keys("12345678901234567890")}, "1234567890123456"},
		{"escape clears", []tea.KeyMsg{keys("12"), {Type: tea.KeyEsc}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFormModel("a", "b")
			for _, k := range tt.input {
				f = f.Update(k)
			}
			if got := f.Value(0); got != tt.want {
				t.Errorf("Value(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormModel_FocusAndValues(t *testing.T) {
	f := NewFormModel("a", "b")
	f = f.Update(keys("10.5"))

	if _, _, ok := f.Values(); ok {
		t.Error("Values should not be ok with an empty second field")
	}

	f = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.Focus() != 1 {
		t.Fatalf("Focus() = %d, want 1", f.Focus())
	}
	f = f.Update(keys("-3"))

	a, b, ok := f.Values()
	if !ok || a != 10.5 || b != -3 {
		t.Errorf("Values() = %v, %v, %v", a, b, ok)
	}

	f = f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.Focus() != 0 {
		t.Errorf("Focus() after shift+tab = %d, want 0", f.Focus())
	}
}

func TestFormModel_IncompleteNumber(t *testing.T) {
	f := NewFormModel("a", "b")
	f = f.Update(keys("-"))
	f = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f = f.Update(keys("5"))

	if _, _, ok := f.Values(); ok {
		t.Error("a lone sign should not parse")
	}
}
