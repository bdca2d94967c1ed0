package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFieldLen bounds the characters accepted by one input field.
const maxFieldLen = 16

// FormModel is a pair of numeric input fields with one focused at a time.
type FormModel struct {
	labels [2]string
	values [2]string
	focus  int
}

// NewFormModel creates a form with the two field labels.
func NewFormModel(first, second string) FormModel {
	return FormModel{labels: [2]string{first, second}}
}

// Update handles field navigation and editing keys.
func (f FormModel) Update(msg tea.KeyMsg) FormModel {
	switch msg.String() {
	case "tab", "shift+tab", "down", "up", "enter":
		f.focus = (f.focus + 1) % 2
	case "backspace":
		v := f.values[f.focus]
		if len(v) > 0 {
			f.values[f.focus] = v[:len(v)-1]
		}
	case "esc":
		f.values = [2]string{}
		f.focus = 0
	default:
		if msg.Type != tea.KeyRunes {
			return f
		}
		for _, r := range msg.Runes {
			f = f.insert(r)
		}
	}
	return f
}

func (f FormModel) insert(r rune) FormModel {
	v := f.values[f.focus]
	if len(v) >= maxFieldLen {
		return f
	}
	switch {
	case r >= '0' && r <= '9':
	case r == '.':
		if strings.ContainsRune(v, '.') {
			return f
		}
	case r == '-' || r == '+':
		if v != "" {
			return f
		}
	default:
		return f
	}
	f.values[f.focus] = v + string(r)
	return f
}

// Focus returns the index of the focused field.
func (f FormModel) Focus() int {
	return f.focus
}

// Value returns the raw text of field i.
func (f FormModel) Value(i int) string {
	return f.values[i]
}

// Values parses both fields. ok is false while either is empty or incomplete.
func (f FormModel) Values() (a, b float64, ok bool) {
	var err error
	if a, err = strconv.ParseFloat(f.values[0], 64); err != nil {
		return 0, 0, false
	}
	if b, err = strconv.ParseFloat(f.values[1], 64); err != nil {
		return 0, 0, false
	}
	return a, b, true
}

// View renders the fields with a cursor on the focused one.
func (f FormModel) View() string {
	var b strings.Builder
	for i, label := range f.labels {
		value := f.values[i]
		if i == f.focus {
			b.WriteString(focusedLabelStyle.Render("▶ " + label))
			b.WriteString("  ")
			b.WriteString(inputStyle.Render(value + "█"))
		} else {
			b.WriteString(labelStyle.Render("  " + label))
			b.WriteString("  ")
			b.WriteString(inputStyle.Render(value))
		}
		b.WriteString("\n")
	}
	return b.String()
}
