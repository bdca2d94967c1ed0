// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-coords/internal/convert"
	"github.com/litescript/ls-coords/internal/export"
	"github.com/litescript/ls-coords/internal/logging"
	"github.com/litescript/ls-coords/internal/obliquity"
	"github.com/litescript/ls-coords/internal/version"
)

// ViewMode represents the current conversion direction.
type ViewMode int

const (
	ViewEclToEq ViewMode = iota
	ViewEqToEcl
)

// TickMsg refreshes the conversion epoch.
type TickMsg time.Time

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	converter *convert.Converter
	logger    *logging.Logger
	notation  export.Notation

	// Equinox in use; custom is set while a configured fixed obliquity is active.
	equinox obliquity.Equinox
	custom  bool

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	epoch    time.Time
	pinned   bool // epoch set explicitly; ticks leave it alone

	// Sub-models
	eclForm FormModel
	eqForm  FormModel
}

// New creates a new root UI model converting with provider.
func New(provider obliquity.Provider, notation export.Notation, logger *logging.Logger) Model {
	if logger == nil {
		logger = logging.Discard()
	}

	equinox, err := obliquity.ParseEquinox(provider.Name())
	custom := err != nil

	return Model{
		converter: convert.New(provider, logger),
		logger:    logger,
		notation:  notation,
		equinox:   equinox,
		custom:    custom,
		viewMode:  ViewEclToEq,
		epoch:     time.Now().UTC(),
		eclForm:   NewFormModel("λ longitude (deg)", "β latitude (deg)"),
		eqForm:    NewFormModel("α right ascension (h)", "δ declination (deg)"),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "m":
			// Toggle conversion direction
			m.viewMode = (m.viewMode + 1) % 2

		case "e":
			m = m.cycleEquinox()

		default:
			m.updateActiveForm(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case TickMsg:
		if !m.pinned {
			m.epoch = time.Time(msg).UTC()
		}
		cmds = append(cmds, tickCmd())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) cycleEquinox() Model {
	next := m.equinox.Next()
	if m.custom {
		// Leave the configured obliquity for the first named equinox.
		next = obliquity.EquinoxJ2000
		m.custom = false
	}
	m.equinox = next
	m.converter = convert.New(obliquity.ForEquinox(next), m.logger)
	m.logger.Debug("equinox switched to %s", next)
	return m
}

func (m *Model) updateActiveForm(msg tea.KeyMsg) {
	switch m.viewMode {
	case ViewEclToEq:
		m.eclForm = m.eclForm.Update(msg)
	case ViewEqToEcl:
		m.eqForm = m.eqForm.Update(msg)
	}
}

// SetEpoch pins the epoch used for date-dependent obliquity.
func (m *Model) SetEpoch(t time.Time) {
	m.epoch = t.UTC()
	m.pinned = true
}

// Equinox returns the name of the obliquity source in use.
func (m Model) Equinox() string {
	return m.converter.Provider().Name()
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewEqToEcl:
		content = m.renderEqToEcl()
	default:
		content = m.renderEclToEq()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := "ls-coords"

	var b strings.Builder
	b.WriteString("\n  ")
	runes := []rune(title)
	for col, r := range runes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColor(col, len(runes)))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  ecliptic ⇄ equator · v%s", version.Version)))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

// gradientColor blends purple into cyan across width columns.
func gradientColor(col, width int) string {
	t := 0.0
	if width > 1 {
		t = float64(col) / float64(width-1)
	}
	r := 139 + t*(34-139)
	g := 92 + t*(211-92)
	b := 246 + t*(238-246)
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return int(v)
	}
}

func (m Model) renderTabs() string {
	tabs := []string{"Ecliptical → Equatorial", "Equatorial → Ecliptical"}

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeTabStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, mutedStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	status := accentStyle.Render("ε "+m.Equinox()) +
		mutedStyle.Render(" @ "+m.epoch.Format("2006-01-02 15:04:05Z"))
	help := mutedStyle.Render("tab: field | e: equinox | m: direction | esc: clear | q: quit")
	return "  " + status + "  " + mutedStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
