package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-coords/internal/astro"
)

var (
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("60"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7B2CBF"))

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9D4EDD")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Bold(true)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("57")).
			Padding(0, 2)
)

func (m Model) renderEclToEq() string {
	form := m.eclForm.View()

	lon, lat, ok := m.eclForm.Values()
	if !ok {
		return m.renderPanels(form, mutedStyle.Render("Enter λ and β to convert"))
	}

	c := m.converter.Convert(astro.NewEclipticalCoordinate(lon, lat), m.epoch)
	lines := []string{
		"Input   " + c.Ecliptical.String(),
		resultStyle.Render("α  " + m.notation.FormatRA(c.Equatorial.RightAscension())),
		resultStyle.Render("δ  " + m.notation.FormatAngle(c.Equatorial.Declination())),
		mutedStyle.Render(fmt.Sprintf("α %.7fh  δ %.7f°", c.Equatorial.RightAscension(), c.Equatorial.Declination())),
		mutedStyle.Render(fmt.Sprintf("ε %.7f° (%s)", c.ObliquityDeg, c.Equinox)),
	}
	return m.renderPanels(form, strings.Join(lines, "\n"))
}

func (m Model) renderEqToEcl() string {
	form := m.eqForm.View()

	ra, dec, ok := m.eqForm.Values()
	if !ok {
		return m.renderPanels(form, mutedStyle.Render("Enter α and δ to convert"))
	}

	inv := m.converter.Invert(astro.NewEquatorialCoordinate(ra, dec), m.epoch)
	lines := []string{
		"Input   " + inv.Equatorial.String(),
		resultStyle.Render("λ  " + m.notation.FormatAngle(inv.Ecliptical.Longitude())),
		resultStyle.Render("β  " + m.notation.FormatAngle(inv.Ecliptical.Latitude())),
		mutedStyle.Render(fmt.Sprintf("λ %.7f°  β %.7f°", inv.Ecliptical.Longitude(), inv.Ecliptical.Latitude())),
		mutedStyle.Render(fmt.Sprintf("ε %.7f° (%s)", inv.ObliquityDeg, inv.Equinox)),
	}
	return m.renderPanels(form, strings.Join(lines, "\n"))
}

func (m Model) renderPanels(form, result string) string {
	left := panelStyle.Render(form)
	right := panelStyle.Render(result)
	// Stack when the terminal is too narrow for side by side.
	if m.width > 0 && lipgloss.Width(left)+lipgloss.Width(right)+2 > m.width {
		return lipgloss.JoinVertical(lipgloss.Left, left, right)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}
