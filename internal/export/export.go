// Package export renders conversions as JSON documents and text tables.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/litescript/ls-coords/internal/astro"
	"github.com/litescript/ls-coords/internal/convert"
)

// Notation selects how angles are written.
type Notation int

const (
	// NotationPlain writes 10° 30' 0.00" and 7h 45m 18.95s.
	NotationPlain Notation = iota
	// NotationSexa writes 10°30′0.00″ and 7ʰ45ᵐ18.95ˢ.
	NotationSexa
)

// ParseNotation parses "plain" or "sexa"; anything else is plain.
func ParseNotation(s string) Notation {
	if strings.ToLower(s) == "sexa" {
		return NotationSexa
	}
	return NotationPlain
}

func (n Notation) String() string {
	if n == NotationSexa {
		return "sexa"
	}
	return "plain"
}

// FormatAngle writes deg in the notation.
func (n Notation) FormatAngle(deg float64) string {
	if n == NotationSexa {
		return fmt.Sprintf("%.2s", sexa.FmtAngle(unit.AngleFromDeg(deg)))
	}
	return astro.FormatDegrees(deg)
}

// FormatRA writes a right ascension given in hours.
func (n Notation) FormatRA(hours float64) string {
	if n == NotationSexa {
		return fmt.Sprintf("%.2s", sexa.FmtRA(unit.RAFromHour(hours)))
	}
	return astro.FormatRightAscension(hours)
}

// ConversionExport is the JSON-serializable representation of a batch of conversions.
type ConversionExport struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Notation    string           `json:"notation"`
	Conversions []ConversionItem `json:"conversions"`
}

// ConversionItem is a JSON-friendly single conversion.
type ConversionItem struct {
	Longitude      float64   `json:"ecliptic_longitude_deg"`
	Latitude       float64   `json:"ecliptic_latitude_deg"`
	RightAscension float64   `json:"right_ascension_hours"`
	Declination    float64   `json:"declination_deg"`
	Obliquity      float64   `json:"obliquity_deg"`
	Equinox        string    `json:"equinox"`
	Epoch          time.Time `json:"epoch"`
	RAText         string    `json:"right_ascension"`
	DecText        string    `json:"declination"`
}

// ExportConversions converts conversions to an exportable format.
func ExportConversions(conversions []convert.Conversion, n Notation, generatedAt time.Time) *ConversionExport {
	export := &ConversionExport{
		GeneratedAt: generatedAt,
		Notation:    n.String(),
		Conversions: make([]ConversionItem, 0, len(conversions)),
	}
	for _, c := range conversions {
		export.Conversions = append(export.Conversions, ConversionItem{
			Longitude:      c.Ecliptical.Longitude(),
			Latitude:       c.Ecliptical.Latitude(),
			RightAscension: c.Equatorial.RightAscension(),
			Declination:    c.Equatorial.Declination(),
			Obliquity:      c.ObliquityDeg,
			Equinox:        c.Equinox,
			Epoch:          c.Epoch,
			RAText:         n.FormatRA(c.Equatorial.RightAscension()),
			DecText:        n.FormatAngle(c.Equatorial.Declination()),
		})
	}
	return export
}

// WriteJSON writes the export as JSON to the given writer.
func (e *ConversionExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// InversionItem is a JSON-friendly equatorial → ecliptical conversion.
type InversionItem struct {
	RightAscension float64 `json:"right_ascension_hours"`
	Declination    float64 `json:"declination_deg"`
	Longitude      float64 `json:"ecliptic_longitude_deg"`
	Latitude       float64 `json:"ecliptic_latitude_deg"`
	Obliquity      float64 `json:"obliquity_deg"`
	Equinox        string  `json:"equinox"`
	LonText        string  `json:"ecliptic_longitude"`
	LatText        string  `json:"ecliptic_latitude"`
}

// WriteInversionJSON writes a single inversion as JSON.
func WriteInversionJSON(w io.Writer, inv convert.Inversion, n Notation) error {
	item := InversionItem{
		RightAscension: inv.Equatorial.RightAscension(),
		Declination:    inv.Equatorial.Declination(),
		Longitude:      inv.Ecliptical.Longitude(),
		Latitude:       inv.Ecliptical.Latitude(),
		Obliquity:      inv.ObliquityDeg,
		Equinox:        inv.Equinox,
		LonText:        n.FormatAngle(inv.Ecliptical.Longitude()),
		LatText:        n.FormatAngle(inv.Ecliptical.Latitude()),
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(item)
}

var tableTitleStyle = lipgloss.NewStyle().Bold(true)

// WriteSummaryTable writes a text table of conversions to the given writer.
func WriteSummaryTable(w io.Writer, conversions []convert.Conversion, n Notation) {
	fmt.Fprintln(w, tableTitleStyle.Render("Ecliptical → Equatorial"))
	fmt.Fprintln(w, strings.Repeat("─", 86))

	if len(conversions) == 0 {
		fmt.Fprintln(w, "No conversions")
		return
	}

	fmt.Fprintf(w, "%-11s %-11s %-18s %-18s %-11s %-12s\n",
		"λ (deg)", "β (deg)", "α", "δ", "ε (deg)", "Equinox")
	fmt.Fprintln(w, strings.Repeat("─", 86))

	for _, c := range conversions {
		fmt.Fprintf(w, "%11.6f %11.6f %-18s %-18s %11.7f %-12s\n",
			c.Ecliptical.Longitude(),
			c.Ecliptical.Latitude(),
			n.FormatRA(c.Equatorial.RightAscension()),
			n.FormatAngle(c.Equatorial.Declination()),
			c.ObliquityDeg,
			truncateStr(c.Equinox, 12),
		)
	}

	fmt.Fprintf(w, "\nTotal: %d conversions\n", len(conversions))
}

func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-2]) + ".."
}
