// Package convert runs coordinate conversions against an obliquity provider.
package convert

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-coords/internal/astro"
	"github.com/litescript/ls-coords/internal/logging"
	"github.com/litescript/ls-coords/internal/obliquity"
)

// Conversion is one ecliptical → equatorial conversion and the obliquity it used.
type Conversion struct {
	Ecliptical   astro.EclipticalCoordinate
	Equatorial   astro.EquatorialCoordinate
	ObliquityDeg float64
	Equinox      string
	Epoch        time.Time
}

// Inversion is one equatorial → ecliptical conversion.
type Inversion struct {
	Equatorial   astro.EquatorialCoordinate
	Ecliptical   astro.EclipticalCoordinate
	ObliquityDeg float64
	Equinox      string
	Epoch        time.Time
}

// Converter converts coordinates using the obliquity of its provider.
type Converter struct {
	provider obliquity.Provider
	logger   *logging.Logger
}

// New creates a converter. A nil logger discards output.
func New(provider obliquity.Provider, logger *logging.Logger) *Converter {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Converter{provider: provider, logger: logger}
}

// Provider returns the obliquity provider in use.
func (c *Converter) Provider() obliquity.Provider {
	return c.provider
}

// Convert converts ecl to equatorial coordinates at epoch t.
func (c *Converter) Convert(ecl astro.EclipticalCoordinate, t time.Time) Conversion {
	eps := c.provider.Obliquity(t)
	eq := ecl.ToEquatorial(eps)

	c.logger.Debug("ecl2eq λ=%.6f β=%.6f ε=%.7f (%s) -> α=%.7fh δ=%.6f",
		ecl.Longitude(), ecl.Latitude(), eps, c.provider.Name(), eq.RightAscension(), eq.Declination())

	return Conversion{
		Ecliptical:   ecl,
		Equatorial:   eq,
		ObliquityDeg: eps,
		Equinox:      c.provider.Name(),
		Epoch:        t,
	}
}

// Invert converts eq to ecliptical coordinates at epoch t.
func (c *Converter) Invert(eq astro.EquatorialCoordinate, t time.Time) Inversion {
	eps := c.provider.Obliquity(t)
	ecl := eq.ToEcliptical(eps)

	c.logger.Debug("eq2ecl α=%.7fh δ=%.6f ε=%.7f (%s) -> λ=%.6f β=%.6f",
		eq.RightAscension(), eq.Declination(), eps, c.provider.Name(), ecl.Longitude(), ecl.Latitude())

	return Inversion{
		Equatorial:   eq,
		Ecliptical:   ecl,
		ObliquityDeg: eps,
		Equinox:      c.provider.Name(),
		Epoch:        t,
	}
}

// ParsePair parses two numbers separated by whitespace and/or a comma.
func ParsePair(line string) (a, b float64, err error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == ';'
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 values, got %d", len(fields))
	}
	if a, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, fmt.Errorf("parse first value: %w", err)
	}
	if b, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, fmt.Errorf("parse second value: %w", err)
	}
	return a, b, nil
}

// ConvertLines reads "longitude latitude" pairs, one per line, and converts
// each. Blank lines and lines starting with # are skipped.
func (c *Converter) ConvertLines(r io.Reader, t time.Time) ([]Conversion, error) {
	var out []Conversion

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lon, lat, err := ParsePair(line)
		if err != nil {
			return out, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, c.Convert(astro.NewEclipticalCoordinate(lon, lat), t))
	}
	if err := scanner.Err(); err != nil {
		return out, fmt.Errorf("read input: %w", err)
	}

	c.logger.Info("converted %d coordinate pairs with %s", len(out), c.provider.Name())
	return out, nil
}
