package obliquity

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/litescript/ls-coords/internal/astro"
)

func TestParseEquinox(t *testing.T) {
	tests := []struct {
		input    string
		expected Equinox
	}{
		{"j2000", EquinoxJ2000},
		{"J2000.0", EquinoxJ2000},
		{"", EquinoxJ2000}, // default
		{"b1950", EquinoxB1950},
		{"mean", EquinoxMean},
		{"date", EquinoxMean},
		{"TRUE", EquinoxTrue},
		{" apparent ", EquinoxTrue},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseEquinox(tc.input)
			if err != nil {
				t.Fatalf("ParseEquinox(%q) error: %v", tc.input, err)
			}
			if got != tc.expected {
				t.Errorf("ParseEquinox(%q) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}

func TestParseEquinox_Unknown(t *testing.T) {
	_, err := ParseEquinox("j1900")
	if !errors.Is(err, ErrUnknownEquinox) {
		t.Errorf("err = %v, want ErrUnknownEquinox", err)
	}
}

func TestEquinoxString(t *testing.T) {
	tests := []struct {
		equinox  Equinox
		expected string
	}{
		{EquinoxJ2000, "j2000"},
		{EquinoxB1950, "b1950"},
		{EquinoxMean, "mean"},
		{EquinoxTrue, "true"},
		{Equinox(99), "unknown"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			if got := tc.equinox.String(); got != tc.expected {
				t.Errorf("Equinox(%d).String() = %q, want %q", tc.equinox, got, tc.expected)
			}
		})
	}
}

func TestEquinoxNext_Cycles(t *testing.T) {
	e := EquinoxJ2000
	seen := map[Equinox]bool{}
	for i := 0; i < 4; i++ {
		seen[e] = true
		e = e.Next()
	}
	if e != EquinoxJ2000 {
		t.Errorf("after four steps got %v, want j2000", e)
	}
	if len(seen) != 4 {
		t.Errorf("cycle visited %d equinoxes, want 4", len(seen))
	}
}

func TestForEquinox_Fixed(t *testing.T) {
	anyTime := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	if got := ForEquinox(EquinoxJ2000).Obliquity(anyTime); got != astro.ObliquityJ2000 {
		t.Errorf("J2000 obliquity = %v, want %v", got, astro.ObliquityJ2000)
	}
	if got := ForEquinox(EquinoxB1950).Obliquity(anyTime); got != astro.ObliquityB1950 {
		t.Errorf("B1950 obliquity = %v, want %v", got, astro.ObliquityB1950)
	}
	if got := ForEquinox(EquinoxB1950).Name(); got != "b1950" {
		t.Errorf("B1950 name = %q", got)
	}
}

func TestFixed_Name(t *testing.T) {
	if got := (Fixed{Degrees: 23.5}).Name(); got != "fixed 23.5000000°" {
		t.Errorf("Name() = %q", got)
	}
	if got := (Fixed{Label: "custom", Degrees: 23.5}).Name(); got != "custom" {
		t.Errorf("Name() = %q", got)
	}
}

func TestMeanObliquity(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want float64
		tol  float64
	}{
		{
			name: "J2000 epoch",
			time: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			want: astro.ObliquityJ2000,
			tol:  1e-6,
		},
		{
			// JD 2433282.4235
			name: "B1950 epoch",
			time: time.Date(1949, 12, 31, 22, 9, 50, 400000000, time.UTC),
			want: astro.ObliquityB1950,
			tol:  1e-5,
		},
		{
			// Meeus example 22.a: ε₀ = 23°26′27.407″
			name: "1987 April 10",
			time: time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC),
			want: 23.4409464,
			tol:  1e-6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeanObliquity(tt.time)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("MeanObliquity() = %v, want %v (±%v)", got, tt.want, tt.tol)
			}
			if p := (MeanProvider{}).Obliquity(tt.time); p != got {
				t.Errorf("MeanProvider = %v, MeanObliquity = %v", p, got)
			}
		})
	}
}

func TestTrueObliquity_Meeus22a(t *testing.T) {
	when := time.Date(1987, 4, 10, 0, 0, 0, 0, time.UTC)

	// Δε = +9.443″, ε = 23°26′36.850″
	if got, want := NutationInObliquity(when), 9.443/3600; math.Abs(got-want) > 1e-5 {
		t.Errorf("NutationInObliquity() = %v, want %v", got, want)
	}
	if got, want := TrueObliquity(when), 23.4435694; math.Abs(got-want) > 1e-5 {
		t.Errorf("TrueObliquity() = %v, want %v", got, want)
	}
	if got := (TrueProvider{}).Obliquity(when); got != TrueObliquity(when) {
		t.Errorf("TrueProvider = %v, want %v", got, TrueObliquity(when))
	}
	sum := MeanObliquity(when) + NutationInObliquity(when)
	if math.Abs(sum-TrueObliquity(when)) > 1e-12 {
		t.Errorf("mean + Δε = %v, true = %v", sum, TrueObliquity(when))
	}
}

func TestProviderNames(t *testing.T) {
	for _, e := range []Equinox{EquinoxJ2000, EquinoxB1950, EquinoxMean, EquinoxTrue} {
		if got := ForEquinox(e).Name(); got != e.String() {
			t.Errorf("ForEquinox(%v).Name() = %q", e, got)
		}
	}
}
