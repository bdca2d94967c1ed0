package astro

import (
	"math"
	"testing"
)

func TestFormatDegrees(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{10.5, `10° 30' 0.00"`},
		{-10.5, `-10° 30' 0.00"`},
		{0, `0° 0' 0.00"`},
		{-0.5, `-0° 30' 0.00"`},
		{28.02618312616128, `28° 1' 34.26"`},
		{359.9999999, `360° 0' 0.00"`}, // seconds round up and carry
		{-1e-9, `0° 0' 0.00"`},         // rounds to zero, no sign
		{90, `90° 0' 0.00"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatDegrees(tt.in); got != tt.want {
				t.Errorf("FormatDegrees(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{7.755262833828566, "7h 45m 18.95s"},
		{0, "0h 0m 0.00s"},
		{23.5, "23h 30m 0.00s"},
		{-1.25, "-1h 15m 0.00s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatHours(tt.in); got != tt.want {
				t.Errorf("FormatHours(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatRightAscension(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{7.755262833828566, "7h 45m 18.95s"},
		{23.5, "23h 30m 0.00s"},
		{23.9999999, "0h 0m 0.00s"}, // carries to 24h and folds to 0h
		{23.99, "23h 59m 24.00s"},
		{0, "0h 0m 0.00s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatRightAscension(tt.in); got != tt.want {
				t.Errorf("FormatRightAscension(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
	if got := FormatRightAscension(math.NaN()); got != "NaN" {
		t.Errorf("FormatRightAscension(NaN) = %q, want NaN", got)
	}
}

func TestFormat_NonFinite(t *testing.T) {
	if got := FormatDegrees(math.NaN()); got != "NaN" {
		t.Errorf("FormatDegrees(NaN) = %q, want NaN", got)
	}
	if got := FormatHours(math.Inf(1)); got != "+Inf" {
		t.Errorf("FormatHours(+Inf) = %q, want +Inf", got)
	}
}
