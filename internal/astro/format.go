package astro

import (
	"fmt"
	"math"
)

// secondsPrecision is the number of decimals printed for seconds.
const secondsPrecision = 2

// sexagesimal is a value split into a sign and three non-negative parts.
type sexagesimal struct {
	neg     bool
	whole   int64
	minutes int64
	seconds float64
}

// splitSexagesimal splits v into whole units, minutes and seconds.
// Seconds are rounded half away from zero to secondsPrecision decimals and
// any carry is pushed into minutes and whole units.
func splitSexagesimal(v float64) sexagesimal {
	neg := v < 0
	a := math.Abs(v)

	whole := math.Floor(a)
	minF := (a - whole) * 60
	minutes := math.Floor(minF)
	scale := math.Pow10(secondsPrecision)
	seconds := math.Round((minF-minutes)*60*scale) / scale

	if seconds >= 60 {
		seconds -= 60
		minutes++
	}
	if minutes >= 60 {
		minutes -= 60
		whole++
	}

	s := sexagesimal{
		neg:     neg,
		whole:   int64(whole),
		minutes: int64(minutes),
		seconds: seconds,
	}
	if s.whole == 0 && s.minutes == 0 && s.seconds == 0 {
		s.neg = false
	}
	return s
}

func (s sexagesimal) sign() string {
	if s.neg {
		return "-"
	}
	return ""
}

// FormatDegrees renders an angle in degrees as degrees, minutes and seconds,
// e.g. 10.5 → `10° 30' 0.00"` and -10.5 → `-10° 30' 0.00"`.
func FormatDegrees(deg float64) string {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return fmt.Sprint(deg)
	}
	s := splitSexagesimal(deg)
	return fmt.Sprintf("%s%d° %d' %.*f\"", s.sign(), s.whole, s.minutes, secondsPrecision, s.seconds)
}

// FormatHours renders a value in hours as hours, minutes and seconds,
// e.g. 7.755262 → "7h 45m 18.95s".
func FormatHours(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return fmt.Sprint(hours)
	}
	return splitSexagesimal(hours).hours()
}

// FormatRightAscension is FormatHours for a right ascension in [0, 24):
// a value that rounds up to 24h is shown as 0h.
func FormatRightAscension(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return fmt.Sprint(hours)
	}
	s := splitSexagesimal(hours)
	if !s.neg && s.whole >= 24 {
		s.whole -= 24
	}
	return s.hours()
}

func (s sexagesimal) hours() string {
	return fmt.Sprintf("%s%dh %dm %.*fs", s.sign(), s.whole, s.minutes, secondsPrecision, s.seconds)
}
