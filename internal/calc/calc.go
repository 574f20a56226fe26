// Package calc holds the derived-value calculators: pure functions that
// turn raw form measurements into clinical indices. Inputs arrive as the
// strings the operator typed; anything that does not parse as a positive
// finite number counts as absent. A calculator never errors and never
// substitutes a default — a bad input yields an unavailable Value.
package calc

import (
	"math"
	"strconv"
	"strings"
)

// Value is a computed scalar with an explicit availability flag. The zero
// Value is unavailable.
type Value struct {
	Val float64
	OK  bool
}

// Unavailable is the explicit "cannot compute" result.
func Unavailable() Value { return Value{} }

func available(v float64) Value { return Value{Val: v, OK: true} }

// String renders the value for display, with "N/A" for unavailable.
func (v Value) String() string {
	if !v.OK {
		return "N/A"
	}
	return strconv.FormatFloat(v.Val, 'f', 2, 64)
}

// parsePositive parses a measurement field. Empty, non-numeric,
// non-finite and non-positive inputs all read as absent.
func parsePositive(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0, false
	}
	return f, true
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// EllipsoidVolume computes the volume in milliliters of an ellipsoid from
// its three diameters in millimeters: d1*d2*d3*π/6/1000, rounded to two
// decimals. All three diameters must be present and positive.
func EllipsoidVolume(d1, d2, d3 string) Value {
	a, ok1 := parsePositive(d1)
	b, ok2 := parsePositive(d2)
	c, ok3 := parsePositive(d3)
	if !ok1 || !ok2 || !ok3 {
		return Unavailable()
	}
	return available(round2(a * b * c * math.Pi / 6 / 1000))
}

// AnkleBrachialIndex computes the ABI from the dorsalis pedis and
// posterior tibial ankle pressures and the brachial pressure, all in
// mmHg. The higher of the available ankle pressures is used; an absent
// ankle pressure is ignored. Unavailable when the brachial pressure is
// missing or not positive, or when both ankle pressures are missing.
func AnkleBrachialIndex(dorsalisPedis, posteriorTibial, brachial string) Value {
	arm, ok := parsePositive(brachial)
	if !ok {
		return Unavailable()
	}

	ankle := math.Inf(-1)
	found := false
	if dp, ok := parsePositive(dorsalisPedis); ok {
		ankle = dp
		found = true
	}
	if pt, ok := parsePositive(posteriorTibial); ok && pt > ankle {
		ankle = pt
		found = true
	}
	if !found {
		return Unavailable()
	}
	return available(round2(ankle / arm))
}

// LargestDiameter returns the largest of the given measurements, ignoring
// absent ones. Used to pick the size a follow-up recommendation keys on.
func LargestDiameter(diameters ...string) Value {
	best := math.Inf(-1)
	found := false
	for _, d := range diameters {
		if f, ok := parsePositive(d); ok && f > best {
			best = f
			found = true
		}
	}
	if !found {
		return Unavailable()
	}
	return available(best)
}
