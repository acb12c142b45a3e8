package parser

import (
	"math"
	"strings"
)

// unitToNs maps a lower-cased time unit to its nanosecond multiplier
var unitToNs = map[string]float64{
	"ns": 1,
	"us": 1e3,
	"ms": 1e6,
	"s":  1e9,
}

// Multiplier returns the nanosecond multiplier for a time unit.
// Matching is case-insensitive and unknown units count as nanoseconds.
func Multiplier(unit string) float64 {
	if m, ok := unitToNs[strings.ToLower(unit)]; ok {
		return m
	}
	return 1
}

// ToNanoseconds converts value expressed in unit to whole nanoseconds.
// The fractional part is truncated, never rounded. Results that do not fit
// in an int64 saturate at math.MaxInt64.
func ToNanoseconds(value float64, unit string) int64 {
	ns := value * Multiplier(unit)
	if math.IsNaN(ns) || ns <= 0 {
		return 0
	}
	if ns >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(ns)
}
