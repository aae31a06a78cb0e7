package util

import (
	"math"
	"strconv"
	"strings"

	"gopkg.in/guregu/null.v3"

	"github.com/warmail-statistics/backend-next/internal/constant"
)

// NormalizeUnixMilli converts a raw epoch number of ambiguous magnitude into unix
// milliseconds. The branch order over the absolute value is contractual and must not
// be reordered: >= 1e17 is nanoseconds, >= 1e14 is microseconds, < 1e12 is seconds,
// and the remaining band is already milliseconds. All conversions truncate toward
// zero. Non-finite input and values not representable as int64 yield an invalid
// result, never zero.
func NormalizeUnixMilli(raw float64) null.Int {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return null.NewInt(0, false)
	}

	abs := math.Abs(raw)
	var milli float64
	switch {
	case abs >= constant.NanosecondMagnitudeThreshold:
		milli = math.Trunc(raw / 1e6)
	case abs >= constant.MicrosecondMagnitudeThreshold:
		milli = math.Trunc(raw / 1e3)
	case abs < constant.MillisecondMagnitudeThreshold:
		milli = math.Trunc(raw * 1000)
	default:
		milli = math.Trunc(raw)
	}

	if milli < math.MinInt64 || milli >= math.MaxInt64 {
		return null.NewInt(0, false)
	}
	return null.IntFrom(int64(milli))
}

// FormatDurationBetween renders the distance between two raw epoch values as e.g.
// "1d 2h 3m 4s", emitting only non-zero units. Either endpoint failing normalization,
// or an end before the start, yields the zero-duration display "0s" rather than a
// negative or NaN rendering.
func FormatDurationBetween(rawStart, rawEnd float64) string {
	start := NormalizeUnixMilli(rawStart)
	end := NormalizeUnixMilli(rawEnd)
	if !start.Valid || !end.Valid {
		return "0s"
	}

	seconds := (end.Int64 - start.Int64) / 1000
	if seconds < 0 {
		seconds = 0
	}

	units := []struct {
		amount int64
		suffix string
	}{
		{seconds / 86400, "d"},
		{seconds % 86400 / 3600, "h"},
		{seconds % 3600 / 60, "m"},
		{seconds % 60, "s"},
	}

	parts := make([]string, 0, len(units))
	for _, unit := range units {
		if unit.amount > 0 {
			parts = append(parts, strconv.FormatInt(unit.amount, 10)+unit.suffix)
		}
	}
	if len(parts) == 0 {
		return "0s"
	}
	return strings.Join(parts, " ")
}
