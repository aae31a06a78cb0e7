package reportutil

import (
	"math"
	"strconv"
	"strings"
)

func parseFiniteNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseFiniteInt(s string) (int64, bool) {
	f, ok := parseFiniteNumber(s)
	if !ok {
		return 0, false
	}
	return int64(math.Trunc(f)), true
}
