package types

import (
	"math"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

// RawTimestamp adapts the document store's heterogeneous timestamp encodings into one
// plain numeric form before normalization: plain numbers, numeric strings, RFC3339
// strings, and extended-JSON date wrappers ({"$date": ...}, optionally with a nested
// {"$numberLong": ...}). Decoding never fails; unrecognized shapes yield an invalid
// value so downstream code renders an explicit placeholder instead of a false epoch
// date.
type RawTimestamp struct {
	value float64
	valid bool
}

func NewRawTimestamp(value float64) RawTimestamp {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return RawTimestamp{}
	}
	return RawTimestamp{value: value, valid: true}
}

func (t RawTimestamp) Valid() bool {
	return t.valid
}

// Float64 returns the raw numeric value, or NaN when the source shape was not
// recognized, so that feeding it to the normalizer yields the invalid sentinel.
func (t RawTimestamp) Float64() float64 {
	if !t.valid {
		return math.NaN()
	}
	return t.value
}

func (t *RawTimestamp) UnmarshalJSON(data []byte) error {
	*t = rawTimestampFromResult(gjson.ParseBytes(data))
	return nil
}

func rawTimestampFromResult(r gjson.Result) RawTimestamp {
	switch r.Type {
	case gjson.Number:
		return NewRawTimestamp(r.Float())
	case gjson.String:
		if f, err := strconv.ParseFloat(r.Str, 64); err == nil {
			return NewRawTimestamp(f)
		}
		if parsed, err := time.Parse(time.RFC3339, r.Str); err == nil {
			return NewRawTimestamp(float64(parsed.UnixMilli()))
		}
	case gjson.JSON:
		if date := r.Get("$date"); date.Exists() {
			if numberLong := date.Get("$numberLong"); numberLong.Exists() {
				return rawTimestampFromResult(numberLong)
			}
			return rawTimestampFromResult(date)
		}
	}
	return RawTimestamp{}
}
