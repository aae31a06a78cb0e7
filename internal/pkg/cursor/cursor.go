package cursor

import (
	"encoding/base64"

	"github.com/goccy/go-json"

	"github.com/warmail-statistics/backend-next/internal/model"
	"github.com/warmail-statistics/backend-next/internal/pkg/errors"
)

// Encode serializes a cursor into its opaque wire form. Equal logical positions
// always produce an identical string, so paginated requests stay cache-friendly.
func Encode(c model.Cursor) string {
	payload, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(payload)
}

// Decode parses an opaque cursor string. Any input that does not round back into
// both fields, or whose sort key is not a valid canonical timestamp, yields
// ErrInvalidCursor; decoding never panics on garbage.
func Decode(raw string) (model.Cursor, error) {
	payload, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return model.Cursor{}, errors.ErrInvalidCursor
	}

	var c model.Cursor
	if err := json.Unmarshal(payload, &c); err != nil {
		return model.Cursor{}, errors.ErrInvalidCursor
	}
	if c.SortKey <= 0 || c.TiebreakID == "" {
		return model.Cursor{}, errors.ErrInvalidCursor
	}
	return c, nil
}
