package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warmail-statistics/backend-next/internal/model"
	"github.com/warmail-statistics/backend-next/internal/pkg/errors"
)

func TestCursorRoundTrip(t *testing.T) {
	original := model.Cursor{SortKey: 1700000000000, TiebreakID: "cl3k9x0aa0001"}

	encoded := Encode(original)
	assert.Equal(t, encoded, Encode(original), "equal positions must encode identically")

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestCursorDecodeInvalid(t *testing.T) {
	invalid := []string{
		"",
		"@@@@",
		"bm90LWpzb24",           // valid base64, not JSON
		"eyJ0IjowLCJpZCI6IngifQ", // zero sort key
		"eyJ0IjoxfQ",            // missing tiebreak id
	}

	for _, raw := range invalid {
		_, err := Decode(raw)
		assert.ErrorIs(t, err, errors.ErrInvalidCursor, "input %q", raw)
	}
}

func TestCursorAdmits(t *testing.T) {
	c := model.Cursor{SortKey: 2000, TiebreakID: "m"}

	assert.True(t, c.Admits(1000, "z"), "older sort key is admitted")
	assert.True(t, c.Admits(2000, "a"), "same sort key with lesser tiebreak is admitted")
	assert.False(t, c.Admits(2000, "m"), "the cursor position itself is excluded")
	assert.False(t, c.Admits(2000, "z"), "same sort key with greater tiebreak is excluded")
	assert.False(t, c.Admits(3000, "a"), "newer sort key is excluded")
}
