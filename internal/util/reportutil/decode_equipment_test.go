package reportutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/warmail-statistics/backend-next/internal/model"
)

func TestDecodeEquipmentTokens(t *testing.T) {
	type testCase struct {
		name    string
		raw     string
		expect  []model.EquipmentToken
		skipped int
	}

	testCases := []testCase{
		{
			name:   "empty input",
			raw:    "",
			expect: []model.EquipmentToken{},
		},
		{
			name:   "wrapper only",
			raw:    "{}",
			expect: []model.EquipmentToken{},
		},
		{
			name: "full segments",
			raw:  "{1:101_2:15,3:205,2:303_1}",
			expect: []model.EquipmentToken{
				{Slot: 1, ItemID: 101, CraftLevel: null.IntFrom(2), Attr: null.IntFrom(15)},
				{Slot: 2, ItemID: 303, CraftLevel: null.IntFrom(1)},
				{Slot: 3, ItemID: 205},
			},
		},
		{
			name: "out of order input is sorted by slot",
			raw:  "5:500,2:200",
			expect: []model.EquipmentToken{
				{Slot: 2, ItemID: 200},
				{Slot: 5, ItemID: 500},
			},
		},
		{
			name: "malformed segments are skipped, not fatal",
			raw:  "{1:101,x:9,2,3:y,4:400}",
			expect: []model.EquipmentToken{
				{Slot: 1, ItemID: 101},
				{Slot: 4, ItemID: 400},
			},
			skipped: 3,
		},
		{
			name: "duplicate slot last writer wins",
			raw:  "1:101,1:202_3",
			expect: []model.EquipmentToken{
				{Slot: 1, ItemID: 202, CraftLevel: null.IntFrom(3)},
			},
		},
		{
			name: "bracket wrapper and whitespace",
			raw:  "  [ 1:101 , 2:202 ]  ",
			expect: []model.EquipmentToken{
				{Slot: 1, ItemID: 101},
				{Slot: 2, ItemID: 202},
			},
		},
		{
			name: "malformed craft level keeps the token",
			raw:  "1:101_x",
			expect: []model.EquipmentToken{
				{Slot: 1, ItemID: 101},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tokens, skipped := DecodeEquipmentTokens(tc.raw)
			assert.Equal(t, tc.expect, tokens)
			assert.Equal(t, tc.skipped, skipped)
		})
	}
}

func TestDecodeEquipmentTokensIdempotent(t *testing.T) {
	tokens, skipped := DecodeEquipmentTokens("{4:400,1:101_2:15,junk,2:303_1:3}")
	require.Equal(t, 1, skipped)

	reencoded := EncodeEquipmentTokens(tokens)
	redecoded, skipped := DecodeEquipmentTokens(reencoded)
	assert.Zero(t, skipped)
	assert.Equal(t, tokens, redecoded)
}

func TestDecodeEquipmentAttr(t *testing.T) {
	type testCase struct {
		name   string
		attr   null.Int
		expect model.EquipmentTalent
	}

	testCases := []testCase{
		{
			name:   "invalid attr yields no tier and no flag",
			attr:   null.NewInt(0, false),
			expect: model.EquipmentTalent{},
		},
		{
			name:   "plain tier",
			attr:   null.IntFrom(3),
			expect: model.EquipmentTalent{Tier: null.IntFrom(3)},
		},
		{
			name:   "special talent with packed tier",
			attr:   null.IntFrom(12),
			expect: model.EquipmentTalent{Tier: null.IntFrom(2), SpecialTalent: true},
		},
		{
			name:   "special talent at max tier",
			attr:   null.IntFrom(15),
			expect: model.EquipmentTalent{Tier: null.IntFrom(5), SpecialTalent: true},
		},
		{
			name:   "out-of-range tier clamps to display max",
			attr:   null.IntFrom(7),
			expect: model.EquipmentTalent{Tier: null.IntFrom(5)},
		},
		{
			name:   "negative tier clamps to zero",
			attr:   null.IntFrom(-2),
			expect: model.EquipmentTalent{Tier: null.IntFrom(0)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, DecodeEquipmentAttr(tc.attr))
		})
	}
}
