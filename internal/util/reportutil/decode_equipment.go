package reportutil

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/guregu/null.v3"

	"github.com/warmail-statistics/backend-next/internal/constant"
	"github.com/warmail-statistics/backend-next/internal/model"
)

const equipmentWrapperCutset = "{}[]"

// DecodeEquipmentTokens decodes the compact equipment field: brace-wrapped,
// comma-separated segments of the form slot:itemId[_craftLevel][:attr]. Tokens come
// back in ascending slot order regardless of input order, with the last segment
// winning on duplicate slots. Malformed segments are skipped, not errored on; the
// second return value counts them for diagnostics only. Empty input yields an empty
// sequence.
func DecodeEquipmentTokens(raw string) ([]model.EquipmentToken, int) {
	raw = strings.Trim(strings.TrimSpace(raw), equipmentWrapperCutset)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []model.EquipmentToken{}, 0
	}

	skipped := 0
	bySlot := map[int64]model.EquipmentToken{}
	for _, segment := range strings.Split(raw, ",") {
		token, ok := decodeEquipmentSegment(segment)
		if !ok {
			skipped++
			continue
		}
		bySlot[token.Slot] = token
	}

	tokens := lo.Values(bySlot)
	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].Slot < tokens[j].Slot
	})
	return tokens, skipped
}

func decodeEquipmentSegment(segment string) (model.EquipmentToken, bool) {
	parts := strings.Split(strings.TrimSpace(segment), ":")
	if len(parts) < 2 {
		return model.EquipmentToken{}, false
	}

	slot, ok := parseFiniteInt(parts[0])
	if !ok {
		return model.EquipmentToken{}, false
	}

	idCraft := strings.SplitN(parts[1], "_", 2)
	itemID, ok := parseFiniteInt(idCraft[0])
	if !ok {
		return model.EquipmentToken{}, false
	}

	token := model.EquipmentToken{
		Slot:   slot,
		ItemID: itemID,
	}
	if len(idCraft) == 2 {
		if craftLevel, ok := parseFiniteInt(idCraft[1]); ok {
			token.CraftLevel = null.IntFrom(craftLevel)
		}
	}
	if len(parts) >= 3 {
		if attr, ok := parseFiniteInt(parts[2]); ok {
			token.Attr = null.IntFrom(attr)
		}
	}
	return token, true
}

// DecodeEquipmentAttr unpacks the tier and special talent flag from a token attr.
// Values at or above SpecialTalentAttrBase carry the flag with the tier in the ones
// digit; everything else is the tier itself, clamped to the 0-5 display range. An
// invalid attr yields no tier and no flag.
func DecodeEquipmentAttr(attr null.Int) model.EquipmentTalent {
	if !attr.Valid {
		return model.EquipmentTalent{}
	}

	tier := attr.Int64
	talent := model.EquipmentTalent{}
	if tier >= constant.SpecialTalentAttrBase {
		talent.SpecialTalent = true
		tier %= constant.SpecialTalentAttrBase
	}
	if tier < 0 {
		tier = 0
	}
	if tier > constant.EquipmentTierMax {
		tier = constant.EquipmentTierMax
	}
	talent.Tier = null.IntFrom(tier)
	return talent
}

// EncodeEquipmentTokens renders tokens back into the canonical wire form. Decoding
// the result reproduces the same tokens, which keeps re-encoded payloads stable.
func EncodeEquipmentTokens(tokens []model.EquipmentToken) string {
	segments := lo.Map(tokens, func(token model.EquipmentToken, _ int) string {
		var b strings.Builder
		b.WriteString(strconv.FormatInt(token.Slot, 10))
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(token.ItemID, 10))
		if token.CraftLevel.Valid {
			b.WriteByte('_')
			b.WriteString(strconv.FormatInt(token.CraftLevel.Int64, 10))
		}
		if token.Attr.Valid {
			b.WriteByte(':')
			b.WriteString(strconv.FormatInt(token.Attr.Int64, 10))
		}
		return b.String()
	})
	return "{" + strings.Join(segments, ",") + "}"
}
