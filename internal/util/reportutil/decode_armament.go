package reportutil

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/warmail-statistics/backend-next/internal/model"
)

// DecodeArmamentBuffs decodes the semicolon-separated id_value buff field. Duplicate
// ids have their magnitudes summed since the raw format may split one logical buff
// across segments. A missing or malformed magnitude still records the id at zero;
// only an unparsable id skips the segment. Output is sorted ascending by id.
func DecodeArmamentBuffs(raw string) ([]model.ArmamentBuff, int) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []model.ArmamentBuff{}, 0
	}

	skipped := 0
	sums := map[int64]float64{}
	for _, segment := range strings.Split(raw, ";") {
		parts := strings.SplitN(strings.TrimSpace(segment), "_", 2)
		id, ok := parseFiniteInt(parts[0])
		if !ok {
			skipped++
			continue
		}

		value := 0.0
		if len(parts) == 2 {
			if parsed, ok := parseFiniteNumber(parts[1]); ok {
				value = parsed
			}
		}
		sums[id] += value
	}

	buffs := lo.MapToSlice(sums, func(id int64, value float64) model.ArmamentBuff {
		return model.ArmamentBuff{ID: id, Value: value}
	})
	sort.Slice(buffs, func(i, j int) bool {
		return buffs[i].ID < buffs[j].ID
	})
	return buffs, skipped
}
