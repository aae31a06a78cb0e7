package reportutil

import (
	"strings"

	"github.com/warmail-statistics/backend-next/internal/constant"
)

// DecodeInscriptionIDs decodes a semicolon-separated numeric id list. Malformed
// values are skipped and counted; the empty-slot sentinel is dropped silently and
// does not count as malformed.
func DecodeInscriptionIDs(raw string) ([]int64, int) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []int64{}, 0
	}

	skipped := 0
	ids := make([]int64, 0)
	for _, segment := range strings.Split(raw, ";") {
		id, ok := parseFiniteInt(segment)
		if !ok {
			skipped++
			continue
		}
		if id == constant.EmptyInscriptionID {
			continue
		}
		ids = append(ids, id)
	}
	return ids, skipped
}
