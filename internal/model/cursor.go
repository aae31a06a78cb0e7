package model

// Cursor marks the last served item of a descending (SortKey, TiebreakID) scan.
// SortKey is a canonical unix-millisecond timestamp; TiebreakID disambiguates records
// sharing the same sort key.
type Cursor struct {
	SortKey    int64  `json:"t"`
	TiebreakID string `json:"id"`
}

// Admits reports whether a record at (sortKey, tiebreakID) belongs to the pages after
// the cursor, i.e. whether the pair is strictly less than the cursor's pair under
// descending order. Records equal to the cursor position are excluded, which keeps
// resumed scans free of duplicates even when many records share one sort key.
func (c Cursor) Admits(sortKey int64, tiebreakID string) bool {
	if sortKey != c.SortKey {
		return sortKey < c.SortKey
	}
	return tiebreakID < c.TiebreakID
}
