package service

import (
	"context"

	linq "github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/warmail-statistics/backend-next/internal/app/appconfig"
	"github.com/warmail-statistics/backend-next/internal/model"
	"github.com/warmail-statistics/backend-next/internal/pkg/cursor"
)

type Feed struct {
	Config *appconfig.Config
}

func NewFeed(config *appconfig.Config) *Feed {
	return &Feed{
		Config: config,
	}
}

type FeedPage struct {
	Records []*model.BattleRecord `json:"records"`

	// NextCursor is empty on the final page.
	NextCursor string `json:"nextCursor,omitempty"`
}

// Page assembles one page of the descending time-ordered feed. Records are ordered by
// (EmittedAt, RecordID) descending; a non-empty rawCursor resumes strictly after the
// encoded position, so ties on the sort key neither duplicate nor skip records across
// pages. Records whose timestamp failed normalization cannot be ordered and are left
// out. A malformed cursor surfaces errors.ErrInvalidCursor to the caller.
func (s *Feed) Page(ctx context.Context, records []*model.BattleRecord, rawCursor string, limit int) (*FeedPage, error) {
	var after *model.Cursor
	if rawCursor != "" {
		decoded, err := cursor.Decode(rawCursor)
		if err != nil {
			return nil, err
		}
		after = &decoded
	}

	if limit <= 0 {
		limit = s.Config.DefaultPageSize
	}
	if limit > s.Config.MaxPageSize {
		limit = s.Config.MaxPageSize
	}

	ordered := make([]*model.BattleRecord, 0, len(records))
	linq.From(records).
		WhereT(func(record *model.BattleRecord) bool {
			return record != nil && record.EmittedAt.Valid
		}).
		SortT(func(a, b *model.BattleRecord) bool {
			if a.EmittedAt.Int64 != b.EmittedAt.Int64 {
				return a.EmittedAt.Int64 > b.EmittedAt.Int64
			}
			return a.RecordID > b.RecordID
		}).
		ToSlice(&ordered)

	if after != nil {
		ordered = lo.Filter(ordered, func(record *model.BattleRecord, _ int) bool {
			return after.Admits(record.EmittedAt.Int64, record.RecordID)
		})
	}

	page := &FeedPage{Records: ordered}
	if len(ordered) > limit {
		page.Records = ordered[:limit]
		last := page.Records[limit-1]
		page.NextCursor = cursor.Encode(model.Cursor{
			SortKey:    last.EmittedAt.Int64,
			TiebreakID: last.RecordID,
		})
	}
	return page, nil
}
