package service

import (
	"context"
	"sort"
	"time"

	linq "github.com/ahmetb/go-linq/v3"
	"github.com/samber/lo"

	"github.com/warmail-statistics/backend-next/internal/app/appconfig"
	"github.com/warmail-statistics/backend-next/internal/constant"
	"github.com/warmail-statistics/backend-next/internal/model"
	"github.com/warmail-statistics/backend-next/internal/pkg/errors"
	"github.com/warmail-statistics/backend-next/internal/pkg/observability"
)

type Rollup struct {
	Config *appconfig.Config
}

func NewRollup(config *appconfig.Config) *Rollup {
	return &Rollup{
		Config: config,
	}
}

// PairingAggregates builds one aggregate per pairing observed in the half-open
// current window. The equally-sized immediately-preceding window supplies the trend
// baseline; a pairing without previous-window history gets valid zero totals, while a
// pairing absent from the current window is never emitted. Records outside both
// windows, and records whose timestamp failed normalization, are ignored. Output
// ordering is deterministic regardless of input order: pairing rows sort by primary
// then secondary commander id, monthly buckets ascend by month key.
func (s *Rollup) PairingAggregates(ctx context.Context, records []*model.BattleRecord, currentWindow *model.TimeRange) ([]*model.PairingAggregate, error) {
	if currentWindow == nil || currentWindow.StartTime == nil || currentWindow.EndTime == nil {
		return nil, errors.ErrInvalidRequest.WithMessage("rollup requires a bounded current window")
	}
	if s.Config.MaxRollupRecords > 0 && len(records) > s.Config.MaxRollupRecords {
		return nil, errors.ErrInvalidRequest.WithMessage("rollup window carries %d records, exceeding the limit of %d", len(records), s.Config.MaxRollupRecords)
	}

	start := time.Now()
	defer func() {
		observability.RollupCalcDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	}()

	previousWindow := currentWindow.Previous()

	current := recordsInWindow(records, currentWindow)
	previous := recordsInWindow(records, previousWindow)

	currentByPairing := lo.GroupBy(current, func(record *model.BattleRecord) model.PairingKey {
		return record.Pairing
	})
	previousByPairing := lo.GroupBy(previous, func(record *model.BattleRecord) model.PairingKey {
		return record.Pairing
	})

	aggregates := make([]*model.PairingAggregate, 0, len(currentByPairing))
	for pairing, group := range currentByPairing {
		aggregate := &model.PairingAggregate{
			Pairing: pairing,
			Count:   len(group),
			Totals:  sumTotals(group),
			Monthly: monthlyAggregates(group),
		}
		if previousGroup, ok := previousByPairing[pairing]; ok {
			aggregate.PreviousCount = len(previousGroup)
			aggregate.PreviousTotals = sumTotals(previousGroup)
		}
		aggregates = append(aggregates, aggregate)
	}

	sorted := make([]*model.PairingAggregate, 0, len(aggregates))
	linq.From(aggregates).
		SortT(func(a, b *model.PairingAggregate) bool {
			if a.Pairing.PrimaryCommanderID != b.Pairing.PrimaryCommanderID {
				return a.Pairing.PrimaryCommanderID < b.Pairing.PrimaryCommanderID
			}
			return a.Pairing.SecondaryCommanderID < b.Pairing.SecondaryCommanderID
		}).
		ToSlice(&sorted)
	return sorted, nil
}

func recordsInWindow(records []*model.BattleRecord, window *model.TimeRange) []*model.BattleRecord {
	return lo.Filter(records, func(record *model.BattleRecord, _ int) bool {
		return record != nil && record.EmittedAt.Valid && window.IncludesMilli(record.EmittedAt.Int64)
	})
}

func sumTotals(records []*model.BattleRecord) model.PeriodTotals {
	totals := model.PeriodTotals{}
	for _, record := range records {
		totals = totals.Add(record.Totals)
	}
	return totals
}

func monthlyAggregates(records []*model.BattleRecord) []model.MonthlyAggregate {
	byMonth := lo.GroupBy(records, func(record *model.BattleRecord) string {
		return time.UnixMilli(record.EmittedAt.Int64).UTC().Format(constant.MonthKeyLayout)
	})

	monthly := lo.MapToSlice(byMonth, func(monthKey string, group []*model.BattleRecord) model.MonthlyAggregate {
		return model.MonthlyAggregate{
			MonthKey: monthKey,
			Count:    len(group),
			Totals:   sumTotals(group),
		}
	})
	sort.Slice(monthly, func(i, j int) bool {
		return monthly[i].MonthKey < monthly[j].MonthKey
	})
	return monthly
}
