package service

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"

	"github.com/warmail-statistics/backend-next/internal/app/appconfig"
	"github.com/warmail-statistics/backend-next/internal/model"
)

func testConfig() *appconfig.Config {
	return &appconfig.Config{
		ConfigSpec: appconfig.ConfigSpec{
			MaxRollupRecords:    1000,
			DefaultPageSize:     20,
			MaxPageSize:         100,
			NormalizedRecordTTL: time.Minute,
		},
	}
}

func testRecord(id string, primary, secondary int64, emittedAt time.Time, kills int64) *model.BattleRecord {
	return &model.BattleRecord{
		RecordID: id,
		Pairing: model.PairingKey{
			PrimaryCommanderID:   primary,
			SecondaryCommanderID: secondary,
		},
		EmittedAt: null.IntFrom(emittedAt.UnixMilli()),
		Totals: model.PeriodTotals{
			Kills:  kills,
			Deaths: 1,
		},
	}
}

func testWindow(start, end time.Time) *model.TimeRange {
	return &model.TimeRange{StartTime: &start, EndTime: &end}
}

func TestRollupPairingAggregates(t *testing.T) {
	rollup := NewRollup(testConfig())

	// current window spans February and March 2024; the derived previous window is
	// the 60 days before it
	windowStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	window := testWindow(windowStart, windowEnd)

	records := []*model.BattleRecord{
		testRecord("r1", 1, 2, time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC), 10),
		testRecord("r2", 1, 2, time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC), 20),
		testRecord("r3", 3, 4, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), 7),

		// previous-window history for (1,2) only
		testRecord("r4", 1, 2, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), 5),
		// pairing observed only in the previous window must not be emitted
		testRecord("r5", 5, 6, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 99),
		// outside both windows
		testRecord("r6", 1, 2, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), 1000),
		// invalid timestamp is ignored
		{
			RecordID: "r7",
			Pairing:  model.PairingKey{PrimaryCommanderID: 1, SecondaryCommanderID: 2},
			Totals:   model.PeriodTotals{Kills: 1000},
		},
	}

	aggregates, err := rollup.PairingAggregates(context.Background(), records, window)
	require.NoError(t, err)
	require.Len(t, aggregates, 2)

	first := aggregates[0]
	assert.Equal(t, model.PairingKey{PrimaryCommanderID: 1, SecondaryCommanderID: 2}, first.Pairing)
	assert.Equal(t, 2, first.Count)
	assert.Equal(t, int64(30), first.Totals.Kills)
	assert.Equal(t, int64(2), first.Totals.Deaths)
	assert.Equal(t, 1, first.PreviousCount)
	assert.Equal(t, int64(5), first.PreviousTotals.Kills)
	require.Len(t, first.Monthly, 2)
	assert.Equal(t, "2024-02", first.Monthly[0].MonthKey)
	assert.Equal(t, 1, first.Monthly[0].Count)
	assert.Equal(t, int64(10), first.Monthly[0].Totals.Kills)
	assert.Equal(t, "2024-03", first.Monthly[1].MonthKey)

	second := aggregates[1]
	assert.Equal(t, model.PairingKey{PrimaryCommanderID: 3, SecondaryCommanderID: 4}, second.Pairing)
	assert.Equal(t, 1, second.Count)
	// no previous-window history still yields a valid zero baseline
	assert.Zero(t, second.PreviousCount)
	assert.Equal(t, model.PeriodTotals{}, second.PreviousTotals)
	require.Len(t, second.Monthly, 1)
	assert.Equal(t, "2024-02", second.Monthly[0].MonthKey)
}

func TestRollupDeterministicOrdering(t *testing.T) {
	rollup := NewRollup(testConfig())

	windowStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	window := testWindow(windowStart, windowEnd)

	records := []*model.BattleRecord{
		testRecord("a", 9, 1, time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), 1),
		testRecord("b", 2, 8, time.Date(2024, 2, 4, 0, 0, 0, 0, time.UTC), 2),
		testRecord("c", 2, 3, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), 3),
		testRecord("d", 9, 1, time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC), 4),
	}

	forward, err := rollup.PairingAggregates(context.Background(), records, window)
	require.NoError(t, err)

	reversed, err := rollup.PairingAggregates(context.Background(), lo.Reverse(append([]*model.BattleRecord{}, records...)), window)
	require.NoError(t, err)

	assert.Equal(t, forward, reversed)

	require.Len(t, forward, 3)
	assert.Equal(t, model.PairingKey{PrimaryCommanderID: 2, SecondaryCommanderID: 3}, forward[0].Pairing)
	assert.Equal(t, model.PairingKey{PrimaryCommanderID: 2, SecondaryCommanderID: 8}, forward[1].Pairing)
	assert.Equal(t, model.PairingKey{PrimaryCommanderID: 9, SecondaryCommanderID: 1}, forward[2].Pairing)
}

func TestRollupRejectsUnboundedInput(t *testing.T) {
	conf := testConfig()
	conf.MaxRollupRecords = 2
	rollup := NewRollup(conf)

	windowStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	records := []*model.BattleRecord{
		testRecord("a", 1, 2, windowStart, 1),
		testRecord("b", 1, 2, windowStart, 1),
		testRecord("c", 1, 2, windowStart, 1),
	}

	_, err := rollup.PairingAggregates(context.Background(), records, testWindow(windowStart, windowEnd))
	assert.Error(t, err)
}

func TestRollupRequiresBoundedWindow(t *testing.T) {
	rollup := NewRollup(testConfig())

	_, err := rollup.PairingAggregates(context.Background(), nil, nil)
	assert.Error(t, err)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err = rollup.PairingAggregates(context.Background(), nil, &model.TimeRange{StartTime: &start})
	assert.Error(t, err)
}

func TestRollupEmptyInput(t *testing.T) {
	rollup := NewRollup(testConfig())

	windowStart := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	aggregates, err := rollup.PairingAggregates(context.Background(), nil, testWindow(windowStart, windowEnd))
	require.NoError(t, err)
	assert.Empty(t, aggregates)
}
