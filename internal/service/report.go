package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/warmail-statistics/backend-next/internal/app/appconfig"
	"github.com/warmail-statistics/backend-next/internal/model"
	"github.com/warmail-statistics/backend-next/internal/model/types"
	"github.com/warmail-statistics/backend-next/internal/pkg/cache"
	"github.com/warmail-statistics/backend-next/internal/pkg/observability"
	"github.com/warmail-statistics/backend-next/internal/util"
	"github.com/warmail-statistics/backend-next/internal/util/reportutil"
)

type Report struct {
	Config *appconfig.Config

	normalized *cache.Keyed[model.BattleRecord]
}

func NewReport(config *appconfig.Config) *Report {
	return &Report{
		Config:     config,
		normalized: cache.NewKeyed[model.BattleRecord]("normalizedRecord"),
	}
}

// Normalize turns one raw report document into a BattleRecord: embedded micro-format
// fields decoded, the timestamp reduced to canonical unix milliseconds, and counters
// lifted into PeriodTotals. Normalization is pure per document, so results for
// documents carrying a record id are memoized.
func (s *Report) Normalize(ctx context.Context, doc *types.BattleReportDoc) *model.BattleRecord {
	if doc == nil {
		return nil
	}

	if doc.RecordID != "" {
		var record model.BattleRecord
		err := s.normalized.MutexGetSet(doc.RecordID, &record, func() (model.BattleRecord, error) {
			return s.normalize(doc), nil
		}, s.Config.NormalizedRecordTTL)
		if err == nil {
			return &record
		}
	}

	record := s.normalize(doc)
	return &record
}

// NormalizeAll normalizes a batch, dropping nil documents. Malformed content inside
// a document never drops the record itself.
func (s *Report) NormalizeAll(ctx context.Context, docs []*types.BattleReportDoc) []*model.BattleRecord {
	return lo.FilterMap(docs, func(doc *types.BattleReportDoc, _ int) (*model.BattleRecord, bool) {
		record := s.Normalize(ctx, doc)
		return record, record != nil
	})
}

func (s *Report) normalize(doc *types.BattleReportDoc) model.BattleRecord {
	equipment, skippedEquipment := reportutil.DecodeEquipmentTokens(doc.Equipment)
	buffs, skippedBuffs := reportutil.DecodeArmamentBuffs(doc.ArmamentBuffs)
	inscriptions, skippedInscriptions := reportutil.DecodeInscriptionIDs(doc.Inscriptions)

	observability.ReportSkippedSegments.WithLabelValues("equipment").Add(float64(skippedEquipment))
	observability.ReportSkippedSegments.WithLabelValues("armament").Add(float64(skippedBuffs))
	observability.ReportSkippedSegments.WithLabelValues("inscription").Add(float64(skippedInscriptions))

	emittedAt := util.NormalizeUnixMilli(doc.EmittedAt.Float64())
	if !emittedAt.Valid {
		observability.ReportInvalidTimestamps.Inc()
	}

	if skipped := skippedEquipment + skippedBuffs + skippedInscriptions; skipped > 0 {
		log.Debug().
			Str("recordId", doc.RecordID).
			Int("skippedSegments", skipped).
			Msg("skipped malformed segments while normalizing report")
	}

	return model.BattleRecord{
		RecordID: doc.RecordID,
		Pairing: model.PairingKey{
			PrimaryCommanderID:   doc.PrimaryCommanderID,
			SecondaryCommanderID: doc.SecondaryCommanderID,
		},
		EmittedAt: emittedAt,
		Totals: model.PeriodTotals{
			Kills:           doc.Kills,
			Deaths:          doc.Deaths,
			SeverelyWounded: doc.SeverelyWounded,
			Wounded:         doc.Wounded,

			EnemyKills:           doc.EnemyKills,
			EnemyDeaths:          doc.EnemyDeaths,
			EnemySeverelyWounded: doc.EnemySeverelyWounded,
			EnemyWounded:         doc.EnemyWounded,
		},
		Equipment:    equipment,
		Buffs:        buffs,
		Inscriptions: inscriptions,
	}
}
