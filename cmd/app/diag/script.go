package diag

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/rs/zerolog/log"

	"github.com/warmail-statistics/backend-next/internal/model"
	"github.com/warmail-statistics/backend-next/internal/model/types"
	"github.com/warmail-statistics/backend-next/internal/util"
)

func readDocs(path string) ([]*types.BattleReportDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open report document export")
	}
	defer f.Close()

	docs := make([]*types.BattleReportDoc, 0)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var doc types.BattleReportDoc
		if err := json.Unmarshal(line, &doc); err != nil {
			log.Warn().Err(err).Msg("skipping undecodable report document line")
			continue
		}
		if doc.RecordID == "" {
			doc.RecordID = xid.New().String()
		}
		docs = append(docs, &doc)
	}
	return docs, errors.Wrap(scanner.Err(), "failed to read report document export")
}

func runNormalize(deps commandDeps, path string) error {
	docs, err := readDocs(path)
	if err != nil {
		return err
	}

	records := deps.Report.NormalizeAll(context.Background(), docs)

	out := json.NewEncoder(os.Stdout)
	for _, record := range records {
		if err := out.Encode(record); err != nil {
			return errors.Wrap(err, "failed to encode normalized record")
		}
	}
	log.Info().Int("documents", len(docs)).Int("records", len(records)).Msg("normalized report documents")
	return nil
}

func runPreviewRollup(deps commandDeps, path string, rawStart, rawEnd float64) error {
	startMilli := util.NormalizeUnixMilli(rawStart)
	endMilli := util.NormalizeUnixMilli(rawEnd)
	if !startMilli.Valid || !endMilli.Valid {
		return errors.New("window bounds failed timestamp normalization")
	}
	start := time.UnixMilli(startMilli.Int64).UTC()
	end := time.UnixMilli(endMilli.Int64).UTC()
	window := &model.TimeRange{StartTime: &start, EndTime: &end}

	docs, err := readDocs(path)
	if err != nil {
		return err
	}

	records := deps.Report.NormalizeAll(context.Background(), docs)
	aggregates, err := deps.Rollup.PairingAggregates(context.Background(), records, window)
	if err != nil {
		return err
	}

	if deps.Config.DevMode {
		spew.Dump(aggregates)
		return nil
	}
	return errors.Wrap(json.NewEncoder(os.Stdout).Encode(aggregates), "failed to encode aggregates")
}
