package model

import (
	"strconv"
	"time"
)

// TimeRange is a half-open [StartTime, EndTime) window bounding which records
// participate in an aggregation period.
type TimeRange struct {
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
}

func (tr *TimeRange) String() string {
	return strconv.FormatInt(tr.StartTime.UnixMilli(), 10) + "-" + strconv.FormatInt(tr.EndTime.UnixMilli(), 10)
}

// IncludesMilli reports half-open membership of a canonical unix-millisecond instant.
func (tr *TimeRange) IncludesMilli(milli int64) bool {
	if tr.StartTime != nil && milli < tr.StartTime.UnixMilli() {
		return false
	}
	if tr.EndTime != nil && milli >= tr.EndTime.UnixMilli() {
		return false
	}
	return true
}

// Previous returns the equally-sized window immediately preceding tr, used as the
// trend comparison baseline.
func (tr *TimeRange) Previous() *TimeRange {
	if tr.StartTime == nil || tr.EndTime == nil {
		return nil
	}
	length := tr.EndTime.Sub(*tr.StartTime)
	start := tr.StartTime.Add(-length)
	end := *tr.StartTime
	return &TimeRange{
		StartTime: &start,
		EndTime:   &end,
	}
}
