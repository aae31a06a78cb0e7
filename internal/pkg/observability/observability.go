package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "warmailbackend"
)

var (
	ReportSkippedSegments = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "report", "skipped_segments_total"),
		Help: "Malformed segments skipped while decoding embedded report fields",
	}, []string{"decoder"})
	ReportInvalidTimestamps = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "report", "invalid_timestamps_total"),
		Help: "Report timestamps that failed normalization",
	})
	RollupCalcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "rollup", "calc_duration_seconds"),
		Help:    "Duration of pairing rollup calculation in seconds",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	}, []string{})
)
