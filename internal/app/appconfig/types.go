package appconfig

import (
	"time"

	"github.com/warmail-statistics/backend-next/internal/app/appcontext"
)

type ConfigSpec struct {
	// DevMode enables trace-level logging and pretty console output.
	DevMode bool `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to
	// stdout for the ease of log collection.
	LogJsonStdout bool `split_words:"true"`

	// MaxRollupRecords caps how many report records one rollup request may carry.
	// The aggregator is CPU-bound on its input size; callers exceeding the cap get an
	// invalid-request error instead of an unbounded calculation.
	MaxRollupRecords int `split_words:"true" default:"100000"`

	// DefaultPageSize is the feed page size used when the caller does not specify one.
	DefaultPageSize int `split_words:"true" default:"20"`

	// MaxPageSize bounds the feed page size a caller may request.
	MaxPageSize int `split_words:"true" default:"100"`

	// NormalizedRecordTTL is how long a memoized normalization result is kept. Report
	// documents are immutable, so the TTL only bounds memory, not staleness.
	NormalizedRecordTTL time.Duration `split_words:"true" default:"10m"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}
