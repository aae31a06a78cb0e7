package constant

// Magnitude thresholds telling apart the epoch representations the game client and
// the document store emit. Branch order is contractual: nanoseconds first, then
// microseconds, then seconds, with the remaining band passed through as milliseconds.
const (
	NanosecondMagnitudeThreshold  = 1e17
	MicrosecondMagnitudeThreshold = 1e14
	MillisecondMagnitudeThreshold = 1e12
)

const (
	// MonthKeyLayout renders the UTC year-month bucket key of a monthly aggregate.
	MonthKeyLayout = "2006-01"

	// TrendFlatThresholdPercent is the band within which a period-over-period change
	// is reported as flat rather than as a direction.
	TrendFlatThresholdPercent = 0.05
)
