package model

// TrendDirection declares which movement of a counter is considered an improvement.
type TrendDirection int

const (
	PreferIncrease TrendDirection = iota
	PreferDecrease
)

// TrendKind tags the outcome of a period-over-period comparison. NotApplicable covers
// every case without a usable baseline, so a 0% result always means an actual flat
// movement and never "unknown".
type TrendKind int

const (
	TrendNotApplicable TrendKind = iota
	TrendFlat
	TrendFavorable
	TrendUnfavorable
)

// TrendResult is the classified movement of a counter against its previous-period
// baseline. Percent is only meaningful for TrendFavorable and TrendUnfavorable.
type TrendResult struct {
	Kind    TrendKind `json:"kind"`
	Percent float64   `json:"percent"`
}
