package model

// MonthlyAggregate is one UTC year-month bucket of a pairing's current-window records.
type MonthlyAggregate struct {
	MonthKey string       `json:"monthKey"`
	Count    int          `json:"count"`
	Totals   PeriodTotals `json:"totals"`
}

// PairingAggregate is the per-pairing rollup over one aggregation request: counts and
// totals for the current window, the equally-sized preceding window as trend baseline,
// and per-month buckets. It is a derived, disposable view; it is rebuilt from source
// records on every request and never persisted.
type PairingAggregate struct {
	Pairing PairingKey `json:"pairing"`

	Count  int          `json:"count"`
	Totals PeriodTotals `json:"totals"`

	// PreviousCount and PreviousTotals stay at their zero values when the pairing has
	// no previous-window history, which is itself a valid baseline.
	PreviousCount  int          `json:"previousCount"`
	PreviousTotals PeriodTotals `json:"previousTotals"`

	Monthly []MonthlyAggregate `json:"monthly"`
}
