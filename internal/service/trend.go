package service

import (
	"math"

	"github.com/warmail-statistics/backend-next/internal/constant"
	"github.com/warmail-statistics/backend-next/internal/model"
)

type Trend struct{}

func NewTrend() *Trend {
	return &Trend{}
}

// Compare classifies the movement of value against its previous-period baseline.
// A zero baseline is not comparable: both the zero-to-zero and zero-to-something
// cases come back as not applicable instead of a misleading 0% or an undefined
// percentage. Changes within the flat band are reported as flat at 0.0%; otherwise
// the movement is favorable when its sign matches the preferred direction.
func (s *Trend) Compare(value, previousValue float64, preferred model.TrendDirection) model.TrendResult {
	if previousValue == 0 {
		return model.TrendResult{Kind: model.TrendNotApplicable}
	}

	percent := (value - previousValue) / previousValue * 100
	if math.Abs(percent) < constant.TrendFlatThresholdPercent {
		return model.TrendResult{Kind: model.TrendFlat}
	}

	favorable := (percent > 0 && preferred == model.PreferIncrease) ||
		(percent < 0 && preferred == model.PreferDecrease)
	if favorable {
		return model.TrendResult{Kind: model.TrendFavorable, Percent: percent}
	}
	return model.TrendResult{Kind: model.TrendUnfavorable, Percent: percent}
}
