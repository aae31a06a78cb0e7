package model

// PeriodTotals is the fixed bag of battle counters summed over one period. Combining
// two totals is component-wise addition; the zero value is the valid "no data" total.
type PeriodTotals struct {
	Kills           int64 `json:"kills"`
	Deaths          int64 `json:"deaths"`
	SeverelyWounded int64 `json:"severelyWounded"`
	Wounded         int64 `json:"wounded"`

	EnemyKills           int64 `json:"enemyKills"`
	EnemyDeaths          int64 `json:"enemyDeaths"`
	EnemySeverelyWounded int64 `json:"enemySeverelyWounded"`
	EnemyWounded         int64 `json:"enemyWounded"`
}

func (t PeriodTotals) Add(other PeriodTotals) PeriodTotals {
	return PeriodTotals{
		Kills:           t.Kills + other.Kills,
		Deaths:          t.Deaths + other.Deaths,
		SeverelyWounded: t.SeverelyWounded + other.SeverelyWounded,
		Wounded:         t.Wounded + other.Wounded,

		EnemyKills:           t.EnemyKills + other.EnemyKills,
		EnemyDeaths:          t.EnemyDeaths + other.EnemyDeaths,
		EnemySeverelyWounded: t.EnemySeverelyWounded + other.EnemySeverelyWounded,
		EnemyWounded:         t.EnemyWounded + other.EnemyWounded,
	}
}

// KillDeathRatio is a derived rate and therefore not part of the summed fields.
func (t PeriodTotals) KillDeathRatio() float64 {
	if t.Deaths == 0 {
		return 0
	}
	return float64(t.Kills) / float64(t.Deaths)
}

func (t PeriodTotals) EnemyKillDeathRatio() float64 {
	if t.EnemyDeaths == 0 {
		return 0
	}
	return float64(t.EnemyKills) / float64(t.EnemyDeaths)
}
