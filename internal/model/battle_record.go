package model

import (
	"gopkg.in/guregu/null.v3"
)

// PairingKey identifies one army composition as an ordered pair of commander ids.
type PairingKey struct {
	PrimaryCommanderID   int64 `json:"primaryCommanderId"`
	SecondaryCommanderID int64 `json:"secondaryCommanderId"`
}

// BattleRecord is one fully normalized battle-report mail: embedded micro-format
// fields decoded into typed values and the timestamp reduced to canonical unix
// milliseconds. EmittedAt is invalid (not zero) when the raw timestamp could not be
// normalized.
type BattleRecord struct {
	RecordID  string     `json:"recordId"`
	Pairing   PairingKey `json:"pairing"`
	EmittedAt null.Int   `json:"emittedAt"`

	Totals       PeriodTotals     `json:"totals"`
	Equipment    []EquipmentToken `json:"equipment"`
	Buffs        []ArmamentBuff   `json:"buffs"`
	Inscriptions []int64          `json:"inscriptions"`
}
