package model

import (
	"gopkg.in/guregu/null.v3"
)

// EquipmentToken is one decoded gear piece of a report participant. At most one token
// exists per slot within one participant.
type EquipmentToken struct {
	Slot       int64    `json:"slot"`
	ItemID     int64    `json:"itemId"`
	CraftLevel null.Int `json:"craftLevel,omitempty"`
	Attr       null.Int `json:"attr,omitempty"`
}

// EquipmentTalent is the unpacked view of an EquipmentToken attr: the display tier and
// whether the item carries the special talent upgrade.
type EquipmentTalent struct {
	Tier          null.Int `json:"tier"`
	SpecialTalent bool     `json:"specialTalent"`
}
