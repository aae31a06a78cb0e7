package model

// ArmamentBuff is a percentage-style buff magnitude. The raw format may split one
// logical buff across repeated segments; decoded buffs carry the summed magnitude.
type ArmamentBuff struct {
	ID    int64   `json:"id"`
	Value float64 `json:"value"`
}
