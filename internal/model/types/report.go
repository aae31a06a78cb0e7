package types

// BattleReportDoc is the raw battle-report mail document as read from the document
// store. Every field is produced by an external, uncontrolled game client and must be
// treated as possibly absent or malformed; normalization decodes what it can and
// skips the rest.
type BattleReportDoc struct {
	RecordID             string       `json:"recordId"`
	PrimaryCommanderID   int64        `json:"primaryCommanderId"`
	SecondaryCommanderID int64        `json:"secondaryCommanderId"`
	EmittedAt            RawTimestamp `json:"emittedAt"`

	// Equipment holds brace-wrapped comma-separated slot:itemId[_craftLevel][:attr]
	// segments; ArmamentBuffs and Inscriptions hold semicolon-separated lists.
	Equipment     string `json:"equipment"`
	ArmamentBuffs string `json:"armamentBuffs"`
	Inscriptions  string `json:"inscriptions"`

	Kills           int64 `json:"kills"`
	Deaths          int64 `json:"deaths"`
	SeverelyWounded int64 `json:"severelyWounded"`
	Wounded         int64 `json:"wounded"`

	EnemyKills           int64 `json:"enemyKills"`
	EnemyDeaths          int64 `json:"enemyDeaths"`
	EnemySeverelyWounded int64 `json:"enemySeverelyWounded"`
	EnemyWounded         int64 `json:"enemyWounded"`
}
