package constant

const (
	// EquipmentSlotMin and EquipmentSlotMax bound the fixed gear positions of a commander.
	EquipmentSlotMin = 1
	EquipmentSlotMax = 8

	// EquipmentTierMax is the highest tier the display layer understands.
	EquipmentTierMax = 5

	// SpecialTalentAttrBase marks attr values carrying the special talent flag,
	// with the actual tier packed into the ones digit.
	SpecialTalentAttrBase = 10

	// EmptyInscriptionID marks an empty inscription slot in the raw payload and is
	// filtered out during decoding, never surfaced as data.
	EmptyInscriptionID = -1
)
