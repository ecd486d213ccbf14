package inventory

// Stat names that equipment may modify.
const (
	StatStrength     = "strength"
	StatDexterity    = "dexterity"
	StatConstitution = "constitution"
	StatIntelligence = "intelligence"
	StatWisdom       = "wisdom"
	StatCharisma     = "charisma"
	StatArmorClass   = "armor_class"
	StatSpeed        = "speed"
	StatAttack       = "attack"
	StatDamage       = "damage"
)

var knownStats = map[string]bool{
	StatStrength:     true,
	StatDexterity:    true,
	StatConstitution: true,
	StatIntelligence: true,
	StatWisdom:       true,
	StatCharisma:     true,
	StatArmorClass:   true,
	StatSpeed:        true,
	StatAttack:       true,
	StatDamage:       true,
}

// IsStat reports whether name is a stat equipment may modify.
func IsStat(name string) bool {
	return knownStats[name]
}
