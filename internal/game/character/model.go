// Package character defines the character snapshot exchanged with callers and
// the pure operations that derive effective stats from it.
package character

import (
	"maps"
	"slices"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/check"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/concentration"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/inventory"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/spells"
)

// Ability names, matching the stat names equipment uses.
const (
	Strength     = inventory.StatStrength
	Dexterity    = inventory.StatDexterity
	Constitution = inventory.StatConstitution
	Intelligence = inventory.StatIntelligence
	Wisdom       = inventory.StatWisdom
	Charisma     = inventory.StatCharisma
)

// Abilities lists the six ability names in sheet order.
var Abilities = []string{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

// AbilityScores holds the six ability score values for a character.
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Modifier returns the ability modifier for a given score: floor((score - 10) / 2).
func (a AbilityScores) Modifier(score int) int {
	return check.AbilityModifier(score)
}

// Score returns the score for ability name, satisfying check.AbilityLookup.
//
// Postcondition: ok is false for names outside Abilities.
func (a AbilityScores) Score(name string) (int, bool) {
	switch name {
	case Strength:
		return a.Strength, true
	case Dexterity:
		return a.Dexterity, true
	case Constitution:
		return a.Constitution, true
	case Intelligence:
		return a.Intelligence, true
	case Wisdom:
		return a.Wisdom, true
	case Charisma:
		return a.Charisma, true
	}
	return 0, false
}

// Add returns a copy of a with delta applied to ability name. Unknown names are ignored.
func (a AbilityScores) Add(name string, delta int) AbilityScores {
	switch name {
	case Strength:
		a.Strength += delta
	case Dexterity:
		a.Dexterity += delta
	case Constitution:
		a.Constitution += delta
	case Intelligence:
		a.Intelligence += delta
	case Wisdom:
		a.Wisdom += delta
	case Charisma:
		a.Charisma += delta
	}
	return a
}

var _ check.AbilityLookup = AbilityScores{}

// Character is the snapshot of one character's rules state. Callers own its
// persistence; every operation here returns a new value rather than mutating.
type Character struct {
	Name             string        `json:"name"`
	Class            string        `json:"class"` // class ID
	Level            int           `json:"level"`
	Experience       int           `json:"experience"`
	Abilities        AbilityScores `json:"abilities"`
	ProficiencyBonus int           `json:"proficiency_bonus"`

	SpellSlots    spells.Slots `json:"spell_slots"`
	MaxSpellSlots spells.Slots `json:"max_spell_slots"`

	CurrentHP int `json:"current_hp"`
	MaxHP     int `json:"max_hp"`

	Concentration concentration.State `json:"concentration"`
	Equipped      inventory.Equipped  `json:"equipped"`
	Inventory     []inventory.Item    `json:"inventory"`
}

// Clone returns a deep copy of c.
func (c Character) Clone() Character {
	out := c
	out.Inventory = slices.Clone(c.Inventory)
	for i := range out.Inventory {
		out.Inventory[i].StatEffects = maps.Clone(out.Inventory[i].StatEffects)
	}
	if c.Equipped != nil {
		out.Equipped = make(inventory.Equipped, len(c.Equipped))
		for slot, it := range c.Equipped {
			it.StatEffects = maps.Clone(it.StatEffects)
			out.Equipped[slot] = it
		}
	}
	return out
}

// EffectiveAbilities returns base ability scores plus the stat effects of all equipped items.
func (c Character) EffectiveAbilities() AbilityScores {
	a := c.Abilities
	for stat, delta := range inventory.AggregateStatEffects(c.Equipped) {
		a = a.Add(stat, delta)
	}
	return a
}

// EffectiveAC returns base plus every equipped armor_class effect.
func (c Character) EffectiveAC(base int) int {
	return base + inventory.AggregateStatEffects(c.Equipped)[inventory.StatArmorClass]
}

// CarriedWeight returns the weight of inventory and equipped items together.
func (c Character) CarriedWeight() float64 {
	return inventory.TotalWeight(c.Inventory, c.Equipped)
}

// Encumbrance classifies CarriedWeight against the effective strength capacity.
func (c Character) Encumbrance() inventory.Encumbrance {
	capacity := inventory.CarryingCapacity(c.EffectiveAbilities().Strength)
	return inventory.EncumbranceLevel(c.CarriedWeight(), capacity)
}

// Equip returns a copy of c with itemID moved from inventory into slot
// (empty slot infers it from the item's equipment type).
func (c Character) Equip(itemID string, slot inventory.Slot) (Character, error) {
	res, err := inventory.Equip(c.Inventory, c.Equipped, itemID, slot)
	if err != nil {
		return c, err
	}
	out := c.Clone()
	out.Inventory = res.Inventory
	out.Equipped = res.Equipped
	return out, nil
}

// Unequip returns a copy of c with the item in slot moved back into inventory.
func (c Character) Unequip(slot inventory.Slot) (Character, error) {
	res, err := inventory.Unequip(c.Inventory, c.Equipped, slot)
	if err != nil {
		return c, err
	}
	out := c.Clone()
	out.Inventory = res.Inventory
	out.Equipped = res.Equipped
	return out, nil
}
