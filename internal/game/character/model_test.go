package character_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/character"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/concentration"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/inventory"
)

func scores() character.AbilityScores {
	return character.AbilityScores{Strength: 10, Dexterity: 14, Constitution: 14, Intelligence: 16, Wisdom: 12, Charisma: 8}
}

func TestAbilityScores_Modifier_Floors(t *testing.T) {
	a := scores()
	assert.Equal(t, -1, a.Modifier(9))
	assert.Equal(t, -1, a.Modifier(8))
	assert.Equal(t, 0, a.Modifier(10))
	assert.Equal(t, 3, a.Modifier(16))
}

func TestAbilityScores_Score(t *testing.T) {
	a := scores()
	for name, want := range map[string]int{
		character.Strength: 10, character.Dexterity: 14, character.Constitution: 14,
		character.Intelligence: 16, character.Wisdom: 12, character.Charisma: 8,
	} {
		got, ok := a.Score(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := a.Score("luck")
	assert.False(t, ok)
}

func TestEffectiveAbilities_AddsEquippedEffects(t *testing.T) {
	c := character.Character{
		Abilities: scores(),
		Equipped: inventory.Equipped{
			inventory.SlotHands: {ID: "gauntlets_of_ogre_power", StatEffects: map[string]int{inventory.StatStrength: 4}},
			inventory.SlotHead:  {ID: "helm_of_brilliance", StatEffects: map[string]int{inventory.StatIntelligence: 1, inventory.StatWisdom: 1}},
			inventory.SlotArmor: {ID: "chain_mail", StatEffects: map[string]int{inventory.StatArmorClass: 6}},
		},
	}
	eff := c.EffectiveAbilities()
	assert.Equal(t, 14, eff.Strength)
	assert.Equal(t, 17, eff.Intelligence)
	assert.Equal(t, 13, eff.Wisdom)
	assert.Equal(t, 14, eff.Dexterity)
	assert.Equal(t, 10, c.Abilities.Strength, "base scores untouched")
	assert.Equal(t, 16, c.EffectiveAC(10))
}

func TestCharacter_EquipUnequip(t *testing.T) {
	c := character.Character{
		Abilities: scores(),
		Inventory: []inventory.Item{{ID: "shield", Name: "Shield", Weight: 6, Quantity: 1, EquipmentType: "shield",
			StatEffects: map[string]int{inventory.StatArmorClass: 2}}},
	}
	equipped, err := c.Equip("shield", "")
	require.NoError(t, err)
	assert.Equal(t, 12, equipped.EffectiveAC(10))
	assert.Len(t, c.Inventory, 1, "original snapshot untouched")
	assert.Equal(t, 6.0, equipped.CarriedWeight())

	back, err := equipped.Unequip(inventory.SlotOffHand)
	require.NoError(t, err)
	assert.Equal(t, 10, back.EffectiveAC(10))

	_, err = back.Unequip(inventory.SlotOffHand)
	assert.ErrorIs(t, err, inventory.ErrSlotEmpty)
}

func TestCharacter_Encumbrance_UsesEffectiveStrength(t *testing.T) {
	c := character.Character{
		Abilities: scores(), // strength 10: capacity 150
		Inventory: []inventory.Item{{ID: "rope", Weight: 10, Quantity: 11}},
	}
	assert.Equal(t, inventory.Encumbered, c.Encumbrance())

	c.Equipped = inventory.Equipped{
		inventory.SlotHands: {ID: "gauntlets", Weight: 0, StatEffects: map[string]int{inventory.StatStrength: 4}},
	}
	assert.Equal(t, inventory.Unencumbered, c.Encumbrance())
}

func TestCharacter_JSONFieldNames(t *testing.T) {
	c := character.Character{
		Name: "Mira", Class: "wizard", Level: 1, Abilities: scores(),
		Concentration: concentration.Start("shield"),
	}
	c.SpellSlots[0] = 2
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, key := range []string{"abilities", "level", "class", "proficiency_bonus", "spell_slots", "max_spell_slots", "current_hp", "max_hp", "concentration", "equipped", "inventory"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, map[string]any{"active": true, "spell_name": "shield"}, m["concentration"])
}

// Property: Clone never aliases inventory or equipment maps.
func TestClone_NoAliasing(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		qty := rapid.IntRange(1, 5).Draw(rt, "qty")
		ac := rapid.IntRange(1, 5).Draw(rt, "ac")
		c := character.Character{
			Inventory: []inventory.Item{{ID: "torch", Quantity: qty}},
			Equipped:  inventory.Equipped{inventory.SlotArmor: {ID: "plate", StatEffects: map[string]int{inventory.StatArmorClass: ac}}},
		}
		cl := c.Clone()
		cl.Inventory[0].Quantity++
		cl.Equipped[inventory.SlotArmor].StatEffects[inventory.StatArmorClass]++
		if c.Inventory[0].Quantity != qty {
			rt.Fatalf("inventory aliased")
		}
		if c.Equipped[inventory.SlotArmor].StatEffects[inventory.StatArmorClass] != ac {
			rt.Fatalf("stat effects aliased")
		}
	})
}
