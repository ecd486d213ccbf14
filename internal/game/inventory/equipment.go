package inventory

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrItemNotFound is returned when an item ID is absent from the inventory.
	ErrItemNotFound = errors.New("item not found")
	// ErrNotEquippable is returned for items without an equipment type.
	ErrNotEquippable = errors.New("item is not equippable")
	// ErrSlotOccupied is returned when the resolved slot already holds an item.
	ErrSlotOccupied = errors.New("equipment slot occupied")
	// ErrSlotEmpty is returned when unequipping a slot that holds nothing.
	ErrSlotEmpty = errors.New("equipment slot empty")
	// ErrUnknownSlot is returned for slot names outside the slot table.
	ErrUnknownSlot = errors.New("unknown equipment slot")
)

// Slot identifies an equipment slot.
type Slot string

const (
	SlotMainHand Slot = "main_hand"
	SlotOffHand  Slot = "off_hand"
	SlotArmor    Slot = "armor"
	SlotHead     Slot = "head"
	SlotNeck     Slot = "neck"
	SlotCloak    Slot = "cloak"
	SlotHands    Slot = "hands"
	SlotWaist    Slot = "waist"
	SlotFeet     Slot = "feet"
	SlotRing1    Slot = "ring1"
	SlotRing2    Slot = "ring2"
)

// slotDisplayNames maps every slot identifier to its human-readable label.
var slotDisplayNames = map[Slot]string{
	SlotMainHand: "Main Hand",
	SlotOffHand:  "Off Hand",
	SlotArmor:    "Armor",
	SlotHead:     "Head",
	SlotNeck:     "Neck",
	SlotCloak:    "Cloak",
	SlotHands:    "Hands",
	SlotWaist:    "Waist",
	SlotFeet:     "Feet",
	SlotRing1:    "Ring (first)",
	SlotRing2:    "Ring (second)",
}

// typeSlots maps an equipment type to the slots it may fill, in preference order.
var typeSlots = map[string][]Slot{
	"weapon": {SlotMainHand},
	"armor":  {SlotArmor},
	"shield": {SlotOffHand},
	"helmet": {SlotHead},
	"amulet": {SlotNeck},
	"cloak":  {SlotCloak},
	"gloves": {SlotHands},
	"belt":   {SlotWaist},
	"boots":  {SlotFeet},
	"ring":   {SlotRing1, SlotRing2},
}

// SlotDisplayName returns the human-readable label for a slot identifier.
//
// Postcondition: returns the registered label, or the slot name itself if not found.
func SlotDisplayName(slot Slot) string {
	if label, ok := slotDisplayNames[slot]; ok {
		return label
	}
	return string(slot)
}

// ParseSlot validates a slot name.
//
// Postcondition: Returns an error wrapping ErrUnknownSlot for names outside the slot table.
func ParseSlot(name string) (Slot, error) {
	s := Slot(name)
	if _, ok := slotDisplayNames[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, name)
	}
	return s, nil
}

// Item is one inventory stack.
type Item struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Weight        float64        `json:"weight"` // per unit
	Quantity      int            `json:"quantity"`
	EquipmentType string         `json:"equipment_type,omitempty"` // empty when the item cannot be equipped
	StatEffects   map[string]int `json:"stat_effects,omitempty"`
}

// EquippedItem is an item occupying exactly one equipment slot.
type EquippedItem struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Weight        float64        `json:"weight"`
	EquipmentType string         `json:"equipment_type"`
	StatEffects   map[string]int `json:"stat_effects,omitempty"`
}

// Equipped maps each occupied slot to its item.
type Equipped map[Slot]EquippedItem

// EquipResult is the new inventory and equipment after a successful Equip.
type EquipResult struct {
	Inventory []Item
	Equipped  Equipped
	Slot      Slot
	Item      EquippedItem
}

// UnequipResult is the new inventory and equipment after a successful Unequip.
type UnequipResult struct {
	Inventory []Item
	Equipped  Equipped
	Slot      Slot
	Item      EquippedItem
}

// ResolveSlot picks the slot an item of equipmentType goes into. An explicit
// slot wins when the type may fill it; otherwise the first free slot for the
// type is used, falling back to the type's first slot when all are full.
//
// Postcondition: Returns an error wrapping ErrNotEquippable or ErrUnknownSlot
// when no slot applies.
func ResolveSlot(equipmentType string, explicit Slot, equipped Equipped) (Slot, error) {
	if equipmentType == "" {
		return "", ErrNotEquippable
	}
	candidates, ok := typeSlots[equipmentType]
	if !ok {
		return "", fmt.Errorf("%w: no slot for equipment type %q", ErrNotEquippable, equipmentType)
	}
	if explicit != "" {
		s, err := ParseSlot(string(explicit))
		if err != nil {
			return "", err
		}
		if !slices.Contains(candidates, s) {
			return "", fmt.Errorf("%w: %s cannot go in the %s slot", ErrNotEquippable, equipmentType, SlotDisplayName(s))
		}
		return s, nil
	}
	for _, s := range candidates {
		if _, taken := equipped[s]; !taken {
			return s, nil
		}
	}
	return candidates[0], nil
}

// Equip moves one unit of itemID from inventory into an equipment slot. The
// inputs are not modified. There is no implicit swap: an occupied slot is an error.
//
// Postcondition: on success the result inventory holds one fewer unit of
// itemID and result.Equipped[result.Slot] is the item; errors wrap
// ErrItemNotFound, ErrNotEquippable, ErrUnknownSlot, or ErrSlotOccupied.
func Equip(inventory []Item, equipped Equipped, itemID string, slot Slot) (EquipResult, error) {
	idx := slices.IndexFunc(inventory, func(it Item) bool { return it.ID == itemID && it.Quantity > 0 })
	if idx < 0 {
		return EquipResult{}, fmt.Errorf("%w: %q", ErrItemNotFound, itemID)
	}
	it := inventory[idx]
	if it.EquipmentType == "" {
		return EquipResult{}, fmt.Errorf("%w: %q", ErrNotEquippable, itemID)
	}
	resolved, err := ResolveSlot(it.EquipmentType, slot, equipped)
	if err != nil {
		return EquipResult{}, fmt.Errorf("equipping %q: %w", itemID, err)
	}
	if cur, taken := equipped[resolved]; taken {
		return EquipResult{}, fmt.Errorf("%w: %s holds %q", ErrSlotOccupied, SlotDisplayName(resolved), cur.ID)
	}

	newInv := cloneItems(inventory)
	newInv[idx].Quantity--
	if newInv[idx].Quantity == 0 {
		newInv = slices.Delete(newInv, idx, idx+1)
	}
	eqItem := EquippedItem{
		ID:            it.ID,
		Name:          it.Name,
		Weight:        it.Weight,
		EquipmentType: it.EquipmentType,
		StatEffects:   maps.Clone(it.StatEffects),
	}
	newEq := maps.Clone(equipped)
	if newEq == nil {
		newEq = Equipped{}
	}
	newEq[resolved] = eqItem
	return EquipResult{Inventory: newInv, Equipped: newEq, Slot: resolved, Item: eqItem}, nil
}

// Unequip moves the item in slot back into inventory, merging with an existing
// stack of the same ID. The inputs are not modified.
//
// Postcondition: on success result.Equipped has no entry for slot; errors wrap
// ErrSlotEmpty or ErrUnknownSlot.
func Unequip(inventory []Item, equipped Equipped, slot Slot) (UnequipResult, error) {
	if _, err := ParseSlot(string(slot)); err != nil {
		return UnequipResult{}, err
	}
	eqItem, ok := equipped[slot]
	if !ok {
		return UnequipResult{}, fmt.Errorf("%w: %s", ErrSlotEmpty, SlotDisplayName(slot))
	}

	newInv := cloneItems(inventory)
	if idx := slices.IndexFunc(newInv, func(it Item) bool { return it.ID == eqItem.ID }); idx >= 0 {
		newInv[idx].Quantity++
	} else {
		newInv = append(newInv, Item{
			ID:            eqItem.ID,
			Name:          eqItem.Name,
			Weight:        eqItem.Weight,
			Quantity:      1,
			EquipmentType: eqItem.EquipmentType,
			StatEffects:   maps.Clone(eqItem.StatEffects),
		})
	}
	newEq := maps.Clone(equipped)
	delete(newEq, slot)
	return UnequipResult{Inventory: newInv, Equipped: newEq, Slot: slot, Item: eqItem}, nil
}

// AggregateStatEffects sums the stat effects of every equipped item.
//
// Postcondition: result[stat] == sum of item.StatEffects[stat] over equipped; zero sums are omitted.
func AggregateStatEffects(equipped Equipped) map[string]int {
	out := make(map[string]int)
	for _, it := range equipped {
		for stat, v := range it.StatEffects {
			out[stat] += v
		}
	}
	for stat, v := range out {
		if v == 0 {
			delete(out, stat)
		}
	}
	return out
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
