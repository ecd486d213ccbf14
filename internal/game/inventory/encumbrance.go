package inventory

// Encumbrance is the weight-carrying tier of a character.
type Encumbrance int

const (
	Unencumbered Encumbrance = iota
	Encumbered
	HeavilyEncumbered
)

// String returns a snake_case label for the tier.
func (e Encumbrance) String() string {
	switch e {
	case Unencumbered:
		return "unencumbered"
	case Encumbered:
		return "encumbered"
	case HeavilyEncumbered:
		return "heavily_encumbered"
	default:
		return "unknown"
	}
}

// CarryingCapacity returns the pounds a character of the given strength can carry.
//
// Postcondition: Returns strength * 15.
func CarryingCapacity(strength int) float64 {
	return float64(strength) * 15.0
}

// PushDragLift returns the pounds a character can push, drag, or lift.
//
// Postcondition: Returns CarryingCapacity(strength) * 2.
func PushDragLift(strength int) float64 {
	return CarryingCapacity(strength) * 2.0
}

// EncumbranceLevel classifies totalWeight against capacity. Up to two thirds
// of capacity (inclusive) is Unencumbered, up to capacity (inclusive) is
// Encumbered, and anything beyond is HeavilyEncumbered.
func EncumbranceLevel(totalWeight, capacity float64) Encumbrance {
	switch {
	case totalWeight*3 <= capacity*2:
		return Unencumbered
	case totalWeight <= capacity:
		return Encumbered
	default:
		return HeavilyEncumbered
	}
}

// TotalWeight returns the carried weight: every inventory stack plus every equipped item.
//
// Postcondition: result >= 0 when all weights and quantities are non-negative.
func TotalWeight(inventory []Item, equipped Equipped) float64 {
	var total float64
	for _, it := range inventory {
		total += float64(it.Quantity) * it.Weight
	}
	for _, it := range equipped {
		total += it.Weight
	}
	return total
}
