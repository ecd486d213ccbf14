package inventory

import (
	"fmt"
	"maps"
	"sort"
)

// Registry holds loaded item definitions indexed by ID.
// It is read-only after loading and safe for concurrent lookups.
type Registry struct {
	items map[string]*ItemDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: the internal map is initialised.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]*ItemDef)}
}

// RegisterItem adds d to the registry.
//
// Precondition:  d must not be nil.
// Postcondition: Item(d.ID) returns (d, true); returns error if d.ID already registered.
func (r *Registry) RegisterItem(d *ItemDef) error {
	if _, exists := r.items[d.ID]; exists {
		return fmt.Errorf("inventory: Registry.RegisterItem: item ID %q already registered", d.ID)
	}
	r.items[d.ID] = d
	return nil
}

// Item returns the ItemDef for the given id and whether it was found.
//
// Postcondition: ok is true iff the id is registered.
func (r *Registry) Item(id string) (*ItemDef, bool) {
	d, ok := r.items[id]
	return d, ok
}

// IDs returns every registered item ID in sorted order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.items))
	for id := range r.items {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// NewItem mints an inventory stack of quantity units of the catalog item id.
//
// Precondition: quantity > 0.
// Postcondition: returns an error wrapping ErrItemNotFound for unregistered ids.
func (r *Registry) NewItem(id string, quantity int) (Item, error) {
	d, ok := r.items[id]
	if !ok {
		return Item{}, fmt.Errorf("%w: %q not in catalog", ErrItemNotFound, id)
	}
	if quantity <= 0 {
		return Item{}, fmt.Errorf("inventory: quantity must be > 0, got %d", quantity)
	}
	return Item{
		ID:            d.ID,
		Name:          d.Name,
		Weight:        d.Weight,
		Quantity:      quantity,
		EquipmentType: d.EquipmentType,
		StatEffects:   maps.Clone(d.StatEffects),
	}, nil
}
