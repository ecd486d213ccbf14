// Package spells tracks spell-slot capacity and expenditure for every caster
// archetype. Slot arrays are indexed by spell level minus one.
package spells

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
)

// Slots holds one count per spell level 1-9.
type Slots = [ruleset.SpellLevels]int

var (
	// ErrNoSlotsAvailable is returned when expending a slot at an exhausted level.
	ErrNoSlotsAvailable = errors.New("no spell slots available")
	// ErrInvalidSlotLevel is returned for spell levels outside 1-9.
	ErrInvalidSlotLevel = errors.New("invalid spell slot level")
	// ErrUnknownClass is returned for classes absent from the class table.
	ErrUnknownClass = ruleset.ErrUnknownClass
)

// Manager derives slot tables from the ruleset and applies slot bookkeeping.
// It keeps no per-character state.
type Manager struct {
	rules  *ruleset.Rules
	logger *zap.Logger
}

// NewManager creates a Manager.
//
// Precondition: rules and logger must be non-nil.
func NewManager(rules *ruleset.Rules, logger *zap.Logger) *Manager {
	return &Manager{rules: rules, logger: logger}
}

// Archetype returns the caster archetype of classID; unknown classes are CasterNone.
func (m *Manager) Archetype(classID string) ruleset.CasterArchetype {
	return m.rules.Archetype(classID)
}

// SlotsFor returns the maximum slots of a classID character at level.
// Non-casters get all zeros. Pact casters get every slot at one spell level.
//
// Postcondition: Returns an error wrapping ErrUnknownClass or
// ruleset.ErrLevelOutOfRange for invalid input.
func (m *Manager) SlotsFor(classID string, level int) (Slots, error) {
	class, err := m.rules.Class(classID)
	if err != nil {
		return Slots{}, err
	}
	if err := m.rules.ValidateLevel(level); err != nil {
		return Slots{}, err
	}
	switch class.Caster {
	case ruleset.CasterFull:
		return m.rules.FullCasterRow(level), nil
	case ruleset.CasterHalf:
		return m.rules.HalfCasterRow(level), nil
	case ruleset.CasterPact:
		var s Slots
		p := m.rules.PactRow(level)
		s[p.SlotLevel-1] = p.Slots
		return s, nil
	default:
		return Slots{}, nil
	}
}

// Expend spends one slot of slotLevel from current.
//
// Precondition: current must be non-nil.
// Postcondition: on success current[slotLevel-1] is decremented by one; on
// error current is unchanged. No entry ever goes negative.
func Expend(current *Slots, slotLevel int) error {
	if slotLevel < 1 || slotLevel > ruleset.SpellLevels {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidSlotLevel, slotLevel, ruleset.SpellLevels)
	}
	if current[slotLevel-1] <= 0 {
		return fmt.Errorf("%w: level %d", ErrNoSlotsAvailable, slotLevel)
	}
	current[slotLevel-1]--
	return nil
}

// Expend is the logged form of the package-level Expend.
func (m *Manager) Expend(current *Slots, slotLevel int) error {
	if err := Expend(current, slotLevel); err != nil {
		m.logger.Debug("spell slot refused", zap.Int("slot_level", slotLevel), zap.Error(err))
		return err
	}
	m.logger.Debug("spell slot expended",
		zap.Int("slot_level", slotLevel),
		zap.Int("remaining", current[slotLevel-1]),
	)
	return nil
}

// RestoreAll returns full slots after a long rest.
//
// Postcondition: result == maxSlots.
func RestoreAll(maxSlots Slots) Slots {
	return maxSlots
}

// ShortRest returns slots after a short rest: pact casters regain every slot,
// everyone else keeps current unchanged.
func (m *Manager) ShortRest(classID string, current, maxSlots Slots) Slots {
	if m.rules.Archetype(classID) == ruleset.CasterPact {
		return RestoreAll(maxSlots)
	}
	return current
}

// Rederive carries unused slots across a change in maximum slots. For every
// level the result is min(oldCurrent, newMax) plus any newly granted capacity
// max(0, newMax - oldMax).
//
// Postcondition: 0 <= result[i] <= newMax[i] when 0 <= oldCurrent[i] <= oldMax[i].
func Rederive(oldCurrent, oldMax, newMax Slots) Slots {
	var out Slots
	for i := range out {
		out[i] = min(oldCurrent[i], newMax[i]) + max(0, newMax[i]-oldMax[i])
	}
	return out
}

// Remaining returns the total number of unspent slots.
func Remaining(current Slots) int {
	total := 0
	for _, n := range current {
		total += n
	}
	return total
}
