// Package check resolves d20 tests: ability checks, skill checks, saving
// throws, and attack rolls.
package check

import (
	"errors"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
)

var (
	// ErrUnknownSkill is returned for skills absent from the skill table.
	ErrUnknownSkill = errors.New("unknown skill")
	// ErrUnknownAbility is returned when a score lookup has no value for an ability.
	ErrUnknownAbility = errors.New("unknown ability")
)

// AbilityModifier computes the ability modifier using floor division: floor((score - 10) / 2).
//
// Postcondition: Returns floor((score - 10) / 2); AbilityModifier(1) == -5.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 {
		return (diff - 1) / 2
	}
	return diff / 2
}

// AbilityLookup resolves an ability name such as "dexterity" to its score.
type AbilityLookup interface {
	Score(ability string) (int, bool)
}

// SaveResult is the outcome of a saving throw against a DC.
type SaveResult struct {
	Roll    dice.RollResult
	DC      int
	Success bool
}

// AttackResult is the outcome of one attack roll against an armor class.
type AttackResult struct {
	Roll           dice.RollResult
	Natural        int // the d20 face that counted
	TargetAC       int
	IsHit          bool
	IsCriticalHit  bool
	IsCriticalMiss bool
}

// OutcomeFor decides whether a d20 attack hits.
// A natural 20 always hits and a natural 1 always misses; otherwise the attack
// hits iff total >= ac.
//
// Postcondition: hit is true whenever natural == 20 and false whenever natural == 1.
func OutcomeFor(natural, total, ac int) (hit, critHit, critMiss bool) {
	critHit = dice.IsCriticalHit(natural)
	critMiss = dice.IsCriticalMiss(natural)
	switch {
	case critHit:
		return true, true, false
	case critMiss:
		return false, false, true
	default:
		return total >= ac, false, false
	}
}
