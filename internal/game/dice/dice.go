//go:generate mockgen -destination=mocks/mock_source.go -package=mocks . Source

// Package dice provides the randomness abstraction, notation parser, and
// roll-result types used by every rules component.
package dice

import (
	"errors"
	"fmt"
	"strings"
)

// AdvantageState selects how a single d20 is rolled.
type AdvantageState int

const (
	// Normal rolls one die.
	Normal AdvantageState = iota
	// Advantage rolls two d20 and keeps the higher.
	Advantage
	// Disadvantage rolls two d20 and keeps the lower.
	Disadvantage
)

// String returns the wire label: "normal", "advantage", or "disadvantage".
func (a AdvantageState) String() string {
	switch a {
	case Advantage:
		return "advantage"
	case Disadvantage:
		return "disadvantage"
	default:
		return "normal"
	}
}

// ErrInvalidAdvantage is returned for advantage labels other than normal, advantage, or disadvantage.
var ErrInvalidAdvantage = errors.New("unknown advantage type")

// ParseAdvantage converts a wire label into an AdvantageState.
// The empty string is treated as "normal".
//
// Postcondition: Returns a valid state or a non-nil error.
func ParseAdvantage(s string) (AdvantageState, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return Normal, nil
	case "advantage":
		return Advantage, nil
	case "disadvantage":
		return Disadvantage, nil
	default:
		return Normal, fmt.Errorf("%w: %q", ErrInvalidAdvantage, s)
	}
}

// CombineAdvantage folds independent advantage and disadvantage sources into a
// single state. Having both cancels out to Normal.
func CombineAdvantage(advantage, disadvantage bool) AdvantageState {
	switch {
	case advantage && !disadvantage:
		return Advantage
	case disadvantage && !advantage:
		return Disadvantage
	default:
		return Normal
	}
}

// RollResult holds the full audit trail for a single roll.
//
// Invariant: for Normal rolls len(Rolls) equals the notation's die count and
// Total == sum(Rolls) + Modifier (before any damage clamp). For Advantage and
// Disadvantage len(Rolls) == 2 and Total == Natural() + Modifier.
type RollResult struct {
	Notation  string // canonical notation, e.g. "2d6+3"
	Rolls     []int  // every raw die result
	Modifier  int
	Total     int
	Advantage AdvantageState
}

// Natural returns the d20 face that counts for a single-die roll: the kept die
// under advantage or disadvantage, otherwise the first die.
//
// Postcondition: Returns 0 when Rolls is empty.
func (r RollResult) Natural() int {
	if len(r.Rolls) == 0 {
		return 0
	}
	switch r.Advantage {
	case Advantage:
		return max(r.Rolls[0], r.Rolls[1])
	case Disadvantage:
		return min(r.Rolls[0], r.Rolls[1])
	default:
		return r.Rolls[0]
	}
}

// String returns a human-readable audit string in the format:
//
//	"1d20+5 → [12 17] +5 = 22 (advantage)"
//
// Precondition: r.Notation is non-empty.
func (r RollResult) String() string {
	if r.Notation == "" {
		panic("dice: RollResult.String() precondition violated: Notation must be non-empty")
	}
	s := fmt.Sprintf("%s → %v %+d = %d", r.Notation, r.Rolls, r.Modifier, r.Total)
	if r.Advantage != Normal {
		s += " (" + r.Advantage.String() + ")"
	}
	return s
}

// Source is the randomness provider for dice rolls.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}
