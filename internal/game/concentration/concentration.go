// Package concentration tracks the single ongoing concentration spell a
// character may maintain and resolves the saving throws that can break it.
package concentration

import (
	"go.uber.org/zap"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
)

// MinimumDC is the floor of a concentration saving throw DC.
const MinimumDC = 10

// State is the concentration state owned by one character.
type State struct {
	Active    bool   `json:"active"`
	SpellName string `json:"spell_name,omitempty"` // empty when not concentrating
}

// CheckResult is the outcome of one concentration saving throw.
type CheckResult struct {
	DC         int
	Roll       dice.RollResult
	Maintained bool
}

// Start begins concentrating on spellName. Any previous concentration ends
// silently; a character can only hold one.
//
// Postcondition: result.Active is true and result.SpellName == spellName.
func Start(spellName string) State {
	return State{Active: true, SpellName: spellName}
}

// End drops concentration unconditionally.
//
// Postcondition: result is the zero State.
func End() State {
	return State{}
}

// DC returns the concentration save DC for damageTaken: max(10, damageTaken/2).
func DC(damageTaken int) int {
	return max(MinimumDC, damageTaken/2)
}

// Tracker rolls concentration saves.
type Tracker struct {
	roller *dice.Roller
	logger *zap.Logger
}

// NewTracker creates a Tracker.
//
// Precondition: roller and logger must be non-nil.
func NewTracker(roller *dice.Roller, logger *zap.Logger) *Tracker {
	return &Tracker{roller: roller, logger: logger}
}

// Check rolls a constitution save of 1d20 + constitutionModifier against
// DC(damageTaken). Callers whose character is proficient in constitution saves
// add the proficiency bonus to constitutionModifier.
//
// Postcondition: result.Maintained == (result.Roll.Total >= result.DC).
func (t *Tracker) Check(constitutionModifier, damageTaken int, adv dice.AdvantageState) CheckResult {
	dc := DC(damageTaken)
	roll := t.roller.RollD20(constitutionModifier, adv)
	return CheckResult{DC: dc, Roll: roll, Maintained: roll.Total >= dc}
}

// Damage applies damageTaken to a concentrating character and returns the
// check and resulting state. A character not concentrating makes no roll and
// reports Maintained.
//
// Postcondition: when the check fails the returned State is inactive.
func (t *Tracker) Damage(s State, constitutionModifier, damageTaken int, adv dice.AdvantageState) (CheckResult, State) {
	if !s.Active {
		return CheckResult{Maintained: true}, s
	}
	res := t.Check(constitutionModifier, damageTaken, adv)
	if res.Maintained {
		return res, s
	}
	t.logger.Info("concentration broken",
		zap.String("spell", s.SpellName),
		zap.Int("damage", damageTaken),
		zap.Int("dc", res.DC),
		zap.Int("total", res.Roll.Total),
	)
	return res, End()
}
