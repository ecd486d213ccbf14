package progression

import (
	"fmt"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
)

func validateHitDie(hitDie int) error {
	switch hitDie {
	case 6, 8, 10, 12:
		return nil
	default:
		return fmt.Errorf("%w: d%d", ErrInvalidHitDie, hitDie)
	}
}

// AverageHPGain is the fixed per-level gain: floor(hitDie/2) + 1 + conMod, at least 1.
func AverageHPGain(hitDie, conMod int) int {
	return max(hitDie/2+1+conMod, 1)
}

// LevelUpHPGain returns hit points gained on reaching a new level. Average
// mode uses AverageHPGain; rolled mode rolls 1dHitDie + conMod. Either way the
// gain is at least 1.
//
// Postcondition: on success the result is >= 1.
func (c *Calculator) LevelUpHPGain(hitDie, conMod int, useAverage bool) (int, error) {
	if err := validateHitDie(hitDie); err != nil {
		return 0, err
	}
	if useAverage {
		return AverageHPGain(hitDie, conMod), nil
	}
	roll := c.roller.Roll(dice.Notation{Count: 1, Sides: hitDie, Modifier: conMod}, dice.Normal)
	return max(roll.Total, 1), nil
}

// HPGainForClass is LevelUpHPGain using the hit die of classID.
func (c *Calculator) HPGainForClass(classID string, conMod int, useAverage bool) (int, error) {
	class, err := c.rules.Class(classID)
	if err != nil {
		return 0, err
	}
	return c.LevelUpHPGain(class.HitDie, conMod, useAverage)
}

// MaxHPAtLevel returns fixed-average maximum hit points for a single-class
// character: the full hit die plus conMod at level 1, then AverageHPGain per level.
//
// Postcondition: on success the result is >= level.
func (c *Calculator) MaxHPAtLevel(classID string, level, conMod int) (int, error) {
	class, err := c.rules.Class(classID)
	if err != nil {
		return 0, err
	}
	if err := c.rules.ValidateLevel(level); err != nil {
		return 0, err
	}
	hp := max(class.HitDie+conMod, 1)
	hp += (level - 1) * AverageHPGain(class.HitDie, conMod)
	return hp, nil
}
