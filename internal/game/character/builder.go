package character

import (
	"errors"
	"fmt"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/progression"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/spells"
)

// Build constructs a new level 1 Character of classID. HP is the full hit
// die plus the constitution modifier, at least 1; spell slots start full.
//
// Precondition: name must be non-empty; rules and slots must be non-nil.
// Postcondition: Returns a Character ready for persistence, or a non-nil error.
func Build(name, classID string, abilities AbilityScores, rules *ruleset.Rules, slots *spells.Manager) (Character, error) {
	if name == "" {
		return Character{}, errors.New("character name must not be empty")
	}
	if rules == nil || slots == nil {
		return Character{}, errors.New("rules and slot manager must not be nil")
	}
	class, err := rules.Class(classID)
	if err != nil {
		return Character{}, fmt.Errorf("building %q: %w", name, err)
	}
	prof, err := rules.ProficiencyBonus(1)
	if err != nil {
		return Character{}, err
	}
	maxSlots, err := slots.SlotsFor(class.ID, 1)
	if err != nil {
		return Character{}, err
	}
	maxHP := max(class.HitDie+abilities.Modifier(abilities.Constitution), 1)

	return Character{
		Name:             name,
		Class:            class.ID,
		Level:            1,
		Abilities:        abilities,
		ProficiencyBonus: prof,
		SpellSlots:       maxSlots,
		MaxSpellSlots:    maxSlots,
		CurrentHP:        maxHP,
		MaxHP:            maxHP,
	}, nil
}

// LevelUpResult reports what changed when a character advanced.
type LevelUpResult struct {
	Character     Character `json:"character"`
	LevelsGained  int       `json:"levels_gained"`
	HPGained      int       `json:"hp_gained"`
	ASIsAvailable int       `json:"asis_available"`
}

// LevelUp advances c to the level its experience has earned. Each gained
// level adds the class hit point gain; proficiency bonus is recomputed and
// spell slots are re-derived so unspent slots carry over. usedASIs is the
// number of improvements already taken.
//
// Precondition: calc and slots must be non-nil.
// Postcondition: result.Character.Level >= c.Level; a character with no
// levels to gain is returned unchanged with LevelsGained == 0.
func LevelUp(c Character, usedASIs int, calc *progression.Calculator, slots *spells.Manager, useAverage bool) (LevelUpResult, error) {
	info, err := calc.ExperienceToLevel(c.Experience)
	if err != nil {
		return LevelUpResult{}, err
	}
	out := c.Clone()
	if info.Level <= c.Level {
		return LevelUpResult{Character: out}, nil
	}

	conMod := c.Abilities.Modifier(c.Abilities.Constitution)
	gained := 0
	for lvl := c.Level + 1; lvl <= info.Level; lvl++ {
		hp, err := calc.HPGainForClass(c.Class, conMod, useAverage)
		if err != nil {
			return LevelUpResult{}, fmt.Errorf("level %d hit points: %w", lvl, err)
		}
		gained += hp
	}
	prof, err := calc.ProficiencyBonus(info.Level)
	if err != nil {
		return LevelUpResult{}, err
	}
	newMax, err := slots.SlotsFor(c.Class, info.Level)
	if err != nil {
		return LevelUpResult{}, err
	}
	asi, err := calc.ASIEligibilityForClass(c.Class, info.Level, usedASIs)
	if err != nil {
		return LevelUpResult{}, err
	}

	out.Level = info.Level
	out.ProficiencyBonus = prof
	out.MaxHP += gained
	out.CurrentHP += gained
	out.SpellSlots = spells.Rederive(c.SpellSlots, c.MaxSpellSlots, newMax)
	out.MaxSpellSlots = newMax

	return LevelUpResult{
		Character:     out,
		LevelsGained:  info.Level - c.Level,
		HPGained:      gained,
		ASIsAvailable: asi.Remaining,
	}, nil
}
