// Package progression derives character advancement from the ruleset tables:
// experience to level, proficiency bonus, ability score improvements, and hit
// point gains.
package progression

import (
	"errors"
	"fmt"
	"slices"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
)

var (
	// ErrNegativeExperience is returned for experience totals below zero.
	ErrNegativeExperience = errors.New("experience must not be negative")
	// ErrNegativeCount is returned when a spent-resource count is below zero.
	ErrNegativeCount = errors.New("count must not be negative")
	// ErrInvalidHitDie is returned for hit dice other than d6, d8, d10, or d12.
	ErrInvalidHitDie = errors.New("invalid hit die")
)

// LevelInfo is the level reached by an experience total.
type LevelInfo struct {
	Level int
	// XPForNextLevel is the total needed for Level+1; meaningful only when HasNextLevel.
	XPForNextLevel int
	HasNextLevel   bool
	// XPNeeded is how much more experience reaches the next level; 0 at max level.
	XPNeeded int
}

// ASIStatus summarises ability score improvements earned and spent.
type ASIStatus struct {
	// AvailableAtCurrentLevel is the number of improvements earned up to and including the level.
	AvailableAtCurrentLevel int
	Remaining               int
	CanImprove              bool
}

// Calculator answers progression questions against one ruleset.
type Calculator struct {
	rules  *ruleset.Rules
	roller *dice.Roller
}

// NewCalculator creates a Calculator.
//
// Precondition: rules and roller must be non-nil.
func NewCalculator(rules *ruleset.Rules, roller *dice.Roller) *Calculator {
	return &Calculator{rules: rules, roller: roller}
}

// ExperienceToLevel returns the level reached with xp total experience.
//
// Postcondition: Level is in 1..MaxLevel; at MaxLevel HasNextLevel is false and XPNeeded is 0.
func (c *Calculator) ExperienceToLevel(xp int) (LevelInfo, error) {
	if xp < 0 {
		return LevelInfo{}, fmt.Errorf("%w: %d", ErrNegativeExperience, xp)
	}
	level := 1
	for l := c.rules.MaxLevel(); l >= 1; l-- {
		if xp >= c.rules.ExperienceThreshold(l) {
			level = l
			break
		}
	}
	info := LevelInfo{Level: level}
	if level < c.rules.MaxLevel() {
		info.HasNextLevel = true
		info.XPForNextLevel = c.rules.ExperienceThreshold(level + 1)
		info.XPNeeded = info.XPForNextLevel - xp
	}
	return info, nil
}

// ProficiencyBonus returns the proficiency bonus for level.
//
// Postcondition: Returns an error wrapping ruleset.ErrLevelOutOfRange outside 1..MaxLevel.
func (c *Calculator) ProficiencyBonus(level int) (int, error) {
	return c.rules.ProficiencyBonus(level)
}

// ASIEligibility reports improvements available at level using the standard ASI levels.
//
// Postcondition: Remaining == max(0, AvailableAtCurrentLevel - used).
func (c *Calculator) ASIEligibility(level, used int) (ASIStatus, error) {
	return c.asiStatus(c.rules.ASILevels(), level, used)
}

// ASIEligibilityForClass is ASIEligibility with the class's extra ASI levels merged in.
//
// Postcondition: Returns an error wrapping ruleset.ErrUnknownClass for unregistered classes.
func (c *Calculator) ASIEligibilityForClass(classID string, level, used int) (ASIStatus, error) {
	class, err := c.rules.Class(classID)
	if err != nil {
		return ASIStatus{}, err
	}
	levels := append(c.rules.ASILevels(), class.ExtraASILevels...)
	slices.Sort(levels)
	return c.asiStatus(slices.Compact(levels), level, used)
}

func (c *Calculator) asiStatus(levels []int, level, used int) (ASIStatus, error) {
	if err := c.rules.ValidateLevel(level); err != nil {
		return ASIStatus{}, err
	}
	if used < 0 {
		return ASIStatus{}, fmt.Errorf("%w: asi used %d", ErrNegativeCount, used)
	}
	earned := 0
	for _, l := range levels {
		if l <= level {
			earned++
		}
	}
	remaining := max(earned-used, 0)
	return ASIStatus{
		AvailableAtCurrentLevel: earned,
		Remaining:               remaining,
		CanImprove:              remaining > 0,
	}, nil
}
