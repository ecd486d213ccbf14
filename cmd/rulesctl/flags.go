package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/character"
)

var (
	errTimes = errors.New("--times must be at least 1")
	errRest  = errors.New("--rest must be short or long")
)

// abilityFlags binds --abilities as six comma-separated scores in sheet order.
type abilityFlags struct {
	scores []int
}

func (f *abilityFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntSliceVar(&f.scores, "abilities", []int{10, 10, 10, 10, 10, 10},
		"ability scores as str,dex,con,int,wis,cha")
}

func (f *abilityFlags) value() (character.AbilityScores, error) {
	if len(f.scores) != len(character.Abilities) {
		return character.AbilityScores{}, usageError{fmt.Errorf("--abilities needs %d scores, got %d", len(character.Abilities), len(f.scores))}
	}
	return character.AbilityScores{
		Strength:     f.scores[0],
		Dexterity:    f.scores[1],
		Constitution: f.scores[2],
		Intelligence: f.scores[3],
		Wisdom:       f.scores[4],
		Charisma:     f.scores[5],
	}, nil
}

// proficiencyFlags binds the level used to look up a proficiency bonus.
type proficiencyFlags struct {
	level      int
	proficient bool
}

func (f *proficiencyFlags) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.level, "level", 1, "character level, for the proficiency bonus")
	cmd.Flags().BoolVar(&f.proficient, "proficient", false, "add the proficiency bonus")
}

func (f *proficiencyFlags) bonus(a *app) (int, error) {
	return a.engine.Progression.ProficiencyBonus(f.level)
}
