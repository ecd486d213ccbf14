package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/codec"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/check"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		abilities abilityFlags
		prof      proficiencyFlags
		expertise bool
	)
	cmd := &cobra.Command{
		Use:   "check <ability|skill>",
		Short: "Roll an ability or skill check",
		Long: `Roll an ability check (e.g. dexterity) or a skill check (e.g. stealth)
using the governing ability from the skill table.

  Example: rulesctl check stealth --abilities 10,16,12,10,12,8 --proficient --level 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adv, err := a.adv()
			if err != nil {
				return err
			}
			scores, err := abilities.value()
			if err != nil {
				return err
			}
			bonus, err := prof.bonus(a)
			if err != nil {
				return err
			}
			name := strings.ToLower(args[0])
			if score, ok := scores.Score(name); ok {
				r := a.engine.Checks.AbilityCheck(score, prof.proficient, bonus, adv)
				return emit(cmd.OutOrStdout(), codec.CheckResponse{RollResponse: codec.FromRoll(r)})
			}
			r, err := a.engine.Checks.SkillCheck(scores, name, prof.proficient, expertise, bonus, adv)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), codec.CheckResponse{RollResponse: codec.FromRoll(r), Skill: name})
		},
	}
	abilities.bind(cmd)
	prof.bind(cmd)
	cmd.Flags().BoolVar(&expertise, "expertise", false, "double the proficiency bonus (skills only)")
	return cmd
}

func newSaveCmd(a *app) *cobra.Command {
	var (
		abilities abilityFlags
		prof      proficiencyFlags
		dc        int
		class     string
	)
	cmd := &cobra.Command{
		Use:   "save <ability>",
		Short: "Roll a saving throw against a DC",
		Long: `Roll a saving throw. With --class the class's saving throw proficiencies apply.

  Example: rulesctl save wisdom --dc 15 --abilities 10,10,10,10,14,10 --class cleric --level 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adv, err := a.adv()
			if err != nil {
				return err
			}
			scores, err := abilities.value()
			if err != nil {
				return err
			}
			bonus, err := prof.bonus(a)
			if err != nil {
				return err
			}
			ability := strings.ToLower(args[0])
			score, ok := scores.Score(ability)
			if !ok {
				return fmt.Errorf("%w: %q", check.ErrUnknownAbility, args[0])
			}
			proficient := prof.proficient
			if class != "" {
				c, err := a.engine.Rules.Class(class)
				if err != nil {
					return err
				}
				proficient = proficient || c.HasSavingThrow(ability)
			}
			res := a.engine.Checks.SavingThrow(score, proficient, bonus, dc, adv)
			return emit(cmd.OutOrStdout(), codec.FromSave(res))
		},
	}
	abilities.bind(cmd)
	prof.bind(cmd)
	cmd.Flags().IntVar(&dc, "dc", 10, "difficulty class")
	cmd.Flags().StringVar(&class, "class", "", "class whose saving throw proficiencies apply")
	return cmd
}

func newAttackCmd(a *app) *cobra.Command {
	var (
		bonus  int
		ac     int
		damage string
	)
	cmd := &cobra.Command{
		Use:   "attack",
		Short: "Resolve an attack roll and its damage",
		Long: `Resolve 1d20 + bonus against a target AC. A natural 20 always hits and
doubles the damage dice; a natural 1 always misses.

  Example: rulesctl attack --bonus 5 --ac 15 --damage 1d8+3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			adv, err := a.adv()
			if err != nil {
				return err
			}
			atk, dmg, err := a.engine.Checks.Attack(bonus, ac, damage, adv)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), codec.FromAttack(atk, dmg))
		},
	}
	cmd.Flags().IntVar(&bonus, "bonus", 0, "attack bonus")
	cmd.Flags().IntVar(&ac, "ac", 10, "target armor class")
	cmd.Flags().StringVar(&damage, "damage", "1d4", "damage notation rolled on a hit")
	return cmd
}
