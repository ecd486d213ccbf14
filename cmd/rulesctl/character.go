package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/codec"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/character"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/progression"
)

func newLevelCmd(a *app) *cobra.Command {
	var (
		class   string
		usedASI int
	)
	cmd := &cobra.Command{
		Use:   "level <experience>",
		Short: "Show the level, proficiency bonus, and ASIs an experience total earns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xp, err := strconv.Atoi(args[0])
			if err != nil {
				return usageError{fmt.Errorf("experience %q: %w", args[0], err)}
			}
			calc := a.engine.Progression
			info, err := calc.ExperienceToLevel(xp)
			if err != nil {
				return err
			}
			prof, err := calc.ProficiencyBonus(info.Level)
			if err != nil {
				return err
			}
			var asi progression.ASIStatus
			if class != "" {
				asi, err = calc.ASIEligibilityForClass(class, info.Level, usedASI)
			} else {
				asi, err = calc.ASIEligibility(info.Level, usedASI)
			}
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), codec.FromLevel(xp, prof, info, asi))
		},
	}
	cmd.Flags().StringVar(&class, "class", "", "class whose extra ASI levels apply")
	cmd.Flags().IntVar(&usedASI, "used-asi", 0, "ability score improvements already taken")
	return cmd
}

func newEncumbranceCmd(a *app) *cobra.Command {
	var (
		strength int
		carry    []string
		equip    []string
	)
	cmd := &cobra.Command{
		Use:   "encumbrance",
		Short: "Classify carried catalog items against strength",
		Long: `Classify carried catalog items against strength. Equipped items count
toward carried weight and their stat effects toward strength.

  Example: rulesctl encumbrance --strength 15 --carry torch=5,rope --equip chain_mail`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := character.Character{Abilities: character.AbilityScores{Strength: strength}}
			var err error
			for _, itemArg := range append(carry, equip...) {
				id, qty, perr := parseItemSpec(itemArg)
				if perr != nil {
					return perr
				}
				if c, err = a.engine.GiveItem(c, id, qty); err != nil {
					return err
				}
			}
			for _, itemArg := range equip {
				id, _, _ := parseItemSpec(itemArg)
				if c, err = a.engine.Equip(c, id, ""); err != nil {
					return err
				}
			}
			return emit(cmd.OutOrStdout(), codec.FromCharacterEncumbrance(c))
		},
	}
	cmd.Flags().IntVar(&strength, "strength", 10, "base strength score")
	cmd.Flags().StringSliceVar(&carry, "carry", nil, "catalog items to carry, as id or id=quantity")
	cmd.Flags().StringSliceVar(&equip, "equip", nil, "catalog items to equip")
	return cmd
}

func parseItemSpec(itemArg string) (string, int, error) {
	id, qty, found := strings.Cut(itemArg, "=")
	if !found {
		return id, 1, nil
	}
	n, err := strconv.Atoi(qty)
	if err != nil || n < 1 {
		return "", 0, usageError{fmt.Errorf("item %q: quantity must be a positive integer", itemArg)}
	}
	return id, n, nil
}

func newCharacterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "character",
		Short: "Create and advance character snapshots",
	}

	var abilities abilityFlags
	newCmd := &cobra.Command{
		Use:   "new <name> <class>",
		Short: "Build a level 1 character snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := abilities.value()
			if err != nil {
				return err
			}
			c, err := a.engine.NewCharacter(args[0], args[1], scores)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), c)
		},
	}
	abilities.bind(newCmd)

	var (
		file    string
		usedASI int
	)
	levelUpCmd := &cobra.Command{
		Use:   "levelup",
		Short: "Advance a character snapshot to the level its experience earns",
		Long: `Read a character snapshot from --file (or stdin with "-"), advance it, and
print the level-up result.

  Example: rulesctl character levelup --file mira.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			var c character.Character
			if err := codec.Decode(in, &c); err != nil {
				return err
			}
			res, err := a.engine.LevelUp(c, usedASI)
			if err != nil {
				return err
			}
			return emit(cmd.OutOrStdout(), res)
		},
	}
	levelUpCmd.Flags().StringVar(&file, "file", "-", "character snapshot JSON file")
	levelUpCmd.Flags().IntVar(&usedASI, "used-asi", 0, "ability score improvements already taken")

	cmd.AddCommand(newCmd, levelUpCmd)
	return cmd
}
