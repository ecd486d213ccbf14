package main

import (
	"github.com/spf13/cobra"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/codec"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/concentration"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/spells"
)

func newSlotsCmd(a *app) *cobra.Command {
	var (
		level  int
		expend []int
		rest   string
	)
	cmd := &cobra.Command{
		Use:   "slots <class>",
		Short: "Show spell slots for a class and level",
		Long: `Show spell slots for a class and level, optionally expending slots and
then taking a short or long rest.

  Example: rulesctl slots wizard --level 5 --expend 1,3 --rest short`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := a.engine.Slots
			maxSlots, err := mgr.SlotsFor(args[0], level)
			if err != nil {
				return err
			}
			current := maxSlots
			for _, lvl := range expend {
				if err := mgr.Expend(&current, lvl); err != nil {
					return err
				}
			}
			switch rest {
			case "":
			case "short":
				current = mgr.ShortRest(args[0], current, maxSlots)
			case "long":
				current = spells.RestoreAll(maxSlots)
			default:
				return usageError{errRest}
			}
			return emit(cmd.OutOrStdout(), codec.SlotsResponse{
				Class:     args[0],
				Level:     level,
				Archetype: mgr.Archetype(args[0]).String(),
				Current:   current,
				Max:       maxSlots,
				Remaining: spells.Remaining(current),
			})
		},
	}
	cmd.Flags().IntVar(&level, "level", 1, "character level")
	cmd.Flags().IntSliceVar(&expend, "expend", nil, "spell levels to expend, in order")
	cmd.Flags().StringVar(&rest, "rest", "", "rest after expending: short or long")
	return cmd
}

func newConcentrationCmd(a *app) *cobra.Command {
	var (
		damage int
		conMod int
		idle   bool
	)
	cmd := &cobra.Command{
		Use:   "concentration <spell>",
		Short: "Roll a concentration save after taking damage",
		Long: `Roll a constitution save against max(10, damage/2) to keep concentrating.
Add any saving throw proficiency to --con-mod.

  Example: rulesctl concentration "hold person" --damage 22 --con-mod 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adv, err := a.adv()
			if err != nil {
				return err
			}
			state := concentration.Start(args[0])
			if idle {
				state = concentration.End()
			}
			res, next := a.engine.Concentration.Damage(state, conMod, damage, adv)
			return emit(cmd.OutOrStdout(), codec.FromConcentration(res, next))
		},
	}
	cmd.Flags().IntVar(&damage, "damage", 0, "damage taken")
	cmd.Flags().IntVar(&conMod, "con-mod", 0, "constitution save modifier")
	cmd.Flags().BoolVar(&idle, "not-concentrating", false, "model a character that is not concentrating")
	return cmd
}
