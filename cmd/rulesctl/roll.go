package main

import (
	"github.com/spf13/cobra"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/codec"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
)

func newRollCmd(a *app) *cobra.Command {
	var (
		times    int
		critical bool
	)
	cmd := &cobra.Command{
		Use:   "roll <notation>",
		Short: "Roll dice in NdS+M notation",
		Long: `Roll dice in NdS+M notation. Advantage applies only to a single d20.

  Example: rulesctl roll 1d20+5 --advantage advantage`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adv, err := a.adv()
			if err != nil {
				return err
			}
			if times < 1 {
				return usageError{errTimes}
			}
			out := make([]codec.RollResponse, 0, times)
			for range times {
				var r dice.RollResult
				if critical {
					r, err = a.engine.Roller.RollCritical(args[0])
				} else {
					r, err = a.engine.Roller.RollExpr(args[0], adv)
				}
				if err != nil {
					return err
				}
				out = append(out, codec.FromRoll(r))
			}
			if times == 1 {
				return emit(cmd.OutOrStdout(), out[0])
			}
			return emit(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().IntVar(&times, "times", 1, "number of times to roll")
	cmd.Flags().BoolVar(&critical, "critical", false, "roll the dice twice as critical hit damage")
	return cmd
}
