package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/codec"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/config"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/engine"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/observability"
)

// app carries state shared by every subcommand once the root pre-run has built the engine.
type app struct {
	configPath string
	seed       uint64
	advantage  string

	logger *zap.Logger
	engine *engine.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "rulesctl",
		Short:         "Tabletop rules engine",
		Long:          `rulesctl resolves dice, checks, attacks, spell slots, progression, concentration, and encumbrance for D&D 5e characters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to configuration file (empty: defaults and RULES_* environment)")
	root.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "roll with a seeded source instead of the configured one")
	root.PersistentFlags().StringVar(&a.advantage, "advantage", "normal", "d20 mode: normal, advantage, or disadvantage")

	root.AddCommand(
		newRollCmd(a),
		newCheckCmd(a),
		newSaveCmd(a),
		newAttackCmd(a),
		newSlotsCmd(a),
		newLevelCmd(a),
		newEncumbranceCmd(a),
		newConcentrationCmd(a),
		newCharacterCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Dice.Source = "seeded"
		cfg.Dice.Seed = a.seed
	}
	a.logger, err = observability.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	a.engine, err = engine.Initialize(cfg, a.logger, prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("initializing engine: %w", err)
	}
	return nil
}

func (a *app) adv() (dice.AdvantageState, error) {
	return dice.ParseAdvantage(a.advantage)
}

func emit(w io.Writer, v any) error {
	return codec.Encode(w, v)
}
