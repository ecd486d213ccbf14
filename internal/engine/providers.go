package engine

import (
	"fmt"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/config"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/check"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/concentration"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/inventory"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/progression"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/spells"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/observability"
)

// ProviderSet builds an Engine from a config.Config, a *zap.Logger, and a prometheus.Registerer.
var ProviderSet = wire.NewSet(
	ProvideRules,
	ProvideCatalog,
	ProvideSource,
	ProvideHistory,
	ProvideRecorder,
	ProvideRoller,
	check.NewResolver,
	progression.NewCalculator,
	spells.NewManager,
	concentration.NewTracker,
	New,
)

// ProvideRules loads cfg.Rules.Dir, or the embedded tables when it is empty.
func ProvideRules(cfg config.Config) (*ruleset.Rules, error) {
	if cfg.Rules.Dir == "" {
		return ruleset.Default()
	}
	return ruleset.Load(cfg.Rules.Dir)
}

// ProvideCatalog loads cfg.Rules.ItemsDir, or the embedded catalog when it is empty.
func ProvideCatalog(cfg config.Config) (*inventory.Registry, error) {
	if cfg.Rules.ItemsDir == "" {
		return inventory.DefaultCatalog()
	}
	defs, err := inventory.LoadItems(cfg.Rules.ItemsDir)
	if err != nil {
		return nil, err
	}
	reg := inventory.NewRegistry()
	for _, d := range defs {
		if err := reg.RegisterItem(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// ProvideSource selects the randomness source named by cfg.Dice.Source.
func ProvideSource(cfg config.Config) (dice.Source, error) {
	switch cfg.Dice.Source {
	case "crypto":
		return dice.NewCryptoSource(), nil
	case "seeded":
		return dice.NewSeededSource(cfg.Dice.Seed), nil
	default:
		return nil, fmt.Errorf("unknown dice source %q", cfg.Dice.Source)
	}
}

// ProvideHistory returns a roll history of cfg.Dice.HistoryCapacity, or nil when it is zero.
func ProvideHistory(cfg config.Config) *dice.History {
	if cfg.Dice.HistoryCapacity == 0 {
		return nil
	}
	return dice.NewHistory(cfg.Dice.HistoryCapacity)
}

// ProvideRecorder registers roll metrics when cfg.Metrics.Enabled, otherwise returns nil.
func ProvideRecorder(cfg config.Config, reg prometheus.Registerer) (dice.Recorder, error) {
	if !cfg.Metrics.Enabled {
		return nil, nil
	}
	m, err := observability.NewRollMetrics(cfg.Metrics, reg)
	if err != nil {
		return nil, fmt.Errorf("registering roll metrics: %w", err)
	}
	return m, nil
}

// ProvideRoller builds the shared Roller. history and recorder may be nil.
func ProvideRoller(src dice.Source, logger *zap.Logger, history *dice.History, recorder dice.Recorder) *dice.Roller {
	var opts []dice.Option
	if history != nil {
		opts = append(opts, dice.WithHistory(history))
	}
	if recorder != nil {
		opts = append(opts, dice.WithRecorder(recorder))
	}
	return dice.NewLoggedRoller(src, logger, opts...)
}
