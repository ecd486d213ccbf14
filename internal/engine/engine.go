// Package engine bundles every rules service around one ruleset and one roller.
package engine

import (
	"go.uber.org/zap"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/config"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/character"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/check"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/concentration"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/inventory"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/progression"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/spells"
)

// Engine is the service handle callers hold. All fields are safe for
// concurrent use; none carries per-character state.
type Engine struct {
	Rules         *ruleset.Rules
	Catalog       *inventory.Registry
	Roller        *dice.Roller
	Checks        *check.Resolver
	Progression   *progression.Calculator
	Slots         *spells.Manager
	Concentration *concentration.Tracker
	Logger        *zap.Logger

	averageHP bool
}

// New assembles an Engine from its services.
//
// Precondition: every argument must be non-nil.
func New(
	cfg config.Config,
	logger *zap.Logger,
	rules *ruleset.Rules,
	catalog *inventory.Registry,
	roller *dice.Roller,
	checks *check.Resolver,
	calc *progression.Calculator,
	slots *spells.Manager,
	tracker *concentration.Tracker,
) *Engine {
	logger.Debug("rules engine ready",
		zap.Int("classes", len(rules.ClassIDs())),
		zap.Int("items", len(catalog.IDs())),
		zap.Int("max_level", rules.MaxLevel()),
	)
	return &Engine{
		Rules:         rules,
		Catalog:       catalog,
		Roller:        roller,
		Checks:        checks,
		Progression:   calc,
		Slots:         slots,
		Concentration: tracker,
		Logger:        logger,
		averageHP:     cfg.Rules.AverageHP,
	}
}

// NewCharacter builds a level 1 character of classID.
func (e *Engine) NewCharacter(name, classID string, abilities character.AbilityScores) (character.Character, error) {
	return character.Build(name, classID, abilities, e.Rules, e.Slots)
}

// LevelUp advances c to the level its experience earns, using the configured hit point mode.
func (e *Engine) LevelUp(c character.Character, usedASIs int) (character.LevelUpResult, error) {
	res, err := character.LevelUp(c, usedASIs, e.Progression, e.Slots, e.averageHP)
	if err != nil {
		return res, err
	}
	if res.LevelsGained > 0 {
		e.Logger.Info("character levelled up",
			zap.String("name", c.Name),
			zap.String("class", c.Class),
			zap.Int("from", c.Level),
			zap.Int("to", res.Character.Level),
			zap.Int("hp_gained", res.HPGained),
		)
	}
	return res, nil
}

// GiveItem adds quantity units of catalog item id to c's inventory, merging stacks.
func (e *Engine) GiveItem(c character.Character, id string, quantity int) (character.Character, error) {
	it, err := e.Catalog.NewItem(id, quantity)
	if err != nil {
		return c, err
	}
	out := c.Clone()
	for i := range out.Inventory {
		if out.Inventory[i].ID == id {
			out.Inventory[i].Quantity += quantity
			return out, nil
		}
	}
	out.Inventory = append(out.Inventory, it)
	return out, nil
}

// Equip moves itemID from c's inventory into slot, logging refusals.
func (e *Engine) Equip(c character.Character, itemID string, slot inventory.Slot) (character.Character, error) {
	out, err := c.Equip(itemID, slot)
	if err != nil {
		e.Logger.Debug("equip refused",
			zap.String("item", itemID),
			zap.String("slot", string(slot)),
			zap.Error(err),
		)
	}
	return out, err
}
