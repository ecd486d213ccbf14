package check

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
)

// Resolver rolls d20 tests through a shared dice.Roller.
// It holds no per-character state and is safe for concurrent use when its
// Roller's Source is.
type Resolver struct {
	roller *dice.Roller
	rules  *ruleset.Rules
	logger *zap.Logger
}

// NewResolver creates a Resolver.
//
// Precondition: roller, rules, and logger must be non-nil.
func NewResolver(roller *dice.Roller, rules *ruleset.Rules, logger *zap.Logger) *Resolver {
	return &Resolver{roller: roller, rules: rules, logger: logger}
}

// Roller returns the dice roller backing this Resolver.
func (r *Resolver) Roller() *dice.Roller { return r.roller }

// AbilityCheck rolls 1d20 + ability modifier, adding the proficiency bonus when proficient.
//
// Postcondition: result.Modifier == AbilityModifier(score) + (proficiencyBonus if proficient).
func (r *Resolver) AbilityCheck(score int, proficient bool, proficiencyBonus int, adv dice.AdvantageState) dice.RollResult {
	mod := AbilityModifier(score)
	if proficient {
		mod += proficiencyBonus
	}
	return r.roller.RollD20(mod, adv)
}

// SkillCheck rolls a check for skill using the governing ability from the
// skill table. Expertise doubles the proficiency bonus and implies proficiency.
//
// Postcondition: Returns an error wrapping ErrUnknownSkill or ErrUnknownAbility
// when the skill or its ability score cannot be resolved.
func (r *Resolver) SkillCheck(scores AbilityLookup, skill string, proficient, expertise bool, proficiencyBonus int, adv dice.AdvantageState) (dice.RollResult, error) {
	ability, ok := r.rules.SkillAbility(skill)
	if !ok {
		return dice.RollResult{}, fmt.Errorf("%w: %q", ErrUnknownSkill, skill)
	}
	score, ok := scores.Score(ability)
	if !ok {
		return dice.RollResult{}, fmt.Errorf("%w: %q", ErrUnknownAbility, ability)
	}
	bonus := proficiencyBonus
	if expertise {
		bonus *= 2
		proficient = true
	}
	return r.AbilityCheck(score, proficient, bonus, adv), nil
}

// SavingThrow rolls an ability check against dc.
//
// Postcondition: result.Success == (result.Roll.Total >= dc).
func (r *Resolver) SavingThrow(score int, proficient bool, proficiencyBonus, dc int, adv dice.AdvantageState) SaveResult {
	roll := r.AbilityCheck(score, proficient, proficiencyBonus, adv)
	res := SaveResult{Roll: roll, DC: dc, Success: roll.Total >= dc}
	r.logger.Debug("saving throw",
		zap.Int("dc", dc),
		zap.Int("total", roll.Total),
		zap.Bool("success", res.Success),
	)
	return res
}

// ResolveAttack rolls 1d20 + attackBonus against targetAC.
//
// Postcondition: a natural 20 always hits and is a critical hit; a natural 1
// always misses and is a critical miss; otherwise IsHit == (total >= targetAC).
func (r *Resolver) ResolveAttack(attackBonus, targetAC int, adv dice.AdvantageState) AttackResult {
	roll := r.roller.RollD20(attackBonus, adv)
	natural := roll.Natural()
	hit, critHit, critMiss := OutcomeFor(natural, roll.Total, targetAC)
	res := AttackResult{
		Roll:           roll,
		Natural:        natural,
		TargetAC:       targetAC,
		IsHit:          hit,
		IsCriticalHit:  critHit,
		IsCriticalMiss: critMiss,
	}
	r.logger.Debug("attack resolved",
		zap.Int("natural", natural),
		zap.Int("total", roll.Total),
		zap.Int("target_ac", targetAC),
		zap.Bool("hit", hit),
		zap.Bool("critical_hit", critHit),
		zap.Bool("critical_miss", critMiss),
	)
	return res
}

// RollDamage rolls damage for expr. On a critical hit the damage dice are
// rolled twice while the flat modifier is added once.
//
// Postcondition: on success result.Total >= 1.
func (r *Resolver) RollDamage(expr string, critical bool) (dice.RollResult, error) {
	if critical {
		return r.roller.RollCritical(expr)
	}
	return r.roller.RollDamage(expr)
}

// Attack resolves an attack and, when it hits, rolls its damage.
// A miss returns a zero damage result.
func (r *Resolver) Attack(attackBonus, targetAC int, damageExpr string, adv dice.AdvantageState) (AttackResult, dice.RollResult, error) {
	if _, err := dice.Parse(damageExpr); err != nil {
		return AttackResult{}, dice.RollResult{}, err
	}
	atk := r.ResolveAttack(attackBonus, targetAC, adv)
	if !atk.IsHit {
		return atk, dice.RollResult{}, nil
	}
	dmg, err := r.RollDamage(damageExpr, atk.IsCriticalHit)
	return atk, dmg, err
}
