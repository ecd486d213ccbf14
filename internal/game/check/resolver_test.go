package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/check"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
)

type scores map[string]int

func (s scores) Score(ability string) (int, bool) {
	v, ok := s[ability]
	return v, ok
}

func newResolver(t require.TestingT, src dice.Source) *check.Resolver {
	rules, err := ruleset.Default()
	require.NoError(t, err)
	roller := dice.NewLoggedRoller(src, zap.NewNop())
	return check.NewResolver(roller, rules, zap.NewNop())
}

func TestAbilityCheck_AddsProficiency(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(10))
	res := r.AbilityCheck(16, true, 2, dice.Normal)
	assert.Equal(t, 5, res.Modifier)
	assert.Equal(t, 15, res.Total)

	res = r.AbilityCheck(16, false, 2, dice.Normal)
	assert.Equal(t, 3, res.Modifier)
	assert.Equal(t, 13, res.Total)
}

func TestAbilityCheck_Advantage(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(4, 15))
	res := r.AbilityCheck(12, false, 2, dice.Advantage)
	assert.Equal(t, []int{4, 15}, res.Rolls)
	assert.Equal(t, 16, res.Total)
}

func TestSkillCheck_Expertise(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(10))
	res, err := r.SkillCheck(scores{"dexterity": 14}, "stealth", false, true, 3, dice.Normal)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Modifier, "+2 dexterity, +6 doubled proficiency")
	assert.Equal(t, 18, res.Total)
}

func TestSkillCheck_Errors(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(10))
	_, err := r.SkillCheck(scores{"dexterity": 14}, "juggling", true, false, 2, dice.Normal)
	assert.ErrorIs(t, err, check.ErrUnknownSkill)

	_, err = r.SkillCheck(scores{"dexterity": 14}, "arcana", true, false, 2, dice.Normal)
	assert.ErrorIs(t, err, check.ErrUnknownAbility)
}

func TestSavingThrow_SuccessAtDC(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(12, 11))
	res := r.SavingThrow(14, false, 2, 14, dice.Normal)
	assert.Equal(t, 14, res.Roll.Total)
	assert.Equal(t, 14, res.DC)
	assert.True(t, res.Success, "meeting the DC succeeds")

	res = r.SavingThrow(14, false, 2, 14, dice.Normal)
	assert.Equal(t, 13, res.Roll.Total)
	assert.False(t, res.Success)
}

func TestSavingThrow_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := newResolver(rt, dice.NewSeededSource(rapid.Uint64().Draw(rt, "seed")))
		dc := rapid.IntRange(1, 30).Draw(rt, "dc")
		score := rapid.IntRange(1, 30).Draw(rt, "score")
		res := r.SavingThrow(score, rapid.Bool().Draw(rt, "prof"), 3, dc, dice.Normal)
		assert.Equal(rt, res.Roll.Total >= dc, res.Success)
	})
}

func TestResolveAttack_NaturalTwentyAlwaysHits(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(20))
	res := r.ResolveAttack(-5, 30, dice.Normal)
	assert.Equal(t, 15, res.Roll.Total)
	assert.True(t, res.IsHit)
	assert.True(t, res.IsCriticalHit)
	assert.False(t, res.IsCriticalMiss)
}

func TestResolveAttack_NaturalOneAlwaysMisses(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(1))
	res := r.ResolveAttack(30, 10, dice.Normal)
	assert.Equal(t, 31, res.Roll.Total)
	assert.False(t, res.IsHit)
	assert.True(t, res.IsCriticalMiss)
}

func TestResolveAttack_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		face := rapid.IntRange(1, 20).Draw(rt, "face")
		bonus := rapid.IntRange(-10, 20).Draw(rt, "bonus")
		ac := rapid.IntRange(5, 30).Draw(rt, "ac")
		r := newResolver(rt, dice.NewSequenceSource(face))
		res := r.ResolveAttack(bonus, ac, dice.Normal)

		assert.Equal(rt, face, res.Natural)
		switch face {
		case 20:
			assert.True(rt, res.IsHit)
		case 1:
			assert.False(rt, res.IsHit)
		default:
			assert.Equal(rt, face+bonus >= ac, res.IsHit)
		}
	})
}

func TestResolveAttack_AdvantageAndDisadvantageCancel(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(8, 19))
	res := r.ResolveAttack(5, 15, dice.CombineAdvantage(true, true))
	assert.Equal(t, dice.Normal, res.Roll.Advantage)
	assert.Len(t, res.Roll.Rolls, 1)
	assert.Equal(t, 13, res.Roll.Total)
	assert.False(t, res.IsHit)
}

func TestResolveAttack_DisadvantageUsesLowerForCritical(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(20, 1))
	res := r.ResolveAttack(10, 5, dice.Disadvantage)
	assert.Equal(t, 1, res.Natural)
	assert.True(t, res.IsCriticalMiss)
	assert.False(t, res.IsHit)
}

func TestRollDamage_CriticalDoublesDice(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(6, 5))
	res, err := r.RollDamage("1d8+3", true)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5}, res.Rolls)
	assert.Equal(t, 14, res.Total)

	res, err = r.RollDamage("1d8+3", false)
	require.NoError(t, err)
	assert.Equal(t, []int{6}, res.Rolls)
	assert.Equal(t, 9, res.Total)
}

func TestAttack_HitRollsDamage(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(15, 4))
	atk, dmg, err := r.Attack(5, 15, "1d6+2", dice.Normal)
	require.NoError(t, err)
	assert.True(t, atk.IsHit)
	assert.Equal(t, 6, dmg.Total)
}

func TestAttack_CriticalDoublesDamageDice(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(20, 3, 4))
	atk, dmg, err := r.Attack(0, 25, "1d6+2", dice.Normal)
	require.NoError(t, err)
	assert.True(t, atk.IsCriticalHit)
	assert.Equal(t, []int{3, 4}, dmg.Rolls)
	assert.Equal(t, 9, dmg.Total)
}

func TestAttack_MissRollsNoDamage(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(2))
	atk, dmg, err := r.Attack(0, 15, "1d6", dice.Normal)
	require.NoError(t, err)
	assert.False(t, atk.IsHit)
	assert.Empty(t, dmg.Rolls)
	assert.Equal(t, 0, dmg.Total)
}

func TestAttack_BadDamageNotation(t *testing.T) {
	r := newResolver(t, dice.NewSequenceSource(20))
	_, _, err := r.Attack(0, 15, "2d6kh1", dice.Normal)
	assert.ErrorIs(t, err, dice.ErrUnsupportedNotation)
}
