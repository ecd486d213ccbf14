package progression_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"pgregory.net/rapid"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/progression"
	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
)

func newCalculator(t require.TestingT, src dice.Source) *progression.Calculator {
	rules, err := ruleset.Default()
	require.NoError(t, err)
	return progression.NewCalculator(rules, dice.NewLoggedRoller(src, zap.NewNop()))
}

func TestExperienceToLevel_Thresholds(t *testing.T) {
	c := newCalculator(t, dice.NewSeededSource(1))
	cases := []struct {
		xp, level, next, needed int
	}{
		{0, 1, 300, 300},
		{299, 1, 300, 1},
		{300, 2, 900, 600},
		{6500, 5, 14000, 7500},
		{354999, 19, 355000, 1},
	}
	for _, tc := range cases {
		info, err := c.ExperienceToLevel(tc.xp)
		require.NoError(t, err)
		assert.Equal(t, tc.level, info.Level, "xp %d", tc.xp)
		assert.True(t, info.HasNextLevel)
		assert.Equal(t, tc.next, info.XPForNextLevel)
		assert.Equal(t, tc.needed, info.XPNeeded)
	}
}

func TestExperienceToLevel_MaxLevel(t *testing.T) {
	c := newCalculator(t, dice.NewSeededSource(1))
	for _, xp := range []int{355000, 1_000_000} {
		info, err := c.ExperienceToLevel(xp)
		require.NoError(t, err)
		assert.Equal(t, 20, info.Level)
		assert.False(t, info.HasNextLevel)
		assert.Equal(t, 0, info.XPNeeded)
	}
}

func TestExperienceToLevel_Negative(t *testing.T) {
	c := newCalculator(t, dice.NewSeededSource(1))
	_, err := c.ExperienceToLevel(-1)
	assert.ErrorIs(t, err, progression.ErrNegativeExperience)
}

func TestExperienceToLevel_Property_Monotonic(t *testing.T) {
	c := newCalculator(t, dice.NewSeededSource(1))
	rapid.Check(t, func(rt *rapid.T) {
		a := rapid.IntRange(0, 400000).Draw(rt, "a")
		b := rapid.IntRange(a, 400000).Draw(rt, "b")
		la, err := c.ExperienceToLevel(a)
		require.NoError(rt, err)
		lb, err := c.ExperienceToLevel(b)
		require.NoError(rt, err)
		assert.LessOrEqual(rt, la.Level, lb.Level)
		if la.HasNextLevel {
			assert.Equal(rt, la.XPForNextLevel-a, la.XPNeeded)
			assert.Positive(rt, la.XPNeeded)
		}
	})
}

func TestProficiencyBonus(t *testing.T) {
	c := newCalculator(t, dice.NewSeededSource(1))
	for level := 1; level <= 20; level++ {
		got, err := c.ProficiencyBonus(level)
		require.NoError(t, err)
		assert.Equal(t, 2+(level-1)/4, got, "level %d", level)
	}
	_, err := c.ProficiencyBonus(0)
	assert.ErrorIs(t, err, ruleset.ErrLevelOutOfRange)
	_, err = c.ProficiencyBonus(21)
	assert.ErrorIs(t, err, ruleset.ErrLevelOutOfRange)
}

func TestASIEligibility(t *testing.T) {
	c := newCalculator(t, dice.NewSeededSource(1))

	st, err := c.ASIEligibility(3, 0)
	require.NoError(t, err)
	assert.Equal(t, progression.ASIStatus{}, st)

	st, err = c.ASIEligibility(8, 1)
	require.NoError(t, err)
	assert.Equal(t, progression.ASIStatus{AvailableAtCurrentLevel: 2, Remaining: 1, CanImprove: true}, st)

	st, err = c.ASIEligibility(20, 7)
	require.NoError(t, err)
	assert.Equal(t, 5, st.AvailableAtCurrentLevel)
	assert.Equal(t, 0, st.Remaining, "over-spending never goes negative")
	assert.False(t, st.CanImprove)

	_, err = c.ASIEligibility(21, 0)
	assert.ErrorIs(t, err, ruleset.ErrLevelOutOfRange)
	_, err = c.ASIEligibility(4, -1)
	assert.ErrorIs(t, err, progression.ErrNegativeCount)
}

func TestASIEligibilityForClass(t *testing.T) {
	c := newCalculator(t, dice.NewSeededSource(1))

	fighter, err := c.ASIEligibilityForClass("fighter", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, fighter.AvailableAtCurrentLevel)

	rogue, err := c.ASIEligibilityForClass("Rogue", 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, rogue.AvailableAtCurrentLevel)
	assert.Equal(t, 1, rogue.Remaining)

	wizard, err := c.ASIEligibilityForClass("wizard", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, wizard.AvailableAtCurrentLevel)

	_, err = c.ASIEligibilityForClass("artificer", 4, 0)
	assert.ErrorIs(t, err, ruleset.ErrUnknownClass)
}
