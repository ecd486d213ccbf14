package dice_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
)

func TestRollResult_String(t *testing.T) {
	r := dice.RollResult{
		Notation: "2d6+3",
		Rolls:    []int{4, 5},
		Modifier: 3,
		Total:    12,
	}
	assert.Equal(t, "2d6+3 → [4 5] +3 = 12", r.String())
}

func TestRollResult_String_Advantage(t *testing.T) {
	r := dice.RollResult{
		Notation:  "1d20+5",
		Rolls:     []int{12, 17},
		Modifier:  5,
		Total:     22,
		Advantage: dice.Advantage,
	}
	assert.Equal(t, "1d20+5 → [12 17] +5 = 22 (advantage)", r.String())
}

func TestRollResult_String_PanicsOnEmptyNotation(t *testing.T) {
	r := dice.RollResult{Rolls: []int{4}}
	assert.Panics(t, func() { _ = r.String() })
}

func TestRollResult_Natural(t *testing.T) {
	assert.Equal(t, 17, dice.RollResult{Rolls: []int{12, 17}, Advantage: dice.Advantage}.Natural())
	assert.Equal(t, 12, dice.RollResult{Rolls: []int{12, 17}, Advantage: dice.Disadvantage}.Natural())
	assert.Equal(t, 9, dice.RollResult{Rolls: []int{9}}.Natural())
	assert.Equal(t, 0, dice.RollResult{}.Natural())
}

func TestCombineAdvantage(t *testing.T) {
	assert.Equal(t, dice.Normal, dice.CombineAdvantage(false, false))
	assert.Equal(t, dice.Advantage, dice.CombineAdvantage(true, false))
	assert.Equal(t, dice.Disadvantage, dice.CombineAdvantage(false, true))
	assert.Equal(t, dice.Normal, dice.CombineAdvantage(true, true), "advantage and disadvantage cancel")
}

func TestParseAdvantage(t *testing.T) {
	for label, want := range map[string]dice.AdvantageState{
		"":             dice.Normal,
		"normal":       dice.Normal,
		"Advantage":    dice.Advantage,
		"disadvantage": dice.Disadvantage,
	} {
		got, err := dice.ParseAdvantage(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}
	_, err := dice.ParseAdvantage("elven accuracy")
	assert.ErrorIs(t, err, dice.ErrInvalidAdvantage)
}

func TestAdvantageState_String_RoundTrip(t *testing.T) {
	for _, s := range []dice.AdvantageState{dice.Normal, dice.Advantage, dice.Disadvantage} {
		got, err := dice.ParseAdvantage(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestCryptoSource_Intn_InRange(t *testing.T) {
	src := dice.NewCryptoSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestCryptoSource_Intn_PanicsOnZero(t *testing.T) {
	src := dice.NewCryptoSource()
	assert.Panics(t, func() { src.Intn(0) })
}

func TestSeededSource_Deterministic(t *testing.T) {
	a := dice.NewSeededSource(42)
	b := dice.NewSeededSource(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(20), b.Intn(20))
	}
}

func TestSequenceSource_ReplaysFaces(t *testing.T) {
	src := dice.NewSequenceSource(20, 1, 7)
	assert.Equal(t, 19, src.Intn(20))
	assert.Equal(t, 0, src.Intn(20))
	assert.Equal(t, 6, src.Intn(20))
	assert.Equal(t, 19, src.Intn(20), "sequence cycles")
	assert.Equal(t, 0, src.Intn(6), "face 1 on a d6")
	assert.Equal(t, 0, src.Intn(6), "face 7 wraps on a d6")
}

func TestSequenceSource_PanicsWithoutFaces(t *testing.T) {
	assert.Panics(t, func() { dice.NewSequenceSource() })
}

func TestSources_Property_InRange(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 1000).Draw(rt, "n")
		seed := rapid.Uint64().Draw(rt, "seed")
		v := dice.NewSeededSource(seed).Intn(n)
		assert.GreaterOrEqual(rt, v, 0)
		assert.Less(rt, v, n)

		face := rapid.IntRange(-50, 5000).Draw(rt, "face")
		w := dice.NewSequenceSource(face).Intn(n)
		assert.GreaterOrEqual(rt, w, 0)
		assert.Less(rt, w, n)
	})
}

func TestResultString_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		count := rapid.IntRange(1, 10).Draw(rt, "count")
		sides := rapid.IntRange(2, 100).Draw(rt, "sides")
		mod := rapid.IntRange(-20, 20).Draw(rt, "mod")
		n := dice.Notation{Count: count, Sides: sides, Modifier: mod}
		r := dice.Roll(n, dice.Normal, dice.NewSeededSource(uint64(count*sides)))
		s := r.String()
		assert.True(rt, strings.HasPrefix(s, n.String()))
		assert.Contains(rt, s, fmt.Sprintf("= %d", r.Total))
	})
}
