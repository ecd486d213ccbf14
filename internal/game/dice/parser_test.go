package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/dice"
)

func TestParse_Valid(t *testing.T) {
	cases := []struct {
		in    string
		count int
		sides int
		mod   int
		canon string
	}{
		{"d20", 1, 20, 0, "1d20"},
		{"1d20", 1, 20, 0, "1d20"},
		{"2d6+3", 2, 6, 3, "2d6+3"},
		{"4d8-2", 4, 8, -2, "4d8-2"},
		{"  D12+1 ", 1, 12, 1, "1d12+1"},
		{"3D4", 3, 4, 0, "3d4"},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			n, err := dice.Parse(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.count, n.Count)
			assert.Equal(t, c.sides, n.Sides)
			assert.Equal(t, c.mod, n.Modifier)
			assert.Equal(t, c.in, n.Raw)
			assert.Equal(t, c.canon, n.String())
		})
	}
}

func TestParse_Unsupported(t *testing.T) {
	for _, in := range []string{"4d6kh3", "4d6k3", "4d6dl1", "2d20kl1", "2d6+1d4", "1d20r1", "3d6!", "1d6ro<2"} {
		t.Run(in, func(t *testing.T) {
			_, err := dice.Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, dice.ErrUnsupportedNotation)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "20", "2d", "d", "2d6+", "0d6", "1d0", "101d6", "1d1001", "1 d20", "+5", "d%"} {
		t.Run(in, func(t *testing.T) {
			_, err := dice.Parse(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, dice.ErrMalformedNotation)
		})
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, 8, dice.MustParse("1d8").Sides)
	assert.Panics(t, func() { dice.MustParse("4d6kh3") })
}

func TestNotation_IsD20(t *testing.T) {
	assert.True(t, dice.MustParse("d20+4").IsD20())
	assert.False(t, dice.MustParse("2d20").IsD20())
	assert.False(t, dice.MustParse("1d12").IsD20())
}

func TestParse_Property_CanonicalRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := dice.Notation{
			Count:    rapid.IntRange(1, dice.MaxCount).Draw(rt, "count"),
			Sides:    rapid.IntRange(1, dice.MaxSides).Draw(rt, "sides"),
			Modifier: rapid.IntRange(-100, 100).Draw(rt, "mod"),
		}
		got, err := dice.Parse(n.String())
		require.NoError(rt, err)
		assert.Equal(rt, n.Count, got.Count)
		assert.Equal(rt, n.Sides, got.Sides)
		assert.Equal(rt, n.Modifier, got.Modifier)
	})
}

func TestFindFirstExpression(t *testing.T) {
	cases := []struct {
		text string
		want string
		ok   bool
	}{
		{"I swing my axe for 1d12+3 damage", "1d12+3", true},
		{"roll d20 for perception", "1d20", true},
		{"D20+5 to hit, then 2d6", "1d20+5", true},
		{"I cast fireball (8d6)", "8d6", true},
		{"attack for 2d6+3x", "", false},
		{"roll 4d6kh3 now", "", false},
		{"roll 4d6kh3 then 1d4-1 more", "1d4-1", true},
		{"adding 3 gold to the pile", "", false},
		{"I look around", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			got, ok := dice.FindFirstExpression(c.text)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.want, got)
		})
	}
}
