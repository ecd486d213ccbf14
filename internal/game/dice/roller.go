package dice

// Roll evaluates n using src. Advantage and Disadvantage apply only to a single
// d20; any other notation is rolled normally and reported as Normal.
//
// Precondition: n must come from Parse; src must be non-nil.
// Postcondition: for Normal, len(result.Rolls) == n.Count and
// result.Total == sum(result.Rolls) + n.Modifier; for Advantage/Disadvantage,
// len(result.Rolls) == 2 and result.Total == result.Natural() + n.Modifier.
func Roll(n Notation, adv AdvantageState, src Source) RollResult {
	if adv != Normal && n.IsD20() {
		a := src.Intn(20) + 1
		b := src.Intn(20) + 1
		r := RollResult{
			Notation:  n.String(),
			Rolls:     []int{a, b},
			Modifier:  n.Modifier,
			Advantage: adv,
		}
		r.Total = r.Natural() + n.Modifier
		return r
	}

	rolls := make([]int, n.Count)
	total := n.Modifier
	for i := range rolls {
		rolls[i] = src.Intn(n.Sides) + 1
		total += rolls[i]
	}
	return RollResult{
		Notation: n.String(),
		Rolls:    rolls,
		Modifier: n.Modifier,
		Total:    total,
	}
}

// RollExpr parses expr and rolls it using src in a single call.
//
// Postcondition: Returns a RollResult or a parse error.
func RollExpr(expr string, adv AdvantageState, src Source) (RollResult, error) {
	n, err := Parse(expr)
	if err != nil {
		return RollResult{}, err
	}
	return Roll(n, adv, src), nil
}

// RollDamage rolls n as damage. Damage is never below 1.
//
// Postcondition: result.Total >= 1.
func RollDamage(n Notation, src Source) RollResult {
	r := Roll(n, Normal, src)
	r.Total = max(r.Total, 1)
	return r
}

// RollCritical rolls critical-hit damage: the dice of n are rolled twice and
// the flat modifier is added once.
//
// Postcondition: len(result.Rolls) == 2*n.Count; result.Total >= 1.
func RollCritical(n Notation, src Source) RollResult {
	first := Roll(n, Normal, src)
	extra := Roll(Notation{Count: n.Count, Sides: n.Sides}, Normal, src)
	r := RollResult{
		Notation: n.String(),
		Rolls:    append(first.Rolls, extra.Rolls...),
		Modifier: n.Modifier,
		Total:    first.Total + extra.Total,
	}
	r.Total = max(r.Total, 1)
	return r
}

// IsCriticalHit reports whether a natural d20 face is a 20.
func IsCriticalHit(natural int) bool { return natural == 20 }

// IsCriticalMiss reports whether a natural d20 face is a 1.
func IsCriticalMiss(natural int) bool { return natural == 1 }
