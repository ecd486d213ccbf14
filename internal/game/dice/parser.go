package dice

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrMalformedNotation is returned for input that is not dice notation at all.
	ErrMalformedNotation = errors.New("dice: malformed notation")
	// ErrUnsupportedNotation is returned for extended forms such as keep-highest,
	// drop-lowest, rerolls, or multiple pools.
	ErrUnsupportedNotation = errors.New("dice: unsupported notation")
)

const (
	// MaxCount bounds the number of dice in one pool.
	MaxCount = 100
	// MaxSides bounds the faces on one die.
	MaxSides = 1000
)

var (
	notationPattern = regexp.MustCompile(`^(\d*)d(\d+)([+-]\d+)?$`)
	// A valid single pool followed by anything alphabetic (kh, dl, r, a second
	// pool) is an extended form rather than garbage.
	extendedPattern = regexp.MustCompile(`^\d*d\d+.*[a-z!]`)
	// The trailing class excludes signs so a modifier is taken whole or the
	// token is rejected, never truncated to its dice part.
	embeddedPattern = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])(\d*d\d+(?:[+-]\d+)?)(?:$|[^a-z0-9+-])`)
)

// Notation is a parsed single-pool dice expression of the form NdM[+X|-X].
//
// Invariant: 1 <= Count <= MaxCount and 1 <= Sides <= MaxSides after Parse.
type Notation struct {
	Raw      string // original input string
	Count    int
	Sides    int
	Modifier int
}

// String returns the canonical form, e.g. "1d20+5" or "2d6".
func (n Notation) String() string {
	if n.Modifier == 0 {
		return fmt.Sprintf("%dd%d", n.Count, n.Sides)
	}
	return fmt.Sprintf("%dd%d%+d", n.Count, n.Sides, n.Modifier)
}

// IsD20 reports whether the notation is a single d20.
func (n Notation) IsD20() bool {
	return n.Count == 1 && n.Sides == 20
}

// Parse parses a dice expression string into a Notation.
// Matching is case-insensitive and ignores surrounding whitespace; the count
// defaults to 1 when omitted ("d20" is "1d20").
//
// Postcondition: Returns a valid Notation, or an error wrapping
// ErrUnsupportedNotation or ErrMalformedNotation.
func Parse(expr string) (Notation, error) {
	s := strings.ToLower(strings.TrimSpace(expr))
	m := notationPattern.FindStringSubmatch(s)
	if m == nil {
		if extendedPattern.MatchString(s) {
			return Notation{}, fmt.Errorf("%w: %q", ErrUnsupportedNotation, expr)
		}
		return Notation{}, fmt.Errorf("%w: %q", ErrMalformedNotation, expr)
	}

	count := 1
	if m[1] != "" {
		c, err := strconv.Atoi(m[1])
		if err != nil {
			return Notation{}, fmt.Errorf("%w: invalid die count in %q: %v", ErrMalformedNotation, expr, err)
		}
		count = c
	}
	if count < 1 || count > MaxCount {
		return Notation{}, fmt.Errorf("%w: die count in %q must be 1-%d", ErrMalformedNotation, expr, MaxCount)
	}

	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return Notation{}, fmt.Errorf("%w: invalid die sides in %q: %v", ErrMalformedNotation, expr, err)
	}
	if sides < 1 || sides > MaxSides {
		return Notation{}, fmt.Errorf("%w: die sides in %q must be 1-%d", ErrMalformedNotation, expr, MaxSides)
	}

	modifier := 0
	if m[3] != "" {
		modifier, err = strconv.Atoi(m[3])
		if err != nil {
			return Notation{}, fmt.Errorf("%w: invalid modifier in %q: %v", ErrMalformedNotation, expr, err)
		}
	}

	return Notation{
		Raw:      expr,
		Count:    count,
		Sides:    sides,
		Modifier: modifier,
	}, nil
}

// MustParse parses expr and panics on error. Useful for package-level values.
//
// Precondition: expr must be a valid dice expression.
func MustParse(expr string) Notation {
	n, err := Parse(expr)
	if err != nil {
		panic("dice: MustParse failed for expression " + expr + ": " + err.Error())
	}
	return n
}

// FindFirstExpression returns the first dice expression embedded in free text,
// normalised so a bare "d20" comes back as "1d20". A token glued to trailing
// letters or digits ("2d6+3x", "4d6kh3") is not an expression and is skipped.
// It only matches; callers decide what to roll.
//
// Postcondition: ok is false when text contains no dice expression.
func FindFirstExpression(text string) (expr string, ok bool) {
	m := embeddedPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	expr = strings.ToLower(m[1])
	if strings.HasPrefix(expr, "d") {
		expr = "1" + expr
	}
	return expr, true
}
