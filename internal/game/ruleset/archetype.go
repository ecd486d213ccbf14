package ruleset

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CasterArchetype selects which spell-slot table a class uses.
type CasterArchetype int

const (
	// CasterNone classes have no spell slots.
	CasterNone CasterArchetype = iota
	// CasterFull classes use the full-caster table.
	CasterFull
	// CasterHalf classes use the full-caster row at half their level; slots begin at level 2.
	CasterHalf
	// CasterPact classes use pact magic: every slot sits at one spell level.
	CasterPact
)

var archetypeNames = map[CasterArchetype]string{
	CasterNone: "none",
	CasterFull: "full",
	CasterHalf: "half",
	CasterPact: "pact",
}

// String returns the archetype label used in content files.
func (a CasterArchetype) String() string {
	if s, ok := archetypeNames[a]; ok {
		return s
	}
	return "unknown"
}

// ParseCasterArchetype converts a content label into a CasterArchetype.
// The empty string means CasterNone.
//
// Postcondition: Returns a valid archetype or a non-nil error.
func ParseCasterArchetype(s string) (CasterArchetype, error) {
	label := strings.ToLower(strings.TrimSpace(s))
	if label == "" {
		return CasterNone, nil
	}
	for a, name := range archetypeNames {
		if name == label {
			return a, nil
		}
	}
	return CasterNone, fmt.Errorf("unknown caster archetype %q", s)
}

// UnmarshalYAML decodes a caster label such as "full" or "pact".
func (a *CasterArchetype) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCasterArchetype(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*a = parsed
	return nil
}
