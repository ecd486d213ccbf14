// Package ruleset holds the immutable SRD tables every rules component reads:
// experience thresholds, proficiency bands, ASI levels, classes, skills, and
// spell-slot tables. A Rules value is built once at startup and shared
// read-only; nothing in it changes after loading.
package ruleset

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// SpellLevels is the number of spell-slot levels tracked per character.
const SpellLevels = 9

var (
	// ErrLevelOutOfRange is returned for character levels outside 1..MaxLevel.
	ErrLevelOutOfRange = errors.New("level out of range")
	// ErrUnknownClass is returned for class IDs absent from the class table.
	ErrUnknownClass = errors.New("unknown class")
)

//go:embed data
var defaultData embed.FS

// ProficiencyBand maps an inclusive level range to a proficiency bonus.
type ProficiencyBand struct {
	MinLevel int `yaml:"min_level"`
	MaxLevel int `yaml:"max_level"`
	Bonus    int `yaml:"bonus"`
}

// PactSlots is one row of the pact magic table.
type PactSlots struct {
	SlotLevel int `yaml:"slot_level"`
	Slots     int `yaml:"slots"`
}

type progressionFile struct {
	MaxLevel             int               `yaml:"max_level"`
	ExperienceThresholds []int             `yaml:"experience_thresholds"`
	ProficiencyBands     []ProficiencyBand `yaml:"proficiency_bands"`
	ASILevels            []int             `yaml:"asi_levels"`
}

type spellSlotFile struct {
	FullCaster [][]int     `yaml:"full_caster"`
	PactMagic  []PactSlots `yaml:"pact_magic"`
}

// Rules is the loaded, validated SRD rules object.
type Rules struct {
	maxLevel   int
	thresholds []int
	bands      []ProficiencyBand
	asiLevels  []int
	full       [][SpellLevels]int
	pact       []PactSlots
	skills     map[string]string
	classes    map[string]*Class
	classIDs   []string
}

// Default returns the built-in SRD rules.
//
// Postcondition: Returns a valid Rules or a non-nil error (only on corrupted embedded data).
func Default() (*Rules, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, fmt.Errorf("ruleset: opening embedded data: %w", err)
	}
	return LoadFS(sub)
}

// Load reads rules content from dir on disk.
//
// Precondition: dir must contain progression.yaml, spell_slots.yaml, skills.yaml, and classes/.
// Postcondition: Returns a valid Rules or a non-nil error.
func Load(dir string) (*Rules, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads rules content from the root of fsys.
//
// Postcondition: Returns a valid Rules or a non-nil error.
func LoadFS(fsys fs.FS) (*Rules, error) {
	var prog progressionFile
	if err := decodeFile(fsys, "progression.yaml", &prog); err != nil {
		return nil, err
	}
	var slots spellSlotFile
	if err := decodeFile(fsys, "spell_slots.yaml", &slots); err != nil {
		return nil, err
	}
	skills := map[string]string{}
	if err := decodeFile(fsys, "skills.yaml", &skills); err != nil {
		return nil, err
	}
	classes, err := LoadClasses(fsys, "classes")
	if err != nil {
		return nil, fmt.Errorf("ruleset: %w", err)
	}
	return build(prog, slots, skills, classes)
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("ruleset: reading %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("ruleset: parsing %s: %w", name, err)
	}
	return nil
}

func build(prog progressionFile, slots spellSlotFile, skills map[string]string, classes []*Class) (*Rules, error) {
	var errs []string
	r := &Rules{
		maxLevel:   prog.MaxLevel,
		thresholds: prog.ExperienceThresholds,
		bands:      prog.ProficiencyBands,
		asiLevels:  append([]int(nil), prog.ASILevels...),
		pact:       slots.PactMagic,
		skills:     make(map[string]string, len(skills)),
		classes:    make(map[string]*Class, len(classes)),
	}
	sort.Ints(r.asiLevels)

	if r.maxLevel < 1 {
		errs = append(errs, fmt.Sprintf("max_level must be >= 1, got %d", r.maxLevel))
	}
	if len(r.thresholds) != r.maxLevel {
		errs = append(errs, fmt.Sprintf("experience_thresholds must have %d entries, got %d", r.maxLevel, len(r.thresholds)))
	}
	for i := 1; i < len(r.thresholds); i++ {
		if r.thresholds[i] <= r.thresholds[i-1] {
			errs = append(errs, fmt.Sprintf("experience_thresholds must be strictly increasing at level %d", i+1))
		}
	}
	if len(r.thresholds) > 0 && r.thresholds[0] != 0 {
		errs = append(errs, "experience_thresholds must start at 0")
	}
	for lvl := 1; lvl <= r.maxLevel; lvl++ {
		if _, ok := r.bandFor(lvl); !ok {
			errs = append(errs, fmt.Sprintf("proficiency_bands do not cover level %d", lvl))
		}
	}
	for _, lvl := range r.asiLevels {
		if lvl < 1 || lvl > r.maxLevel {
			errs = append(errs, fmt.Sprintf("asi_levels entry %d outside 1-%d", lvl, r.maxLevel))
		}
	}

	var err error
	if r.full, err = slotRows("full_caster", slots.FullCaster, r.maxLevel); err != nil {
		errs = append(errs, err.Error())
	}
	if len(r.pact) != r.maxLevel {
		errs = append(errs, fmt.Sprintf("pact_magic must have %d rows, got %d", r.maxLevel, len(r.pact)))
	}
	for i, p := range r.pact {
		if p.SlotLevel < 1 || p.SlotLevel > SpellLevels || p.Slots < 0 {
			errs = append(errs, fmt.Sprintf("pact_magic row %d invalid: %+v", i+1, p))
		}
	}

	for skill, ability := range skills {
		r.skills[normalizeID(skill)] = normalizeID(ability)
	}
	for _, c := range classes {
		if err := c.Validate(r.maxLevel); err != nil {
			errs = append(errs, err.Error())
			continue
		}
		if _, dup := r.classes[c.ID]; dup {
			errs = append(errs, fmt.Sprintf("class %q defined twice", c.ID))
			continue
		}
		r.classes[c.ID] = c
		r.classIDs = append(r.classIDs, c.ID)
	}
	sort.Strings(r.classIDs)

	if len(errs) > 0 {
		return nil, fmt.Errorf("ruleset validation failed: %s", strings.Join(errs, "; "))
	}
	return r, nil
}

func slotRows(name string, rows [][]int, maxLevel int) ([][SpellLevels]int, error) {
	if len(rows) != maxLevel {
		return nil, fmt.Errorf("%s must have %d rows, got %d", name, maxLevel, len(rows))
	}
	out := make([][SpellLevels]int, len(rows))
	for i, row := range rows {
		if len(row) != SpellLevels {
			return nil, fmt.Errorf("%s row %d must have %d entries, got %d", name, i+1, SpellLevels, len(row))
		}
		for j, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%s row %d has negative slot count", name, i+1)
			}
			out[i][j] = v
		}
	}
	return out, nil
}

func (r *Rules) bandFor(level int) (ProficiencyBand, bool) {
	for _, b := range r.bands {
		if level >= b.MinLevel && level <= b.MaxLevel {
			return b, true
		}
	}
	return ProficiencyBand{}, false
}

// MaxLevel returns the highest attainable character level.
func (r *Rules) MaxLevel() int { return r.maxLevel }

// ValidateLevel returns an error wrapping ErrLevelOutOfRange unless 1 <= level <= MaxLevel().
func (r *Rules) ValidateLevel(level int) error {
	if level < 1 || level > r.maxLevel {
		return fmt.Errorf("%w: %d (must be 1-%d)", ErrLevelOutOfRange, level, r.maxLevel)
	}
	return nil
}

// ExperienceThreshold returns the total experience required to reach level.
//
// Precondition: ValidateLevel(level) == nil.
func (r *Rules) ExperienceThreshold(level int) int {
	return r.thresholds[level-1]
}

// ProficiencyBonus returns the proficiency bonus for level.
//
// Postcondition: Returns an error wrapping ErrLevelOutOfRange for invalid levels.
func (r *Rules) ProficiencyBonus(level int) (int, error) {
	if err := r.ValidateLevel(level); err != nil {
		return 0, err
	}
	b, _ := r.bandFor(level)
	return b.Bonus, nil
}

// ASILevels returns the standard ability score improvement levels in ascending order.
func (r *Rules) ASILevels() []int {
	return append([]int(nil), r.asiLevels...)
}

// Class returns the class registered under id (case-insensitive).
//
// Postcondition: Returns an error wrapping ErrUnknownClass when id is not registered.
func (r *Rules) Class(id string) (Class, error) {
	c, ok := r.classes[normalizeID(id)]
	if !ok {
		return Class{}, fmt.Errorf("%w: %q", ErrUnknownClass, id)
	}
	return *c, nil
}

// ClassIDs returns all registered class IDs in sorted order.
func (r *Rules) ClassIDs() []string {
	return append([]string(nil), r.classIDs...)
}

// Archetype returns the caster archetype of classID; unknown classes are CasterNone.
func (r *Rules) Archetype(classID string) CasterArchetype {
	if c, ok := r.classes[normalizeID(classID)]; ok {
		return c.Caster
	}
	return CasterNone
}

// SkillAbility returns the ability governing skill, e.g. "stealth" -> "dexterity".
func (r *Rules) SkillAbility(skill string) (string, bool) {
	a, ok := r.skills[normalizeID(skill)]
	return a, ok
}

// FullCasterRow returns the full-caster slot row for level.
//
// Precondition: ValidateLevel(level) == nil.
func (r *Rules) FullCasterRow(level int) [SpellLevels]int { return r.full[level-1] }

// HalfCasterRow returns the half-caster slot row for level: the full-caster
// row at effective level level/2, or no slots while that is zero.
//
// Precondition: ValidateLevel(level) == nil.
func (r *Rules) HalfCasterRow(level int) [SpellLevels]int {
	effective := level / 2
	if effective == 0 {
		return [SpellLevels]int{}
	}
	return r.full[effective-1]
}

// PactRow returns the pact magic entry for level.
//
// Precondition: ValidateLevel(level) == nil.
func (r *Rules) PactRow(level int) PactSlots { return r.pact[level-1] }
