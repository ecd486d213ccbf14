package ruleset

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// validHitDice are the hit die sizes a class may declare.
var validHitDice = map[int]bool{6: true, 8: true, 10: true, 12: true}

// Class defines a playable character class.
//
// Precondition: ID and Name must be non-empty and HitDie one of 6, 8, 10, 12 after loading.
type Class struct {
	ID                  string          `yaml:"id"`
	Name                string          `yaml:"name"`
	HitDie              int             `yaml:"hit_die"`
	Caster              CasterArchetype `yaml:"caster"`
	SpellcastingAbility string          `yaml:"spellcasting_ability"`
	SavingThrows        []string        `yaml:"saving_throws"`
	// ExtraASILevels lists ability score improvements granted on top of the
	// standard set, e.g. a fighter's 6th and 14th levels.
	ExtraASILevels []int `yaml:"extra_asi_levels"`
}

// Validate checks that the Class satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (c *Class) Validate(maxLevel int) error {
	var errs []string
	if c.ID == "" {
		errs = append(errs, "id must not be empty")
	}
	if c.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if !validHitDice[c.HitDie] {
		errs = append(errs, fmt.Sprintf("hit_die must be one of 6, 8, 10, 12; got %d", c.HitDie))
	}
	if c.Caster != CasterNone && c.SpellcastingAbility == "" {
		errs = append(errs, "spellcasting_ability is required for casters")
	}
	for _, lvl := range c.ExtraASILevels {
		if lvl < 1 || lvl > maxLevel {
			errs = append(errs, fmt.Sprintf("extra_asi_levels entry %d outside 1-%d", lvl, maxLevel))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("class %q: %s", c.ID, strings.Join(errs, "; "))
	}
	return nil
}

// HasSavingThrow reports whether the class is proficient in saves for ability.
func (c *Class) HasSavingThrow(ability string) bool {
	for _, s := range c.SavingThrows {
		if strings.EqualFold(s, ability) {
			return true
		}
	}
	return false
}

// LoadClasses reads every .yaml/.yml file in dir of fsys and parses each as a Class.
//
// Postcondition: Returns all parsed classes sorted by ID (may be empty) or a non-nil error.
func LoadClasses(fsys fs.FS, dir string) ([]*Class, error) {
	files, err := yamlFiles(fsys, dir)
	if err != nil {
		return nil, err
	}
	classes := make([]*Class, 0, len(files))
	for _, p := range files {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		var c Class
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing class file %s: %w", p, err)
		}
		c.ID = normalizeID(c.ID)
		classes = append(classes, &c)
	}
	sort.Slice(classes, func(i, j int) bool { return classes[i].ID < classes[j].ID })
	return classes, nil
}

func yamlFiles(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		ext := path.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		out = append(out, path.Join(dir, e.Name()))
	}
	return out, nil
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
