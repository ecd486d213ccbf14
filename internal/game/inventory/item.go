package inventory

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed data
var catalogData embed.FS

// ItemDef defines the static properties of a catalog item loaded from YAML.
type ItemDef struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description"`
	EquipmentType string         `yaml:"equipment_type"`
	Weight        float64        `yaml:"weight"`
	Value         int            `yaml:"value"`
	StatEffects   map[string]int `yaml:"stat_effects"`
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if d.Weight < 0 {
		errs = append(errs, errors.New("Weight must be >= 0"))
	}
	if d.EquipmentType != "" {
		if _, ok := typeSlots[d.EquipmentType]; !ok {
			errs = append(errs, fmt.Errorf("EquipmentType %q has no equipment slot", d.EquipmentType))
		}
	}
	for stat := range d.StatEffects {
		if !IsStat(stat) {
			errs = append(errs, fmt.Errorf("unknown stat %q in StatEffects", stat))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// LoadItems reads all *.yaml and *.yml files from dir, parses each as an
// ItemDef, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(dir string) ([]*ItemDef, error) {
	return LoadItemsFS(os.DirFS(dir), ".")
}

// DefaultCatalog returns the built-in SRD item catalog.
func DefaultCatalog() (*Registry, error) {
	defs, err := LoadItemsFS(catalogData, "data/items")
	if err != nil {
		return nil, err
	}
	reg := NewRegistry()
	for _, d := range defs {
		if err := reg.RegisterItem(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// LoadItemsFS is LoadItems over an fs.FS rooted directory.
func LoadItemsFS(fsys fs.FS, dir string) ([]*ItemDef, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("LoadItems: cannot read directory %q: %w", dir, err)
	}

	var items []*ItemDef
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("LoadItems: cannot read file %q: %w", p, err)
		}
		var d ItemDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("LoadItems: cannot parse file %q: %w", p, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("LoadItems: invalid item in %q: %w", p, err)
		}
		items = append(items, &d)
	}
	return items, nil
}
