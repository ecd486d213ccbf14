package ruleset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SecuringTheRealm/str-agentic-adventures-sub001/internal/game/ruleset"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadClasses_ParsesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "classes", "eldritch_knight.yaml"), `
id: Eldritch_Knight
name: "Eldritch Knight"
hit_die: 10
caster: half
spellcasting_ability: intelligence
saving_throws: [strength, constitution]
extra_asi_levels: [6, 14]
`)
	writeFile(t, filepath.Join(dir, "classes", "README.md"), "ignored")

	classes, err := ruleset.LoadClasses(os.DirFS(dir), "classes")
	require.NoError(t, err)
	require.Len(t, classes, 1)
	c := classes[0]
	assert.Equal(t, "eldritch_knight", c.ID, "IDs are normalised to lower case")
	assert.Equal(t, "Eldritch Knight", c.Name)
	assert.Equal(t, 10, c.HitDie)
	assert.Equal(t, ruleset.CasterHalf, c.Caster)
	assert.Equal(t, []int{6, 14}, c.ExtraASILevels)
	assert.True(t, c.HasSavingThrow("Strength"))
	assert.False(t, c.HasSavingThrow("wisdom"))
	assert.NoError(t, c.Validate(20))
}

func TestLoadClasses_RejectsUnknownCaster(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "classes", "bad.yaml"), `
id: bad
name: Bad
hit_die: 8
caster: third
`)
	_, err := ruleset.LoadClasses(os.DirFS(dir), "classes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "third")
}

func TestLoadClasses_MissingDir(t *testing.T) {
	_, err := ruleset.LoadClasses(os.DirFS(t.TempDir()), "classes")
	assert.Error(t, err)
}

func TestClass_Validate(t *testing.T) {
	c := &ruleset.Class{ID: "x", Name: "X", HitDie: 7, Caster: ruleset.CasterFull, ExtraASILevels: []int{0, 21}}
	err := c.Validate(20)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hit_die")
	assert.Contains(t, err.Error(), "spellcasting_ability")
	assert.Contains(t, err.Error(), "extra_asi_levels entry 0")
	assert.Contains(t, err.Error(), "extra_asi_levels entry 21")
}

func TestParseCasterArchetype(t *testing.T) {
	for label, want := range map[string]ruleset.CasterArchetype{
		"":     ruleset.CasterNone,
		"none": ruleset.CasterNone,
		"Full": ruleset.CasterFull,
		"half": ruleset.CasterHalf,
		"PACT": ruleset.CasterPact,
	} {
		got, err := ruleset.ParseCasterArchetype(label)
		require.NoError(t, err, label)
		assert.Equal(t, want, got, label)
	}
	_, err := ruleset.ParseCasterArchetype("third")
	assert.Error(t, err)
	assert.Equal(t, "pact", ruleset.CasterPact.String())
	assert.Equal(t, "unknown", ruleset.CasterArchetype(99).String())
}
