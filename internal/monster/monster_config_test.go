package monster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonsterConfigLoaded(t *testing.T) {
	require.NotNil(t, MonsterConfig)
	keys := MonsterConfig.GetMenuKeys()
	require.Len(t, keys, 6)
	assert.Equal(t, "red", keys[0])

	assert.True(t, MonsterConfig.IsReady("red"))
	assert.False(t, MonsterConfig.IsReady("blue"))
	assert.False(t, MonsterConfig.IsReady("nope"))

	def, err := MonsterConfig.GetMonsterByKey("red")
	require.NoError(t, err)
	assert.Equal(t, "Red", def.Name)
	assert.Equal(t, 3.0, def.GetSizeCells())

	_, key, err := MonsterConfig.GetMonsterByLetter("P")
	require.NoError(t, err)
	assert.Equal(t, "purple", key)
}

func TestMonsterConfigRejectsConflicts(t *testing.T) {
	saved := MonsterConfig
	defer func() { MonsterConfig = saved }()

	dir := t.TempDir()
	path := filepath.Join(dir, "monsters.yaml")
	data := `
menu_order: [a, b, c]
monsters:
  a: {name: A, letter: X}
  b: {name: B, letter: X}
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadMonsterConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Letter 'X'")
	assert.Contains(t, err.Error(), "Menu entry 'c'")

	_, err = LoadMonsterConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read monster config file")
	assert.Panics(t, func() { MustLoadMonsterConfig(filepath.Join(dir, "missing.yaml")) })
}

func TestDefaultSizeCells(t *testing.T) {
	def := &MonsterDefinition{}
	assert.Equal(t, 1.0, def.GetSizeCells())
}
