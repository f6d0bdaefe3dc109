package main

import (
	"math/rand"
	"strings"
	"testing"

	"redgrid/internal/config"
	"redgrid/internal/level"
	"redgrid/internal/monster"
	"redgrid/internal/world"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkers(t *testing.T) {
	defs, err := monster.LoadMonsterConfig("../../assets/monsters.yaml")
	require.NoError(t, err)

	lvl := level.New(config.Default(), rand.New(rand.NewSource(1)))
	marks := markers(lvl, monsterLetter(defs, "red"))

	assert.Equal(t, markPlayer, marks[world.Cell{X: 2, Y: 2}])
	assert.Equal(t, 'R', marks[world.Cell{X: 97, Y: 27}])
	assert.Equal(t, markMoverH, marks[world.Cell{X: 5, Y: 3}])
	assert.Equal(t, markMoverV, marks[world.Cell{X: 8, Y: 4}])

	rows := strings.Split(strings.TrimSuffix(lvl.Grid().Render(marks), "\n"), "\n")
	require.Len(t, rows, 30)
	assert.Equal(t, "#.P", rows[2][:3])
}

func TestMonsterLetterFallback(t *testing.T) {
	assert.Equal(t, markFallback, monsterLetter(nil, "red"))
}

func TestLegendText(t *testing.T) {
	defs, err := monster.LoadMonsterConfig("../../assets/monsters.yaml")
	require.NoError(t, err)
	lvl := level.New(config.Default(), rand.New(rand.NewSource(1)))

	text := legendText(lvl, defs)
	assert.Contains(t, text, "100x30 cells, 32 movers")
	assert.Contains(t, text, "R Red (ready)")
	assert.Contains(t, text, "P Purple (locked)")
}
