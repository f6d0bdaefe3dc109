// Command mapviewer prints a generated level as text with spawn markers.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"redgrid/internal/config"
	"redgrid/internal/level"
	"redgrid/internal/logger"
	"redgrid/internal/monster"
	"redgrid/internal/world"
)

const (
	markPlayer   = 'P'
	markMoverH   = '>'
	markMoverV   = 'v'
	markFallback = 'M'
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	monstersPath := flag.String("monsters", "assets/monsters.yaml", "path to monsters.yaml")
	width := flag.Int("width", 0, "override level width in cells")
	height := flag.Int("height", 0, "override level height in cells")
	seed := flag.Int64("seed", 1, "random seed for the monster")
	legend := flag.Bool("legend", true, "print the legend below the map")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.For("mapviewer").WithError(err).Warn("Using default config")
		cfg = config.Default()
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	if *width > 0 {
		cfg.Level.Width = *width
	}
	if *height > 0 {
		cfg.Level.Height = *height
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid level: %v\n", err)
		os.Exit(1)
	}
	defs, err := monster.LoadMonsterConfig(*monstersPath)
	if err != nil {
		logger.For("mapviewer").WithError(err).Warn("Monster letters unavailable")
	}

	lvl := level.New(cfg, rand.New(rand.NewSource(*seed)))
	fmt.Print(lvl.Grid().Render(markers(lvl, monsterLetter(defs, cfg.Monster.Kind))))
	if *legend {
		fmt.Print(legendText(lvl, defs))
	}
}

// monsterLetter returns the map letter of kind, or a fallback without definitions.
func monsterLetter(defs *monster.MonsterYAMLConfig, kind string) rune {
	if defs == nil {
		return markFallback
	}
	def, err := defs.GetMonsterByKey(kind)
	if err != nil || def.Letter == "" {
		return markFallback
	}
	return []rune(def.Letter)[0]
}

// markers places movers, then the monster, then the player so the player
// always shows.
func markers(lvl *level.Level, monsterMark rune) map[world.Cell]rune {
	metrics := lvl.Metrics()
	out := make(map[world.Cell]rune)
	for _, m := range lvl.Movers() {
		mark := markMoverH
		if m.Axis == world.AxisY {
			mark = markMoverV
		}
		out[metrics.WorldToCell(m.Pos)] = mark
	}
	if m := lvl.Monster(); m != nil {
		out[m.Cell()] = monsterMark
	}
	out[lvl.Player().Cell()] = markPlayer
	return out
}

func legendText(lvl *level.Level, defs *monster.MonsterYAMLConfig) string {
	var b strings.Builder
	grid := lvl.Grid()
	fmt.Fprintf(&b, "\n%dx%d cells, %d movers\n", grid.Width(), grid.Height(), len(lvl.Movers()))
	fmt.Fprintf(&b, "  %c wall   %c floor   %c player   %c/%c mover (horizontal/vertical)\n",
		world.GlyphWall, world.GlyphEmpty, markPlayer, markMoverH, markMoverV)
	if defs == nil {
		return b.String()
	}
	letters := make([]string, 0, len(defs.Monsters))
	for _, key := range defs.GetMenuKeys() {
		def, err := defs.GetMonsterByKey(key)
		if err != nil {
			continue
		}
		state := "locked"
		if def.Ready {
			state = "ready"
		}
		letters = append(letters, fmt.Sprintf("  %s %s (%s)", def.Letter, def.Name, state))
	}
	sort.Strings(letters)
	b.WriteString(strings.Join(letters, "\n"))
	b.WriteString("\n")
	return b.String()
}
