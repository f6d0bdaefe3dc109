// Command redgrid-tui plays the red level in a terminal.
package main

import (
	"flag"
	"fmt"
	"os"

	"redgrid/internal/config"
	"redgrid/internal/logger"
	"redgrid/internal/monster"
	"redgrid/internal/sound"
	"redgrid/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config.yaml")
	monstersPath := flag.String("monsters", "assets/monsters.yaml", "path to monsters.yaml")
	flag.Parse()

	cfg := config.MustLoadConfig(*configPath)
	logger.Init(cfg.Logging.Level, cfg.Logging.Format)

	// Log lines would tear the screen, so they go to a file or nowhere.
	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = os.DevNull
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger.SetOutput(logFile)

	defs := monster.MustLoadMonsterConfig(*monstersPath)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	snd := sound.New(cfg.Audio)
	defer snd.Close()
	defer screen.Fini()

	terminal.New(screen, cfg, defs, snd).Run()
}
