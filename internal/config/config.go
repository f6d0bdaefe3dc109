package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Level    LevelConfig    `yaml:"level"`
	Camera   CameraConfig   `yaml:"camera"`
	Player   PlayerConfig   `yaml:"player"`
	Movers   MoversConfig   `yaml:"movers"`
	Monster  MonsterConfig  `yaml:"monster"`
	Health   HealthConfig   `yaml:"health"`
	Logging  LoggingConfig  `yaml:"logging"`
	Audio    AudioConfig    `yaml:"audio"`
	Terminal TerminalConfig `yaml:"terminal"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

// LevelConfig sizes the procedural map. Width and height are in cells.
type LevelConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	CellSize float64 `yaml:"cell_size"`
	Seed     int64   `yaml:"seed"` // 0 picks a time-based seed
}

// CameraConfig is the dead zone, as fractions of the viewport, inside which the
// player can move without the camera following.
type CameraConfig struct {
	DeadZoneMin float64 `yaml:"dead_zone_min"`
	DeadZoneMax float64 `yaml:"dead_zone_max"`
}

type PlayerConfig struct {
	SpeedCells        float64 `yaml:"speed_cells"`  // cells per second
	IdleTimeout       float64 `yaml:"idle_timeout"` // seconds before the pose resets to front
	SpawnX            int     `yaml:"spawn_x"`
	SpawnY            int     `yaml:"spawn_y"`
	SpawnSearchRadius int     `yaml:"spawn_search_radius"`
	SpriteScale       float64 `yaml:"sprite_scale"` // fraction of a cell
}

type MoversConfig struct {
	SizeFactor      float64         `yaml:"size_factor"`      // body edge length, fraction of a cell
	CollisionFactor float64         `yaml:"collision_factor"` // contact distance, fraction of a cell
	Horizontal      MoverLaneConfig `yaml:"horizontal"`
	Vertical        MoverLaneConfig `yaml:"vertical"`
}

// MoverLaneConfig places one family of movers on a lattice: x runs from StartX
// in steps of StepX while x < width-MarginX, likewise for y.
type MoverLaneConfig struct {
	StartX     int     `yaml:"start_x"`
	StepX      int     `yaml:"step_x"`
	MarginX    int     `yaml:"margin_x"`
	StartY     int     `yaml:"start_y"`
	StepY      int     `yaml:"step_y"`
	MarginY    int     `yaml:"margin_y"`
	SpeedCells float64 `yaml:"speed_cells"`
	Color      [3]int  `yaml:"color"`
}

type MonsterConfig struct {
	Kind             string  `yaml:"kind"`
	SpawnInsetX      int     `yaml:"spawn_inset_x"`
	SpawnInsetY      int     `yaml:"spawn_inset_y"`
	PatrolRadius     float64 `yaml:"patrol_radius"` // cells
	ShootRange       float64 `yaml:"shoot_range"`   // cells
	FirstMoveMin     float64 `yaml:"first_move_min"`
	FirstMoveMax     float64 `yaml:"first_move_max"`
	MoveIntervalMin  float64 `yaml:"move_interval_min"`
	MoveIntervalMax  float64 `yaml:"move_interval_max"`
	FirstShotMin     float64 `yaml:"first_shot_min"`
	FirstShotMax     float64 `yaml:"first_shot_max"`
	ShotIntervalMin  float64 `yaml:"shot_interval_min"`
	ShotIntervalMax  float64 `yaml:"shot_interval_max"`
	StepsMin         int     `yaml:"steps_min"`
	StepsMax         int     `yaml:"steps_max"`
	ProjectileSpeed  float64 `yaml:"projectile_speed"`  // cells per second
	ProjectileRadius float64 `yaml:"projectile_radius"` // fraction of a cell, visual only
	HitRadius        float64 `yaml:"hit_radius"`        // fraction of a cell
	WinDistance      float64 `yaml:"win_distance"`      // cells
	SizeCells        float64 `yaml:"size_cells"`
}

type HealthConfig struct {
	Lives            int     `yaml:"lives"`
	InvulnerableTime float64 `yaml:"invulnerable_time"`
	BlinkInterval    float64 `yaml:"blink_interval"`
	GameOverGrace    float64 `yaml:"game_over_grace"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"` // terminal host only
}

type AudioConfig struct {
	Enabled    bool `yaml:"enabled"`
	SampleRate int  `yaml:"sample_rate"`
}

// TerminalConfig tunes the tcell host. Terminals report key presses and
// repeats but never releases, so a key counts as held for RepeatDelay seconds
// after a fresh press and HoldWindow seconds after each repeat.
type TerminalConfig struct {
	RepeatDelay float64 `yaml:"repeat_delay"`
	HoldWindow  float64 `yaml:"hold_window"`
	TickMillis  int     `yaml:"tick_millis"`
}

// Default returns the built-in tuning of the red level.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 768,
			WindowTitle:  "Red Grid",
			Resizable:    true,
		},
		Level: LevelConfig{
			Width:    100,
			Height:   30,
			CellSize: 96,
		},
		Camera: CameraConfig{
			DeadZoneMin: 0.4,
			DeadZoneMax: 0.6,
		},
		Player: PlayerConfig{
			SpeedCells:        6,
			IdleTimeout:       1,
			SpawnX:            2,
			SpawnY:            2,
			SpawnSearchRadius: 10,
			SpriteScale:       0.95,
		},
		Movers: MoversConfig{
			SizeFactor:      0.9,
			CollisionFactor: 0.9,
			Horizontal: MoverLaneConfig{
				StartX: 5, StepX: 16, MarginX: 5,
				StartY: 3, StepY: 6, MarginY: 3,
				SpeedCells: 2.2,
				Color:      [3]int{180, 80, 80},
			},
			Vertical: MoverLaneConfig{
				StartX: 8, StepX: 14, MarginX: 8,
				StartY: 4, StepY: 10, MarginY: 4,
				SpeedCells: 2.8,
				Color:      [3]int{80, 80, 180},
			},
		},
		Monster: MonsterConfig{
			Kind:             "red",
			SpawnInsetX:      3,
			SpawnInsetY:      3,
			PatrolRadius:     15,
			ShootRange:       20,
			FirstMoveMin:     2,
			FirstMoveMax:     4,
			MoveIntervalMin:  2.5,
			MoveIntervalMax:  4.5,
			FirstShotMin:     0.5,
			FirstShotMax:     1,
			ShotIntervalMin:  1.5,
			ShotIntervalMax:  2.5,
			StepsMin:         2,
			StepsMax:         4,
			ProjectileSpeed:  8,
			ProjectileRadius: 0.15,
			HitRadius:        0.6,
			WinDistance:      1.5,
			SizeCells:        3,
		},
		Health: HealthConfig{
			Lives:            3,
			InvulnerableTime: 1,
			BlinkInterval:    0.1,
			GameOverGrace:    1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Audio: AudioConfig{
			Enabled:    true,
			SampleRate: 44100,
		},
		Terminal: TerminalConfig{
			RepeatDelay: 0.5,
			HoldWindow:  0.12,
			TickMillis:  16,
		},
	}
}

var GlobalConfig *Config

// LoadConfig loads the configuration from a yaml file. Keys missing from the
// file keep their Default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, err
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// Parse decodes yaml over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Level.Width < 5 || c.Level.Height < 5:
		return fmt.Errorf("invalid level size %dx%d: need at least 5x5", c.Level.Width, c.Level.Height)
	case c.Level.CellSize <= 0:
		return fmt.Errorf("invalid cell_size %v", c.Level.CellSize)
	case c.Player.SpeedCells <= 0:
		return fmt.Errorf("invalid player speed_cells %v", c.Player.SpeedCells)
	case c.Movers.CollisionFactor <= 0 || c.Movers.SizeFactor <= 0:
		return fmt.Errorf("invalid mover size_factor/collision_factor")
	case c.Movers.Horizontal.StepX <= 0 || c.Movers.Horizontal.StepY <= 0 ||
		c.Movers.Vertical.StepX <= 0 || c.Movers.Vertical.StepY <= 0:
		return fmt.Errorf("mover lane steps must be positive")
	case c.Monster.ProjectileSpeed <= 0:
		return fmt.Errorf("invalid monster projectile_speed %v", c.Monster.ProjectileSpeed)
	case c.Monster.StepsMin <= 0 || c.Monster.StepsMax < c.Monster.StepsMin:
		return fmt.Errorf("invalid monster steps range [%d, %d]", c.Monster.StepsMin, c.Monster.StepsMax)
	case c.Health.Lives <= 0:
		return fmt.Errorf("invalid health lives %d", c.Health.Lives)
	case c.Terminal.HoldWindow <= 0 || c.Terminal.RepeatDelay < c.Terminal.HoldWindow:
		return fmt.Errorf("invalid terminal repeat_delay %v / hold_window %v", c.Terminal.RepeatDelay, c.Terminal.HoldWindow)
	case c.Terminal.TickMillis <= 0:
		return fmt.Errorf("invalid terminal tick_millis %d", c.Terminal.TickMillis)
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetCellSize() float64 {
	return c.Level.CellSize
}

// GetPlayerSpeed returns the player's transition speed in world units per second.
func (c *Config) GetPlayerSpeed() float64 {
	return c.Player.SpeedCells * c.Level.CellSize
}

// GetMoverExtent returns the edge length of a mover body in world units.
func (c *Config) GetMoverExtent() float64 {
	return c.Movers.SizeFactor * c.Level.CellSize
}

// GetMoverThreshold returns the mover contact distance in world units.
func (c *Config) GetMoverThreshold() float64 {
	return c.Movers.CollisionFactor * c.Level.CellSize
}

func (c *Config) GetProjectileSpeed() float64 {
	return c.Monster.ProjectileSpeed * c.Level.CellSize
}

func (c *Config) GetProjectileHitRadius() float64 {
	return c.Monster.HitRadius * c.Level.CellSize
}

func (c *Config) GetWinDistance() float64 {
	return c.Monster.WinDistance * c.Level.CellSize
}
