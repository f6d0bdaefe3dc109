package monster

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MonsterDefinition holds the configuration for a monster kind from YAML
type MonsterDefinition struct {
	Name            string  `yaml:"name"`
	Sprite          string  `yaml:"sprite"`
	Letter          string  `yaml:"letter"` // glyph used by the terminal host
	Color           [3]int  `yaml:"color"`
	ProjectileColor [3]int  `yaml:"projectile_color"`
	SizeCells       float64 `yaml:"size_cells"`
	Ready           bool    `yaml:"ready"` // has a playable level
}

// MonsterYAMLConfig holds the complete monster configuration from YAML
type MonsterYAMLConfig struct {
	MenuOrder []string                     `yaml:"menu_order"`
	Monsters  map[string]MonsterDefinition `yaml:"monsters"`
}

// Global monster configuration
var MonsterConfig *MonsterYAMLConfig

// validateMonsterConfiguration checks for conflicts in monster letters and
// dangling menu entries
func validateMonsterConfiguration(config *MonsterYAMLConfig) error {
	letterToMonsters := make(map[string][]string)

	// Group monsters by their letters
	for key, monster := range config.Monsters {
		letter := monster.Letter
		if letter == "" {
			continue
		}
		letterToMonsters[letter] = append(letterToMonsters[letter], key)
	}

	// Check for conflicts
	var conflicts []string
	for letter, monsterKeys := range letterToMonsters {
		if len(monsterKeys) > 1 {
			conflicts = append(conflicts, fmt.Sprintf("Letter '%s' is used by multiple monsters: %v", letter, monsterKeys))
		}
	}
	for _, key := range config.MenuOrder {
		if _, ok := config.Monsters[key]; !ok {
			conflicts = append(conflicts, fmt.Sprintf("Menu entry '%s' has no monster definition", key))
		}
	}

	if len(conflicts) > 0 {
		return fmt.Errorf("monster configuration conflicts detected:\n%s", strings.Join(conflicts, "\n"))
	}

	return nil
}

// LoadMonsterConfig loads monster configuration from YAML file
func LoadMonsterConfig(filename string) (*MonsterYAMLConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read monster config file: %w", err)
	}

	var config MonsterYAMLConfig
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse monster config YAML: %w", err)
	}

	// Validate configuration for conflicts
	if err := validateMonsterConfiguration(&config); err != nil {
		return nil, err
	}

	// Set global config for easy access
	MonsterConfig = &config

	return &config, nil
}

// MustLoadMonsterConfig loads monster configuration and panics on error
func MustLoadMonsterConfig(filename string) *MonsterYAMLConfig {
	config, err := LoadMonsterConfig(filename)
	if err != nil {
		panic("Failed to load monster config: " + err.Error())
	}
	return config
}

// GetMonsterByKey returns monster definition by key
func (c *MonsterYAMLConfig) GetMonsterByKey(key string) (*MonsterDefinition, error) {
	monster, exists := c.Monsters[key]
	if !exists {
		return nil, fmt.Errorf("monster with key '%s' not found", key)
	}
	return &monster, nil
}

// GetMonsterByLetter returns monster definition by letter marker
func (c *MonsterYAMLConfig) GetMonsterByLetter(letter string) (*MonsterDefinition, string, error) {
	for key, monster := range c.Monsters {
		if monster.Letter == letter {
			return &monster, key, nil
		}
	}
	return nil, "", fmt.Errorf("monster with letter '%s' not found", letter)
}

// GetMenuKeys returns the monster keys in menu order
func (c *MonsterYAMLConfig) GetMenuKeys() []string {
	keys := make([]string, len(c.MenuOrder))
	copy(keys, c.MenuOrder)
	return keys
}

// IsReady reports whether the kind has a playable level
func (c *MonsterYAMLConfig) IsReady(key string) bool {
	def, err := c.GetMonsterByKey(key)
	return err == nil && def.Ready
}

// GetSizeCells returns the drawn edge length of the monster in cells
func (def *MonsterDefinition) GetSizeCells() float64 {
	if def.SizeCells == 0 {
		return 1.0 // Default size if not set
	}
	return def.SizeCells
}
