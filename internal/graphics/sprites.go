package graphics

import (
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"redgrid/internal/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite kinds, decided by the directory a sprite is found in.
const (
	kindCharacter = "character"
	kindMonster   = "monster"
	kindUnknown   = "unknown"
)

type SpriteManager struct {
	root            string
	sprites         map[string]*ebiten.Image
	spriteTypeCache map[string]string // Cache sprite types to avoid repeated file checks
	tints           map[string]color.RGBA
}

// NewSpriteManager looks for sprites under root/sprites.
func NewSpriteManager(root string) *SpriteManager {
	return &SpriteManager{
		root:            root,
		sprites:         make(map[string]*ebiten.Image),
		spriteTypeCache: make(map[string]string),
		tints:           make(map[string]color.RGBA),
	}
}

// SetPlaceholderColor sets the fill used when the named sprite has no file.
func (sm *SpriteManager) SetPlaceholderColor(name string, c color.RGBA) {
	sm.tints[name] = c
}

func (sm *SpriteManager) searchPaths(name string) []string {
	return []string{
		filepath.Join(sm.root, "sprites", "monsters", name+".png"),   // Monsters
		filepath.Join(sm.root, "sprites", "characters", name+".png"), // Player poses
	}
}

func (sm *SpriteManager) createPlaceholder(name string) *ebiten.Image {
	img := ebiten.NewImage(32, 32)
	img.Fill(placeholderColor(sm.getCachedSpriteType(name), sm.tints[name]))
	sm.sprites[name] = img
	return img
}

// placeholderColor picks the fill for a missing sprite. An explicit tint wins.
func placeholderColor(spriteType string, tint color.RGBA) color.RGBA {
	if tint.A != 0 {
		return tint
	}
	switch spriteType {
	case kindCharacter:
		return color.RGBA{40, 90, 200, 255}
	case kindMonster:
		return color.RGBA{200, 40, 40, 255}
	}
	return color.RGBA{128, 128, 128, 255} // Gray for unknown
}

// getCachedSpriteType determines sprite type with caching to avoid repeated file checks
func (sm *SpriteManager) getCachedSpriteType(name string) string {
	if spriteType, exists := sm.spriteTypeCache[name]; exists {
		return spriteType
	}

	spriteType := sm.determineSpriteType(name)
	sm.spriteTypeCache[name] = spriteType
	return spriteType
}

// determineSpriteType checks which search path holds the sprite
func (sm *SpriteManager) determineSpriteType(name string) string {
	for i, spritePath := range sm.searchPaths(name) {
		if _, err := os.Stat(spritePath); err == nil {
			return kindForPath(i)
		}
	}
	return kindUnknown
}

func kindForPath(i int) string {
	if i == 0 {
		return kindMonster
	}
	return kindCharacter
}

func (sm *SpriteManager) GetSprite(name string) *ebiten.Image {
	if sprite, exists := sm.sprites[name]; exists {
		return sprite
	}

	// Try to dynamically load the sprite if it's not already loaded
	sm.loadSpriteIfExists(name)

	// Check again after attempting to load
	if sprite, exists := sm.sprites[name]; exists {
		return sprite
	}

	// If still not found, create placeholder
	return sm.createPlaceholder(name)
}

// loadSpriteIfExists attempts to load a sprite from the search paths
func (sm *SpriteManager) loadSpriteIfExists(name string) {
	for i, spritePath := range sm.searchPaths(name) {
		img, err := decodePNG(spritePath)
		if err != nil {
			continue
		}
		sm.sprites[name] = ebiten.NewImageFromImage(img)
		sm.spriteTypeCache[name] = kindForPath(i)
		return
	}

	logger.For("graphics").WithField("sprite", name).Warn("Sprite not found, using placeholder")
	sm.spriteTypeCache[name] = kindUnknown
}

func decodePNG(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	img, _, err := image.Decode(file)
	return img, err
}

// FitScale returns the uniform scale that makes the larger side of a w×h
// image span target units. A degenerate image gets scale 1.
func FitScale(w, h int, target float64) float64 {
	base := w
	if h > base {
		base = h
	}
	if base <= 0 {
		return 1
	}
	return target / float64(base)
}

// ScaleToCells returns the scale that draws img across the given number of cells.
func ScaleToCells(img *ebiten.Image, cells, cellSize float64) float64 {
	b := img.Bounds()
	return FitScale(b.Dx(), b.Dy(), cells*cellSize)
}
