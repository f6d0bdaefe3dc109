package graphics

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitScale(t *testing.T) {
	assert.InDelta(t, 0.95*96/64, FitScale(64, 48, 0.95*96), 1e-9)
	assert.InDelta(t, 288.0/120, FitScale(80, 120, 288), 1e-9)
	assert.Equal(t, 1.0, FitScale(0, 0, 96))
}

func TestDetermineSpriteType(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "sprites", "characters")
	assert.NoError(t, os.MkdirAll(dir, 0o755))
	assert.NoError(t, os.WriteFile(filepath.Join(dir, "char-front.png"), []byte("not a png"), 0o644))

	sm := NewSpriteManager(root)
	assert.Equal(t, kindCharacter, sm.getCachedSpriteType("char-front"))
	assert.Equal(t, kindUnknown, sm.getCachedSpriteType("red-monster"))

	_, err := decodePNG(filepath.Join(dir, "char-front.png"))
	assert.Error(t, err)
}

func TestPlaceholderColor(t *testing.T) {
	tint := color.RGBA{220, 50, 50, 255}
	assert.Equal(t, tint, placeholderColor(kindUnknown, tint))
	assert.Equal(t, color.RGBA{40, 90, 200, 255}, placeholderColor(kindCharacter, color.RGBA{}))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, placeholderColor(kindUnknown, color.RGBA{}))
}
