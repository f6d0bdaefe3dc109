package game

import (
	"image/color"
	"math"

	"redgrid/internal/config"
	"redgrid/internal/graphics"
	"redgrid/internal/level"
	"redgrid/internal/mathutil"
	"redgrid/internal/monster"
	"redgrid/internal/player"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorFloor = color.RGBA{24, 24, 30, 255}
	colorWall  = color.RGBA{90, 90, 110, 255}
)

// Renderer draws a level as seen through the camera.
type Renderer struct {
	cfg     *config.Config
	sprites *graphics.SpriteManager
	camera  *Camera
}

func NewRenderer(cfg *config.Config, sprites *graphics.SpriteManager, camera *Camera) *Renderer {
	return &Renderer{cfg: cfg, sprites: sprites, camera: camera}
}

// spriteForPose returns the sprite name for a pose and whether to mirror it.
func spriteForPose(p player.Pose) (string, bool) {
	switch p {
	case player.PoseBack:
		return "char-back", false
	case player.PoseRight:
		return "char-right", false
	case player.PoseLeft:
		return "char-right", true
	}
	return "char-front", false
}

// visibleCells returns the half-open cell range covered by the viewport.
func visibleCells(cam *Camera, cellSize float64, w, h int) (x0, y0, x1, y1 int) {
	x0 = max(0, int(math.Floor(cam.X/cellSize)))
	y0 = max(0, int(math.Floor(cam.Y/cellSize)))
	x1 = min(w, int(math.Ceil((cam.X+cam.ViewW)/cellSize)))
	y1 = min(h, int(math.Ceil((cam.Y+cam.ViewH)/cellSize)))
	return
}

// DrawLevel draws in layers: walls, movers, monster, projectiles, player.
func (r *Renderer) DrawLevel(screen *ebiten.Image, lvl *level.Level, now float64) {
	screen.Fill(colorFloor)
	r.drawWalls(screen, lvl)
	r.drawMovers(screen, lvl)

	var def *monster.MonsterDefinition
	if monster.MonsterConfig != nil {
		def, _ = monster.MonsterConfig.GetMonsterByKey(r.cfg.Monster.Kind)
	}
	if m := lvl.Monster(); m != nil {
		r.drawMonster(screen, m, def)
	}
	for _, p := range lvl.Projectiles() {
		r.drawProjectile(screen, p.Pos, def)
	}
	if lvl.Health().Visible(now) {
		r.drawPlayer(screen, lvl.Player())
	}
}

func (r *Renderer) drawWalls(screen *ebiten.Image, lvl *level.Level) {
	grid := lvl.Grid()
	cs := r.cfg.GetCellSize()
	x0, y0, x1, y1 := visibleCells(r.camera, cs, grid.Width(), grid.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if !grid.IsSolid(x, y) {
				continue
			}
			sx, sy := float64(x)*cs-r.camera.X, float64(y)*cs-r.camera.Y
			vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(cs), float32(cs), colorWall, false)
		}
	}
}

func (r *Renderer) drawMovers(screen *ebiten.Image, lvl *level.Level) {
	extent := r.cfg.GetMoverExtent()
	for _, m := range lvl.Movers() {
		if !r.camera.Visible(m.Pos, extent/2) {
			continue
		}
		sx, sy := r.camera.ToScreen(m.Pos)
		vector.DrawFilledRect(screen, float32(sx-extent/2), float32(sy-extent/2), float32(extent), float32(extent), rgb(m.Color), false)
	}
}

func (r *Renderer) drawMonster(screen *ebiten.Image, m *monster.Monster, def *monster.MonsterDefinition) {
	cs := r.cfg.GetCellSize()
	name, cells := "red-monster", r.cfg.Monster.SizeCells
	if def != nil {
		name, cells = def.Sprite, def.GetSizeCells()
	}
	if !r.camera.Visible(m.Pos, cells*cs/2) {
		return
	}
	r.drawSprite(screen, r.sprites.GetSprite(name), m.Pos, cells, false)
}

func (r *Renderer) drawProjectile(screen *ebiten.Image, pos mathutil.Vec2, def *monster.MonsterDefinition) {
	radius := r.cfg.Monster.ProjectileRadius * r.cfg.GetCellSize()
	if !r.camera.Visible(pos, radius) {
		return
	}
	c := color.RGBA{220, 50, 50, 255}
	if def != nil {
		c = rgb(def.ProjectileColor)
	}
	sx, sy := r.camera.ToScreen(pos)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(radius), c, true)
}

func (r *Renderer) drawPlayer(screen *ebiten.Image, p *player.Player) {
	name, mirror := spriteForPose(p.Pose)
	r.drawSprite(screen, r.sprites.GetSprite(name), p.Pos, r.cfg.Player.SpriteScale, mirror)
}

// drawSprite draws img centred on pos, its larger side spanning cells cells.
func (r *Renderer) drawSprite(screen, img *ebiten.Image, pos mathutil.Vec2, cells float64, mirror bool) {
	b := img.Bounds()
	scale := graphics.ScaleToCells(img, cells, r.cfg.GetCellSize())
	sx, sy := r.camera.ToScreen(pos)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if mirror {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(sx, sy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
