package collision

import (
	"redgrid/internal/mathutil"
)

// BoundingBox represents a rectangular collision boundary
type BoundingBox struct {
	Center mathutil.Vec2
	Width  float64 // Total width
	Height float64 // Total height
}

// NewBoundingBox creates a new bounding box centered at the given position
func NewBoundingBox(center mathutil.Vec2, width, height float64) *BoundingBox {
	return &BoundingBox{
		Center: center,
		Width:  width,
		Height: height,
	}
}

// GetBounds returns the min/max coordinates of the bounding box
func (bb *BoundingBox) GetBounds() (minX, minY, maxX, maxY float64) {
	halfWidth := bb.Width / 2
	halfHeight := bb.Height / 2

	minX = bb.Center.X - halfWidth
	maxX = bb.Center.X + halfWidth
	minY = bb.Center.Y - halfHeight
	maxY = bb.Center.Y + halfHeight

	return minX, minY, maxX, maxY
}

// LeadingPoint returns the point on the box edge reached first when moving
// along dir. dir is expected to be axis aligned.
func (bb *BoundingBox) LeadingPoint(dir mathutil.Vec2) mathutil.Vec2 {
	return mathutil.V(
		bb.Center.X+dir.X*bb.Width/2,
		bb.Center.Y+dir.Y*bb.Height/2,
	)
}

// MoveTo moves the bounding box to a new center position
func (bb *BoundingBox) MoveTo(center mathutil.Vec2) {
	bb.Center = center
}

// Distance returns the distance between the centers of two bounding boxes
func (bb *BoundingBox) Distance(other *BoundingBox) float64 {
	return bb.Center.Dist(other.Center)
}

// DistanceToPoint returns the distance from the center to a point
func (bb *BoundingBox) DistanceToPoint(point mathutil.Vec2) float64 {
	return bb.Center.Dist(point)
}

// CollisionType represents different types of collision boundaries
type CollisionType int

const (
	CollisionTypePlayer CollisionType = iota
	CollisionTypeMover
	CollisionTypeMonster
	CollisionTypeProjectile
)

// Entity represents any game object that can have collisions
type Entity struct {
	BoundingBox   *BoundingBox
	CollisionType CollisionType
	ID            string
}

// NewEntity creates a new collision entity
func NewEntity(id string, center mathutil.Vec2, width, height float64, collisionType CollisionType) *Entity {
	return &Entity{
		BoundingBox:   NewBoundingBox(center, width, height),
		CollisionType: collisionType,
		ID:            id,
	}
}
