// Package input defines the keyboard contract the level consumes. Hosts own the
// actual key state and adapt it to Source.
package input

import "redgrid/internal/world"

// Source answers direction queries for the current frame.
type Source interface {
	// IsHeld reports whether a key mapped to d is down this frame.
	IsHeld(d world.Direction) bool
	// JustPressed reports whether a key mapped to d went down this frame.
	JustPressed(d world.Direction) bool
}

// AnyHeld reports whether any movement direction is held.
func AnyHeld(src Source) bool {
	for _, d := range world.HoldOrder {
		if src.IsHeld(d) {
			return true
		}
	}
	return false
}

// None is a Source with nothing pressed.
type None struct{}

func (None) IsHeld(world.Direction) bool      { return false }
func (None) JustPressed(world.Direction) bool { return false }

// Snapshot is a fixed per-frame Source, filled in by hosts and tests.
type Snapshot struct {
	Held    map[world.Direction]bool
	Pressed map[world.Direction]bool
}

// NewSnapshot returns an empty snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Held:    make(map[world.Direction]bool),
		Pressed: make(map[world.Direction]bool),
	}
}

// Press marks d as pressed this frame and held.
func (s *Snapshot) Press(d world.Direction) *Snapshot {
	s.Pressed[d] = true
	s.Held[d] = true
	return s
}

// Hold marks d as held without a fresh press.
func (s *Snapshot) Hold(d world.Direction) *Snapshot {
	s.Held[d] = true
	return s
}

func (s *Snapshot) IsHeld(d world.Direction) bool      { return s.Held[d] }
func (s *Snapshot) JustPressed(d world.Direction) bool { return s.Pressed[d] }
