package components

import (
	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData mirrors what the external physics integration exposes.
// The session never integrates it; it only reads velocity and writes
// rebound/zeroed velocities and body offsets.
type PhysicsData struct {
	SpeedX      float64
	SpeedY      float64 // y-down: positive is falling
	BodyOffsetX float64
	BodyOffsetY float64
}

var Physics = donburi.NewComponentType[PhysicsData]()
