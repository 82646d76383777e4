package systems

import (
	"github.com/automoto/stompers/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Rect is an axis-aligned box, y-down.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Overlaps reports whether the two boxes share any area.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// PhysicsFacade is the slice of the physics engine the session relies on.
// The session never integrates motion itself.
type PhysicsFacade interface {
	Bounds(e *donburi.Entry) Rect
	VelocityY(e *donburi.Entry) float64
	SetVelocity(e *donburi.Entry, vx, vy float64)
	SetBodySize(e *donburi.Entry, w, h, offsetX, offsetY float64)
	SetPosition(e *donburi.Entry, x, y float64)
}

// Physics is the facade used by every system. Hosts with their own
// physics integration may replace it before the first frame.
var Physics PhysicsFacade = ResolvPhysics{}

// ResolvPhysics implements PhysicsFacade on the Object and Physics components.
type ResolvPhysics struct{}

func (ResolvPhysics) Bounds(e *donburi.Entry) Rect {
	if e == nil || !e.Valid() || !e.HasComponent(components.Object) {
		return Rect{}
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return Rect{}
	}
	return Rect{X: obj.X, Y: obj.Y, W: obj.W, H: obj.H}
}

func (ResolvPhysics) VelocityY(e *donburi.Entry) float64 {
	if e == nil || !e.Valid() || !e.HasComponent(components.Physics) {
		return 0
	}
	return components.Physics.Get(e).SpeedY
}

func (ResolvPhysics) SetVelocity(e *donburi.Entry, vx, vy float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Physics) {
		return
	}
	physics := components.Physics.Get(e)
	physics.SpeedX = vx
	physics.SpeedY = vy
}

// SetBodySize resizes the collision box keeping the feet and horizontal
// center in place, so growing never pushes a player into the floor.
func (ResolvPhysics) SetBodySize(e *donburi.Entry, w, h, offsetX, offsetY float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}

	bottom := obj.Y + obj.H
	centerX := obj.X + obj.W/2
	obj.W = w
	obj.H = h
	obj.X = centerX - w/2
	obj.Y = bottom - h
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	if obj.Space != nil {
		obj.Update()
	}

	if e.HasComponent(components.Physics) {
		physics := components.Physics.Get(e)
		physics.BodyOffsetX = offsetX
		physics.BodyOffsetY = offsetY
	}
}

func (ResolvPhysics) SetPosition(e *donburi.Entry, x, y float64) {
	if e == nil || !e.Valid() || !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return
	}
	obj.X = x
	obj.Y = y
	if obj.Space != nil {
		obj.Update()
	}
}
