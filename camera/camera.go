package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MouseSensitivity = 0.05
	MovementSpeed    = 2.5

	MaxPitch       = 89.0
	MinFieldOfView = 1.0

	NearPlane = 0.1
	FarPlane  = 100.0
)

// State is the camera's position and orientation. Front is always derived
// from Yaw and Pitch.
type State struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3

	// Angles in degrees
	Yaw         float32
	Pitch       float32
	FieldOfView float32

	lastCursorX    float64
	lastCursorY    float64
	hasPriorSample bool
}

// Controller turns raw input samples into camera state updates. It is not
// safe for concurrent use; the render loop and the window callbacks share a thread.
type Controller struct {
	state State
}

func NewController() *Controller {
	return NewControllerAt(mgl32.Vec3{0, 2.1, 3}, -90, 0)
}

// NewControllerAt returns a controller at position looking along yaw/pitch,
// with the default field of view.
func NewControllerAt(position mgl32.Vec3, yaw, pitch float32) *Controller {
	c := &Controller{
		state: State{
			Position:    position,
			Up:          mgl32.Vec3{0, 1, 0},
			Yaw:         yaw,
			Pitch:       clampPitch(pitch),
			FieldOfView: 45,
		},
	}
	c.updateFront()
	return c
}

// State returns a copy of the current camera state.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Position() mgl32.Vec3 {
	return c.state.Position
}

// OnCursorMove applies a raw cursor sample. The first sample only seeds the
// previous cursor position.
func (c *Controller) OnCursorMove(x, y float64) {
	s := &c.state
	if !s.hasPriorSample {
		s.lastCursorX = x
		s.lastCursorY = y
		s.hasPriorSample = true
		return
	}

	// Screen y grows downward
	xOffset := (x - s.lastCursorX) * MouseSensitivity
	yOffset := (s.lastCursorY - y) * MouseSensitivity
	s.lastCursorX = x
	s.lastCursorY = y

	s.Yaw += float32(xOffset)
	s.Pitch = clampPitch(s.Pitch + float32(yOffset))

	c.updateFront()
}

// ResetCursor forgets the previous cursor sample, so the next OnCursorMove
// only seeds it. Use it when the cursor may have moved without events.
func (c *Controller) ResetCursor() {
	c.state.hasPriorSample = false
}

// OnScroll zooms by changing the field of view. Scrolling up narrows it,
// never below MinFieldOfView.
func (c *Controller) OnScroll(deltaY float64) {
	s := &c.state
	if s.FieldOfView >= MinFieldOfView {
		s.FieldOfView -= float32(deltaY)
	}
	if s.FieldOfView <= MinFieldOfView {
		s.FieldOfView = MinFieldOfView
	}
}

// OnTick moves the camera for the held keys. Movement stays in the x-z plane
// whatever the pitch.
func (c *Controller) OnTick(keys Movement, deltaTimeSeconds float64) {
	if keys == 0 {
		return
	}
	s := &c.state
	speed := float32(MovementSpeed * deltaTimeSeconds)

	horizontalFront := mgl32.Vec3{s.Front.X(), 0, s.Front.Z()}.Normalize()
	horizontalRight := horizontalFront.Cross(s.Up).Normalize()

	if keys.Has(MoveForward) {
		s.Position = s.Position.Add(horizontalFront.Mul(speed))
	}
	if keys.Has(MoveBackward) {
		s.Position = s.Position.Sub(horizontalFront.Mul(speed))
	}
	if keys.Has(MoveLeft) {
		s.Position = s.Position.Sub(horizontalRight.Mul(speed))
	}
	if keys.Has(MoveRight) {
		s.Position = s.Position.Add(horizontalRight.Mul(speed))
	}
}

func (c *Controller) ViewMatrix() mgl32.Mat4 {
	s := c.state
	return mgl32.LookAtV(s.Position, s.Position.Add(s.Front), s.Up)
}

func (c *Controller) ProjectionMatrix(aspectRatio float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.state.FieldOfView), aspectRatio, NearPlane, FarPlane)
}

func (c *Controller) updateFront() {
	// Converted in float64 so a yaw of -90 gives a front with no x drift
	yaw := float64(c.state.Yaw) * math.Pi / 180
	pitch := float64(c.state.Pitch) * math.Pi / 180
	front := mgl32.Vec3{
		float32(math.Cos(pitch) * math.Cos(yaw)),
		float32(math.Sin(pitch)),
		float32(math.Cos(pitch) * math.Sin(yaw)),
	}
	c.state.Front = front.Normalize()
}

func clampPitch(pitch float32) float32 {
	if pitch > MaxPitch {
		return MaxPitch
	}
	if pitch < -MaxPitch {
		return -MaxPitch
	}
	return pitch
}
