package view

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"tablescene/internal/config"
)

// Movement identifies a camera movement direction relative to the
// camera's own basis vectors
type Movement int

const (
	MoveForward Movement = iota
	MoveBackward
	MoveLeft
	MoveRight
	MoveUp
	MoveDown
)

// Camera holds first-person fly camera state: position, orientation
// basis, the yaw/pitch pair driving it, and zoom (field of view in
// degrees)
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Up       mgl32.Vec3
	Right    mgl32.Vec3
	WorldUp  mgl32.Vec3

	// orientation in degrees
	Yaw   float64
	Pitch float64

	MovementSpeed    float32
	MouseSensitivity float64
	Zoom             float32
}

// NewCamera creates a camera with the scene's default framing: above
// and back from the table, looking slightly down
func NewCamera() *Camera {
	c := &Camera{
		WorldUp:          mgl32.Vec3{0, 1, 0},
		Yaw:              -90,
		Pitch:            0,
		MovementSpeed:    config.GetMovementSpeed(),
		MouseSensitivity: config.GetMouseSensitivity(),
		Zoom:             config.GetDefaultZoom(),
	}
	c.updateVectors()

	c.Position = mgl32.Vec3{0, 5, 12}
	c.Front = mgl32.Vec3{0, -0.5, -2}
	c.Up = mgl32.Vec3{0, 1, 0}

	return c
}

// ProcessMouseMovement applies a cursor delta to the camera
// orientation. Pitch is deliberately left unclamped, allowing full
// free-look past vertical.
func (c *Camera) ProcessMouseMovement(xOffset, yOffset float64) {
	c.Yaw += xOffset * c.MouseSensitivity
	c.Pitch += yOffset * c.MouseSensitivity

	c.updateVectors()
}

// ProcessMouseScroll adjusts the field of view, clamped to [1, 120]
// degrees
func (c *Camera) ProcessMouseScroll(yOffset float64) {
	c.Zoom -= float32(yOffset)
	if c.Zoom < 1 {
		c.Zoom = 1
	}
	if c.Zoom > 120 {
		c.Zoom = 120
	}
}

// ProcessKeyboard advances the camera position along its basis vectors
// for one movement direction
func (c *Camera) ProcessKeyboard(direction Movement, deltaTime float64) {
	velocity := c.MovementSpeed * float32(deltaTime)

	switch direction {
	case MoveForward:
		c.Position = c.Position.Add(c.Front.Mul(velocity))
	case MoveBackward:
		c.Position = c.Position.Sub(c.Front.Mul(velocity))
	case MoveLeft:
		c.Position = c.Position.Sub(c.Right.Mul(velocity))
	case MoveRight:
		c.Position = c.Position.Add(c.Right.Mul(velocity))
	case MoveUp:
		c.Position = c.Position.Add(c.Up.Mul(velocity))
	case MoveDown:
		c.Position = c.Position.Sub(c.Up.Mul(velocity))
	}
}

// ViewMatrix derives the view matrix from the current position and
// orientation
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(float32(c.Yaw))
	pitch := mgl32.DegToRad(float32(c.Pitch))

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
