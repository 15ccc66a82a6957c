package view

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const cameraEps = 1e-5

func vec3Near(t *testing.T, got, want mgl32.Vec3, context string) {
	t.Helper()
	for i := 0; i < 3; i++ {
		d := got[i] - want[i]
		if d < -cameraEps || d > cameraEps {
			t.Errorf("%s: got %v, want %v", context, got, want)
			return
		}
	}
}

// TestCameraDefaultFraming verifies the startup framing: positioned
// above and back from the table, looking slightly down
func TestCameraDefaultFraming(t *testing.T) {
	c := NewCamera()

	if c.Position != (mgl32.Vec3{0, 5, 12}) {
		t.Errorf("default position = %v, want (0, 5, 12)", c.Position)
	}
	if c.Front != (mgl32.Vec3{0, -0.5, -2}) {
		t.Errorf("default front = %v, want (0, -0.5, -2)", c.Front)
	}
	if c.Zoom != 80 {
		t.Errorf("default zoom = %v, want 80", c.Zoom)
	}
	if c.MovementSpeed != 20 {
		t.Errorf("default movement speed = %v, want 20", c.MovementSpeed)
	}
}

// TestCameraMouseMovementUpdatesOrientation verifies positive offsets
// increase both yaw and pitch and rederive the basis vectors
func TestCameraMouseMovementUpdatesOrientation(t *testing.T) {
	c := NewCamera()
	yaw, pitch := c.Yaw, c.Pitch

	c.ProcessMouseMovement(10, 5)

	if c.Yaw <= yaw {
		t.Errorf("yaw did not increase: %v -> %v", yaw, c.Yaw)
	}
	if c.Pitch <= pitch {
		t.Errorf("pitch did not increase: %v -> %v", pitch, c.Pitch)
	}
	if d := c.Front.Len() - 1; d < -cameraEps || d > cameraEps {
		t.Errorf("front vector not normalized after mouse movement: len = %v", c.Front.Len())
	}
}

// TestCameraPitchUnclamped verifies nothing stops the pitch past
// vertical; free-look over the top is allowed
func TestCameraPitchUnclamped(t *testing.T) {
	c := NewCamera()

	// sensitivity 0.1, so this drives pitch to 150 degrees
	c.ProcessMouseMovement(0, 1500)

	if c.Pitch <= 90 {
		t.Errorf("pitch clamped at %v, want past 90", c.Pitch)
	}
}

// TestCameraZoomClamped verifies scroll zoom stays within [1, 120]
func TestCameraZoomClamped(t *testing.T) {
	c := NewCamera()

	c.ProcessMouseScroll(1000)
	if c.Zoom != 1 {
		t.Errorf("zoom after large scroll in = %v, want 1", c.Zoom)
	}

	c.ProcessMouseScroll(-1000)
	if c.Zoom != 120 {
		t.Errorf("zoom after large scroll out = %v, want 120", c.Zoom)
	}
}

// TestCameraKeyboardMovement verifies position advances along the
// camera basis vectors scaled by speed and delta time
func TestCameraKeyboardMovement(t *testing.T) {
	c := NewCamera()
	// pin the basis to a known orientation (yaw -90 looks down -Z)
	c.ProcessMouseMovement(0, 0)
	start := c.Position

	c.ProcessKeyboard(MoveForward, 0.5) // 20 units/s * 0.5s
	vec3Near(t, c.Position, start.Add(mgl32.Vec3{0, 0, -10}), "forward")

	c.ProcessKeyboard(MoveBackward, 0.5)
	vec3Near(t, c.Position, start, "backward returns")

	c.ProcessKeyboard(MoveRight, 0.1)
	vec3Near(t, c.Position, start.Add(mgl32.Vec3{2, 0, 0}), "strafe right")

	c.ProcessKeyboard(MoveLeft, 0.1)
	c.ProcessKeyboard(MoveUp, 0.1)
	vec3Near(t, c.Position, start.Add(mgl32.Vec3{0, 2, 0}), "up")

	c.ProcessKeyboard(MoveDown, 0.1)
	vec3Near(t, c.Position, start, "down returns")
}

// TestCameraViewMatrix verifies the view matrix looks from the position
// along the front vector
func TestCameraViewMatrix(t *testing.T) {
	c := NewCamera()
	c.Position = mgl32.Vec3{0, 0, 5}
	c.Front = mgl32.Vec3{0, 0, -1}
	c.Up = mgl32.Vec3{0, 1, 0}

	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 1, 0})
	if c.ViewMatrix() != want {
		t.Errorf("view matrix = %v, want %v", c.ViewMatrix(), want)
	}
}
