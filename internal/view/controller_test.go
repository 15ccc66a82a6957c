package view

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"tablescene/internal/input"
)

// TestFirstCursorEventSeedsOnly verifies the first cursor event after
// construction produces no orientation delta regardless of coordinates
func TestFirstCursorEventSeedsOnly(t *testing.T) {
	c := NewController(nil, input.NewInputManager())
	yaw, pitch := c.camera.Yaw, c.camera.Pitch

	c.OnCursorMoved(12345, -6789)

	if c.camera.Yaw != yaw || c.camera.Pitch != pitch {
		t.Errorf("first cursor event changed orientation: yaw %v -> %v, pitch %v -> %v",
			yaw, c.camera.Yaw, pitch, c.camera.Pitch)
	}
}

// TestCursorDeltaInvertedY verifies a rightward/downward-origin cursor
// move (+10 x, -5 y on screen) raises both yaw and pitch
func TestCursorDeltaInvertedY(t *testing.T) {
	c := NewController(nil, input.NewInputManager())

	c.OnCursorMoved(100, 100)
	yaw, pitch := c.camera.Yaw, c.camera.Pitch

	// x moves right, y moves up on screen (smaller y value)
	c.OnCursorMoved(110, 95)

	if c.camera.Yaw <= yaw {
		t.Errorf("yaw did not increase: %v -> %v", yaw, c.camera.Yaw)
	}
	if c.camera.Pitch <= pitch {
		t.Errorf("pitch did not increase (inverted-Y): %v -> %v", pitch, c.camera.Pitch)
	}
}

// TestProjectionToggleEdgeTriggered verifies holding the projection key
// across frames switches the mode exactly once per physical press
func TestProjectionToggleEdgeTriggered(t *testing.T) {
	im := input.NewInputManager()
	c := NewController(nil, im)

	if c.Orthographic() {
		t.Fatal("controller started in orthographic mode")
	}

	// press O and hold it across several frames
	im.HandleKeyEvent(glfw.KeyO, glfw.Press)
	c.ProcessKeyboardEvents()
	if !c.Orthographic() {
		t.Fatal("O press did not switch to orthographic")
	}

	// later frames with the key still down must not re-trigger
	for i := 0; i < 3; i++ {
		im.PostUpdate()
		c.orthographic = false
		c.ProcessKeyboardEvents()
		if c.Orthographic() {
			t.Fatalf("held O re-triggered the switch on frame %d", i+1)
		}
	}

	// release and press again: a fresh edge must trigger
	im.HandleKeyEvent(glfw.KeyO, glfw.Release)
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyO, glfw.Press)
	c.ProcessKeyboardEvents()
	if !c.Orthographic() {
		t.Error("second press after release did not switch to orthographic")
	}

	// P switches back to perspective on its own edge
	im.PostUpdate()
	im.HandleKeyEvent(glfw.KeyP, glfw.Press)
	c.ProcessKeyboardEvents()
	if c.Orthographic() {
		t.Error("P press did not switch back to perspective")
	}
}

// TestOrthographicProjectionMatrix verifies the orthographic volume is
// the fixed half-height scaled by the window aspect ratio
func TestOrthographicProjectionMatrix(t *testing.T) {
	c := NewController(nil, input.NewInputManager())
	c.width, c.height = 1000, 800
	c.orthographic = true

	want := mgl32.Ortho(-6*1.25, 6*1.25, -6, 6, 0.1, 100)
	if got := c.projectionMatrix(); got != want {
		t.Errorf("orthographic projection = %v, want %v", got, want)
	}
}

// TestPerspectiveProjectionMatrix verifies the perspective frustum
// tracks the camera zoom
func TestPerspectiveProjectionMatrix(t *testing.T) {
	c := NewController(nil, input.NewInputManager())
	c.width, c.height = 1000, 800

	want := mgl32.Perspective(mgl32.DegToRad(c.camera.Zoom), 1.25, 0.1, 100)
	if got := c.projectionMatrix(); got != want {
		t.Errorf("perspective projection = %v, want %v", got, want)
	}

	c.camera.Zoom = 45
	want = mgl32.Perspective(mgl32.DegToRad(45), 1.25, 0.1, 100)
	if got := c.projectionMatrix(); got != want {
		t.Errorf("perspective projection after zoom change = %v, want %v", got, want)
	}
}

// TestExitActionRequestsClose verifies the exit key routes to the
// close request hook when one is attached
func TestExitActionRequestsClose(t *testing.T) {
	im := input.NewInputManager()
	c := NewController(nil, im)

	closed := false
	c.requestClose = func() { closed = true }

	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	c.ProcessKeyboardEvents()

	if !closed {
		t.Error("exit key did not request window close")
	}
}

// TestMovementKeysAdvanceCamera verifies held movement actions move the
// camera along its basis by speed times delta time
func TestMovementKeysAdvanceCamera(t *testing.T) {
	im := input.NewInputManager()
	c := NewController(nil, im)
	c.deltaTime = 0.1
	start := c.camera.Position

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	c.ProcessKeyboardEvents()

	if c.camera.Position == start {
		t.Error("held W did not advance the camera")
	}

	moved := c.camera.Position.Sub(start)
	wantDir := c.camera.Front.Mul(c.camera.MovementSpeed * 0.1)
	if d := moved.Sub(wantDir).Len(); d > 1e-5 {
		t.Errorf("camera moved %v, want %v", moved, wantDir)
	}
}
