package view

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"tablescene/internal/config"
	"tablescene/internal/graphics"
	"tablescene/internal/input"
)

// uniform names shared with the embedded scene shader
const (
	viewUniformName         = "view"
	projectionUniformName   = "projection"
	viewPositionUniformName = "viewPosition"
)

// projection volume constants
const (
	orthoHalfHeight = 6.0
	nearPlane       = 0.1
	farPlane        = 100.0
)

// Controller owns the camera and translates window input events into
// camera state, producing the per-frame view and projection matrices.
// All methods run on the event-loop thread; the controller is not safe
// for concurrent use.
type Controller struct {
	shader *graphics.Shader
	input  *input.InputManager
	camera *Camera

	width  int
	height int

	// mouse-drag state
	lastX      float64
	lastY      float64
	firstMouse bool

	// frame timing
	deltaTime float64
	lastFrame float64

	orthographic bool

	// set when a window is attached; nil until then
	requestClose func()
}

// NewController creates a view controller with the default camera
func NewController(shader *graphics.Shader, im *input.InputManager) *Controller {
	width := config.GetWindowWidth()
	height := config.GetWindowHeight()

	return &Controller{
		shader:     shader,
		input:      im,
		camera:     NewCamera(),
		width:      width,
		height:     height,
		lastX:      float64(width) / 2,
		lastY:      float64(height) / 2,
		firstMouse: true,
	}
}

// Camera exposes the controlled camera
func (c *Controller) Camera() *Camera {
	return c.camera
}

// AttachShader sets the shader the controller pushes matrices to. The
// shader can only be built once a GL context exists, which is after the
// controller creates the window; call this before the first
// PrepareSceneView.
func (c *Controller) AttachShader(shader *graphics.Shader) {
	c.shader = shader
}

// CreateDisplayWindow creates the display window at the configured
// dimensions, captures the cursor, and wires the cursor, scroll, and
// key callbacks to this controller. The controller itself closes over
// the callbacks, so no global state is involved.
func (c *Controller) CreateDisplayWindow(title string) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(c.width, c.height, title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create display window")
	}
	window.MakeContextCurrent()

	// capture all mouse events
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		c.OnCursorMoved(xpos, ypos)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		c.OnScroll(yoff)
	})
	c.input.SetKeyCallback(window)

	c.requestClose = func() { window.SetShouldClose(true) }

	return window, nil
}

// OnCursorMoved feeds a cursor position into the camera orientation.
// The first event after construction only seeds the last-position
// state, producing no orientation delta.
func (c *Controller) OnCursorMoved(xpos, ypos float64) {
	if c.firstMouse {
		c.lastX = xpos
		c.lastY = ypos
		c.firstMouse = false
		return
	}

	xOffset := xpos - c.lastX
	yOffset := c.lastY - ypos // reversed: screen Y grows downward, pitch grows upward
	c.lastX = xpos
	c.lastY = ypos

	c.camera.ProcessMouseMovement(xOffset, yOffset)
}

// OnScroll feeds a scroll delta into the camera zoom
func (c *Controller) OnScroll(yOffset float64) {
	c.camera.ProcessMouseScroll(yOffset)
}

// ProcessKeyboardEvents applies held movement keys to the camera
// position, handles the edge-triggered projection mode switch, and
// requests window closure on the exit key
func (c *Controller) ProcessKeyboardEvents() {
	if c.input.IsActive(input.ActionExit) && c.requestClose != nil {
		c.requestClose()
	}

	if c.input.IsActive(input.ActionMoveForward) {
		c.camera.ProcessKeyboard(MoveForward, c.deltaTime)
	}
	if c.input.IsActive(input.ActionMoveBackward) {
		c.camera.ProcessKeyboard(MoveBackward, c.deltaTime)
	}
	if c.input.IsActive(input.ActionMoveLeft) {
		c.camera.ProcessKeyboard(MoveLeft, c.deltaTime)
	}
	if c.input.IsActive(input.ActionMoveRight) {
		c.camera.ProcessKeyboard(MoveRight, c.deltaTime)
	}
	if c.input.IsActive(input.ActionMoveUp) {
		c.camera.ProcessKeyboard(MoveUp, c.deltaTime)
	}
	if c.input.IsActive(input.ActionMoveDown) {
		c.camera.ProcessKeyboard(MoveDown, c.deltaTime)
	}

	// projection switching reacts to the press edge only, so holding a
	// key switches mode exactly once
	if c.input.JustPressed(input.ActionPerspectiveProjection) {
		c.orthographic = false
	}
	if c.input.JustPressed(input.ActionOrthographicProjection) {
		c.orthographic = true
	}
}

// Orthographic reports whether the orthographic projection mode is
// active
func (c *Controller) Orthographic() bool {
	return c.orthographic
}

// PrepareSceneView runs the per-frame view update: advances frame
// timing, applies pending keyboard state, and pushes the view matrix,
// projection matrix, and camera position to the shader
func (c *Controller) PrepareSceneView() {
	currentFrame := glfw.GetTime()
	c.deltaTime = currentFrame - c.lastFrame
	c.lastFrame = currentFrame

	c.ProcessKeyboardEvents()

	c.shader.SetMat4(viewUniformName, c.camera.ViewMatrix())
	c.shader.SetMat4(projectionUniformName, c.projectionMatrix())
	c.shader.SetVec3V(viewPositionUniformName, c.camera.Position)
}

// projectionMatrix derives the projection for the current mode: a fixed
// half-height orthographic volume, or a perspective frustum from the
// camera zoom. Both share the near/far planes.
func (c *Controller) projectionMatrix() mgl32.Mat4 {
	aspect := float32(c.width) / float32(c.height)

	if c.orthographic {
		return mgl32.Ortho(
			-orthoHalfHeight*aspect, orthoHalfHeight*aspect,
			-orthoHalfHeight, orthoHalfHeight,
			nearPlane, farPlane,
		)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.camera.Zoom), aspect, nearPlane, farPlane)
}
