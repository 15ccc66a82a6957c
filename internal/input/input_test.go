package input

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestPressReleaseEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	if !im.IsActive(ActionMoveForward) {
		t.Error("W press did not activate forward movement")
	}
	if !im.JustPressed(ActionMoveForward) {
		t.Error("press edge not reported on the press frame")
	}
	if im.JustReleased(ActionMoveForward) {
		t.Error("release edge reported on a press")
	}

	im.PostUpdate()
	if !im.IsActive(ActionMoveForward) {
		t.Error("held key deactivated by PostUpdate")
	}
	if im.JustPressed(ActionMoveForward) {
		t.Error("press edge survived PostUpdate")
	}

	im.HandleKeyEvent(glfw.KeyW, glfw.Release)
	if im.IsActive(ActionMoveForward) {
		t.Error("released key still active")
	}
	if !im.JustReleased(ActionMoveForward) {
		t.Error("release edge not reported on the release frame")
	}

	im.PostUpdate()
	if im.JustReleased(ActionMoveForward) {
		t.Error("release edge survived PostUpdate")
	}
}

// A repeat event from the OS keeps the key held but is not a new press
func TestRepeatIsNotANewPress(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyO, glfw.Press)
	im.PostUpdate()

	im.HandleKeyEvent(glfw.KeyO, glfw.Repeat)
	if !im.IsActive(ActionOrthographicProjection) {
		t.Error("repeat did not keep the action active")
	}
	if im.JustPressed(ActionOrthographicProjection) {
		t.Error("repeat produced a fresh press edge")
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyF12, glfw.Press)

	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) || im.JustPressed(a) {
			t.Fatalf("unbound key activated action %d", a)
		}
	}
}

func TestBindKeyMultipleActions(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeySpace, ActionMoveUp)
	im.BindKey(glfw.KeySpace, ActionExit)

	im.HandleKeyEvent(glfw.KeySpace, glfw.Press)

	if !im.IsActive(ActionMoveUp) || !im.IsActive(ActionExit) {
		t.Error("key bound to two actions did not activate both")
	}
}

func TestBindKeyRejectsInvalidAction(t *testing.T) {
	im := NewInputManager()
	im.BindKey(glfw.KeyF1, ActionCount)
	im.BindKey(glfw.KeyF1, Action(-1))

	im.HandleKeyEvent(glfw.KeyF1, glfw.Press)

	for a := Action(0); a < ActionCount; a++ {
		if im.IsActive(a) {
			t.Fatalf("invalid binding activated action %d", a)
		}
	}
}

func TestDefaultBindings(t *testing.T) {
	cases := []struct {
		key    glfw.Key
		action Action
	}{
		{glfw.KeyW, ActionMoveForward},
		{glfw.KeyS, ActionMoveBackward},
		{glfw.KeyA, ActionMoveLeft},
		{glfw.KeyD, ActionMoveRight},
		{glfw.KeyQ, ActionMoveUp},
		{glfw.KeyE, ActionMoveDown},
		{glfw.KeyP, ActionPerspectiveProjection},
		{glfw.KeyO, ActionOrthographicProjection},
		{glfw.KeyEscape, ActionExit},
	}

	for _, tc := range cases {
		im := NewInputManager()
		im.HandleKeyEvent(tc.key, glfw.Press)
		if !im.IsActive(tc.action) {
			t.Errorf("key %v did not activate action %d", tc.key, tc.action)
		}
	}
}
