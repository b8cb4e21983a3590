package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Input polls the keyboard each frame and feeds intents into the session.
// Previous key state is tracked so one-shot keys fire once per press.
type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{prevKeys: make(map[glfw.Key]bool)}
}

// JustPressed reports a rising edge on key.
func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

// Apply forwards one frame of key state to the session. Direction keys are
// level-triggered with up/down/left/right precedence; the speed keys pass
// their held state through and the session edge-detects the transitions.
func (in *Input) Apply(window *glfw.Window, session *GameSession) {
	if window.GetKey(glfw.KeyUp) == glfw.Press {
		session.SetDirectionIntent(DirUp)
	} else if window.GetKey(glfw.KeyDown) == glfw.Press {
		session.SetDirectionIntent(DirDown)
	} else if window.GetKey(glfw.KeyLeft) == glfw.Press {
		session.SetDirectionIntent(DirLeft)
	} else if window.GetKey(glfw.KeyRight) == glfw.Press {
		session.SetDirectionIntent(DirRight)
	}

	session.SetSlowHeld(window.GetKey(glfw.KeySpace) == glfw.Press)
	session.SetFastHeld(window.GetKey(glfw.KeyLeftControl) == glfw.Press)
}
