package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"
)

// Run opens the window and drives the frame loop until the player quits.
// Everything lives on one OS thread: poll input, advance the simulation by
// at most one tick, render.
func Run() error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	if err := InitAudio(); err != nil {
		glog.Warningf("audio init failed (continuing without sound): %v", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SLITHER_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}
	rng := NewRand(seed)

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.ClearColor(
		float32(Palette.Grass.R)/255.0,
		float32(Palette.Grass.G)/255.0,
		float32(Palette.Grass.B)/255.0,
		1.0,
	)

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()
	rend.InitTextures()
	if err := rend.InitFont(); err != nil {
		return fmt.Errorf("font: %w", err)
	}

	input := NewInput()
	session := NewGameSession(rng)
	glog.Infof("session started (seed %d)", seed)

	for !window.ShouldClose() {
		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		switch session.State {
		case StateRunning:
			input.Apply(window, session)
			session.Step(glfw.GetTime())

		case StateGameOver:
			if input.JustPressed(window, glfw.KeyEnter) {
				PlaySound(SoundRestart)
				session = NewGameSession(rng)
				glog.Infof("session restarted")
			}
		}

		rend.BeginFrame(fbW, fbH)
		rend.DrawScene(session)
		RenderHUD(rend, session, fbW, fbH)

		window.SwapBuffers()
	}
	return nil
}
