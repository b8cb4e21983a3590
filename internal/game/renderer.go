package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

type Renderer struct {
	// Quad program: every world-space sprite is one rotated quad.
	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32

	uCenter     int32
	uSize       int32
	uRotation   int32
	uResolution int32
	uTex        int32
	uUseTexture int32
	uColor      int32

	// Entity textures, authored at startup (textures.go).
	headTex       uint32
	bodyTex       uint32
	foodTex       uint32
	backgroundTex uint32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32
}

func NewRenderer() (*Renderer, error) {
	quadProg, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}

	r := &Renderer{quadProg: quadProg}

	// Quad VAO/VBO: a unit quad (6 vertices, 2 triangles).
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	quadVerts := [12]float32{
		0, 0, 1, 0, 1, 1,
		0, 0, 1, 1, 0, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))
	r.quadVAO = vao
	r.quadVBO = vbo

	gl.UseProgram(quadProg)
	r.uCenter = gl.GetUniformLocation(quadProg, gl.Str("uCenter\x00"))
	r.uSize = gl.GetUniformLocation(quadProg, gl.Str("uSize\x00"))
	r.uRotation = gl.GetUniformLocation(quadProg, gl.Str("uRotation\x00"))
	r.uResolution = gl.GetUniformLocation(quadProg, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(quadProg, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)
	r.uUseTexture = gl.GetUniformLocation(quadProg, gl.Str("uUseTexture\x00"))
	r.uColor = gl.GetUniformLocation(quadProg, gl.Str("uColor\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.quadVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.quadVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.quadProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.headTex, r.bodyTex, r.foodTex, r.backgroundTex, r.fontTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.quadProg)
	gl.BindVertexArray(r.quadVAO)

	// The projection is in world units; the viewport handles any
	// framebuffer scaling.
	gl.Uniform2f(r.uResolution, float32(WindowWidth), float32(WindowHeight))
	gl.ActiveTexture(gl.TEXTURE0)
}

// DrawTexturedQuad draws tex as a w×h quad centred at (x, y), rotated by
// angle radians.
func (r *Renderer) DrawTexturedQuad(tex uint32, x, y, w, h, angle float64) {
	gl.Uniform2f(r.uCenter, float32(x), float32(y))
	gl.Uniform2f(r.uSize, float32(w), float32(h))
	gl.Uniform1f(r.uRotation, float32(angle))
	gl.Uniform1i(r.uUseTexture, 1)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawColorQuad draws a flat-coloured unrotated quad, used for overlays.
func (r *Renderer) DrawColorQuad(x, y, w, h float64, cr, cg, cb, ca float32) {
	gl.Uniform2f(r.uCenter, float32(x), float32(y))
	gl.Uniform2f(r.uSize, float32(w), float32(h))
	gl.Uniform1f(r.uRotation, 0)
	gl.Uniform1i(r.uUseTexture, 0)
	gl.Uniform4f(r.uColor, cr, cg, cb, ca)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

// DrawScene renders one frame of the session: background, active food, then
// the snake tail first so the head is never hidden under the body. A dark
// overlay drops over everything once the session is over.
func (r *Renderer) DrawScene(s *GameSession) {
	r.DrawTexturedQuad(r.backgroundTex, WindowWidth/2, WindowHeight/2, WindowWidth, WindowHeight, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	if s.SmallFood.Active {
		r.DrawTexturedQuad(r.foodTex, s.SmallFood.Pos.X, s.SmallFood.Pos.Y, SmallFoodRadius, SmallFoodRadius, 0)
	}
	if s.BigFood.Active {
		r.DrawTexturedQuad(r.foodTex, s.BigFood.Pos.X, s.BigFood.Pos.Y, BigFoodRadius, BigFoodRadius, 0)
	}

	segs := s.Snake.Segments
	for i := len(segs) - 1; i >= 1; i-- {
		r.DrawTexturedQuad(r.bodyTex, segs[i].Pos.X, segs[i].Pos.Y, SquareSize, SquareSize, segs[i].Dir.Angle())
	}
	head := segs[0]
	r.DrawTexturedQuad(r.headTex, head.Pos.X, head.Pos.Y, SquareSize, SquareSize, head.Dir.Angle())

	if s.State == StateGameOver {
		r.DrawColorQuad(WindowWidth/2, WindowHeight/2, WindowWidth, WindowHeight, 0, 0, 0, 0.55)
	}

	gl.Disable(gl.BLEND)
}
