package game

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/go-gl/gl/v4.1-core/gl"
)

func rgba(c RGB, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// uploadTexture creates a GL texture from img. The row flip compensates for
// image rows running top-down while quad UVs address textures bottom-up, so
// canvases display exactly as authored.
func uploadTexture(img image.Image) uint32 {
	nrgba := imaging.FlipV(img)

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	b := nrgba.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(nrgba.Pix))
	return tex
}

// InitTextures authors the four sprite textures and uploads them.
func (r *Renderer) InitTextures() {
	r.headTex = uploadTexture(makeHeadImage())
	r.bodyTex = uploadTexture(makeBodyImage())
	r.foodTex = uploadTexture(makeFoodImage())
	r.backgroundTex = uploadTexture(makeBackgroundImage())
}

// makeHeadImage draws the head facing right: a tapered skull, an eye on
// each side and a forked tongue. Directional rotation is applied at draw
// time, so only this one orientation is authored.
func makeHeadImage() image.Image {
	const s = 64
	dc := gg.NewContext(s, s)

	// Tongue first so the skull covers its root.
	dc.SetColor(rgba(Palette.Tongue, 255))
	dc.SetLineWidth(2.5)
	dc.MoveTo(50, 32)
	dc.LineTo(59, 32)
	dc.Stroke()
	dc.MoveTo(59, 32)
	dc.LineTo(63, 27)
	dc.Stroke()
	dc.MoveTo(59, 32)
	dc.LineTo(63, 37)
	dc.Stroke()

	dc.SetColor(rgba(Palette.SnakeBody, 255))
	dc.DrawEllipse(28, 32, 25, 22)
	dc.Fill()
	dc.SetColor(rgba(Palette.SnakeBody.Add(16, 18, 10), 255))
	dc.DrawEllipse(40, 32, 15, 16)
	dc.Fill()

	for _, ey := range []float64{19, 45} {
		dc.SetColor(rgba(RGB{R: 250, G: 244, B: 224}, 255))
		dc.DrawCircle(36, ey, 6)
		dc.Fill()
		dc.SetColor(rgba(Palette.Eye, 255))
		dc.DrawCircle(38, ey, 3)
		dc.Fill()
	}
	return dc.Image()
}

// makeBodyImage draws one body cell: a shaded disc with faint scale arcs.
// Segments are stamped every MoveStride, so the discs fuse into a tube.
func makeBodyImage() image.Image {
	const s = 64
	dc := gg.NewContext(s, s)

	grad := gg.NewRadialGradient(26, 26, 5, 32, 32, 30)
	grad.AddColorStop(0, rgba(Palette.SnakeBelly, 255))
	grad.AddColorStop(0.55, rgba(Palette.SnakeBody, 255))
	grad.AddColorStop(1, rgba(Palette.SnakeBody.Mul(140), 255))
	dc.SetFillStyle(grad)
	dc.DrawCircle(32, 32, 30)
	dc.Fill()

	dc.SetColor(rgba(Palette.SnakeBody.Mul(170), 110))
	dc.SetLineWidth(3)
	for x := 16.0; x <= 48; x += 16 {
		dc.MoveTo(x, 12)
		dc.QuadraticTo(x-7, 32, x, 52)
		dc.Stroke()
	}
	return dc.Image()
}

// makeFoodImage draws the apple both food classes share; the big class just
// renders it at twice the size.
func makeFoodImage() image.Image {
	const s = 64

	// Soft drop shadow, blurred separately and composited under the fruit.
	sdc := gg.NewContext(s, s)
	sdc.SetRGBA255(0, 0, 0, 150)
	sdc.DrawEllipse(32, 52, 19, 7)
	sdc.Fill()
	shadow := imaging.Blur(sdc.Image(), 3.0)

	dc := gg.NewContext(s, s)
	dc.DrawImage(shadow, 0, 0)

	grad := gg.NewRadialGradient(25, 27, 4, 32, 34, 26)
	grad.AddColorStop(0, rgba(Palette.Apple.Add(42, 30, 26), 255))
	grad.AddColorStop(0.7, rgba(Palette.Apple, 255))
	grad.AddColorStop(1, rgba(Palette.Apple.Mul(150), 255))
	dc.SetFillStyle(grad)
	dc.DrawCircle(32, 34, 24)
	dc.Fill()

	dc.SetColor(rgba(Palette.Stem, 255))
	dc.SetLineWidth(4)
	dc.MoveTo(32, 13)
	dc.QuadraticTo(34, 7, 39, 5)
	dc.Stroke()

	dc.Push()
	dc.RotateAbout(-0.5, 42, 11)
	dc.SetColor(rgba(Palette.Leaf, 255))
	dc.DrawEllipse(42, 11, 9, 4)
	dc.Fill()
	dc.Pop()

	dc.SetColor(rgba(Palette.AppleShine, 170))
	dc.DrawEllipse(24, 25, 6, 9)
	dc.Fill()
	return dc.Image()
}

// makeBackgroundImage bakes the lawn and the four wall ramparts. The bottom
// band is BottomWallSlack thinner than the others; WithinPlayfield uses the
// same numbers, so the snake dies exactly where the bricks start.
func makeBackgroundImage() image.Image {
	dc := gg.NewContext(WindowWidth, WindowHeight)

	dc.SetColor(rgba(Palette.Grass, 255))
	dc.Clear()
	dc.SetColor(rgba(Palette.GrassLight, 255))
	for y := 0; y < WindowHeight; y += 80 {
		dc.DrawRectangle(0, float64(y), WindowWidth, 40)
		dc.Fill()
	}

	// Scattered grass blades; fixed seed keeps the art stable across runs.
	rng := NewRand(0x51AC)
	dc.SetLineWidth(1.5)
	for i := 0; i < 600; i++ {
		x := rng.RangeF(0, WindowWidth)
		y := rng.RangeF(0, WindowHeight)
		shade := lerpRGB(Palette.Grass.Mul(160), Palette.GrassLight.Add(24, 28, 16), rng.Float64())
		dc.SetColor(rgba(shade, 200))
		dc.MoveTo(x, y)
		dc.LineTo(x+rng.RangeF(-2, 2), y-rng.RangeF(3, 7))
		dc.Stroke()
	}

	drawBrickBand(dc, 0, 0, WindowWidth, WallThickness)
	drawBrickBand(dc, 0, WindowHeight-(WallThickness-BottomWallSlack), WindowWidth, WallThickness-BottomWallSlack)
	drawBrickBand(dc, 0, 0, WallThickness, WindowHeight)
	drawBrickBand(dc, WindowWidth-WallThickness, 0, WallThickness, WindowHeight)
	return dc.Image()
}

// drawBrickBand fills a rectangle with a running-bond brick pattern.
func drawBrickBand(dc *gg.Context, x, y, w, h float64) {
	dc.Push()
	dc.DrawRectangle(x, y, w, h)
	dc.Clip()

	dc.SetColor(rgba(Palette.Mortar, 255))
	dc.DrawRectangle(x, y, w, h)
	dc.Fill()

	const brickW, brickH, gap = 20.0, 10.0, 2.0
	shades := [3]RGB{
		Palette.Brick,
		Palette.Brick.Mul(220),
		Palette.Brick.Add(16, 10, 6),
	}
	row := 0
	for by := y; by < y+h; by += brickH {
		offset := 0.0
		if row%2 == 1 {
			offset = -brickW / 2
		}
		col := 0
		for bx := x + offset; bx < x+w; bx += brickW {
			dc.SetColor(rgba(shades[(row+col)%3], 255))
			dc.DrawRectangle(bx+gap/2, by+gap/2, brickW-gap, brickH-gap)
			dc.Fill()
			col++
		}
		row++
	}

	dc.ResetClip()
	dc.Pop()
}
