package game

import (
	"image"
	"testing"
)

func opaquePixels(img image.Image) int {
	b := img.Bounds()
	n := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
			}
		}
	}
	return n
}

func TestSpriteImages(t *testing.T) {
	tests := []struct {
		name string
		make func() image.Image
		w, h int
	}{
		{"Head", makeHeadImage, 64, 64},
		{"Body", makeBodyImage, 64, 64},
		{"Food", makeFoodImage, 64, 64},
		{"Background", makeBackgroundImage, WindowWidth, WindowHeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := tt.make()
			b := img.Bounds()
			if b.Dx() != tt.w || b.Dy() != tt.h {
				t.Fatalf("size %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.w, tt.h)
			}
			if opaquePixels(img) == 0 {
				t.Error("image is fully transparent")
			}
		})
	}
}

func TestSpritesKeepTransparentCorners(t *testing.T) {
	// Head, body and food are round sprites; their corners must stay
	// transparent so the fragment shader's alpha discard shapes them.
	for _, tt := range []struct {
		name string
		make func() image.Image
	}{
		{"Head", makeHeadImage},
		{"Body", makeBodyImage},
	} {
		img := tt.make()
		if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
			t.Errorf("%s: top-left corner is opaque", tt.name)
		}
		if _, _, _, a := img.At(63, 63).RGBA(); a != 0 {
			t.Errorf("%s: bottom-right corner is opaque", tt.name)
		}
	}
}

func TestBackgroundIsStable(t *testing.T) {
	// The grass scatter uses a fixed seed; two bakes must be identical.
	a := makeBackgroundImage()
	b := makeBackgroundImage()
	pts := []image.Point{{10, 10}, {400, 300}, {799, 599}, {123, 456}, {700, 80}}
	for _, p := range pts {
		ar, ag, abl, aa := a.At(p.X, p.Y).RGBA()
		br, bg, bbl, ba := b.At(p.X, p.Y).RGBA()
		if ar != br || ag != bg || abl != bbl || aa != ba {
			t.Fatalf("background differs between bakes at %v", p)
		}
	}
}

func TestFontAtlas(t *testing.T) {
	atlas := makeFontAtlas()
	b := atlas.Bounds()
	if b.Dx() != FontAtlasW || b.Dy() != FontAtlasH {
		t.Fatalf("atlas size %dx%d, want %dx%d", b.Dx(), b.Dy(), FontAtlasW, FontAtlasH)
	}

	cell := func(ch rune) image.Rectangle {
		idx := int(ch) - 32
		x := (idx % FontCols) * FontCellW
		y := (idx / FontCols) * FontCellH
		return image.Rect(x, y, x+FontCellW, y+FontCellH)
	}

	if opaquePixels(atlas.SubImage(cell(' '))) != 0 {
		t.Error("space cell is not empty")
	}
	for _, ch := range "AZaz09#" {
		if opaquePixels(atlas.SubImage(cell(ch))) == 0 {
			t.Errorf("glyph %q rasterized blank", ch)
		}
	}
}
