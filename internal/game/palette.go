package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

func (c RGB) Add(dr, dg, db int) RGB {
	r := int(c.R) + dr
	g := int(c.G) + dg
	b := int(c.B) + db
	if r < 0 {
		r = 0
	} else if r > 255 {
		r = 255
	}
	if g < 0 {
		g = 0
	} else if g > 255 {
		g = 255
	}
	if b < 0 {
		b = 0
	} else if b > 255 {
		b = 255
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
}

var Palette = struct {
	Grass      RGB
	GrassLight RGB
	Brick      RGB
	Mortar     RGB
	SnakeBody  RGB
	SnakeBelly RGB
	Eye        RGB
	Tongue     RGB
	Apple      RGB
	AppleShine RGB
	Stem       RGB
	Leaf       RGB
}{
	Grass:      RGB{R: 88, G: 132, B: 58},
	GrassLight: RGB{R: 104, G: 148, B: 68},
	Brick:      RGB{R: 158, G: 82, B: 54},
	Mortar:     RGB{R: 198, G: 178, B: 152},
	SnakeBody:  RGB{R: 74, G: 158, B: 63},
	SnakeBelly: RGB{R: 176, G: 212, B: 118},
	Eye:        RGB{R: 26, G: 24, B: 20},
	Tongue:     RGB{R: 206, G: 48, B: 60},
	Apple:      RGB{R: 206, G: 38, B: 38},
	AppleShine: RGB{R: 255, G: 234, B: 214},
	Stem:       RGB{R: 96, G: 62, B: 30},
	Leaf:       RGB{R: 70, G: 140, B: 52},
}
