package game

import (
	"math"
	"testing"
)

func TestDirectionOffsets(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Vec2
	}{
		{"Up", DirUp, Vec2{X: 0, Y: 1}},
		{"Down", DirDown, Vec2{X: 0, Y: -1}},
		{"Left", DirLeft, Vec2{X: -1, Y: 0}},
		{"Right", DirRight, Vec2{X: 1, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dir.Offset(); got != tt.want {
				t.Errorf("offset = %v, want %v", got, tt.want)
			}
			off := tt.dir.Offset()
			if l := math.Hypot(off.X, off.Y); l != 1 {
				t.Errorf("offset length = %v, want unit", l)
			}
		})
	}
}

func TestDirectionAngles(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want float64
	}{
		{"Right", DirRight, 0},
		{"Up", DirUp, math.Pi / 2},
		{"Left", DirLeft, math.Pi},
		{"Down", DirDown, 3 * math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dir.Angle(); got != tt.want {
				t.Errorf("angle = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionAngleMatchesOffset(t *testing.T) {
	// The same table row drives movement and rendering; the angle must
	// actually point along the offset.
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		off := d.Offset()
		a := d.Angle()
		if math.Abs(math.Cos(a)-off.X) > 1e-12 || math.Abs(math.Sin(a)-off.Y) > 1e-12 {
			t.Errorf("%v: angle %v does not point along offset %v", d, a, off)
		}
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, want %v", d, got, want)
		}
		if got := d.Opposite().Opposite(); got != d {
			t.Errorf("double opposite of %v = %v", d, got)
		}
	}
}
