package game

import "math"

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// directionTable maps each direction to its unit movement offset and the
// rotation applied to directional sprites. Movement and rendering read the
// same row so they can never disagree. Angles are counter-clockwise from
// facing right, consistent with the y-up projection.
var directionTable = [4]struct {
	Offset Vec2
	Angle  float64
}{
	DirUp:    {Offset: Vec2{X: 0, Y: 1}, Angle: math.Pi / 2},
	DirDown:  {Offset: Vec2{X: 0, Y: -1}, Angle: 3 * math.Pi / 2},
	DirLeft:  {Offset: Vec2{X: -1, Y: 0}, Angle: math.Pi},
	DirRight: {Offset: Vec2{X: 1, Y: 0}, Angle: 0},
}

// Offset returns the unit movement vector for d.
func (d Direction) Offset() Vec2 { return directionTable[d].Offset }

// Angle returns the sprite rotation for d in radians.
func (d Direction) Angle() float64 { return directionTable[d].Angle }

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}
