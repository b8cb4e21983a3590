package game

// Segment is one body cell: a position and the direction it is travelling.
type Segment struct {
	Pos Vec2
	Dir Direction
}

// Snake is the ordered segment sequence. The head is Segments[0]. Length is
// at least 1 from construction on and never shrinks during a session.
type Snake struct {
	Segments []Segment
}

// NewSnake returns a single-segment snake at pos facing right.
func NewSnake(pos Vec2) *Snake {
	return &Snake{Segments: []Segment{{Pos: pos, Dir: DirRight}}}
}

// Head returns the head segment.
func (s *Snake) Head() Segment { return s.Segments[0] }

// Len returns the number of segments.
func (s *Snake) Len() int { return len(s.Segments) }

// Advance moves the snake one tick in dir: each body segment takes its
// predecessor's place, then the head travels MoveStride along dir. The
// segment count is unchanged.
func (s *Snake) Advance(dir Direction) {
	for i := len(s.Segments) - 1; i > 0; i-- {
		s.Segments[i] = s.Segments[i-1]
	}
	off := dir.Offset()
	head := &s.Segments[0]
	head.Pos.X += off.X * MoveStride
	head.Pos.Y += off.Y * MoveStride
	head.Dir = dir
}

// Grow appends n copies of the tail segment. The copies sit stacked on the
// tail until later ticks pull them apart; no existing segment is touched.
func (s *Snake) Grow(n int) {
	tail := s.Segments[len(s.Segments)-1]
	for i := 0; i < n; i++ {
		s.Segments = append(s.Segments, tail)
	}
}

// HeadSelfCollision reports whether the head overlaps any other segment.
// The threshold is the per-tick stride rather than the segment size:
// neighbours trail the head by exactly one stride, and segments stacked by
// Grow sit even closer to each other, so a larger threshold would fire on a
// perfectly healthy snake.
func (s *Snake) HeadSelfCollision() bool {
	head := s.Segments[0].Pos
	for i := 1; i < len(s.Segments); i++ {
		if Distance(head, s.Segments[i].Pos) < MoveStride {
			return true
		}
	}
	return false
}
