package game

import "github.com/golang/glog"

// FoodClass distinguishes the two food types. Eating SmallFoodsPerBig small
// foods in a row brings out one big food.
type FoodClass int

const (
	SmallFood FoodClass = iota
	BigFood
)

func (c FoodClass) String() string {
	if c == BigFood {
		return "big"
	}
	return "small"
}

// Food is one spawnable item. The session owns one Food per class and keeps
// exactly one of the two active once the game has started.
type Food struct {
	Pos    Vec2
	Active bool
}

// FoodSpawner places food at integer positions inside the spawn rectangle,
// clear of the snake.
type FoodSpawner struct {
	rng *Rand
}

func NewFoodSpawner(rng *Rand) *FoodSpawner {
	return &FoodSpawner{rng: rng}
}

// Place returns a position at least FoodMinSeparation away from every snake
// segment. Sampling is bounded: after MaxPlaceAttempts the latest candidate
// is returned even if it overlaps the snake, so a crowded board can never
// stall the frame.
func (f *FoodSpawner) Place(class FoodClass, segments []Segment) Vec2 {
	var p Vec2
	for attempt := 1; ; attempt++ {
		p = Vec2{
			X: float64(f.rng.Range(FoodInset, WindowWidth-FoodInset)),
			Y: float64(f.rng.Range(FoodInset, WindowHeight-FoodInset)),
		}
		if clearOfSnake(p, segments) {
			glog.V(1).Infof("%v food at (%.0f, %.0f) after %d attempt(s)", class, p.X, p.Y, attempt)
			return p
		}
		if attempt >= MaxPlaceAttempts {
			glog.V(1).Infof("%v food at (%.0f, %.0f) overlapping snake: no clear spot in %d attempts", class, p.X, p.Y, attempt)
			return p
		}
	}
}

func clearOfSnake(p Vec2, segments []Segment) bool {
	for i := range segments {
		if Distance(p, segments[i].Pos) < FoodMinSeparation {
			return false
		}
	}
	return true
}
