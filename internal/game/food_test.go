package game

import (
	"fmt"
	"testing"
)

func TestFoodClassString(t *testing.T) {
	if got := fmt.Sprint(SmallFood); got != "small" {
		t.Errorf("SmallFood = %q", got)
	}
	if got := fmt.Sprint(BigFood); got != "big" {
		t.Errorf("BigFood = %q", got)
	}
}

func TestPlaceInsideSpawnRect(t *testing.T) {
	rng := NewRand(1)
	sp := NewFoodSpawner(rng)
	for i := 0; i < 500; i++ {
		p := sp.Place(SmallFood, nil)
		if p.X < FoodInset || p.X > WindowWidth-FoodInset ||
			p.Y < FoodInset || p.Y > WindowHeight-FoodInset {
			t.Fatalf("spawn %d at %v outside spawn rectangle", i, p)
		}
		if p.X != float64(int(p.X)) || p.Y != float64(int(p.Y)) {
			t.Fatalf("spawn %d at %v not on integer coordinates", i, p)
		}
		if !WithinPlayfield(p) {
			t.Fatalf("spawn %d at %v outside playfield", i, p)
		}
	}
}

func TestPlaceClearsRandomSnakes(t *testing.T) {
	// Random snake configurations x spawn calls: the result is never within
	// FoodMinSeparation of any segment.
	rng := NewRand(0xF00D)
	sp := NewFoodSpawner(rng)
	for trial := 0; trial < 100; trial++ {
		segs := make([]Segment, 1+rng.Intn(60))
		for i := range segs {
			segs[i] = Segment{
				Pos: Vec2{
					X: float64(rng.Range(int(WallThickness), WindowWidth-int(WallThickness))),
					Y: float64(rng.Range(int(WallThickness), WindowHeight-int(WallThickness))),
				},
				Dir: Direction(rng.Intn(4)),
			}
		}
		p := sp.Place(SmallFood, segs)
		for i := range segs {
			if d := Distance(p, segs[i].Pos); d < FoodMinSeparation {
				t.Fatalf("trial %d: spawn at %v only %.2f from segment %d", trial, p, d, i)
			}
		}
	}
}

func TestPlaceTerminatesOnSaturatedBoard(t *testing.T) {
	// Blanket the whole spawn rectangle so no candidate can clear the snake;
	// Place must still return after the bounded attempts.
	var segs []Segment
	for x := FoodInset; x <= WindowWidth-FoodInset; x += FoodMinSeparation {
		for y := FoodInset; y <= WindowHeight-FoodInset; y += FoodMinSeparation {
			segs = append(segs, Segment{Pos: Vec2{X: x, Y: y}, Dir: DirRight})
		}
	}

	sp := NewFoodSpawner(NewRand(3))
	p := sp.Place(BigFood, segs)
	if p.X < FoodInset || p.X > WindowWidth-FoodInset ||
		p.Y < FoodInset || p.Y > WindowHeight-FoodInset {
		t.Errorf("fallback position %v outside spawn rectangle", p)
	}
}

func TestClearOfSnake(t *testing.T) {
	segs := []Segment{{Pos: Vec2{X: 200, Y: 200}, Dir: DirRight}}

	if clearOfSnake(Vec2{X: 200, Y: 200 + FoodMinSeparation - 1}, segs) {
		t.Error("position inside the separation radius reported clear")
	}
	if !clearOfSnake(Vec2{X: 200, Y: 200 + FoodMinSeparation}, segs) {
		t.Error("position at exactly the separation radius reported blocked")
	}
	if !clearOfSnake(Vec2{X: 600, Y: 400}, nil) {
		t.Error("empty snake blocked a spawn")
	}
}
