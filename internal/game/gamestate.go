package game

import (
	"math"

	"github.com/golang/glog"
)

type GameState int

const (
	StateRunning  GameState = iota
	StateGameOver // terminal: no further ticks
)

// GameSession owns one run of the game: the snake, both foods, score and
// speed state. The input mapper writes intents (SetDirectionIntent,
// SetSlowHeld, SetFastHeld), Step consumes them on tick boundaries, and the
// renderer only reads.
type GameSession struct {
	State GameState
	Score int

	Snake     *Snake
	SmallFood Food
	BigFood   Food

	dir        Direction // committed: the direction the last tick moved in
	pendingDir Direction // latest accepted intent, committed on the next tick

	smallEaten   int // small foods since the last big spawn (0..SmallFoodsPerBig-1)
	tickInterval float64
	slowHeld     bool
	fastHeld     bool
	lastTick     float64

	spawner *FoodSpawner
}

// NewGameSession starts a fresh run: a single-segment snake at the playfield
// centre facing right, a small food on the board, big food inactive.
func NewGameSession(rng *Rand) *GameSession {
	s := &GameSession{
		State:        StateRunning,
		Snake:        NewSnake(Vec2{X: WindowWidth / 2, Y: WindowHeight / 2}),
		dir:          DirRight,
		pendingDir:   DirRight,
		tickInterval: BaseTickInterval,
		spawner:      NewFoodSpawner(rng),
	}
	s.SmallFood = Food{Pos: s.spawner.Place(SmallFood, s.Snake.Segments), Active: true}
	return s
}

// SetDirectionIntent requests a turn, taking effect on the next tick. The
// exact reverse of the committed direction is refused so the snake cannot
// fold onto itself in one step; any other intent overwrites an earlier one
// from the same frame.
func (s *GameSession) SetDirectionIntent(d Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.pendingDir = d
}

// SetSlowHeld applies the slow key. Each press stretches the tick interval
// by SlowTickStep up to MaxTickInterval; release restores the base rate
// unless the fast key is still held. Calls with an unchanged held state are
// no-ops, so holding the key does not keep slowing the game.
func (s *GameSession) SetSlowHeld(held bool) {
	if held == s.slowHeld {
		return
	}
	s.slowHeld = held
	if held {
		s.tickInterval = math.Min(s.tickInterval+SlowTickStep, MaxTickInterval)
	} else if !s.fastHeld {
		s.tickInterval = BaseTickInterval
	}
}

// SetFastHeld applies the fast key: a fixed interval below the base rate
// while held, base restored on release unless the slow key is still held.
func (s *GameSession) SetFastHeld(held bool) {
	if held == s.fastHeld {
		return
	}
	s.fastHeld = held
	if held {
		s.tickInterval = FastTickInterval
	} else if !s.slowHeld {
		s.tickInterval = BaseTickInterval
	}
}

// TickInterval returns the current wall-clock seconds between ticks.
func (s *GameSession) TickInterval() float64 { return s.tickInterval }

// Step runs at most one simulation tick. Nothing happens until the tick
// interval has elapsed since the previous tick, and nothing at all once the
// session is over; missed time is never backfilled. Reports whether a tick
// ran.
func (s *GameSession) Step(now float64) bool {
	if s.State != StateRunning {
		return false
	}
	if now-s.lastTick < s.tickInterval {
		return false
	}
	s.lastTick = now

	s.dir = s.pendingDir
	s.Snake.Advance(s.dir)

	head := s.Snake.Head().Pos
	if !WithinPlayfield(head) || s.Snake.HeadSelfCollision() {
		s.State = StateGameOver
	}

	// Food checks still run on the death tick; terminality only means no
	// further ticks are processed.
	if s.SmallFood.Active && Distance(head, s.SmallFood.Pos) < SmallFoodRadius {
		s.Snake.Grow(SmallFoodGrowth)
		s.Score += SmallFoodScore
		s.smallEaten++
		if s.smallEaten >= SmallFoodsPerBig {
			s.smallEaten = 0
			s.SmallFood.Active = false
			s.BigFood = Food{Pos: s.spawner.Place(BigFood, s.Snake.Segments), Active: true}
		} else {
			s.SmallFood.Pos = s.spawner.Place(SmallFood, s.Snake.Segments)
		}
		PlaySound(SoundEat)
	} else if s.BigFood.Active && Distance(head, s.BigFood.Pos) < BigFoodRadius {
		s.Snake.Grow(BigFoodGrowth)
		s.Score += BigFoodScore
		s.BigFood.Active = false
		s.SmallFood = Food{Pos: s.spawner.Place(SmallFood, s.Snake.Segments), Active: true}
		PlaySound(SoundBigEat)
	}

	if s.State == StateGameOver {
		glog.Infof("game over: score %d, length %d", s.Score, s.Snake.Len())
		PlaySound(SoundGameOver)
	}
	return true
}
