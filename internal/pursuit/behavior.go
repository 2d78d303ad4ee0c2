package pursuit

import "math/rand"

// DefaultBehaviorInterval is the number of ticks between behavior re-rolls.
const DefaultBehaviorInterval = 10

// Behavior is a movement heuristic an autonomous agent can follow.
type Behavior uint8

const (
	BehaviorSeek Behavior = iota
	BehaviorWanderUp
	BehaviorWanderLeft
	BehaviorWanderRight
	BehaviorWanderDown
)

// Behaviors returns the fixed behavior set in roll order.
func Behaviors() []Behavior {
	return []Behavior{
		BehaviorSeek,
		BehaviorWanderUp,
		BehaviorWanderLeft,
		BehaviorWanderRight,
		BehaviorWanderDown,
	}
}

// String returns the behavior name.
func (b Behavior) String() string {
	switch b {
	case BehaviorSeek:
		return "seek"
	case BehaviorWanderUp:
		return "wander-up"
	case BehaviorWanderLeft:
		return "wander-left"
	case BehaviorWanderRight:
		return "wander-right"
	case BehaviorWanderDown:
		return "wander-down"
	default:
		return "unknown"
	}
}

// Selector periodically picks a behavior at random and keeps executing it
// until the next roll.
type Selector struct {
	interval  int
	timer     int
	active    Behavior
	hasActive bool
	rng       *rand.Rand
}

// NewSelector creates a selector that re-rolls every interval ticks.
// A non-positive interval falls back to DefaultBehaviorInterval.
func NewSelector(interval int, rng *rand.Rand) *Selector {
	if interval <= 0 {
		interval = DefaultBehaviorInterval
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Selector{
		interval: interval,
		rng:      rng,
	}
}

// Interval returns the number of ticks between rolls.
func (s *Selector) Interval() int {
	return s.interval
}

// SetInterval changes the roll period; the running countdown is kept.
func (s *Selector) SetInterval(interval int) {
	if interval > 0 {
		s.interval = interval
	}
}

// Active returns the behavior currently in effect, or false before the first roll.
func (s *Selector) Active() (Behavior, bool) {
	return s.active, s.hasActive
}

// Tick advances the roll counter and re-rolls when it is due.
// The first call always rolls. Returns true when a roll happened.
func (s *Selector) Tick() bool {
	s.timer++
	if s.hasActive && s.timer < s.interval {
		return false
	}
	set := Behaviors()
	s.active = set[s.rng.Intn(len(set))]
	s.hasActive = true
	s.timer = 0
	return true
}

// Execute applies the active behavior to a. Seek heads for the agent's move
// target; wanders push in a fixed direction.
func (s *Selector) Execute(a *Agent, m TileMap) {
	if !s.hasActive {
		return
	}
	switch s.active {
	case BehaviorSeek:
		if goal := a.MoveTarget(); goal != nil {
			Seek(a, *goal, m)
		}
	case BehaviorWanderUp:
		a.TryMove(DirUp, m)
	case BehaviorWanderLeft:
		a.TryMove(DirLeft, m)
	case BehaviorWanderRight:
		a.TryMove(DirRight, m)
	case BehaviorWanderDown:
		a.TryMove(DirDown, m)
	}
}

// Seek moves a toward the tile containing goal. The horizontal gap is closed
// first; the vertical move is only tried when the horizontal one was not taken.
// Returns true when a move was taken.
func Seek(a *Agent, goal Point, m TileMap) bool {
	col, row := a.Grid()
	goalCol, goalRow := a.geom.TileOf(goal.X, goal.Y)

	switch {
	case col > goalCol:
		if a.TryMove(DirLeft, m) {
			return true
		}
	case col < goalCol:
		if a.TryMove(DirRight, m) {
			return true
		}
	}

	switch {
	case row > goalRow:
		return a.TryMove(DirUp, m)
	case row < goalRow:
		return a.TryMove(DirDown, m)
	}
	return false
}
