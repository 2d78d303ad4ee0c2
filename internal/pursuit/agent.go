package pursuit

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
)

// Agent defaults.
const (
	DefaultHP              = 50
	DefaultAttack          = 10
	DefaultRadius          = 10.0
	DefaultMaxSpeed        = 2.0
	DefaultSightRange      = 250.0
	DefaultVulnerableTicks = 300
	DefaultMouthMax        = 0.10
	DefaultMouthStep       = 0.01
	DefaultWallBuffer      = 0.0
	DefaultColor           = "gray"
)

// AgentConfig holds the physical and combat parameters of a new agent.
type AgentConfig struct {
	Kind            Kind
	Owner           string
	Color           string
	X, Y            float64 // Spawn position in pixels
	Radius          float64 // Collision half-extent
	MaxSpeed        float64 // Pixels per tick along the active axis
	HP              int
	Attack          int
	SightRange      float64
	WallBuffer      float64 // Extra gap kept between the agent edge and a wall
	MouthMax        float64 // Upper bound of the mouth animation phase
	MouthStep       float64 // Phase change per tick
	VulnerableTicks int     // Window a power pellet grants over enemies (seekers)
}

// DefaultAgentConfig returns the default parameters for an agent of kind k at (x, y).
func DefaultAgentConfig(k Kind, x, y float64) AgentConfig {
	return AgentConfig{
		Kind:            k,
		Color:           DefaultColor,
		X:               x,
		Y:               y,
		Radius:          DefaultRadius,
		MaxSpeed:        DefaultMaxSpeed,
		HP:              DefaultHP,
		Attack:          DefaultAttack,
		SightRange:      DefaultSightRange,
		WallBuffer:      DefaultWallBuffer,
		MouthMax:        DefaultMouthMax,
		MouthStep:       DefaultMouthStep,
		VulnerableTicks: DefaultVulnerableTicks,
	}
}

// Options carries the collaborators an agent needs but does not own.
type Options struct {
	Geometry Geometry
	Rand     *rand.Rand  // Source for generated names and random facing; nil uses seed 1
	Logger   *log.Logger // Receives data-consistency warnings; nil discards
}

// ContactHook is called once per update after resource collision, before the
// wrap. The world installs it to apply agent-vs-agent rules.
type ContactHook func(a *Agent)

// EventKind identifies something an agent caused during its last update.
type EventKind uint8

const (
	EventDot EventKind = iota
	EventPowerPellet
)

// Event records a resource consumed during the last update.
type Event struct {
	Kind     EventKind
	Col, Row int
}

// Agent is a positioned, stateful actor on the tile grid.
type Agent struct {
	kind  Kind
	owner string
	color string
	name  string

	geom Geometry

	x, y   float64
	r      float64
	gx, gy int
	vx, vy float64
	maxv   float64
	facing Direction

	state      State
	stateTimer int

	hp         int
	attack     int
	sightRange float64
	wallBuffer float64

	mouth        float64
	mouthMax     float64
	mouthStep    float64
	mouthOpening bool
	animateMouth bool
	visible      bool

	cmds            *CommandBuffer
	score           int
	vulnerableTicks int
	enemies         []*Agent
	events          []Event

	moveTarget   *Point
	attackTarget *Agent
	contact      ContactHook

	rng    *rand.Rand
	logger *log.Logger
}

// NewAgent creates an agent from cfg. The agent starts INACTIVE and stationary.
func NewAgent(cfg AgentConfig, opts Options) *Agent {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	color := cfg.Color
	if color == "" {
		color = DefaultColor
	}

	a := &Agent{
		kind:            cfg.Kind,
		owner:           cfg.Owner,
		color:           color,
		geom:            opts.Geometry,
		x:               cfg.X,
		y:               cfg.Y,
		r:               cfg.Radius,
		maxv:            cfg.MaxSpeed,
		facing:          DirRight,
		state:           StateInactive,
		hp:              cfg.HP,
		attack:          cfg.Attack,
		sightRange:      cfg.SightRange,
		wallBuffer:      cfg.WallBuffer,
		mouth:           cfg.MouthMax,
		mouthMax:        cfg.MouthMax,
		mouthStep:       cfg.MouthStep,
		animateMouth:    true,
		visible:         true,
		vulnerableTicks: cfg.VulnerableTicks,
		rng:             rng,
		logger:          logger,
	}
	a.name = fmt.Sprintf("%s-%s-%05d", color, cfg.Kind, rng.Intn(100000))
	a.cmds = NewCommandBuffer(logger, a.name)
	a.syncGrid()
	return a
}

// --- Identity and read accessors ---

// Kind returns the agent kind.
func (a *Agent) Kind() Kind { return a.kind }

// Owner returns the owner tag.
func (a *Agent) Owner() string { return a.owner }

// Color returns the display color name.
func (a *Agent) Color() string { return a.color }

// Name returns the generated display name.
func (a *Agent) Name() string { return a.name }

// State returns the life-cycle state.
func (a *Agent) State() State { return a.state }

// StateTimer returns the remaining vulnerability ticks.
func (a *Agent) StateTimer() int { return a.stateTimer }

// HP returns the remaining hit points.
func (a *Agent) HP() int { return a.hp }

// Attack returns the damage dealt on contact.
func (a *Agent) Attack() int { return a.attack }

// Score returns the points collected so far.
func (a *Agent) Score() int { return a.score }

// Radius returns the collision half-extent.
func (a *Agent) Radius() float64 { return a.r }

// MaxSpeed returns the speed along the active axis; zero once dead.
func (a *Agent) MaxSpeed() float64 { return a.maxv }

// Facing returns the last direction the agent turned to.
func (a *Agent) Facing() Direction { return a.facing }

// Mouth returns the animation phase in [0, MouthMax].
func (a *Agent) Mouth() float64 { return a.mouth }

// Visible reports whether the agent should be drawn.
func (a *Agent) Visible() bool { return a.visible }

// Location returns the continuous position.
func (a *Agent) Location() Point {
	return Point{X: a.x, Y: a.y}
}

// Grid returns the tile the agent occupies.
func (a *Agent) Grid() (col, row int) {
	return a.gx, a.gy
}

// Velocity returns the per-tick displacement.
func (a *Agent) Velocity() (vx, vy float64) {
	return a.vx, a.vy
}

// Heading returns the direction of travel, or false when stationary.
func (a *Agent) Heading() (Direction, bool) {
	switch {
	case a.vx > 0:
		return DirRight, true
	case a.vx < 0:
		return DirLeft, true
	case a.vy > 0:
		return DirDown, true
	case a.vy < 0:
		return DirUp, true
	default:
		return 0, false
	}
}

// Commands exposes the agent's command buffer.
func (a *Agent) Commands() *CommandBuffer {
	return a.cmds
}

// Events returns the resources consumed during the last update.
// The slice is reused by the next update.
func (a *Agent) Events() []Event {
	return a.events
}

// MoveTarget returns the current movement goal, if any.
func (a *Agent) MoveTarget() *Point {
	return a.moveTarget
}

// AttackTarget returns the agent currently targeted, if any.
func (a *Agent) AttackTarget() *Agent {
	return a.attackTarget
}

// IsDead reports whether the agent has no hit points left.
func (a *Agent) IsDead() bool {
	return a.hp <= 0 || a.state == StateDead
}

// IsAlert reports whether the agent is tracking an attack target.
func (a *Agent) IsAlert() bool {
	return a.state == StateAlert
}

// Centered reports whether the agent sits on the center of its current tile.
func (a *Agent) Centered() bool {
	return a.geom.IsCentered(a.x, a.y, a.gx, a.gy)
}

// Contains reports whether (x, y) lies inside the agent's square hit box.
func (a *Agent) Contains(x, y float64) bool {
	if math.Abs(a.x-x) > a.r {
		return false
	}
	return math.Abs(a.y-y) <= a.r
}

// InRange reports whether other is within sight range.
func (a *Agent) InRange(other *Agent) bool {
	return Distance(a.Location(), other.Location()) < a.sightRange
}

// --- Wiring set by the world ---

// SetEnemies registers the agents that receive the vulnerability broadcast.
func (a *Agent) SetEnemies(enemies []*Agent) {
	a.enemies = enemies
}

// SetContactHook installs the agent-vs-agent collision hook.
func (a *Agent) SetContactHook(h ContactHook) {
	a.contact = h
}

// SetAnimateMouth toggles the mouth animation.
func (a *Agent) SetAnimateMouth(on bool) {
	a.animateMouth = on
}

// SetVisible toggles whether the renderer should draw the agent.
func (a *Agent) SetVisible(v bool) {
	a.visible = v
}

// SetMoveTarget sets the movement goal. An inactive or alert agent starts moving.
func (a *Agent) SetMoveTarget(p *Point) {
	if a.state == StateDead {
		return
	}
	a.moveTarget = p
	if p != nil && (a.state == StateInactive || a.state == StateAlert) {
		a.state = StateMoving
	}
}

// SetAttackTarget sets the agent to track. Acquiring a target raises the alert;
// losing it drops back to moving.
func (a *Agent) SetAttackTarget(t *Agent) {
	if a.state == StateDead {
		return
	}
	a.attackTarget = t
	switch {
	case t != nil && (a.state == StateInactive || a.state == StateMoving):
		a.state = StateAlert
	case t == nil && a.state == StateAlert:
		a.state = StateMoving
	}
}

// SetVulnerableTicks changes the window this agent's power pellets grant.
func (a *Agent) SetVulnerableTicks(ticks int) {
	if ticks > 0 {
		a.vulnerableTicks = ticks
	}
}

// ResetDirection points the agent at a random canonical facing.
func (a *Agent) ResetDirection() {
	dirs := Directions()
	a.facing = dirs[a.rng.Intn(len(dirs))]
}

// Place teleports the agent to (x, y), stops it and drops pending commands.
func (a *Agent) Place(x, y float64) {
	if a.state == StateDead {
		return
	}
	a.x, a.y = x, y
	a.vx, a.vy = 0, 0
	a.cmds.Clear()
	a.syncGrid()
}

// --- Movement ---

// TryMove attempts to turn toward d. The turn is taken when the agent is
// centered on its tile or reversing along its current axis, and the tile ahead
// is not a wall. On failure a seeker buffers d for retry at the next center;
// on success any older buffered command is dropped, so the newest request
// wins. Returns true when the turn was taken.
func (a *Agent) TryMove(d Direction, m TileMap) bool {
	if a.state == StateDead {
		return false
	}

	centered := a.Centered()
	if (centered || a.reversing(d)) && a.neighbor(m, d) != TileWall {
		if centered {
			a.x, a.y = a.geom.TileCenter(a.gx, a.gy)
		}
		a.facing = d
		a.setVelocity(d)
		if a.state == StateInactive {
			a.state = StateMoving
		}
		a.cmds.Clear()
		return true
	}

	if a.kind == KindSeeker {
		a.cmds.Store(d)
	}
	return false
}

// Queue stores d in the command buffer without attempting it now.
// Only seekers accept commands.
func (a *Agent) Queue(d Direction) bool {
	if a.kind != KindSeeker || a.state == StateDead {
		return false
	}
	a.cmds.Store(d)
	return true
}

func (a *Agent) reversing(d Direction) bool {
	h, moving := a.Heading()
	return moving && h.Opposite() == d
}

func (a *Agent) setVelocity(d Direction) {
	dx, dy := d.Delta()
	a.vx = float64(dx) * a.maxv
	a.vy = float64(dy) * a.maxv
}

// neighbor looks up the tile next to the agent's tile, folding across map
// edges so tunnels lead into the opposite side.
func (a *Agent) neighbor(m TileMap, d Direction) Tile {
	dx, dy := d.Delta()
	return a.tileAt(m, a.gx+dx, a.gy+dy)
}

func (a *Agent) tileAt(m TileMap, col, row int) Tile {
	col, row = a.geom.Wrap(col, row)
	return SafeTileAt(m, col, row)
}

func (a *Agent) syncGrid() {
	a.gx, a.gy = a.geom.TileOf(a.x, a.y)
}

// --- Per-tick update ---

// Update advances the agent by one tick against the shared tile map.
func (a *Agent) Update(m TileMap) {
	a.events = a.events[:0]

	if a.state == StateDead {
		a.maxv = 0
		a.vx, a.vy = 0, 0
		a.moveTarget = nil
		a.attackTarget = nil
		return
	}

	if a.cmds.HasCommand() && a.Centered() {
		if d, ok := a.cmds.Consume(); ok {
			a.TryMove(d, m)
		}
		if a.cmds.Len() > CommandCapacity {
			a.cmds.Truncate("residual commands after retry")
		}
	}

	a.x += a.vx
	a.y += a.vy

	a.resolveWalls(m)
	a.resolveResources(m)
	if a.contact != nil {
		a.contact(a)
	}
	a.wrap()
	a.animate()

	if a.state == StateVulnerable {
		a.stateTimer--
		if a.stateTimer <= 0 {
			a.stateTimer = 0
			a.state = StateMoving
		}
	}
}

// resolveWalls clamps the leading edge against a wall in the tile ahead on
// each moving axis and re-derives the grid position.
func (a *Agent) resolveWalls(m TileMap) {
	b := a.geom.TileSize
	col, row := a.geom.TileOf(a.x, a.y)

	if a.vx < 0 && a.tileAt(m, col-1, row) == TileWall {
		limit := float64(col)*b + a.r + a.wallBuffer
		if a.x < limit {
			a.x = limit
			a.vx = 0
		}
	}
	if a.vx > 0 && a.tileAt(m, col+1, row) == TileWall {
		limit := float64(col+1)*b - a.r - a.wallBuffer
		if a.x > limit {
			a.x = limit
			a.vx = 0
		}
	}
	if a.vy < 0 && a.tileAt(m, col, row-1) == TileWall {
		limit := float64(row)*b + a.r + a.wallBuffer
		if a.y < limit {
			a.y = limit
			a.vy = 0
		}
	}
	if a.vy > 0 && a.tileAt(m, col, row+1) == TileWall {
		limit := float64(row+1)*b - a.r - a.wallBuffer
		if a.y > limit {
			a.y = limit
			a.vy = 0
		}
	}

	a.syncGrid()
}

// resolveResources lets a seeker eat whatever lies on its tile.
func (a *Agent) resolveResources(m TileMap) {
	if a.kind != KindSeeker {
		return
	}

	col, row := a.geom.Wrap(a.gx, a.gy)
	switch SafeTileAt(m, col, row) {
	case TileDot:
		m.SetTile(col, row, TileBlank)
		a.score++
		a.events = append(a.events, Event{Kind: EventDot, Col: col, Row: row})
	case TilePowerPellet:
		m.SetTile(col, row, TileBlank)
		a.events = append(a.events, Event{Kind: EventPowerPellet, Col: col, Row: row})
		a.broadcastVulnerability()
	}
}

// broadcastVulnerability turns every live pursuer enemy vulnerable immediately.
func (a *Agent) broadcastVulnerability() {
	for _, e := range a.enemies {
		if e == nil || e.kind != KindPursuer {
			continue
		}
		e.MakeVulnerable(a.vulnerableTicks)
	}
	a.logger.Debug("vulnerability broadcast",
		"agent", a.name,
		"enemies", len(a.enemies),
		"ticks", a.vulnerableTicks,
	)
}

// MakeVulnerable puts the agent in the vulnerable state for ticks updates.
// A repeated call restarts the countdown.
func (a *Agent) MakeVulnerable(ticks int) {
	if a.state == StateDead || ticks <= 0 {
		return
	}
	a.state = StateVulnerable
	a.stateTimer = ticks
}

// wrap re-enters an agent that left the map on the opposite edge.
func (a *Agent) wrap() {
	w, h := a.geom.Extent()

	if a.x <= 0 {
		a.x = w
	} else if a.x >= w {
		a.x = 0
	}

	if a.y <= 0 {
		a.y = h
	} else if a.y >= h {
		a.y = 0
	}

	a.syncGrid()
}

// animate ping-pongs the mouth phase between 0 and its maximum.
func (a *Agent) animate() {
	if !a.animateMouth {
		return
	}
	if a.mouthOpening {
		a.mouth += a.mouthStep
		if a.mouth >= a.mouthMax {
			a.mouth = a.mouthMax
			a.mouthOpening = false
		}
		return
	}
	a.mouth -= a.mouthStep
	if a.mouth <= 0 {
		a.mouth = 0
		a.mouthOpening = true
	}
}

// --- Combat and scoring ---

// Injure subtracts dmg hit points, flooring at zero. Reaching zero kills the
// agent for good.
func (a *Agent) Injure(dmg int) {
	if a.state == StateDead || dmg < 0 {
		return
	}
	a.hp -= dmg
	if a.hp < 0 {
		a.hp = 0
	}
	if a.hp == 0 {
		a.die()
	}
}

func (a *Agent) die() {
	a.state = StateDead
	a.stateTimer = 0
	a.maxv = 0
	a.vx, a.vy = 0, 0
	a.moveTarget = nil
	a.attackTarget = nil
	a.cmds.Clear()
	a.logger.Debug("agent died", "agent", a.name)
}

// Award adds points to the score. Non-positive awards are ignored so the
// score never decreases.
func (a *Agent) Award(points int) {
	if points > 0 {
		a.score += points
	}
}

// Snapshot is a read-only copy of what a renderer or UI needs each frame.
type Snapshot struct {
	Name        string    `yaml:"name"`
	Kind        Kind      `yaml:"kind"`
	Color       string    `yaml:"color"`
	X           float64   `yaml:"x"`
	Y           float64   `yaml:"y"`
	Radius      float64   `yaml:"radius"`
	Col         int       `yaml:"col"`
	Row         int       `yaml:"row"`
	VX          float64   `yaml:"vx"`
	VY          float64   `yaml:"vy"`
	Facing      Direction `yaml:"facing"`
	FacingAngle float64   `yaml:"facing_angle"`
	Mouth       float64   `yaml:"mouth"`
	State       State     `yaml:"state"`
	StateTimer  int       `yaml:"state_timer"`
	HP          int       `yaml:"hp"`
	Score       int       `yaml:"score"`
	Visible     bool      `yaml:"visible"`
}

// Snapshot captures the agent's presentation state.
func (a *Agent) Snapshot() Snapshot {
	return Snapshot{
		Name:        a.name,
		Kind:        a.kind,
		Color:       a.color,
		X:           a.x,
		Y:           a.y,
		Radius:      a.r,
		Col:         a.gx,
		Row:         a.gy,
		VX:          a.vx,
		VY:          a.vy,
		Facing:      a.facing,
		FacingAngle: a.facing.Angle(),
		Mouth:       a.mouth,
		State:       a.state,
		StateTimer:  a.stateTimer,
		HP:          a.hp,
		Score:       a.score,
		Visible:     a.visible,
	}
}
