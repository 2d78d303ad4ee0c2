package pursuit

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pursuit/internal/config"
	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/pursuit"
)

const (
	gameID    = "pursuit"
	hudHeight = 2 // Top HUD lines
	cellW     = 2 // Screen columns per tile
)

var actionDirections = map[core.Action]pursuit.Direction{
	core.ActionUp:    pursuit.DirUp,
	core.ActionDown:  pursuit.DirDown,
	core.ActionLeft:  pursuit.DirLeft,
	core.ActionRight: pursuit.DirRight,
}

// Options carries the collaborators of a Game.
type Options struct {
	// Mazes are played in order. Empty means every registered maze.
	Mazes  []*Maze
	Logger *log.Logger
}

// pursuer is one pursuer slot. The agent is replaced after respawnIn ticks
// once it has died.
type pursuer struct {
	agent     *pursuit.Agent
	selector  *pursuit.Selector
	spawn     TilePos
	color     string
	respawnIn int
	touching  bool
	lastSeen  *pursuit.Point
}

// Game implements the pursuit game.
type Game struct {
	cfg        config.PursuitConfig
	logger     *log.Logger
	mazes      []*Maze
	difficulty *config.DifficultyManager

	rng        *rand.Rand
	tick       uint64
	levelIndex int
	maze       *Maze
	geom       pursuit.Geometry

	seeker   *pursuit.Agent
	pursuers []*pursuer
	carry    int // Score carried into the current maze
	seekerHP int

	// Screen layout
	screenW    int
	screenH    int
	headless   bool
	mapOffsetX int
	mapOffsetY int

	// Game state flags
	gameOver        bool
	won             bool
	paused          bool
	tooSmall        bool
	levelCleared    bool
	levelClearTicks int
	catches         int
}

// New creates a game over the given mazes. The config is validated first.
func New(cfg config.PursuitConfig, opts Options) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	mazes := opts.Mazes
	if len(mazes) == 0 {
		var err error
		mazes, err = LoadCampaign()
		if err != nil {
			return nil, fmt.Errorf("pursuit: load campaign: %w", err)
		}
	}
	if len(mazes) == 0 {
		return nil, errors.New("pursuit: no mazes to play")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Game{
		cfg:    cfg,
		logger: logger,
		mazes:  mazes,
	}, nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pursuit"
}

// Reset initializes/restarts the game. A zero screen size runs headless:
// the window size check is skipped.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.levelIndex = 0
	g.carry = 0
	g.seekerHP = g.cfg.Agent.HP
	g.catches = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.headless = cfg.ScreenW <= 0 || cfg.ScreenH <= 0
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.loadLevel()
}

// loadLevel copies the current maze and spawns every agent on it.
func (g *Game) loadLevel() {
	g.maze = g.mazes[g.levelIndex].Clone()
	g.geom = pursuit.GeometryFor(g.maze, g.cfg.Geometry.TileSize, g.cfg.Geometry.CenterTolerance)
	g.levelCleared = false
	g.levelClearTicks = 0
	g.layout()

	spawn := g.maze.SeekerSpawn()
	g.seeker = g.newAgent(pursuit.KindSeeker, spawn, g.cfg.Seeker.Color, "player")
	g.seeker.Award(g.carry)

	g.pursuers = g.pursuers[:0]
	colors := g.cfg.Pursuer.Colors
	for i, sp := range g.maze.PursuerSpawns() {
		color := pursuit.DefaultColor
		if len(colors) > 0 {
			color = colors[i%len(colors)]
		}
		p := &pursuer{
			spawn:    sp,
			color:    color,
			selector: pursuit.NewSelector(g.cfg.Pursuer.BehaviorInterval, g.rng),
		}
		g.spawnPursuer(p)
		g.pursuers = append(g.pursuers, p)
	}
	g.syncEnemies()
	g.seeker.SetContactHook(g.touch)

	g.logger.Info("maze loaded",
		"maze", g.maze.ID(),
		"level", g.levelIndex+1,
		"pursuers", len(g.pursuers),
		"resources", g.maze.Remaining(),
	)
}

// layout centers the maze on screen and flags windows that cannot hold it.
func (g *Game) layout() {
	if g.headless {
		g.tooSmall = false
		return
	}
	mapW := g.maze.Cols() * cellW
	mapH := g.maze.Rows()
	g.tooSmall = g.screenW < mapW || g.screenH < mapH+hudHeight
	g.mapOffsetX = max(0, (g.screenW-mapW)/2)
	g.mapOffsetY = hudHeight
}

func (g *Game) newAgent(kind pursuit.Kind, at TilePos, color, owner string) *pursuit.Agent {
	x, y := g.geom.TileCenter(at.Col, at.Row)
	a := g.cfg.Agent
	hp := a.HP
	if kind == pursuit.KindSeeker {
		hp = g.seekerHP
	}
	return pursuit.NewAgent(pursuit.AgentConfig{
		Kind:            kind,
		Owner:           owner,
		Color:           color,
		X:               x,
		Y:               y,
		Radius:          a.Radius,
		MaxSpeed:        a.MaxSpeed,
		HP:              hp,
		Attack:          a.Attack,
		SightRange:      g.cfg.Pursuer.SightRange,
		WallBuffer:      a.WallBuffer,
		MouthMax:        a.MouthMax,
		MouthStep:       a.MouthStep,
		VulnerableTicks: g.cfg.Seeker.VulnerableTicks,
	}, pursuit.Options{
		Geometry: g.geom,
		Rand:     g.rng,
		Logger:   g.logger,
	})
}

func (g *Game) spawnPursuer(p *pursuer) {
	p.agent = g.newAgent(pursuit.KindPursuer, p.spawn, p.color, "cpu")
	p.agent.SetAnimateMouth(false)
	p.agent.ResetDirection()
	p.agent.SetContactHook(g.touch)
	p.respawnIn = 0
	p.touching = false
	p.lastSeen = nil
}

// syncEnemies refreshes the seeker's broadcast list after pursuers change.
func (g *Game) syncEnemies() {
	enemies := make([]*pursuit.Agent, 0, len(g.pursuers))
	for _, p := range g.pursuers {
		enemies = append(enemies, p.agent)
	}
	g.seeker.SetEnemies(enemies)
	for _, p := range g.pursuers {
		p.agent.SetEnemies([]*pursuit.Agent{g.seeker})
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.gameOver && !g.won {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= g.cfg.Gameplay.LevelClearTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	g.applyDifficulty()
	g.processInput(input)
	g.steerPursuers()

	// Fixed update order: seeker first, then pursuers in spawn order.
	g.seeker.Update(g.maze)
	for _, p := range g.pursuers {
		p.agent.Update(g.maze)
	}

	g.resolveContacts()
	g.tickRespawns()

	switch {
	case g.seeker.IsDead():
		g.gameOver = true
		g.logger.Info("game over", "score", g.seeker.Score(), "maze", g.maze.ID(), "tick", g.tick)
	case g.maze.Remaining() == 0:
		g.levelCleared = true
		g.levelClearTicks = 0
		g.logger.Info("maze cleared", "maze", g.maze.ID(), "score", g.seeker.Score(), "tick", g.tick)
	}

	return core.StepResult{State: g.State()}
}

// applyDifficulty scales pursuer aggression and the pellet window with the
// run's progress.
func (g *Game) applyDifficulty() {
	progress := config.Progress{
		Score: g.seeker.Score(),
		Ticks: int(g.tick),
		Maze:  g.levelIndex,
	}
	interval := g.difficulty.BehaviorInterval(g.cfg.Pursuer.BehaviorInterval, progress)
	for _, p := range g.pursuers {
		p.selector.SetInterval(interval)
	}
	g.seeker.SetVulnerableTicks(g.difficulty.VulnerableTicks(g.cfg.Seeker.VulnerableTicks, progress))
}

// processInput turns the first directional action of the frame into a move
// attempt. A refused move stays buffered in the seeker until its next center.
func (g *Game) processInput(input core.InputFrame) {
	for _, action := range core.DirectionalActions() {
		if input.Has(action) {
			g.seeker.TryMove(actionDirections[action], g.maze)
			return
		}
	}
}

// steerPursuers updates what each pursuer knows about the seeker and lets its
// selector pick the next move. A pursuer heads for the seeker while it can see
// it, then for where it last saw it. Vulnerable pursuers head home.
func (g *Game) steerPursuers() {
	for _, p := range g.pursuers {
		a := p.agent
		if a.IsDead() {
			continue
		}

		sighted := !g.seeker.IsDead() && a.InRange(g.seeker)
		if sighted {
			seen := g.seeker.Location()
			p.lastSeen = &seen
		}

		switch {
		case a.State() == pursuit.StateVulnerable:
			hx, hy := g.geom.TileCenter(p.spawn.Col, p.spawn.Row)
			a.SetMoveTarget(&pursuit.Point{X: hx, Y: hy})
		case p.lastSeen != nil:
			a.SetMoveTarget(p.lastSeen)
		}

		// After the move target, which drops the alert.
		if sighted {
			a.SetAttackTarget(g.seeker)
		} else {
			a.SetAttackTarget(nil)
		}

		p.selector.Tick()
		p.selector.Execute(a, g.maze)
	}
}

// touch is the contact hook shared by every agent. It only records which
// pursuers overlap the seeker; the rules are applied once all agents moved.
func (g *Game) touch(a *pursuit.Agent) {
	if a.IsDead() || g.seeker.IsDead() {
		return
	}
	for _, p := range g.pursuers {
		if p.agent.IsDead() {
			continue
		}
		if a != g.seeker && a != p.agent {
			continue
		}
		loc := p.agent.Location()
		if g.seeker.Contains(loc.X, loc.Y) {
			p.touching = true
		}
	}
}

// resolveContacts applies the seeker-vs-pursuer rules: a vulnerable pursuer
// is eaten, any other live pursuer costs the seeker its attack in hit points
// and sends everyone back to their spawn.
func (g *Game) resolveContacts() {
	caught := false
	for _, p := range g.pursuers {
		if !p.touching {
			continue
		}
		p.touching = false
		if p.agent.IsDead() || g.seeker.IsDead() {
			continue
		}

		if p.agent.State() == pursuit.StateVulnerable {
			p.agent.Injure(p.agent.HP())
			g.seeker.Award(g.cfg.Scoring.PursuerPoints)
			p.respawnIn = g.cfg.Pursuer.RespawnTicks
			g.logger.Debug("pursuer eaten", "agent", p.agent.Name(), "score", g.seeker.Score())
			continue
		}
		if !caught {
			g.seeker.Injure(p.agent.Attack())
			caught = true
			g.catches++
			g.logger.Debug("seeker caught", "by", p.agent.Name(), "hp", g.seeker.HP())
		}
	}

	if caught && !g.seeker.IsDead() {
		g.respawnAll()
	}
}

// respawnAll returns every live agent to its spawn tile.
func (g *Game) respawnAll() {
	spawn := g.maze.SeekerSpawn()
	g.seeker.Place(g.geom.TileCenter(spawn.Col, spawn.Row))
	for _, p := range g.pursuers {
		p.agent.Place(g.geom.TileCenter(p.spawn.Col, p.spawn.Row))
		p.lastSeen = nil
	}
}

// tickRespawns replaces pursuers whose respawn delay has run out.
func (g *Game) tickRespawns() {
	changed := false
	for _, p := range g.pursuers {
		if !p.agent.IsDead() {
			continue
		}
		if p.respawnIn > 0 {
			p.respawnIn--
			continue
		}
		g.spawnPursuer(p)
		changed = true
		g.logger.Debug("pursuer respawned", "agent", p.agent.Name())
	}
	if changed {
		g.syncEnemies()
	}
}

// advanceLevel moves to the next maze, or ends the game after the last one.
func (g *Game) advanceLevel() {
	g.carry = g.seeker.Score()
	g.seekerHP = g.seeker.HP()
	g.levelIndex++
	if g.levelIndex >= len(g.mazes) {
		g.levelIndex = len(g.mazes) - 1
		g.levelCleared = false
		g.won = true
		g.logger.Info("all mazes cleared", "score", g.carry)
		return
	}
	g.loadLevel()
}

// Maze returns the live tile map of the current level.
func (g *Game) Maze() *Maze {
	return g.maze
}

// Seeker returns the controlled agent.
func (g *Game) Seeker() *pursuit.Agent {
	return g.seeker
}

// Pursuers returns the current pursuer agents in spawn order.
func (g *Game) Pursuers() []*pursuit.Agent {
	out := make([]*pursuit.Agent, len(g.pursuers))
	for i, p := range g.pursuers {
		out[i] = p.agent
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := g.carry
	if g.seeker != nil {
		score = g.seeker.Score()
	}
	return core.GameState{
		Score:    score,
		Level:    g.levelIndex + 1,
		GameOver: g.gameOver || g.won,
		Won:      g.won,
		Paused:   g.paused,
	}
}

// Resize re-centers the maze for a new window size without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.headless = w <= 0 || h <= 0
	if g.maze != nil {
		g.layout()
	}
}
