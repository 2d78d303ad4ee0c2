package pursuit

import (
	"fmt"

	"github.com/vovakirdan/tui-pursuit/internal/core"
	"github.com/vovakirdan/tui-pursuit/internal/pursuit"
)

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Draw HUD
	g.renderHUD(dst)

	// Handle special states
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.maze.Cols()*cellW, g.maze.Rows()+hudHeight))
		return
	}

	g.renderMaze(dst)
	for _, p := range g.pursuers {
		g.renderPursuer(dst, p.agent)
	}
	g.renderSeeker(dst)

	// Draw overlays
	switch {
	case g.levelCleared:
		g.renderOverlay(dst, fmt.Sprintf("Maze %d cleared!", g.levelIndex+1), g.maze.Name())
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.State().Score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hp := 0
	if g.seeker != nil {
		hp = g.seeker.HP()
	}
	hud := fmt.Sprintf(" Pursuit · Score: %d  HP: %d  Maze: %d/%d  Left: %d",
		g.State().Score, hp, g.levelIndex+1, len(g.mazes), g.maze.Remaining())
	dst.DrawText(0, 0, hud)

	// Draw separator
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderMaze draws walls and consumables, two columns per tile.
func (g *Game) renderMaze(dst *core.Screen) {
	pelletOn := (g.tick/15)%2 == 0
	for row := 0; row < g.maze.Rows(); row++ {
		for col := 0; col < g.maze.Cols(); col++ {
			x, y := g.cellOrigin(col, row)
			switch g.maze.TileAt(col, row) {
			case pursuit.TileWall:
				dst.DrawTextColored(x, y, "██", core.ColorBlue)
			case pursuit.TileDot:
				dst.DrawTextColored(x, y, " ·", core.ColorWhite)
			case pursuit.TilePowerPellet:
				if pelletOn {
					dst.DrawTextColored(x, y, " ●", core.ColorBrightWhite)
				}
			}
		}
	}
}

// renderSeeker draws the seeker with its mouth open toward its facing.
func (g *Game) renderSeeker(dst *core.Screen) {
	a := g.seeker
	if a == nil || !a.Visible() {
		return
	}
	glyph := "()"
	if a.Mouth() > 0.05 {
		switch a.Facing() {
		case pursuit.DirRight:
			glyph = "(<"
		case pursuit.DirLeft:
			glyph = ">)"
		case pursuit.DirUp:
			glyph = `\/`
		case pursuit.DirDown:
			glyph = "/\\"
		}
	}
	if a.IsDead() {
		glyph = "xx"
	}
	g.drawAgent(dst, a, glyph, core.ColorByName(a.Color()))
}

// renderPursuer draws a pursuer, blue and wavering while vulnerable.
func (g *Game) renderPursuer(dst *core.Screen, a *pursuit.Agent) {
	if a.IsDead() || !a.Visible() {
		return
	}
	glyph := "ΩΩ"
	color := core.ColorByName(a.Color())
	if a.State() == pursuit.StateVulnerable {
		glyph = "ωω"
		color = core.ColorBlue
		// Flash during the last second of the window.
		if a.StateTimer() < 60 && (a.StateTimer()/8)%2 == 0 {
			color = core.ColorBrightWhite
		}
	}
	g.drawAgent(dst, a, glyph, color)
}

func (g *Game) drawAgent(dst *core.Screen, a *pursuit.Agent, glyph string, color core.Color) {
	col, row := a.Grid()
	col, row = g.geom.Wrap(col, row)
	x, y := g.cellOrigin(col, row)
	dst.DrawTextColored(x, y, glyph, color)
}

func (g *Game) cellOrigin(col, row int) (x, y int) {
	return g.mapOffsetX + col*cellW, g.mapOffsetY + row
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 6
	box := core.CenteredRect(dst.Width(), dst.Height(), w, 5)

	dst.DrawRect(box.Inset(1), ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
