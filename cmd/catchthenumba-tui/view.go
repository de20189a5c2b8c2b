package main

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/ddesignmedia/catchthenumba/game"
	"github.com/ddesignmedia/catchthenumba/game/fx"
	"github.com/ddesignmedia/catchthenumba/game/quiz"
	"github.com/ddesignmedia/catchthenumba/highscore"
	"github.com/ddesignmedia/catchthenumba/ui/hud"
)

// Each board cell is two columns wide so the board keeps roughly the shape
// of the desktop canvas.
const (
	cellCols = 2
	boardTop = 2 // status and task rows above the frame
)

var (
	styleText  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0xEEEEEE))
	styleDim   = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x888888))
	styleFrame = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x393E46))
	styleHead  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x00FFF5))
	styleBody  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x00ADB5))
	styleTile  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewHexColor(0xFF2E63)).Bold(true)
	styleTask  = tcell.StyleDefault.Foreground(tcell.NewHexColor(0x00FFF5)).Bold(true)
)

type cell struct {
	r     rune
	style tcell.Style
}

// canvas is a frame of terminal cells built from game state, kept apart from
// the screen so it can be inspected.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{' ', tcell.StyleDefault}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r, style}
}

func (c *canvas) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.set(x, y, r, style)
		x++
	}
}

func (c *canvas) centered(y int, s string, style tcell.Style) {
	c.text((c.w-len([]rune(s)))/2, y, s, style)
}

// row returns one line of the canvas as text with trailing blanks trimmed.
func (c *canvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		b.WriteRune(c.cells[y*c.w+x].r)
	}
	return strings.TrimRight(b.String(), " ")
}

func (c *canvas) blit(s tcell.Screen) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			s.SetContent(x, y, cl.r, nil, cl.style)
		}
	}
}

// frameSize is the terminal area the game needs.
func frameSize(g *game.Game) (w, h int) {
	return g.Grid.Width*cellCols + 2, boardTop + g.Grid.Height + 3
}

func compose(g *game.Game, board *highscore.Board) *canvas {
	w, h := frameSize(g)
	c := newCanvas(w, h)

	if g.Phase() == game.PhaseSelecting {
		c.text(0, 0, "Catch the Numba!", styleText)
	} else {
		c.text(0, 0, hud.StatusLine(g), styleText)
		c.text(0, 1, hud.TaskLine(g, true), styleTask)
	}
	drawFrame(c, g)

	switch g.Phase() {
	case game.PhaseSelecting:
		drawMenu(c, board)
	case game.PhasePlaying:
		drawPlay(c, g)
	case game.PhaseOver:
		drawParticles(c, g)
		top := boardTop + 1 + g.Grid.Height/2 - 2
		for i, line := range hud.OverLines(g) {
			c.centered(top+i*2, line, styleText)
		}
	}

	c.text(0, h-1, "arrows/WASD steer  1/2 mode  R restart  Esc quit", styleDim)
	return c
}

func drawFrame(c *canvas, g *game.Game) {
	right := g.Grid.Width*cellCols + 1
	bottom := boardTop + g.Grid.Height + 1
	for x := 1; x < right; x++ {
		c.set(x, boardTop, '─', styleFrame)
		c.set(x, bottom, '─', styleFrame)
	}
	for y := boardTop + 1; y < bottom; y++ {
		c.set(0, y, '│', styleFrame)
		c.set(right, y, '│', styleFrame)
	}
	c.set(0, boardTop, '┌', styleFrame)
	c.set(right, boardTop, '┐', styleFrame)
	c.set(0, bottom, '└', styleFrame)
	c.set(right, bottom, '┘', styleFrame)
}

// cellOrigin is the terminal position of a board cell.
func cellOrigin(x, y int) (int, int) {
	return 1 + x*cellCols, boardTop + 1 + y
}

func drawPlay(c *canvas, g *game.Game) {
	drawParticles(c, g)
	// Three digit values spill into the next cell. Tiles are never adjacent
	// and the snake is drawn on top.
	for _, t := range g.Tiles() {
		x, y := cellOrigin(t.Cell.X, t.Cell.Y)
		label := strconv.Itoa(t.Value)
		if len(label) == 1 {
			label = " " + label
		}
		c.text(x, y, label, styleTile)
	}
	for i, p := range g.Snake() {
		x, y := cellOrigin(p.X, p.Y)
		style := styleBody
		r := '▓'
		if i == 0 {
			style, r = styleHead, '█'
		}
		c.set(x, y, r, style)
		c.set(x+1, y, r, style)
	}
}

func drawParticles(c *canvas, g *game.Game) {
	ps := g.Particles()
	size := float64(g.Grid.CellSize)
	for _, p := range ps.P {
		if ps.Alpha(p) < 0.15 {
			continue
		}
		cx, cy := p.X/size, p.Y/size
		if cx < 0 || cy < 0 || int(cx) >= g.Grid.Width || int(cy) >= g.Grid.Height {
			continue
		}
		x, y := cellOrigin(int(cx), int(cy))
		if cx-float64(int(cx)) >= 0.5 {
			x++
		}
		r := '·'
		if p.Size > size/4 {
			r = '•'
		}
		c.set(x, y, r, particleStyle(p.Col))
	}
}

func particleStyle(col fx.RGB) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(col.R), int32(col.G), int32(col.B)))
}

func drawMenu(c *canvas, board *highscore.Board) {
	y := boardTop + 2
	for _, line := range hud.MenuLines()[1:] {
		c.centered(y, line, styleText)
		y++
	}
	if board == nil {
		return
	}
	y += 2
	colW := (c.w - 2) / len(quiz.Modes)
	for i, m := range quiz.Modes {
		x := 2 + i*colW
		c.text(x, y, m.Title()+" highscores", styleTask)
		for j, line := range board.List(m).Lines() {
			c.text(x, y+2+j, line, styleDim)
		}
	}
}
