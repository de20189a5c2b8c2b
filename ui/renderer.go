package ui

import (
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ddesignmedia/catchthenumba/game"
	"github.com/ddesignmedia/catchthenumba/game/quiz"
	"github.com/ddesignmedia/catchthenumba/game/types"
	"github.com/ddesignmedia/catchthenumba/highscore"
	"github.com/ddesignmedia/catchthenumba/ui/hud"
)

var (
	background = rl.NewColor(0x22, 0x28, 0x31, 255)
	panel      = rl.NewColor(0x39, 0x3E, 0x46, 255)
	gridLine   = rl.NewColor(0x2C, 0x33, 0x3D, 255)
	snakeBody  = rl.NewColor(0x00, 0xAD, 0xB5, 255)
	snakeHead  = rl.NewColor(0x00, 0xFF, 0xF5, 255)
	tileColor  = rl.NewColor(0xFF, 0x2E, 0x63, 255)
	textColor  = rl.NewColor(0xEE, 0xEE, 0xEE, 255)
	dimText    = rl.NewColor(0xAA, 0xAA, 0xAA, 255)
)

const fontSize = 20

// Renderer draws the fixed logical frame into an off-screen texture and
// scales that onto the window, letterboxed.
type Renderer struct {
	layout  hud.Layout
	target  rl.RenderTexture2D
	frameW  int32
	frameH  int32
	scale   float64
	offsetX int32
	offsetY int32
	board   *highscore.Board

	touching bool
}

// NewRenderer needs an open window. board may be nil.
func NewRenderer(grid types.Grid, board *highscore.Board) *Renderer {
	layout := hud.NewLayout(grid)
	w, h := layout.FrameSize()
	r := &Renderer{
		layout: layout,
		target: rl.LoadRenderTexture(int32(w), int32(h)),
		frameW: int32(w),
		frameH: int32(h),
		board:  board,
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) Close() {
	rl.UnloadRenderTexture(r.target)
}

// UpdateDimensions recomputes the scale after a window resize. The frame
// itself never changes size.
func (r *Renderer) UpdateDimensions() {
	scale, offX, offY := types.FitScale(int(r.frameW), int(r.frameH), rl.GetScreenWidth(), rl.GetScreenHeight())
	r.scale = scale
	r.offsetX = int32(offX)
	r.offsetY = int32(offY)
}

// Pointer returns the action under the mouse or a touch point pressed this
// frame. Mouse and touch share one path.
func (r *Renderer) Pointer(phase game.Phase) hud.Action {
	touching := rl.GetTouchPointCount() > 0
	tapped := touching && !r.touching
	r.touching = touching

	var pos rl.Vector2
	switch {
	case tapped:
		pos = rl.GetTouchPosition(0)
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		pos = rl.GetMousePosition()
	default:
		return hud.ActionNone
	}
	x, y := hud.ToLogical(float64(pos.X), float64(pos.Y), r.scale, int(r.offsetX), int(r.offsetY))
	return hud.HitTest(r.layout.Buttons(phase), x, y)
}

func (r *Renderer) Draw(g *game.Game) {
	rl.BeginTextureMode(r.target)
	rl.ClearBackground(background)
	r.drawBoard(g)
	r.drawParticles(g)
	r.drawStatusBar(g)
	switch g.Phase() {
	case game.PhaseSelecting:
		r.drawMenu()
	case game.PhaseOver:
		r.drawGameOver(g)
	}
	r.drawButtons(g.Phase())
	rl.EndTextureMode()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	// Render textures are stored upside down, hence the negative source height.
	src := rl.Rectangle{X: 0, Y: 0, Width: float32(r.frameW), Height: -float32(r.frameH)}
	dst := rl.Rectangle{
		X:      float32(r.offsetX),
		Y:      float32(r.offsetY),
		Width:  float32(float64(r.frameW) * r.scale),
		Height: float32(float64(r.frameH) * r.scale),
	}
	rl.DrawTexturePro(r.target.Texture, src, dst, rl.Vector2{}, 0, rl.White)
	rl.EndDrawing()
}

func (r *Renderer) drawBoard(g *game.Game) {
	ox, oy := r.layout.BoardOrigin()
	cell := int32(g.Grid.CellSize)
	bx, by := int32(ox), int32(oy)

	for x := 0; x < g.Grid.Width; x++ {
		for y := 0; y < g.Grid.Height; y++ {
			rl.DrawRectangleLines(bx+int32(x)*cell, by+int32(y)*cell, cell, cell, gridLine)
		}
	}

	// Tiles pulse between 90% and 100% of a cell.
	pulse := 0.95 + 0.05*math.Sin(g.Pulse())
	for _, t := range g.Tiles() {
		px, py := g.Grid.ToPixel(t.Cell)
		size := float32(float64(cell) * pulse)
		inset := (float32(cell) - size) / 2
		rect := rl.Rectangle{X: float32(bx+int32(px)) + inset, Y: float32(by+int32(py)) + inset, Width: size, Height: size}
		rl.DrawRectangleRounded(rect, 0.3, 6, tileColor)
		label := strconv.Itoa(t.Value)
		fs := int32(14)
		if len(label) > 2 {
			fs = 11
		}
		tw := rl.MeasureText(label, fs)
		rl.DrawText(label, bx+int32(px)+(cell-tw)/2, by+int32(py)+(cell-fs)/2, fs, textColor)
	}

	for i, p := range g.Snake() {
		px, py := g.Grid.ToPixel(p)
		color := snakeBody
		if i == 0 {
			color = snakeHead
		}
		rl.DrawRectangle(bx+int32(px)+1, by+int32(py)+1, cell-2, cell-2, color)
	}
}

func (r *Renderer) drawParticles(g *game.Game) {
	_, oy := r.layout.BoardOrigin()
	ps := g.Particles()
	for _, p := range ps.P {
		c := rl.NewColor(p.Col.R, p.Col.G, p.Col.B, 255)
		rl.DrawCircleV(rl.Vector2{X: float32(p.X), Y: float32(p.Y) + float32(oy)}, float32(p.Size/2), rl.Fade(c, float32(ps.Alpha(p))))
	}
}

func (r *Renderer) drawStatusBar(g *game.Game) {
	rl.DrawRectangle(0, 0, r.frameW, hud.TopBar, panel)
	if g.Phase() == game.PhaseSelecting {
		rl.DrawText("Catch the Numba!", 10, 10, fontSize, textColor)
		return
	}
	rl.DrawText(hud.StatusLine(g), 10, 10, fontSize, textColor)
	task := hud.TaskLine(g, false)
	tw := rl.MeasureText(task, fontSize)
	rl.DrawText(task, r.frameW-tw-10, 10, fontSize, snakeHead)
}

func (r *Renderer) drawMenu() {
	lines := hud.MenuLines()
	_, oy := r.layout.BoardOrigin()
	rl.DrawText(lines[1], 10, int32(oy)+10, fontSize, dimText)
	if r.board == nil {
		return
	}
	buttons := r.layout.Buttons(game.PhaseSelecting)
	for i, m := range quiz.Modes {
		if i >= len(buttons) {
			break
		}
		b := buttons[i]
		y := int32(b.Y + b.H + 20)
		rl.DrawText("Highscores", int32(b.X), y, fontSize, textColor)
		for _, line := range r.board.List(m).Lines() {
			y += fontSize + 4
			rl.DrawText(line, int32(b.X), y, 16, dimText)
		}
	}
}

func (r *Renderer) drawGameOver(g *game.Game) {
	ox, oy := r.layout.BoardOrigin()
	cy := int32(oy) + int32(r.layout.BoardH)/2 - 50
	for i, line := range hud.OverLines(g)[:2] {
		fs := int32(fontSize)
		if i == 0 {
			fs = 36
		}
		tw := rl.MeasureText(line, fs)
		rl.DrawText(line, int32(ox)+(int32(r.layout.BoardW)-tw)/2, cy, fs, textColor)
		cy += fs + 12
	}
}

func (r *Renderer) drawButtons(phase game.Phase) {
	for _, b := range r.layout.Buttons(phase) {
		rect := rl.Rectangle{X: float32(b.X), Y: float32(b.Y), Width: float32(b.W), Height: float32(b.H)}
		rl.DrawRectangleRounded(rect, 0.25, 6, panel)
		tw := rl.MeasureText(b.Label, fontSize)
		rl.DrawText(b.Label, int32(b.X)+(int32(b.W)-tw)/2, int32(b.Y)+(int32(b.H)-fontSize)/2, fontSize, textColor)
	}
}
