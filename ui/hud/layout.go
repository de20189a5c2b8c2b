package hud

import (
	"github.com/ddesignmedia/catchthenumba/game"
	"github.com/ddesignmedia/catchthenumba/game/quiz"
	"github.com/ddesignmedia/catchthenumba/game/types"
)

const (
	TopBar    = 40 // status and task line
	BottomBar = 90 // touch controls

	padSize = 40
	padGap  = 4
)

// Button is an on-screen control in logical frame pixels.
type Button struct {
	Action Action
	Label  string
	X, Y   int
	W, H   int
}

func (b Button) Contains(x, y float64) bool {
	return x >= float64(b.X) && x < float64(b.X+b.W) && y >= float64(b.Y) && y < float64(b.Y+b.H)
}

// Layout is the fixed logical frame: the status bar, the board and the
// control bar stacked vertically. Window size only changes how the frame is
// scaled.
type Layout struct {
	BoardW, BoardH int
}

func NewLayout(g types.Grid) Layout {
	return Layout{BoardW: g.PixelWidth(), BoardH: g.PixelHeight()}
}

func (l Layout) FrameSize() (w, h int) {
	return l.BoardW, TopBar + l.BoardH + BottomBar
}

func (l Layout) BoardOrigin() (x, y int) {
	return 0, TopBar
}

// Buttons returns the controls shown in a phase.
func (l Layout) Buttons(phase game.Phase) []Button {
	cx := l.BoardW / 2
	switch phase {
	case game.PhasePlaying:
		top := TopBar + l.BoardH + padGap
		low := top + padSize + padGap
		return []Button{
			{Action: ActionUp, Label: "^", X: cx - padSize/2, Y: top, W: padSize, H: padSize},
			{Action: ActionLeft, Label: "<", X: cx - padSize/2 - padGap - padSize, Y: low, W: padSize, H: padSize},
			{Action: ActionDown, Label: "v", X: cx - padSize/2, Y: low, W: padSize, H: padSize},
			{Action: ActionRight, Label: ">", X: cx + padSize/2 + padGap, Y: low, W: padSize, H: padSize},
			{Action: ActionRestart, Label: "Restart", X: l.BoardW - 110, Y: top + 21, W: 100, H: padSize},
		}
	case game.PhaseOver:
		return []Button{
			{Action: ActionRestart, Label: "Play again", X: cx - 80, Y: TopBar + l.BoardH/2 + 60, W: 160, H: 44},
		}
	default:
		w := 220
		y := TopBar + 40
		return []Button{
			{Action: ActionMolar, Label: "1  " + quiz.ModeMolar.Title(), X: cx - w - 10, Y: y, W: w, H: 50},
			{Action: ActionAtom, Label: "2  " + quiz.ModeAtom.Title(), X: cx + 10, Y: y, W: w, H: 50},
		}
	}
}

// HitTest returns the action of the button under (x, y), if any.
func HitTest(buttons []Button, x, y float64) Action {
	for _, b := range buttons {
		if b.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}

// ToLogical maps a window position back into frame pixels, given the scale
// and letterbox offset from types.FitScale.
func ToLogical(screenX, screenY, scale float64, offX, offY int) (x, y float64) {
	if scale <= 0 {
		return screenX, screenY
	}
	return (screenX - float64(offX)) / scale, (screenY - float64(offY)) / scale
}
