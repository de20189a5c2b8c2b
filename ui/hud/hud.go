// Package hud is the frontend-independent part of the user interface: screen
// layout, on-screen buttons, input actions and the HUD texts. The raylib and
// terminal frontends both draw from it.
package hud

import (
	"fmt"

	"github.com/ddesignmedia/catchthenumba/game"
	"github.com/ddesignmedia/catchthenumba/game/quiz"
	"github.com/ddesignmedia/catchthenumba/game/types"
)

type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionMolar
	ActionAtom
	ActionRestart
)

// Direction returns the turn an action asks for.
func (a Action) Direction() (types.Direction, bool) {
	switch a {
	case ActionUp:
		return types.UP, true
	case ActionDown:
		return types.DOWN, true
	case ActionLeft:
		return types.LEFT, true
	case ActionRight:
		return types.RIGHT, true
	}
	return types.NONE, false
}

// Mode returns the mode an action selects.
func (a Action) Mode() (quiz.Mode, bool) {
	switch a {
	case ActionMolar:
		return quiz.ModeMolar, true
	case ActionAtom:
		return quiz.ModeAtom, true
	}
	return "", false
}

// RuneAction maps the letter and digit keys shared by both frontends.
func RuneAction(r rune) Action {
	switch r {
	case 'w', 'W':
		return ActionUp
	case 's', 'S':
		return ActionDown
	case 'a', 'A':
		return ActionLeft
	case 'd', 'D':
		return ActionRight
	case '1':
		return ActionMolar
	case '2':
		return ActionAtom
	case 'r', 'R':
		return ActionRestart
	}
	return ActionNone
}

// Refresher reloads the highscore lists shown on the menu.
type Refresher interface {
	Refresh()
}

// Apply performs an action on the game. Mode selection is ignored while a
// session is running; turns are ignored by the game itself unless playing.
// Going back to the menu reloads the highscores through scores, which may be nil.
func Apply(g *game.Game, scores Refresher, a Action) error {
	if d, ok := a.Direction(); ok {
		g.SetDirection(d)
		return nil
	}
	if m, ok := a.Mode(); ok {
		if g.Phase() == game.PhasePlaying {
			return nil
		}
		return g.Start(m)
	}
	if a == ActionRestart {
		g.Restart()
		if scores != nil {
			scores.Refresh()
		}
	}
	return nil
}

// StatusLine is the score, round and countdown bar.
func StatusLine(g *game.Game) string {
	st := g.State()
	rounds := g.Config().MaxRounds
	return fmt.Sprintf("Score: %d   Round: %d/%d   Time: %ds", st.Score, min(st.Round, rounds), rounds, st.Countdown)
}

// TaskLine is the current question, empty between sessions.
func TaskLine(g *game.Game, pretty bool) string {
	t := g.Task()
	if t == nil || g.Phase() == game.PhaseSelecting {
		return ""
	}
	text := t.Label()
	if pretty {
		text = t.Pretty()
	}
	return g.State().Mode.Prompt() + " " + text
}

// OverLines is the game over message. The score shows once it is revealed.
func OverLines(g *game.Game) []string {
	final := "Final score: ..."
	if g.Revealed() {
		final = fmt.Sprintf("Final score: %d", g.State().Score)
	}
	return []string{"Game over!", final, "Press R to play again"}
}

// MenuLines is the mode selection text above the highscore lists.
func MenuLines() []string {
	lines := []string{"Catch the Numba!", "Choose a mode:"}
	for i, m := range quiz.Modes {
		lines = append(lines, fmt.Sprintf("%d  %s", i+1, m.Title()))
	}
	return lines
}
