package main

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/ddesignmedia/catchthenumba/game"
	"github.com/ddesignmedia/catchthenumba/game/quiz"
	"github.com/ddesignmedia/catchthenumba/game/schedule"
	"github.com/ddesignmedia/catchthenumba/game/types"
	"github.com/ddesignmedia/catchthenumba/highscore"
	"github.com/ddesignmedia/catchthenumba/sound"
	"github.com/ddesignmedia/catchthenumba/ui/hud"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTUI(t *testing.T) (*tui, time.Time) {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := game.DefaultConfig()
	cfg.Seed = 11
	sched := schedule.New(start)
	g, err := game.NewGame(cfg, sched, nil)
	require.NoError(t, err)
	return &tui{game: g, sched: sched, player: sound.Nop{}}, start
}

func TestComposeMenu(t *testing.T) {
	tu, _ := newTUI(t)
	board := highscore.NewBoard(nil)
	c := compose(tu.game, board)

	w, h := frameSize(tu.game)
	assert.Equal(t, 74, w)
	assert.Equal(t, 25, h)
	assert.Equal(t, "Catch the Numba!", c.row(0))
	assert.True(t, strings.HasPrefix(c.row(2), "┌──"))
	assert.True(t, strings.HasPrefix(c.row(h-2), "└──"))

	var all []string
	for y := 0; y < h; y++ {
		all = append(all, c.row(y))
	}
	text := strings.Join(all, "\n")
	assert.Contains(t, text, "1  Molar mass")
	assert.Contains(t, text, "Atom builder highscores")
	assert.Contains(t, text, "Loading...")
}

func TestComposePlaying(t *testing.T) {
	tu, _ := newTUI(t)
	require.NoError(t, tu.game.Start(quiz.ModeMolar))
	c := compose(tu.game, nil)

	assert.Equal(t, "Score: 0   Round: 1/30   Time: 15s", c.row(0))
	assert.Equal(t, "Formula: "+tu.game.Task().Pretty(), c.row(1))

	head := tu.game.Snake()[0]
	x, y := cellOrigin(head.X, head.Y)
	assert.Equal(t, '█', c.cells[y*c.w+x].r)

	for _, tile := range tu.game.Tiles() {
		x, y := cellOrigin(tile.Cell.X, tile.Cell.Y)
		label := strconv.Itoa(tile.Value)
		if len(label) == 1 {
			label = " " + label
		}
		label = label[:2] // the third digit may sit under the snake
		var got []rune
		for i := range len(label) {
			got = append(got, c.cells[y*c.w+x+i].r)
		}
		assert.Equal(t, label, string(got))
	}
}

func TestComposeGameOver(t *testing.T) {
	tu, start := newTUI(t)
	require.NoError(t, tu.game.Start(quiz.ModeAtom))
	tu.act(hud.RuneAction('r'))
	assert.Equal(t, game.PhaseSelecting, tu.game.Phase())

	require.NoError(t, tu.game.Start(quiz.ModeAtom))
	// Steer into the top wall.
	tu.act(hud.RuneAction('w'))
	now := start
	for i := 0; i < 400 && tu.game.Phase() == game.PhasePlaying; i++ {
		now = now.Add(10 * time.Millisecond)
		tu.sched.Advance(now)
	}
	require.Equal(t, game.PhaseOver, tu.game.Phase())
	tu.sched.Advance(now.Add(time.Second))

	c := compose(tu.game, nil)
	var text []string
	for y := 0; y < c.h; y++ {
		text = append(text, c.row(y))
	}
	joined := strings.Join(text, "\n")
	assert.Contains(t, joined, "Game over!")
	assert.Contains(t, joined, "Final score:")
}

func TestKeys(t *testing.T) {
	tu, start := newTUI(t)
	assert.True(t, tu.key(tcell.KeyRune, '2'))
	assert.Equal(t, game.PhasePlaying, tu.game.Phase())
	assert.Equal(t, quiz.ModeAtom, tu.game.State().Mode)

	assert.True(t, tu.key(tcell.KeyUp, 0))
	tu.sched.Advance(start.Add(150 * time.Millisecond))
	assert.Equal(t, types.UP, tu.game.Direction())

	assert.False(t, tu.key(tcell.KeyEscape, 0))
	assert.False(t, tu.key(tcell.KeyRune, 'q'))
}

func TestRestartReloadsBoard(t *testing.T) {
	tu, _ := newTUI(t)
	store, err := highscore.NewFileStore(filepath.Join(t.TempDir(), "scores.json"))
	require.NoError(t, err)
	require.NoError(t, store.Submit(context.Background(), quiz.ModeAtom, highscore.Entry{Name: "Blitz", Score: 40}))

	tu.board = highscore.NewBoard(store)
	reporter := highscore.NewReporter(store, tu.board, rand.New(rand.NewSource(1)), time.Second)
	tu.scores = reporter
	require.Equal(t, highscore.ListLoading, tu.board.List(quiz.ModeAtom).State)

	assert.True(t, tu.key(tcell.KeyRune, 'r'))
	reporter.Wait()
	list := tu.board.List(quiz.ModeAtom)
	assert.Equal(t, highscore.ListReady, list.State)
	assert.Equal(t, []string{"1. Blitz  40"}, list.Lines())
}

func TestDrawToScreen(t *testing.T) {
	tu, _ := newTUI(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	tu.screen = screen

	screen.SetSize(80, 30)
	tu.draw()
	r, _, _, _ := screen.GetContent(0, 2)
	assert.Equal(t, '┌', r)

	screen.SetSize(40, 10)
	tu.draw()
	r, _, _, _ = screen.GetContent(0, 0)
	assert.Equal(t, 't', r, "too small a terminal shows a hint")
}
