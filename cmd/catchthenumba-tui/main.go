// Command catchthenumba-tui plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ddesignmedia/catchthenumba/game"
	"github.com/ddesignmedia/catchthenumba/game/schedule"
	"github.com/ddesignmedia/catchthenumba/highscore"
	"github.com/ddesignmedia/catchthenumba/internal/app"
	"github.com/ddesignmedia/catchthenumba/sound"
	"github.com/ddesignmedia/catchthenumba/ui/hud"
)

var keyActions = map[tcell.Key]hud.Action{
	tcell.KeyUp:    hud.ActionUp,
	tcell.KeyDown:  hud.ActionDown,
	tcell.KeyLeft:  hud.ActionLeft,
	tcell.KeyRight: hud.ActionRight,
}

type tui struct {
	screen tcell.Screen
	game   *game.Game
	sched  *schedule.Scheduler
	board  *highscore.Board
	scores hud.Refresher
	player sound.Player
}

func main() {
	opts := app.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	flag.Parse()

	log.SetPrefix("[catchthenumba] ")
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "catchthenumba: %v\n", err)
		os.Exit(1)
	}
}

func run(opts *app.Options) error {
	cfg, err := opts.Config()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	scores, err := opts.Scores(cfg)
	if err != nil {
		return fmt.Errorf("highscores: %w", err)
	}
	defer scores.Reporter.Wait()
	scores.Reporter.Refresh()

	sched := schedule.New(time.Now())
	g, err := game.NewGame(cfg, sched, scores.Reporter)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	player := opts.Sound()
	defer player.Close()

	t := &tui{screen: screen, game: g, sched: sched, board: scores.Board, scores: scores.Reporter, player: player}
	t.loop()
	return nil
}

func (t *tui) loop() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handle(ev) {
				return
			}
		case now := <-ticker.C:
			t.sched.Advance(now)
			sound.Play(t.player, t.game.DrainEvents())
			t.draw()
		}
	}
}

// handle reports false when the player quits.
func (t *tui) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.key(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *tui) key(k tcell.Key, r rune) bool {
	switch {
	case k == tcell.KeyEscape || k == tcell.KeyCtrlC:
		return false
	case k == tcell.KeyRune && (r == 'q' || r == 'Q'):
		return false
	case k == tcell.KeyRune:
		t.act(hud.RuneAction(r))
	default:
		t.act(keyActions[k])
	}
	return true
}

func (t *tui) act(a hud.Action) {
	if a == hud.ActionNone {
		return
	}
	if err := hud.Apply(t.game, t.scores, a); err != nil {
		log.Printf("input: %v", err)
	}
}

func (t *tui) draw() {
	t.screen.Clear()
	w, h := t.screen.Size()
	fw, fh := frameSize(t.game)
	if w < fw || h < fh {
		msg := fmt.Sprintf("terminal too small: need %dx%d", fw, fh)
		for i, r := range msg {
			t.screen.SetContent(i, 0, r, nil, styleText)
		}
		t.screen.Show()
		return
	}
	compose(t.game, t.board).blit(t.screen)
	t.screen.Show()
}
