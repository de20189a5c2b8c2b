package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ddesignmedia/catchthenumba/game"
	"github.com/ddesignmedia/catchthenumba/game/schedule"
	"github.com/ddesignmedia/catchthenumba/internal/app"
	"github.com/ddesignmedia/catchthenumba/sound"
	"github.com/ddesignmedia/catchthenumba/ui"
	"github.com/ddesignmedia/catchthenumba/ui/hud"
)

var keyActions = []struct {
	key    int32
	action hud.Action
}{
	{rl.KeyUp, hud.ActionUp},
	{rl.KeyDown, hud.ActionDown},
	{rl.KeyLeft, hud.ActionLeft},
	{rl.KeyRight, hud.ActionRight},
	{rl.KeyW, hud.ActionUp},
	{rl.KeyS, hud.ActionDown},
	{rl.KeyA, hud.ActionLeft},
	{rl.KeyD, hud.ActionRight},
	{rl.KeyOne, hud.ActionMolar},
	{rl.KeyTwo, hud.ActionAtom},
	{rl.KeyR, hud.ActionRestart},
}

func main() {
	opts := app.RegisterFlags(flag.CommandLine)
	flag.Parse()
	log.SetPrefix("[catchthenumba] ")

	cfg, err := opts.Config()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(1080, 795, "Catch the Numba")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	scores, err := opts.Scores(cfg)
	if err != nil {
		log.Fatalf("highscores: %v", err)
	}
	defer scores.Reporter.Wait()
	scores.Reporter.Refresh()

	player := opts.Sound()
	defer player.Close()

	sched := schedule.New(time.Now())
	g, err := game.NewGame(cfg, sched, scores.Reporter)
	if err != nil {
		log.Fatalf("game: %v", err)
	}

	renderer := ui.NewRenderer(g.Grid, scores.Board)
	defer renderer.Close()

	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		for _, k := range keyActions {
			if rl.IsKeyPressed(k.key) {
				act(g, scores.Reporter, k.action)
			}
		}
		act(g, scores.Reporter, renderer.Pointer(g.Phase()))

		sched.Advance(time.Now())
		sound.Play(player, g.DrainEvents())

		renderer.Draw(g)
	}
}

func act(g *game.Game, scores hud.Refresher, a hud.Action) {
	if a == hud.ActionNone {
		return
	}
	if err := hud.Apply(g, scores, a); err != nil {
		log.Printf("input: %v", err)
	}
}
