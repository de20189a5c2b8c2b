// Package app holds the wiring shared by the desktop and terminal frontends:
// command-line flags, config loading, the highscore backend and audio.
package app

import (
	"flag"
	"log"
	"net/http"
	"time"

	"golang.org/x/exp/rand"

	"github.com/ddesignmedia/catchthenumba/game"
	"github.com/ddesignmedia/catchthenumba/highscore"
	"github.com/ddesignmedia/catchthenumba/sound"
)

type Options struct {
	Server     string
	Offline    bool
	ScoresPath string
	ConfigPath string
	Seed       uint64
	Mute       bool
	Timeout    time.Duration
}

func RegisterFlags(fs *flag.FlagSet) *Options {
	o := &Options{}
	fs.StringVar(&o.Server, "server", "", "base URL of the highscore backend (empty plays offline)")
	fs.BoolVar(&o.Offline, "offline", false, "keep highscores in a local file even if -server is set")
	fs.StringVar(&o.ScoresPath, "scores", "data/highscores.json", "local highscore file")
	fs.StringVar(&o.ConfigPath, "config", "", "JSON config file overriding the defaults")
	fs.Uint64Var(&o.Seed, "seed", 0, "random seed, 0 seeds from the clock")
	fs.BoolVar(&o.Mute, "mute", false, "disable sound")
	fs.DurationVar(&o.Timeout, "timeout", 10*time.Second, "highscore request timeout")
	return o
}

// Config loads the config file if one was given and applies the flag
// overrides on top.
func (o *Options) Config() (game.Config, error) {
	cfg := game.DefaultConfig()
	if o.ConfigPath != "" {
		var err error
		if cfg, err = game.LoadConfig(o.ConfigPath); err != nil {
			return cfg, err
		}
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	return cfg, cfg.Validate()
}

// Service picks the remote client or the local file store.
func (o *Options) Service() (highscore.Service, error) {
	if o.Offline || o.Server == "" {
		log.Printf("highscores stored in %s", o.ScoresPath)
		return highscore.NewFileStore(o.ScoresPath)
	}
	log.Printf("highscores served by %s", o.Server)
	return highscore.NewClient(o.Server, &http.Client{Timeout: o.Timeout}), nil
}

// Scores bundles the board the menu shows and the reporter the game submits
// final scores through.
type Scores struct {
	Board    *highscore.Board
	Reporter *highscore.Reporter
}

func (o *Options) Scores(cfg game.Config) (*Scores, error) {
	svc, err := o.Service()
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	board := highscore.NewBoard(svc)
	return &Scores{
		Board:    board,
		Reporter: highscore.NewReporter(svc, board, rand.New(rand.NewSource(seed+1)), o.Timeout),
	}, nil
}

// Sound opens the speaker unless muted. Without an audio device the game
// runs silent.
func (o *Options) Sound() sound.Player {
	if o.Mute {
		return sound.Nop{}
	}
	sp, err := sound.NewSpeaker()
	if err != nil {
		log.Printf("sound disabled: %v", err)
		return sound.Nop{}
	}
	return sp
}
