package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ddesignmedia/catchthenumba/game/manager"
	"github.com/ddesignmedia/catchthenumba/game/types"
)

// Config holds the tunables of the game. Speeds are tick intervals in
// milliseconds.
type Config struct {
	CanvasWidth   int    `json:"canvas_width"`
	CanvasHeight  int    `json:"canvas_height"`
	CellSize      int    `json:"cell_size"`
	MaxRounds     int    `json:"max_rounds"`
	BaseSpeed     int    `json:"base_speed_ms"`
	SpeedStep     int    `json:"speed_step_ms"`
	MinSpeed      int    `json:"min_speed_ms"`
	Countdown     int    `json:"countdown_s"`
	CorrectPoints int    `json:"correct_points"`
	WrongPenalty  int    `json:"wrong_penalty"`
	RevealDelay   int    `json:"reveal_delay_ms"`
	OverTick      int    `json:"over_tick_ms"`
	Seed          uint64 `json:"seed"` // 0 seeds from the clock
}

func DefaultConfig() Config {
	return Config{
		CanvasWidth:   720,
		CanvasHeight:  400,
		CellSize:      20,
		MaxRounds:     30,
		BaseSpeed:     150,
		SpeedStep:     15,
		MinSpeed:      60,
		Countdown:     15,
		CorrectPoints: 10,
		WrongPenalty:  3,
		RevealDelay:   800,
		OverTick:      30,
	}
}

// LoadConfig reads a JSON file over the defaults. Keys missing from the file
// keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	var errs []error
	if c.CellSize <= 0 {
		errs = append(errs, errors.New("cell_size must be positive"))
	} else if c.CanvasWidth/c.CellSize < 5 || c.CanvasHeight/c.CellSize < 5 {
		errs = append(errs, errors.New("canvas must hold at least 5x5 cells"))
	}
	if c.MaxRounds <= 0 {
		errs = append(errs, errors.New("max_rounds must be positive"))
	}
	if c.MinSpeed <= 0 || c.BaseSpeed < c.MinSpeed {
		errs = append(errs, fmt.Errorf("speeds must satisfy 0 < min (%d) <= base (%d)", c.MinSpeed, c.BaseSpeed))
	}
	if c.SpeedStep < 0 {
		errs = append(errs, errors.New("speed_step_ms must not be negative"))
	}
	if c.Countdown <= 0 {
		errs = append(errs, errors.New("countdown_s must be positive"))
	}
	if c.OverTick <= 0 {
		errs = append(errs, errors.New("over_tick_ms must be positive"))
	}
	if c.RevealDelay < 0 {
		errs = append(errs, errors.New("reveal_delay_ms must not be negative"))
	}
	return errors.Join(errs...)
}

func (c Config) Grid() types.Grid {
	return types.NewGrid(c.CanvasWidth, c.CanvasHeight, c.CellSize)
}

func (c Config) Rules() manager.Rules {
	return manager.Rules{
		MaxRounds:     c.MaxRounds,
		CorrectPoints: c.CorrectPoints,
		WrongPenalty:  c.WrongPenalty,
		BaseSpeed:     c.BaseSpeed,
		MinSpeed:      c.MinSpeed,
		SpeedStep:     c.SpeedStep,
		Countdown:     c.Countdown,
	}
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
