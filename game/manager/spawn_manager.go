package manager

import (
	"errors"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/rand"

	"github.com/ddesignmedia/catchthenumba/game/entity"
	"github.com/ddesignmedia/catchthenumba/game/quiz"
	"github.com/ddesignmedia/catchthenumba/game/types"
)

const (
	MaxDecoys        = 3
	MinTileDistance  = 3  // Manhattan distance kept between tiles of one spawn
	MaxDecoyAttempts = 50 // value draws per decoy slot before it is skipped
)

// ErrNoFreeCell means not even the correct tile could be placed.
var ErrNoFreeCell = errors.New("no free cell for the correct tile")

type SpawnManager struct {
	grid types.Grid
	rng  *rand.Rand
}

func NewSpawnManager(grid types.Grid, rng *rand.Rand) *SpawnManager {
	return &SpawnManager{
		grid: grid,
		rng:  rng,
	}
}

// Spawn places the correct tile and up to MaxDecoys decoys on free interior
// cells. The correct tile is always first in the result.
func (sm *SpawnManager) Spawn(correct int, occupied []types.Point, policy quiz.DecoyPolicy) ([]entity.Tile, error) {
	free := sm.freeCells(occupied)
	if len(free) == 0 {
		return nil, ErrNoFreeCell
	}
	sm.rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })

	tiles := make([]entity.Tile, 0, 1+MaxDecoys)
	pos := free[len(free)-1]
	free = free[:len(free)-1]
	tiles = append(tiles, entity.Tile{Cell: pos, Value: correct, Correct: true})

	used := mapset.New[int]()
	used.Put(correct)
	valid := farFrom(free, tiles)
	for slot := 0; slot < MaxDecoys && len(valid) > 0; slot++ {
		value, ok := sm.drawDecoy(correct, policy, used)
		if !ok {
			continue
		}
		pos := valid[len(valid)-1]
		valid = valid[:len(valid)-1]
		tiles = append(tiles, entity.Tile{Cell: pos, Value: value})
		used.Put(value)
		valid = farFrom(valid, tiles)
	}
	return tiles, nil
}

// drawDecoy draws an unused value from the policy range, giving up after
// MaxDecoyAttempts draws.
func (sm *SpawnManager) drawDecoy(correct int, policy quiz.DecoyPolicy, used mapset.Set[int]) (int, bool) {
	lo, hi := policy.Range(correct)
	if hi < lo {
		return 0, false
	}
	for attempt := 0; attempt < MaxDecoyAttempts; attempt++ {
		v := lo + sm.rng.Intn(hi-lo+1)
		if !used.Has(v) {
			return v, true
		}
	}
	return 0, false
}

func (sm *SpawnManager) freeCells(occupied []types.Point) []types.Point {
	taken := mapset.New[types.Point]()
	for _, p := range occupied {
		taken.Put(p)
	}
	interior := sm.grid.Interior()
	free := interior[:0]
	for _, p := range interior {
		if !taken.Has(p) {
			free = append(free, p)
		}
	}
	return free
}

// farFrom keeps the cells at least MinTileDistance away from every tile.
func farFrom(cells []types.Point, tiles []entity.Tile) []types.Point {
	out := cells[:0]
	for _, c := range cells {
		ok := true
		for _, t := range tiles {
			if types.Manhattan(c, t.Cell) < MinTileDistance {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, c)
		}
	}
	return out
}
