package manager

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/ddesignmedia/catchthenumba/game/entity"
	"github.com/ddesignmedia/catchthenumba/game/quiz"
	"github.com/ddesignmedia/catchthenumba/game/types"
)

var testGrid = types.NewGrid(720, 400, 20)

func testRules() Rules {
	return Rules{
		MaxRounds:     30,
		CorrectPoints: 10,
		WrongPenalty:  3,
		BaseSpeed:     150,
		MinSpeed:      60,
		SpeedStep:     15,
		Countdown:     15,
	}
}

func assertSpacing(t *testing.T, tiles []entity.Tile) {
	t.Helper()
	for i := range tiles {
		for j := i + 1; j < len(tiles); j++ {
			d := types.Manhattan(tiles[i].Cell, tiles[j].Cell)
			assert.GreaterOrEqual(t, d, MinTileDistance, "tiles %v and %v too close", tiles[i].Cell, tiles[j].Cell)
		}
	}
}

func assertUniqueValues(t *testing.T, tiles []entity.Tile) {
	t.Helper()
	seen := map[int]bool{}
	for _, tile := range tiles {
		assert.False(t, seen[tile.Value], "value %d used twice", tile.Value)
		seen[tile.Value] = true
	}
}

func TestSpawnCarbonDioxide(t *testing.T) {
	for seed := uint64(1); seed <= 50; seed++ {
		sm := NewSpawnManager(testGrid, rand.New(rand.NewSource(seed)))
		tiles, err := sm.Spawn(44, []types.Point{{X: 9, Y: 10}}, quiz.MolarDecoys)
		require.NoError(t, err)
		require.Len(t, tiles, 4, "seed %d", seed)

		assert.True(t, tiles[0].Correct)
		assert.Equal(t, 44, tiles[0].Value)
		assert.Equal(t, 1, entity.CountCorrect(tiles))
		for _, d := range tiles[1:] {
			assert.False(t, d.Correct)
			assert.GreaterOrEqual(t, d.Value, 22)
			assert.LessOrEqual(t, d.Value, 66)
			assert.NotEqual(t, 44, d.Value)
		}
		assertSpacing(t, tiles)
		assertUniqueValues(t, tiles)
	}
}

func TestSpawnOxygenNeutronsRange(t *testing.T) {
	sm := NewSpawnManager(testGrid, rand.New(rand.NewSource(3)))
	tiles, err := sm.Spawn(8, nil, quiz.AtomDecoys)
	require.NoError(t, err)
	require.Len(t, tiles, 4)
	for _, d := range tiles[1:] {
		assert.GreaterOrEqual(t, d.Value, 3)
		assert.LessOrEqual(t, d.Value, 13)
	}
	assertUniqueValues(t, tiles)
}

func TestSpawnStaysInsideBorderAndOffSnake(t *testing.T) {
	snake := make([]types.Point, 0)
	for x := 1; x < testGrid.Width-1; x++ {
		snake = append(snake, types.Point{X: x, Y: 5})
	}
	sm := NewSpawnManager(testGrid, rand.New(rand.NewSource(11)))
	for i := 0; i < 20; i++ {
		tiles, err := sm.Spawn(58, snake, quiz.MolarDecoys)
		require.NoError(t, err)
		for _, tile := range tiles {
			assert.True(t, tile.Cell.X >= 1 && tile.Cell.X < testGrid.Width-1)
			assert.True(t, tile.Cell.Y >= 1 && tile.Cell.Y < testGrid.Height-1)
			assert.NotEqual(t, 5, tile.Cell.Y, "tile placed on the snake")
		}
	}
}

func TestSpawnNoFreeCell(t *testing.T) {
	small := types.Grid{Width: 3, Height: 3, CellSize: 20}
	sm := NewSpawnManager(small, rand.New(rand.NewSource(1)))
	_, err := sm.Spawn(10, []types.Point{{X: 1, Y: 1}}, quiz.AtomDecoys)
	assert.True(t, errors.Is(err, ErrNoFreeCell))
}

func TestSpawnStopsEarlyWhenCrowded(t *testing.T) {
	// 3x2 interior: only opposite corners are 3 apart, so two tiles at most.
	small := types.Grid{Width: 5, Height: 4, CellSize: 20}
	sm := NewSpawnManager(small, rand.New(rand.NewSource(5)))
	tiles, err := sm.Spawn(10, nil, quiz.AtomDecoys)
	require.NoError(t, err)
	require.NotEmpty(t, tiles)
	assert.True(t, tiles[0].Correct)
	assert.LessOrEqual(t, len(tiles), 2)
	assertSpacing(t, tiles)
}

func TestSpawnSkipsSlotWhenValuesRunOut(t *testing.T) {
	// The range [0,1] around 0 offers one decoy value only.
	narrow := quiz.DecoyPolicy{Floor: 1, MinValue: 0, MaxValue: 1}
	sm := NewSpawnManager(testGrid, rand.New(rand.NewSource(8)))
	tiles, err := sm.Spawn(0, nil, narrow)
	require.NoError(t, err)
	require.Len(t, tiles, 2)
	assert.Equal(t, 1, tiles[1].Value)
}

func TestCollisionTileBeforeMove(t *testing.T) {
	cm := NewCollisionManager(testGrid)
	tiles := []entity.Tile{
		{Cell: types.Point{X: 4, Y: 4}, Value: 44, Correct: true},
		{Cell: types.Point{X: 8, Y: 4}, Value: 30},
	}
	hit, ok := cm.CheckTile(types.Point{X: 8, Y: 4}, tiles)
	require.True(t, ok)
	assert.Equal(t, 1, hit.Index)
	assert.Equal(t, 30, hit.Tile.Value)

	_, ok = cm.CheckTile(types.Point{X: 1, Y: 1}, tiles)
	assert.False(t, ok)
}

func TestCollisionWallAndSelf(t *testing.T) {
	cm := NewCollisionManager(testGrid)

	s := entity.NewSnake(types.Point{X: 0, Y: 3}, types.LEFT)
	s.Move(s.NextHead(), false)
	assert.Equal(t, WallCollision, cm.CheckAfterMove(s))

	s = entity.NewSnake(types.Point{X: testGrid.Width - 1, Y: 3}, types.RIGHT)
	s.Move(s.NextHead(), false)
	assert.Equal(t, WallCollision, cm.CheckAfterMove(s))

	// Grow into a 2x2 loop and bite the tail.
	s = entity.NewSnake(types.Point{X: 5, Y: 5}, types.RIGHT)
	s.Move(s.NextHead(), true)
	s.Direction = types.DOWN
	s.Move(s.NextHead(), true)
	s.Direction = types.LEFT
	s.Move(s.NextHead(), true)
	assert.Equal(t, NoCollision, cm.CheckAfterMove(s))
	s.Direction = types.UP
	s.Move(s.NextHead(), true)
	assert.Equal(t, SelfCollision, cm.CheckAfterMove(s))
}

func TestStateScoring(t *testing.T) {
	sm := NewStateManager(testRules())
	id := sm.Reset(quiz.ModeMolar)
	assert.NotEmpty(t, id)

	sm.PenalizeWrong()
	assert.Equal(t, 0, sm.State().Score, "score never goes negative")
	sm.AwardCorrect()
	assert.Equal(t, 10, sm.State().Score)
	sm.PenalizeWrong()
	assert.Equal(t, 7, sm.State().Score)
}

func TestStateSpeedFloor(t *testing.T) {
	sm := NewStateManager(testRules())
	sm.Reset(quiz.ModeAtom)
	assert.Equal(t, 150, sm.State().Speed)
	for i := 0; i < 20; i++ {
		sm.SpeedUp()
		assert.GreaterOrEqual(t, sm.State().Speed, 60)
		assert.LessOrEqual(t, sm.State().Speed, 150)
	}
	assert.Equal(t, 60, sm.State().Speed)
	assert.False(t, sm.SpeedUp())
}

func TestStateCountdownExpiry(t *testing.T) {
	sm := NewStateManager(testRules())
	sm.Reset(quiz.ModeAtom)
	for i := 0; i < 14; i++ {
		assert.False(t, sm.TickCountdown())
	}
	assert.Equal(t, 1, sm.State().Countdown)
	assert.True(t, sm.TickCountdown())
	assert.Equal(t, 15, sm.State().Countdown)
	assert.Equal(t, 135, sm.State().Speed)
}

func TestStateRoundLimit(t *testing.T) {
	sm := NewStateManager(testRules())
	sm.Reset(quiz.ModeMolar)
	for i := 1; i <= 30; i++ {
		require.True(t, sm.NextRound(), "round %d", i)
	}
	assert.False(t, sm.NextRound())
	assert.Equal(t, 31, sm.State().Round)

	assert.True(t, sm.End())
	assert.False(t, sm.End())
	assert.False(t, sm.TickCountdown())
}
