package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddesignmedia/catchthenumba/game/types"
)

func TestSnakeMoveKeepsLength(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.RIGHT)
	for i := 0; i < 4; i++ {
		s.Move(s.NextHead(), false)
		require.Equal(t, 1, s.Len())
	}
	assert.Equal(t, types.Point{X: 9, Y: 5}, s.GetHead())
}

func TestSnakeGrowKeepsTail(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.RIGHT)
	s.Move(s.NextHead(), true)
	s.Move(s.NextHead(), true)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, []types.Point{{X: 7, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 5}}, s.Body)

	s.Move(s.NextHead(), false)
	assert.Equal(t, []types.Point{{X: 8, Y: 5}, {X: 7, Y: 5}, {X: 6, Y: 5}}, s.Body)
}

func TestBufferRejectsReversal(t *testing.T) {
	for _, d := range []types.Direction{types.UP, types.RIGHT, types.DOWN, types.LEFT} {
		s := NewSnake(types.Point{X: 5, Y: 5}, d)
		s.Buffer(d.Opposite())
		assert.False(t, s.ApplyBuffer())
		assert.Equal(t, d, s.Direction, "reversal of %s must be discarded", d)
		assert.Equal(t, types.NONE, s.Pending(), "rejected turn must not be re-queued")
	}
}

func TestBufferLatestRequestWins(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.RIGHT)
	s.Buffer(types.UP)
	s.Buffer(types.DOWN)
	require.True(t, s.ApplyBuffer())
	assert.Equal(t, types.DOWN, s.Direction)

	// Nothing buffered: direction holds.
	assert.False(t, s.ApplyBuffer())
	assert.Equal(t, types.DOWN, s.Direction)
}

func TestBufferedTurnNotAppliedUntilTick(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.RIGHT)
	s.Buffer(types.UP)
	assert.Equal(t, types.RIGHT, s.Direction)
	assert.Equal(t, types.Point{X: 6, Y: 5}, s.NextHead())
	s.ApplyBuffer()
	assert.Equal(t, types.Point{X: 5, Y: 4}, s.NextHead())
}

func TestTiles(t *testing.T) {
	tiles := []Tile{
		{Cell: types.Point{X: 1, Y: 1}, Value: 44, Correct: true},
		{Cell: types.Point{X: 5, Y: 1}, Value: 30},
		{Cell: types.Point{X: 9, Y: 1}, Value: 50},
	}
	assert.Equal(t, 1, CountCorrect(tiles))
	assert.Equal(t, 1, TileAt(tiles, types.Point{X: 5, Y: 1}))
	assert.Equal(t, -1, TileAt(tiles, types.Point{X: 2, Y: 2}))

	tiles = RemoveTile(tiles, 1)
	require.Len(t, tiles, 2)
	assert.Equal(t, 50, tiles[1].Value)
	assert.Len(t, RemoveTile(tiles, 7), 2)
}

func TestOccupiesAndClear(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 2}, types.DOWN)
	s.Move(s.NextHead(), true)
	assert.True(t, s.Occupies(types.Point{X: 2, Y: 2}))
	assert.True(t, s.Occupies(types.Point{X: 2, Y: 3}))
	assert.False(t, s.Occupies(types.Point{X: 3, Y: 3}))
	s.Clear()
	assert.Zero(t, s.Len())
}
