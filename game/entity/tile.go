package entity

import (
	"github.com/ddesignmedia/catchthenumba/game/types"
)

// Tile is a numeric answer candidate on the board.
type Tile struct {
	Cell    types.Point
	Value   int
	Correct bool
}

// TileAt returns the index of the tile on p, or -1.
func TileAt(tiles []Tile, p types.Point) int {
	for i, t := range tiles {
		if t.Cell == p {
			return i
		}
	}
	return -1
}

// RemoveTile drops the tile at index i, keeping the order of the others.
func RemoveTile(tiles []Tile, i int) []Tile {
	if i < 0 || i >= len(tiles) {
		return tiles
	}
	return append(tiles[:i], tiles[i+1:]...)
}

// CountCorrect returns how many tiles carry the correct answer.
func CountCorrect(tiles []Tile) int {
	n := 0
	for _, t := range tiles {
		if t.Correct {
			n++
		}
	}
	return n
}
