package manager

import (
	"github.com/ddesignmedia/catchthenumba/game/entity"
	"github.com/ddesignmedia/catchthenumba/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Hit records a tile found on the next head cell before the snake moves.
type Hit struct {
	Index int
	Tile  entity.Tile
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckTile looks for a tile on the cell the head is about to enter.
func (cm *CollisionManager) CheckTile(next types.Point, tiles []entity.Tile) (Hit, bool) {
	if i := entity.TileAt(tiles, next); i >= 0 {
		return Hit{Index: i, Tile: tiles[i]}, true
	}
	return Hit{Index: -1}, false
}

// CheckAfterMove tests the already moved snake against walls and itself.
func (cm *CollisionManager) CheckAfterMove(snake *entity.Snake) CollisionType {
	if snake.Len() == 0 {
		return NoCollision
	}
	head := snake.GetHead()
	if cm.isWallCollision(head) {
		return WallCollision
	}
	for _, part := range snake.Body[1:] {
		if part == head {
			return SelfCollision
		}
	}
	return NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}
