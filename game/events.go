package game

import (
	"github.com/ddesignmedia/catchthenumba/game/entity"
	"github.com/ddesignmedia/catchthenumba/game/manager"
)

type EventType int

const (
	EventRoundStarted EventType = iota
	EventTileHit
	EventSpeedUp
	EventGameOver
	EventFinalScore
)

func (t EventType) String() string {
	switch t {
	case EventRoundStarted:
		return "round-started"
	case EventTileHit:
		return "tile-hit"
	case EventSpeedUp:
		return "speed-up"
	case EventGameOver:
		return "game-over"
	case EventFinalScore:
		return "final-score"
	default:
		return "unknown"
	}
}

// Event tells frontends what happened since they last looked, for sound and
// flashes. Only the fields relevant to Type are set.
type Event struct {
	Type  EventType
	Tile  entity.Tile
	Score int
	Round int
	Speed int
	Cause manager.CollisionType
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// DrainEvents returns the queued events and empties the queue.
func (g *Game) DrainEvents() []Event {
	ev := g.events
	g.events = nil
	return ev
}
