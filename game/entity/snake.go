package entity

import (
	"github.com/ddesignmedia/catchthenumba/game/types"
)

// Snake keeps its body head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction // committed, applied to movement
	pending   types.Direction // buffered request for the next tick
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
		pending:   types.NONE,
	}
}

// Buffer stores a turn request for the next tick. A later request in the same
// tick replaces an earlier one.
func (s *Snake) Buffer(dir types.Direction) {
	s.pending = dir
}

// Pending returns the buffered request, NONE when there is none.
func (s *Snake) Pending() types.Direction {
	return s.pending
}

// ApplyBuffer commits the buffered request unless it reverses the committed
// direction. The buffer is cleared either way; a rejected turn is not re-queued.
func (s *Snake) ApplyBuffer() bool {
	req := s.pending
	s.pending = types.NONE
	if req == types.NONE || req.IsOpposite(s.Direction) {
		return false
	}
	s.Direction = req
	return true
}

// NextHead is where the head goes on the next move with the committed direction.
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.ToPoint())
}

// Move prepends newHead. Unless grow is set the tail is dropped, so the
// length only changes on a hit.
func (s *Snake) Move(newHead types.Point, grow bool) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if !grow {
		s.RemoveTail()
	}
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Clear removes every segment, used when the snake explodes.
func (s *Snake) Clear() {
	s.Body = s.Body[:0]
	s.pending = types.NONE
}
