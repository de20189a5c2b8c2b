package manager

import (
	"github.com/google/uuid"

	"github.com/ddesignmedia/catchthenumba/game/quiz"
)

// Rules are the scoring and pacing numbers of a session. Speeds are tick
// intervals in milliseconds, so a lower speed is a faster game.
type Rules struct {
	MaxRounds     int
	CorrectPoints int
	WrongPenalty  int
	BaseSpeed     int
	MinSpeed      int
	SpeedStep     int
	Countdown     int // seconds per countdown cycle
}

// SessionState is everything the controller mutates during one session.
type SessionState struct {
	ID        string
	Mode      quiz.Mode
	Score     int
	Round     int
	Speed     int
	Countdown int
	Over      bool
}

// StateManager applies the scoring, speed ramp and round rules to a session.
type StateManager struct {
	rules Rules
	state SessionState
}

func NewStateManager(rules Rules) *StateManager {
	return &StateManager{rules: rules}
}

// Reset starts a fresh session and returns its ID.
func (sm *StateManager) Reset(mode quiz.Mode) string {
	sm.state = SessionState{
		ID:        uuid.New().String(),
		Mode:      mode,
		Speed:     sm.rules.BaseSpeed,
		Countdown: sm.rules.Countdown,
	}
	return sm.state.ID
}

// State returns a copy of the session state.
func (sm *StateManager) State() SessionState {
	return sm.state
}

func (sm *StateManager) Rules() Rules {
	return sm.rules
}

func (sm *StateManager) IsOver() bool {
	return sm.state.Over
}

// End marks the session over. It reports false if it already was.
func (sm *StateManager) End() bool {
	if sm.state.Over {
		return false
	}
	sm.state.Over = true
	return true
}

func (sm *StateManager) AwardCorrect() {
	sm.state.Score += sm.rules.CorrectPoints
}

// PenalizeWrong takes points for a wrong tile, never below zero.
func (sm *StateManager) PenalizeWrong() {
	sm.state.Score = max(0, sm.state.Score-sm.rules.WrongPenalty)
}

// SpeedUp shortens the tick interval by one step, floored at MinSpeed.
// It reports whether the speed changed.
func (sm *StateManager) SpeedUp() bool {
	next := max(sm.rules.MinSpeed, sm.state.Speed-sm.rules.SpeedStep)
	changed := next != sm.state.Speed
	sm.state.Speed = next
	return changed
}

func (sm *StateManager) ResetCountdown() {
	sm.state.Countdown = sm.rules.Countdown
}

// TickCountdown counts one second down. When the countdown expires the game
// speeds up and the countdown starts over; the return value reports expiry.
func (sm *StateManager) TickCountdown() bool {
	if sm.state.Over {
		return false
	}
	sm.state.Countdown--
	if sm.state.Countdown > 0 {
		return false
	}
	sm.SpeedUp()
	sm.ResetCountdown()
	return true
}

// NextRound moves to the next round. It reports false once the round limit
// is passed.
func (sm *StateManager) NextRound() bool {
	sm.state.Round++
	return sm.state.Round <= sm.rules.MaxRounds
}
