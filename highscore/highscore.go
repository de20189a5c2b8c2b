// Package highscore talks to the remote highscore service, keeps an offline
// file store with the same contract, and holds the lists shown on the mode
// selection screen.
package highscore

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/ddesignmedia/catchthenumba/game/quiz"
)

// Entry is one line of a highscore list.
type Entry struct {
	Name  string
	Score int
}

// Service is implemented by the HTTP client and by the offline FileStore.
type Service interface {
	Fetch(ctx context.Context, mode quiz.Mode) ([]Entry, error)
	Submit(ctx context.Context, mode quiz.Mode, e Entry) error
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server unreachable (%d)", e.Code)
}

// ServiceError is returned when the server answers but reports a failure.
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return "unknown server error"
	}
	return e.Message
}

// wireEntry is an entry as the server sends it. Scores come as numbers or as
// numeric strings depending on the backend's database driver.
type wireEntry struct {
	PlayerName string      `json:"player_name"`
	Score      json.Number `json:"score"`
}

func (w wireEntry) entry() (Entry, error) {
	if w.Score == "" {
		return Entry{Name: w.PlayerName}, nil
	}
	f, err := w.Score.Float64()
	if err != nil {
		return Entry{}, fmt.Errorf("score %q: %w", w.Score, err)
	}
	return Entry{Name: w.PlayerName, Score: int(math.Round(f))}, nil
}

// Names is the pool final scores are submitted under.
var Names = []string{
	"Atom-Spalter", "Molekül-Magier", "Quanten-Quirler", "Protonen-Paule", "Neutronen-Nick",
	"Elektronen-Else", "Sigma-Susi", "Pi-Paul", "Delta-Dieter", "Gamma-Gabi", "Booster-Berta",
	"Collider-Claus", "Isotopen-Inge", "Valenz-Vera", "Orbital-Otto", "Spin-Svenja",
	"Bosonen-Benno", "Fermionen-Frieda", "Higgs-Herbert", "DunkleMaterie-Doris",
}
