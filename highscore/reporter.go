package highscore

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/rand"

	"github.com/ddesignmedia/catchthenumba/game/quiz"
)

// Reporter submits final scores in the background and refreshes the board
// once a submit went through. It satisfies game.ScoreSubmitter.
type Reporter struct {
	svc     Service
	board   *Board
	rng     *rand.Rand
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewReporter(svc Service, board *Board, rng *rand.Rand, timeout time.Duration) *Reporter {
	return &Reporter{svc: svc, board: board, rng: rng, timeout: timeout}
}

// SubmitFinal returns immediately; the request runs on its own goroutine.
func (r *Reporter) SubmitFinal(mode quiz.Mode, score int) {
	if score <= 0 {
		return
	}
	e := Entry{Name: Names[r.rng.Intn(len(Names))], Score: score}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()

		if err := r.svc.Submit(ctx, mode, e); err != nil {
			log.Printf("submit %d for %s as %s failed: %v", e.Score, mode, e.Name, err)
			return
		}
		log.Printf("submitted %d for %s as %s", e.Score, mode, e.Name)
		if r.board == nil {
			return
		}
		if err := r.board.Refresh(ctx); err != nil {
			log.Printf("refresh highscores: %v", err)
		}
	}()
}

// Refresh reloads the board in the background.
func (r *Reporter) Refresh() {
	if r.board == nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		if err := r.board.Refresh(ctx); err != nil {
			log.Printf("refresh highscores: %v", err)
		}
	}()
}

// Wait blocks until every background request has finished.
func (r *Reporter) Wait() {
	r.wg.Wait()
}
