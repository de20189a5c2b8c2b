package highscore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ddesignmedia/catchthenumba/game/quiz"
)

type ListState int

const (
	ListLoading ListState = iota
	ListReady
	ListFailed
)

// List is what the board currently knows about one mode.
type List struct {
	State   ListState
	Entries []Entry
	Err     string
}

// Lines renders the list the way both frontends show it.
func (l List) Lines() []string {
	switch l.State {
	case ListLoading:
		return []string{"Loading..."}
	case ListFailed:
		return []string{"Error: " + l.Err}
	}
	if len(l.Entries) == 0 {
		return []string{"No entries yet"}
	}
	lines := make([]string, len(l.Entries))
	for i, e := range l.Entries {
		name := e.Name
		if name == "" {
			name = "Anonymous"
		}
		lines[i] = fmt.Sprintf("%d. %s  %d", i+1, name, e.Score)
	}
	return lines
}

// Board holds one list per mode. Refresh runs off the frame loop while the
// renderer reads with List, so access is locked.
type Board struct {
	svc   Service
	lists map[quiz.Mode]List
	mutex sync.RWMutex
}

func NewBoard(svc Service) *Board {
	b := &Board{
		svc:   svc,
		lists: make(map[quiz.Mode]List, len(quiz.Modes)),
	}
	for _, m := range quiz.Modes {
		b.lists[m] = List{State: ListLoading}
	}
	return b
}

func (b *Board) List(mode quiz.Mode) List {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return b.lists[mode]
}

func (b *Board) set(mode quiz.Mode, l List) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.lists[mode] = l
}

// Refresh marks every list as loading and fetches them all concurrently. A
// failed fetch only affects its own list; the returned error is the first
// failure, for logging.
func (b *Board) Refresh(ctx context.Context) error {
	for _, m := range quiz.Modes {
		b.set(m, List{State: ListLoading})
	}
	var g errgroup.Group
	for _, m := range quiz.Modes {
		m := m
		g.Go(func() error {
			entries, err := b.svc.Fetch(ctx, m)
			if err != nil {
				b.set(m, List{State: ListFailed, Err: message(err)})
				return err
			}
			b.set(m, List{State: ListReady, Entries: entries})
			return nil
		})
	}
	return g.Wait()
}

// message strips the request context off server errors so the board shows
// what the server said.
func message(err error) string {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Error()
	}
	var st *StatusError
	if errors.As(err, &st) {
		return st.Error()
	}
	return err.Error()
}
