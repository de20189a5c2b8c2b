package highscore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/ddesignmedia/catchthenumba/game/quiz"
)

// MaxEntries is how many scores the FileStore keeps per mode.
const MaxEntries = 10

// Record is a stored score.
type Record struct {
	ID    string    `json:"id"`
	Name  string    `json:"player_name"`
	Score int       `json:"score"`
	At    time.Time `json:"at"`
}

// FileStore keeps highscores in a JSON file, for playing without a server.
type FileStore struct {
	path    string
	records map[quiz.Mode][]Record
	mutex   sync.RWMutex
}

// NewFileStore opens the store at path. A missing file is an empty store.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		records: make(map[quiz.Mode][]Record),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) Fetch(ctx context.Context, mode quiz.Mode) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("fetch: %w: %q", quiz.ErrUnknownMode, mode)
	}
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	recs := s.records[mode]
	entries := make([]Entry, len(recs))
	for i, r := range recs {
		entries[i] = Entry{Name: r.Name, Score: r.Score}
	}
	return entries, nil
}

// Submit records a score, keeping the best MaxEntries per mode, and writes
// the file.
func (s *FileStore) Submit(ctx context.Context, mode quiz.Mode, e Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !mode.Valid() {
		return fmt.Errorf("submit: %w: %q", quiz.ErrUnknownMode, mode)
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()

	recs := append(s.records[mode], Record{
		ID:    uuid.New().String(),
		Name:  e.Name,
		Score: e.Score,
		At:    time.Now().UTC(),
	})
	// Stable, so an equal score keeps the older entry in front.
	slices.SortStableFunc(recs, func(a, b Record) int {
		return b.Score - a.Score
	})
	if len(recs) > MaxEntries {
		recs = recs[:MaxEntries]
	}
	s.records[mode] = recs
	return s.save()
}

func (s *FileStore) save() error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create score dir: %w", err)
		}
	}
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode scores: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write scores: %w", err)
	}
	return nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read scores: %w", err)
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		return fmt.Errorf("parse scores %s: %w", s.path, err)
	}
	if s.records == nil {
		s.records = make(map[quiz.Mode][]Record)
	}
	return nil
}
