// Package schedule runs delayed and recurring callbacks on the caller's
// goroutine. Nothing fires on its own: the frame loop calls Advance with the
// current time and due callbacks run inside that call, one after another.
package schedule

import (
	"time"
)

// MinDelay is the shortest delay a task can be scheduled with. It keeps a
// task that reschedules itself from spinning inside one Advance.
const MinDelay = time.Millisecond

// Handle identifies a scheduled task. The zero Handle never refers to a task.
type Handle uint64

type task struct {
	id    Handle
	due   time.Time
	every time.Duration // zero for one-shot tasks
	fn    func()
}

type Scheduler struct {
	now     time.Time
	next    Handle
	tasks   map[Handle]*task
	running bool
}

func New(start time.Time) *Scheduler {
	return &Scheduler{
		now:   start,
		tasks: make(map[Handle]*task),
	}
}

// Now is the time of the last Advance.
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After runs fn once, d after the current time.
func (s *Scheduler) After(d time.Duration, fn func()) Handle {
	return s.add(d, 0, fn)
}

// Every runs fn each d, first after one full period.
func (s *Scheduler) Every(d time.Duration, fn func()) Handle {
	return s.add(d, max(d, MinDelay), fn)
}

func (s *Scheduler) add(d, every time.Duration, fn func()) Handle {
	s.next++
	t := &task{
		id:    s.next,
		due:   s.now.Add(max(d, MinDelay)),
		every: every,
		fn:    fn,
	}
	s.tasks[t.id] = t
	return t.id
}

// Cancel drops a task. Cancelling twice, or cancelling a task that already
// fired, does nothing.
func (s *Scheduler) Cancel(h Handle) {
	delete(s.tasks, h)
}

// Active reports whether h is still waiting to fire.
func (s *Scheduler) Active(h Handle) bool {
	_, ok := s.tasks[h]
	return ok
}

// Pending returns how many tasks are waiting.
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock to now and runs every task due by then, earliest
// first, ties in scheduling order. Each task fires at most once per call;
// a recurring task that fell behind skips the missed periods. Calling Advance
// from inside a task is a no-op.
func (s *Scheduler) Advance(now time.Time) int {
	if s.running {
		return 0
	}
	s.running = true
	defer func() { s.running = false }()

	if now.After(s.now) {
		s.now = now
	}
	fired := make(map[Handle]bool)
	ran := 0
	for {
		t := s.earliestDue(fired)
		if t == nil {
			return ran
		}
		fired[t.id] = true
		if t.every > 0 {
			t.due = t.due.Add(t.every)
			if !t.due.After(s.now) {
				t.due = s.now.Add(t.every)
			}
		} else {
			delete(s.tasks, t.id)
		}
		t.fn()
		ran++
	}
}

func (s *Scheduler) earliestDue(fired map[Handle]bool) *task {
	var best *task
	for _, t := range s.tasks {
		if fired[t.id] || t.due.After(s.now) {
			continue
		}
		if best == nil || t.due.Before(best.due) || (t.due.Equal(best.due) && t.id < best.id) {
			best = t
		}
	}
	return best
}
