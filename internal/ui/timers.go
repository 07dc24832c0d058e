package ui

import (
	"log"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/clock"
)

// loopScheduler is a clock.Scheduler whose callbacks run on the Bubble Tea
// event loop. An expired runtime timer only posts a timerFiredMsg; Update
// then calls dispatch, so carousel state is never touched from another
// goroutine. Stop drops the registration, which makes a message that is
// already in flight a no-op.
type loopScheduler struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	nextID  uint64
	pending map[uint64]*loopTimer
	early   []uint64 // fired before a program was attached
}

type loopTimer struct {
	s     *loopScheduler
	id    uint64
	fn    func()
	timer *time.Timer
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{pending: make(map[uint64]*loopTimer)}
}

// attach routes expirations to send and flushes any that fired before
func (s *loopScheduler) attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	early := s.early
	s.early = nil
	s.mu.Unlock()

	if len(early) > 0 {
		go func() {
			for _, id := range early {
				send(timerFiredMsg{id: id})
			}
		}()
	}
}

// After implements clock.Scheduler
func (s *loopScheduler) After(d time.Duration, fn func()) clock.Timer {
	s.mu.Lock()
	s.nextID++
	t := &loopTimer{s: s, id: s.nextID, fn: fn}
	s.pending[t.id] = t
	s.mu.Unlock()

	t.timer = time.AfterFunc(d, func() { s.expire(t.id) })
	return t
}

func (s *loopScheduler) expire(id uint64) {
	s.mu.Lock()
	send := s.send
	if send == nil {
		s.early = append(s.early, id)
	}
	s.mu.Unlock()

	if send != nil {
		send(timerFiredMsg{id: id})
	}
}

// dispatch runs the callback of a fired timer unless it was stopped
func (s *loopScheduler) dispatch(id uint64) {
	s.mu.Lock()
	t, ok := s.pending[id]
	delete(s.pending, id)
	s.mu.Unlock()

	if !ok {
		log.Printf("loopScheduler: dropping stale timer %d", id)
		return
	}
	t.fn()
}

// Pending returns the number of armed timers
func (s *loopScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Stop implements clock.Timer
func (t *loopTimer) Stop() bool {
	t.s.mu.Lock()
	_, ok := t.s.pending[t.id]
	delete(t.s.pending, t.id)
	t.s.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	return ok
}
