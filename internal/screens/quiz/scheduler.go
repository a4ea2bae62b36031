package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickmath/internal/clock"
)

// scheduledMsg delivers a timer registered with a teaScheduler back into
// the Update loop.
type scheduledMsg struct {
	owner *teaScheduler
	id    uint64
}

// teaScheduler implements clock.Scheduler on top of tea.Tick so timer
// callbacks run inside Update, serialized with key handling.
type teaScheduler struct {
	next   uint64
	timers map[uint64]scheduled
	cmds   []tea.Cmd
}

type scheduled struct {
	delay time.Duration
	fn    func()
}

var _ clock.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{timers: make(map[uint64]scheduled)}
}

func (s *teaScheduler) AfterFunc(d time.Duration, fn func()) clock.Cancel {
	s.next++
	id := s.next
	s.timers[id] = scheduled{delay: d, fn: fn}
	s.cmds = append(s.cmds, tea.Tick(d, func(time.Time) tea.Msg {
		return scheduledMsg{owner: s, id: id}
	}))
	return func() { delete(s.timers, id) }
}

// fire runs the callback for id unless it was cancelled or already ran.
func (s *teaScheduler) fire(id uint64) {
	t, ok := s.timers[id]
	if !ok {
		return
	}
	delete(s.timers, id)
	t.fn()
}

// flush returns the tick commands queued since the last flush.
func (s *teaScheduler) flush() []tea.Cmd {
	cmds := s.cmds
	s.cmds = nil
	return cmds
}
