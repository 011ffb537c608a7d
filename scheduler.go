package slicecube

import (
	"fmt"
	"sort"
	"sync"
)

// Action is a deferred unit of work. Only the variants in this file implement it.
type Action interface {
	fmt.Stringer
	action()
}

// StepRotation turns one slice by a fraction of a full turn.
type StepRotation struct {
	Pivot Vector3
	Axis  Axis
	Angle float64
}

// SettleTurn snaps the lattice to the grid once a turn's last step has run.
type SettleTurn struct {
	Record RotationRecord
}

type CompletionKind int

const (
	TurnFinished CompletionKind = iota
	ShuffleFinished
	SolveNext
)

// Completion fires a state change or chains the next step of a playback.
type Completion struct {
	Kind CompletionKind
}

func (StepRotation) action() {}
func (SettleTurn) action()   {}
func (Completion) action()   {}

func (s StepRotation) String() string {
	return fmt.Sprintf("step %s %.4f about %v", s.Axis, s.Angle, s.Pivot)
}

func (s SettleTurn) String() string {
	return "settle " + s.Record.String()
}

func (c Completion) String() string {
	switch c.Kind {
	case TurnFinished:
		return "turn finished"
	case ShuffleFinished:
		return "shuffle finished"
	default:
		return "solve next"
	}
}

type deferredAction struct {
	due    float64
	seq    uint64
	action Action
}

// Scheduler is a time ordered queue of deferred actions, kept sorted as they
// arrive. Time is the sum of the elapsed values it has been advanced by.
type Scheduler struct {
	mux   sync.Mutex
	now   float64
	seq   uint64
	queue []deferredAction
	run   func(Action)
}

func NewScheduler(run func(Action)) *Scheduler {
	return &Scheduler{run: run}
}

func (s *Scheduler) Now() float64 {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.now
}

func (s *Scheduler) Len() int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return len(s.queue)
}

// After enqueues a to run delay seconds from now.
func (s *Scheduler) After(delay float64, a Action) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.insert(s.now+delay, a)
}

// At enqueues a to run once the clock reaches due.
func (s *Scheduler) At(due float64, a Action) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.insert(due, a)
}

// insert keeps the queue sorted by due time; equal due times keep insertion order.
// Caller holds mux.
func (s *Scheduler) insert(due float64, a Action) {
	s.seq++
	i := sort.Search(len(s.queue), func(i int) bool { return s.queue[i].due > due })
	s.queue = append(s.queue, deferredAction{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = deferredAction{due: due, seq: s.seq, action: a}
}

// Advance moves the clock forward by dt and runs everything now due.
func (s *Scheduler) Advance(dt float64) int {
	s.mux.Lock()
	now := s.now + dt
	s.mux.Unlock()
	return s.RunDue(now)
}

// RunDue sets the clock to now and runs every action due by then in ascending
// due order. Actions may enqueue more actions; those also run if already due.
func (s *Scheduler) RunDue(now float64) int {
	s.mux.Lock()
	if now > s.now {
		s.now = now
	}
	s.mux.Unlock()

	ran := 0
	for {
		a, ok := s.popDue()
		if !ok {
			return ran
		}
		if s.run != nil {
			s.run(a)
		}
		ran++
	}
}

func (s *Scheduler) popDue() (Action, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	if len(s.queue) == 0 {
		return nil, false
	}
	head := s.queue[0]
	if head.due > s.now {
		return nil, false
	}
	s.queue = s.queue[1:]
	return head.action, true
}
