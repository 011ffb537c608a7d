package slicecube

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/looplab/fsm"
)

// state machine errors
var (
	ErrNotAvailable    = errors.New("puzzle is not available for modification")
	ErrAlreadyIdle     = errors.New("already idle")
	ErrUnexpectedState = errors.New("unexpected current state")
)

// State is the interaction state of the puzzle.
type State int

const (
	Idle State = iota
	PlayerTurning
	Shuffling
	Solving
)

var stateNames = [...]string{"idle", "turning", "shuffling", "solving"}

func (s State) String() string {
	if s < Idle || s > Solving {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

func parseState(name string) State {
	for i, n := range stateNames {
		if n == name {
			return State(i)
		}
	}
	return State(-1)
}

func beginEvent(to State) string { return "begin_" + to.String() }
func finishEvent(s State) string { return "finish_" + s.String() }

// stateMachine guards when the lattice may be mutated. Only Idle accepts new
// commands; every busy state returns to Idle through finish.
//
// all methods are thread-safe.
type stateMachine struct {
	mux      sync.Mutex
	fsm      *fsm.FSM
	onChange func(from, to State)
}

func newStateMachine() *stateMachine {
	var events fsm.Events
	for _, busy := range []State{PlayerTurning, Shuffling, Solving} {
		events = append(events,
			fsm.EventDesc{Name: beginEvent(busy), Src: []string{Idle.String()}, Dst: busy.String()},
			fsm.EventDesc{Name: finishEvent(busy), Src: []string{busy.String()}, Dst: Idle.String()},
		)
	}
	return &stateMachine{fsm: fsm.NewFSM(Idle.String(), events, fsm.Callbacks{})}
}

func (sm *stateMachine) State() State {
	return parseState(sm.fsm.Current())
}

// Available reports whether a new mutating command may start.
func (sm *stateMachine) Available() bool {
	return sm.State() == Idle
}

// begin moves Idle to a busy state.
func (sm *stateMachine) begin(to State) error {
	if to == Idle {
		return ErrUnexpectedState
	}
	return sm.transform(beginEvent(to), func(cur State) error {
		if cur != Idle {
			return fmt.Errorf("begin %s while %s: %w", to, cur, ErrNotAvailable)
		}
		return nil
	})
}

// finish moves the busy state from back to Idle.
func (sm *stateMachine) finish(from State) error {
	return sm.transform(finishEvent(from), func(cur State) error {
		if cur == Idle {
			return ErrAlreadyIdle
		}
		if cur != from {
			return fmt.Errorf("finish %s while %s: %w", from, cur, ErrUnexpectedState)
		}
		return nil
	})
}

// transform fires event once guard accepts the current state, then reports
// the change outside the lock.
func (sm *stateMachine) transform(event string, guard func(State) error) error {
	sm.mux.Lock()
	from := sm.State()
	if err := guard(from); err != nil {
		sm.mux.Unlock()
		return err
	}
	if err := sm.fsm.Event(context.Background(), event); err != nil {
		sm.mux.Unlock()
		return fmt.Errorf("%s from %s: %v: %w", event, from, err, ErrUnexpectedState)
	}
	to := sm.State()
	cb := sm.onChange
	sm.mux.Unlock()

	if cb != nil {
		cb(from, to)
	}
	return nil
}
