package slicecube

import (
	"math"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vectorsAlmostEqual(a, b Vector3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

var testScreen = Screen{Width: 640, Height: 480, Ratio: 1}

// tick runs one idle frame with the pointer released.
func tick(p *Puzzle) {
	p.Update(&Frame{Elapsed: 1.0 / 60, Screen: testScreen, Pointer: PointerSnapshot{Kind: PointerUp}})
}

// runUntilIdle ticks until the puzzle accepts commands again, failing after limit ticks.
func runUntilIdle(t *testing.T, p *Puzzle, limit int) int {
	t.Helper()
	for i := 0; i < limit; i++ {
		tick(p)
		if p.State() == Idle && p.Scheduler().Len() == 0 {
			return i + 1
		}
	}
	t.Fatalf("puzzle still %s after %d ticks", p.State(), limit)
	return limit
}

func newTestPuzzle() *Puzzle {
	return NewPuzzle(DefaultConfig(), Hooks{})
}
