package slicecube

import (
	"math"

	"fortio.org/log"
)

// SliceMembers returns the cubelets whose centre lies in the layer at coord along axis.
func (p *Puzzle) SliceMembers(axis Axis, coord float64) []*SubCube {
	tol := p.cfg.sliceTolerance()
	members := make([]*SubCube, 0, gridSize*gridSize)
	for _, sc := range p.cubes {
		if sc.InSlice(axis, coord, tol) {
			members = append(members, sc)
		}
	}
	return members
}

// rotateSlice turns the layer containing the grid cell pivot by angle about axis.
// The rotation centre is the point of the lattice axis at the pivot's layer.
func (p *Puzzle) rotateSlice(pivot Vector3, axis Axis, angle float64) {
	coord := pivot.Component(axis) * p.cfg.Spacing
	m := RotationMatrix(AxisAngle(axis.Unit(), angle))
	centre := axisPoint(axis, coord)
	for _, sc := range p.SliceMembers(axis, coord) {
		sc.Rotate(m, centre)
	}
}

// axisPoint is the point at coord along axis, other components exactly zero.
func axisPoint(axis Axis, coord float64) Vector3 {
	var v Vector3
	switch axis {
	case AxisX:
		v.X = coord
	case AxisY:
		v.Y = coord
	default:
		v.Z = coord
	}
	return v
}

func (p *Puzzle) settle() {
	for _, sc := range p.cubes {
		sc.Snap()
	}
}

// scheduleTurn queues the incremental steps of rec starting at absolute time start
// and returns the time the turn ends.
func (p *Puzzle) scheduleTurn(start float64, rec RotationRecord, duration float64) float64 {
	frames := p.cfg.TurnFrames
	if frames < 1 {
		frames = 1
	}
	step := rec.Angle / float64(frames)
	var end float64
	for i := 1; i <= frames; i++ {
		end = start + duration*float64(i)/float64(frames)
		p.scheduler.At(end, StepRotation{Pivot: rec.Pivot, Axis: rec.Axis, Angle: step})
	}
	p.scheduler.At(end, SettleTurn{Record: rec})
	return end
}

// Turn animates rec as a player turn. It is ignored unless the puzzle is idle.
func (p *Puzzle) Turn(rec RotationRecord) {
	if err := rec.Validate(); err != nil {
		log.Debugf("turn ignored: %v", err)
		return
	}
	if err := p.state.begin(PlayerTurning); err != nil {
		log.Debugf("turn %s ignored: %v", rec, err)
		return
	}
	end := p.scheduleTurn(p.scheduler.Now(), rec, p.cfg.TurnDuration)
	p.history.Push(rec)
	p.scheduler.At(end, Completion{Kind: TurnFinished})
	log.LogVf("turn %s scheduled to end at %.3f", rec, end)
}

type shufflePick struct {
	axis  Axis
	slice int
	dir   float64
}

// next keeps the previous direction while the same layer is picked again and
// flips it whenever the axis or layer changes.
func (s *shufflePick) next(axis Axis, slice int) float64 {
	if axis != s.axis || slice != s.slice {
		s.dir = -s.dir
	}
	s.axis = axis
	s.slice = slice
	return s.dir
}

// Shuffle queues a run of random quarter turns. It is ignored unless the puzzle is idle.
func (p *Puzzle) Shuffle() {
	if err := p.state.begin(Shuffling); err != nil {
		log.Debugf("shuffle ignored: %v", err)
		return
	}
	log.Infof("shuffling %d moves", p.cfg.ShuffleMoves)
	t := p.scheduler.Now()
	for i := 0; i < p.cfg.ShuffleMoves; i++ {
		axis := Axis(p.rng.IntN(3))
		slice := p.rng.IntN(gridSize)
		dir := p.shuffleDir.next(axis, slice)
		rec := RotationRecord{
			Pivot: axisPoint(axis, float64(slice-1)),
			Axis:  axis,
			Angle: dir * QuarterTurn,
		}
		t = p.scheduleTurn(t, rec, p.cfg.ShuffleTurnDuration)
		p.history.Push(rec)
	}
	p.scheduler.At(t, Completion{Kind: ShuffleFinished})
}

// Solve plays the undo stack back to the start. It is ignored unless the puzzle
// is idle and has something to undo.
func (p *Puzzle) Solve() {
	if p.history.UndoLen() == 0 {
		log.Debugf("solve ignored: nothing to undo")
		return
	}
	if err := p.state.begin(Solving); err != nil {
		log.Debugf("solve ignored: %v", err)
		return
	}
	p.solveTotal = p.history.UndoLen()
	log.Infof("solving %d moves", p.solveTotal)
	p.scheduler.After(0, Completion{Kind: SolveNext})
}

// solveSlowdown grows cubically as the undo stack empties.
func solveSlowdown(remaining, total int, slowdown float64) float64 {
	if total <= 0 {
		return 1
	}
	done := 1 - float64(remaining)/float64(total)
	return 1 + slowdown*math.Pow(done, 3)
}

func (p *Puzzle) solveNext() {
	rec, remaining, ok := p.history.PopUndo()
	if !ok {
		p.history.Clear()
		p.shuffled = false
		if err := p.state.finish(Solving); err != nil {
			log.Warnf("solve finish: %v", err)
		}
		log.Infof("solve finished")
		if p.hooks.OnSolveFinished != nil {
			p.hooks.OnSolveFinished()
		}
		return
	}
	d := p.cfg.SolveTurnDuration * solveSlowdown(remaining, p.solveTotal, p.cfg.SolveSlowdown)
	end := p.scheduleTurn(p.scheduler.Now(), rec, d)
	p.scheduler.At(end, Completion{Kind: SolveNext})
}

// Restore replays a serialized history instantly. Malformed input counts as an
// empty history. It is ignored unless the puzzle is idle.
func (p *Puzzle) Restore(serialized string) int {
	records, err := ParseHistory(serialized)
	if err != nil {
		log.Warnf("ignoring saved history: %v", err)
		return 0
	}
	if err := p.state.begin(PlayerTurning); err != nil {
		log.Debugf("restore ignored: %v", err)
		return 0
	}
	for _, rec := range records {
		p.rotateSlice(rec.Pivot, rec.Axis, rec.Angle)
		p.settle()
		p.history.Push(rec)
	}
	p.shuffled = len(records) > 0 && !p.Solved()
	if err := p.state.finish(PlayerTurning); err != nil {
		log.Warnf("restore finish: %v", err)
	}
	log.Infof("restored %d moves", len(records))
	return len(records)
}

// execute runs one deferred action on the tick that drains it.
func (p *Puzzle) execute(a Action) {
	switch a := a.(type) {
	case StepRotation:
		p.rotateSlice(a.Pivot, a.Axis, a.Angle)
	case SettleTurn:
		p.settle()
		log.LogVf("settled %s", a.Record)
	case Completion:
		p.complete(a.Kind)
	}
}

func (p *Puzzle) complete(kind CompletionKind) {
	switch kind {
	case TurnFinished:
		if err := p.state.finish(PlayerTurning); err != nil {
			log.Warnf("turn finish: %v", err)
		}
		if p.hooks.OnTurnFinished != nil {
			records := p.history.Records()
			if len(records) > 0 {
				p.hooks.OnTurnFinished(records[len(records)-1])
			}
		}
		if p.shuffled && p.Solved() {
			p.shuffled = false
			log.Infof("puzzle solved by player")
			if p.hooks.OnSolved != nil {
				p.hooks.OnSolved()
			}
		}
	case ShuffleFinished:
		p.shuffled = !p.Solved()
		if err := p.state.finish(Shuffling); err != nil {
			log.Warnf("shuffle finish: %v", err)
		}
		log.Infof("shuffle finished")
		if p.hooks.OnShuffleFinished != nil {
			p.hooks.OnShuffleFinished()
		}
	case SolveNext:
		p.solveNext()
	}
}
