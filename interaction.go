package slicecube

import (
	"fortio.org/log"
)

// handlePointer advances the press/drag/release gesture from one snapshot.
// A press on a face starts a swipe; a press on the background drags the whole puzzle.
func (p *Puzzle) handlePointer(ptr PointerSnapshot) {
	pos := ptr.Pos()
	switch ptr.Kind {
	case PointerDown, PointerMove:
		if !p.pressed {
			p.press(pos)
			return
		}
		p.drag(pos)
	case PointerUp:
		if p.pressed {
			p.release(pos)
		}
	}
}

func (p *Puzzle) press(pos Vector2) {
	p.pressed = true
	p.lastPos = pos
	p.dragYaw, p.dragPitch = 0, 0
	p.samples.Reset()
	p.samples.AddPoint(pos)

	p.picked = nil
	if !p.Interactive() {
		return
	}
	if f, ok := p.faces.Pick(pos.X, pos.Y); ok {
		p.picked = f
		log.LogVf("picked face of cubelet %d facing %s", f.Owner, NearestDirection(f.LatticeNormal()))
		return
	}
	p.spin.Stop()
}

func (p *Puzzle) drag(pos Vector2) {
	p.samples.AddPoint(pos)
	if p.picked != nil {
		p.lastPos = pos
		return
	}
	delta := pos.Sub(p.lastPos)
	p.lastPos = pos
	scale := p.cfg.DragSensitivity / p.screen.ratio()
	p.dragYaw = delta.X * scale
	p.dragPitch = delta.Y * scale
	rotateView(p.orientation, p.dragYaw, p.dragPitch)
}

func (p *Puzzle) release(pos Vector2) {
	p.samples.AddPoint(pos)
	picked := p.picked
	p.pressed = false
	p.picked = nil

	if picked == nil {
		if p.dragYaw != 0 || p.dragPitch != 0 {
			p.spin.Impulse(p.dragYaw, p.dragPitch)
		}
		return
	}

	swipe := p.samples.Swipe()
	if swipe.Length() < p.cfg.MinSwipe*p.screen.ratio() {
		log.LogVf("swipe %.1f too short", swipe.Length())
		return
	}
	n := NearestDirection(picked.LatticeNormal())
	turn, d, ok := InterpretSwipe(p.orientation, p.viewer, p.cfg.reach(), n, swipe)
	if !ok {
		return
	}
	owner := p.cubes[picked.Owner]
	rec := RotationRecord{Pivot: owner.Cell(), Axis: turn.Axis, Angle: turn.Angle}
	log.Debugf("swipe %s on %s face -> %s", d, n, rec)
	p.Turn(rec)
}
