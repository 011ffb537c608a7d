package slicecube

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// spinAxis tracks an angular velocity that decays toward zero through a spring.
type spinAxis struct {
	velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // spring velocity while animating velocity toward 0
}

func newSpinAxis(tps int, frequency, damping float64) spinAxis {
	return spinAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(tps), frequency, damping),
	}
}

func (a *spinAxis) step() float64 {
	v := a.velocity
	a.velocity, a.velAccel = a.velSpring.Update(a.velocity, a.velAccel, 0)
	if math.Abs(a.velocity) < 1e-5 {
		a.velocity, a.velAccel = 0, 0
	}
	return v
}

const defaultTPS = 60

// Spin carries the whole-puzzle drag rotation past the end of a drag. The
// springs run at a fixed step of 1/TPS seconds fed from elapsed time.
type Spin struct {
	yaw   spinAxis
	pitch spinAxis

	step    float64
	pending float64
}

func NewSpin(cfg Config) *Spin {
	tps := cfg.TPS
	if tps <= 0 {
		tps = defaultTPS
	}
	return &Spin{
		yaw:   newSpinAxis(tps, cfg.SpinFrequency, cfg.SpinDamping),
		pitch: newSpinAxis(tps, cfg.SpinFrequency, cfg.SpinDamping),
		step:  1 / float64(tps),
	}
}

// Impulse replaces the current velocity, in radians per tick.
func (s *Spin) Impulse(yaw, pitch float64) {
	s.yaw.velocity, s.yaw.velAccel = yaw, 0
	s.pitch.velocity, s.pitch.velAccel = pitch, 0
}

func (s *Spin) Stop() {
	s.Impulse(0, 0)
	s.pending = 0
}

func (s *Spin) Moving() bool {
	return s.yaw.velocity != 0 || s.pitch.velocity != 0
}

// Step applies elapsed seconds of coasting rotation to o.
func (s *Spin) Step(o *Orientation, elapsed float64) {
	if !s.Moving() {
		s.pending = 0
		return
	}
	s.pending += elapsed
	for s.pending+1e-9 >= s.step && s.Moving() {
		s.pending -= s.step
		rotateView(o, s.yaw.step(), s.pitch.step())
	}
}

// rotateView turns the whole puzzle about the screen's vertical and horizontal axes.
func rotateView(o *Orientation, yaw, pitch float64) {
	if yaw != 0 {
		o.Apply(AxisAngle(AxisY.Unit(), yaw))
	}
	if pitch != 0 {
		o.Apply(AxisAngle(AxisX.Unit(), pitch))
	}
}
