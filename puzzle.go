package slicecube

import (
	"image/color"
	"math/rand/v2"

	"fortio.org/log"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	gridSize    = 3
	cubeletCnt  = gridSize * gridSize * gridSize
	faceCnt     = cubeletCnt * 6
	vertexCnt   = cubeletCnt * 8
	defaultYaw  = -0.6
	defaultTilt = 0.5
)

// Hooks are optional callbacks fired from inside Update.
type Hooks struct {
	OnTurnFinished    func(RotationRecord)
	OnShuffleFinished func()
	OnSolveFinished   func()
	// OnSolved fires when a player turn completes a shuffled puzzle.
	OnSolved      func()
	OnStateChange func(from, to State)
}

// Puzzle is the 3x3x3 lattice: cubelets, global orientation, flattened faces,
// interaction state, turn history and the animation queue.
type Puzzle struct {
	cfg   Config
	hooks Hooks

	arena       *VertexArena
	cubes       []*SubCube
	faces       *FaceStore
	orientation *Orientation
	state       *stateMachine
	history     *History
	scheduler   *Scheduler
	spin        *Spin
	rng         *rand.Rand

	viewer *Viewer
	screen Screen

	pressed   bool
	picked    *Face
	samples   SampleRing
	lastPos   Vector2
	dragYaw   float64
	dragPitch float64

	shuffled   bool
	shuffleDir shufflePick
	solveTotal int
}

func NewPuzzle(cfg Config, hooks Hooks) *Puzzle {
	p := &Puzzle{
		cfg:         cfg,
		hooks:       hooks,
		arena:       NewVertexArena(vertexCnt),
		faces:       NewFaceStore(faceCnt),
		orientation: NewOrientation(cfg.RenormalizeEvery),
		state:       newStateMachine(),
		history:     NewHistory(),
		spin:        NewSpin(cfg),
		rng:         rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		shuffleDir:  shufflePick{axis: -1, dir: -1},
	}
	p.scheduler = NewScheduler(p.execute)
	p.state.onChange = func(from, to State) {
		log.Debugf("puzzle state %s -> %s", from, to)
		if p.hooks.OnStateChange != nil {
			p.hooks.OnStateChange(from, to)
		}
	}

	id := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				sc := NewSubCube(id, [3]int{x, y, z}, p.arena, cfg.Spacing, cfg.CubeletHalf)
				p.cubes = append(p.cubes, sc)
				for _, f := range sc.Faces {
					p.faces.AddFace(f)
				}
				id++
			}
		}
	}

	p.orientation.Apply(AxisAngle(AxisY.Unit(), defaultYaw))
	p.orientation.Apply(AxisAngle(AxisX.Unit(), defaultTilt))
	return p
}

func (p *Puzzle) Config() Config              { return p.cfg }
func (p *Puzzle) State() State                { return p.state.State() }
func (p *Puzzle) Interactive() bool           { return p.state.Available() }
func (p *Puzzle) SubCubes() []*SubCube        { return p.cubes }
func (p *Puzzle) Faces() *FaceStore           { return p.faces }
func (p *Puzzle) Orientation() *Orientation   { return p.orientation }
func (p *Puzzle) History() *History           { return p.history }
func (p *Puzzle) Scheduler() *Scheduler       { return p.scheduler }
func (p *Puzzle) Moves() int                  { return p.history.Len() }
func (p *Puzzle) SetOrientation(q mgl64.Quat) { p.orientation.Set(q) }
func (p *Puzzle) Picked() (*Face, bool)       { return p.picked, p.picked != nil }
func (p *Puzzle) SerializedHistory() string   { return p.history.String() }
func (p *Puzzle) Viewer() *Viewer             { return p.viewer }
func (p *Puzzle) SetHooks(h Hooks)            { p.hooks = h }

// Update runs one tick: due animation actions, coasting spin, projection and
// face refresh, then pointer handling against the fresh geometry.
func (p *Puzzle) Update(f *Frame) {
	p.scheduler.Advance(f.Elapsed)
	p.spin.Step(p.orientation, f.Elapsed)

	p.screen = f.Screen
	p.viewer = NewViewer(f.Screen, p.cfg)
	f.viewer = p.viewer
	f.orientation = p.orientation

	p.arena.Project(p.orientation, p.viewer)
	for _, sc := range p.cubes {
		sc.Update(f)
	}
	p.faces.SortFacesByDistance()

	p.handlePointer(f.Pointer)
	if p.picked != nil {
		p.picked.SetSelected(true)
	}
}

// Render returns the visible faces in painter's order.
func (p *Puzzle) Render() []Polygon {
	return p.faces.Render()
}

// Solved reports whether every coloured face points the same way as the rest of its colour.
func (p *Puzzle) Solved() bool {
	seen := make(map[color.RGBA]Direction, len(palette))
	for _, sc := range p.cubes {
		for _, f := range sc.Faces {
			col := f.Col
			if col == Inner {
				continue
			}
			d := NearestDirection(f.LatticeNormal())
			if prev, ok := seen[col]; ok && prev != d {
				return false
			}
			seen[col] = d
		}
	}
	return true
}

// AtHome reports whether every cubelet is back at its built position and orientation.
func (p *Puzzle) AtHome(eps float64) bool {
	for _, sc := range p.cubes {
		if !sc.AtHome(eps) {
			return false
		}
	}
	return true
}
