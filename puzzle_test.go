package slicecube

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	. "github.com/smartystreets/goconvey/convey"
)

const homeEps = 1e-9

func pointerFrame(x, y float64, kind PointerKind) *Frame {
	return &Frame{Elapsed: 1.0 / 60, Screen: testScreen, Pointer: PointerSnapshot{X: x, Y: y, Kind: kind}}
}

func TestSliceMembership(t *testing.T) {
	p := newTestPuzzle()
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		seen := make(map[int]bool)
		for _, coord := range []float64{-1, 0, 1} {
			members := p.SliceMembers(axis, coord*p.Config().Spacing)
			if len(members) != 9 {
				t.Errorf("axis %s layer %v has %d cubelets", axis, coord, len(members))
			}
			for _, sc := range members {
				if seen[sc.ID] {
					t.Errorf("cubelet %d is in two %s layers", sc.ID, axis)
				}
				seen[sc.ID] = true
			}
		}
		if len(seen) != cubeletCnt {
			t.Errorf("axis %s layers cover %d cubelets", axis, len(seen))
		}
	}
}

func TestFourQuarterTurnsRestoreEveryLayer(t *testing.T) {
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		for layer := -1; layer <= 1; layer++ {
			for _, sign := range []float64{1, -1} {
				p := newTestPuzzle()
				rec := RotationRecord{Pivot: axisPoint(axis, float64(layer)), Axis: axis, Angle: sign * QuarterTurn}
				for i := 0; i < 4; i++ {
					p.Turn(rec)
					runUntilIdle(t, p, 200)
					if i < 3 && p.AtHome(homeEps) {
						t.Errorf("%s after %d turns is still home", rec, i+1)
					}
					if n := len(p.SliceMembers(axis, float64(layer))); n != 9 {
						t.Errorf("%s after %d turns: layer holds %d cubelets", rec, i+1, n)
					}
				}
				if !p.AtHome(homeEps) {
					t.Errorf("four turns of %s did not return home", rec)
				}
			}
		}
	}
}

func TestShuffleDirection(t *testing.T) {
	pick := shufflePick{axis: -1, dir: -1}
	steps := []struct {
		axis  Axis
		slice int
		want  float64
	}{
		{AxisX, 0, 1},
		{AxisX, 0, 1},
		{AxisX, 2, -1},
		{AxisY, 2, 1},
		{AxisY, 2, 1},
	}
	for i, s := range steps {
		if got := pick.next(s.axis, s.slice); got != s.want {
			t.Errorf("step %d: direction %v, want %v", i, got, s.want)
		}
	}
}

func TestSolveSlowdown(t *testing.T) {
	if got := solveSlowdown(10, 10, 3); got != 1 {
		t.Errorf("first solve turn slowdown = %v", got)
	}
	if got := solveSlowdown(0, 10, 3); !almostEqual(got, 4) {
		t.Errorf("last solve turn slowdown = %v", got)
	}
	if got := solveSlowdown(5, 10, 3); !almostEqual(got, 1.375) {
		t.Errorf("halfway slowdown = %v", got)
	}
	if got := solveSlowdown(0, 0, 3); got != 1 {
		t.Errorf("empty solve slowdown = %v", got)
	}
}

func TestPuzzle(t *testing.T) {
	Convey("A fresh puzzle", t, func() {
		p := newTestPuzzle()
		tick(p)

		So(p.State(), ShouldEqual, Idle)
		So(p.Interactive(), ShouldBeTrue)
		So(p.AtHome(homeEps), ShouldBeTrue)
		So(p.Solved(), ShouldBeTrue)
		So(p.Moves(), ShouldEqual, 0)
		So(p.SerializedHistory(), ShouldEqual, "")
		So(p.Faces().FaceCount(), ShouldEqual, faceCnt)

		Convey("Four quarter turns of one slice bring it back", func() {
			rec := RotationRecord{Pivot: NewVector3(0, 1, 0), Axis: AxisY, Angle: QuarterTurn}
			for i := 0; i < 4; i++ {
				p.Turn(rec)
				So(p.State(), ShouldEqual, PlayerTurning)
				runUntilIdle(t, p, 200)
				if i < 3 {
					So(p.AtHome(homeEps), ShouldBeFalse)
				}
				So(len(p.SliceMembers(AxisY, 1)), ShouldEqual, 9)
			}
			So(p.AtHome(homeEps), ShouldBeTrue)
			So(p.Moves(), ShouldEqual, 4)
		})

		Convey("A middle slice turn keeps the slices whole", func() {
			p.Turn(RotationRecord{Pivot: NewVector3(0, 0, 0), Axis: AxisX, Angle: -QuarterTurn})
			runUntilIdle(t, p, 200)
			for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
				for _, c := range []float64{-1, 0, 1} {
					So(len(p.SliceMembers(axis, c)), ShouldEqual, 9)
				}
			}
			So(p.Solved(), ShouldBeFalse)
		})

		Convey("Commands while busy are ignored", func() {
			p.Shuffle()
			So(p.State(), ShouldEqual, Shuffling)
			moves := p.Moves()
			So(moves, ShouldEqual, p.Config().ShuffleMoves)

			p.Turn(RotationRecord{Axis: AxisZ, Angle: QuarterTurn})
			p.Shuffle()
			p.Solve()
			So(p.State(), ShouldEqual, Shuffling)
			So(p.Moves(), ShouldEqual, moves)
			So(p.Restore("0,0,0_X_1.5707963267948966"), ShouldEqual, 0)
		})

		Convey("Shuffle then solve returns every cubelet home", func() {
			var shuffled, solved bool
			p.SetHooks(Hooks{
				OnShuffleFinished: func() { shuffled = true },
				OnSolveFinished:   func() { solved = true },
			})
			p.Shuffle()
			runUntilIdle(t, p, 2000)
			So(shuffled, ShouldBeTrue)
			So(p.Solved(), ShouldBeFalse)
			So(p.Moves(), ShouldEqual, p.Config().ShuffleMoves)

			saved := p.SerializedHistory()
			records, err := ParseHistory(saved)
			So(err, ShouldBeNil)
			So(len(records), ShouldEqual, p.Config().ShuffleMoves)

			p.Solve()
			So(p.State(), ShouldEqual, Solving)
			runUntilIdle(t, p, 5000)
			So(solved, ShouldBeTrue)
			So(p.AtHome(homeEps), ShouldBeTrue)
			So(p.Solved(), ShouldBeTrue)
			So(p.Moves(), ShouldEqual, 0)
			So(p.History().UndoLen(), ShouldEqual, 0)

			Convey("and the saved history restores the shuffled lattice", func() {
				other := newTestPuzzle()
				So(other.Restore(saved), ShouldEqual, len(records))
				So(other.State(), ShouldEqual, Idle)
				So(other.Solved(), ShouldBeFalse)
				So(other.SerializedHistory(), ShouldEqual, saved)

				other.Solve()
				runUntilIdle(t, other, 5000)
				So(other.AtHome(homeEps), ShouldBeTrue)
			})
		})

		Convey("Solve with nothing to undo does nothing", func() {
			p.Solve()
			So(p.State(), ShouldEqual, Idle)
		})

		Convey("A malformed saved history is treated as empty", func() {
			So(p.Restore("0,0,0_Q_1~nonsense"), ShouldEqual, 0)
			So(p.Moves(), ShouldEqual, 0)
			So(p.AtHome(homeEps), ShouldBeTrue)
			So(p.State(), ShouldEqual, Idle)
		})

		Convey("Partial turns and off-grid pivots in a saved history never move the lattice", func() {
			for _, saved := range []string{
				"0,0,0_X_1",
				"0,1,0_Y_0.9",
				"0,1,0_Y_1.5707963267948966~0,0.4,0_Y_1.5707963267948966",
			} {
				So(p.Restore(saved), ShouldEqual, 0)
				So(p.Moves(), ShouldEqual, 0)
				p.Solve()
				runUntilIdle(t, p, 500)
				So(p.AtHome(homeEps), ShouldBeTrue)
			}
		})

		Convey("A partial player turn is ignored", func() {
			p.Turn(RotationRecord{Pivot: NewVector3(0, 1, 0), Axis: AxisY, Angle: 1})
			So(p.State(), ShouldEqual, Idle)
			So(p.Moves(), ShouldEqual, 0)
		})

		Convey("A valid restore followed by a solve returns home", func() {
			So(p.Restore("0,1,0_Y_1.5707963267948966~1,0,0_X_-3.141592653589793"), ShouldEqual, 2)
			So(p.AtHome(homeEps), ShouldBeFalse)
			p.Solve()
			runUntilIdle(t, p, 500)
			So(p.AtHome(homeEps), ShouldBeTrue)
			So(p.Moves(), ShouldEqual, 0)
		})

		Convey("A player solving a shuffle fires OnSolved", func() {
			var solvedByPlayer bool
			p.SetHooks(Hooks{OnSolved: func() { solvedByPlayer = true }})
			So(p.Restore("0,1,0_Y_1.5707963267948966"), ShouldEqual, 1)
			So(p.Solved(), ShouldBeFalse)

			p.Turn(RotationRecord{Pivot: NewVector3(0, 1, 0), Axis: AxisY, Angle: -QuarterTurn})
			runUntilIdle(t, p, 200)
			So(solvedByPlayer, ShouldBeTrue)
			So(p.AtHome(homeEps), ShouldBeTrue)
		})
	})
}

func TestPointerGestures(t *testing.T) {
	Convey("With the front face toward the viewer", t, func() {
		p := newTestPuzzle()
		p.SetOrientation(mgl64.QuatIdent())
		cx, cy := testScreen.Width/2, testScreen.Height/2
		tick(p)

		Convey("swiping the front centre to the right turns the middle layer about Y", func() {
			var finished []RotationRecord
			p.SetHooks(Hooks{OnTurnFinished: func(r RotationRecord) { finished = append(finished, r) }})

			p.Update(pointerFrame(cx, cy, PointerDown))
			picked, ok := p.Picked()
			So(ok, ShouldBeTrue)
			So(picked.Owner, ShouldEqual, 14)

			p.Update(pointerFrame(cx+60, cy, PointerMove))
			p.Update(pointerFrame(cx+60, cy, PointerUp))
			So(p.State(), ShouldEqual, PlayerTurning)

			runUntilIdle(t, p, 200)
			So(p.SerializedHistory(), ShouldEqual, "0,0,1_Y_1.5707963267948966")
			So(len(finished), ShouldEqual, 1)
			So(finished[0].Axis, ShouldEqual, AxisY)
			So(p.SubCubes()[14].Center().ApproxEqual(NewVector3(1, 0, 0), homeEps), ShouldBeTrue)
		})

		Convey("a short swipe is ignored", func() {
			p.Update(pointerFrame(cx, cy, PointerDown))
			p.Update(pointerFrame(cx+3, cy, PointerUp))
			So(p.State(), ShouldEqual, Idle)
			So(p.Moves(), ShouldEqual, 0)
		})

		Convey("dragging the background rotates the whole puzzle", func() {
			before := p.Orientation().Quat()
			p.Update(pointerFrame(5, 5, PointerDown))
			_, ok := p.Picked()
			So(ok, ShouldBeFalse)
			p.Update(pointerFrame(45, 5, PointerMove))
			So(p.Orientation().Quat().ApproxEqualThreshold(before, 1e-9), ShouldBeFalse)
			p.Update(pointerFrame(45, 5, PointerUp))
			So(p.Moves(), ShouldEqual, 0)
			So(p.AtHome(homeEps), ShouldBeTrue)
		})
	})
}
