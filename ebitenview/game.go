package ebitenview

import (
	"errors"
	"fmt"
	"image/color"

	"fortio.org/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/smasonuk/slicecube"
)

const (
	screenWidth  = 640
	screenHeight = 480
)

var background = color.RGBA{R: 24, G: 24, B: 32, A: 255}

// Game drives a puzzle from ebiten's update and draw loop.
type Game struct {
	puzzle *slicecube.Puzzle
	input  *slicecube.Input
	tps    int

	width, height int
	message       string
}

func NewGame(p *slicecube.Puzzle) *Game {
	g := &Game{
		puzzle: p,
		input:  slicecube.NewInput(),
		tps:    p.Config().TPS,
		width:  screenWidth,
		height: screenHeight,
	}
	if g.tps <= 0 {
		g.tps = ebiten.DefaultTPS
	}
	p.SetHooks(slicecube.Hooks{
		OnShuffleFinished: func() { g.message = "shuffled" },
		OnSolveFinished:   func() { g.message = "solved" },
		OnSolved:          func() { g.message = "well done" },
		OnTurnFinished:    func(slicecube.RotationRecord) { g.message = "" },
	})
	return g
}

// pollPointer folds mouse and the first touch into one snapshot.
func (g *Game) pollPointer() {
	var x, y int
	kind := slicecube.PointerUp
	switch touches := ebiten.AppendTouchIDs(nil); {
	case len(touches) > 0:
		x, y = ebiten.TouchPosition(touches[0])
		kind = slicecube.PointerMove
		if inpututil.IsTouchJustPressed(touches[0]) {
			kind = slicecube.PointerDown
		}
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		x, y = ebiten.CursorPosition()
		kind = slicecube.PointerMove
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			kind = slicecube.PointerDown
		}
	default:
		x, y = ebiten.CursorPosition()
	}
	g.input.Store(slicecube.PointerSnapshot{X: float64(x), Y: float64(y), Kind: kind})
}

var quitKeys = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyQ}

func quitRequested() bool {
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func (g *Game) Update() error {
	if quitRequested() {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.puzzle.Shuffle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.puzzle.Solve()
	}
	g.pollPointer()

	g.puzzle.Update(&slicecube.Frame{
		Elapsed: 1 / float64(g.tps),
		Pointer: g.input.Snapshot(),
		Screen: slicecube.Screen{
			Width:  float64(g.width),
			Height: float64(g.height),
			Ratio:  ebiten.Monitor().DeviceScaleFactor(),
		},
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	paintPolygons(imageSink{screen: screen}, g.puzzle.Render())
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f  state: %s  moves: %d  %s\n[S] shuffle  [Space] solve  [Esc/Q] quit",
		ebiten.ActualFPS(), g.puzzle.State(), g.puzzle.Moves(), g.message))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Run opens a window and blocks until it is closed.
func Run(p *slicecube.Puzzle, title string) error {
	g := NewGame(p)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.tps)
	log.Infof("opening %dx%d window at %d tps", screenWidth, screenHeight, g.tps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
