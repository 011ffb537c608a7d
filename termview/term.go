// Package termview plays the puzzle in a terminal with tcell. Each cell covers
// one unit horizontally and two vertically so the lattice keeps its aspect.
package termview

import (
	"fmt"
	"time"

	"fortio.org/log"
	"github.com/gdamore/tcell/v2"

	"github.com/smasonuk/slicecube"
)

const cellAspect = 2

type command int

const (
	cmdShuffle command = iota
	cmdSolve
)

// cell is one rasterized terminal cell.
type cell struct {
	filled   bool
	selected bool
	color    tcell.Color
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func polygonBounds(p slicecube.Polygon) bounds {
	b := bounds{minX: p.Points[0].X, maxX: p.Points[0].X, minY: p.Points[0].Y, maxY: p.Points[0].Y}
	for _, pt := range p.Points[1:] {
		b.minX = min(b.minX, pt.X)
		b.maxX = max(b.maxX, pt.X)
		b.minY = min(b.minY, pt.Y)
		b.maxY = max(b.maxY, pt.Y)
	}
	return b
}

// rasterize samples the centre of every cell against polys, nearest polygon first.
func rasterize(polys []slicecube.Polygon, w, h int) []cell {
	out := make([]cell, w*h)
	boxes := make([]bounds, len(polys))
	for i, p := range polys {
		boxes[i] = polygonBounds(p)
	}
	for row := 0; row < h; row++ {
		y := (float64(row) + 0.5) * cellAspect
		for col := 0; col < w; col++ {
			x := float64(col) + 0.5
			for i := len(polys) - 1; i >= 0; i-- {
				b := boxes[i]
				if x < b.minX || x > b.maxX || y < b.minY || y > b.maxY {
					continue
				}
				if polys[i].Contains(x, y) {
					c := polys[i].Color
					out[row*w+col] = cell{
						filled:   true,
						selected: polys[i].Selected,
						color:    tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)),
					}
					break
				}
			}
		}
	}
	return out
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}

func paint(s tcell.Screen, p *slicecube.Puzzle, w, h int) {
	cells := rasterize(p.Render(), w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			c := cells[row*w+col]
			if !c.filled {
				continue
			}
			r := ' '
			if c.selected {
				r = '░'
			}
			s.SetContent(col, row, r, nil, tcell.StyleDefault.Background(c.color).Foreground(tcell.ColorWhite))
		}
	}
	info := fmt.Sprintf("%s  moves: %d  [s] shuffle  [space] solve  [q] quit", p.State(), p.Moves())
	drawText(s, 1, h-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
}

// pointerFrom converts a mouse event into the puzzle's pixel space.
func pointerFrom(ev *tcell.EventMouse) slicecube.PointerSnapshot {
	x, y := ev.Position()
	kind := slicecube.PointerUp
	if ev.Buttons()&tcell.Button1 != 0 {
		kind = slicecube.PointerMove
	}
	return slicecube.PointerSnapshot{
		X:    float64(x) + 0.5,
		Y:    (float64(y) + 0.5) * cellAspect,
		Kind: kind,
	}
}

// Run takes over the terminal until the player quits.
func Run(p *slicecube.Puzzle) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()
	s.EnableMouse()

	input := slicecube.NewInput()
	commands := make(chan command, 4)
	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			switch ev := s.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyRune:
					switch ev.Rune() {
					case 'q', 'Q':
						return
					case 's', 'S':
						commands <- cmdShuffle
					case ' ':
						commands <- cmdSolve
					}
				}
			case *tcell.EventMouse:
				input.Store(pointerFrom(ev))
			case *tcell.EventResize:
				s.Sync()
			}
		}
	}()

	tps := p.Config().TPS
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()
	log.Infof("terminal view running at %d tps", tps)

	for {
		select {
		case <-quit:
			return nil
		case c := <-commands:
			switch c {
			case cmdShuffle:
				p.Shuffle()
			case cmdSolve:
				p.Solve()
			}
		case <-ticker.C:
			w, h := s.Size()
			p.Update(&slicecube.Frame{
				Elapsed: 1 / float64(tps),
				Pointer: input.Snapshot(),
				Screen:  slicecube.Screen{Width: float64(w), Height: float64(h * cellAspect), Ratio: 0.25},
			})
			s.Clear()
			paint(s, p, w, h)
			s.Show()
		}
	}
}
