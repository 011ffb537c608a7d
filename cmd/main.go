// slicecube - 3x3x3 slice-rotation puzzle.
//
// Controls:
//
//	Drag a face      - turn the slice under it
//	Drag background  - rotate the whole puzzle
//	S                - shuffle
//	Space            - solve (plays the moves back)
//	Esc / Q          - quit
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"fortio.org/cli"
	"fortio.org/log"

	"github.com/smasonuk/slicecube"
	"github.com/smasonuk/slicecube/ebitenview"
	"github.com/smasonuk/slicecube/termview"
)

func main() {
	cfg := slicecube.DefaultConfig()
	flag.Float64Var(&cfg.TurnDuration, "turn", cfg.TurnDuration, "Seconds per player turn")
	flag.IntVar(&cfg.TurnFrames, "frames", cfg.TurnFrames, "Incremental steps per turn")
	flag.IntVar(&cfg.ShuffleMoves, "moves", cfg.ShuffleMoves, "Number of shuffle moves")
	flag.Float64Var(&cfg.ShuffleTurnDuration, "shuffle-turn", cfg.ShuffleTurnDuration, "Seconds per shuffle turn")
	flag.Float64Var(&cfg.SolveTurnDuration, "solve-turn", cfg.SolveTurnDuration, "Seconds per solve turn before slowdown")
	flag.Float64Var(&cfg.SolveSlowdown, "slowdown", cfg.SolveSlowdown, "Extra solve slowdown reached on the last turn")
	flag.Float64Var(&cfg.ViewerDistance, "distance", cfg.ViewerDistance, "Viewer distance from the lattice centre")
	flag.Float64Var(&cfg.MinSwipe, "min-swipe", cfg.MinSwipe, "Minimum swipe length in logical units")
	flag.IntVar(&cfg.TPS, "tps", cfg.TPS, "Ticks per second")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Shuffle random seed")
	historyFile := flag.String("history", "", "File to restore the move history from and save it to on exit")
	useTerm := flag.Bool("term", false, "Play in the terminal instead of a window")
	shuffle := flag.Bool("shuffle", false, "Shuffle right away")
	cli.Main()

	p := slicecube.NewPuzzle(cfg, slicecube.Hooks{})
	if *historyFile != "" {
		restore(p, *historyFile)
	}
	if *shuffle {
		p.Shuffle()
	}

	var err error
	if *useTerm {
		err = termview.Run(p)
	} else {
		err = ebitenview.Run(p, "slicecube")
	}
	if err != nil {
		log.Errf("%v", err)
	}

	if *historyFile != "" {
		if serr := save(p, *historyFile); serr != nil {
			log.Errf("%v", serr)
			err = serr
		}
	}
	if err != nil {
		os.Exit(1)
	}
	fmt.Println(p.SerializedHistory())
}

func restore(p *slicecube.Puzzle, path string) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Infof("no saved history at %s", path)
		return
	}
	if err != nil {
		log.Warnf("reading history: %v", err)
		return
	}
	n := p.Restore(strings.TrimSpace(string(data)))
	log.Infof("restored %d moves from %s", n, path)
}

func save(p *slicecube.Puzzle, path string) error {
	if err := os.WriteFile(path, []byte(p.SerializedHistory()+"\n"), 0o644); err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	log.Infof("saved %d moves to %s", p.Moves(), path)
	return nil
}
