package slicecube

// Config holds the geometry and timing tunables of a puzzle.
type Config struct {
	// distance between neighbouring cubelet centres
	Spacing float64
	// half the edge length of one cubelet; a little under Spacing/2 leaves a visible gap
	CubeletHalf float64

	ViewerDistance float64
	// focal length as a fraction of the smaller screen side
	FocalScale float64

	// seconds and incremental steps for a player turn
	TurnDuration float64
	TurnFrames   int

	ShuffleMoves        int
	ShuffleTurnDuration float64

	SolveTurnDuration float64
	// last turns of a solve take up to 1+SolveSlowdown times longer
	SolveSlowdown float64

	// minimum swipe length in logical units before a release counts as a turn
	MinSwipe float64
	// radians of whole-puzzle rotation per logical unit dragged
	DragSensitivity float64

	SpinFrequency float64
	SpinDamping   float64
	TPS           int

	RenormalizeEvery int
	Seed             uint64
}

func DefaultConfig() Config {
	return Config{
		Spacing:             1.0,
		CubeletHalf:         0.47,
		ViewerDistance:      9.0,
		FocalScale:          1.0,
		TurnDuration:        0.3,
		TurnFrames:          22,
		ShuffleMoves:        25,
		ShuffleTurnDuration: 0.12,
		SolveTurnDuration:   0.08,
		SolveSlowdown:       3.0,
		MinSwipe:            12,
		DragSensitivity:     0.01,
		SpinFrequency:       4.0,
		SpinDamping:         1.0,
		TPS:                 60,
		RenormalizeEvery:    16,
		Seed:                1,
	}
}

// sliceTolerance accepts cubelets sharing a layer and rejects the next layer over.
func (c Config) sliceTolerance() float64 {
	return c.Spacing / 2
}

// reach is how far the lattice extends from its centre.
func (c Config) reach() float64 {
	return c.Spacing + c.CubeletHalf
}
