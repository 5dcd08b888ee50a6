package noise

// Generator constants. Values are kept for output compatibility; they are
// tuning choices rather than derived quantities.
const (
	// brownStep scales each uniform draw before it is integrated.
	brownStep = 0.05

	// PinkTaps is the number of white taps averaged by the pink generator.
	PinkTaps = 7
)

// Output range of every generator.
const (
	minSample = -1.0
	maxSample = 1.0
)
