package pipeline

// Line represents a single line of input traveling through the pipeline.
type Line struct {
	// Num is the 1-based position of the line within the input.
	Num  int
	Text string
}

// DataFunc processes a Line. Returning false discards the Line.
// A DataFunc may rewrite Text before passing it on.
type DataFunc func(*Line) (bool, error)

// Finisher is implemented by processors that need to act once the input is exhausted.
type Finisher interface {
	Finish() error
}

// NoopData performs no actions on the given data.
func NoopData(d *Line) (bool, error) {
	return true, nil
}
