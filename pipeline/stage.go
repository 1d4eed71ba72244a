package pipeline

import (
	"github.com/jbvmio/nthline/log"
)

// Stage represents a self contained set of functions to process Data.
type Stage struct {
	Processors []DataFunc
	l          log.Logger
}

// NewStage returns a new Stage running the given processors in order.
func NewStage(l log.Logger, processors ...DataFunc) Stage {
	if l == nil {
		l = log.NewNoop()
	}
	return Stage{
		Processors: processors,
		l:          l,
	}
}

// Process runs d through every Processor, stopping at the first one that
// discards it or returns an error.
func (s *Stage) Process(d *Line) (bool, error) {
	for n, process := range s.Processors {
		pass, err := process(d)
		switch {
		case err != nil:
			s.l.Debugf("processor %d failed on line %d: %v", n, d.Num, err)
			return false, err
		case !pass:
			return false, nil
		}
	}
	return true, nil
}
