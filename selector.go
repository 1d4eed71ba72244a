package nthline

import (
	"github.com/jbvmio/nthline/pipeline"
	"github.com/pkg/errors"
)

// PrefixLen is the number of leading lines that are always emitted.
const PrefixLen = 2

// State is the position of a Selector within its single pass.
type State int

// Selector states. Transitions only move forward.
const (
	StatePrefix State = iota
	StateBody
	StateDone
	StateFailed
)

var stateStrings = [...]string{
	`prefix`,
	`body`,
	`done`,
	`failed`,
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateStrings) {
		return `unknown`
	}
	return stateStrings[s]
}

// Selector emits the mandatory prefix and then every stride-th body line.
// It is meant to be used as a pipeline processor and finisher.
type Selector struct {
	stride   int
	prefix   int
	counter  int
	selected int
	state    State
}

// NewSelector returns a Selector for stride, which must be positive.
func NewSelector(stride int) (*Selector, error) {
	if stride <= 0 {
		return nil, errors.Wrapf(ErrInvalidStride, "got %d", stride)
	}
	return &Selector{stride: stride}, nil
}

// Process reports whether d is selected.
func (s *Selector) Process(d *pipeline.Line) (bool, error) {
	switch s.state {
	case StatePrefix:
		s.prefix++
		if s.prefix == PrefixLen {
			s.state = StateBody
		}
		s.selected++
		return true, nil
	case StateBody:
		s.counter++
		if s.counter%s.stride != 0 {
			return false, nil
		}
		s.selected++
		return true, nil
	default:
		return false, errors.Errorf("line %d received by %s selector", d.Num, s.state)
	}
}

// Finish ends the pass. It fails with a *PrefixError if the input ended before
// the mandatory prefix was complete.
func (s *Selector) Finish() error {
	switch s.state {
	case StatePrefix:
		s.state = StateFailed
		return &PrefixError{Line: s.prefix + 1}
	case StateBody:
		s.state = StateDone
	}
	return nil
}

// State returns the current State.
func (s *Selector) State() State { return s.state }

// BodyLines returns the number of body lines seen.
func (s *Selector) BodyLines() int { return s.counter }

// Selected returns the number of lines selected so far, prefix included.
func (s *Selector) Selected() int { return s.selected }
