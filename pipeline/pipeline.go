package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/jbvmio/nthline/log"
	"github.com/jbvmio/nthline/plugin"
	"github.com/pkg/errors"
)

// ReadError reports a failure of the Input while reading line Line.
type ReadError struct {
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error.
func (e *ReadError) Unwrap() error { return e.Err }

// Pipeline moves lines from an Input through 1 or more Stages to an Output.
type Pipeline struct {
	in        plugin.Input
	out       plugin.Output
	Stages    []*Stage
	finishers []Finisher
	l         log.Logger
}

// NewPipeline returns a new Pipeline. The Input must already be open and remains
// owned by the caller.
func NewPipeline(in plugin.Input, out plugin.Output, l log.Logger) Pipeline {
	if l == nil {
		l = log.NewNoop()
	}
	return Pipeline{
		in:  in,
		out: out,
		l:   l,
	}
}

// AddStages adds 1 or more Stages to the Pipeline.
func (p *Pipeline) AddStages(stages ...*Stage) {
	p.l.Debugf("adding %d stage(s)", len(stages))
	p.Stages = append(p.Stages, stages...)
}

// AddFinishers registers hooks called in order once the Input is exhausted.
func (p *Pipeline) AddFinishers(f ...Finisher) {
	p.finishers = append(p.finishers, f...)
}

// Run reads every line from the Input until io.EOF, writing the lines that pass
// all Stages to the Output. The Output is flushed on every return path, so lines
// written before a failure remain visible.
func (p *Pipeline) Run(ctx context.Context) (err error) {
	defer func() {
		ferr := p.out.Flush()
		if ferr != nil && err == nil {
			err = errors.Wrap(ferr, "flushing output")
		}
	}()
	var read, written int
	for {
		text, rerr := p.in.ReadLine(ctx)
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return &ReadError{Line: read + 1, Err: rerr}
		}
		read++
		d := &Line{Num: read, Text: text}
		pass, perr := p.process(d)
		if perr != nil {
			return perr
		}
		if !pass {
			continue
		}
		if werr := p.out.WriteLine(d.Text); werr != nil {
			return errors.Wrapf(werr, "writing line %d", read)
		}
		written++
	}
	p.l.Debugf("input exhausted after %d line(s), wrote %d", read, written)
	for _, f := range p.finishers {
		if err := f.Finish(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Pipeline) process(d *Line) (bool, error) {
	for _, s := range p.Stages {
		pass, err := s.Process(d)
		if err != nil || !pass {
			return false, err
		}
	}
	return true, nil
}
