package nthline

import (
	"context"
	"io"

	"github.com/jbvmio/nthline/log"
	"github.com/jbvmio/nthline/pipeline"
	"github.com/jbvmio/nthline/plugin"
	"github.com/jbvmio/nthline/plugin/config"
	"github.com/jbvmio/nthline/plugin/osio"
	"github.com/pkg/errors"
)

// Run selects lines from cfg.Path and writes them to cfg.Output.
// The input is closed on every return path.
func Run(ctx context.Context, cfg Config, l log.Logger) error {
	if l == nil {
		l = log.NewNoop()
	}
	sel, err := NewSelector(cfg.Stride)
	if err != nil {
		return &UsageError{Err: err}
	}
	in, err := createInput(cfg)
	if err != nil {
		return err
	}
	out, err := createOutput(cfg.Output)
	if err != nil {
		return err
	}
	l.Debugf("opening %s with stride %d", cfg.Path, cfg.Stride)
	if err := in.Open(); err != nil {
		return &FileOpenError{Path: cfg.Path, Err: err}
	}
	defer func() {
		if err := in.Close(); err != nil {
			l.Warnf("closing %s: %v", cfg.Path, err)
		}
	}()
	return process(ctx, in, out, sel, l)
}

// Select writes the first two lines of r to w, then every stride-th line after them.
func Select(r io.Reader, w io.Writer, stride int) error {
	sel, err := NewSelector(stride)
	if err != nil {
		return err
	}
	return process(context.Background(), osio.NewReaderInput(r), osio.NewWriterOutput(w), sel, nil)
}

func process(ctx context.Context, in plugin.Input, out plugin.Output, sel *Selector, l log.Logger) error {
	if l == nil {
		l = log.NewNoop()
	}
	p := pipeline.NewPipeline(in, out, l)
	s := pipeline.NewStage(l, sel.Process)
	p.AddStages(&s)
	p.AddFinishers(sel)
	err := p.Run(ctx)
	var rerr *pipeline.ReadError
	if errors.As(err, &rerr) && sel.State() == StatePrefix {
		err = &PrefixError{Line: rerr.Line, Err: rerr.Err}
	}
	l.Debugf("selector %s after %d body line(s), %d line(s) selected", sel.State(), sel.BodyLines(), sel.Selected())
	return err
}

func createInput(cfg Config) (plugin.Input, error) {
	id := plugin.TypeInputFile
	if cfg.Follow {
		id = plugin.TypeInputFollow
	}
	switch c := config.GetInputConfig(id).(type) {
	case *osio.FileInputConfig:
		c.Path = cfg.Path
		return c.CreateInput()
	case *osio.FollowInputConfig:
		c.Path = cfg.Path
		c.Poll = cfg.Poll
		return c.CreateInput()
	default:
		return nil, errors.Errorf("no input available for %s", id)
	}
}

func createOutput(w io.Writer) (plugin.Output, error) {
	if w == nil {
		return config.GetOutputConfig(plugin.TypeOutputStd).CreateOutput()
	}
	c := config.GetOutputConfig(plugin.TypeOutputWriter).(*osio.WriterOutputConfig)
	c.W = w
	return c.CreateOutput()
}
