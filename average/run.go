package average

import (
	"context"
	"fmt"
	"io"

	"github.com/jbvmio/nthline"
	"github.com/jbvmio/nthline/log"
	"github.com/jbvmio/nthline/pipeline"
	"github.com/jbvmio/nthline/plugin"
	"github.com/jbvmio/nthline/plugin/config"
	"github.com/jbvmio/nthline/plugin/osio"
	"github.com/spf13/pflag"
)

// Config details for nthavg.
type Config struct {
	Path    string
	N       int
	Verbose bool
	// Output receives the averaged lines. Defaults to stdout.
	Output io.Writer
}

const usageHeader = `Usage: nthavg [flags] <inputPath>

Writes the CSV header of inputPath, then one averaged row per block of N
consecutive timestamped rows.

Flags:
`

func newFlagSet(cfg *Config) *pflag.FlagSet {
	pf := pflag.NewFlagSet(`nthavg`, pflag.ContinueOnError)
	pf.SetOutput(io.Discard)
	pf.IntVarP(&cfg.N, "rows", "n", DefaultN, "Number of consecutive rows averaged into one.")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Write debug diagnostics to stderr.")
	return pf
}

// Usage returns the command line help text.
func Usage() string {
	return usageHeader + newFlagSet(&Config{}).FlagUsages()
}

// ConfigFromArgs builds a Config from command line arguments, excluding the program name.
// A request for help is reported as pflag.ErrHelp.
func ConfigFromArgs(args []string) (Config, error) {
	var cfg Config
	pf := newFlagSet(&cfg)
	if err := pf.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return Config{}, err
		}
		return Config{}, &nthline.UsageError{Err: err}
	}
	if pf.NArg() != 1 || pf.Arg(0) == "" {
		return Config{}, &nthline.UsageError{Msg: fmt.Sprintf("expected <inputPath>, got %d argument(s)", pf.NArg())}
	}
	if cfg.N <= 0 {
		return Config{}, &nthline.UsageError{Msg: fmt.Sprintf("invalid -n %d", cfg.N), Err: ErrInvalidN}
	}
	cfg.Path = pf.Arg(0)
	return cfg, nil
}

// Run averages cfg.Path into cfg.Output.
func Run(ctx context.Context, cfg Config, l log.Logger) error {
	if l == nil {
		l = log.NewNoop()
	}
	a, err := New(cfg.N, l)
	if err != nil {
		return &nthline.UsageError{Err: err}
	}
	ic := config.GetInputConfig(plugin.TypeInputFile).(*osio.FileInputConfig)
	ic.Path = cfg.Path
	in, err := ic.CreateInput()
	if err != nil {
		return err
	}
	var out plugin.Output
	if cfg.Output == nil {
		out, err = config.GetOutputConfig(plugin.TypeOutputStd).CreateOutput()
	} else {
		out = osio.NewWriterOutput(cfg.Output)
	}
	if err != nil {
		return err
	}
	if err := in.Open(); err != nil {
		return &nthline.FileOpenError{Path: cfg.Path, Err: err}
	}
	defer closeInput(in, cfg.Path, l)

	l.Debugf("averaging %s in blocks of %d", cfg.Path, cfg.N)
	p := pipeline.NewPipeline(in, out, l)
	s := pipeline.NewStage(l, a.Process)
	p.AddStages(&s)
	return p.Run(ctx)
}

func closeInput(in plugin.Input, path string, l log.Logger) {
	if err := in.Close(); err != nil {
		l.Warnf("closing %s: %v", path, err)
	}
}
