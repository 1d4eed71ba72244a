package nthline

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/pflag"
)

// Config details for nthline.
type Config struct {
	Path   string
	Stride int
	// Follow keeps reading lines appended to Path until the run is cancelled.
	Follow bool
	// Poll watches Path by polling instead of inotify. Only used with Follow.
	Poll    bool
	Verbose bool
	// Output receives the selected lines. Defaults to stdout.
	Output io.Writer
}

const usageHeader = `Usage: nthline [flags] <inputPath> <stride>

Writes the first two lines of inputPath, then every stride-th line after them.

Flags:
`

func newFlagSet(cfg *Config) *pflag.FlagSet {
	pf := pflag.NewFlagSet(`nthline`, pflag.ContinueOnError)
	pf.SetOutput(io.Discard)
	pf.BoolVarP(&cfg.Follow, "follow", "f", false, "Keep reading lines appended to the input until interrupted.")
	pf.BoolVar(&cfg.Poll, "poll", false, "Poll the input for changes instead of using inotify (with --follow).")
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
		return Config{}, &UsageError{Err: err}
	}
	if pf.NArg() != 2 {
		return Config{}, &UsageError{Msg: fmt.Sprintf("expected <inputPath> <stride>, got %d argument(s)", pf.NArg())}
	}
	cfg.Path = pf.Arg(0)
	if cfg.Path == "" {
		return Config{}, &UsageError{Msg: "empty inputPath"}
	}
	stride, err := strconv.Atoi(pf.Arg(1))
	if err != nil || stride <= 0 {
		return Config{}, &UsageError{Msg: fmt.Sprintf("invalid stride %q", pf.Arg(1)), Err: ErrInvalidStride}
	}
	cfg.Stride = stride
	return cfg, nil
}
