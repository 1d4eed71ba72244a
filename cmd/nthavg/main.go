package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jbvmio/nthline"
	"github.com/jbvmio/nthline/average"
	"github.com/jbvmio/nthline/log"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := average.ConfigFromArgs(args)
	switch {
	case err == pflag.ErrHelp:
		fmt.Fprint(os.Stderr, average.Usage())
		return nthline.ExitOK
	case err != nil:
		fmt.Fprintln(os.Stderr, "ERR:", err)
		fmt.Fprint(os.Stderr, average.Usage())
		return nthline.ExitCode(err)
	}
	l, sync, err := log.NewZap(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERR:", err)
		return nthline.ExitIO
	}
	defer sync()

	err = average.Run(context.Background(), cfg, l)
	if err != nil {
		l.Errorf("%v", err)
	}
	return nthline.ExitCode(err)
}
