package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jbvmio/nthline"
	"github.com/jbvmio/nthline/log"
	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := nthline.ConfigFromArgs(args)
	switch {
	case err == pflag.ErrHelp:
		fmt.Fprint(os.Stderr, nthline.Usage())
		return nthline.ExitOK
	case err != nil:
		fmt.Fprintln(os.Stderr, "ERR:", err)
		fmt.Fprint(os.Stderr, nthline.Usage())
		return nthline.ExitCode(err)
	}
	l, sync, err := log.NewZap(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERR:", err)
		return nthline.ExitIO
	}
	defer sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	// Only a followed input ends by signal; a plain read ends at EOF.
	if cfg.Follow {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)
		go func() {
			select {
			case s := <-sigChan:
				l.Debugf("received %v, stopping", s)
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	err = nthline.Run(ctx, cfg, l)
	if err != nil {
		l.Errorf("%v", err)
	}
	return nthline.ExitCode(err)
}
