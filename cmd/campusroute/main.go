// SPDX-License-Identifier: MIT

// Command campusroute finds walking routes between campus locations.
//
// Usage:
//
//	campusroute [global flags] route <from> <to>
//	campusroute [global flags] compare <from> <to>
//	campusroute [global flags] locations [-format text|yaml]
//	campusroute [global flags] serve
//	campusroute [global flags] convert <in.json> <out.gob>
//
// Global flags can also be set with CAMPUSROUTE_* environment variables, a
// .env file or a YAML file named by -config. Run with -h for the list.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/katalvlaran/campusroute/internal/config"
	"github.com/katalvlaran/campusroute/internal/logging"
)

// errUsage marks command-line mistakes; usage has already been printed.
var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		printUsage(stderr)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "campusroute: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "campusroute: failed to init logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	a := &app{cfg: cfg, log: logger, out: stdout}
	if err := a.dispatch(ctx, cfg.Args); err != nil {
		logger.Debug("command failed", zap.Error(err))
		switch {
		case !errors.Is(err, errUsage):
			fmt.Fprintf(stderr, "campusroute: %v\n", err)
		case err.Error() != errUsage.Error():
			// Wrapped usage errors carry a detail worth showing.
			fmt.Fprintf(stderr, "campusroute: %v\n", err)
			printUsage(stderr)
		default:
			printUsage(stderr)
		}
		return 1
	}

	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `usage: campusroute [global flags] <command> [args]

commands:
  route <from> <to>            walking route with the -algorithm engine
  compare <from> <to>          run bfs, dfs and dijkstra side by side
  locations [-format text|yaml] list location names in table order
  serve                        start the HTTP API on -addr
  convert <in.json> <out.gob>  convert a street network to a gob cache
`)
}
