// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/katalvlaran/campusroute/builder"
	"github.com/katalvlaran/campusroute/core"
	"github.com/katalvlaran/campusroute/internal/config"
	"github.com/katalvlaran/campusroute/internal/logging"
	"github.com/katalvlaran/campusroute/internal/metrics"
	"github.com/katalvlaran/campusroute/internal/server"
	"github.com/katalvlaran/campusroute/locations"
	"github.com/katalvlaran/campusroute/route"
	"github.com/katalvlaran/campusroute/streetnet"
)

// Messages shown to users for the two expected query failures.
const (
	msgInvalidLocation = "invalid location"
	msgNoPath          = "no path found"
)

var errNoNetwork = errors.New("no street network: set -network or CAMPUSROUTE_NETWORK")

type app struct {
	cfg *config.Config
	log *zap.Logger
	out io.Writer
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "route":
		return a.route(ctx, rest)
	case "compare":
		return a.compare(ctx, rest)
	case "locations":
		return a.locations(rest)
	case "serve":
		return a.serve(ctx, rest)
	case "convert":
		return a.convert(rest)
	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
}

func (a *app) table() (*locations.Table, error) {
	if a.cfg.Locations == "" {
		return locations.Default(), nil
	}
	return locations.Load(a.cfg.Locations)
}

// network loads the street network, preferring an existing gob cache and
// writing one after a JSON load when a cache path is configured.
func (a *app) network() (*streetnet.Network, error) {
	if c := a.cfg.Cache; c != "" {
		if _, err := os.Stat(c); err == nil {
			a.log.Debug("loading street network cache", zap.String("path", c))
			return streetnet.Load(c)
		}
	}
	if a.cfg.Network == "" {
		return nil, errNoNetwork
	}
	net, err := streetnet.Load(a.cfg.Network)
	if err != nil {
		return nil, err
	}
	if c := a.cfg.Cache; c != "" && strings.EqualFold(filepath.Ext(a.cfg.Network), ".json") {
		if err := streetnet.SaveGob(c, net); err != nil {
			a.log.Warn("failed to write street network cache", zap.String("path", c), zap.Error(err))
		} else {
			a.log.Info("street network cache written", zap.String("path", c))
		}
	}

	return net, nil
}

// graph builds the frozen walking graph and returns it with its table.
func (a *app) graph() (*core.Graph, *locations.Table, error) {
	tbl, err := a.table()
	if err != nil {
		return nil, nil, err
	}
	net, err := a.network()
	if err != nil {
		return nil, nil, err
	}

	began := time.Now()
	g, rep, err := builder.Build(net, tbl,
		builder.WithPadding(a.cfg.Padding),
		builder.WithLogger(logging.Logr(a.log)),
	)
	if err != nil {
		return nil, nil, err
	}
	a.log.Info("graph built",
		zap.Int("vertices", rep.Graph.Vertices),
		zap.Int("edges", rep.Graph.Edges),
		zap.Int("locations", rep.Locations),
		zap.Int("links", len(rep.Links)),
		zap.Duration("took", time.Since(began)))
	if len(rep.Unreachable) > 0 {
		a.log.Warn("some locations are cut off", zap.Strings("unreachable", rep.Unreachable))
	}

	return g, tbl, nil
}

// endpoints resolves two positional location arguments.
func endpoints(tbl *locations.Table, args []string) (string, string, error) {
	if len(args) != 2 {
		return "", "", fmt.Errorf("expected <from> <to>: %w", errUsage)
	}
	from, okFrom := tbl.Resolve(args[0])
	to, okTo := tbl.Resolve(args[1])
	if !okFrom || !okTo {
		return "", "", errors.New(msgInvalidLocation)
	}

	return from, to, nil
}

func (a *app) routeOptions() []route.Option {
	return []route.Option{
		route.WithLogger(logging.Logr(a.log)),
		route.WithWalkingSpeed(a.cfg.WalkingSpeed),
	}
}

func (a *app) route(ctx context.Context, args []string) error {
	g, tbl, err := a.graph()
	if err != nil {
		return err
	}
	from, to, err := endpoints(tbl, args)
	if err != nil {
		return err
	}

	r, err := route.Find(ctx, g, a.cfg.Algorithm, from, to, a.routeOptions()...)
	if err != nil {
		return err
	}
	if !r.Result.Found {
		return errors.New(msgNoPath)
	}
	printRoute(a.out, g, r)

	return nil
}

func (a *app) compare(ctx context.Context, args []string) error {
	g, tbl, err := a.graph()
	if err != nil {
		return err
	}
	from, to, err := endpoints(tbl, args)
	if err != nil {
		return err
	}

	rs, err := route.Compare(ctx, g, from, to, a.routeOptions()...)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s → %s\n", from, to)
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tHOPS\tDISTANCE\tWALKING\tELAPSED")
	for _, r := range rs {
		if !r.Result.Found {
			fmt.Fprintf(tw, "%s\t-\t%s\t-\t%s\n", r.Algorithm, msgNoPath, r.Elapsed)
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.Algorithm, r.Result.Hops(), distance(r), walking(r), r.Elapsed)
	}

	return tw.Flush()
}

func (a *app) locations(args []string) error {
	fs := flag.NewFlagSet("locations", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	format := fs.String("format", "text", "output format: text|yaml")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%v: %w", err, errUsage)
	}
	tbl, err := a.table()
	if err != nil {
		return err
	}

	switch *format {
	case "text":
		for i, n := range tbl.Names() {
			fmt.Fprintf(a.out, "%2d. %s\n", i+1, n)
		}
		return nil
	case "yaml":
		return locations.Encode(a.out, tbl)
	default:
		return fmt.Errorf("unknown format %q: %w", *format, errUsage)
	}
}

func (a *app) serve(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("serve takes no arguments: %w", errUsage)
	}
	g, tbl, err := a.graph()
	if err != nil {
		return err
	}
	srv := server.New(g, tbl,
		server.WithLogger(a.log),
		server.WithMetrics(metrics.NewCollector()),
		server.WithDefaultAlgorithm(a.cfg.Algorithm),
		server.WithWalkingSpeed(a.cfg.WalkingSpeed),
	)

	return srv.Run(ctx, a.cfg.Addr)
}

func (a *app) convert(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("expected <in.json> <out.gob>: %w", errUsage)
	}
	st, err := streetnet.Convert(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "wrote %s: %d nodes, %d edges, %d named\n", args[1], st.Nodes, st.Edges, st.Named)

	return nil
}

func printRoute(w io.Writer, g *core.Graph, r route.Route) {
	labels := lo.Map(r.Result.Path, func(id string, _ int) string { return label(g, id) })
	fmt.Fprintf(w, "%s\n", strings.Join(labels, " → "))
	fmt.Fprintf(w, "algorithm: %s\n", r.Algorithm)
	fmt.Fprintf(w, "hops:      %d\n", r.Result.Hops())
	fmt.Fprintf(w, "distance:  %s\n", distance(r))
	fmt.Fprintf(w, "walking:   %s\n", walking(r))
	fmt.Fprintf(w, "elapsed:   %s\n", r.Elapsed)
}

// label prefers a vertex's display name and falls back to its id.
func label(g *core.Graph, id string) string {
	if v, ok := g.Vertex(id); ok && v.Name != "" && v.Name != id {
		return fmt.Sprintf("%s (%s)", v.Name, id)
	}
	return id
}

func distance(r route.Route) string {
	d, ok := r.Result.Distance()
	if !ok {
		return "n/a"
	}
	return fmt.Sprintf("%.1f m", d)
}

func walking(r route.Route) string {
	t, ok := r.WalkingTime()
	if !ok {
		return "n/a"
	}
	return t.Round(time.Second).String()
}
