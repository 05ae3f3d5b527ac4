// SPDX-License-Identifier: MIT

// Command campusnav answers campus walking-route questions from the command
// line or over HTTP.
//
// Usage:
//
//	campusnav [-data file] [-selection linear|heap] <command> [args]
//
// Commands:
//
//	serve                start the HTTP API (SERVER_HOST, SERVER_PORT, ...)
//	route <from> <to>    print turn-by-turn directions between two location IDs
//	ask <text...>        answer a free-text request such as "from gate 1 to food court"
//	locations            list location IDs and names
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/internal/config"
	"github.com/katalvlaran/campusnav/internal/logging"
	"github.com/katalvlaran/campusnav/navigator"
	"github.com/katalvlaran/campusnav/route"
)

var errUsage = errors.New("usage: campusnav [-data file] [-selection linear|heap] serve|route <from> <to>|ask <text...>|locations")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "campusnav: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fs := flag.NewFlagSet("campusnav", flag.ContinueOnError)
	fs.SetOutput(stderr)
	data := fs.String("data", cfg.Campus.DataPath, "campus data file (.yaml, .yml or .osm); empty uses the built-in campus")
	selection := fs.String("selection", cfg.Campus.Selection.String(), "minimum selection strategy: linear or heap")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	sel, err := route.ParseSelection(*selection)
	if err != nil {
		return err
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]

	// CLI output goes to stdout, so logs go to stderr unless serving.
	logger := logging.NewWriter(stderr, cfg.Logging)
	if cmd == "serve" {
		logger = logging.New(cfg.Logging)
	}

	g, err := loadCampus(*data)
	if err != nil {
		return err
	}
	logger.Debug("campus loaded",
		"source", sourceName(*data),
		"locations", g.LocationCount(),
		"connections", len(g.Connections()),
		"selection", sel.String(),
	)

	nav := navigator.New(g, navigator.WithLogger(logger), navigator.WithSelection(sel))

	switch cmd {
	case "serve":
		return serve(ctx, cfg, logger, nav)
	case "route":
		if len(rest) != 2 {
			return errUsage
		}
		return printReply(stdout, nav.Navigate(rest[0], rest[1]), true)
	case "ask":
		if len(rest) == 0 {
			return errUsage
		}
		return printReply(stdout, nav.Ask(strings.Join(rest, " ")), false)
	case "locations":
		return printLocations(stdout, g)
	default:
		return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
	}
}

func loadCampus(path string) (*campus.Graph, error) {
	if path == "" {
		return campus.Reference(), nil
	}

	return campus.LoadFile(path)
}

func sourceName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

// printReply writes directions for a route, or the reply message otherwise.
// With strict set a non-route reply is also returned as an error.
func printReply(w io.Writer, r navigator.Reply, strict bool) error {
	if r.OK() {
		for _, line := range navigator.Directions(*r.Result) {
			fmt.Fprintln(w, line)
		}
		return nil
	}

	if strict {
		return errors.New(r.Message)
	}
	fmt.Fprintln(w, r.Message)
	return nil
}

func printLocations(w io.Writer, g *campus.Graph) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tNEIGHBORS")
	for _, l := range g.Locations() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", l.ID, l.Name, len(g.Neighbors(l.ID)))
	}
	return tw.Flush()
}
