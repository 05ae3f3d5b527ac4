// SPDX-License-Identifier: MIT
// Package: campusnav/navigator
//
// navigator.go — Navigator construction and the two request flows.
//
// Contract:
//   • Navigate and Ask never return an error; every outcome is a Reply Kind.
//   • A Navigator is immutable after New and safe for concurrent use.

package navigator

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/resolver"
	"github.com/katalvlaran/campusnav/route"
)

// Options configures a Navigator.
//
// Logger    – receives one debug record per reply (default: discard).
// Selection – route engine minimum-selection strategy.
// Aliases   – resolver alias table; nil keeps resolver.DefaultAliases.
type Options struct {
	Logger    *slog.Logger
	Selection route.Selection
	Aliases   []resolver.Alias
}

// Option is a functional option for New.
type Option func(*Options)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("navigator: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithSelection forwards s to the route engine. Panics on unknown values.
func WithSelection(s route.Selection) Option {
	route.WithSelection(s) // validate eagerly
	return func(o *Options) {
		o.Selection = s
	}
}

// WithAliases replaces the resolver's alias table. An empty, non-nil table
// disables alias matching. Panics on an alias with an empty phrase or ID.
func WithAliases(aliases []resolver.Alias) Option {
	resolver.WithAliases(aliases) // validate eagerly
	table := append(make([]resolver.Alias, 0, len(aliases)), aliases...)
	return func(o *Options) {
		o.Aliases = table
	}
}

// DefaultOptions returns the Options used when no Option is given.
func DefaultOptions() Options {
	return Options{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Selection: route.SelectLinear,
	}
}

// Navigator answers form-style and chat-style navigation requests over one
// campus graph.
type Navigator struct {
	g        *campus.Graph
	engine   *route.Engine
	resolver *resolver.Resolver
	logger   *slog.Logger
}

// New composes a route engine and a resolver over g. g must be non-nil.
func New(g *campus.Graph, opts ...Option) *Navigator {
	if g == nil {
		panic("navigator: New(nil graph)")
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var ropts []resolver.Option
	if cfg.Aliases != nil {
		ropts = append(ropts, resolver.WithAliases(cfg.Aliases))
	}

	return &Navigator{
		g:        g,
		engine:   route.New(g, route.WithSelection(cfg.Selection)),
		resolver: resolver.ForGraph(g, ropts...),
		logger:   cfg.Logger,
	}
}

// Graph returns the campus graph the Navigator serves.
func (n *Navigator) Graph() *campus.Graph { return n.g }

// Engine returns the underlying route engine.
func (n *Navigator) Engine() *route.Engine { return n.engine }

// Resolver returns the underlying location resolver.
func (n *Navigator) Resolver() *resolver.Resolver { return n.resolver }

// Navigate handles an explicit pair of location IDs, as picked from a list.
func (n *Navigator) Navigate(startID, endID string) Reply {
	startID, endID = strings.TrimSpace(startID), strings.TrimSpace(endID)

	var reply Reply
	switch {
	case startID == "" || endID == "":
		reply = Reply{Kind: KindMissingInput, Message: msgMissingSelection}
	case startID == endID:
		reply = Reply{Kind: KindSameLocation, Message: msgSameSelection, Start: n.lookup(startID), End: n.lookup(endID)}
	default:
		reply = n.compute(n.lookup(startID), n.lookup(endID), startID, endID, msgNoRouteSelection)
	}

	n.log("navigate", reply)
	return reply
}

// Ask handles a free-text request such as "take me from gate 1 to the food court".
//
// Implementation:
//   - Stage 1: Blank text → KindMissingInput.
//   - Stage 2: ParseNavigationPhrase; two resolved ends go to the engine
//     (same location → KindSameLocation).
//   - Stage 3: Otherwise classify the locations mentioned anywhere in the
//     text: none, one or many.
func (n *Navigator) Ask(text string) Reply {
	var reply Reply
	if strings.TrimSpace(text) == "" {
		reply = Reply{Kind: KindMissingInput, Message: msgMissingText}
		n.log("ask", reply)
		return reply
	}

	start, end := n.resolver.ParseNavigationPhrase(text)
	switch {
	case start != nil && end != nil && start.ID == end.ID:
		reply = Reply{Kind: KindSameLocation, Message: msgSameText, Start: start, End: end}
	case start != nil && end != nil:
		reply = n.compute(start, end, start.ID, end.ID, msgNoRouteText)
	default:
		reply = n.mentions(text)
	}

	n.log("ask", reply)
	return reply
}

func (n *Navigator) compute(start, end *campus.Location, startID, endID, noRoute string) Reply {
	res := n.engine.ComputeRoute(startID, endID)
	if !res.Success {
		return Reply{Kind: KindNoRoute, Message: noRoute, Start: start, End: end, Result: &res}
	}

	return Reply{Kind: KindRoute, Message: routeMessage(res), Start: start, End: end, Result: &res}
}

func (n *Navigator) mentions(text string) Reply {
	found := n.resolver.MentionedLocations(text)
	switch len(found) {
	case 0:
		return Reply{Kind: KindNoMatch, Message: msgNoMatch}
	case 1:
		return Reply{Kind: KindOneMention, Message: oneMentionMessage(found[0].Name), Mentioned: found}
	default:
		names := make([]string, len(found))
		for i, l := range found {
			names[i] = l.Name
		}
		return Reply{Kind: KindManyMentions, Message: manyMentionsMessage(strings.Join(names, ", ")), Mentioned: found}
	}
}

// lookup returns a copy of the location with id, or nil.
func (n *Navigator) lookup(id string) *campus.Location {
	l, ok := n.g.Location(id)
	if !ok {
		return nil
	}

	return &l
}

func (n *Navigator) log(flow string, r Reply) {
	attrs := []any{"flow", flow, "kind", r.Kind.String()}
	if r.Start != nil && r.End != nil {
		attrs = append(attrs, "from", r.Start.ID, "to", r.End.ID)
	}
	if r.Result != nil && r.Result.Success {
		attrs = append(attrs,
			"distance_m", r.Result.TotalDistance,
			"minutes", r.Result.EstimatedTime,
			"steps", len(r.Result.Route),
		)
	}
	n.logger.Debug("navigator reply", attrs...)
}

// Directions renders a successful result as turn-by-turn lines:
//
//	Start at Main Gate 1
//	Walk 180 m to Main Gate 2
//	...
//	Arrive at Food Court: 595 m total, about 8 min
//
// A failed result yields nil.
func Directions(res route.NavigationResult) []string {
	if !res.Success || len(res.Route) == 0 {
		return nil
	}

	lines := make([]string, 0, len(res.Route)+1)
	lines = append(lines, fmt.Sprintf("Start at %s", res.Route[0].Location.Name))
	for _, s := range res.Route[1:] {
		lines = append(lines, fmt.Sprintf("Walk %d m to %s", s.DistanceFromPrevious, s.Location.Name))
	}
	last := res.Route[len(res.Route)-1]
	lines = append(lines, fmt.Sprintf("Arrive at %s: %d m total, about %d min",
		last.Location.Name, res.TotalDistance, res.EstimatedTime))

	return lines
}
