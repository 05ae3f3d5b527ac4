// SPDX-License-Identifier: MIT
// Package: campusnav/campus
//
// graph.go — Graph construction (validation + bidirectional closure) and the
// read-only query API used by the route engine and the resolver.
//
// Contract:
//   • New copies its inputs; later changes to the caller's slices do not leak in.
//   • adjacency[from][to] = shortest configured distance, mirrored both ways.
//   • Query methods never return internal slices.

package campus

import (
	"fmt"
	"sort"
)

// Graph is the immutable Campus Graph.
type Graph struct {
	locations   []Location                  // configured order
	index       map[string]int              // ID → position in locations
	connections []PathConnection            // as configured, validated
	adjacency   map[string]map[string]int64 // closure: from → to → meters
}

// New validates locations and connections and builds the bidirectional closure.
//
// Implementation:
//   - Stage 1: Index locations, rejecting empty and duplicate IDs.
//   - Stage 2: Validate each connection (endpoints known, no loop, distance > 0).
//   - Stage 3: Insert a→b and b→a, keeping the shorter distance on repeats.
//
// Returns the first violation found, wrapped with its position.
// Complexity: O(V + E) time and space.
func New(locations []Location, connections []PathConnection) (*Graph, error) {
	if len(locations) == 0 {
		return nil, ErrNoLocations
	}

	g := &Graph{
		locations:   make([]Location, 0, len(locations)),
		index:       make(map[string]int, len(locations)),
		connections: make([]PathConnection, 0, len(connections)),
		adjacency:   make(map[string]map[string]int64, len(locations)),
	}

	for i, loc := range locations {
		if loc.ID == "" {
			return nil, fmt.Errorf("location #%d: %w", i, ErrEmptyLocationID)
		}
		if _, dup := g.index[loc.ID]; dup {
			return nil, fmt.Errorf("location #%d %q: %w", i, loc.ID, ErrDuplicateLocation)
		}
		g.index[loc.ID] = len(g.locations)
		g.locations = append(g.locations, loc)
		g.adjacency[loc.ID] = make(map[string]int64)
	}

	for i, c := range connections {
		if err := g.validateConnection(c); err != nil {
			return nil, fmt.Errorf("connection #%d %s→%s: %w", i, c.From, c.To, err)
		}
		g.connections = append(g.connections, c)
		g.link(c.From, c.To, c.Distance)
		g.link(c.To, c.From, c.Distance)
	}

	return g, nil
}

func (g *Graph) validateConnection(c PathConnection) error {
	if c.From == "" || c.To == "" {
		return ErrEmptyLocationID
	}
	if !g.HasLocation(c.From) {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, c.From)
	}
	if !g.HasLocation(c.To) {
		return fmt.Errorf("%w: %q", ErrUnknownLocation, c.To)
	}
	if c.From == c.To {
		return ErrSelfLoop
	}
	if c.Distance <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadDistance, c.Distance)
	}

	return nil
}

// link records from→to, keeping the shorter of parallel segments.
func (g *Graph) link(from, to string, meters int64) {
	if cur, ok := g.adjacency[from][to]; ok && cur <= meters {
		return
	}
	g.adjacency[from][to] = meters
}

// Locations returns a copy of all locations in configured order.
func (g *Graph) Locations() []Location {
	out := make([]Location, len(g.locations))
	copy(out, g.locations)

	return out
}

// LocationCount returns the number of locations.
func (g *Graph) LocationCount() int { return len(g.locations) }

// Location looks up a location by ID.
func (g *Graph) Location(id string) (Location, bool) {
	i, ok := g.index[id]
	if !ok {
		return Location{}, false
	}

	return g.locations[i], true
}

// HasLocation reports whether id names a location.
func (g *Graph) HasLocation(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Connections returns a copy of the configured (one-way listed) connections.
func (g *Graph) Connections() []PathConnection {
	out := make([]PathConnection, len(g.connections))
	copy(out, g.connections)

	return out
}

// Neighbors returns the closure edges leaving id, sorted by target ID.
// Unknown IDs have no neighbors.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id string) []PathConnection {
	targets := g.adjacency[id]
	if len(targets) == 0 {
		return nil
	}

	out := make([]PathConnection, 0, len(targets))
	for to, d := range targets {
		out = append(out, PathConnection{From: id, To: to, Distance: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// Distance returns the weight of the closure edge from→to, if one exists.
func (g *Graph) Distance(from, to string) (int64, bool) {
	d, ok := g.adjacency[from][to]
	return d, ok
}

// Closure returns every directed edge of the bidirectional closure,
// sorted by (From, To).
func (g *Graph) Closure() []PathConnection {
	var out []PathConnection
	for _, loc := range g.locations {
		out = append(out, g.Neighbors(loc.ID)...)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
