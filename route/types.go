// SPDX-License-Identifier: MIT
// Package: campusnav/route
//
// types.go — result types, the time policy and functional options.

package route

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
)

// MinutesPerKilometer is the walking pace behind EstimatedTime (5 km/h).
const MinutesPerKilometer = 12

// RouteStep is one location on a computed path.
type RouteStep struct {
	// Location is the location reached by this step.
	Location campus.Location `json:"location"`

	// DistanceFromPrevious is the leg length in meters (0 for the first step).
	DistanceFromPrevious int64 `json:"distanceFromPrevious"`

	// TotalDistance is the cumulative length from the route start in meters.
	TotalDistance int64 `json:"totalDistance"`
}

// NavigationResult is what the engine hands to every consumer.
// On failure Route is empty and TotalDistance/EstimatedTime are zero.
type NavigationResult struct {
	Route         []RouteStep `json:"route"`
	TotalDistance int64       `json:"totalDistance"`
	EstimatedTime int64       `json:"estimatedTime"` // minutes
	Success       bool        `json:"success"`
}

// Path returns the ordered location IDs of the route.
func (r NavigationResult) Path() []string {
	ids := make([]string, len(r.Route))
	for i, s := range r.Route {
		ids[i] = s.Location.ID
	}

	return ids
}

// failed is the single shape of an unsuccessful result.
func failed() NavigationResult {
	return NavigationResult{Route: []RouteStep{}}
}

// EstimateMinutes converts meters to walking minutes, rounded up:
// ceil(meters / 1000 * MinutesPerKilometer), computed in integers.
func EstimateMinutes(meters int64) int64 {
	if meters <= 0 {
		return 0
	}

	return (meters*MinutesPerKilometer + 999) / 1000
}

// Selection picks how the next closest unvisited location is chosen.
type Selection int

const (
	// SelectLinear scans all unvisited locations on every step.
	SelectLinear Selection = iota

	// SelectHeap keeps candidates in a binary min-heap.
	SelectHeap
)

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s {
	case SelectLinear:
		return "linear"
	case SelectHeap:
		return "heap"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// ParseSelection maps "linear" or "heap" to a Selection.
func ParseSelection(s string) (Selection, error) {
	switch s {
	case "", "linear":
		return SelectLinear, nil
	case "heap":
		return SelectHeap, nil
	default:
		return SelectLinear, fmt.Errorf("route: unknown selection %q", s)
	}
}

// Options configures an Engine.
//
// Selection – minimum-selection strategy (default SelectLinear).
type Options struct {
	Selection Selection
}

// Option is a functional option for New.
type Option func(*Options)

// WithSelection sets the minimum-selection strategy.
// Panics on values other than SelectLinear and SelectHeap.
func WithSelection(s Selection) Option {
	if s != SelectLinear && s != SelectHeap {
		panic(fmt.Sprintf("route: WithSelection(%d): unknown selection", int(s)))
	}
	return func(o *Options) {
		o.Selection = s
	}
}

// DefaultOptions returns the Options used when no Option is given.
func DefaultOptions() Options {
	return Options{Selection: SelectLinear}
}
