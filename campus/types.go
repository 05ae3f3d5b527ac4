// SPDX-License-Identifier: MIT
// Package: campusnav/campus
//
// types.go — Location, Coordinates, PathConnection and sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • New wraps sentinels with the offending index/IDs via %w.

package campus

import "errors"

// Sentinel errors returned while building a Graph.
var (
	// ErrNoLocations indicates that the location list is empty.
	ErrNoLocations = errors.New("campus: no locations")

	// ErrEmptyLocationID indicates a location or connection endpoint with an empty ID.
	ErrEmptyLocationID = errors.New("campus: location ID is empty")

	// ErrDuplicateLocation indicates that two locations share an ID.
	ErrDuplicateLocation = errors.New("campus: duplicate location ID")

	// ErrUnknownLocation indicates a connection endpoint that names no location.
	ErrUnknownLocation = errors.New("campus: unknown location")

	// ErrSelfLoop indicates a connection from a location to itself.
	ErrSelfLoop = errors.New("campus: self-loop connection")

	// ErrBadDistance indicates a connection whose distance is not strictly positive.
	ErrBadDistance = errors.New("campus: distance must be positive")
)

// Coordinates is a WGS84 position in decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Location is a named point on campus.
//
// ID is the canonical key; Name is what people type and read.
type Location struct {
	// ID uniquely identifies the location (e.g. "food_court").
	ID string `json:"id" yaml:"id"`

	// Name is the display name (e.g. "Food Court").
	Name string `json:"name" yaml:"name"`

	// Coordinates is where the location sits on the map.
	Coordinates Coordinates `json:"coordinates" yaml:"coordinates"`
}

// PathConnection is a walkable segment between two locations.
// Distance is measured in whole meters.
type PathConnection struct {
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Distance int64  `json:"distance" yaml:"distance"`
}

// Reverse returns the same segment walked the other way.
func (c PathConnection) Reverse() PathConnection {
	return PathConnection{From: c.To, To: c.From, Distance: c.Distance}
}
