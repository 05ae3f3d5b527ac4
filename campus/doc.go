// SPDX-License-Identifier: MIT

// Package campus holds the static Campus Graph: named locations with
// geo-coordinates and the walkable path segments between them.
//
// A Graph is built once from reference data and never mutated afterwards.
// The configured connection list names each physical path once; the Graph
// materializes its bidirectional closure, so for every configured (a,b,d)
// both a→b and b→a exist with weight d.
//
// Construction rules (enforced by New, reported as wrapped sentinels):
//
//	– every location ID is non-empty and unique          (ErrEmptyLocationID, ErrDuplicateLocation)
//	– every connection endpoint names a known location   (ErrUnknownLocation)
//	– no self-loops                                      (ErrSelfLoop)
//	– distances are strictly positive meters             (ErrBadDistance)
//	– at least one location                              (ErrNoLocations)
//
// Parallel connections for the same pair collapse to the shortest distance,
// which keeps the closure a simple symmetric weighted graph.
//
// Data sources:
//
//	– Reference()  the embedded reference campus (data/reference.yaml)
//	– LoadYAML / LoadFile   a YAML document with the same layout
//	– LoadOSM      an OpenStreetMap XML extract (nodes tagged campus:id)
//
// Determinism:
//
//	– Locations() keeps configured order (the resolver relies on it).
//	– Neighbors() and Closure() are sorted by vertex ID.
//
// Concurrency:
//
//	A Graph is read-only after New returns, so it is safe for concurrent use
//	without locking.
package campus
