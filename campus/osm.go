// SPDX-License-Identifier: MIT
// Package: campusnav/campus
//
// osm.go — build a Graph from an OpenStreetMap XML extract.
//
// Mapping:
//   • A node carrying both `campus:id` and `name` tags is a Location.
//   • A way is split at every campus node it passes through; each piece
//     between two consecutive campus nodes is one PathConnection whose length
//     is the sum of haversine legs over all its nodes, rounded to meters.
//   • A `distance` tag on a way overrides the computed length, but only when
//     the way yields exactly one connection.
//   • Ways touching fewer than two campus nodes are ignored.

package campus

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/paulmach/osm"
)

// OSM tag keys understood by LoadOSM.
const (
	TagCampusID = "campus:id"
	TagName     = "name"
	TagDistance = "distance"
)

// LoadOSM decodes an OSM XML document from r and builds a Graph from it.
func LoadOSM(r io.Reader) (*Graph, error) {
	var doc osm.OSM
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("campus: decode osm: %w", err)
	}

	nodes := make(map[osm.NodeID]*osm.Node, len(doc.Nodes))
	campusIDs := make(map[osm.NodeID]string)
	var locations []Location
	for _, n := range doc.Nodes {
		nodes[n.ID] = n

		id, name := n.Tags.Find(TagCampusID), n.Tags.Find(TagName)
		if id == "" || name == "" {
			continue
		}
		campusIDs[n.ID] = id
		locations = append(locations, Location{
			ID:          id,
			Name:        name,
			Coordinates: Coordinates{Lat: n.Lat, Lon: n.Lon},
		})
	}

	var connections []PathConnection
	for _, w := range doc.Ways {
		pieces, err := splitWay(w, nodes, campusIDs)
		if err != nil {
			return nil, err
		}
		if len(pieces) == 1 {
			if v := w.Tags.Find(TagDistance); v != "" {
				d, err := strconv.ParseInt(v, 10, 64)
				if err != nil {
					return nil, fmt.Errorf("campus: way %d: %s=%q: %w", w.ID, TagDistance, v, ErrBadDistance)
				}
				pieces[0].Distance = d
			}
		}
		connections = append(connections, pieces...)
	}

	return New(locations, connections)
}

// splitWay cuts a way into campus-to-campus segments.
func splitWay(w *osm.Way, nodes map[osm.NodeID]*osm.Node, campusIDs map[osm.NodeID]string) ([]PathConnection, error) {
	var (
		out    []PathConnection
		from   string
		length float64
		prev   *osm.Node
	)
	for _, wn := range w.Nodes {
		n, ok := nodes[wn.ID]
		if !ok {
			return nil, fmt.Errorf("campus: way %d references node %d: %w", w.ID, wn.ID, ErrUnknownLocation)
		}
		if prev != nil {
			length += Haversine(
				Coordinates{Lat: prev.Lat, Lon: prev.Lon},
				Coordinates{Lat: n.Lat, Lon: n.Lon},
			)
		}
		prev = n

		id, isCampus := campusIDs[n.ID]
		if !isCampus {
			continue
		}
		if from != "" && from != id {
			out = append(out, PathConnection{From: from, To: id, Distance: roundMeters(length)})
		}
		from, length = id, 0
	}

	return out, nil
}

// roundMeters rounds to whole meters, never below one.
func roundMeters(m float64) int64 {
	return int64(math.Max(1, math.Round(m)))
}
