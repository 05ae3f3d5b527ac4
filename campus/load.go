// SPDX-License-Identifier: MIT
// Package: campusnav/campus
//
// load.go — YAML data sources and the embedded reference campus.
//
// Layout:
//
//	locations:
//	  - {id: gate1, name: Main Gate 1, coordinates: {lat: 13.22, lon: 77.75}}
//	connections:
//	  - {from: gate1, to: gate2, distance: 180}

package campus

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/reference.yaml
var referenceYAML []byte

// Dataset is the serialized form of a campus.
type Dataset struct {
	Locations   []Location       `yaml:"locations"`
	Connections []PathConnection `yaml:"connections"`
}

// LoadYAML decodes a Dataset from r and builds a Graph from it.
// Unknown fields are rejected so typos in data files surface at startup.
func LoadYAML(r io.Reader) (*Graph, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoLocations
		}
		return nil, fmt.Errorf("campus: decode yaml: %w", err)
	}

	return New(ds.Locations, ds.Connections)
}

// LoadFile builds a Graph from a file on disk. Files ending in .osm are read
// as OpenStreetMap XML; everything else is read as YAML.
func LoadFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("campus: open %s: %w", path, err)
	}
	defer f.Close()

	var g *Graph
	if strings.EqualFold(filepath.Ext(path), ".osm") {
		g, err = LoadOSM(f)
	} else {
		g, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

var reference = sync.OnceValues(func() (*Graph, error) {
	return LoadYAML(strings.NewReader(string(referenceYAML)))
})

// Reference returns the embedded reference campus. The Graph is shared;
// it is immutable, so sharing is safe.
// Panics if the embedded data is invalid, which is a build defect.
func Reference() *Graph {
	g, err := reference()
	if err != nil {
		panic("campus: embedded reference data: " + err.Error())
	}

	return g
}
