// SPDX-License-Identifier: MIT
// Package: campusnav/resolver
//
// resolver.go — Resolver construction, fragment resolution and the phrase
// patterns.
//
// Contract:
//   • Returned *campus.Location values are fresh copies; callers may keep them.
//   • Aliases naming a location that is not in the list are dropped by New.

package resolver

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/katalvlaran/campusnav/campus"
)

// phrasePatterns are tried in order; group 1 is "from", group 2 is "to".
var phrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:take me |go |navigate |route )?from (.+?) to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)(?:take me |go |navigate |route )?(.+?) to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)(?:how to get |directions )?from (.+?) to (.+?)(?:\.|$)`),
	regexp.MustCompile(`(?i)(?:show me the way |find route )?from (.+?) to (.+?)(?:\.|$)`),
}

// Resolver maps text to campus locations.
type Resolver struct {
	locations []campus.Location
	names     []string // normalized display names, parallel to locations
	byID      map[string]int
	aliases   []Alias
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithAliases replaces the default alias table. An empty table disables
// alias matching. Panics on an alias with an empty phrase or ID.
func WithAliases(aliases []Alias) Option {
	table := make([]Alias, 0, len(aliases))
	for i, a := range aliases {
		phrase := normalize(a.Phrase)
		if phrase == "" || a.LocationID == "" {
			panic(fmt.Sprintf("resolver: WithAliases: alias #%d is empty", i))
		}
		table = append(table, Alias{Phrase: phrase, LocationID: a.LocationID})
	}
	return func(r *Resolver) {
		r.aliases = table
	}
}

// New builds a Resolver over locations, kept in the given order.
func New(locations []campus.Location, opts ...Option) *Resolver {
	r := &Resolver{
		locations: make([]campus.Location, len(locations)),
		names:     make([]string, len(locations)),
		byID:      make(map[string]int, len(locations)),
		aliases:   defaultAliases,
	}
	copy(r.locations, locations)
	for i, l := range r.locations {
		r.names[i] = normalize(l.Name)
		if _, dup := r.byID[l.ID]; !dup {
			r.byID[l.ID] = i
		}
	}

	for _, opt := range opts {
		opt(r)
	}

	known := make([]Alias, 0, len(r.aliases))
	for _, a := range r.aliases {
		if _, ok := r.byID[a.LocationID]; ok {
			known = append(known, a)
		}
	}
	r.aliases = known

	return r
}

// ForGraph builds a Resolver over the locations of g.
func ForGraph(g *campus.Graph, opts ...Option) *Resolver {
	return New(g.Locations(), opts...)
}

// ResolveLocationMention maps a fragment of user text to a location, or nil.
func (r *Resolver) ResolveLocationMention(fragment string) *campus.Location {
	frag := normalize(fragment)
	if frag == "" {
		return nil
	}

	// 1) exact name
	for i, name := range r.names {
		if name != "" && name == frag {
			return r.at(i)
		}
	}

	// 2) substring either way
	for i, name := range r.names {
		if name == "" {
			continue
		}
		if strings.Contains(name, frag) || strings.Contains(frag, name) {
			return r.at(i)
		}
	}

	// 3) aliases
	for _, a := range r.aliases {
		if strings.Contains(frag, a.Phrase) {
			return r.at(r.byID[a.LocationID])
		}
	}

	return nil
}

// ParseNavigationPhrase extracts a start and an end location from text.
// Both are nil unless some pattern yields two resolvable fragments.
// start and end may be the same location; callers decide what that means.
func (r *Resolver) ParseNavigationPhrase(text string) (start, end *campus.Location) {
	for _, re := range phrasePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil || strings.TrimSpace(m[1]) == "" || strings.TrimSpace(m[2]) == "" {
			continue
		}

		from := r.ResolveLocationMention(m[1])
		to := r.ResolveLocationMention(m[2])
		if from != nil && to != nil {
			return from, to
		}
	}

	return nil, nil
}

// MentionedLocations returns, in configured order, every location whose
// display name appears in text (case-insensitive).
func (r *Resolver) MentionedLocations(text string) []campus.Location {
	lower := strings.ToLower(text)

	var out []campus.Location
	for i, l := range r.locations {
		name := strings.ToLower(l.Name)
		if name != "" && strings.Contains(lower, name) {
			out = append(out, r.locations[i])
		}
	}

	return out
}

func (r *Resolver) at(i int) *campus.Location {
	loc := r.locations[i]
	return &loc
}

// normalize lower-cases s and collapses runs of whitespace to one space.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
