// SPDX-License-Identifier: MIT

// Package resolver turns free text such as "take me from gate 1 to the food
// court" into two canonical campus locations.
//
// Two layers:
//
//	ParseNavigationPhrase – split the text into a "from" and a "to" fragment
//	                        with an ordered list of phrase patterns.
//	ResolveLocationMention – map one fragment to a location.
//
// Phrase patterns (case-insensitive, tried in order):
//
//  1. [take me|go|navigate|route] from X to Y
//  2. [take me|go|navigate|route] X to Y
//  3. [how to get|directions] from X to Y
//  4. [show me the way|find route] from X to Y
//
// Y runs up to the first '.' or the end of the text. The first pattern that
// matches AND whose two fragments both resolve wins. A pattern that matches
// but leaves a fragment unresolved does not stop the search.
//
// Fragment resolution (first rule that hits wins, locations in configured order):
//
//  1. exact case-insensitive name match
//  2. case-insensitive substring, either direction
//  3. alias table, alias contained in the fragment (table order)
//  4. nil
//
// Fragments are lower-cased and whitespace-collapsed before matching. A blank
// fragment never resolves.
//
// MentionedLocations is the weaker fallback for callers: every location whose
// display name occurs anywhere in the raw text.
//
// A Resolver is immutable and safe for concurrent use.
package resolver
