// SPDX-License-Identifier: MIT

package navigator

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/route"
)

// Kind classifies a Reply for the caller's UI.
type Kind int

const (
	// KindRoute carries a successful NavigationResult.
	KindRoute Kind = iota

	// KindMissingInput means a start, an end or the whole text was blank.
	KindMissingInput

	// KindSameLocation means both ends name one location.
	KindSameLocation

	// KindNoRoute means the engine found no path.
	KindNoRoute

	// KindNoMatch means the text names no campus location at all.
	KindNoMatch

	// KindOneMention means the text names exactly one location.
	KindOneMention

	// KindManyMentions means the text names several locations without a
	// recognizable "from ... to ..." shape.
	KindManyMentions
)

var kindNames = [...]string{
	KindRoute:        "route",
	KindMissingInput: "missing_input",
	KindSameLocation: "same_location",
	KindNoRoute:      "no_route",
	KindNoMatch:      "no_match",
	KindOneMention:   "one_mention",
	KindManyMentions: "many_mentions",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText encodes the kind by name so JSON payloads stay readable.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Reply is the outcome of one Navigate or Ask call.
//
// Result is set for KindRoute and KindNoRoute. Start and End are set whenever
// both ends were known. Mentioned is set for KindOneMention and
// KindManyMentions.
type Reply struct {
	Kind      Kind                    `json:"kind"`
	Message   string                  `json:"message"`
	Start     *campus.Location        `json:"start,omitempty"`
	End       *campus.Location        `json:"end,omitempty"`
	Result    *route.NavigationResult `json:"result,omitempty"`
	Mentioned []campus.Location       `json:"mentioned,omitempty"`
}

// OK reports whether the reply carries a route.
func (r Reply) OK() bool { return r.Kind == KindRoute }

const (
	msgMissingSelection = "Please select both start and end locations"
	msgMissingText      = "Please tell me where you want to go, for example 'Take me from Main Gate 1 to Food Court'."
	msgSameSelection    = "Start and end locations cannot be the same"
	msgSameText         = "Start and end locations cannot be the same. Please choose different locations."
	msgNoRouteSelection = "No route found between selected locations"
	msgNoRouteText      = "Sorry, I could not find a route between those locations. Please try different locations."
	msgNoMatch          = "I couldn't identify any campus locations in your message. Try saying something like 'Take me from Main Gate 1 to Food Court' or mention specific location names."
)

func routeMessage(res route.NavigationResult) string {
	return fmt.Sprintf("Route found! Distance: %dm, Time: %d minutes.", res.TotalDistance, res.EstimatedTime)
}

func oneMentionMessage(name string) string {
	return fmt.Sprintf("I found %s. Please specify both start and end locations for navigation. For example: 'from %s to Food Court'", name, name)
}

func manyMentionsMessage(names string) string {
	return fmt.Sprintf("I found these locations: %s. Please specify which one is your start and which is your destination.", names)
}
