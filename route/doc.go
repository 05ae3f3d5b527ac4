// SPDX-License-Identifier: MIT

// Package route is the Route Engine: it finds the shortest walking path
// between two campus locations and turns it into metered steps.
//
// Overview:
//
//   - Dijkstra's algorithm over the bidirectional closure of a *campus.Graph,
//     from the start location, stopping as soon as the destination is
//     extracted as the current minimum (all weights are positive meters).
//   - The predecessor chain is walked back from the destination, reversed,
//     and annotated per step with the leg distance and the running total.
//   - The walking-time estimate is fixed at 12 minutes per kilometer (5 km/h),
//     rounded up to the next whole minute.
//
// Outcome policy (no errors, no panics):
//
//   - start == end                    → Success=false (not a zero-length route)
//   - unknown start or end ID         → Success=false
//   - no path between the two         → Success=false
//
// A failed NavigationResult always has an empty Route and zero distance/time.
//
// Minimum selection:
//
//	– SelectLinear (default): scan the unvisited set, O(V²) overall. Ties go to
//	  the location configured first.
//	– SelectHeap: lazy decrease-key min-heap, O((V + E) log V).
//
// Both selections return the same distances; among equal-cost paths the
// chosen path may differ.
//
// Concurrency:
//
//	All search state lives in a per-call runner, so one Engine can serve
//	concurrent requests.
//
// Example usage:
//
//	eng := route.New(campus.Reference())
//	res := eng.ComputeRoute("gate1", "food_court")
//	if res.Success {
//	    fmt.Println(res.TotalDistance, "m,", res.EstimatedTime, "min")
//	}
package route
