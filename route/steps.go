// SPDX-License-Identifier: MIT

package route

// result reconstructs the path from the predecessor links and meters it.
// The target must have been reached.
func (r *runner) result() NavigationResult {
	var ids []string
	for id := r.target; ; id = r.prev[id] {
		ids = append(ids, id)
		if id == r.source {
			break
		}
	}
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}

	steps := make([]RouteStep, len(ids))
	var total int64
	for i, id := range ids {
		loc, _ := r.e.g.Location(id)

		var leg int64
		if i > 0 {
			// Every predecessor link was made along a closure edge.
			leg, _ = r.e.g.Distance(ids[i-1], id)
		}
		total += leg

		steps[i] = RouteStep{
			Location:             loc,
			DistanceFromPrevious: leg,
			TotalDistance:        total,
		}
	}

	return NavigationResult{
		Route:         steps,
		TotalDistance: total,
		EstimatedTime: EstimateMinutes(total),
		Success:       true,
	}
}
