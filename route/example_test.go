// SPDX-License-Identifier: MIT

package route_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/route"
)

// ExampleEngine_ComputeRoute walks from Main Gate 1 to the Food Court.
func ExampleEngine_ComputeRoute() {
	eng := route.New(campus.Reference())
	res := eng.ComputeRoute("gate1", "food_court")

	for _, s := range res.Route {
		fmt.Printf("%-13s +%3d m  (%d m)\n", s.Location.Name, s.DistanceFromPrevious, s.TotalDistance)
	}
	fmt.Printf("total %d m, about %d min\n", res.TotalDistance, res.EstimatedTime)
	// Output:
	// Main Gate 1   +  0 m  (0 m)
	// Main Gate 2   +180 m  (180 m)
	// Admin Block 1 + 75 m  (255 m)
	// Admin Block 2 +125 m  (380 m)
	// Food Court    +215 m  (595 m)
	// total 595 m, about 8 min
}

// ExampleEngine_ComputeRoute_sameLocation shows that identical endpoints are not a route.
func ExampleEngine_ComputeRoute_sameLocation() {
	res := route.ComputeRoute(campus.Reference(), "hostel1", "hostel1")
	fmt.Println(res.Success, len(res.Route), res.TotalDistance)
	// Output: false 0 0
}
