// SPDX-License-Identifier: MIT

package navigator_test

import (
	"fmt"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/navigator"
)

func ExampleNavigator_Ask() {
	n := navigator.New(campus.Reference())

	r := n.Ask("Take me from Main Gate 1 to Food Court")
	fmt.Println(r.Kind, "|", r.Message)
	for _, line := range navigator.Directions(*r.Result) {
		fmt.Println(line)
	}

	r = n.Ask("Is the Sports Area open?")
	fmt.Println(r.Kind, "|", r.Message)
	// Output:
	// route | Route found! Distance: 595m, Time: 8 minutes.
	// Start at Main Gate 1
	// Walk 180 m to Main Gate 2
	// Walk 75 m to Admin Block 1
	// Walk 125 m to Admin Block 2
	// Walk 215 m to Food Court
	// Arrive at Food Court: 595 m total, about 8 min
	// one_mention | I found Sports Area. Please specify both start and end locations for navigation. For example: 'from Sports Area to Food Court'
}

func ExampleNavigator_Navigate() {
	n := navigator.New(campus.Reference())

	fmt.Println(n.Navigate("admin1", "admin1").Message)
	fmt.Println(n.Navigate("admin1", "").Message)
	// Output:
	// Start and end locations cannot be the same
	// Please select both start and end locations
}
