// Package campusnav computes walking routes across a university campus and
// understands plain-language requests such as "take me from gate 1 to the
// food court".
//
// What is inside:
//
//	campus/    — locations, walkable connections and the bidirectional Campus Graph;
//	             loaders for YAML and OpenStreetMap data, plus the built-in campus
//	route/     — single-pair shortest path (Dijkstra) with per-step distances
//	             and a walking-time estimate
//	resolver/  — free text → start and end locations (phrase patterns, names, aliases)
//	navigator/ — form and chat request flows, replies and turn-by-turn directions
//	cmd/       — the campusnav command: CLI queries and the HTTP API
//
// The built-in campus:
//
//	[gate1]─180─[gate2]─75─[admin1]─125─[admin2]─215─[food_court]─271─[hostel1]
//	              │  \35      │45                        │215            │565
//	              │ [flagpost]┘                    [parents_stay]    [sports_area]
//	              └──────────────283──────────────────────┘
//
// (not every connection is drawn).
//
// Quick start:
//
//	res := route.ComputeRoute(campus.Reference(), "gate1", "food_court")
//	// res.TotalDistance == 595, res.EstimatedTime == 8
//
//	go get github.com/katalvlaran/campusnav
package campusnav
