// SPDX-License-Identifier: MIT

// Package navigator is the request layer shared by the HTTP server and the
// command line: it composes a route.Engine and a resolver.Resolver over one
// campus graph and turns every request into a Reply with a Kind and a
// user-facing message.
//
// Two flows:
//
//	Navigate(startID, endID) – explicit IDs picked from a list.
//	Ask(text)                – free text, resolved to two locations first.
//
// Directions renders a successful NavigationResult as turn-by-turn lines.
package navigator
