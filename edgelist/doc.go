// SPDX-License-Identifier: MIT

// Package edgelist turns a plain-text list of undirected edges into C++
// statements that populate an adjacency-list array.
//
// Input is read line by line and every line is one of three kinds:
//
//	(blank)        ->  (blank)
//	## Rooms       ->  //// Rooms
//	Hall Lounge    ->  graph[Hall].push_back(Lounge);
//	                   graph[Lounge].push_back(Hall);
//
// Edge endpoints are opaque identifiers: they are copied into the generated
// index expressions verbatim and never parsed as numbers or looked up.
// The package performs no graph algorithms; the generated statements are
// meant to be compiled into a separate program that owns the graph.
//
// Errors:
//
//	ErrMalformedLine - an edge line did not split into exactly two tokens.
//	                   Returned wrapped in *FormatError carrying the line.
//
// Output is deterministic: for b blank, c comment and e edge lines the
// transducer writes exactly b + c + 2e lines, in input order.
//
// The target syntax (array name, append call, comment marker) can be tuned
// with Option values; the defaults reproduce graph[A].push_back(B); exactly.
package edgelist
