// Package gengraph turns a hand-written edge list into C++ code that builds
// an undirected adjacency-list graph.
//
// The module is organized into three parts:
//
//	edgelist/      - line classification and the edge-list transducer
//	config/        - optional YAML settings (input path, target syntax)
//	cmd/gengraph/  - the command-line entry point
//
// Quick example, map.txt:
//
//	# Ground floor
//	Hall Lounge
//
// becomes
//
//	// Ground floor
//	graph[Hall].push_back(Lounge);
//	graph[Lounge].push_back(Hall);
//
//	go install github.com/katalvlaran/gengraph/cmd/gengraph@latest
package gengraph
