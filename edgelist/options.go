// SPDX-License-Identifier: MIT
//
// options.go: functional options for the emitter.
//
// Contract:
//   - Options are functional (type Option func(*emitConfig)).
//   - Option constructors validate and panic on meaningless inputs;
//     Transduce itself never panics.
//   - Defaults reproduce graph[A].push_back(B); and // comments.

package edgelist

import "go.uber.org/zap"

// Default target syntax.
const (
	DefaultGraphName     = "graph"
	DefaultAppendMethod  = "push_back"
	DefaultCommentMarker = "//"
)

// Option customizes the generated statements.
type Option func(*emitConfig)

type emitConfig struct {
	graphName     string
	appendMethod  string
	commentMarker string
	logger        *zap.Logger
}

func newEmitConfig(opts ...Option) emitConfig {
	cfg := emitConfig{
		graphName:     DefaultGraphName,
		appendMethod:  DefaultAppendMethod,
		commentMarker: DefaultCommentMarker,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithGraphName sets the identifier of the adjacency array.
// Panics on an empty name.
func WithGraphName(name string) Option {
	if name == "" {
		panic("edgelist: WithGraphName(\"\")")
	}
	return func(c *emitConfig) {
		c.graphName = name
	}
}

// WithAppendMethod sets the member call used to append a neighbour.
// Panics on an empty method.
func WithAppendMethod(method string) Option {
	if method == "" {
		panic("edgelist: WithAppendMethod(\"\")")
	}
	return func(c *emitConfig) {
		c.appendMethod = method
	}
}

// WithCommentMarker sets the comment token that replaces each '#'.
// Panics on an empty marker.
func WithCommentMarker(marker string) Option {
	if marker == "" {
		panic("edgelist: WithCommentMarker(\"\")")
	}
	return func(c *emitConfig) {
		c.commentMarker = marker
	}
}

// WithLogger attaches a logger that traces every classified line at debug level.
// Panics on nil; pass zap.NewNop() to silence.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("edgelist: WithLogger(nil)")
	}
	return func(c *emitConfig) {
		c.logger = l
	}
}
