// SPDX-License-Identifier: MIT

// Package config loads gengraph settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gengraph/edgelist"
)

// DefaultInput is the edge list read when nothing else is configured.
const DefaultInput = "map.txt"

// ErrInvalidConfig indicates a field that cannot drive the emitter.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds every tunable of a gengraph run.
type Config struct {
	Input         string `yaml:"input"`
	GraphName     string `yaml:"graph_name"`
	AppendMethod  string `yaml:"append_method"`
	CommentMarker string `yaml:"comment_marker"`
	Verbose       bool   `yaml:"verbose"`
}

// Default returns the settings that reproduce graph[A].push_back(B);
// output from ./map.txt.
func Default() Config {
	return Config{
		Input:         DefaultInput,
		GraphName:     edgelist.DefaultGraphName,
		AppendMethod:  edgelist.DefaultAppendMethod,
		CommentMarker: edgelist.DefaultCommentMarker,
	}
}

// Load reads a YAML file and overlays its non-empty fields on Default().
// An empty path returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.merge(file)

	return cfg, nil
}

// merge copies every non-zero field of o into c.
func (c *Config) merge(o Config) {
	if o.Input != "" {
		c.Input = o.Input
	}
	if o.GraphName != "" {
		c.GraphName = o.GraphName
	}
	if o.AppendMethod != "" {
		c.AppendMethod = o.AppendMethod
	}
	if o.CommentMarker != "" {
		c.CommentMarker = o.CommentMarker
	}
	if o.Verbose {
		c.Verbose = true
	}
}

// Validate reports the first empty field.
func (c Config) Validate() error {
	switch {
	case c.Input == "":
		return fmt.Errorf("%w: input is empty", ErrInvalidConfig)
	case c.GraphName == "":
		return fmt.Errorf("%w: graph_name is empty", ErrInvalidConfig)
	case c.AppendMethod == "":
		return fmt.Errorf("%w: append_method is empty", ErrInvalidConfig)
	case c.CommentMarker == "":
		return fmt.Errorf("%w: comment_marker is empty", ErrInvalidConfig)
	}

	return nil
}

// Options maps the target syntax onto emitter options.
// Call Validate first; empty fields make the option constructors panic.
func (c Config) Options() []edgelist.Option {
	return []edgelist.Option{
		edgelist.WithGraphName(c.GraphName),
		edgelist.WithAppendMethod(c.AppendMethod),
		edgelist.WithCommentMarker(c.CommentMarker),
	}
}
