// Package kgraph builds validated, render-ready knowledge graph models
// from hierarchical entity descriptions. Links are never supplied
// directly; they are derived from per-node parent declarations, the
// timeline range is inferred from node timespans when not set explicitly,
// and the assembled model is checked for referential integrity before it
// is exposed to the renderer.
package kgraph

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/siherrmann/kgraph/core/graph"
	"github.com/siherrmann/kgraph/helper"
	"github.com/siherrmann/kgraph/loader"
	"github.com/siherrmann/kgraph/model"
	"github.com/siherrmann/kgraph/render"
)

// Graph owns one set of nodes and derived links plus the merged
// presentation configuration. A Graph is populated by a single load;
// a failed load leaves it unloaded and the caller should discard it.
// Access from multiple goroutines must be serialized by the caller.
type Graph struct {
	config model.Config
	nodes  []model.Node
	links  []model.Link
	loaded bool

	// graphID uniquely identifies this instance in generated pages.
	graphID string

	log *slog.Logger
}

// New creates an empty Graph with the default configuration merged with
// the given overrides. Overrides may be nil.
func New(overrides model.Config) *Graph {
	opts := helper.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(helper.NewPrettyHandler(os.Stdout, opts))

	if overrides == nil {
		overrides = model.Config{}
	}

	return &Graph{
		config:  model.Merge(model.DefaultConfig(), overrides),
		nodes:   []model.Node{},
		links:   []model.Link{},
		graphID: newGraphID(),
		log:     logger,
	}
}

// FromMap creates a Graph and loads it from an already-parsed mapping.
func FromMap(raw map[string]interface{}, overrides model.Config) (*Graph, error) {
	g := New(overrides)
	if err := g.LoadMap(raw); err != nil {
		return nil, err
	}
	return g, nil
}

// FromYAML creates a Graph and loads it from a YAML file.
func FromYAML(path string, overrides model.Config) (*Graph, error) {
	g := New(overrides)
	if err := g.LoadYAML(path); err != nil {
		return nil, err
	}
	return g, nil
}

// LoadYAML reads a YAML graph description from disk and loads it.
func (g *Graph) LoadYAML(path string) error {
	raw, err := loader.ParseFile(path)
	if err != nil {
		return helper.NewError("read graph source", err)
	}
	return g.LoadMap(raw)
}

// LoadMap ingests an already-parsed graph description. The pipeline runs
// in a fixed order: overlay metadata.timeline onto the configuration,
// replace the layer list and derive node colors, ingest the node
// sequence, derive links from parent declarations, fill unset timeline
// bounds from node timespans, and validate the assembled model. Any
// failure aborts the load and leaves the Graph unloaded.
func (g *Graph) LoadMap(raw map[string]interface{}) error {
	g.loaded = false

	if metadata, ok := raw["metadata"].(map[string]interface{}); ok {
		if timeline, ok := metadata["timeline"].(map[string]interface{}); ok {
			configTimeline := g.timeline()
			for key, value := range timeline {
				configTimeline[key] = value
			}
		}
	}

	if layers, ok := raw["layers"].([]interface{}); ok {
		g.config["layers"] = layers
		nodeColors := g.nodeColors()
		for _, entry := range layers {
			layer, ok := asLayer(entry)
			if !ok {
				continue
			}
			if color, hasColor := layer.Color(); hasColor {
				nodeColors[layer.ID()] = color
			}
		}
	}

	nodes, err := extractNodes(raw["nodes"])
	if err != nil {
		return err
	}
	g.nodes = nodes
	g.links = []model.Link{}

	g.links = graph.DeriveLinks(g.nodes)
	graph.FillTimeline(g.timeline(), g.nodes)

	if err := graph.Validate(g.nodes, g.links); err != nil {
		return helper.NewError("validate graph data", err)
	}

	g.loaded = true
	g.log.Info("Loaded graph data",
		slog.String("graph_id", g.graphID),
		slog.Int("nodes", len(g.nodes)),
		slog.Int("links", len(g.links)),
	)

	return nil
}

// AddLayer appends a layer to the configuration and registers its color
// for node coloring. Duplicate layer ids are permitted.
func (g *Graph) AddLayer(id string, layer model.Layer) {
	if layer == nil {
		layer = model.Layer{}
	}
	layer["id"] = id

	layers := g.config.Layers()
	g.config["layers"] = append(layers, map[string]interface{}(layer))

	if color, ok := layer.Color(); ok {
		g.nodeColors()[id] = color
	}
}

// SetTimelineRange overwrites the timeline bounds, bypassing any
// auto-calculated values.
func (g *Graph) SetTimelineRange(start, end interface{}) {
	timeline := g.timeline()
	timeline["start"] = start
	timeline["end"] = end
}

// UpdateConfig deep-merges partial configuration updates into the current
// configuration.
func (g *Graph) UpdateConfig(partial model.Config) {
	g.config = model.Merge(g.config, partial)
}

// Stats returns counters for the loaded graph, or a zero Stats with
// Loaded false before a successful load.
func (g *Graph) Stats() model.Stats {
	if !g.loaded {
		return model.Stats{}
	}

	timeline := g.timeline()
	return model.Stats{
		Loaded:        true,
		NodeCount:     len(g.nodes),
		LinkCount:     len(g.links),
		LayerCount:    len(g.config.Layers()),
		TimelineStart: timeline["start"],
		TimelineEnd:   timeline["end"],
		GraphID:       g.graphID,
	}
}

// Data returns the validated node and link sequences together with the
// merged configuration for the renderer. It fails before a successful
// load.
func (g *Graph) Data() ([]model.Node, []model.Link, model.Config, error) {
	if !g.loaded {
		return nil, nil, nil, helper.NewError("get graph data", model.ErrNotLoaded)
	}
	return g.nodes, g.links, g.config, nil
}

// HTML renders the loaded graph into a standalone page or an embeddable
// snippet. It fails before a successful load.
func (g *Graph) HTML(standalone bool) (string, error) {
	if !g.loaded {
		return "", helper.NewError("generate html", model.ErrNotLoaded)
	}

	opts := render.Options{
		GraphID:    g.graphID,
		Width:      intValue(g.config["width"], 900),
		Height:     intValue(g.config["height"], 600),
		Standalone: standalone,
	}
	return render.Page(opts, g.nodes, g.links, g.config)
}

// WriteHTML renders a standalone page and writes it to path, creating
// parent directories as needed.
func (g *Graph) WriteHTML(path string) error {
	html, err := g.HTML(true)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return helper.NewError("create output directory", err)
		}
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return helper.NewError("write html file", err)
	}
	g.log.Info("Wrote graph page", slog.String("path", path))
	return nil
}

// Loaded reports whether a load has completed successfully.
func (g *Graph) Loaded() bool {
	return g.loaded
}

// GraphID returns the unique identifier of this instance.
func (g *Graph) GraphID() string {
	return g.graphID
}

// Config returns the current configuration. The returned mapping is the
// live configuration, not a copy.
func (g *Graph) Config() model.Config {
	return g.config
}

// timeline returns the configuration's timeline sub-mapping, restoring
// the default shape if an override destroyed it.
func (g *Graph) timeline() map[string]interface{} {
	if timeline := g.config.Sub("timeline"); timeline != nil {
		return timeline
	}
	timeline := map[string]interface{}{"enabled": true, "start": nil, "end": nil}
	g.config["timeline"] = timeline
	return timeline
}

// nodeColors returns the configuration's nodeColors sub-mapping,
// restoring it if an override destroyed it.
func (g *Graph) nodeColors() map[string]interface{} {
	if nodeColors := g.config.Sub("nodeColors"); nodeColors != nil {
		return nodeColors
	}
	nodeColors := map[string]interface{}{}
	g.config["nodeColors"] = nodeColors
	return nodeColors
}

// intValue converts the numeric types a merged configuration may hold
// for pixel sizes, falling back when the value is unusable.
func intValue(value interface{}, fallback int) int {
	switch v := value.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// newGraphID derives a short unique instance identifier.
func newGraphID() string {
	id := uuid.New()
	return "kg_" + hex.EncodeToString(id[:4])
}

// extractNodes converts the raw "nodes" value into a node sequence. An
// absent value yields an empty sequence; any non-sequence value or
// non-mapping element is an invalid shape.
func extractNodes(value interface{}) ([]model.Node, error) {
	switch v := value.(type) {
	case nil:
		return []model.Node{}, nil
	case []model.Node:
		return v, nil
	case []map[string]interface{}:
		nodes := make([]model.Node, 0, len(v))
		for _, entry := range v {
			nodes = append(nodes, model.Node(entry))
		}
		return nodes, nil
	case []interface{}:
		nodes := make([]model.Node, 0, len(v))
		for i, entry := range v {
			node, ok := entry.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("node %d is not a mapping: %w", i, model.ErrInvalidShape)
			}
			nodes = append(nodes, model.Node(node))
		}
		return nodes, nil
	default:
		return nil, fmt.Errorf("'nodes' must be a sequence: %w", model.ErrInvalidShape)
	}
}

// asLayer normalizes a raw layer entry.
func asLayer(value interface{}) (model.Layer, bool) {
	switch v := value.(type) {
	case model.Layer:
		return v, true
	case map[string]interface{}:
		return model.Layer(v), true
	default:
		return nil, false
	}
}
