package main

import (
	"fmt"
	"log"

	"github.com/siherrmann/kgraph"
	"github.com/siherrmann/kgraph/model"
)

func main() {
	// Describe the graph as a plain nested mapping. Links are derived
	// from the parent declarations, the timeline from the timespans.
	raw := map[string]interface{}{
		"layers": []interface{}{
			map[string]interface{}{"id": "foundation", "name": "Foundations", "color": "#2780e3"},
			map[string]interface{}{"id": "application", "name": "Applications", "color": "#3fb618"},
		},
		"nodes": []interface{}{
			map[string]interface{}{
				"id":       "graph-theory",
				"label":    "Graph Theory",
				"layer":    "foundation",
				"timespan": map[string]interface{}{"start": 1936, "end": 1970},
			},
			map[string]interface{}{
				"id":          "graph-databases",
				"label":       "Graph Databases",
				"layer":       "application",
				"parent_node": "graph-theory",
				"timespan":    map[string]interface{}{"start": 2000, "end": 2024},
			},
			map[string]interface{}{
				"id":           "knowledge-graphs",
				"label":        "Knowledge Graphs",
				"layer":        "application",
				"parent_nodes": []interface{}{"graph-theory", "graph-databases"},
				"timespan":     map[string]interface{}{"start": 2012, "end": 2024},
			},
		},
	}

	g, err := kgraph.FromMap(raw, model.Config{
		"width": 1200,
		"features": map[string]interface{}{
			"showMiniMap": false,
		},
	})
	if err != nil {
		log.Fatalf("Failed to load graph: %v", err)
	}

	// Add a layer after loading.
	g.AddLayer("history", model.Layer{"name": "History", "color": "#868e96"})

	stats := g.Stats()
	fmt.Printf("Graph %s loaded\n", stats.GraphID)
	fmt.Printf("Nodes: %d, Links: %d, Layers: %d\n", stats.NodeCount, stats.LinkCount, stats.LayerCount)
	fmt.Printf("Timeline: %v - %v\n", stats.TimelineStart, stats.TimelineEnd)

	if err := g.WriteHTML("out/basic.html"); err != nil {
		log.Fatalf("Failed to write HTML: %v", err)
	}
	fmt.Println("Wrote out/basic.html")
}
