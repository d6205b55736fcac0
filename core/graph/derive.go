// Package graph holds the pure passes over an assembled node set:
// link derivation, timeline inference and validation. All functions are
// deterministic and free of side effects on their inputs, except
// FillTimeline which writes the bounds it infers.
package graph

import (
	"github.com/siherrmann/kgraph/model"
)

// DeriveLinks expands the parent declarations of every node into explicit
// links. Parent ids that do not match any node id are skipped here;
// Validate reports them as fatal. Self-references are allowed and produce
// self-links. The output order follows node order, then parent order
// within each node.
func DeriveLinks(nodes []model.Node) []model.Link {
	known := make(map[string]struct{}, len(nodes))
	for _, node := range nodes {
		known[node.ID()] = struct{}{}
	}

	links := []model.Link{}
	for _, node := range nodes {
		for _, parent := range node.EffectiveParents() {
			if _, ok := known[parent]; ok {
				links = append(links, model.NewLink(parent, node.ID()))
			}
		}
	}

	return links
}
