package graph

import (
	"fmt"

	"github.com/siherrmann/kgraph/model"
)

// Validate checks referential integrity of an assembled model: every node
// has a non-empty id and a label, every link endpoint and every declared
// parent id refers to a known node. The first failure wins and is
// returned wrapping the matching sentinel from the model package. The
// pass is read-only and idempotent; a nil error means the model is
// internally consistent.
func Validate(nodes []model.Node, links []model.Link) error {
	nodeIDs := make(map[string]struct{}, len(nodes))
	for i, node := range nodes {
		id := node.ID()
		if id == "" {
			return fmt.Errorf("node %d is missing required 'id' field: %w", i, model.ErrMissingField)
		}
		if _, ok := node.Label(); !ok {
			return fmt.Errorf("node %q is missing required 'label' field: %w", id, model.ErrMissingField)
		}
		nodeIDs[id] = struct{}{}
	}

	for i, link := range links {
		if _, ok := nodeIDs[link.Source]; !ok {
			return fmt.Errorf("link %d references unknown source node %q: %w", i, link.Source, model.ErrUnknownReference)
		}
		if _, ok := nodeIDs[link.Target]; !ok {
			return fmt.Errorf("link %d references unknown target node %q: %w", i, link.Target, model.ErrUnknownReference)
		}
	}

	// Parent lists are re-derived here so that parents skipped during
	// link derivation still fail the load instead of silently vanishing.
	for i, node := range nodes {
		for _, parent := range node.EffectiveParents() {
			if _, ok := nodeIDs[parent]; !ok {
				return fmt.Errorf("node %d (%q) references unknown parent node %q: %w", i, node.ID(), parent, model.ErrUnknownReference)
			}
		}
	}

	return nil
}
