package graph

import (
	"testing"

	"github.com/siherrmann/kgraph/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("Consistent model passes", func(t *testing.T) {
		nodes := []model.Node{
			{"id": "n1", "label": "L1"},
			{"id": "n2", "label": "L2", "parent_node": "n1"},
		}
		links := DeriveLinks(nodes)

		assert.NoError(t, Validate(nodes, links))
	})

	t.Run("Validation is idempotent and read-only", func(t *testing.T) {
		nodes := []model.Node{
			{"id": "n1", "label": "L1"},
			{"id": "n2", "label": "L2", "parent_node": "n1"},
		}
		links := DeriveLinks(nodes)

		require.NoError(t, Validate(nodes, links))
		assert.NoError(t, Validate(nodes, links), "Re-running validation should never fail")
		assert.Equal(t, "n1", nodes[1]["parent_node"], "Validation should not mutate nodes")
		require.Len(t, links, 1)
	})

	t.Run("Missing id names the node index", func(t *testing.T) {
		nodes := []model.Node{
			{"id": "n1", "label": "L1"},
			{"label": "L2"},
		}

		err := Validate(nodes, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrMissingField)
		assert.Contains(t, err.Error(), "node 1", "Error should name the node position")
		assert.Contains(t, err.Error(), "'id'")
	})

	t.Run("Empty id counts as missing", func(t *testing.T) {
		err := Validate([]model.Node{{"id": "", "label": "L1"}}, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrMissingField)
	})

	t.Run("Missing label names the node id", func(t *testing.T) {
		nodes := []model.Node{
			{"id": "n1", "label": "L1"},
			{"id": "n2"},
		}

		err := Validate(nodes, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrMissingField)
		assert.Contains(t, err.Error(), `"n2"`, "Error should name the offending node id")
		assert.Contains(t, err.Error(), "'label'")
	})

	t.Run("Unknown link source names the link index", func(t *testing.T) {
		nodes := []model.Node{{"id": "n1", "label": "L1"}}
		links := []model.Link{model.NewLink("ghost", "n1")}

		err := Validate(nodes, links)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnknownReference)
		assert.Contains(t, err.Error(), "link 0")
		assert.Contains(t, err.Error(), `"ghost"`)
	})

	t.Run("Unknown link target names the link index", func(t *testing.T) {
		nodes := []model.Node{{"id": "n1", "label": "L1"}}
		links := []model.Link{model.NewLink("n1", "ghost")}

		err := Validate(nodes, links)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnknownReference)
		assert.Contains(t, err.Error(), "target")
	})

	t.Run("Dangling parent is fatal even though derivation skipped it", func(t *testing.T) {
		nodes := []model.Node{
			{"id": "n1", "label": "L1"},
			{"id": "n2", "label": "L2", "parent_nodes": []interface{}{"n1", "missing"}},
		}
		links := DeriveLinks(nodes)
		require.Len(t, links, 1, "Derivation should have skipped the unknown parent")

		err := Validate(nodes, links)

		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrUnknownReference)
		assert.Contains(t, err.Error(), `"missing"`, "Error should name the missing parent id")
		assert.Contains(t, err.Error(), `"n2"`, "Error should name the offending node")
	})

	t.Run("Self link passes", func(t *testing.T) {
		nodes := []model.Node{{"id": "n1", "label": "L1", "parent_node": "n1"}}
		links := DeriveLinks(nodes)
		require.Len(t, links, 1)

		assert.NoError(t, Validate(nodes, links))
	})

	t.Run("Empty model passes", func(t *testing.T) {
		assert.NoError(t, Validate(nil, nil))
	})
}
