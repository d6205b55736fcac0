package render

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/siherrmann/kgraph/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testModel() ([]model.Node, []model.Link, model.Config) {
	nodes := []model.Node{
		{"id": "n1", "label": "L1"},
		{"id": "n2", "label": "L2", "parent_node": "n1"},
	}
	links := []model.Link{model.NewLink("n1", "n2")}
	return nodes, links, model.DefaultConfig()
}

func TestPage(t *testing.T) {
	opts := Options{GraphID: "kg_test1234", Width: 900, Height: 600}

	t.Run("Embeds the graph payload as base64 JSON", func(t *testing.T) {
		nodes, links, config := testModel()

		html, err := Page(opts, nodes, links, config)
		require.NoError(t, err)

		dataJSON, err := json.Marshal(map[string]interface{}{"nodes": nodes, "links": links})
		require.NoError(t, err)
		assert.Contains(t, html, base64.StdEncoding.EncodeToString(dataJSON),
			"Payload should be embedded base64-encoded")

		configJSON, err := json.Marshal(config)
		require.NoError(t, err)
		assert.Contains(t, html, base64.StdEncoding.EncodeToString(configJSON))
	})

	t.Run("Snippet contains wrapper and container elements", func(t *testing.T) {
		nodes, links, config := testModel()

		html, err := Page(opts, nodes, links, config)
		require.NoError(t, err)

		assert.Contains(t, html, `id="kg_test1234_wrapper"`)
		assert.Contains(t, html, `id="kg_test1234"`)
		assert.Contains(t, html, "width: 900px")
		assert.Contains(t, html, "height: 600px")
		assert.False(t, strings.Contains(html, "<!DOCTYPE html>"), "Snippet should not be a full document")
	})

	t.Run("Standalone wraps the snippet in a document", func(t *testing.T) {
		nodes, links, config := testModel()
		standalone := opts
		standalone.Standalone = true

		html, err := Page(standalone, nodes, links, config)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
		assert.Contains(t, html, "<title>Knowledge Graph</title>")
		assert.Contains(t, html, `id="kg_test1234"`)
	})

	t.Run("Library source is inlined unescaped", func(t *testing.T) {
		nodes, links, config := testModel()
		withLib := opts
		withLib.Library = "class KnowledgeGraphExplorer { constructor(c, d, cfg) {} }"

		html, err := Page(withLib, nodes, links, config)
		require.NoError(t, err)

		assert.Contains(t, html, withLib.Library, "Library JS must not be HTML-escaped")
	})

	t.Run("Empty model renders", func(t *testing.T) {
		html, err := Page(opts, []model.Node{}, []model.Link{}, model.DefaultConfig())
		require.NoError(t, err)
		assert.Contains(t, html, "initGraph")
	})
}
