// Package render turns a loaded graph model into an HTML page or snippet
// for the KnowledgeGraphExplorer JavaScript renderer. The model and the
// configuration are embedded as base64-encoded JSON so that no value ever
// needs JavaScript escaping.
package render

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"text/template"

	"github.com/siherrmann/kgraph/helper"
	"github.com/siherrmann/kgraph/model"
)

// Options controls HTML generation for one graph instance.
type Options struct {
	// GraphID is the unique instance id, used for element ids and the
	// window handle of the renderer.
	GraphID string
	// Width and Height size the wrapper element in pixels.
	Width  int
	Height int
	// Standalone selects a complete HTML document instead of a snippet.
	Standalone bool
	// Library optionally inlines the renderer's JavaScript source. When
	// empty the page expects KnowledgeGraphExplorer to be loaded
	// separately.
	Library string
}

// pageData feeds the page templates. All fields are generated internally
// (ids, pixel sizes, base64 payloads), so the templates are executed as
// text; HTML escaping would corrupt the base64 alphabet inside the
// script block.
type pageData struct {
	GraphID   string
	Width     int
	Height    int
	Library   string
	DataB64   string
	ConfigB64 string
}

var snippetTmpl = template.Must(template.New("snippet").Parse(snippetTemplate))
var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

// Page renders the graph model into HTML according to opts.
func Page(opts Options, nodes []model.Node, links []model.Link, config model.Config) (string, error) {
	dataJSON, err := json.Marshal(map[string]interface{}{
		"nodes": nodes,
		"links": links,
	})
	if err != nil {
		return "", helper.NewError("marshal graph data", err)
	}

	configJSON, err := json.Marshal(config)
	if err != nil {
		return "", helper.NewError("marshal graph config", err)
	}

	data := pageData{
		GraphID:   opts.GraphID,
		Width:     opts.Width,
		Height:    opts.Height,
		Library:   opts.Library,
		DataB64:   base64.StdEncoding.EncodeToString(dataJSON),
		ConfigB64: base64.StdEncoding.EncodeToString(configJSON),
	}

	tmpl := snippetTmpl
	if opts.Standalone {
		tmpl = pageTmpl
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", helper.NewError("execute html template", err)
	}
	return buf.String(), nil
}

const snippetTemplate = `<div id="{{.GraphID}}_wrapper" style="position: relative; width: {{.Width}}px; height: {{.Height}}px; margin: 0 auto;">
    <div id="{{.GraphID}}" style="width: 100%; height: 100%; border: 1px solid #ccc; background-color: #f9f9f9;">
        <div style="padding: 20px; text-align: center; color: #666;">Loading graph...</div>
    </div>
</div>

<script src="https://d3js.org/d3.v7.min.js"></script>
<script>
{{.Library}}

function initGraph() {
    try {
        var data = JSON.parse(atob('{{.DataB64}}'));
        var config = JSON.parse(atob('{{.ConfigB64}}'));

        var container = document.getElementById('{{.GraphID}}');
        var wrapper = document.getElementById('{{.GraphID}}_wrapper');
        container.innerHTML = '';

        var graph = new KnowledgeGraphExplorer(container, data, config);
        window['{{.GraphID}}'] = graph;

        setTimeout(function() {
            try {
                var uiControls = new UIControlsManager(config);
                var dataWithConfig = Object.assign({}, data, {
                    layers: config.layers,
                    timeline: config.timeline
                });
                uiControls.initialize(wrapper, graph, dataWithConfig);
                window['{{.GraphID}}_ui'] = uiControls;
            } catch (uiError) {
                console.error('UI Controls failed:', uiError);
            }
        }, 500);
    } catch (error) {
        console.error('Graph initialization failed:', error);
        document.getElementById('{{.GraphID}}').innerHTML =
            '<div style="padding: 20px; color: red;">Graph failed to load: ' + error.message + '</div>';
    }
}

if (typeof d3 !== 'undefined' && document.readyState === 'complete') {
    initGraph();
} else {
    window.addEventListener('load', function() {
        setTimeout(initGraph, 200);
    });
}
</script>
`

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Knowledge Graph</title>
</head>
<body>
` + snippetTemplate + `</body>
</html>
`
