package model

// Stats summarizes a loaded graph. When Loaded is false all other fields
// are zero.
type Stats struct {
	Loaded        bool        `json:"loaded"`
	NodeCount     int         `json:"node_count"`
	LinkCount     int         `json:"link_count"`
	LayerCount    int         `json:"layer_count"`
	TimelineStart interface{} `json:"timeline_start"`
	TimelineEnd   interface{} `json:"timeline_end"`
	GraphID       string      `json:"graph_id"`
}
