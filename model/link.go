package model

// DefaultLinkStrength is the strength assigned to every derived link.
const DefaultLinkStrength = 0.5

// Link represents a directed connection between two node ids. Links are
// always derived from parent declarations, never supplied by input data.
type Link struct {
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Strength float64 `json:"strength"`
	ID       string  `json:"id"`
}

// NewLink creates a link from a parent node to a child node with the
// default strength and a deterministic "<source>-<target>" id.
func NewLink(source, target string) Link {
	return Link{
		Source:   source,
		Target:   target,
		Strength: DefaultLinkStrength,
		ID:       source + "-" + target,
	}
}
