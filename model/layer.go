package model

// Layer represents a named node grouping as declared in the input's
// "layers" section. Layers with a "color" contribute an entry to the
// configuration's nodeColors mapping.
type Layer map[string]interface{}

// ID returns the layer id, or the empty string if it is absent or not a
// string.
func (l Layer) ID() string {
	id, ok := l["id"].(string)
	if !ok {
		return ""
	}
	return id
}

// Color returns the layer color and whether one is set.
func (l Layer) Color() (string, bool) {
	color, ok := l["color"].(string)
	return color, ok
}
