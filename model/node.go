package model

import "fmt"

// Node represents a single graph entity as parsed from the input mapping.
// Required fields are "id" and "label"; "type", "layer", "size",
// "timespan" and the parent declarations are optional.
type Node map[string]interface{}

// ID returns the node id, or the empty string if the id is absent or not
// a string.
func (n Node) ID() string {
	id, ok := n["id"].(string)
	if !ok {
		return ""
	}
	return id
}

// Label returns the node label and whether the field is present.
func (n Node) Label() (string, bool) {
	value, ok := n["label"]
	if !ok {
		return "", false
	}
	label, _ := value.(string)
	return label, true
}

// Layer returns the id of the layer the node belongs to, if any.
func (n Node) Layer() (string, bool) {
	layer, ok := n["layer"].(string)
	return layer, ok
}

// Timespan returns the node's timespan bounds. Each bound is only
// reported when it is present, non-nil, numeric and non-zero.
func (n Node) Timespan() (start, end float64, hasStart, hasEnd bool) {
	timespan, ok := asMap(n["timespan"])
	if !ok {
		return 0, 0, false, false
	}
	if v, numeric := asNumber(timespan["start"]); numeric && v != 0 {
		start, hasStart = v, true
	}
	if v, numeric := asNumber(timespan["end"]); numeric && v != 0 {
		end, hasEnd = v, true
	}
	return start, end, hasStart, hasEnd
}

// EffectiveParents resolves the node's parent declaration into a
// normalized list of parent ids. "parent_node" takes precedence over
// "parent_nodes" when present and non-empty; either field may hold a
// single id or a sequence of ids. Absent, nil, empty-string and
// empty-sequence values all mean "no parent".
func (n Node) EffectiveParents() []string {
	if parents, ok := parentList(n["parent_node"]); ok {
		return parents
	}
	if parents, ok := parentList(n["parent_nodes"]); ok {
		return parents
	}
	return nil
}

// parentList normalizes a parent declaration value into a list of ids.
// The second return is false when the value counts as empty.
func parentList(value interface{}) ([]string, bool) {
	switch v := value.(type) {
	case nil:
		return nil, false
	case string:
		if v == "" {
			return nil, false
		}
		return []string{v}, true
	case []interface{}:
		if len(v) == 0 {
			return nil, false
		}
		parents := make([]string, 0, len(v))
		for _, entry := range v {
			if id, ok := entry.(string); ok {
				parents = append(parents, id)
			} else {
				// Non-string ids stay visible so validation can name them.
				parents = append(parents, fmt.Sprintf("%v", entry))
			}
		}
		return parents, true
	case []string:
		if len(v) == 0 {
			return nil, false
		}
		return v, true
	default:
		return nil, false
	}
}

// asNumber converts the numeric types YAML and JSON decoding produce.
func asNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
