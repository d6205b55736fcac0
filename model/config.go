package model

// Config represents the nested presentation configuration handed to the
// renderer. It always carries the full default shape after merging.
type Config map[string]interface{}

// DefaultConfig returns the full default configuration shape.
// Every key present here is guaranteed to survive any merge.
func DefaultConfig() Config {
	return Config{
		"width":  900,
		"height": 600,
		"theme": map[string]interface{}{
			"primaryColor":    "#2780e3",
			"secondaryColor":  "#3fb618",
			"accentColor":     "#ffdd3c",
			"dangerColor":     "#ff0039",
			"mutedColor":      "#868e96",
			"backgroundColor": "#ffffff",
			"surfaceColor":    "#f8f9fa",
			"textPrimary":     "#212529",
			"textSecondary":   "#495057",
			"fontFamily":      "system-ui, -apple-system, 'Segoe UI', Roboto, sans-serif",
			"fontSizeBase":    14,
		},
		"nodeColors": map[string]interface{}{},
		"layers":     []interface{}{},
		"timeline": map[string]interface{}{
			"enabled": true,
			"start":   nil,
			"end":     nil,
		},
		"features": map[string]interface{}{
			"showMiniMap":  true,
			"showTimeline": true,
			"showLegend":   true,
			"enableHover":  true,
			"enableDrag":   true,
		},
		"simulation": map[string]interface{}{
			"linkDistance":   120,
			"linkStrength":   0.3,
			"chargeStrength": -400,
		},
	}
}

// Merge deep-merges overrides into base and returns the result.
// Keys whose values are both mappings merge recursively; every other
// override value (scalars and sequences alike) replaces the base value
// wholesale. Keys only present in base are retained. Neither input is
// mutated.
func Merge(base, overrides Config) Config {
	result := make(Config, len(base))
	for key, value := range base {
		result[key] = value
	}
	for key, value := range overrides {
		baseMap, baseOk := asMap(result[key])
		overrideMap, overrideOk := asMap(value)
		if baseOk && overrideOk {
			result[key] = map[string]interface{}(Merge(baseMap, overrideMap))
		} else {
			result[key] = value
		}
	}
	return result
}

// Sub returns the nested mapping under key, or nil if the key is absent
// or not a mapping.
func (c Config) Sub(key string) map[string]interface{} {
	sub, ok := asMap(c[key])
	if !ok {
		return nil
	}
	return sub
}

// Layers returns the configured layer list.
func (c Config) Layers() []interface{} {
	layers, ok := c["layers"].([]interface{})
	if !ok {
		return nil
	}
	return layers
}

// asMap reports whether value is a string-keyed mapping of any of the
// shapes that occur in practice (Config, plain map, Node, Layer).
func asMap(value interface{}) (Config, bool) {
	switch m := value.(type) {
	case Config:
		return m, true
	case map[string]interface{}:
		return Config(m), true
	case Node:
		return Config(m), true
	case Layer:
		return Config(m), true
	default:
		return nil, false
	}
}
