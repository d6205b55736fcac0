package graph

import (
	"github.com/siherrmann/kgraph/model"
)

// FillTimeline fills unset timeline bounds from the node timespans.
// Every defined timespan start and end is collected into one pool; an
// unset "start" becomes the pool minimum and an unset "end" the pool
// maximum. Bounds that are already set are never overwritten, and an
// empty pool leaves unset bounds unset. Best effort, no error conditions.
func FillTimeline(timeline map[string]interface{}, nodes []model.Node) {
	startSet := timeline["start"] != nil
	endSet := timeline["end"] != nil
	if startSet && endSet {
		return
	}

	var pool []float64
	for _, node := range nodes {
		start, end, hasStart, hasEnd := node.Timespan()
		if hasStart {
			pool = append(pool, start)
		}
		if hasEnd {
			pool = append(pool, end)
		}
	}
	if len(pool) == 0 {
		return
	}

	min, max := pool[0], pool[0]
	for _, value := range pool[1:] {
		if value < min {
			min = value
		}
		if value > max {
			max = value
		}
	}

	if !startSet {
		timeline["start"] = min
	}
	if !endSet {
		timeline["end"] = max
	}
}
