// Package liveness computes live intervals for graph values: the Liveness
// Analysis collaborator of §6. The allocation engine treats its output as
// immutable and consumes it in the order it is returned.
package liveness

import (
	"sort"

	"github.com/onnc-go/memalloc/graph"
	"github.com/onnc-go/memalloc/internal/utils"
)

// Interval is a half-open range [Start, End) over the graph's dense node
// position ordering, paired with exactly one graph value (§3).
//
// Two intervals intersect iff their ranges overlap on at least one
// position.
type Interval struct {
	Value *graph.Value
	Start int
	End   int
}

// Intersects reports whether the two intervals share at least one position.
func (iv Interval) Intersects(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// Analysis is the Liveness Analysis collaborator: it returns an ordered,
// immutable list of intervals covering all non-trivial graph values.
type Analysis interface {
	Intervals(g *graph.Graph) ([]Interval, error)
}

// PositionAnalysis is the concrete liveness analysis used by this pass's
// driver and its tests. For every value produced or consumed by a
// non-trivial node, the live interval runs from the position of its
// defining node (or, for graph inputs, position 0) to one past the
// position of its last use -- the narrowest interval consistent with a
// value having to survive from its definition through its final
// consumer. Intervals are returned sorted by Start, ascending, which is
// the order §4.3 assumes.
type PositionAnalysis struct{}

// Intervals implements Analysis.
func (PositionAnalysis) Intervals(g *graph.Graph) ([]Interval, error) {
	var intervals []Interval
	seen := utils.MakeSet[*graph.Value](len(g.Nodes))

	record := func(v *graph.Value, defPos int) {
		if seen.Has(v) {
			return
		}
		seen.Insert(v)
		end := defPos
		for _, u := range v.Uses() {
			if u.Position() >= end {
				end = u.Position() + 1
			}
		}
		if end <= defPos {
			end = defPos + 1
		}
		intervals = append(intervals, Interval{Value: v, Start: defPos, End: end})
	}

	for _, v := range g.Inputs {
		if len(v.Uses()) > 0 {
			record(v, 0)
		}
	}
	for _, n := range g.NonTrivialNodes() {
		for _, out := range n.Outputs {
			record(out, n.Position())
		}
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].Start < intervals[j].Start
	})
	return intervals, nil
}
