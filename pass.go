package memalloc

import (
	"github.com/onnc-go/memalloc/alloc"
	"github.com/onnc-go/memalloc/graph"
	"github.com/onnc-go/memalloc/liveness"
	"github.com/onnc-go/memalloc/meminfo"
	"github.com/onnc-go/memalloc/split"
)

// Backend is the target backend collaborator of §4.6 step 1: the one
// thing the driver needs from whatever compiler backend it is embedded
// in is a TargetMemInfo.
type Backend interface {
	MemInfo() meminfo.TargetMemInfo
}

// Pass runs the memory allocation pass over a graph.
type Pass struct {
	Backend Backend

	// Liveness is the liveness collaborator queried in step 3. Defaults
	// to liveness.PositionAnalysis{} when nil.
	Liveness liveness.Analysis
}

// Run executes the pass's driver sequence (§4.6) over g:
//
//  1. validate a backend was supplied
//  2. (no persisted allocation state to reset -- Run is stateless across
//     calls; each call produces an independent Report)
//  3. obtain liveness intervals
//  4. populate the value-size map
//  5. insert load/store markers
//  6. run allocation in liveness order
//  7. compute min_size (peak) and max_size (sum)
//  8. if min_size exceeds the local memory budget, attempt a split
//  9. return the report
//
// Run always reports the graph as unchanged in the sense that it never
// signals a semantic mutation, even though step 5 does mutate g in
// place -- this mirrors runOnModule's own return-status discrepancy
// (the split package's Manager documents the analogous rough edges
// preserved from the original).
func (p *Pass) Run(g *graph.Graph) (*Report, error) {
	if p.Backend == nil {
		return nil, ErrNoBackend
	}
	analysis := p.Liveness
	if analysis == nil {
		analysis = liveness.PositionAnalysis{}
	}
	info := p.Backend.MemInfo()

	intervals, err := analysis.Intervals(g)
	if err != nil {
		return nil, err
	}

	sizes, err := meminfo.BuildValueSizeMap(g, info)
	if err != nil {
		return nil, err
	}

	g.InsertLoadStoreMarkers()

	entries := alloc.Allocate(intervals, func(v *graph.Value) uint64 { return sizes[v] })

	report := &Report{
		MinSize: alloc.Peak(entries),
		MaxSize: alloc.WorstCase(entries),
		Entries: entries,
	}

	if report.MinSize > info.LocalMemorySize() {
		attempt, err := split.AttemptDriverSplit(g)
		if err != nil {
			return nil, err
		}
		report.Split = attempt
	}

	return report, nil
}
