package meminfo

import (
	"github.com/onnc-go/memalloc/graph"
	"github.com/pkg/errors"
)

func duplicateSizeError(v *graph.Value, want, got uint64) error {
	return errors.Errorf("value %s: memory-info collaborator returned inconsistent sizes for the same value (%d, then %d)", v, want, got)
}

// BuildValueSizeMap implements component A (§4.1): a single sweep over the
// graph's non-trivial nodes, querying info for the memory size of every
// input and output value.
//
// Duplicate writes -- a value that is both some node's output and
// another's input -- are idempotent, since info is required to return
// equal sizes for equal values; this is asserted here rather than merely
// assumed, so a misbehaving TargetMemInfo surfaces as an error instead of
// a silently wrong allocation.
func BuildValueSizeMap(g *graph.Graph, info TargetMemInfo) (map[*graph.Value]uint64, error) {
	sizes := make(map[*graph.Value]uint64)
	record := func(v *graph.Value) error {
		size, err := info.ValueMemorySize(v)
		if err != nil {
			return err
		}
		if existing, ok := sizes[v]; ok && existing != size {
			return duplicateSizeError(v, existing, size)
		}
		sizes[v] = size
		return nil
	}

	for _, n := range g.NonTrivialNodes() {
		for _, in := range n.Inputs {
			if err := record(in); err != nil {
				return nil, err
			}
		}
		for _, out := range n.Outputs {
			if err := record(out); err != nil {
				return nil, err
			}
		}
	}
	return sizes, nil
}
