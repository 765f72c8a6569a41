package split

import (
	"github.com/onnc-go/memalloc/graph"
	"github.com/onnc-go/memalloc/internal/optypes"
)

// Manager owns one split Node record per non-trivial graph node, and
// implements the upstream-propagating split operations of §4.5.
//
// Grounded on SplitNodeManager in the original MemoryAllocation.cpp: it is
// built once per split attempt, over the whole graph, before any shape is
// actually proposed.
type Manager struct {
	records map[*graph.Node]Node
}

// NewManager builds one split record per node in g.NonTrivialNodes(),
// failing on the first node whose operator kind has no split policy.
func NewManager(g *graph.Graph) (*Manager, error) {
	m := &Manager{
		records: make(map[*graph.Node]Node),
	}
	for _, n := range g.NonTrivialNodes() {
		record, err := newRecord(n)
		if err != nil {
			return nil, err
		}
		m.records[n] = record
	}
	return m, nil
}

// newRecord dispatches on n.Kind to build the matching split.Node variant.
// This is the tagged-variant dispatch called out in the package doc
// comment: an unrecognized kind is ErrUnsupportedOperator, never a
// fallback.
func newRecord(n *graph.Node) (Node, error) {
	if n.Kind == optypes.Load || n.Kind == optypes.Store || optypes.InputSizeIsOutputSize.Has(n.Kind) {
		// A Store marker produces no output value.
		var outputDims []int
		if len(n.Outputs) > 0 {
			outputDims = n.Outputs[0].Shape().Dimensions
		}
		return newIdentityNode(outputDims), nil
	}
	switch n.Kind {
	case optypes.Convolution:
		return newConvNode(n)
	case optypes.Gemm:
		return newGemmNode(n)
	case optypes.MaxPool:
		return newMaxPoolNode(n)
	default:
		return nil, unsupportedOperatorError(n.Kind)
	}
}

// SplitByFactor proposes shrinking node's output along axis by factor,
// rounding the new dimension up, then delegates to SplitByShape.
func (m *Manager) SplitByFactor(node *graph.Node, axis, factor int, updateUpstream bool) (bool, error) {
	record := m.records[node]
	original := record.OriginalOutputShape()
	if axis < 0 || axis >= len(original) {
		return false, nil
	}
	newDim := (original[axis] + factor - 1) / factor
	newShape := append([]int(nil), original...)
	newShape[axis] = newDim
	return m.SplitByShape(node, newShape, updateUpstream)
}

// SplitByShape proposes newShape as node's output shape. If accepted and
// updateUpstream is set, it recomputes the required shape of every input
// and recurses into each input's producer node, conjoining every
// recursive result with AND.
//
// There is no rollback if an upstream propagation step fails partway
// through, and no cycle detection: both are preserved rough edges of the
// original (§9).
func (m *Manager) SplitByShape(node *graph.Node, newShape []int, updateUpstream bool) (bool, error) {
	record, ok := m.records[node]
	if !ok {
		return false, unsupportedOperatorError(node.Kind)
	}
	if !record.ProposeOutputShape(newShape) {
		return false, nil
	}
	if !updateUpstream {
		return true, nil
	}
	ok = true
	for i, in := range node.Inputs {
		required, err := record.RequiredInputShape(i)
		if err != nil {
			return false, err
		}
		producer := in.Def()
		if producer == nil {
			// Graph-level input: nothing upstream to propagate into.
			continue
		}
		accepted, err := m.SplitByShape(producer, required, true)
		if err != nil {
			return false, err
		}
		ok = ok && accepted
	}
	return ok, nil
}
