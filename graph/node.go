package graph

import "github.com/onnc-go/memalloc/internal/optypes"

// Node is one operator application in the graph: a mutable,
// in-place-rewritable dataflow node.
type Node struct {
	Kind       optypes.OpType
	Inputs     []*Value
	Outputs    []*Value
	Attributes map[string]any

	// position is the node's index in the graph's creation/topological
	// order. It is the "dense linear ordering of graph nodes" that live
	// intervals and IsBefore are defined over (§3, §4.2).
	position int
}

// IsTrivial reports whether the node is one that the value-size sweep and
// the split manager skip (only the graph's sentinel "no kind" nodes, which
// this Go model never actually materializes -- kept for symmetry with the
// original onnx::kUndefined check). Always false for nodes built through
// Graph.NewNode.
func (n *Node) IsTrivial() bool {
	return n.Kind == optypes.Invalid
}

// Position returns the node's position in the graph's node ordering.
func (n *Node) Position() int {
	return n.position
}
