// Package split implements the Split Node Abstraction and Split Manager of
// §4.4-§4.5: per-operator backward shape propagation used when the pass
// driver's allocation exceeds the target's local memory budget.
//
// Grounded on SplitNode/SplitConv/SplitGemm/SplitMaxPool/SplitReshape and
// SplitNodeManager in the original MemoryAllocation.cpp. Per the design
// note in §9 ("dynamic dispatch over operator kinds"), this package uses a
// tagged variant (one constructor per handled optypes.OpType, dispatched
// from newRecord) plus a shared Node interface, rather than a class
// hierarchy: an unrecognized kind is an explicit ErrUnsupportedOperator
// rather than a virtual-method trap.
//
// Reshape is routed through the Identity policy: its required input shape
// is the proposed output shape verbatim, which does not model reshape's
// actual backward shape relationship.
package split

import "slices"

// Node is the per-graph-node split record contract of §4.4.
type Node interface {
	// OriginalOutputShape returns the node's output shape before any
	// split was proposed.
	OriginalOutputShape() []int

	// ProposeOutputShape asks the record to accept newShape as the
	// node's new output shape. The shared policy (base) accepts a shape
	// of the original rank whose every magnitude is in [1, original] and
	// refuses any other.
	ProposeOutputShape(newShape []int) bool

	// RequiredInputShape computes the shape input at inputIndex must
	// have, given the currently proposed output shape.
	RequiredInputShape(inputIndex int) ([]int, error)
}

// base implements the shared bookkeeping (original/proposed shape,
// invariants S1/S2) that every concrete Node variant embeds.
type base struct {
	original []int
	proposed []int
}

func newBase(outputDims []int) base {
	return base{
		original: slices.Clone(outputDims),
		proposed: slices.Clone(outputDims),
	}
}

// OriginalOutputShape implements Node.
func (b *base) OriginalOutputShape() []int {
	return slices.Clone(b.original)
}

// ProposeOutputShape implements Node's default policy: same rank (S1),
// each magnitude in [1, original] (S2).
func (b *base) ProposeOutputShape(newShape []int) bool {
	if len(newShape) != len(b.original) {
		return false
	}
	for i, d := range newShape {
		if d < 1 || d > b.original[i] {
			return false
		}
	}
	b.proposed = slices.Clone(newShape)
	return true
}
