package split

import "slices"

// identityNode implements the "Identity" split policy of §4.4: used for
// operators in optypes.InputSizeIsOutputSize, and for the two synthetic
// marker kinds (Load, Store) inserted by graph.InsertLoadStoreMarkers.
//
// Treating markers this way (rather than triggering
// ErrUnsupportedOperator) resolves a gap left open by design: the driver
// only ever attempts a split after marker insertion has already run
// (§4.6 steps 5 then 8), so if markers were treated as unsupported
// operators every split attempt would abort unconditionally. See
// DESIGN.md.
type identityNode struct {
	base
}

func newIdentityNode(outputDims []int) *identityNode {
	return &identityNode{base: newBase(outputDims)}
}

// RequiredInputShape implements Node: the proposed output shape, verbatim.
func (n *identityNode) RequiredInputShape(inputIndex int) ([]int, error) {
	return slices.Clone(n.proposed), nil
}
