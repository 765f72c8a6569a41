package split

import (
	"github.com/onnc-go/memalloc/graph"
	"github.com/pkg/errors"
)

// gemmNode implements §4.4's Gemm split policy.
//
// Inputs A (M,K) or (K,M) if transA, B (K,N) or (N,K) if transB, C (M,N).
// K is drawn from the original A shape, honoring transA. For a proposed
// output (M', N'):
//
//	input 0: (K, M') if transA else (M', K)
//	input 1: (N', K) if transB else (K, N')
//	input 2: unchanged (the FIXME of §9/§4.4 -- deliberately not shrunk)
type gemmNode struct {
	base
	transA, transB bool
	k              int
	cShape         []int
}

func newGemmNode(n *graph.Node) (*gemmNode, error) {
	if len(n.Inputs) != 3 {
		return nil, errors.Errorf("split: Gemm node must have 3 inputs (A, B, C), got %d", len(n.Inputs))
	}
	a := n.Inputs[0].Shape()
	if a.Rank() != 2 {
		return nil, errors.Errorf("split: Gemm input A must be rank 2, got shape %s", a)
	}
	transA := boolAttr(n.Attributes, AttrTransA)
	transB := boolAttr(n.Attributes, AttrTransB)
	k := a.Dim(1)
	if transA {
		k = a.Dim(0)
	}
	return &gemmNode{
		base:   newBase(n.Outputs[0].Shape().Dimensions),
		transA: transA,
		transB: transB,
		k:      k,
		cShape: append([]int(nil), n.Inputs[2].Shape().Dimensions...),
	}, nil
}

// RequiredInputShape implements Node.
func (n *gemmNode) RequiredInputShape(inputIndex int) ([]int, error) {
	switch inputIndex {
	case 0:
		if n.transA {
			return []int{n.k, n.proposed[0]}, nil
		}
		return []int{n.proposed[0], n.k}, nil
	case 1:
		if n.transB {
			return []int{n.proposed[1], n.k}, nil
		}
		return []int{n.k, n.proposed[1]}, nil
	case 2:
		// [FIXME, preserved from the original] the bias/C shape is
		// returned unchanged even when the output shrinks; see §9.
		return append([]int(nil), n.cShape...), nil
	default:
		return nil, errors.Errorf("split: Gemm has 3 inputs, invalid input index %d", inputIndex)
	}
}
