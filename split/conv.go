package split

import (
	"slices"

	"github.com/onnc-go/memalloc/graph"
	"github.com/pkg/errors"
)

// convNode implements §4.4's Convolution split policy.
//
// Inputs: x (N, C, D1..Dn), w (M, C, k1..kn), b (M). For a proposed output
// (N', M', O1'..On'):
//
//	input 0 (x): (N', C, (O1'-1)*S1 - Pb1 - Pe1 + K1, ...)
//	input 1 (w): (M', C, k1, ..., kn)
//	input 2 (b): (M')
type convNode struct {
	base
	channels int
	kernel   []int
	strides  []int
	padBegin []int
	padEnd   []int
}

func newConvNode(n *graph.Node) (*convNode, error) {
	if len(n.Inputs) != 3 {
		return nil, errors.Errorf("split: Convolution node must have 3 inputs (x, w, b), got %d", len(n.Inputs))
	}
	kernel, err := intsAttr(n.Attributes, AttrKernelShape)
	if err != nil {
		return nil, err
	}
	strides, err := intsAttr(n.Attributes, AttrStrides)
	if err != nil {
		return nil, err
	}
	padBegin, err := intsAttr(n.Attributes, AttrPadBegin)
	if err != nil {
		return nil, err
	}
	padEnd, err := intsAttr(n.Attributes, AttrPadEnd)
	if err != nil {
		return nil, err
	}
	x := n.Inputs[0].Shape()
	if x.Rank() < 2 {
		return nil, errors.Errorf("split: Convolution input x must be at least rank 2, got shape %s", x)
	}
	return &convNode{
		base:     newBase(n.Outputs[0].Shape().Dimensions),
		channels: x.Dim(1),
		kernel:   slices.Clone(kernel),
		strides:  slices.Clone(strides),
		padBegin: slices.Clone(padBegin),
		padEnd:   slices.Clone(padEnd),
	}, nil
}

// RequiredInputShape implements Node.
func (n *convNode) RequiredInputShape(inputIndex int) ([]int, error) {
	numSpatial := len(n.proposed) - 2
	switch inputIndex {
	case 0:
		out := make([]int, len(n.proposed))
		out[0] = n.proposed[0]
		out[1] = n.channels
		for i := 0; i < numSpatial; i++ {
			out[2+i] = (n.proposed[2+i]-1)*n.strides[i] - n.padBegin[i] - n.padEnd[i] + n.kernel[i]
		}
		return out, nil
	case 1:
		out := make([]int, 2+len(n.kernel))
		out[0] = n.proposed[1]
		out[1] = n.channels
		copy(out[2:], n.kernel)
		return out, nil
	case 2:
		return []int{n.proposed[1]}, nil
	default:
		return nil, errors.Errorf("split: Convolution has 3 inputs, invalid input index %d", inputIndex)
	}
}
