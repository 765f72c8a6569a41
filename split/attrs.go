package split

import "github.com/pkg/errors"

// Attribute keys read off graph.Node.Attributes by the operator-specific
// split records. Named to mirror Split.h / GetConvKernelShape /
// GetAttrVals / GetPads in the original.
const (
	AttrKernelShape = "kernel_shape"
	AttrStrides     = "strides"
	AttrPadBegin    = "pad_begin"
	AttrPadEnd      = "pad_end"
	AttrTransA      = "trans_a"
	AttrTransB      = "trans_b"
)

func intsAttr(attrs map[string]any, key string) ([]int, error) {
	v, ok := attrs[key]
	if !ok {
		return nil, errors.Errorf("split: missing required attribute %q", key)
	}
	ints, ok := v.([]int)
	if !ok {
		return nil, errors.Errorf("split: attribute %q has type %T, want []int", key, v)
	}
	return ints, nil
}

func boolAttr(attrs map[string]any, key string) bool {
	v, _ := attrs[key].(bool)
	return v
}
