package split

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/onnc-go/memalloc/graph"
	"github.com/onnc-go/memalloc/internal/optypes"
	"github.com/onnc-go/memalloc/types/shapes"
)

func f32(dims ...int) shapes.Shape {
	return shapes.Make(dtypes.Float32, dims...)
}

func testNode(kind optypes.OpType, inputShapes [][]int, outputShape []int, attrs map[string]any) *graph.Node {
	inputs := make([]*graph.Value, len(inputShapes))
	for i, dims := range inputShapes {
		inputs[i] = graph.NewValue("in", f32(dims...))
	}
	if attrs == nil {
		attrs = map[string]any{}
	}
	n := &graph.Node{
		Kind:       kind,
		Inputs:     inputs,
		Attributes: attrs,
	}
	n.Outputs = []*graph.Value{graph.NewValue("out", f32(outputShape...))}
	return n
}
