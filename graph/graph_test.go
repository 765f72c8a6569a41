package graph

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/onnc-go/memalloc/internal/optypes"
	"github.com/onnc-go/memalloc/types/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f32(dims ...int) shapes.Shape {
	return shapes.Make(dtypes.Float32, dims...)
}

func TestNewNodeRecordsUses(t *testing.T) {
	g := New()
	in := NewValue("x", f32(4))
	g.AddInput(in)

	relu := g.NewNode(optypes.Identity, []*Value{in}, f32(4))
	require.Len(t, relu.Outputs, 1)
	assert.Equal(t, []*Node{relu}, in.Uses())
	assert.Same(t, relu, relu.Outputs[0].Def())
}

func TestIsBeforeAndInsertBefore(t *testing.T) {
	g := New()
	in := NewValue("x", f32(4))
	g.AddInput(in)
	n1 := g.NewNode(optypes.Identity, []*Value{in}, f32(4))
	n2 := g.NewNode(optypes.Identity, []*Value{n1.Outputs[0]}, f32(4))
	assert.True(t, g.IsBefore(n1, n2))
	assert.False(t, g.IsBefore(n2, n1))

	inserted := &Node{Kind: optypes.Identity, Attributes: map[string]any{}}
	g.InsertBefore(n2, inserted)
	assert.Equal(t, []*Node{n1, inserted, n2}, g.Nodes)
	assert.True(t, g.IsBefore(n1, inserted))
	assert.True(t, g.IsBefore(inserted, n2))
}

func TestInsertLoadStoreMarkers_SingleChain(t *testing.T) {
	g := New()
	in := NewValue("x", f32(4))
	g.AddInput(in)
	relu := g.NewNode(optypes.Identity, []*Value{in}, f32(4))
	g.AddOutput(relu.Outputs[0])

	g.InsertLoadStoreMarkers()

	require.Len(t, g.Nodes, 3)
	assert.Equal(t, optypes.Load, g.Nodes[0].Kind)
	assert.Equal(t, optypes.Identity, g.Nodes[1].Kind)
	assert.Equal(t, optypes.Store, g.Nodes[2].Kind)

	// The Identity node's input was redirected to the Load marker's output.
	assert.Same(t, g.Nodes[0].Outputs[0], g.Nodes[1].Inputs[0])
	// The Store node consumes the graph output value directly.
	assert.Same(t, g.Outputs[0], g.Nodes[2].Inputs[0])
}

func TestInsertLoadStoreMarkers_MultipleUses(t *testing.T) {
	g := New()
	in := NewValue("x", f32(4))
	g.AddInput(in)
	a := g.NewNode(optypes.Identity, []*Value{in}, f32(4))
	b := g.NewNode(optypes.Identity, []*Value{in}, f32(4))
	g.AddOutput(a.Outputs[0])
	g.AddOutput(b.Outputs[0])

	g.InsertLoadStoreMarkers()

	// A single Load marker is inserted before the earliest use of x (a).
	loadCount := 0
	for _, n := range g.Nodes {
		if n.Kind == optypes.Load {
			loadCount++
		}
	}
	assert.Equal(t, 1, loadCount)
	assert.Same(t, a.Inputs[0], b.Inputs[0], "both uses must be redirected to the same Load output")
}
