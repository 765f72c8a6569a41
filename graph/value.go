// Package graph implements the dataflow-graph collaborator the memory
// allocation pass operates over: nodes producing and consuming Values,
// a dense creation-order position for every node, and the load/store
// marker insertion of §4.2.
package graph

import (
	"fmt"

	"github.com/onnc-go/memalloc/types/shapes"
)

// Value is a producer-side edge identity in the dataflow graph: it carries
// a Shape and knows which Node defines it and which Nodes use it.
//
// Identity is stable across the pass: two Values are the same graph value
// iff they are the same pointer.
type Value struct {
	name string
	shape shapes.Shape

	def  *Node
	uses []*Node
}

// NewValue creates a graph-level input value: one with no defining node.
// Values produced by an operator are created by Graph.NewNode instead.
func NewValue(name string, shape shapes.Shape) *Value {
	return &Value{name: name, shape: shape}
}

// Shape returns the value's shape.
func (v *Value) Shape() shapes.Shape {
	return v.shape
}

// Name returns the value's descriptive name, for printing.
func (v *Value) Name() string {
	return v.name
}

// Def returns the node that produces this value, or nil if it is a
// graph-level input.
func (v *Value) Def() *Node {
	return v.def
}

// Uses returns the nodes that consume this value, in the order they were
// recorded (creation order).
func (v *Value) Uses() []*Node {
	return v.uses
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.name != "" {
		return v.name
	}
	return fmt.Sprintf("%p", v)
}

// copyMetadataFrom copies the shape of src, together with the given name,
// into a new value for a marker node to produce. Mirrors the original
// Load/Store insertion's onnx::Value::copyMetadata.
func copyMetadataFrom(src *Value, name string) *Value {
	return &Value{name: name, shape: src.shape.Clone()}
}
