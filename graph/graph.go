package graph

import (
	"slices"

	"github.com/onnc-go/memalloc/internal/optypes"
	"github.com/onnc-go/memalloc/types/shapes"
)

// Graph is a dataflow DAG: an ordered list of Nodes plus the Values marked
// as the graph's inputs and outputs. It implements the Graph collaborator
// contract of §6: iteration in a stable order, per-node kind/inputs/outputs,
// per-value uses, a strict "is-before" relation, and node creation/insertion
// at an anchor.
//
// The graph is assumed acyclic; nothing here detects cycles.
type Graph struct {
	Inputs  []*Value
	Outputs []*Value
	Nodes   []*Node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{}
}

// AddInput registers v as one of the graph's input values.
func (g *Graph) AddInput(v *Value) {
	g.Inputs = append(g.Inputs, v)
}

// AddOutput registers v as one of the graph's output values.
func (g *Graph) AddOutput(v *Value) {
	g.Outputs = append(g.Outputs, v)
}

// NewNode creates a node of the given kind consuming inputs and producing
// one output per shape in outputShapes, appends it at the end of the
// graph's node order, and records the new node as a use of each input.
func (g *Graph) NewNode(kind optypes.OpType, inputs []*Value, outputShapes ...shapes.Shape) *Node {
	n := &Node{
		Kind:       kind,
		Inputs:     slices.Clone(inputs),
		Attributes: make(map[string]any),
	}
	n.Outputs = make([]*Value, len(outputShapes))
	for i, shape := range outputShapes {
		n.Outputs[i] = &Value{shape: shape, def: n}
	}
	g.append(n)
	for _, in := range inputs {
		in.uses = append(in.uses, n)
	}
	return n
}

func (g *Graph) append(n *Node) {
	n.position = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
}

// InsertBefore splices n into the graph's node order immediately before
// anchor, and renumbers node positions to match.
//
// anchor must already be a node of this graph.
func (g *Graph) InsertBefore(anchor, n *Node) {
	idx := slices.Index(g.Nodes, anchor)
	if idx < 0 {
		panic("graph.InsertBefore: anchor is not a node of this graph")
	}
	g.Nodes = slices.Insert(g.Nodes, idx, n)
	g.renumber()
}

func (g *Graph) renumber() {
	for i, n := range g.Nodes {
		n.position = i
	}
}

// IsBefore implements the graph's strict node ordering: a is before b iff
// a occurs earlier in the graph's node order than b.
func (g *Graph) IsBefore(a, b *Node) bool {
	return a.position < b.position
}

// NonTrivialNodes returns the graph's nodes that are not IsTrivial -- i.e.
// all of them, for graphs built through this package's API. Kept as its
// own accessor so callers (the value-size sweep, the split manager) read
// as "for every real operator" rather than "for every node."
func (g *Graph) NonTrivialNodes() []*Node {
	nodes := make([]*Node, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		if !n.IsTrivial() {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// replaceUses redirects every use of old to new: every node that had old as
// an input now has new instead, and new's use list absorbs old's.
func (g *Graph) replaceUses(old, new *Value) {
	for _, user := range old.uses {
		for i, in := range user.Inputs {
			if in == old {
				user.Inputs[i] = new
			}
		}
		new.uses = append(new.uses, user)
	}
	old.uses = nil
}
