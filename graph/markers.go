package graph

import "github.com/onnc-go/memalloc/internal/optypes"

// InsertLoadStoreMarkers rewrites the graph in place to create explicit
// liveness anchors, per §4.2. It is grounded on InsertLoadStoreNode in the
// original MemoryAllocation.cpp.
//
// For each graph input value v, a Load marker is inserted immediately
// before v's earliest use, and every use of v is redirected to the
// marker's output. For each graph output value v, a Store marker
// consuming v is inserted immediately before v's latest use -- or, if v
// has no downstream use at all, appended at the very end of the graph's
// node order, since there is no use to anchor against and the store must
// still come after v's own producer.
//
// Ties among uses at the same position cannot occur here: node positions
// are unique, so "is-before" is already a total order. A more general
// Graph implementation with genuinely incomparable uses would need an
// explicit, documented tie-break; insertion order (first found) is used
// below for that hypothetical case.
func (g *Graph) InsertLoadStoreMarkers() {
	for _, v := range g.Inputs {
		if len(v.uses) == 0 {
			continue
		}
		first := earliestUse(v.uses)
		loadNode := &Node{Kind: optypes.Load, Attributes: make(map[string]any)}
		out := copyMetadataFrom(v, v.name)
		out.def = loadNode
		loadNode.Outputs = []*Value{out}
		g.InsertBefore(first, loadNode)
		g.replaceUses(v, out)
	}

	for _, v := range g.Outputs {
		storeNode := &Node{Kind: optypes.Store, Inputs: []*Value{v}, Attributes: make(map[string]any)}
		if len(v.uses) == 0 {
			g.append(storeNode)
		} else {
			g.InsertBefore(latestUse(v.uses), storeNode)
		}
		v.uses = append(v.uses, storeNode)
	}
}

// earliestUse returns the use such that no other use precedes it.
func earliestUse(uses []*Node) *Node {
	first := uses[0]
	for _, u := range uses[1:] {
		if u.position < first.position {
			first = u
		}
	}
	return first
}

// latestUse returns the use such that no other use follows it.
func latestUse(uses []*Node) *Node {
	last := uses[0]
	for _, u := range uses[1:] {
		if u.position > last.position {
			last = u
		}
	}
	return last
}
