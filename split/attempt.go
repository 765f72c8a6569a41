package split

import "github.com/onnc-go/memalloc/graph"

// splitAxis and splitFactor are the driver policy's fixed choice of "how"
// to split when asked only "whether": halve the leading (batch) axis of
// every graph output. §4.5 leaves the choice of axis/factor to the driver;
// this mirrors tryToSplitGraph's use of axis 0, factor 2 in the original.
const (
	splitAxis   = 0
	splitFactor = 2
)

// Attempt records the outcome of AttemptDriverSplit: whether each graph
// output's producer accepted the halving proposal.
type Attempt struct {
	// Outputs maps each graph output value to whether its producing node
	// (and everything reachable upstream from it) accepted the split.
	Outputs map[*graph.Value]bool
}

// Succeeded reports whether at least one graph output was attempted and
// every attempted output accepted the split. Outputs skipped by
// AttemptDriverSplit are not in Outputs and do not count.
func (a *Attempt) Succeeded() bool {
	if len(a.Outputs) == 0 {
		return false
	}
	for _, ok := range a.Outputs {
		if !ok {
			return false
		}
	}
	return true
}

// AttemptDriverSplit implements §4.5's driver policy: build a fresh
// Manager over g, then for every graph output with a defining node,
// attempt to halve its leading axis, propagating upstream.
//
// Outputs with no defining node (a graph input passed straight through as
// an output) are skipped: there is nothing to split.
func AttemptDriverSplit(g *graph.Graph) (*Attempt, error) {
	m, err := NewManager(g)
	if err != nil {
		return nil, err
	}
	attempt := &Attempt{Outputs: make(map[*graph.Value]bool)}
	for _, out := range g.Outputs {
		n := out.Def()
		if n == nil {
			continue
		}
		ok, err := m.SplitByFactor(n, splitAxis, splitFactor, true)
		if err != nil {
			return nil, err
		}
		attempt.Outputs[out] = ok
	}
	return attempt, nil
}
