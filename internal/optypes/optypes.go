// Package optypes defines OpType, the closed set of operator kinds the
// memory allocation pass and its graph splitter know how to reason about.
package optypes

import (
	"fmt"

	"github.com/onnc-go/memalloc/internal/utils"
)

// OpType is an enum of the operator kinds the pass understands.
//
// Two kinds, Load and Store, are synthetic: they never appear in a source
// graph, they are inserted by marker insertion (see the graph package's
// InsertLoadStoreMarkers) purely to anchor liveness endpoints, and the split
// manager gives them the shape-preserving Identity split policy.
type OpType int

const (
	Invalid OpType = iota

	// Load and Store are synthetic marker kinds, see the package doc comment.
	Load
	Store

	// Identity covers every operator whose output shape has the same rank
	// and per-axis correspondence as its (sole relevant) input shape:
	// elementwise arithmetic, activations, and similar. This is the
	// INPUT_SIZE_IS_OUTPUT_SIZE bucket of the split node abstraction.
	Identity

	// Reshape is handled like Identity by the splitter (a known limitation,
	// see the split package's doc comment), but is kept as its own kind
	// because it is not an elementwise operator for other purposes.
	Reshape

	// Convolution, Gemm and MaxPool have operator-specific backward
	// shape-propagation rules; see the split package.
	Convolution
	Gemm
	MaxPool

	// Last is a counter, kept last, not a real operator kind.
	Last
)

var names = map[OpType]string{
	Invalid:     "Invalid",
	Load:        "Load",
	Store:       "Store",
	Identity:    "Identity",
	Reshape:     "Reshape",
	Convolution: "Convolution",
	Gemm:        "Gemm",
	MaxPool:     "MaxPool",
}

// String implements fmt.Stringer.
func (op OpType) String() string {
	if name, ok := names[op]; ok {
		return name
	}
	return fmt.Sprintf("OpType(%d)", int(op))
}

// InputSizeIsOutputSize is the set of operator kinds for which
// required-input-shape equals the proposed output shape verbatim (the
// "Identity" split policy of §4.4). Reshape is included: its upstream
// propagation is treated the same way, even though that is not faithful
// to reshape's actual semantics (see the split package's doc comment).
var InputSizeIsOutputSize = utils.SetWith(Identity, Reshape)
