package split

import (
	"github.com/onnc-go/memalloc/internal/optypes"
	"github.com/pkg/errors"
)

// ErrUnsupportedOperator is returned when the split manager encounters a
// non-trivial graph node whose optypes.OpType has no split record variant.
// Per §4.4, this is treated as a programmer error that aborts the whole
// split attempt rather than a recoverable per-node failure.
var ErrUnsupportedOperator = errors.New("split: unsupported operator")

func unsupportedOperatorError(kind optypes.OpType) error {
	return errors.Wrapf(ErrUnsupportedOperator, "operator kind %s", kind)
}
