package memalloc

import (
	"fmt"
	"io"

	"github.com/onnc-go/memalloc/alloc"
	"github.com/onnc-go/memalloc/split"
)

const bytesPerMiB = 1024 * 1024

// Report is the pass's output: the two footprint figures of §4.6 step 7,
// the allocation entries that produced them, and, when the budget was
// exceeded, the outcome of the split attempt.
type Report struct {
	MinSize uint64
	MaxSize uint64
	Entries []alloc.Entry

	// Split is nil unless MinSize exceeded the target's local memory
	// budget and a split attempt was made.
	Split *split.Attempt
}

// WriteSummary writes the pass's single report line (§6):
//
//	Size req. Min = <bytes>(<MiB> mb) Max = <bytes>(<MiB> mb)
func (r *Report) WriteSummary(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Size req. Min = %d(%.2f mb) Max = %d(%.2f mb)\n",
		r.MinSize, mib(r.MinSize), r.MaxSize, mib(r.MaxSize))
	return err
}

// WritePrint writes the per-entry dump format of §6's print operation, one
// line per allocation entry:
//
//	<value_name>: [<start>, <end>) (total: <size>) [<live_start>, <live_end>]
//
// The first write error, if any, aborts the remaining lines and is
// returned, rather than accumulating a list of per-line errors.
func (r *Report) WritePrint(w io.Writer) error {
	var firstErr error
	write := func(format string, args ...any) {
		if firstErr != nil {
			return
		}
		if _, err := fmt.Fprintf(w, format, args...); err != nil {
			firstErr = err
		}
	}
	for _, e := range r.Entries {
		write("%s: [%d, %d) (total: %d) [%d, %d]\n",
			e.Value, e.Start, e.End(), e.Size, e.Interval.Start, e.Interval.End)
	}
	return firstErr
}

func mib(bytes uint64) float64 {
	return float64(bytes) / bytesPerMiB
}
