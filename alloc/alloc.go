// Package alloc implements the Allocation Engine of §4.3: first-fit-by-
// address placement of live intervals into a single linear address space.
package alloc

import (
	"sort"

	"github.com/onnc-go/memalloc/graph"
	"github.com/onnc-go/memalloc/liveness"
)

// Entry is an allocation entry (§3): a graph value's placement, alongside
// the live interval that justified it.
type Entry struct {
	Value    *graph.Value
	Interval liveness.Interval
	Start    uint64
	Size     uint64
}

// End returns the entry's exclusive end address, Start+Size.
func (e Entry) End() uint64 {
	return e.Start + e.Size
}

// conflicts reports whether the two byte ranges [aStart, aStart+aSize) and
// [bStart, bStart+bSize) overlap. Abutment (one ends exactly where the
// other begins) is not a conflict.
func conflicts(aStart, aSize, bStart, bSize uint64) bool {
	aEnd, bEnd := aStart+aSize, bStart+bSize
	return aStart < bEnd && bStart < aEnd
}

// Allocate places each interval, in the order given, into a growing set of
// disjoint (Start, Size) placements using first-fit-by-address (§4.3):
// for each incoming interval, the conflict set is every already-placed
// entry whose live interval intersects it; sorted by address, the lowest
// address not overlapping any conflicting entry is chosen.
//
// intervals is trusted to already be in the order the caller wants entries
// produced (typically ascending by Start, the liveness collaborator's
// responsibility, not this engine's).
func Allocate(intervals []liveness.Interval, sizeOf func(*graph.Value) uint64) []Entry {
	entries := make([]Entry, 0, len(intervals))
	for _, iv := range intervals {
		size := sizeOf(iv.Value)
		start := placementFor(entries, iv, size)
		entries = append(entries, Entry{
			Value:    iv.Value,
			Interval: iv,
			Start:    start,
			Size:     size,
		})
	}
	return entries
}

// placementFor computes the lowest address at which size bytes fit without
// overlapping any already-placed entry whose live interval intersects iv.
func placementFor(placed []Entry, iv liveness.Interval, size uint64) uint64 {
	conflictSet := make([]Entry, 0, len(placed))
	for _, e := range placed {
		if e.Interval.Intersects(iv) {
			conflictSet = append(conflictSet, e)
		}
	}
	sort.Slice(conflictSet, func(i, j int) bool {
		return conflictSet[i].Start < conflictSet[j].Start
	})

	var candidate uint64
	for _, e := range conflictSet {
		if !conflicts(candidate, size, e.Start, e.Size) {
			break
		}
		candidate = e.End()
	}
	return candidate
}

// Peak returns min_size: the allocation's high-water mark, the largest
// End() over all entries. Zero for an empty allocation.
func Peak(entries []Entry) uint64 {
	var peak uint64
	for _, e := range entries {
		if end := e.End(); end > peak {
			peak = end
		}
	}
	return peak
}

// WorstCase returns max_size: the sum of every entry's size, i.e. the
// footprint with no sharing.
func WorstCase(entries []Entry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Size
	}
	return total
}
