// Package memalloc implements the memory allocation pass's driver
// (component F): it wires the value-size map, load/store marker
// insertion, and the allocation engine together, and falls back to the
// graph splitter when the resulting footprint exceeds the target's local
// memory budget.
package memalloc

import "github.com/pkg/errors"

// ErrNoBackend is returned by Pass.Run when no Backend was supplied: the
// Configuration error of §7.
var ErrNoBackend = errors.New("memalloc: no target backend supplied")
