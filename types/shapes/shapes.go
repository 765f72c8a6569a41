// Package shapes defines the tensor Shape used throughout the pass: an
// element dtype plus an ordered sequence of dimension sizes.
package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// Shape describes a tensor value: its element type and dimensions.
//
// A scalar has an empty Dimensions slice. An invalid Shape (DType ==
// dtypes.InvalidDType) represents "no shape known yet."
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// Invalid returns a Shape with an invalid dtype, used as a zero/sentinel value.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Make creates a new Shape with the given dtype and dimensions.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	return Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
}

// Ok reports whether the shape has a valid dtype.
func (s Shape) Ok() bool {
	return s.DType != dtypes.InvalidDType
}

// IsScalar reports whether the shape has rank 0.
func (s Shape) IsScalar() bool {
	return s.Ok() && len(s.Dimensions) == 0
}

// IsTuple is always false: this pass has no notion of tuple shapes.
func (s Shape) IsTuple() bool {
	return false
}

// Rank returns the number of dimensions.
func (s Shape) Rank() int {
	return len(s.Dimensions)
}

// Dim returns the size of the dimension at the given axis. Negative axis
// values count from the end, as in Python. It panics if axis is out of range.
func (s Shape) Dim(axis int) int {
	rank := s.Rank()
	adjusted := axis
	if adjusted < 0 {
		adjusted += rank
	}
	if adjusted < 0 || adjusted >= rank {
		panic(fmt.Sprintf("shapes.Shape.Dim: axis %d out of range for rank %d", axis, rank))
	}
	return s.Dimensions[adjusted]
}

// Size returns the number of elements in the shape (the product of its
// dimensions; 1 for a scalar).
func (s Shape) Size() int {
	total := 1
	for _, d := range s.Dimensions {
		total *= d
	}
	return total
}

// Memory returns the number of bytes required to store the shape's tensor,
// i.e. Size() times the dtype's byte width.
func (s Shape) Memory() uint64 {
	return uint64(s.Size()) * uint64(s.DType.Size())
}

// Clone returns an independent copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// Equal reports whether two shapes have the same dtype and dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.DType == other.DType && slices.Equal(s.Dimensions, other.Dimensions)
}

// Check verifies the shape has the given dtype and dimensions, returning a
// descriptive error otherwise.
func (s Shape) Check(dtype dtypes.DType, dimensions ...int) error {
	want := Make(dtype, dimensions...)
	if !s.Equal(want) {
		return errors.Errorf("shape %s doesn't match expected shape %s", s, want)
	}
	return nil
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	if !s.Ok() {
		return "InvalidShape"
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}
