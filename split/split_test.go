package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseProposeOutputShape(t *testing.T) {
	b := newBase([]int{4, 8, 8})

	assert.True(t, b.ProposeOutputShape([]int{2, 4, 4}))
	assert.Equal(t, []int{2, 4, 4}, b.proposed)
	assert.Equal(t, []int{4, 8, 8}, b.OriginalOutputShape(), "OriginalOutputShape must not change")

	assert.False(t, b.ProposeOutputShape([]int{2, 4}), "rank mismatch must be rejected (S1)")
	assert.False(t, b.ProposeOutputShape([]int{0, 4, 4}), "magnitude below 1 must be rejected (S2)")
	assert.False(t, b.ProposeOutputShape([]int{5, 4, 4}), "magnitude above original must be rejected (S2)")

	// A rejected proposal must not clobber the previously accepted one.
	assert.Equal(t, []int{2, 4, 4}, b.proposed)
}

func TestOriginalOutputShapeIsIndependentCopy(t *testing.T) {
	b := newBase([]int{4, 8})
	got := b.OriginalOutputShape()
	got[0] = 999
	assert.Equal(t, []int{4, 8}, b.OriginalOutputShape())
}
