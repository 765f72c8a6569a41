package split

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/onnc-go/memalloc/internal/optypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvRequiredInputShape(t *testing.T) {
	// x: (1, 3, 8, 8), w: (16, 3, 3, 3), b: (16) -> out (1, 16, 6, 6),
	// stride 1, no padding, kernel 3x3.
	n := testNode(optypes.Convolution,
		[][]int{{1, 3, 8, 8}, {16, 3, 3, 3}, {16}},
		[]int{1, 16, 6, 6},
		map[string]any{
			AttrKernelShape: []int{3, 3},
			AttrStrides:     []int{1, 1},
			AttrPadBegin:    []int{0, 0},
			AttrPadEnd:      []int{0, 0},
		})

	record := must.M1(newConvNode(n))

	require.True(t, record.ProposeOutputShape([]int{1, 16, 3, 3}))

	x, err := record.RequiredInputShape(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5, 5}, x)

	w, err := record.RequiredInputShape(1)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 3, 3, 3}, w)

	b, err := record.RequiredInputShape(2)
	require.NoError(t, err)
	assert.Equal(t, []int{16}, b)

	_, err = record.RequiredInputShape(3)
	assert.Error(t, err)
}

func TestNewConvNodeRejectsWrongInputCount(t *testing.T) {
	n := testNode(optypes.Convolution, [][]int{{1, 3, 8, 8}}, []int{1, 16, 6, 6}, nil)
	_, err := newConvNode(n)
	assert.Error(t, err)
}
