package split

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/onnc-go/memalloc/internal/optypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxPoolRequiredInputShape(t *testing.T) {
	// x: (1, 3, 8, 8) -> out (1, 3, 4, 4), kernel 2x2, stride 2, no padding.
	n := testNode(optypes.MaxPool,
		[][]int{{1, 3, 8, 8}},
		[]int{1, 3, 4, 4},
		map[string]any{
			AttrKernelShape: []int{2, 2},
			AttrStrides:     []int{2, 2},
			AttrPadBegin:    []int{0, 0},
			AttrPadEnd:      []int{0, 0},
		})

	record := must.M1(newMaxPoolNode(n))
	require.True(t, record.ProposeOutputShape([]int{1, 3, 2, 2}))

	x, err := record.RequiredInputShape(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4, 4}, x, "channel dim copied straight from the proposed output, no M->C widening")
}

func TestNewMaxPoolNodeRejectsWrongInputCount(t *testing.T) {
	n := testNode(optypes.MaxPool, [][]int{{1, 3, 8, 8}, {1}}, []int{1, 3, 4, 4}, map[string]any{
		AttrKernelShape: []int{2, 2}, AttrStrides: []int{2, 2}, AttrPadBegin: []int{0, 0}, AttrPadEnd: []int{0, 0},
	})
	_, err := newMaxPoolNode(n)
	assert.Error(t, err)
}
