package split

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/onnc-go/memalloc/internal/optypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGemmRequiredInputShape_NoTranspose(t *testing.T) {
	// A: (4, 8), B: (8, 16), C: (4, 16) -> out (4, 16).
	n := testNode(optypes.Gemm,
		[][]int{{4, 8}, {8, 16}, {4, 16}},
		[]int{4, 16},
		nil)

	record := must.M1(newGemmNode(n))
	require.True(t, record.ProposeOutputShape([]int{2, 16}))

	a, err := record.RequiredInputShape(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 8}, a)

	b, err := record.RequiredInputShape(1)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 16}, b)

	c, err := record.RequiredInputShape(2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 16}, c, "C/bias is preserved unchanged, per the FIXME")
}

func TestGemmRequiredInputShape_TransA(t *testing.T) {
	// A: (8, 4) with transA=1 means K=8, M=4. B: (8, 16), C: (4, 16).
	n := testNode(optypes.Gemm,
		[][]int{{8, 4}, {8, 16}, {4, 16}},
		[]int{4, 16},
		map[string]any{AttrTransA: true})

	record := must.M1(newGemmNode(n))
	require.True(t, record.ProposeOutputShape([]int{2, 16}))

	a, err := record.RequiredInputShape(0)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 2}, a, "transA: input 0 required shape is (K, M')")

	b, err := record.RequiredInputShape(1)
	require.NoError(t, err)
	assert.Equal(t, []int{8, 16}, b)
}

func TestGemmRequiredInputShape_TransB(t *testing.T) {
	n := testNode(optypes.Gemm,
		[][]int{{4, 8}, {16, 8}, {4, 16}},
		[]int{4, 16},
		map[string]any{AttrTransB: true})

	record := must.M1(newGemmNode(n))
	require.True(t, record.ProposeOutputShape([]int{4, 4}))

	b, err := record.RequiredInputShape(1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 8}, b, "transB: input 1 required shape is (N', K)")
}

func TestNewGemmNodeRejectsNonRank2A(t *testing.T) {
	n := testNode(optypes.Gemm, [][]int{{2, 4, 8}, {8, 16}, {4, 16}}, []int{4, 16}, nil)
	_, err := newGemmNode(n)
	assert.Error(t, err)
}
