package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityNodeRequiredInputShape(t *testing.T) {
	n := newIdentityNode([]int{4, 8})
	require.True(t, n.ProposeOutputShape([]int{2, 8}))

	got, err := n.RequiredInputShape(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 8}, got)

	// The returned slice must not alias internal state.
	got[0] = 999
	got2, err := n.RequiredInputShape(0)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 8}, got2)
}
