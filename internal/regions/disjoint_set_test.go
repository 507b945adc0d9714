package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisjointSet_Singletons(t *testing.T) {
	ds := NewDisjointSet(5)
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, ds.Find(i))
	}
	assert.False(t, ds.Connected(0, 4))
}

func TestDisjointSet_UnionAttachesToFirstRoot(t *testing.T) {
	ds := NewDisjointSet(4)
	require.True(t, ds.Union(2, 3))
	assert.Equal(t, 2, ds.Find(3))

	require.True(t, ds.Union(0, 3))
	assert.Equal(t, 0, ds.Find(2))
	assert.Equal(t, 0, ds.Find(3))

	assert.False(t, ds.Union(3, 2), "already joined")
	assert.True(t, ds.Connected(0, 2))
	assert.False(t, ds.Connected(0, 1))
}

func TestDisjointSet_PathCompression(t *testing.T) {
	ds := NewDisjointSet(6)
	// Build a chain 0 <- 1 <- 2 <- 3 <- 4 <- 5 by attaching each new root under the previous.
	for i := 5; i > 0; i-- {
		ds.Union(i-1, i)
	}
	assert.Equal(t, 0, ds.Find(5))
	for i := 1; i < 6; i++ {
		assert.Equal(t, 0, ds.parent[i], "node %d should point at the root after Find", i)
	}
}
