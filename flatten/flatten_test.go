package flatten_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mullner-go/hclust/condensed"
	"github.com/mullner-go/hclust/flatten"
	"github.com/mullner-go/hclust/hac"
	"github.com/mullner-go/hclust/linkage"
)

func fourPointLine(t *testing.T) *condensed.Matrix {
	t.Helper()
	m, err := condensed.NewFunc(4, func(i, j int) (float64, error) {
		return math.Abs(float64(i - j)), nil
	})
	require.NoError(t, err)
	return m
}

func TestByHeight_CutsAtThreshold(t *testing.T) {
	// Complete-link steps: (0,1,1), (2,3,1), (4,5,3). At height 2 the first
	// two merges qualify but the final doubleton merge at distance 3 does
	// not, leaving two pairs.
	d, err := hac.Linkage(fourPointLine(t), linkage.Complete, false)
	require.NoError(t, err)

	groups := flatten.ByHeight(d, 2)
	assert.Equal(t, [][]int{{0, 1}, {2, 3}}, groups)
}

func TestByHeight_ZeroKeepsSingletons(t *testing.T) {
	d, err := hac.Linkage(fourPointLine(t), linkage.Single, false)
	require.NoError(t, err)

	groups := flatten.ByHeight(d, 0)
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, groups)
}

func TestByHeight_LargeHeightMergesAll(t *testing.T) {
	d, err := hac.Linkage(fourPointLine(t), linkage.Single, false)
	require.NoError(t, err)

	groups := flatten.ByHeight(d, 100)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, groups)
}

func TestByCount_ProducesRequestedGroupCount(t *testing.T) {
	d, err := hac.Linkage(fourPointLine(t), linkage.Single, false)
	require.NoError(t, err)

	groups, err := flatten.ByCount(d, 2)
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	total := 0
	for _, g := range groups {
		total += len(g)
	}
	assert.Equal(t, 4, total)
}

func TestByCount_FullCountIsAllSingletons(t *testing.T) {
	d, err := hac.Linkage(fourPointLine(t), linkage.Single, false)
	require.NoError(t, err)

	groups, err := flatten.ByCount(d, 4)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {1}, {2}, {3}}, groups)
}

func TestByCount_RejectsOutOfRange(t *testing.T) {
	d, err := hac.Linkage(fourPointLine(t), linkage.Single, false)
	require.NoError(t, err)

	_, err = flatten.ByCount(d, 0)
	assert.ErrorIs(t, err, flatten.ErrInvalidCount)

	_, err = flatten.ByCount(d, 5)
	assert.ErrorIs(t, err, flatten.ErrInvalidCount)
}
