package condensed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mullner-go/hclust/condensed"
)

func TestClone_IsIndependent(t *testing.T) {
	m, err := condensed.New(3)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 4))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestMapInPlace_Squares(t *testing.T) {
	m, err := condensed.NewFunc(3, func(i, j int) (float64, error) { return float64(j - i), nil })
	require.NoError(t, err)

	m.MapInPlace(func(x float64) float64 { return x * x })
	v, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)
}

func TestMap_ReturnsNewMatrixAndLeavesOriginalUntouched(t *testing.T) {
	m, err := condensed.NewFunc(3, func(i, j int) (float64, error) { return float64(j - i), nil })
	require.NoError(t, err)

	squared := m.Map(func(x float64) float64 { return x * x })

	v, err := squared.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	orig, err := m.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, orig)
}

func TestSubmatrix_PreservesOrder(t *testing.T) {
	m, err := condensed.NewFunc(5, func(i, j int) (float64, error) { return float64(10*i + j), nil })
	require.NoError(t, err)

	sub, err := m.Submatrix([]int{1, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 3, sub.Size())

	v, err := sub.At(0, 1) // corresponds to original (1,3)
	require.NoError(t, err)
	orig, err := m.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, orig, v)
}

func TestCentroid_PicksSmallestAverage(t *testing.T) {
	// A star: 0 is close to everyone, others are far apart.
	d := [][]float64{
		{0, 1, 1, 1},
		{1, 0, 5, 5},
		{1, 5, 0, 5},
		{1, 5, 5, 0},
	}
	m, err := condensed.NewFunc(4, func(i, j int) (float64, error) { return d[i][j], nil })
	require.NoError(t, err)
	assert.Equal(t, 0, m.Centroid())
}
