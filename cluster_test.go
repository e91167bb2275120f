package hclust_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mullner-go/hclust"
	"github.com/mullner-go/hclust/linkage"
)

func TestCluster_IntPoints(t *testing.T) {
	items := []int{0, 1, 2, 10, 11, 12}
	metric := func(a, b int) float64 {
		d := a - b
		if d < 0 {
			d = -d
		}
		return float64(d)
	}

	d, err := hclust.Cluster(items, metric, linkage.Single)
	require.NoError(t, err)
	assert.Equal(t, len(items)-1, len(d.Steps))
}

func TestCluster_WithRuleOption(t *testing.T) {
	items := []float64{0, 1, 2, 3}
	metric := func(a, b float64) float64 {
		if a > b {
			return a - b
		}
		return b - a
	}

	d, err := hclust.Cluster(items, metric, linkage.Single, hclust.WithRule(linkage.Complete))
	require.NoError(t, err)
	assert.Equal(t, len(items)-1, len(d.Steps))
}

func TestCluster_RejectsNaNMetric(t *testing.T) {
	items := []int{0, 1, 2}
	metric := func(a, b int) float64 {
		return math.NaN()
	}
	_, err := hclust.Cluster(items, metric, linkage.Single)
	assert.Error(t, err)
}
