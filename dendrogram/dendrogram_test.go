package dendrogram_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mullner-go/hclust/dendrogram"
)

func rawFixture() *dendrogram.Dendrogram {
	d := dendrogram.New(5)
	d.Append(1, 3, 0.01)
	d.Append(1, 2, 0.02)
	d.Append(0, 4, 0.015)
	d.Append(1, 4, 0.03)
	return d
}

func TestRelabel_Unordered(t *testing.T) {
	got := rawFixture().Relabel(false)
	want := []dendrogram.Step{
		{ClusterA: 1, ClusterB: 3, Dissimilarity: 0.01},
		{ClusterA: 2, ClusterB: 5, Dissimilarity: 0.02},
		{ClusterA: 0, ClusterB: 4, Dissimilarity: 0.015},
		{ClusterA: 6, ClusterB: 7, Dissimilarity: 0.03},
	}
	assert.Equal(t, want, got.Steps)
}

func TestRelabel_Ordered(t *testing.T) {
	got := rawFixture().Relabel(true)
	want := []dendrogram.Step{
		{ClusterA: 1, ClusterB: 3, Dissimilarity: 0.01},
		{ClusterA: 0, ClusterB: 4, Dissimilarity: 0.015},
		{ClusterA: 2, ClusterB: 5, Dissimilarity: 0.02},
		{ClusterA: 6, ClusterB: 7, Dissimilarity: 0.03},
	}
	assert.Equal(t, want, got.Steps)
}

func TestRelabel_IsIdempotent(t *testing.T) {
	once := rawFixture().Relabel(true)
	twice := once.Relabel(true)
	assert.True(t, once.ApproxEqual(twice, 1e-15))
}

func TestApproxEqual_WithinTolerance(t *testing.T) {
	a := dendrogram.New(3)
	a.Append(0, 1, 1.0)
	b := dendrogram.New(3)
	b.Append(0, 1, 1.0+1e-16)
	assert.True(t, a.ApproxEqual(b, 1e-15))
}

func TestApproxEqual_DetectsMismatch(t *testing.T) {
	a := dendrogram.New(3)
	a.Append(0, 1, 1.0)
	b := dendrogram.New(3)
	b.Append(0, 2, 1.0)
	assert.False(t, a.ApproxEqual(b, 1e-15))
}
