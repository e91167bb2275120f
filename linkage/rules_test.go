package linkage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mullner-go/hclust/linkage"
)

func TestProperties_SquaredInputFlags(t *testing.T) {
	cases := map[linkage.Rule]bool{
		linkage.Single:   false,
		linkage.Complete: false,
		linkage.Average:  false,
		linkage.Weighted: false,
		linkage.Ward:     true,
		linkage.Centroid: true,
		linkage.Median:   true,
	}
	for rule, wantSquared := range cases {
		squared, _ := linkage.Properties(rule)
		assert.Equalf(t, wantSquared, squared, "rule %s", rule)
	}
}

func TestProperties_OrderDependentFlags(t *testing.T) {
	cases := map[linkage.Rule]bool{
		linkage.Single:   false,
		linkage.Complete: false,
		linkage.Average:  false,
		linkage.Weighted: false,
		linkage.Ward:     false,
		linkage.Centroid: true,
		linkage.Median:   true,
	}
	for rule, wantOrdered := range cases {
		_, ordered := linkage.Properties(rule)
		assert.Equalf(t, wantOrdered, ordered, "rule %s", rule)
	}
}

func TestUpdate_Single(t *testing.T) {
	got := linkage.Update(linkage.Single, 0, 3, 5, 1, 1, 1)
	assert.Equal(t, 3.0, got)
}

func TestUpdate_Complete(t *testing.T) {
	got := linkage.Update(linkage.Complete, 0, 3, 5, 1, 1, 1)
	assert.Equal(t, 5.0, got)
}

func TestUpdate_Average(t *testing.T) {
	got := linkage.Update(linkage.Average, 0, 2, 6, 1, 3, 1)
	assert.InDelta(t, (1*2.0+3*6.0)/4, got, 1e-12)
}

func TestUpdate_Weighted(t *testing.T) {
	got := linkage.Update(linkage.Weighted, 0, 2, 6, 1, 1, 1)
	assert.Equal(t, 4.0, got)
}

func TestUpdate_Ward(t *testing.T) {
	got := linkage.Update(linkage.Ward, 1, 4, 9, 1, 1, 1)
	want := ((1+1)*4.0 + (1+1)*9.0 - 1*1.0) / 3
	assert.InDelta(t, want, got, 1e-12)
}

func TestRule_StringAndValid(t *testing.T) {
	assert.Equal(t, "ward", linkage.Ward.String())
	assert.True(t, linkage.Median.Valid())
	assert.False(t, linkage.Rule(99).Valid())
}

func TestParseRule_RoundTripsString(t *testing.T) {
	for r := linkage.Single; r <= linkage.Median; r++ {
		got, err := linkage.ParseRule(r.String())
		assert.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestParseRule_RejectsUnknownName(t *testing.T) {
	_, err := linkage.ParseRule("nonsense")
	assert.Error(t, err)
}
