package hac_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/mullner-go/hclust/condensed"
	"github.com/mullner-go/hclust/hac"
	"github.com/mullner-go/hclust/linkage"
)

var benchSizes = []int{20, 50, 100}

var benchRules = []linkage.Rule{
	linkage.Single,
	linkage.Complete,
	linkage.Average,
	linkage.Weighted,
	linkage.Ward,
	linkage.Centroid,
	linkage.Median,
}

func BenchmarkLinkage(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		n := n
		r := rand.New(rand.NewSource(1))
		cdm, err := condensed.NewFunc(n, func(i, j int) (float64, error) {
			return r.Float64(), nil
		})
		if err != nil {
			b.Fatalf("building matrix: %v", err)
		}

		for _, rule := range benchRules {
			rule := rule
			b.Run(fmt.Sprintf("n=%d/%s", n, rule), func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if _, err := hac.Linkage(cdm, rule, false); err != nil {
						b.Fatalf("linkage: %v", err)
					}
				}
			})
		}
	}
}
