package cliapp

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mullner-go/hclust/condensed"
	"github.com/mullner-go/hclust/hac"
	"github.com/mullner-go/hclust/linkage"
)

var (
	clusterInput  string
	clusterRule   string
	clusterReuse  bool
	clusterOutput string
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Cluster rows of a CSV of coordinates",
	RunE: func(cmd *cobra.Command, args []string) error {
		rule := clusterRule
		if !cmd.Flags().Changed("rule") && cfg != nil && cfg.Rule != "" {
			rule = cfg.Rule
		}
		r, err := linkage.ParseRule(rule)
		if err != nil {
			return err
		}

		points, err := readCSVPoints(clusterInput)
		if err != nil {
			return err
		}

		cdm, err := condensed.NewFunc(len(points), func(i, j int) (float64, error) {
			return euclidean(points[i], points[j]), nil
		})
		if err != nil {
			return fmt.Errorf("building distance matrix: %w", err)
		}

		d, err := hac.Linkage(cdm, r, clusterReuse)
		if err != nil {
			return err
		}

		if clusterOutput != "" {
			return writeDendrogram(clusterOutput, d)
		}
		for _, s := range d.Steps {
			fmt.Printf("%d\t%d\t%.6f\n", s.ClusterA, s.ClusterB, s.Dissimilarity)
		}
		return nil
	},
}

func init() {
	clusterCmd.Flags().StringVar(&clusterInput, "input", "", "Path to a CSV file of coordinate rows (required)")
	clusterCmd.Flags().StringVar(&clusterRule, "rule", "single", "Linkage rule (single, complete, average, weighted, ward, centroid, median)")
	clusterCmd.Flags().BoolVar(&clusterReuse, "reuse", false, "Let the linkage algorithm mutate the computed distance matrix in place")
	clusterCmd.Flags().StringVar(&clusterOutput, "output", "", "Write the resulting dendrogram as JSON to this path instead of printing steps")
	clusterCmd.MarkFlagRequired("input")
}

func euclidean(a, b []float64) float64 {
	var sumSq float64
	for i := range a {
		diff := a[i] - b[i]
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq)
}

func readCSVPoints(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	points := make([][]float64, len(rows))
	for i, row := range rows {
		point := make([]float64, len(row))
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d field %d: %w", i, j, err)
			}
			point[j] = v
		}
		points[i] = point
	}
	return points, nil
}
