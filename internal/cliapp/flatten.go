package cliapp

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mullner-go/hclust/flatten"
)

var (
	flattenInput  string
	flattenHeight float64
	flattenCount  int
)

var flattenCmd = &cobra.Command{
	Use:   "flatten",
	Short: "Cut a dendrogram into flat groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readDendrogram(flattenInput)
		if err != nil {
			return err
		}

		var groups [][]int
		switch {
		case cmd.Flags().Changed("count"):
			groups, err = flatten.ByCount(d, flattenCount)
			if err != nil {
				return err
			}
		case cmd.Flags().Changed("height"):
			groups = flatten.ByHeight(d, flattenHeight)
		default:
			return fmt.Errorf("flatten: exactly one of --height or --count is required")
		}

		for _, g := range groups {
			fmt.Println(joinInts(g))
		}
		return nil
	},
}

func init() {
	flattenCmd.Flags().StringVar(&flattenInput, "input", "", "Path to a JSON-encoded dendrogram (required)")
	flattenCmd.Flags().Float64Var(&flattenHeight, "height", 0, "Cut the dendrogram at this dissimilarity height")
	flattenCmd.Flags().IntVar(&flattenCount, "count", 0, "Cut the dendrogram to produce this many groups")
	flattenCmd.MarkFlagRequired("input")
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf("%d", x)
	}
	return strings.Join(parts, ",")
}
