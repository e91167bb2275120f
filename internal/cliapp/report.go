package cliapp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yuin/goldmark"

	"github.com/mullner-go/hclust/dendrogram"
	"github.com/mullner-go/hclust/flatten"
)

var (
	reportInput string
	reportCount int
	reportHTML  bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a dendrogram as Markdown or HTML",
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := readDendrogram(reportInput)
		if err != nil {
			return err
		}

		var groups [][]int
		if reportCount > 0 {
			groups, err = flatten.ByCount(d, reportCount)
			if err != nil {
				return err
			}
		}

		md := renderReportMarkdown(d, groups)
		if !reportHTML {
			fmt.Print(md)
			return nil
		}

		var buf bytes.Buffer
		if err := goldmark.Convert([]byte(md), &buf); err != nil {
			return fmt.Errorf("rendering HTML: %w", err)
		}
		fmt.Print(buf.String())
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportInput, "input", "", "Path to a JSON-encoded dendrogram (required)")
	reportCmd.Flags().IntVar(&reportCount, "count", 0, "Include flat-cluster sizes at this group count")
	reportCmd.Flags().BoolVar(&reportHTML, "html", false, "Render HTML instead of Markdown source")
	reportCmd.MarkFlagRequired("input")
}

func renderReportMarkdown(d *dendrogram.Dendrogram, groups [][]int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Clustering report\n\n")
	fmt.Fprintf(&b, "- Observations: %d\n", d.Observations)
	fmt.Fprintf(&b, "- Merges: %d\n", len(d.Steps))

	if len(d.Steps) > 0 {
		fmt.Fprintf(&b, "- First merge height: %.6f\n", d.Steps[0].Dissimilarity)
		fmt.Fprintf(&b, "- Last merge height: %.6f\n", d.Steps[len(d.Steps)-1].Dissimilarity)
	}

	if groups != nil {
		fmt.Fprintf(&b, "\n## Flat clusters (%d groups)\n\n", len(groups))
		for i, g := range groups {
			fmt.Fprintf(&b, "- Group %d: %d members (%s)\n", i, len(g), joinInts(g))
		}
	}

	return b.String()
}
