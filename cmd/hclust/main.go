// Command hclust clusters rows of coordinates into a dendrogram and cuts
// it into flat groups.
package main

import (
	"os"

	"github.com/mullner-go/hclust/internal/cliapp"
)

func main() {
	if err := cliapp.Execute(); err != nil {
		os.Exit(1)
	}
}
