package cliapp

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mullner-go/hclust/dendrogram"
)

// dendrogramFile is the minimal on-disk JSON shape a dendrogram round-trips
// through between the cluster, flatten, and report subcommands.
type dendrogramFile struct {
	Observations int               `json:"observations"`
	Steps        []dendrogram.Step `json:"steps"`
}

func writeDendrogram(path string, d *dendrogram.Dendrogram) error {
	df := dendrogramFile{Observations: d.Observations, Steps: d.Steps}
	data, err := json.MarshalIndent(df, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dendrogram: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing dendrogram: %w", err)
	}
	return nil
}

func readDendrogram(path string) (*dendrogram.Dendrogram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dendrogram: %w", err)
	}
	var df dendrogramFile
	if err := json.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parsing dendrogram: %w", err)
	}
	d := dendrogram.New(df.Observations)
	for _, s := range df.Steps {
		d.Append(s.ClusterA, s.ClusterB, s.Dissimilarity)
	}
	return d, nil
}
