// Package cliapp holds the hclust command-line tree: cluster, flatten, and
// report subcommands, plus the optional YAML config file that supplies
// their defaults.
package cliapp

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	cfg        *Config
)

// Execute runs the root command. It is the sole entry point cmd/hclust
// calls.
func Execute() error {
	return rootCmd.Execute()
}

var rootCmd = &cobra.Command{
	Use:     "hclust",
	Short:   "Hierarchical agglomerative clustering",
	Long:    "hclust builds and cuts hierarchical agglomerative clustering dendrograms from the command line.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		loaded, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(clusterCmd)
	rootCmd.AddCommand(flattenCmd)
	rootCmd.AddCommand(reportCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hclust", version)
	},
}
