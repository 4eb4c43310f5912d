package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lilyhop/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the configuration LilyHop would play with, after the config
search order and --difficulty are applied. The output is valid YAML and
can be saved as ~/.lilyhop/config.yaml to customize the game.

Examples:
  lilyhop config
  lilyhop config --difficulty hard > ~/.lilyhop/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	data, err := config.Marshal(loadGameConfig())
	if err != nil {
		fatalf("encoding config: %v", err)
	}
	os.Stdout.Write(data)
}
