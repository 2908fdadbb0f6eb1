package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the default configuration",
	Long: `Print the built-in YAML configuration. Save it as
~/.arcade/configs/platformer.yaml or ./configs/platformer.yaml and edit the
keys you want to change; missing keys keep their defaults.

Examples:
  platformer config > ~/.arcade/configs/platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	gameID := "platformer"
	if len(args) == 1 {
		gameID = args[0]
	}
	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fail("no default configuration for %q", gameID)
	}
	os.Stdout.Write(data)
}
