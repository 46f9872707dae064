package main

import (
	"github.com/spf13/cobra"

	"github.com/quinnjr/fish-dating-simulator/internal/cli"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List the fish and the plugin scripts that were loaded",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cli.Plugins(cmd.OutOrStdout(), app)
	},
}

func init() {
	rootCmd.AddCommand(pluginsCmd)
}
