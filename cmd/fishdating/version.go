package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quinnjr/fish-dating-simulator"
	"github.com/quinnjr/fish-dating-simulator/internal/cli"
	"github.com/quinnjr/fish-dating-simulator/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print the version number of fishdating",
	Annotations: map[string]string{annotationNoApp: "true"},
	Run: func(cmd *cobra.Command, args []string) {
		if cli.IsTerminal(os.Stdout) {
			tui.PrintBanner(cmd.OutOrStdout(), fishdating.Version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "fishdating version %s\n", fishdating.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
