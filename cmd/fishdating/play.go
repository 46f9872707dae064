package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quinnjr/fish-dating-simulator/internal/cli"
)

var playCmd = &cobra.Command{
	Use:         "play",
	Short:       "Start the game (default)",
	Long:        `Opens the full-screen game. Without a terminal, plays one date in line mode instead.`,
	Annotations: map[string]string{annotationInteractive: "true"},
	Args:        cobra.NoArgs,
	RunE:        runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	return cli.Play(cmd.Context(), app, os.Stdin, cmd.OutOrStdout())
}
