package main

import (
	"github.com/spf13/cobra"

	"github.com/quinnjr/fish-dating-simulator/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dialogue files...]",
	Short: "Check plugins and dialogues for broken links",
	Long: `Reports plugin scripts that failed, then lints every date in the catalog and any
dialogue documents given as arguments. Exits non-zero if anything is broken.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Validate(cmd.OutOrStdout(), app, args)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
