package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/quinnjr/fish-dating-simulator/internal/cli"
)

const defaultDocsWidth = 80

var docsCmd = &cobra.Command{
	Use:         "docs",
	Short:       "Show the plugin authoring guide",
	Annotations: map[string]string{annotationNoApp: "true"},
	Args:        cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetBool("raw")
		styled := !raw && cli.IsTerminal(os.Stdout)

		width := defaultDocsWidth
		if styled {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}
		return cli.Docs(cmd.OutOrStdout(), styled, width)
	},
}

func init() {
	rootCmd.AddCommand(docsCmd)
	docsCmd.Flags().Bool("raw", false, "print markdown without styling")
}
