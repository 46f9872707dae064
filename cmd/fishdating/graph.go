package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/quinnjr/fish-dating-simulator/internal/cli"
)

var graphCmd = &cobra.Command{
	Use:   "graph [fish]",
	Short: "Print a Mermaid diagram of a date",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.GraphOptions{}
		opts.Date, _ = cmd.Flags().GetInt("date")
		opts.File, _ = cmd.Flags().GetString("file")
		if len(args) > 0 {
			opts.Fish = args[0]
		}
		if opts.Fish == "" && opts.File == "" {
			return errors.New("name a fish or pass --file")
		}
		return cli.Graph(cmd.OutOrStdout(), app, opts)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().IntP("date", "d", 1, "date number")
	graphCmd.Flags().StringP("file", "f", "", "draw a YAML or JSON dialogue document")
}
