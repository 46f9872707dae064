package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/quinnjr/fish-dating-simulator/internal/cli"
)

var dateCmd = &cobra.Command{
	Use:   "date [fish]",
	Short: "Go on one date in line mode",
	Long: `Plays the next date with a fish, by id or name, over plain text or JSON Lines.
The outcome is saved to the current profile. With --file, a dialogue document is played
instead and nothing is saved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.DateOptions{}
		opts.File, _ = cmd.Flags().GetString("file")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		if len(args) > 0 {
			opts.Fish = args[0]
		}
		if opts.Fish == "" && opts.File == "" {
			return errors.New("name a fish or pass --file")
		}
		_, err := cli.Date(cmd.Context(), app, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		return err
	},
}

func init() {
	rootCmd.AddCommand(dateCmd)
	dateCmd.Flags().Bool("json", false, "read and write JSON Lines")
	dateCmd.Flags().StringP("file", "f", "", "play a YAML or JSON dialogue document")
}
