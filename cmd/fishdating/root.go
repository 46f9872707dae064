package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/quinnjr/fish-dating-simulator/internal/cli"
	"github.com/quinnjr/fish-dating-simulator/internal/config"
)

// Command annotations read by the root hooks.
const (
	annotationNoApp       = "no-app"
	annotationInteractive = "interactive"
)

// app is built once per invocation by the root PersistentPreRunE and closed by main.
var app *cli.App

var rootCmd = &cobra.Command{
	Use:   "fishdating",
	Short: "Go fishing, then go on dates with what you catch",
	Long: `Fish Dating Simulator is a terminal game: cast a line, reel in a fish and court it
through branching conversations. New fish can be added with Lua plugins.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Annotations:       map[string]string{annotationInteractive: "true"},
	PersistentPreRunE: setupApp,
	RunE:              runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default ./"+config.DefaultFile+" if present)")
	flags.String("env-file", "", "dotenv file (default ./"+config.DefaultEnvFile+" if present)")
	flags.String("plugins", "", "directory of Lua fish plugins")
	flags.String("save-dir", "", "directory for save files")
	flags.String("profile", "", "save profile name")
	flags.Bool("no-plugins", false, "play with the built-in fish only")
	flags.Bool("debug", false, "enable debug logging")
}

func setupApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[annotationNoApp] == "true" {
		return nil
	}

	flags := cmd.Flags()
	file, _ := flags.GetString("config")
	envFile, _ := flags.GetString("env-file")
	cfg, err := config.Load(file, envFile)
	if err != nil {
		return err
	}

	overrides := map[string]*string{
		"plugins":  &cfg.PluginsDir,
		"save-dir": &cfg.SaveDir,
		"profile":  &cfg.Profile,
	}
	for name, dst := range overrides {
		if flags.Changed(name) {
			*dst, _ = flags.GetString(name)
		}
	}

	debug, _ := flags.GetBool("debug")
	skip, _ := flags.GetBool("no-plugins")
	interactive := cmd.Annotations[annotationInteractive] == "true" && cli.IsTerminal(os.Stdin)

	app, err = cli.NewApp(cmd.Context(), cfg, cli.Options{
		Debug:       debug,
		Interactive: interactive,
		SkipPlugins: skip,
		Stderr:      cmd.ErrOrStderr(),
	})
	return err
}
