// Command fishdating is a terminal dating sim where the dates are fish.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/quinnjr/fish-dating-simulator/internal/cli"
)

func main() {
	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()

	err := rootCmd.ExecuteContext(ctx)
	if app != nil {
		if cerr := app.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", cerr)
		}
	}
	if err != nil {
		if !errors.Is(err, cli.ErrValidation) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		ctx.Cancel()
		os.Exit(1)
	}
	if sig := ctx.Signal(); sig != nil {
		fmt.Fprintf(os.Stderr, "\nstopped by %v\n", sig)
	}
}
