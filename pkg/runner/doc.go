/*
Package runner plays a single date over plain line-oriented I/O.

It is the non-interactive counterpart of the terminal UI: every step of the dialogue is
written to a Handler and every input is read back as one line. Two handlers are provided.

  - TextHandler: human-readable output, numbered choices, "q" to walk away.
  - JSONHandler: one JSON object per step, for scripts and pipes.

# Usage

	r := runner.New(runner.WithHandler(runner.NewTextHandler(os.Stdin, os.Stdout)))
	res, err := r.Run(ctx, tree)
	if err != nil {
		return err
	}
	player.CommitDate(id, res.Affection)
*/
package runner
