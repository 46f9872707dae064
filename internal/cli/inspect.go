package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/quinnjr/fish-dating-simulator/internal/compiler"
	"github.com/quinnjr/fish-dating-simulator/internal/presentation/graph"
	"github.com/quinnjr/fish-dating-simulator/internal/validator"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// ErrValidation is returned when at least one dialogue or plugin is broken.
var ErrValidation = errors.New("validation failed")

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// Plugins lists the catalog and the outcome of every plugin script.
func Plugins(w io.Writer, app *App) {
	cat := app.Sim.Catalog
	chars := newTable("ID", "NAME", "SPECIES", "POND", "DATES", "DIFFICULTY")
	for _, id := range cat.All() {
		def, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		chars.Row(id.String(), def.Name, def.Species, def.PondName,
			strconv.Itoa(len(def.Dialogues)), strconv.FormatFloat(def.Difficulty, 'f', 2, 64))
	}
	fmt.Fprintln(w, chars.Render())

	report := app.Sim.Report
	if report.Err != nil {
		fmt.Fprintf(w, "plugins directory %s could not be read: %v\n", report.Dir, report.Err)
		return
	}
	if len(report.Scripts) == 0 {
		fmt.Fprintf(w, "no plugin scripts in %s\n", report.Dir)
		return
	}

	scripts := newTable("SCRIPT", "STATUS", "DETAILS")
	for _, s := range report.Scripts {
		status, details := "ok", fmt.Sprintf("registered %v", s.Registered)
		switch {
		case s.Err != nil:
			status, details = "failed", s.Err.Error()
		case len(s.Rejected)+len(s.Duplicates)+len(s.Warnings) > 0:
			status = "warnings"
			details += fmt.Sprintf(", %d rejected, %d duplicates, %d warnings",
				len(s.Rejected), len(s.Duplicates), len(s.Warnings))
		}
		scripts.Row(s.Script, status, details)
	}
	fmt.Fprintln(w, scripts.Render())
}

// Validate lints every dialogue of the catalog, the plugin load report and the given dialogue
// documents. It returns ErrValidation if anything would break at runtime.
func Validate(w io.Writer, app *App, files []string) error {
	failed := false
	report := func(name string, issues []validator.Issue) {
		if len(issues) == 0 {
			fmt.Fprintf(w, "✓ %s\n", name)
			return
		}
		mark := "!"
		if validator.HasFatal(issues) {
			mark, failed = "✗", true
		}
		fmt.Fprintf(w, "%s %s\n", mark, name)
		for _, issue := range issues {
			fmt.Fprintf(w, "    %v\n", issue)
		}
	}

	for _, s := range app.Sim.Report.Scripts {
		if s.Err != nil {
			failed = true
			fmt.Fprintf(w, "✗ %s: %v\n", s.Script, s.Err)
		}
		for _, err := range s.Rejected {
			failed = true
			fmt.Fprintf(w, "✗ %s: %v\n", s.Script, err)
		}
	}

	cat := app.Sim.Catalog
	for _, id := range cat.All() {
		def, ok := cat.Lookup(id)
		if !ok {
			continue
		}
		for i, tree := range def.Dialogues {
			report(fmt.Sprintf("%s date %d (%s)", id, i+1, tree.Title()), validator.Lint(tree))
		}
	}

	for _, path := range files {
		tree, err := compiler.CompileFile(path)
		if tree == nil {
			failed = true
			fmt.Fprintf(w, "✗ %v\n", err)
			continue
		}
		report(path, validator.Lint(tree))
	}

	if failed {
		return ErrValidation
	}
	return nil
}

// GraphOptions selects the dialogue to draw.
type GraphOptions struct {
	Fish string
	Date int // 1-based
	File string
}

// Graph writes a Mermaid diagram of one dialogue.
func Graph(w io.Writer, app *App, opts GraphOptions) error {
	var tree *domain.Tree
	if opts.File != "" {
		t, err := compiler.CompileFile(opts.File)
		if t == nil {
			return err
		}
		tree = t
	} else {
		id, err := app.Sim.Catalog.Resolve(opts.Fish)
		if err != nil {
			return err
		}
		tree = app.Sim.Catalog.Dialogue(id, max(opts.Date-1, 0))
	}
	_, err := io.WriteString(w, graph.GenerateMermaid(tree, nil))
	return err
}
