package plugin

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/quinnjr/fish-dating-simulator/pkg/observability"
	"github.com/quinnjr/fish-dating-simulator/pkg/registry"
)

// Defaults for script discovery.
const (
	DefaultDir       = "plugins"
	DefaultExtension = ".lua"
)

// Loader discovers plugin scripts and runs each one in its own sandbox.
// The zero value loads ".lua" files from "plugins" with the default budget and timeout.
type Loader struct {
	Dir       string
	Extension string
	Budget    int64
	Timeout   time.Duration
	Logger    *slog.Logger
	Metrics   *observability.Metrics
}

// ScriptResult is the outcome of one script.
type ScriptResult struct {
	Script     string
	Registered []string
	Duplicates []string
	Rejected   []error // register_fish calls that failed
	Warnings   []error
	Err        error // set when the script itself failed; nothing was registered
}

// Report summarizes a load batch.
type Report struct {
	Dir     string
	Scripts []ScriptResult
	Err     error // directory could not be read
}

// Loaded returns the registered ids in load order.
func (r Report) Loaded() []string {
	var ids []string
	for _, s := range r.Scripts {
		ids = append(ids, s.Registered...)
	}
	return ids
}

// Failed returns the scripts that aborted.
func (r Report) Failed() []ScriptResult {
	var out []ScriptResult
	for _, s := range r.Scripts {
		if s.Err != nil {
			out = append(out, s)
		}
	}
	return out
}

// Problems counts every failure, rejection, duplicate and warning in the batch.
func (r Report) Problems() int {
	n := 0
	if r.Err != nil {
		n++
	}
	for _, s := range r.Scripts {
		if s.Err != nil {
			n++
		}
		n += len(s.Rejected) + len(s.Duplicates) + len(s.Warnings)
	}
	return n
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.Logger
}

func (l *Loader) dir() string {
	if l.Dir == "" {
		return DefaultDir
	}
	return l.Dir
}

func (l *Loader) extension() string {
	if l.Extension == "" {
		return DefaultExtension
	}
	return l.Extension
}

func (l *Loader) budget() int64 {
	if l.Budget <= 0 {
		return DefaultBudget
	}
	return l.Budget
}

func (l *Loader) timeout() time.Duration {
	if l.Timeout <= 0 {
		return DefaultTimeout
	}
	return l.Timeout
}

// Discover lists the plugin scripts in lexical order.
// A missing directory yields no scripts and no error.
func (l *Loader) Discover() ([]string, error) {
	entries, err := os.ReadDir(l.dir())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read plugins directory: %w", err)
	}

	var scripts []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), l.extension()) {
			continue
		}
		scripts = append(scripts, filepath.Join(l.dir(), e.Name()))
	}
	slices.Sort(scripts)
	return scripts, nil
}

// Load runs every discovered script sequentially and commits successful registrations to reg.
// Script failures are logged and recorded in the report; they never abort the batch.
func (l *Loader) Load(ctx context.Context, reg *registry.Registry) Report {
	log := l.logger()
	report := Report{Dir: l.dir()}

	scripts, err := l.Discover()
	if err != nil {
		log.Warn("failed to read plugins directory", "dir", l.dir(), "error", err)
		l.Metrics.PluginFailed(observability.ReasonRead)
		report.Err = err
		return report
	}
	if len(scripts) == 0 {
		log.Info("no plugin scripts found", "dir", l.dir())
		return report
	}
	log.Info("found plugin scripts", "count", len(scripts), "dir", l.dir())

	for _, path := range scripts {
		if ctx.Err() != nil {
			break
		}
		name := filepath.Base(path)
		src, err := os.ReadFile(path)
		if err != nil {
			log.Error("failed to read plugin", "script", name, "error", err)
			l.Metrics.PluginFailed(observability.ReasonRead)
			report.Scripts = append(report.Scripts, ScriptResult{Script: name, Err: &ScriptError{Script: name, Err: err}})
			continue
		}
		report.Scripts = append(report.Scripts, l.LoadScript(ctx, name, bytes.NewReader(src), reg))
	}
	return report
}

// LoadScript runs a single script in a fresh sandbox. Its registrations reach reg only if the
// script completes.
func (l *Loader) LoadScript(ctx context.Context, name string, src io.Reader, reg *registry.Registry) ScriptResult {
	log := l.logger()
	result := ScriptResult{Script: name}
	log.Info("loading plugin", "script", name)

	L, err := newSandbox()
	if err != nil {
		result.Err = &ScriptError{Script: name, Err: err}
		l.Metrics.PluginFailed(observability.ReasonScript)
		return result
	}
	defer L.Close()

	sess := &session{script: name, logger: log}
	sess.install(L)

	err = execute(ctx, L, name, src, l.budget(), l.timeout())
	result.Rejected = sess.rejected
	for range sess.rejected {
		l.Metrics.PluginFailed(observability.ReasonRecord)
	}
	if err != nil {
		result.Err = &ScriptError{Script: name, Err: err}
		l.Metrics.PluginFailed(failureReason(err))
		log.Error("error in plugin", "script", name, "error", err)
		return result
	}

	if len(sess.records) == 0 {
		log.Warn("plugin didn't register any fish", "script", name)
		l.Metrics.PluginFailed(observability.ReasonEmpty)
		result.Warnings = append(result.Warnings, ErrNoRegistrations)
		return result
	}

	for _, rec := range sess.records {
		for _, w := range rec.warnings {
			log.Warn("dialogue failed validation, running it unchecked", "script", name, "fish", rec.def.ID, "error", w)
		}
		result.Warnings = append(result.Warnings, rec.warnings...)

		if !reg.Register(rec.def) {
			l.Metrics.PluginFailed(observability.ReasonDup)
			result.Duplicates = append(result.Duplicates, rec.def.ID)
			continue
		}
		l.Metrics.PluginLoaded()
		result.Registered = append(result.Registered, rec.def.ID)
		log.Info("registered plugin fish", "script", name, "id", rec.def.ID, "name", rec.def.Name, "dates", len(rec.def.Dialogues))
	}
	return result
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrBudgetExceeded):
		return observability.ReasonBudget
	case errors.Is(err, context.DeadlineExceeded):
		return observability.ReasonTimeout
	}
	return observability.ReasonScript
}
