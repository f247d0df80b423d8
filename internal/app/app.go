// Package app implements the application layer for xmk: deciding between
// reusing the generated makefile and re-capturing the trace, and sequencing
// capture, translation and the incremental make run.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/xmk/internal/core/domain"
	"go.trai.ch/xmk/internal/core/ports"
	"go.trai.ch/xmk/internal/engine/translator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	translator   *translator.Translator
	executor     ports.Executor
	hasher       ports.Hasher
	store        ports.StateStore
	telemetry    ports.Telemetry
	logger       ports.Logger
	now          func() time.Time
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	tr *translator.Translator,
	executor ports.Executor,
	hasher ports.Hasher,
	store ports.StateStore,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		translator:   tr,
		executor:     executor,
		hasher:       hasher,
		store:        store,
		telemetry:    telemetry,
		logger:       log,
		now:          time.Now,
	}
}

// WithClock overrides the timestamp source. Used for testing.
func (a *App) WithClock(now func() time.Time) *App {
	a.now = now
	return a
}

// TranslateOptions configuration for the Translate method.
type TranslateOptions struct {
	Input  string
	Output string
}

// Translate converts an already-captured trace into the rule file, without
// touching the staleness state.
func (a *App) Translate(ctx context.Context, opts TranslateOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	in, out := opts.Input, opts.Output
	if in == "" {
		in = cfg.TracePath
	}
	if out == "" {
		out = cfg.MakefilePath
	}

	_, v := a.telemetry.Record(ctx, "translate")
	err = a.translate(in, out, strings.Join(cfg.CaptureArgv(), " "))
	v.Complete(err)
	return err
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// Force regenerates the makefile even when the fingerprint matches.
	Force bool
}

// Build runs the fast path when nothing relevant changed, and otherwise
// captures a fresh trace, regenerates the makefile and records the new
// fingerprint before running make.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	fp, err := a.hasher.Fingerprint(cfg.CaptureArgv(), cfg.Manifests)
	if err != nil {
		return err
	}

	info, err := a.store.Get(".")
	if err != nil {
		return err
	}

	fresh := !opts.Force && info != nil && info.Fingerprint == fp && fileExists(cfg.MakefilePath)
	if fresh {
		_, v := a.telemetry.Record(ctx, "capture")
		v.Cached()
		a.logger.Info("makefile is up to date, skipping capture")
	} else {
		if err := a.capture(ctx, cfg); err != nil {
			return err
		}

		_, v := a.telemetry.Record(ctx, "translate")
		err = a.translate(cfg.TracePath, cfg.MakefilePath, strings.Join(cfg.CaptureArgv(), " "))
		v.Complete(err)
		if err != nil {
			return err
		}

		if err := a.store.Put(".", domain.BuildInfo{
			Fingerprint: fp,
			Invocation:  cfg.CaptureArgv(),
			GeneratedAt: a.now(),
		}); err != nil {
			return err
		}
	}

	return a.runMake(ctx, cfg)
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// All also removes the state directory with the recorded fingerprint.
	All bool
}

// Clean removes the generated artifacts.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error
	remove := func(path, name string) {
		a.logger.Info("removing " + name)
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, "failed to remove "+name))
		}
	}

	remove(cfg.MakefilePath, "generated makefile")
	remove(cfg.TracePath, "captured trace")
	if opts.All {
		remove(domain.DefaultStateDir(), "state directory")
	}
	return errs
}

// capture runs the full build invocation, teeing its output to the trace
// file and the live progress vertex.
func (a *App) capture(ctx context.Context, cfg *domain.Config) error {
	if dir := filepath.Dir(cfg.TracePath); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.Wrap(err, domain.ErrCaptureFailed.Error())
		}
	}
	f, err := os.Create(cfg.TracePath) //nolint:gosec // path comes from the user's config
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCaptureFailed.Error()), "path", cfg.TracePath)
	}

	_, v := a.telemetry.Record(ctx, "capture")

	pr, pw := io.Pipe()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer pw.Close() //nolint:errcheck // pipe close reports no error
		return a.executor.Execute(ctx, cfg.CaptureArgv(), "", pw, v.Stderr())
	})
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(f, v.Stdout()), pr)
		return err
	})

	err = g.Wait()
	if cerr := f.Close(); err == nil && cerr != nil {
		err = cerr
	}
	v.Complete(err)
	if err != nil {
		return zerr.Wrap(err, domain.ErrCaptureFailed.Error())
	}
	return nil
}

// translate runs the translator pass over the trace and writes the rule file
// atomically: a fatal failure never leaves a partial makefile in place.
func (a *App) translate(tracePath, makefilePath, invocation string) error {
	f, err := os.Open(tracePath) //nolint:gosec // path comes from the user's config
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTraceOpenFailed.Error()), "path", tracePath)
	}
	defer f.Close() //nolint:errcheck // read-only file

	graph, err := a.translator.Translate(f)
	if err != nil {
		return err
	}

	a.logger.Info("translated trace into " + strconv.Itoa(graph.Len()) + " rules")
	return writeAtomic(makefilePath, graph, invocation, a.now())
}

// runMake drives the incremental build with the build tool's state directory
// parked, so the tool never sees makefile-driven builds.
func (a *App) runMake(ctx context.Context, cfg *domain.Config) error {
	if err := a.store.MoveAside(cfg.BuildDataDir); err != nil {
		return err
	}

	_, v := a.telemetry.Record(ctx, "make")
	argv := []string{cfg.MakeCommand, "-f", cfg.MakefilePath, "-j", strconv.Itoa(cfg.MakeJobs), "all"}
	err := a.executor.Execute(ctx, argv, "", v.Stdout(), v.Stderr())
	v.Complete(err)

	restoreErr := a.store.Restore(cfg.BuildDataDir)
	if err != nil {
		return zerr.Wrap(err, "incremental build failed")
	}
	return restoreErr
}

func writeAtomic(path string, g *domain.BuildGraph, invocation string, now time.Time) error {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.Wrap(err, domain.ErrMakefileWriteFailed.Error())
		}
	}

	tmp, err := os.CreateTemp(dir, ".xmk-makefile-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrMakefileWriteFailed.Error())
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // no-op after a successful rename

	if err := translator.WriteMakefile(tmp, g, invocation, now); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrMakefileWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return zerr.Wrap(err, domain.ErrMakefileWriteFailed.Error())
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
