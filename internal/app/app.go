// Package app implements the application layer for texpkg.
package app

import (
	"context"
	"time"

	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports"
	"go.trai.ch/texpkg/internal/engine/orchestrator"
	"go.trai.ch/texpkg/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sources      ports.SourceResolver
	extractor    ports.DependencyExtractor
	manager      ports.PackageManager
	reporter     ports.Reporter
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sources ports.SourceResolver,
	extractor ports.DependencyExtractor,
	manager ports.PackageManager,
	reporter ports.Reporter,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		sources:      sources,
		extractor:    extractor,
		manager:      manager,
		reporter:     reporter,
		logger:       log,
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// ConfigPath is the configuration file to load.
	ConfigPath string
	// TexRoot overrides the directory tex_globs are resolved against.
	TexRoot string
	// InstallTimeout overrides settings.install_timeout_seconds when non-zero.
	InstallTimeout time.Duration
	// DryRun stops after printing the resolved package list.
	DryRun bool
	// VerifyOnly checks the resolved packages without installing anything.
	VerifyOnly bool
}

// Run resolves the package list from the configured sources and then
// installs or verifies it.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	if opts.InstallTimeout < 0 {
		return zerr.With(domain.ErrInvalidTimeout, "timeout", opts.InstallTimeout.String())
	}

	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	baseDir := cfg.BaseDir
	if opts.TexRoot != "" {
		baseDir = opts.TexRoot
	}

	settings := cfg.InstallSettings()
	if opts.InstallTimeout > 0 {
		settings.InstallTimeout = opts.InstallTimeout
	}

	files, err := a.sources.ResolveSources(baseDir, cfg.TexGlobs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return zerr.With(domain.ErrNoSourceFiles, "base_dir", baseDir)
	}

	a.reporter.OnSources(cfg.Path, files)

	names, err := a.extractor.Extract(ctx, files)
	if err != nil {
		return zerr.Wrap(err, "failed to extract packages")
	}

	resolution := resolver.Resolve(names, cfg.Mappings)
	a.reporter.OnResolved(len(names), resolution)

	if opts.DryRun {
		a.reporter.OnDryRun()
		return nil
	}

	orch := orchestrator.New(a.manager, a.reporter, a.logger)

	if opts.VerifyOnly {
		_, err = orch.VerifyOnly(ctx, resolution.Packages, settings)
		return err
	}

	_, err = orch.Install(ctx, resolution.Packages, settings)
	return err
}
