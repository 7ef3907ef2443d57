package domain

import (
	"strconv"
	"time"
)

const (
	// ConfigFileName is the default configuration file name.
	ConfigFileName = "packages.yaml"

	// DefaultCommand is the package manager binary invoked when none is configured.
	DefaultCommand = "tlmgr"

	// DefaultInstallTimeout bounds a single `tlmgr install`.
	DefaultInstallTimeout = 180 * time.Second

	// DefaultCheckTimeout bounds a single `tlmgr info --only-installed`.
	DefaultCheckTimeout = 25 * time.Second

	// DefaultRepositoryTimeout bounds a single `tlmgr option repository`.
	DefaultRepositoryTimeout = 45 * time.Second

	// DefaultAutoSwitchRepository enables mirror failover on TLPDB errors.
	DefaultAutoSwitchRepository = true
)

// DefaultTexGlobs returns the source globs used when settings.tex_globs is absent.
func DefaultTexGlobs() []string {
	return []string{"*.tex"}
}

// FormatSeconds renders d as a number of seconds with an "s" suffix, e.g. "180s" or "0.5s".
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', -1, 64) + "s"
}
