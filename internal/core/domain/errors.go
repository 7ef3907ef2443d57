package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config document is not a mapping at the top level.
	ErrConfigInvalid = zerr.New("config must be a mapping at the top level")

	// ErrInvalidTimeout is returned when a timeout override is not a positive number of seconds.
	ErrInvalidTimeout = zerr.New("timeout must be a positive number of seconds")

	// ErrInvalidGlob is returned when a tex_globs pattern is malformed.
	ErrInvalidGlob = zerr.New("invalid glob pattern")

	// ErrNoSourceFiles is returned when the configured globs match no TeX files.
	ErrNoSourceFiles = zerr.New("no TeX files found from tex_globs, check settings.tex_globs and --tex-root")

	// ErrSourceReadFailed is returned when a TeX source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read TeX source")

	// ErrFailedToGetRoot is returned when the glob base directory cannot be made absolute.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of source root")

	// ErrInstallIncomplete is returned when packages remain failed or timed out after failover.
	ErrInstallIncomplete = zerr.New("install completed with issues")

	// ErrVerificationFailed is returned when packages are still missing after verification.
	ErrVerificationFailed = zerr.New("verification failed")
)

// IsRunFailure reports whether err is a run outcome that has already been
// reported to the user package by package.
func IsRunFailure(err error) bool {
	return errors.Is(err, ErrInstallIncomplete) || errors.Is(err, ErrVerificationFailed)
}
