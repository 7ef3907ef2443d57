// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"time"

	"go.trai.ch/texpkg/internal/core/domain"
)

// PackageManager wraps the external package manager binary.
//
// Implementations never return Go errors for subprocess problems: a non-zero
// exit, a timeout or a missing binary are all reported as values so the
// caller can treat them as ordinary states.
//
//go:generate mockgen -source=package_manager.go -destination=mocks/mock_package_manager.go -package=mocks
type PackageManager interface {
	// Install runs `<command> install <pkg>`.
	Install(ctx context.Context, command, pkg string, timeout time.Duration) domain.InstallOutcome

	// IsInstalled runs `<command> info --only-installed <pkg>`.
	// The detail explains a negative answer; it is advisory only.
	IsInstalled(ctx context.Context, command, pkg string, timeout time.Duration) (bool, string)

	// SetRepository runs `<command> option repository <uri>`.
	SetRepository(ctx context.Context, command, uri string, timeout time.Duration) (bool, string)
}
