// Package orchestrator drives the package manager through the install,
// failover and verification loop.
package orchestrator

import (
	"context"
	"fmt"

	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator installs and verifies packages one at a time.
type Orchestrator struct {
	manager  ports.PackageManager
	reporter ports.Reporter
	logger   ports.Logger
}

// New creates a new Orchestrator.
func New(manager ports.PackageManager, reporter ports.Reporter, logger ports.Logger) *Orchestrator {
	return &Orchestrator{
		manager:  manager,
		reporter: reporter,
		logger:   logger,
	}
}

// Install selects the primary mirror, installs every package that is not
// already present and, when nothing failed or timed out, runs a final
// verification pass.
//
// It returns domain.ErrInstallIncomplete when packages failed or timed out
// and domain.ErrVerificationFailed when the final pass finds packages missing.
func (o *Orchestrator) Install(
	ctx context.Context,
	packages []string,
	settings domain.InstallSettings,
) (*domain.RunReport, error) {
	report := &domain.RunReport{}
	cursor := domain.NewRepositoryCursor(settings.Repositories)

	o.reporter.OnInstallPlan(settings.Command, settings.InstallTimeout)
	o.selectPrimary(ctx, cursor, settings)

	total := len(packages)
	for i, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return report, zerr.Wrap(err, "install interrupted")
		}

		o.reporter.OnPackageStart(i+1, total, pkg)

		outcome, recovered := o.installOne(ctx, pkg, settings, cursor)
		if err := ctx.Err(); err != nil {
			return report, zerr.Wrap(err, "install interrupted")
		}

		report.Record(outcome)
		o.reporter.OnPackageOutcome(outcome, recovered)
	}

	if report.HasInstallIssues() {
		o.reporter.OnInstallSummary(report)
		return report, domain.ErrInstallIncomplete
	}

	return report, o.verify(ctx, domain.PhaseFinal, packages, settings, report)
}

// VerifyOnly checks every package without installing anything.
// It returns domain.ErrVerificationFailed if any package is missing.
func (o *Orchestrator) VerifyOnly(
	ctx context.Context,
	packages []string,
	settings domain.InstallSettings,
) (*domain.RunReport, error) {
	report := &domain.RunReport{}
	return report, o.verify(ctx, domain.PhaseVerifyOnly, packages, settings, report)
}

// selectPrimary points the package manager at the first configured mirror.
// Failure is only a warning; the run continues with whatever tlmgr had before.
func (o *Orchestrator) selectPrimary(ctx context.Context, cursor *domain.RepositoryCursor, settings domain.InstallSettings) {
	primary, ok := cursor.Primary()
	if !ok {
		return
	}

	o.reporter.OnPrimaryRepository(primary)
	if ok, detail := o.manager.SetRepository(ctx, settings.Command, primary, settings.RepositoryTimeout); !ok {
		o.logger.Warn("could not set primary repository: " + detail)
		return
	}
	o.reporter.OnRepositorySet(primary)
}

// installOne runs pre-check, install, failover and timeout re-check for pkg.
// recovered is true when an install timed out but the package ended up installed.
func (o *Orchestrator) installOne(
	ctx context.Context,
	pkg string,
	settings domain.InstallSettings,
	cursor *domain.RepositoryCursor,
) (domain.InstallOutcome, bool) {
	if installed, detail := o.manager.IsInstalled(ctx, settings.Command, pkg, settings.CheckTimeout); installed {
		return domain.NewOutcome(pkg, domain.StatusSkipped, detail), false
	}

	outcome := o.manager.Install(ctx, settings.Command, pkg, settings.InstallTimeout)

	if outcome.Status == domain.StatusFailed &&
		settings.AutoSwitchRepository &&
		cursor.Len() > 0 &&
		domain.IsTLPDBError(outcome.Detail) &&
		cursor.HasNext() {
		outcome = o.failover(ctx, pkg, settings, cursor, outcome)
	}

	if outcome.Status != domain.StatusTimeout {
		return outcome, false
	}

	installed, detail := o.manager.IsInstalled(ctx, settings.Command, pkg, settings.CheckTimeout)
	if !installed {
		return outcome, false
	}

	return domain.NewOutcome(pkg, domain.StatusSkipped,
		fmt.Sprintf("install timed out, but package is installed (%s)", detail)), true
}

// failover advances through the remaining mirrors until one can be selected,
// then retries the install exactly once. Mirrors that cannot be selected are
// skipped for the rest of the run.
func (o *Orchestrator) failover(
	ctx context.Context,
	pkg string,
	settings domain.InstallSettings,
	cursor *domain.RepositoryCursor,
	outcome domain.InstallOutcome,
) domain.InstallOutcome {
	for ctx.Err() == nil {
		uri, ok := cursor.Advance()
		if !ok {
			break
		}

		o.reporter.OnMirrorSwitch(pkg, uri)

		if ok, detail := o.manager.SetRepository(ctx, settings.Command, uri, settings.RepositoryTimeout); !ok {
			o.logger.Warn(fmt.Sprintf("could not set repository %s: %s", uri, detail))
			continue
		}

		o.reporter.OnRepositorySet(uri)
		return o.manager.Install(ctx, settings.Command, pkg, settings.InstallTimeout)
	}

	if ctx.Err() == nil {
		o.logger.Warn("no usable fallback repositories remained")
	}
	return outcome
}

// verify checks every package and records the missing ones in report.
func (o *Orchestrator) verify(
	ctx context.Context,
	phase domain.VerifyPhase,
	packages []string,
	settings domain.InstallSettings,
	report *domain.RunReport,
) error {
	o.reporter.OnVerifyStart(phase)

	total := len(packages)
	for i, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "verification interrupted")
		}

		o.reporter.OnVerifyProgress(phase, i+1, total, pkg)

		installed, detail := o.manager.IsInstalled(ctx, settings.Command, pkg, settings.CheckTimeout)
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "verification interrupted")
		}

		o.reporter.OnVerifyResult(phase, i+1, total, pkg, installed, detail)
		if !installed {
			report.Missing = append(report.Missing, domain.MissingPackage{Package: pkg, Detail: detail})
		}
	}

	o.reporter.OnVerifySummary(phase, report)

	if len(report.Missing) > 0 {
		return domain.ErrVerificationFailed
	}
	return nil
}
