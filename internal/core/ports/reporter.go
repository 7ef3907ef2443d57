package ports

import (
	"time"

	"go.trai.ch/texpkg/internal/core/domain"
)

// Reporter renders run progress for a human operator.
// Nothing it prints is meant to be parsed.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// OnSources is called once the configuration and TeX files are known.
	OnSources(configPath string, files []string)

	// OnResolved is called after extraction and resolution.
	// extracted is the number of distinct LaTeX package names found.
	OnResolved(extracted int, resolution domain.Resolution)

	// OnDryRun is called when the run stops after resolution.
	OnDryRun()

	// OnInstallPlan is called before the install loop starts.
	OnInstallPlan(command string, timeout time.Duration)

	// OnPrimaryRepository is called before the primary mirror is selected.
	OnPrimaryRepository(uri string)

	// OnMirrorSwitch is called before switching to uri after a TLPDB error for pkg.
	OnMirrorSwitch(pkg, uri string)

	// OnRepositorySet is called after a mirror was selected successfully.
	OnRepositorySet(uri string)

	// OnPackageStart is called before a package is checked and installed.
	OnPackageStart(index, total int, pkg string)

	// OnPackageOutcome is called with the final outcome of a package.
	// recovered is true when an install timed out but the package turned out to be installed.
	OnPackageOutcome(outcome domain.InstallOutcome, recovered bool)

	// OnVerifyStart is called before a verification pass.
	OnVerifyStart(phase domain.VerifyPhase)

	// OnVerifyProgress is called before a package is verified.
	OnVerifyProgress(phase domain.VerifyPhase, index, total int, pkg string)

	// OnVerifyResult is called after a package is verified.
	OnVerifyResult(phase domain.VerifyPhase, index, total int, pkg string, installed bool, detail string)

	// OnInstallSummary is called when the install loop left failures or timeouts behind.
	OnInstallSummary(report *domain.RunReport)

	// OnVerifySummary is called at the end of a verification pass.
	OnVerifySummary(phase domain.VerifyPhase, report *domain.RunReport)
}
