package domain

// InstallStatus is the terminal state of one package operation.
type InstallStatus string

const (
	// StatusOK means the package was installed by this run.
	StatusOK InstallStatus = "ok"
	// StatusSkipped means the package was already present.
	StatusSkipped InstallStatus = "skipped"
	// StatusFailed means the package manager exited non-zero.
	StatusFailed InstallStatus = "failed"
	// StatusTimeout means the package manager did not finish in time.
	StatusTimeout InstallStatus = "timeout"
	// StatusError means the package manager could not be run at all.
	StatusError InstallStatus = "error"
)

// InstallOutcome records what happened to one package.
type InstallOutcome struct {
	Package string
	Status  InstallStatus
	Detail  string
}

// NewOutcome creates an InstallOutcome.
func NewOutcome(pkg string, status InstallStatus, detail string) InstallOutcome {
	return InstallOutcome{Package: pkg, Status: status, Detail: detail}
}

// Done reports whether no further attempts should be made for the package.
func (o InstallOutcome) Done() bool {
	return o.Status == StatusOK || o.Status == StatusSkipped
}

// MissingPackage is a package that a verification pass found not installed.
type MissingPackage struct {
	Package string
	Detail  string
}

// RunReport aggregates the outcomes of an install or verify run.
// Packages that installed cleanly are not recorded.
type RunReport struct {
	Skipped  []InstallOutcome
	Failed   []InstallOutcome
	TimedOut []InstallOutcome
	Missing  []MissingPackage
}

// Record files an outcome into its bucket.
func (r *RunReport) Record(o InstallOutcome) {
	switch o.Status {
	case StatusSkipped:
		r.Skipped = append(r.Skipped, o)
	case StatusTimeout:
		r.TimedOut = append(r.TimedOut, o)
	case StatusFailed, StatusError:
		r.Failed = append(r.Failed, o)
	case StatusOK:
	}
}

// HasInstallIssues reports whether any package failed or timed out.
func (r *RunReport) HasInstallIssues() bool {
	return len(r.Failed) > 0 || len(r.TimedOut) > 0
}

// VerifyPhase tells the reporter which verification entry point is running.
type VerifyPhase string

const (
	// PhaseVerifyOnly is the standalone --verify-only pass.
	PhaseVerifyOnly VerifyPhase = "verify-only"
	// PhaseFinal is the pass that follows a clean install loop.
	PhaseFinal VerifyPhase = "final"
)
