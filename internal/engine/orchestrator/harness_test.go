package orchestrator_test

import (
	"fmt"
	"testing"
	"time"

	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports/mocks"
	"go.trai.ch/texpkg/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

const tlmgrCmd = "tlmgr"

type harness struct {
	pm       *mocks.MockPackageManager
	reporter *mocks.MockReporter
	logger   *mocks.MockLogger
	orch     *orchestrator.Orchestrator

	events   []string
	warnings []string
}

// newHarness wires an Orchestrator to mocks. Reporter events and logger
// warnings are recorded as strings; package manager calls must be expected
// by each test.
func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	h := &harness{
		pm:       mocks.NewMockPackageManager(ctrl),
		reporter: mocks.NewMockReporter(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	h.orch = orchestrator.New(h.pm, h.reporter, h.logger)

	h.logger.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		h.warnings = append(h.warnings, msg)
	}).AnyTimes()

	h.recordReporter()
	return h
}

func (h *harness) record(format string, args ...any) {
	h.events = append(h.events, fmt.Sprintf(format, args...))
}

func (h *harness) recordReporter() {
	r := h.reporter.EXPECT()

	r.OnInstallPlan(gomock.Any(), gomock.Any()).Do(func(cmd string, timeout time.Duration) {
		h.record("plan %s %s", cmd, timeout)
	}).AnyTimes()
	r.OnPrimaryRepository(gomock.Any()).Do(func(uri string) {
		h.record("primary %s", uri)
	}).AnyTimes()
	r.OnMirrorSwitch(gomock.Any(), gomock.Any()).Do(func(pkg, uri string) {
		h.record("switch %s %s", pkg, uri)
	}).AnyTimes()
	r.OnRepositorySet(gomock.Any()).Do(func(uri string) {
		h.record("repository %s", uri)
	}).AnyTimes()
	r.OnPackageStart(gomock.Any(), gomock.Any(), gomock.Any()).Do(func(i, n int, pkg string) {
		h.record("start %d/%d %s", i, n, pkg)
	}).AnyTimes()
	r.OnPackageOutcome(gomock.Any(), gomock.Any()).Do(func(o domain.InstallOutcome, recovered bool) {
		h.record("outcome %s %s recovered=%t", o.Package, o.Status, recovered)
	}).AnyTimes()
	r.OnInstallSummary(gomock.Any()).Do(func(*domain.RunReport) {
		h.record("install summary")
	}).AnyTimes()
	r.OnVerifyStart(gomock.Any()).Do(func(phase domain.VerifyPhase) {
		h.record("verify start %s", phase)
	}).AnyTimes()
	r.OnVerifyProgress(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	r.OnVerifyResult(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ domain.VerifyPhase, i, n int, pkg string, installed bool, _ string) {
			h.record("verify %d/%d %s installed=%t", i, n, pkg, installed)
		}).AnyTimes()
	r.OnVerifySummary(gomock.Any(), gomock.Any()).Do(func(phase domain.VerifyPhase, _ *domain.RunReport) {
		h.record("verify summary %s", phase)
	}).AnyTimes()
}

func settings(repos ...string) domain.InstallSettings {
	return domain.InstallSettings{
		Command:              tlmgrCmd,
		InstallTimeout:       180 * time.Second,
		CheckTimeout:         25 * time.Second,
		RepositoryTimeout:    45 * time.Second,
		Repositories:         repos,
		AutoSwitchRepository: true,
	}
}

// Helpers for package manager expectations. They match on command, package
// and timeout so a call with the wrong timeout fails the test.

func (h *harness) expectCheck(pkg string, installed bool, detail string) *gomock.Call {
	return h.pm.EXPECT().
		IsInstalled(gomock.Any(), tlmgrCmd, pkg, 25*time.Second).
		Return(installed, detail)
}

func (h *harness) expectInstall(pkg string, status domain.InstallStatus, detail string) *gomock.Call {
	return h.pm.EXPECT().
		Install(gomock.Any(), tlmgrCmd, pkg, 180*time.Second).
		Return(domain.NewOutcome(pkg, status, detail))
}

func (h *harness) expectSetRepository(uri string, ok bool, detail string) *gomock.Call {
	return h.pm.EXPECT().
		SetRepository(gomock.Any(), tlmgrCmd, uri, 45*time.Second).
		Return(ok, detail)
}
