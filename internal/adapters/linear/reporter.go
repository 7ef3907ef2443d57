// Package linear provides a synchronous, line-oriented progress reporter.
package linear

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports"
	"go.trai.ch/texpkg/internal/ui/output"
	"go.trai.ch/texpkg/internal/ui/style"
	"mvdan.cc/sh/v3/syntax"
)

var _ ports.Reporter = (*Reporter)(nil)

// Reporter implements ports.Reporter by printing one line per event.
type Reporter struct {
	w        io.Writer
	out      *termenv.Output
	renderer *lipgloss.Renderer

	mu sync.Mutex
}

// NewReporter creates a Reporter writing to w (stdout when nil).
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(output.ProfileFor(w))

	return &Reporter{
		w:        w,
		out:      output.New(w),
		renderer: renderer,
	}
}

// OnSources prints the configuration path and the matched TeX files.
func (r *Reporter) OnSources(configPath string, files []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.bold("Config:") + " " + configPath)
	r.println(r.bold("TeX files:") + " " + strconv.Itoa(len(files)))
	for _, f := range files {
		r.println("  - " + f)
	}
}

// OnResolved prints the extraction count, the resolved table and any unresolved names.
func (r *Reporter) OnResolved(extracted int, resolution domain.Resolution) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println("")
	r.println(r.bold("Extracted LaTeX packages:") + " " + strconv.Itoa(extracted))
	r.println(r.resolvedTable(resolution.Packages))

	if len(resolution.Unresolved) > 0 {
		r.println("")
		r.println(r.color("Unresolved LaTeX package names:", style.Yellow))
		for _, name := range resolution.Unresolved {
			r.println("  - " + name)
		}
	}
}

func (r *Reporter) resolvedTable(packages []string) string {
	rows := make([][]string, 0, len(packages))
	for i, pkg := range packages {
		rows = append(rows, []string{strconv.Itoa(i + 1), pkg})
	}

	headerStyle := r.renderer.NewStyle().Foreground(style.Iris).Bold(true).Padding(0, 1)
	cellStyle := r.renderer.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.renderer.NewStyle().Foreground(style.Slate)).
		Headers("#", "Package").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cellStyle
			if row == table.HeaderRow {
				s = headerStyle
			}
			if col == 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})

	title := r.renderer.NewStyle().Bold(true).Render("Resolved tlmgr package list")
	return title + "\n" + t.String()
}

// OnDryRun prints the dry-run footer.
func (r *Reporter) OnDryRun() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println("")
	r.println(r.color("Dry run complete.", style.Green))
}

// OnInstallPlan prints the shell-quoted install command and its per-package timeout.
func (r *Reporter) OnInstallPlan(command string, timeout time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println("")
	r.println(fmt.Sprintf("%s %s install %s (timeout %s/package)",
		r.bold("Installing with:"), quote(command), quote("<pkg>"), domain.FormatSeconds(timeout)))
}

// OnPrimaryRepository prints the primary mirror about to be selected.
func (r *Reporter) OnPrimaryRepository(uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.bold("Repository:") + " attempting primary mirror: " + uri)
}

// OnMirrorSwitch prints the failover notice for pkg.
func (r *Reporter) OnMirrorSwitch(pkg, uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(fmt.Sprintf("  %s; switching mirror to %s and retrying %s",
		r.color("Repository error detected", style.Yellow), uri, pkg))
}

// OnRepositorySet prints a successful mirror selection.
func (r *Reporter) OnRepositorySet(uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println("  " + r.color("OK", style.Green) + " repository set to " + uri)
}

// OnPackageStart prints the install progress header for pkg.
func (r *Reporter) OnPackageStart(index, total int, pkg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.color(fmt.Sprintf("[install %d/%d]", index, total), style.Iris) + " " + pkg)
}

// OnPackageOutcome prints the final state of one package.
func (r *Reporter) OnPackageOutcome(outcome domain.InstallOutcome, recovered bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pkg := outcome.Package

	switch outcome.Status {
	case domain.StatusOK:
		r.println("  " + r.color("OK", style.Green) + " " + pkg)
	case domain.StatusSkipped:
		if recovered {
			r.println("  " + r.color("TIMEOUT-BUT-INSTALLED", style.Yellow) + " " + pkg +
				": install timed out, but package is now installed")
			return
		}
		r.println("  " + r.color("SKIP", style.Slate) + " " + pkg + ": already installed")
	case domain.StatusTimeout:
		r.println("  " + r.color("TIMEOUT", style.Red) + " " + pkg + ": " + outcome.Detail)
	case domain.StatusFailed, domain.StatusError:
		r.println("  " + r.color("FAILED", style.Red) + " " + pkg + ": " + outcome.Detail)
	}
}

// OnVerifyStart prints the verification header for phase.
func (r *Reporter) OnVerifyStart(phase domain.VerifyPhase) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println("")
	if phase == domain.PhaseVerifyOnly {
		r.println(r.bold("Verifying installed state only..."))
		return
	}
	r.println(r.bold("Final verification..."))
}

// OnVerifyProgress prints the per-package header in verify-only mode.
// The final pass prints a single line per package from OnVerifyResult instead.
func (r *Reporter) OnVerifyProgress(phase domain.VerifyPhase, index, total int, pkg string) {
	if phase != domain.PhaseVerifyOnly {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(r.color(fmt.Sprintf("[verify %d/%d]", index, total), style.Iris) + " " + pkg)
}

// OnVerifyResult prints whether pkg is installed.
func (r *Reporter) OnVerifyResult(phase domain.VerifyPhase, index, total int, pkg string, installed bool, detail string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if phase == domain.PhaseVerifyOnly {
		if installed {
			r.println("  " + r.color("OK", style.Green) + " " + pkg)
			return
		}
		r.println("  " + r.color("MISSING", style.Red) + " " + pkg + ": " + detail)
		return
	}

	prefix := fmt.Sprintf("[verify %d/%d]", index, total)
	if installed {
		r.println(r.color(prefix+" OK", style.Green) + " " + pkg)
		return
	}
	r.println(r.color(prefix+" MISSING", style.Red) + " " + pkg + ": " + detail)
}

// OnInstallSummary prints the failures, timeouts and skips of an install loop with issues.
func (r *Reporter) OnInstallSummary(report *domain.RunReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println("")
	r.println(r.color(style.Cross+" Install completed with issues.", style.Red))
	r.outcomeList("Failures:", style.Red, report.Failed)
	r.outcomeList("Timeouts:", style.Red, report.TimedOut)
	r.outcomeList("Skipped/already installed:", style.Slate, report.Skipped)
}

// OnVerifySummary prints the verdict of a verification pass.
func (r *Reporter) OnVerifySummary(phase domain.VerifyPhase, report *domain.RunReport) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(report.Missing) > 0 {
		headline, listTitle := "Verification failed.", "Missing packages:"
		if phase == domain.PhaseFinal {
			headline, listTitle = "Install finished but verification failed.", "Still missing:"
		}

		r.println("")
		r.println(r.color(style.Cross+" "+headline, style.Red))
		r.println(r.color(listTitle, style.Red))
		for _, m := range report.Missing {
			r.println("  - " + m.Package)
		}
		return
	}

	if phase == domain.PhaseVerifyOnly {
		r.println("")
		r.println(r.color(style.Check+" Verification successful: all packages are installed.", style.Green))
		return
	}

	if len(report.Skipped) > 0 {
		r.println("")
		r.outcomeList("Skipped/already installed:", style.Slate, report.Skipped)
	}

	r.println("")
	r.println(r.color(style.Check+" Install completed successfully.", style.Green))
}

func (r *Reporter) outcomeList(title string, color lipgloss.Color, outcomes []domain.InstallOutcome) {
	if len(outcomes) == 0 {
		return
	}
	r.println(r.color(title, color))
	for _, o := range outcomes {
		r.println("  - " + o.Package + ": " + o.Detail)
	}
}

func (r *Reporter) println(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}

func (r *Reporter) bold(s string) string {
	return r.out.String(s).Bold().String()
}

func (r *Reporter) color(s string, c lipgloss.Color) string {
	return r.out.String(s).Foreground(r.out.Color(string(c))).String()
}

// quote shell-quotes s for display. Strings that cannot be quoted are shown as is.
func quote(s string) string {
	q, err := syntax.Quote(s, syntax.LangBash)
	if err != nil {
		return s
	}
	return q
}
