// Package tlmgr implements the package manager port by running the tlmgr binary.
package tlmgr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/texpkg/internal/core/domain"
	"go.trai.ch/texpkg/internal/core/ports"
)

var _ ports.PackageManager = (*Client)(nil)

// waitDelay bounds how long Wait blocks on pipes held open by grandchildren
// after the process itself has been killed.
const waitDelay = 2 * time.Second

// Client runs tlmgr subcommands, one process per call.
type Client struct{}

// NewClient creates a new Client.
func NewClient() *Client {
	return &Client{}
}

// result is the raw outcome of one subprocess.
type result struct {
	exitCode    int
	stdout      string
	stderr      string
	timedOut    bool
	notFound    bool
	interrupted bool
	startErr    error
}

// detail returns stderr, else stdout, else the exit code.
func (r result) detail() string {
	switch {
	case r.stderr != "":
		return r.stderr
	case r.stdout != "":
		return r.stdout
	default:
		return "exit code " + strconv.Itoa(r.exitCode)
	}
}

// Install runs `<command> install <pkg>`.
func (c *Client) Install(ctx context.Context, command, pkg string, timeout time.Duration) domain.InstallOutcome {
	res := c.run(ctx, timeout, command, "install", pkg)

	switch {
	case res.interrupted:
		return domain.NewOutcome(pkg, domain.StatusError, "interrupted")
	case res.timedOut:
		return domain.NewOutcome(pkg, domain.StatusTimeout, "timed out after "+domain.FormatSeconds(timeout))
	case res.notFound:
		return domain.NewOutcome(pkg, domain.StatusError, notFound(command))
	case res.startErr != nil:
		return domain.NewOutcome(pkg, domain.StatusError, res.startErr.Error())
	case res.exitCode == 0:
		return domain.NewOutcome(pkg, domain.StatusOK, "installed")
	default:
		return domain.NewOutcome(pkg, domain.StatusFailed, res.detail())
	}
}

// IsInstalled runs `<command> info --only-installed <pkg>`.
func (c *Client) IsInstalled(ctx context.Context, command, pkg string, timeout time.Duration) (bool, string) {
	res := c.run(ctx, timeout, command, "info", "--only-installed", pkg)

	switch {
	case res.interrupted:
		return false, "interrupted"
	case res.timedOut:
		return false, "install-check timed out after " + domain.FormatSeconds(timeout)
	case res.notFound:
		return false, notFound(command)
	case res.startErr != nil:
		return false, res.startErr.Error()
	case res.exitCode == 0:
		return true, "already installed"
	default:
		return false, res.detail()
	}
}

// SetRepository runs `<command> option repository <uri>`.
func (c *Client) SetRepository(ctx context.Context, command, uri string, timeout time.Duration) (bool, string) {
	res := c.run(ctx, timeout, command, "option", "repository", uri)

	switch {
	case res.interrupted:
		return false, "interrupted"
	case res.timedOut:
		return false, "timed out after " + domain.FormatSeconds(timeout) + " while setting repository"
	case res.notFound:
		return false, notFound(command)
	case res.startErr != nil:
		return false, res.startErr.Error()
	case res.exitCode == 0:
		return true, "repository updated"
	default:
		return false, res.detail()
	}
}

func (c *Client) run(ctx context.Context, timeout time.Duration, command string, args ...string) result {
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(callCtx, command, args...)
	setProcGroup(cmd)
	cmd.Cancel = func() error {
		return killProcGroup(cmd)
	}
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	res := result{
		stdout: strings.TrimSpace(stdout.String()),
		stderr: strings.TrimSpace(stderr.String()),
	}

	switch {
	case ctx.Err() != nil:
		res.interrupted = true
		return res
	case errors.Is(callCtx.Err(), context.DeadlineExceeded):
		res.timedOut = true
		return res
	}

	if runErr == nil {
		return res
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(runErr, &exitErr):
		res.exitCode = exitErr.ExitCode()
	case errors.Is(runErr, exec.ErrNotFound), errors.Is(runErr, fs.ErrNotExist):
		res.notFound = true
	default:
		res.startErr = runErr
	}

	return res
}

func notFound(command string) string {
	return fmt.Sprintf("command not found: %s", command)
}
