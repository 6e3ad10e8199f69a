// Package shellcheck verifies the version of the shell that hosts the workload.
//
// On Windows this is PowerShell ($PSVersionTable.PSVersion); elsewhere it is
// the user's login shell from $SHELL, asked for its --version banner.
package shellcheck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/vertti/readiness/pkg/check"
	"github.com/vertti/readiness/pkg/cmdcheck"
	"github.com/vertti/readiness/pkg/version"
)

// DefaultMinMajor is the lowest accepted shell major version.
const DefaultMinMajor = 5

const psVersionScript = "$PSVersionTable.PSVersion.ToString()"

// Shell describes how to ask a shell for its version.
type Shell struct {
	Candidates []string // executables tried in order
	Args       []string // arguments that print the version
}

// Check verifies the host shell meets a minimum major version.
type Check struct {
	MinMajor int                 // default: DefaultMinMajor
	GOOS     string              // default: runtime.GOOS
	Getenv   func(string) string // default: os.Getenv
	Timeout  time.Duration       // default: cmdcheck.DefaultTimeout
	Runner   cmdcheck.Runner     // injected for testing
}

// Resolve picks the shell to inspect for the given platform.
func Resolve(goos string, getenv func(string) string) Shell {
	if goos == "windows" {
		return Shell{
			Candidates: []string{"powershell", "pwsh"},
			Args:       []string{"-NoProfile", "-NonInteractive", "-Command", psVersionScript},
		}
	}
	if sh := strings.TrimSpace(getenv("SHELL")); sh != "" {
		return Shell{Candidates: []string{sh}, Args: []string{"--version"}}
	}
	return Shell{Candidates: []string{"bash"}, Args: []string{"--version"}}
}

func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name:     "Shell version",
		Severity: check.Blocking,
	}

	minMajor := c.MinMajor
	if minMajor == 0 {
		minMajor = DefaultMinMajor
	}
	goos := c.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	getenv := c.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	runner := c.Runner
	if runner == nil {
		runner = &cmdcheck.RealRunner{}
	}

	shell := Resolve(goos, getenv)
	name, path, err := cmdcheck.Find(runner, shell.Candidates...)
	if err != nil {
		return result.Fail(fmt.Sprintf("no shell found (%v); %s", err, hint(goos, minMajor)), err)
	}

	out, err := cmdcheck.Output(ctx, runner, c.Timeout, path, shell.Args...)
	if err != nil {
		return result.Fail(fmt.Sprintf("could not query %s version: %v; %s", name, err, hint(goos, minMajor)), err)
	}

	v, err := version.Extract(out)
	if err != nil {
		return result.Fail(fmt.Sprintf("could not parse %s version from %q; %s", name, firstLine(out), hint(goos, minMajor)), err)
	}

	label := filepath.Base(name)
	if !v.AtLeastMajor(minMajor) {
		result.Failf("%s %s is too old (required: major version >= %d)", label, v, minMajor)
		return *result.AddDetail(hint(goos, minMajor))
	}

	return result.Passf("%s %s (required: major version >= %d)", label, v, minMajor)
}

// hint explains why the shell is checked and how to satisfy the check.
func hint(goos string, minMajor int) string {
	if goos == "windows" {
		return fmt.Sprintf("the workload's scripts run in PowerShell; install Windows PowerShell %d.1 or PowerShell 7", minMajor)
	}
	return fmt.Sprintf("the workload's scripts run in the login shell ($SHELL); install bash %d or later and point SHELL at it", minMajor)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
