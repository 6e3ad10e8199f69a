package pythoncheck

import (
	"context"
	"fmt"
	"time"

	"github.com/vertti/readiness/pkg/check"
	"github.com/vertti/readiness/pkg/cmdcheck"
	"github.com/vertti/readiness/pkg/version"
)

const DefaultMinMajor = 3

// DefaultCandidates are tried in order: the interpreter, the Unix
// convention for Python 3, then the Windows launcher.
var DefaultCandidates = []string{"python", "python3", "py"}

const installHint = "install Python 3 (https://www.python.org/downloads/) and make sure it is on PATH"

// Check verifies a Python interpreter is on PATH and new enough.
// After Run, Path holds the interpreter that was found, if any.
type Check struct {
	Candidates []string        // default: DefaultCandidates
	MinMajor   int             // default: DefaultMinMajor
	Timeout    time.Duration   // default: cmdcheck.DefaultTimeout
	Runner     cmdcheck.Runner // injected for testing

	Path    string          // set by Run
	Version version.Version // set by Run when parsed
}

func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name:     "Python",
		Severity: check.Blocking,
	}
	c.Path, c.Version = "", version.Version{}

	candidates := c.Candidates
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}
	minMajor := c.MinMajor
	if minMajor == 0 {
		minMajor = DefaultMinMajor
	}
	runner := c.Runner
	if runner == nil {
		runner = &cmdcheck.RealRunner{}
	}

	name, path, err := cmdcheck.Find(runner, candidates...)
	if err != nil {
		return result.Fail(fmt.Sprintf("not detected (%v); %s", err, installHint), err)
	}
	c.Path = path

	out, err := cmdcheck.Output(ctx, runner, c.Timeout, path, "--version")
	if err != nil {
		return result.Fail(fmt.Sprintf("%s found at %s but --version failed: %v", name, path, err), err)
	}

	v, err := version.ExtractNamed("Python", out)
	if err != nil {
		return result.Fail(fmt.Sprintf("not detected: could not parse version from %q", out), err)
	}
	c.Version = v

	if !v.AtLeastMajor(minMajor) {
		result.Failf("Python %s is too old (required: %d.x or later); %s", v, minMajor, installHint)
		return *result.AddDetailf("path: %s", path)
	}

	result.Passf("Python %s", v)
	return *result.AddDetailf("path: %s", path)
}

// VenvCheck verifies the interpreter found by Python can create virtual
// environments. It is skipped when no interpreter was found.
type VenvCheck struct {
	Python  *Check
	Timeout time.Duration
	Runner  cmdcheck.Runner
}

func (c *VenvCheck) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name:     "Python venv module",
		Severity: check.Blocking,
	}

	if c.Python == nil || c.Python.Path == "" {
		return result.Skipf("skipped because Python was not found")
	}

	runner := c.Runner
	if runner == nil {
		runner = &cmdcheck.RealRunner{}
	}

	if _, err := cmdcheck.Output(ctx, runner, c.Timeout, c.Python.Path, "-m", "venv", "--help"); err != nil {
		return result.Fail(fmt.Sprintf("venv is not usable: %v; install the venv module (e.g. apt install python3-venv)", err), err)
	}

	return result.Pass("python -m venv is available")
}
