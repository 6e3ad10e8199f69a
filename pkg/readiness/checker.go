// Package readiness runs the environment checks in a fixed order and folds
// their results into a single verdict.
package readiness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/vertti/readiness/pkg/check"
	"github.com/vertti/readiness/pkg/cmdcheck"
	"github.com/vertti/readiness/pkg/logging"
	"github.com/vertti/readiness/pkg/netcheck"
	"github.com/vertti/readiness/pkg/output"
	"github.com/vertti/readiness/pkg/pythoncheck"
	"github.com/vertti/readiness/pkg/resourcecheck"
	"github.com/vertti/readiness/pkg/shellcheck"
	"github.com/vertti/readiness/pkg/syscheck"
)

// Checker runs the readiness checks against the host.
type Checker struct {
	cfg       Config
	out       io.Writer
	logger    *slog.Logger
	goos      string
	getenv    func(string) string
	sysInfo   syscheck.SysInfo
	resources resourcecheck.ResourceReader
	runner    cmdcheck.Runner
	dialer    netcheck.TCPDialer
	client    netcheck.HTTPClient
}

// Option configures a Checker.
type Option func(*Checker)

// WithOutput sets where results are printed.
func WithOutput(w io.Writer) Option {
	return func(c *Checker) { c.out = w }
}

// WithLogger sets the logger used for data-source warnings.
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) { c.logger = l }
}

// WithPlatform overrides the OS name and environment lookup.
func WithPlatform(goos string, getenv func(string) string) Option {
	return func(c *Checker) { c.goos, c.getenv = goos, getenv }
}

// WithSysInfo overrides the OS architecture source.
func WithSysInfo(s syscheck.SysInfo) Option {
	return func(c *Checker) { c.sysInfo = s }
}

// WithResources overrides the CPU, memory and disk source.
func WithResources(r resourcecheck.ResourceReader) Option {
	return func(c *Checker) { c.resources = r }
}

// WithRunner overrides how executables are located and run.
func WithRunner(r cmdcheck.Runner) Option {
	return func(c *Checker) { c.runner = r }
}

// WithDialer overrides the TCP dialer used by the network check.
func WithDialer(d netcheck.TCPDialer) Option {
	return func(c *Checker) { c.dialer = d }
}

// WithHTTPClient overrides the client used by the HTTPS fallback.
func WithHTTPClient(h netcheck.HTTPClient) Option {
	return func(c *Checker) { c.client = h }
}

// New creates a Checker for cfg. Unset data sources use the real host.
func New(cfg Config, opts ...Option) *Checker {
	c := &Checker{
		cfg:    cfg,
		out:    os.Stdout,
		goos:   runtime.GOOS,
		getenv: os.Getenv,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}
	if c.sysInfo == nil {
		c.sysInfo = &syscheck.RealSysInfo{}
	}
	if c.resources == nil {
		c.resources = &resourcecheck.RealResourceReader{}
	}
	if c.runner == nil {
		c.runner = &cmdcheck.RealRunner{}
	}
	if c.dialer == nil {
		c.dialer = &netcheck.RealTCPDialer{Timeout: cfg.ConnectTimeout}
	}
	if c.client == nil {
		c.client = &netcheck.RealHTTPClient{Timeout: cfg.HTTPTimeout, Logger: c.logger}
	}
	return c
}

// step pairs a check with the label and severity reported if it panics.
type step struct {
	name     string
	severity check.Severity
	check    check.Checker
}

func (c *Checker) steps() []step {
	diskPath := c.cfg.DiskPath
	if diskPath == "" {
		diskPath = resourcecheck.SystemDrive(c.goos, c.getenv)
	}
	python := &pythoncheck.Check{
		Candidates: c.cfg.PythonCandidates,
		MinMajor:   c.cfg.MinPythonMajor,
		Runner:     c.runner,
	}

	return []step{
		{"OS 64-bit", check.Blocking, &syscheck.Check{Info: c.sysInfo}},
		{"Shell version", check.Blocking, &shellcheck.Check{MinMajor: c.cfg.MinShellMajor, GOOS: c.goos, Getenv: c.getenv, Runner: c.runner}},
		{"CPU", check.Informational, &resourcecheck.CPUCheck{Reader: c.resources}},
		{"RAM", check.Blocking, &resourcecheck.MemoryCheck{RequiredGB: c.cfg.RequiredRAMGB, Reader: c.resources}},
		{"Free disk (" + diskPath + ")", check.Blocking, &resourcecheck.DiskCheck{RequiredGB: c.cfg.RequiredFreeDiskGB, Path: diskPath, Reader: c.resources}},
		{"Python", check.Blocking, python},
		{"Python venv module", check.Blocking, &pythoncheck.VenvCheck{Python: python, Runner: c.runner}},
		{"API reachability", check.Blocking, &netcheck.Check{Host: c.cfg.APIHost, Dialer: c.dialer, Client: c.client, Logger: c.logger}},
	}
}

// Run executes every check in order, printing each result as soon as it
// is available, then prints the verdict. It never stops early.
func (c *Checker) Run(ctx context.Context) Report {
	output.PrintBanner(c.out, "Environment readiness check")

	var report Report
	for _, s := range c.steps() {
		result := c.runStep(ctx, s)
		if result.Err != nil && result.Status != check.StatusOK {
			c.logger.Warn("check did not pass", "check", result.Name, "status", string(result.Status), "error", result.Err)
		}
		output.PrintResult(c.out, result)
		report.Results = append(report.Results, result)
	}

	output.PrintVerdict(c.out, report.Ready())
	return report
}

// runStep runs a single check, turning a panic into a failed result
// (or a warning for informational checks) so the remaining checks still run.
func (c *Checker) runStep(ctx context.Context, s step) (result check.Result) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("check panicked: %v", r)
			result = check.Result{Name: s.name, Severity: s.severity}
			if s.severity == check.Informational {
				result.Warn(err.Error(), err)
				return
			}
			result.Fail(err.Error(), err)
		}
	}()
	return s.check.Run(ctx)
}
