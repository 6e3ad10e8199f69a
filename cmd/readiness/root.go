package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vertti/readiness/pkg/logging"
	"github.com/vertti/readiness/pkg/output"
	"github.com/vertti/readiness/pkg/readiness"
)

// ErrNotReady is returned when at least one blocking check failed.
// The returned error causes main to exit with code 1.
var ErrNotReady = errors.New("environment is not ready")

var (
	apiHost          string
	requiredRAMGB    int
	requiredDiskGB   int
	minShellMajor    int
	minPythonMajor   int
	pythonNames      []string
	diskPath         string
	connectTimeout   time.Duration
	httpTimeout      time.Duration
	noColor          bool
	verbose          bool
	extraCheckerOpts []readiness.Option
)

var rootCmd = &cobra.Command{
	Use:   "readiness",
	Short: "Check whether this machine can run a Python workload that calls an HTTPS API",
	Long: `Readiness inspects the local machine and reports whether it meets the
baseline for running a Python workload against a remote HTTPS API:
64-bit OS, shell version, CPU, RAM, free disk, Python 3 with venv, and
outbound reachability of the API host on port 443.

Exit status is 0 when every blocking check passes and 1 otherwise.

Examples:
  readiness
  readiness --test-api-host api.example.com
  readiness --required-ram-gb 16 --required-free-disk-gb 50`,
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runReadiness,
}

func init() {
	defaults := readiness.DefaultConfig()

	rootCmd.Flags().StringVar(&apiHost, "test-api-host", "",
		"hostname (no scheme) to probe on port 443; empty skips the network check")
	rootCmd.Flags().IntVar(&requiredRAMGB, "required-ram-gb", defaults.RequiredRAMGB,
		"minimum installed RAM in GB")
	rootCmd.Flags().IntVar(&requiredDiskGB, "required-free-disk-gb", defaults.RequiredFreeDiskGB,
		"minimum free space on the system drive in GB")
	rootCmd.Flags().IntVar(&minShellMajor, "min-shell-major", defaults.MinShellMajor,
		"minimum shell major version (PowerShell on Windows, $SHELL elsewhere)")
	rootCmd.Flags().IntVar(&minPythonMajor, "min-python-major", defaults.MinPythonMajor,
		"minimum Python major version")
	rootCmd.Flags().StringSliceVar(&pythonNames, "python", defaults.PythonCandidates,
		"Python executable names to look for, in order")
	rootCmd.Flags().StringVar(&diskPath, "disk-path", "",
		"volume to check for free space (default: system drive)")
	rootCmd.Flags().DurationVar(&connectTimeout, "connect-timeout", 0,
		"TCP connect timeout (default: operating system default)")
	rootCmd.Flags().DurationVar(&httpTimeout, "http-timeout", defaults.HTTPTimeout,
		"timeout for the HTTPS HEAD fallback")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
}

func runReadiness(cmd *cobra.Command, _ []string) error {
	cfg := readiness.Config{
		APIHost:            apiHost,
		RequiredRAMGB:      requiredRAMGB,
		RequiredFreeDiskGB: requiredDiskGB,
		MinShellMajor:      minShellMajor,
		MinPythonMajor:     minPythonMajor,
		PythonCandidates:   pythonNames,
		DiskPath:           diskPath,
		ConnectTimeout:     connectTimeout,
		HTTPTimeout:        httpTimeout,
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if noColor {
		output.DisableColor()
	}
	level := "warn"
	if verbose {
		level = "debug"
	}
	logger := logging.New(cmd.ErrOrStderr(), level)
	logger.Debug("starting readiness check", "api_host", cfg.APIHost,
		"required_ram_gb", cfg.RequiredRAMGB, "required_free_disk_gb", cfg.RequiredFreeDiskGB)

	// Checks are reported on stdout; from here on only the exit code matters.
	cmd.SilenceUsage = true

	opts := append([]readiness.Option{
		readiness.WithOutput(cmd.OutOrStdout()),
		readiness.WithLogger(logger),
	}, extraCheckerOpts...)

	report := readiness.New(cfg, opts...).Run(cmd.Context())
	if !report.Ready() {
		cmd.SilenceErrors = true
		return ErrNotReady
	}
	return nil
}
