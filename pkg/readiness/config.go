package readiness

import (
	"fmt"
	"time"

	"github.com/vertti/readiness/pkg/netcheck"
	"github.com/vertti/readiness/pkg/pythoncheck"
	"github.com/vertti/readiness/pkg/resourcecheck"
	"github.com/vertti/readiness/pkg/shellcheck"
)

// Config holds the thresholds and targets for a run.
type Config struct {
	APIHost            string        // host probed on port 443; empty skips the network check
	RequiredRAMGB      int           // minimum installed RAM
	RequiredFreeDiskGB int           // minimum free space on the system drive
	MinShellMajor      int           // minimum shell major version
	MinPythonMajor     int           // minimum Python major version
	PythonCandidates   []string      // interpreter names tried in order
	DiskPath           string        // volume to inspect; empty means the system drive
	ConnectTimeout     time.Duration // TCP connect timeout; zero leaves it to the OS
	HTTPTimeout        time.Duration // timeout for the HTTPS HEAD fallback
}

// DefaultConfig returns the baseline requirements.
func DefaultConfig() Config {
	return Config{
		RequiredRAMGB:      resourcecheck.DefaultRequiredRAMGB,
		RequiredFreeDiskGB: resourcecheck.DefaultRequiredFreeDiskGB,
		MinShellMajor:      shellcheck.DefaultMinMajor,
		MinPythonMajor:     pythoncheck.DefaultMinMajor,
		PythonCandidates:   append([]string(nil), pythoncheck.DefaultCandidates...),
		HTTPTimeout:        netcheck.DefaultHTTPTimeout,
	}
}

// Validate rejects thresholds that cannot be meaningfully checked.
func (c Config) Validate() error {
	if c.RequiredRAMGB <= 0 {
		return fmt.Errorf("required RAM must be positive, got %d", c.RequiredRAMGB)
	}
	if c.RequiredFreeDiskGB <= 0 {
		return fmt.Errorf("required free disk must be positive, got %d", c.RequiredFreeDiskGB)
	}
	if c.MinShellMajor <= 0 {
		return fmt.Errorf("minimum shell major version must be positive, got %d", c.MinShellMajor)
	}
	if c.MinPythonMajor <= 0 {
		return fmt.Errorf("minimum Python major version must be positive, got %d", c.MinPythonMajor)
	}
	if len(c.PythonCandidates) == 0 {
		return fmt.Errorf("at least one Python executable name is required")
	}
	if c.ConnectTimeout < 0 || c.HTTPTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}
	return nil
}
