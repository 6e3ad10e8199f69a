package resourcecheck

import (
	"context"
	"fmt"

	"github.com/vertti/readiness/pkg/check"
)

const (
	DefaultRequiredRAMGB      = 8
	DefaultRequiredFreeDiskGB = 20
)

func reader(r ResourceReader) ResourceReader {
	if r == nil {
		return &RealResourceReader{}
	}
	return r
}

// CPUCheck reports the CPU model and core count. It never fails.
type CPUCheck struct {
	Reader ResourceReader
}

func (c *CPUCheck) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name:     "CPU",
		Severity: check.Informational,
	}

	info, err := reader(c.Reader).CPU(ctx)
	if err != nil {
		return result.Warn(fmt.Sprintf("could not query CPU info: %v", err), err)
	}

	return result.Infof("%s, %d logical cores", info.Model, info.LogicalCores)
}

// MemoryCheck verifies installed RAM meets a minimum.
type MemoryCheck struct {
	RequiredGB int // default: DefaultRequiredRAMGB
	Reader     ResourceReader
}

func (c *MemoryCheck) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name:     "RAM",
		Severity: check.Blocking,
	}

	required := c.RequiredGB
	if required == 0 {
		required = DefaultRequiredRAMGB
	}

	total, err := reader(c.Reader).TotalMemory(ctx)
	if err != nil {
		return result.Fail(fmt.Sprintf("could not query installed memory: %v", err), err)
	}

	gb := BytesToGB(total)
	if !AtLeastGB(total, required) {
		return result.Failf("%.2f GB installed (required: %d GB)", gb, required)
	}

	return result.Passf("%.2f GB installed (required: %d GB)", gb, required)
}

// DiskCheck verifies free space on the system drive meets a minimum.
type DiskCheck struct {
	RequiredGB int    // default: DefaultRequiredFreeDiskGB
	Path       string // volume root to inspect (required)
	Reader     ResourceReader
}

func (c *DiskCheck) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name:     fmt.Sprintf("Free disk (%s)", c.Path),
		Severity: check.Blocking,
	}

	required := c.RequiredGB
	if required == 0 {
		required = DefaultRequiredFreeDiskGB
	}

	free, err := reader(c.Reader).FreeDisk(ctx, c.Path)
	if err != nil {
		return result.Fail(fmt.Sprintf("could not query free space on %s: %v", c.Path, err), err)
	}

	gb := BytesToGB(free)
	if !AtLeastGB(free, required) {
		return result.Failf("%.2f GB free (required: %d GB)", gb, required)
	}

	return result.Passf("%.2f GB free (required: %d GB)", gb, required)
}
