package syscheck

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/vertti/readiness/pkg/check"
)

// SysInfo abstracts system information for testability.
type SysInfo interface {
	OS() string
	Arch(ctx context.Context) (string, error)
}

// RealSysInfo returns actual system information.
type RealSysInfo struct{}

func (r *RealSysInfo) OS() string { return runtime.GOOS }

// kernelArch is swapped out in tests.
var kernelArch = host.KernelArch

// Arch returns the kernel architecture, e.g. "x86_64" or "aarch64".
// A 32-bit build running on a 64-bit kernel still reports the kernel's view.
// When the kernel cannot be asked, the architecture this binary was built
// for is used instead.
func (r *RealSysInfo) Arch(context.Context) (string, error) {
	arch, err := kernelArch()
	if err != nil || strings.TrimSpace(arch) == "" {
		return runtime.GOARCH, nil
	}
	return arch, nil
}

var arch64 = map[string]bool{
	"amd64": true, "x86_64": true, "x64": true,
	"arm64": true, "aarch64": true,
	"ppc64": true, "ppc64le": true,
	"s390x": true, "riscv64": true,
	"mips64": true, "mips64le": true,
	"loong64": true, "sparc64": true,
}

// Is64Bit reports whether an architecture string names a 64-bit platform.
func Is64Bit(arch string) bool {
	a := strings.ToLower(strings.TrimSpace(arch))
	return arch64[a] || strings.Contains(a, "64")
}

// Check verifies the operating system is 64-bit.
type Check struct {
	Info SysInfo // injected for testing
}

func (c *Check) Run(ctx context.Context) check.Result {
	result := check.Result{
		Name:     "OS 64-bit",
		Severity: check.Blocking,
	}

	info := c.Info
	if info == nil {
		info = &RealSysInfo{}
	}

	arch, err := info.Arch(ctx)
	if err != nil {
		return result.Fail(fmt.Sprintf("could not determine OS architecture: %v", err), err)
	}

	if !Is64Bit(arch) {
		return result.Failf("%s/%s is not 64-bit; a 64-bit OS is required", info.OS(), arch)
	}

	return result.Passf("%s/%s", info.OS(), arch)
}
