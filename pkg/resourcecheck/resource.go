package resourcecheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
)

// CPUInfo describes the processor as reported by the OS.
type CPUInfo struct {
	Model        string
	LogicalCores int
}

// ResourceReader abstracts system resource detection for testability.
type ResourceReader interface {
	// TotalMemory returns installed memory visible to the OS, in bytes.
	TotalMemory(ctx context.Context) (uint64, error)

	// FreeDisk returns free disk space in bytes on the volume holding path.
	FreeDisk(ctx context.Context, path string) (uint64, error)

	// CPU returns the processor model and logical core count.
	CPU(ctx context.Context) (CPUInfo, error)
}

// RealResourceReader implements ResourceReader using gopsutil.
type RealResourceReader struct{}

func (r *RealResourceReader) TotalMemory(ctx context.Context) (uint64, error) {
	v, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get virtual memory: %w", err)
	}
	return v.Total, nil
}

func (r *RealResourceReader) FreeDisk(ctx context.Context, path string) (uint64, error) {
	u, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("failed to get disk usage for %s: %w", path, err)
	}
	return u.Free, nil
}

func (r *RealResourceReader) CPU(ctx context.Context) (CPUInfo, error) {
	cores, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return CPUInfo{}, fmt.Errorf("failed to count cpus: %w", err)
	}

	model := "unknown model"
	if info, err := cpu.InfoWithContext(ctx); err == nil && len(info) > 0 {
		if m := strings.TrimSpace(info[0].ModelName); m != "" {
			model = m
		}
	}

	return CPUInfo{Model: model, LogicalCores: cores}, nil
}

// SystemDrive returns the root of the volume the OS is installed on:
// %SystemDrive%\ on Windows (C:\ when unset) and / elsewhere.
func SystemDrive(goos string, getenv func(string) string) string {
	if goos != "windows" {
		return "/"
	}
	drive := strings.TrimRight(getenv("SystemDrive"), `\`)
	if drive == "" {
		drive = "C:"
	}
	return drive + `\`
}
