package check

import "context"

// Checker is implemented by all check types.
// Each check inspects one aspect of the host
// and returns a Result describing what it found.
//
// Implementations:
//   - syscheck.Check: verifies the OS architecture is 64-bit
//   - shellcheck.Check: verifies the host shell version
//   - resourcecheck.CPUCheck, MemoryCheck, DiskCheck: CPU, RAM and free disk
//   - pythoncheck.Check, VenvCheck: Python runtime and venv module
//   - netcheck.Check: outbound reachability of the API host
type Checker interface {
	Run(ctx context.Context) Result
}
