package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
	StatusInfo Status = "INFO"
	StatusWarn Status = "WARN"
	StatusSkip Status = "SKIP"
)

// Severity decides whether a failed check affects the overall verdict.
type Severity int

const (
	// Blocking checks flip the verdict to FAIL when they fail.
	Blocking Severity = iota
	// Informational checks are reported but never affect the verdict.
	Informational
)

// Result holds the outcome of a single check.
type Result struct {
	Name     string   // e.g., "OS 64-bit", "RAM"
	Status   Status   // OK, FAIL, INFO, WARN or SKIP
	Details  []string // human-readable details, first line is the summary
	Severity Severity // Blocking or Informational
	Err      error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Blocks returns true if this result should flip the overall verdict.
// Skipped checks never block.
func (r Result) Blocks() bool {
	return r.Status == StatusFail && r.Severity == Blocking
}
