package readiness

import "github.com/vertti/readiness/pkg/check"

// Report is the ordered list of results from one run.
type Report struct {
	Results []check.Result
}

// Ready returns true if no blocking check failed.
func (r Report) Ready() bool {
	for _, res := range r.Results {
		if res.Blocks() {
			return false
		}
	}
	return true
}

// Failed returns the results that block readiness.
func (r Report) Failed() []check.Result {
	var failed []check.Result
	for _, res := range r.Results {
		if res.Blocks() {
			failed = append(failed, res)
		}
	}
	return failed
}
