package check

import "fmt"

// Fail sets the result to failed status with a detail message.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Failf sets the result to failed status with a formatted detail message.
func (r *Result) Failf(format string, args ...interface{}) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// Pass sets the result to OK with a detail message.
func (r *Result) Pass(detail string) Result {
	r.Status = StatusOK
	r.Details = append(r.Details, detail)
	return *r
}

// Passf sets the result to OK with a formatted detail message.
func (r *Result) Passf(format string, args ...interface{}) Result {
	return r.Pass(fmt.Sprintf(format, args...))
}

// Infof marks the result as informational with a formatted detail message.
func (r *Result) Infof(format string, args ...interface{}) Result {
	r.Status = StatusInfo
	r.Details = append(r.Details, fmt.Sprintf(format, args...))
	return *r
}

// Warn marks the result as a best-effort warning.
func (r *Result) Warn(detail string, err error) Result {
	r.Status = StatusWarn
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Skipf marks the result as skipped with a formatted reason.
func (r *Result) Skipf(format string, args ...interface{}) Result {
	r.Status = StatusSkip
	r.Details = append(r.Details, fmt.Sprintf(format, args...))
	return *r
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...interface{}) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
