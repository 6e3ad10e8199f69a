package netcheck

import "fmt"

// Outcome is the typed result of a single reachability probe.
type Outcome int

const (
	// Reachable means the probe reached the host.
	Reachable Outcome = iota
	// Unreachable means the probe ran but the host did not answer acceptably.
	Unreachable
	// Unavailable means the probing method itself could not be used.
	Unavailable
)

func (o Outcome) String() string {
	switch o {
	case Reachable:
		return "reachable"
	case Unreachable:
		return "unreachable"
	case Unavailable:
		return "method unavailable"
	default:
		return "unknown"
	}
}

// Attempt records what one probing step observed.
type Attempt struct {
	Method  string // "TCP" or "HTTPS HEAD"
	Target  string
	Outcome Outcome
	Status  int // HTTP status code, 0 for TCP or transport errors
	Err     error
}

func (a Attempt) String() string {
	switch {
	case a.Outcome == Reachable && a.Status != 0:
		return fmt.Sprintf("%s %s: status %d", a.Method, a.Target, a.Status)
	case a.Outcome == Reachable:
		return fmt.Sprintf("%s %s: connected", a.Method, a.Target)
	case a.Err != nil:
		return fmt.Sprintf("%s %s: %s (%v)", a.Method, a.Target, a.Outcome, a.Err)
	default:
		return fmt.Sprintf("%s %s: %s", a.Method, a.Target, a.Outcome)
	}
}
