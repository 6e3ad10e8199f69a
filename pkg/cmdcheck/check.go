package cmdcheck

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DefaultTimeout bounds every child process started by a check.
const DefaultTimeout = 30 * time.Second

// ErrNotFound is returned by Find when none of the candidates is on PATH.
var ErrNotFound = errors.New("not found in PATH")

// Find returns the first candidate that resolves on PATH, with its path.
func Find(r Runner, candidates ...string) (name, path string, err error) {
	for _, c := range candidates {
		if p, lookErr := r.LookPath(c); lookErr == nil {
			return c, p, nil
		}
	}
	return "", "", fmt.Errorf("%s: %w", strings.Join(candidates, ", "), ErrNotFound)
}

// Output runs name with args under timeout and returns its trimmed output.
// Tools that print their version on stderr (older Pythons do) are handled
// by falling back to stderr when stdout is empty.
func Output(ctx context.Context, r Runner, timeout time.Duration, name string, args ...string) (string, error) {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout, stderr, err := r.RunCommandContext(ctx, name, args...)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%s timed out after %s", name, timeout)
		}
		if s := strings.TrimSpace(stderr); s != "" {
			return "", fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, s)
		}
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	out := strings.TrimSpace(stdout)
	if out == "" {
		out = strings.TrimSpace(stderr)
	}
	return out, nil
}
