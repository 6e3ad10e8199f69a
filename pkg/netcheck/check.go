package netcheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"

	"github.com/vertti/readiness/pkg/check"
)

const DefaultPort = 443

// Check verifies outbound reachability of an API host.
//
// It first tries a plain TCP connection. If that does not succeed, for
// whatever reason, it falls back to an HTTPS HEAD request, which also works
// behind proxies that block raw connections. The check fails only when
// both steps fail.
type Check struct {
	Host   string // hostname without scheme; empty skips the check
	Port   int    // default: DefaultPort
	Dialer TCPDialer
	Client HTTPClient
	Logger *slog.Logger
}

// NormalizeHost strips a scheme, path, port and surrounding whitespace so
// that "https://api.example.com:8443/" and "api.example.com" probe the same
// host. The port probed is always Check.Port.
func NormalizeHost(host string) string {
	h := strings.TrimSpace(host)
	if i := strings.Index(h, "://"); i >= 0 {
		h = h[i+3:]
	}
	if i := strings.IndexAny(h, "/?#"); i >= 0 {
		h = h[:i]
	}
	if hostOnly, _, err := net.SplitHostPort(h); err == nil {
		h = hostOnly
	}
	return strings.TrimSuffix(strings.TrimPrefix(h, "["), "]")
}

func (c *Check) Run(ctx context.Context) check.Result {
	host := NormalizeHost(c.Host)
	result := check.Result{
		Name:     "API reachability",
		Severity: check.Blocking,
	}

	if host == "" {
		return result.Skipf("skipped because no API host was given (use --test-api-host)")
	}
	result.Name = "API reachability (" + host + ")"

	port := c.Port
	if port == 0 {
		port = DefaultPort
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	tcp := ProbeTCP(ctx, c.Dialer, hostPort(host, port))
	if tcp.Outcome == Reachable {
		return result.Passf("connected to %s", tcp.Target)
	}
	logger.Warn("TCP probe failed, falling back to HTTPS HEAD",
		"target", tcp.Target, "outcome", tcp.Outcome.String(), "error", tcp.Err)

	authority := hostPort(host, port)
	if port == DefaultPort {
		authority = strings.TrimSuffix(authority, fmt.Sprintf(":%d", DefaultPort))
	}
	url := "https://" + authority + "/"
	head := ProbeHTTP(ctx, c.Client, url)
	if head.Outcome == Reachable {
		result.Passf("HTTPS HEAD %s returned %d", url, head.Status)
		return *result.AddDetail(tcp.String())
	}

	result.Fail(fmt.Sprintf("%s is not reachable on port %d; check network, firewall or proxy settings", host, port),
		errors.Join(tcp.Err, head.Err))
	result.AddDetail(tcp.String())
	return *result.AddDetail(head.String())
}
