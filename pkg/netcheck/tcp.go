package netcheck

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"
)

// TCPDialer abstracts network dialing for testability.
type TCPDialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// RealTCPDialer uses the real net package. A zero Timeout leaves the
// connect timeout to the operating system.
type RealTCPDialer struct {
	Timeout time.Duration
}

// DialContext dials the network address.
func (d *RealTCPDialer) DialContext(ctx context.Context, network, address string) (net.Conn, error) {
	dialer := &net.Dialer{Timeout: d.Timeout}
	return dialer.DialContext(ctx, network, address)
}

// ProbeTCP attempts a TCP connection to address.
func ProbeTCP(ctx context.Context, d TCPDialer, address string) Attempt {
	attempt := Attempt{Method: "TCP", Target: address}
	if d == nil {
		attempt.Outcome = Unavailable
		attempt.Err = errors.New("no TCP dialer configured")
		return attempt
	}

	conn, err := d.DialContext(ctx, "tcp", address)
	if err != nil {
		attempt.Outcome = classifyDialError(err)
		attempt.Err = err
		return attempt
	}
	defer func() { _ = conn.Close() }()

	attempt.Outcome = Reachable
	return attempt
}

// classifyDialError separates "the host did not answer" from "this
// machine is not allowed to open sockets at all".
func classifyDialError(err error) Outcome {
	if errors.Is(err, syscall.EPERM) || errors.Is(err, syscall.EACCES) {
		return Unavailable
	}
	var addrErr *net.AddrError
	if errors.As(err, &addrErr) {
		return Unavailable
	}
	return Unreachable
}

func hostPort(host string, port int) string {
	return net.JoinHostPort(host, fmt.Sprint(port))
}
