package core

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

var netListen = net.Listen

// Listen binds a TCP listener on addr. No retries are attempted.
func Listen(addr string) (net.Listener, error) {
	ln, err := netListen("tcp", addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return nil, fmt.Errorf("%w: %s", ErrAddrInUse, addr)
		}
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return ln, nil
}
