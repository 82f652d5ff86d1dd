package transport

import (
	"context"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// bindUDP binds a UDP socket to addr with address-sharing semantics, so
// that multiple mDNS responders on the host can coexist on the port.
//
// The first attempt requests SO_REUSEADDR. If the bind still fails, it
// retries once requesting SO_REUSEPORT as well, which permits binds that
// SO_REUSEADDR alone does not.
func bindUDP(network string, addr *net.UDPAddr) (*net.UDPConn, error) {
	lc := net.ListenConfig{
		Control: setReuseAddr,
	}

	pc, err := lc.ListenPacket(context.Background(), network, addr.String())
	if err == nil {
		return pc.(*net.UDPConn), nil
	}

	lc = net.ListenConfig{
		Control: setReusePort,
	}

	pc, err = lc.ListenPacket(context.Background(), network, addr.String())
	if err != nil {
		return nil, err
	}

	return pc.(*net.UDPConn), nil
}

// setReuseAddr marks the socket with the SO_REUSEADDR option before it is
// bound, allowing the mDNS port to be shared with other responders.
func setReuseAddr(network, address string, c syscall.RawConn) error {
	return control(c, func(fd int) error {
		return unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
	})
}

// setReusePort marks the socket with both the SO_REUSEADDR and
// SO_REUSEPORT options before it is bound.
func setReusePort(network, address string, c syscall.RawConn) error {
	return control(c, func(fd int) error {
		if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
			return err
		}

		return unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	})
}

// control applies fn to the socket's file descriptor before the socket is
// bound.
func control(c syscall.RawConn, fn func(fd int) error) error {
	var optErr error

	err := c.Control(func(fd uintptr) {
		optErr = fn(int(fd))
	})
	if err != nil {
		return err
	}

	return optErr
}
