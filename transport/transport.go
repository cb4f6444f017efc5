// Package transport abstracts the byte- and file-descriptor-carrying channel
// beneath a connection. The default implementation is a Unix domain socket
// using SCM_RIGHTS ancillary messages to pass file descriptors alongside
// ordinary message bytes, the same mechanism a Wayland compositor socket
// uses for keymaps, shm pools and DMA-BUF handles.
package transport

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ErrWouldBlock is returned by Send/Recv when the underlying descriptor is
// non-blocking and has no data/buffer space available right now. Callers
// should wait for readability/writability (e.g. via poll) and retry.
var ErrWouldBlock = errors.New("transport: operation would block")

// ErrClosed is returned once the transport has been closed.
var ErrClosed = errors.New("transport: closed")

// Transport is the minimal surface a connection needs from its underlying
// channel: a pollable descriptor, and the ability to send/receive bytes
// together with out-of-band file descriptors.
type Transport interface {
	// PollableFD returns a file descriptor suitable for passing to
	// poll/epoll to wait for readability or writability.
	PollableFD() int

	// Send writes data and, if non-empty, passes fds as ancillary data
	// alongside it. It returns the number of payload bytes written; a
	// partial ancillary-data send is never produced — either all fds are
	// attached to this call or Send fails outright.
	Send(data []byte, fds []int) (n int, err error)

	// Recv reads into buf, returning the number of payload bytes read and
	// any file descriptors received alongside them via ancillary data.
	Recv(buf []byte) (n int, fds []int, err error)

	// Close releases the underlying descriptor.
	Close() error
}

// Unix is a Transport backed by a connected, non-blocking AF_UNIX socket.
type Unix struct {
	fd     int
	closed bool
}

// NewUnix wraps an already-connected Unix domain socket file descriptor.
// The descriptor is switched to non-blocking mode.
func NewUnix(fd int) (*Unix, error) {
	if err := unix.SetNonblock(fd, true); err != nil {
		return nil, fmt.Errorf("transport: set nonblock: %w", err)
	}
	return &Unix{fd: fd}, nil
}

// DialUnix connects to the Wayland compositor socket at path and returns a
// ready-to-use Unix transport.
func DialUnix(path string) (*Unix, error) {
	fd, err := unix.Socket(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("transport: socket: %w", err)
	}
	addr := &unix.SockaddrUnix{Name: path}
	if err := unix.Connect(fd, addr); err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("transport: connect %s: %w", path, err)
	}
	return NewUnix(fd)
}

// SocketPair returns two connected Unix transports sharing a single
// AF_UNIX socket pair, suitable for tests that need a real kernel-backed
// transport (including fd passing) without a compositor.
func SocketPair() (a, b *Unix, err error) {
	fds, err := unix.Socketpair(unix.AF_UNIX, unix.SOCK_STREAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("transport: socketpair: %w", err)
	}
	ua, err := NewUnix(fds[0])
	if err != nil {
		unix.Close(fds[0])
		unix.Close(fds[1])
		return nil, nil, err
	}
	ub, err := NewUnix(fds[1])
	if err != nil {
		ua.Close()
		unix.Close(fds[1])
		return nil, nil, err
	}
	return ua, ub, nil
}

func (u *Unix) PollableFD() int { return u.fd }

func (u *Unix) Send(data []byte, fds []int) (int, error) {
	if u.closed {
		return 0, ErrClosed
	}
	var oob []byte
	if len(fds) > 0 {
		oob = unix.UnixRights(fds...)
	}
	n, err := unix.SendmsgN(u.fd, data, oob, nil, unix.MSG_NOSIGNAL|unix.MSG_DONTWAIT)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
			return 0, ErrWouldBlock
		}
		return 0, fmt.Errorf("transport: sendmsg: %w", err)
	}
	return n, nil
}

func (u *Unix) Recv(buf []byte) (int, []int, error) {
	if u.closed {
		return 0, nil, ErrClosed
	}
	oob := make([]byte, unix.CmsgSpace(64*4)) // room for up to 64 fds
	n, oobn, _, _, err := unix.Recvmsg(u.fd, buf, oob, unix.MSG_DONTWAIT|unix.MSG_CMSG_CLOEXEC)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) {
			return 0, nil, ErrWouldBlock
		}
		return 0, nil, fmt.Errorf("transport: recvmsg: %w", err)
	}
	if n == 0 {
		return 0, nil, fmt.Errorf("transport: peer disconnected: %w", errDisconnected)
	}
	fds, err := parseFDs(oob[:oobn])
	if err != nil {
		return n, nil, fmt.Errorf("transport: parse ancillary fds: %w", err)
	}
	return n, fds, nil
}

var errDisconnected = errors.New("disconnected")

// ErrDisconnected reports whether err indicates the peer closed the
// connection (a zero-length, non-erroring read).
func ErrDisconnected(err error) bool {
	return errors.Is(err, errDisconnected)
}

func parseFDs(oob []byte) ([]int, error) {
	if len(oob) == 0 {
		return nil, nil
	}
	cmsgs, err := unix.ParseSocketControlMessage(oob)
	if err != nil {
		return nil, err
	}
	var fds []int
	for _, cmsg := range cmsgs {
		got, err := unix.ParseUnixRights(&cmsg)
		if err != nil {
			continue
		}
		fds = append(fds, got...)
	}
	return fds, nil
}

func (u *Unix) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true
	return unix.Close(u.fd)
}
