// Package wlerr collects the error types a connection can surface, from a
// failed initial socket connect through fatal I/O failures and protocol
// errors raised by the compositor itself.
package wlerr

import (
	"errors"
	"fmt"

	"github.com/bnema/wlcore/wire"
)

// ErrWouldBlock is returned by non-blocking operations that cannot make
// progress right now; it is recoverable and callers should retry after the
// descriptor becomes ready again.
var ErrWouldBlock = errors.New("wlerr: would block")

// ErrPeerDisconnected is returned once the peer has closed the connection.
var ErrPeerDisconnected = errors.New("wlerr: peer disconnected")

// ErrQueueFull is returned when a send would overflow the buffered socket's
// outgoing byte capacity even after flushing everything already queued.
var ErrQueueFull = errors.New("wlerr: outgoing queue full")

// ErrNotEnoughEnvVars is returned when the environment lacks a variable
// needed to locate the compositor socket (XDG_RUNTIME_DIR, WAYLAND_DISPLAY).
var ErrNotEnoughEnvVars = errors.New("wlerr: required environment variable not set")

// ErrTooManyBytes is returned when a single message's encoded size exceeds
// the 16-bit wire size field.
var ErrTooManyBytes = errors.New("wlerr: message size exceeds 16-bit size field")

// ErrTooManyFds is returned when a send would overflow the buffered
// socket's outgoing fd capacity even after flushing.
var ErrTooManyFds = errors.New("wlerr: outgoing fd queue full")

// ErrUnexpectedNull is returned when a required (non-optional) object or
// new_id argument decodes as the null id 0.
var ErrUnexpectedNull = errors.New("wlerr: unexpected null object id")

// ErrNullInString is returned when a decoded string argument contains an
// embedded NUL byte before its declared terminator.
var ErrNullInString = errors.New("wlerr: embedded null byte in string argument")

// ErrNullObjectID is returned by PeekMessageHeader when a message header
// names object id 0, which is never valid on the wire.
var ErrNullObjectID = errors.New("wlerr: message header names null object id")

// ConnectError wraps a failure to locate or connect to the compositor
// socket (missing XDG_RUNTIME_DIR, missing WAYLAND_DISPLAY, dial failure).
type ConnectError struct {
	Detail string
	Err    error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("wlerr: connect: %s: %v", e.Detail, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// IOError wraps a failure from the underlying transport. WouldBlock
// distinguishes a transient, recoverable condition from a fatal one: a
// fatal IOError means the connection must be torn down.
type IOError struct {
	Op         string
	Err        error
	WouldBlock bool
}

func (e *IOError) Error() string {
	return fmt.Sprintf("wlerr: io: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// DecodeError reports a malformed message on the wire: a size that is not
// a multiple of 4, a string/array whose declared length overruns the
// message body, or an opcode with no matching MessageDesc.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wlerr: decode: %s", e.Reason)
}

// UnknownObjectError is returned when a received event references an
// object id that is not live (already destroyed, or never allocated).
type UnknownObjectError struct {
	ObjectID uint32
}

func (e *UnknownObjectError) Error() string {
	return fmt.Sprintf("wlerr: event for unknown object id %d", e.ObjectID)
}

// ProtocolError mirrors a wl_display.error event: the compositor
// considers the client to have committed a protocol violation and the
// connection is no longer usable.
type ProtocolError struct {
	ObjectID uint32
	Code     uint32
	Message  string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("wlerr: protocol error on object %d, code %d: %s", e.ObjectID, e.Code, e.Message)
}

// SendMessageError is returned by a request send that failed partway
// through. Msg carries the message that was never transmitted so a caller
// that owns fds in its arguments can close what was not handed off to the
// kernel.
type SendMessageError struct {
	Msg wire.Message
	Err error
}

func (e *SendMessageError) Error() string {
	return fmt.Sprintf("wlerr: send: object %d opcode %d: %v", e.Msg.Header.ObjectID, e.Msg.Header.Opcode, e.Err)
}

func (e *SendMessageError) Unwrap() error { return e.Err }
