// Package connection implements the client-side event queue and dispatch
// engine: a single-owner Connection that multiplexes request sending,
// event decoding, object lifecycle bookkeeping, and blocking/non-blocking
// roundtrips on top of a buffered socket.
package connection

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/bnema/wlcore/debug"
	"github.com/bnema/wlcore/objects"
	"github.com/bnema/wlcore/socket"
	"github.com/bnema/wlcore/wire"
	"github.com/bnema/wlcore/wlerr"
)

// Proxy is implemented by every generated object wrapper: a typed handle
// carrying the id and static interface of a bound Wayland object.
type Proxy interface {
	WlID() wire.ObjectID
	WlInterface() *wire.Interface
}

// dispatcher is the type-erased handle a Connection stores per live
// object; generic callback state is boxed behind it via eventHandler.
type dispatcher interface {
	dispatch(conn *Connection, opcode uint16, msg wire.Message)
}

// EventCtx threads the caller-supplied state and typed proxy through to a
// generated event callback, replacing a captured closure: D is whatever
// state the caller associates with this proxy (a struct, a channel, nil),
// and P is the concrete generated proxy type.
type EventCtx[D any, P Proxy] struct {
	Conn  *Connection
	State D
	Proxy P
}

type eventHandler[D any, P Proxy] struct {
	ctx    EventCtx[D, P]
	decode func(uint16, wire.Message) (any, error)
	handle func(EventCtx[D, P], any)
}

func (h *eventHandler[D, P]) dispatch(conn *Connection, opcode uint16, msg wire.Message) {
	ev, err := h.decode(opcode, msg)
	if err != nil {
		conn.logger.Errorw("event decode failed", "object", h.ctx.Proxy.WlID(), "err", err)
		return
	}
	h.handle(h.ctx, ev)
}

// SetEventHandler registers decode/handle for events delivered to proxy.
// decode converts a raw opcode and wire.Message into the generated event
// enum value; handle receives it alongside the bound EventCtx. Calling
// this again for the same proxy id replaces the previous handler.
func SetEventHandler[D any, P Proxy](conn *Connection, state D, proxy P, decode func(uint16, wire.Message) (any, error), handle func(EventCtx[D, P], any)) {
	conn.dispatchers[proxy.WlID()] = &eventHandler[D, P]{
		ctx:    EventCtx[D, P]{Conn: conn, State: state, Proxy: proxy},
		decode: decode,
		handle: handle,
	}
}

// ProtocolErrorHandler is invoked when the compositor sends a
// wl_display.error event. Per protocol, the connection is no longer
// usable once this fires.
type ProtocolErrorHandler func(err *wlerr.ProtocolError)

// Connection owns the buffered socket, the object id manager, and the
// per-object event dispatch table for a single client connection. It is
// not safe for concurrent use from multiple goroutines; callers wanting
// concurrent access must serialize it themselves, the same contract the
// buffered socket and object manager already carry.
type Connection struct {
	sock   *socket.BufferedSocket
	objs   *objects.Manager
	logger *zap.SugaredLogger

	dispatchers map[wire.ObjectID]dispatcher
	interfaces  map[string]*wire.Interface

	onProtocolError ProtocolErrorHandler
	lastProtoErr    *wlerr.ProtocolError

	trace bool
}

// displayInterface is the minimal built-in wl_display descriptor used to
// decode the two events every connection must understand before any
// generated protocol package is wired in: error and delete_id. It also
// carries the sync and get_registry requests that Roundtrip and
// GetRegistry send, and nothing else of wl_display.
var displayInterface = &wire.Interface{
	Name:    "wl_display",
	Version: 1,
	Events: []wire.MessageDesc{
		{Name: "error", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgString}},
		{Name: "delete_id", Signature: []wire.ArgType{wire.ArgUint}},
	},
	Requests: []wire.MessageDesc{
		{Name: "sync", Signature: []wire.ArgType{wire.ArgNewID}},
		{Name: "get_registry", Signature: []wire.ArgType{wire.ArgNewID}},
	},
}

// DisplayInterface returns the built-in wl_display descriptor used to
// bootstrap a Connection. A generated protocol/wl package may supply its
// own richer descriptor at construction time via New's iface
// parameter; passing nil falls back to this one.
func DisplayInterface() *wire.Interface { return displayInterface }

// New creates a Connection over sock. If iface is nil, the built-in
// bootstrap wl_display descriptor is used.
func New(sock *socket.BufferedSocket, iface *wire.Interface, logger *zap.SugaredLogger) *Connection {
	if iface == nil {
		iface = displayInterface
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Connection{
		sock:        sock,
		objs:        objects.NewManager(iface),
		logger:      logger,
		dispatchers: make(map[wire.ObjectID]dispatcher),
		interfaces:  map[string]*wire.Interface{iface.Name: iface},
	}
}

// SetTrace enables or disables per-message debug logging via the debug
// package, the Go analogue of WAYLAND_DEBUG=1.
func (c *Connection) SetTrace(on bool) { c.trace = on }

// OnProtocolError registers the callback invoked when the compositor
// raises wl_display.error. Only one handler may be registered at a time.
func (c *Connection) OnProtocolError(h ProtocolErrorHandler) { c.onProtocolError = h }

// LastProtocolError returns the most recently observed protocol error, if
// any has occurred on this connection.
func (c *Connection) LastProtocolError() *wlerr.ProtocolError { return c.lastProtoErr }

// Objects exposes the underlying id manager for generated proxy
// constructors that need to allocate and register ids.
func (c *Connection) Objects() *objects.Manager { return c.objs }

// RegisterInterface records iface so generated decode helpers (and
// debug formatting) can resolve interface descriptors by name.
func (c *Connection) RegisterInterface(iface *wire.Interface) {
	c.interfaces[iface.Name] = iface
}

// LookupInterface returns an interface descriptor previously recorded by
// RegisterInterface (or the display descriptor given to New), by name.
func (c *Connection) LookupInterface(name string) (*wire.Interface, bool) {
	iface, ok := c.interfaces[name]
	return iface, ok
}

// SendRequest encodes and enqueues a request into the socket's outgoing
// ring. It performs no I/O while the ring has room for the message; when
// it does not, the socket flushes already-queued bytes to the transport
// first. Call Flush (Roundtrip does so itself) to put the queued bytes on
// the wire. This split lets a caller batch several requests into a single
// write(2) call.
//
// If args contains a pending NewId argument (built with
// wire.ArgNewIDRequest), SendRequest allocates a fresh object id against
// the interface it names, registers it as live before the message is
// encoded, fills the concrete id into the argument, and returns it, so
// wl_display.sync, wl_display.get_registry and the generated NewId
// requests need not repeat that sequence. Untyped new_id arguments
// (Registry.Bind) are not handled here; their caller allocates and
// registers the id itself. It returns 0 if args has no NewId argument.
func (c *Connection) SendRequest(objID wire.ObjectID, opcode uint16, desc *wire.MessageDesc, args []wire.ArgValue) (wire.ObjectID, error) {
	var newID wire.ObjectID
	for i := range args {
		if args[i].Kind != wire.KindNewID || args[i].NewIDInterface == nil {
			continue
		}
		id, err := c.objs.AllocateID()
		if err != nil {
			return 0, err
		}
		c.objs.Register(&wire.Object{ID: id, Interface: args[i].NewIDInterface, Version: args[i].NewIDInterface.Version})
		args[i].Object = id
		newID = id
	}

	c.objs.OnSendRequest(objID, desc)
	if err := c.sock.WriteMessage(objID, opcode, args); err != nil {
		if newID != 0 {
			c.objs.Release(newID)
		}
		return 0, &wlerr.SendMessageError{Msg: wire.Message{Header: wire.MessageHeader{ObjectID: objID, Opcode: opcode}, Args: args}, Err: err}
	}
	if c.trace {
		if obj, ok := c.objs.Lookup(objID); ok && obj.Interface != nil {
			c.logger.Debugf("%s", debug.FormatMessage(debug.Outgoing, obj.Interface.Name, objID, desc, wire.Message{Args: args}))
		}
	}
	return newID, nil
}

// Flush writes any buffered outgoing bytes to the transport.
func (c *Connection) Flush() error {
	return c.sock.Flush()
}

// DispatchPending decodes and delivers every event fully buffered right
// now, without attempting any I/O. It returns the number of events
// dispatched.
func (c *Connection) DispatchPending() (int, error) {
	n := 0
	for {
		dispatched, err := c.dispatchOne()
		if err == socket.ErrIncomplete {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if !dispatched {
			return n, nil
		}
		n++
	}
}

// DispatchBlocking reads from the transport (blocking via poll) until at
// least one event has been fully received and dispatched, or a fatal
// error occurs.
func (c *Connection) DispatchBlocking() error {
	for {
		n, err := c.DispatchPending()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		if err := c.fillBlocking(); err != nil {
			return err
		}
	}
}

// dispatchOne attempts to decode and deliver exactly one buffered event.
// It returns (false, nil) if fewer than a full header is buffered yet
// (distinct from ErrIncomplete, which means the header arrived but the
// body hasn't).
func (c *Connection) dispatchOne() (bool, error) {
	hdr, ok, err := c.sock.PeekMessageHeader()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	obj, found := c.objs.Lookup(hdr.ObjectID)
	if !found {
		// An event can legitimately arrive for an object whose destructor
		// was already queued but whose delete_id hasn't landed yet; the
		// dead set still carries its interface so dispatch can proceed.
		if dead, ok := c.objs.LookupDead(hdr.ObjectID); ok {
			obj = dead
		} else if hdr.ObjectID == wire.DISPLAY {
			obj = &wire.Object{ID: wire.DISPLAY, Interface: displayInterface}
		} else {
			return false, &wlerr.UnknownObjectError{ObjectID: uint32(hdr.ObjectID)}
		}
	}
	if obj.Interface == nil || int(hdr.Opcode) >= len(obj.Interface.Events) {
		return false, &wlerr.DecodeError{Reason: fmt.Sprintf("opcode %d out of range for interface %v", hdr.Opcode, obj.Interface)}
	}
	desc := &obj.Interface.Events[hdr.Opcode]

	msg, err := c.sock.RecvMessage(desc.Signature)
	if err != nil {
		return false, err
	}

	if c.trace {
		c.logger.Debugf("%s", debug.FormatMessage(debug.Incoming, obj.Interface.Name, hdr.ObjectID, desc, msg))
	}

	if hdr.ObjectID == wire.DISPLAY {
		c.handleDisplayEvent(hdr.Opcode, msg)
		return true, nil
	}

	if d, ok := c.dispatchers[hdr.ObjectID]; ok {
		d.dispatch(c, hdr.Opcode, msg)
	}
	return true, nil
}

func (c *Connection) handleDisplayEvent(opcode uint16, msg wire.Message) {
	switch opcode {
	case 0: // error
		protoErr := &wlerr.ProtocolError{
			ObjectID: uint32(msg.Args[0].Uint),
			Code:     msg.Args[1].Uint,
			Message:  msg.Args[2].String,
		}
		c.lastProtoErr = protoErr
		if c.onProtocolError != nil {
			c.onProtocolError(protoErr)
		}
	case 1: // delete_id
		c.objs.OnDeleteID(wire.ObjectID(msg.Args[0].Uint))
	}
}

// fillBlocking waits for the transport to become readable and then pulls
// in whatever bytes are available.
func (c *Connection) fillBlocking() error {
	fds := []unix.PollFd{{Fd: int32(c.sock.PollableFD()), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, -1)
		if err != nil {
			if err == unix.EINTR {
				continue
			}
			return &wlerr.IOError{Op: "poll", Err: err}
		}
		if n == 0 {
			continue
		}
		break
	}
	err := c.sock.FillIncoming()
	if err == wlerr.ErrWouldBlock {
		return nil
	}
	return err
}
