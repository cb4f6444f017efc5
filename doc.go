// Package wlcore provides a client-side Wayland protocol runtime: wire
// codec, object id management, a buffered socket, and an event dispatch
// engine, plus a code generator for turning protocol XML into typed Go
// bindings.
//
// This is not a higher-level widget toolkit. It is the layer those
// toolkits sit on: the same layer wayland-client occupies for C clients.
// Generated protocol packages (protocol/wl, protocol/virtualpointer,
// protocol/virtualkeyboard, protocol/pointerconstraints) are built on top
// of it and show the intended usage pattern.
//
// # Packages
//
// • wire: object ids, interface/message descriptors, argument types
// • ringbuffer: fixed-capacity wrap-around byte ring
// • transport: the Unix-domain-socket channel, including SCM_RIGHTS fd passing
// • socket: a buffered socket fusing ringbuffer, transport and wire codec
// • objects: the live/dead/reusable object id manager
// • connection: the event queue and dispatch engine
// • debug: WAYLAND_DEBUG-style message tracing
// • wlerr: the connection's error taxonomy
// • protoscan: the protocol XML → Go code generator
//
// # Basic usage
//
//	tr, err := transport.DialUnix(socketPath)
//	sock := socket.New(transport.NewAny(tr))
//	conn := connection.New(sock, wl.DisplayInterface, logger)
//
//	reg, err := connection.BlockingCollectInitialGlobals(conn)
//	seat, _ := reg.Find("wl_seat")
//	seatID, err := reg.Bind(seat, wl.SeatInterface, seat.Version)
//
// # Concurrency
//
// A Connection, BufferedSocket, and Manager are single-owner types: all
// calls must come from the goroutine driving the event loop. Concurrent
// access from multiple goroutines requires external synchronization.
//
// # Error handling
//
// Operations return errors from the wlerr package: ErrWouldBlock,
// ErrPeerDisconnected, and ErrQueueFull are sentinels, while ConnectError,
// IOError, DecodeError, UnknownObjectError, ProtocolError and
// SendMessageError carry structured detail for errors.As.
package wlcore
