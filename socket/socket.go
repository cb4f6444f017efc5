// Package socket fuses the wire codec over a fixed-capacity ring buffer and
// a Transport, the way the original buffered-socket layer combines framing,
// buffering, and the underlying channel into one object that a connection
// can drive with WriteMessage/RecvMessage/Flush. Byte order is the host's
// native order, matching a local Unix domain socket where both peers run on
// the same machine.
package socket

import (
	"encoding/binary"
	"fmt"
	"syscall"

	"github.com/bnema/wlcore/ringbuffer"
	"github.com/bnema/wlcore/transport"
	"github.com/bnema/wlcore/wire"
	"github.com/bnema/wlcore/wlerr"
)

// Default capacities, chosen to comfortably hold a handful of in-flight
// messages and the file descriptors they may carry (keymaps, shm pools)
// without unbounded growth. A single message larger than a ring's capacity
// can never be buffered: WriteMessage rejects it with wlerr.ErrQueueFull,
// and an incoming one is never reported complete by RecvMessage.
const (
	DefaultBytesOut = 4096
	DefaultBytesIn  = 4096
	DefaultFDsOut   = 28
	DefaultFDsIn    = 28
)

// ErrIncomplete means RecvMessage (or PeekMessageHeader) was asked for data
// that has not fully arrived yet; the caller should fill more bytes from
// the transport and retry.
var ErrIncomplete = fmt.Errorf("socket: incomplete message buffered")

// BufferedSocket couples a Transport to two byte rings (outgoing,
// incoming) and two fd queues, providing message-level send/receive on top
// of the transport's raw byte/fd interface.
type BufferedSocket struct {
	t transport.Any

	outBytes *ringbuffer.RingBuffer
	inBytes  *ringbuffer.RingBuffer
	outFDs   []int
	inFDs    []int

	maxFDsOut int
	maxFDsIn  int

	scratch []byte // reused decode scratch buffer
}

// New creates a BufferedSocket with the default capacities.
func New(t transport.Any) *BufferedSocket {
	return NewSized(t, DefaultBytesOut, DefaultBytesIn, DefaultFDsOut, DefaultFDsIn)
}

// NewSized creates a BufferedSocket with explicit capacities, primarily for
// tests that want to exercise ring-wrap and queue-full behavior directly.
func NewSized(t transport.Any, bytesOut, bytesIn, fdsOut, fdsIn int) *BufferedSocket {
	return &BufferedSocket{
		t:         t,
		outBytes:  ringbuffer.New(bytesOut),
		inBytes:   ringbuffer.New(bytesIn),
		maxFDsOut: fdsOut,
		maxFDsIn:  fdsIn,
	}
}

// PollableFD exposes the underlying transport's descriptor for poll/epoll.
func (s *BufferedSocket) PollableFD() int { return s.t.PollableFD() }

// WriteMessage encodes header+args into the outgoing ring buffer and queues
// any Fd arguments for ancillary transmission on the next Flush. If the
// message or its fds do not fit, it calls Flush and retries for as long as
// each Flush frees some room, returning any Flush error as is; once a Flush
// frees nothing it fails with wlerr.ErrQueueFull (or wlerr.ErrTooManyFds).
// A message over the 16-bit size field fails with wlerr.ErrTooManyBytes.
func (s *BufferedSocket) WriteMessage(objID wire.ObjectID, opcode uint16, args []wire.ArgValue) error {
	bodySize := 0
	fdCount := 0
	for _, a := range args {
		bodySize += a.Size()
		if a.Kind == wire.KindFd {
			fdCount++
		}
	}
	total := wire.HeaderSize + bodySize
	if total > 0xFFFF {
		return wlerr.ErrTooManyBytes
	}

	// The outgoing ring (or fd queue) may simply be backed up with
	// already-encoded messages the transport hasn't accepted yet; attempt
	// to drain it before giving up, retrying as long as each Flush makes
	// room.
	for total > s.outBytes.Free() || (fdCount > 0 && len(s.outFDs)+fdCount > s.maxFDsOut) {
		beforeBytes := s.outBytes.Len()
		beforeFDs := len(s.outFDs)
		if err := s.Flush(); err != nil {
			return err
		}
		if s.outBytes.Len() == beforeBytes && len(s.outFDs) == beforeFDs {
			if total > s.outBytes.Free() {
				return wlerr.ErrQueueFull
			}
			return wlerr.ErrTooManyFds
		}
	}

	buf := make([]byte, total)
	binary.NativeEndian.PutUint32(buf[0:4], uint32(objID))
	binary.NativeEndian.PutUint32(buf[4:8], uint32(uint32(total)<<16|uint32(opcode)))

	off := wire.HeaderSize
	for _, a := range args {
		n, err := encodeArg(buf[off:], a)
		if err != nil {
			return err
		}
		if a.Kind == wire.KindFd {
			s.outFDs = append(s.outFDs, a.Fd)
		}
		off += n
	}

	n, _ := s.outBytes.Write(buf)
	if n != total {
		// Free() already guaranteed capacity; this would indicate a bug
		// in the free-space accounting above.
		panic("socket: short write into outgoing ring despite prior capacity check")
	}
	return nil
}

// Flush sends as many buffered outgoing bytes (and any queued fds) as the
// transport will currently accept. It reports a transport that cannot take
// more data right now as wlerr.ErrWouldBlock and returns other transport
// errors untouched, so callers can distinguish "try again later" from a
// fatal transport failure; on a partial send it leaves the unsent
// remainder buffered for the next call. Fds that were sent are closed.
func (s *BufferedSocket) Flush() error {
	for !s.outBytes.IsEmpty() {
		first, _ := s.outBytes.ReadSlices()
		fds := s.outFDs
		n, err := s.t.Send(first, fds)
		if err != nil {
			if err == transport.ErrWouldBlock {
				return wlerr.ErrWouldBlock
			}
			return err
		}
		s.outBytes.Consume(n)
		if len(fds) > 0 {
			// The fds now travel with the sent bytes; the local copies are
			// no longer needed.
			for _, fd := range fds {
				syscall.Close(fd)
			}
			s.outFDs = nil
		}
		if n < len(first) {
			// Transport accepted a partial write; wait for the next
			// writable notification before resuming.
			return nil
		}
	}
	return nil
}

// FillIncoming reads as many bytes (and fds) as are currently available
// from the transport into the incoming ring and fd queue. It returns
// wlerr.ErrWouldBlock when nothing is available right now, and
// wlerr.ErrPeerDisconnected when the peer has closed the connection.
func (s *BufferedSocket) FillIncoming() error {
	first, _ := s.inBytes.WriteSlices()
	if len(first) == 0 {
		return wlerr.ErrQueueFull
	}
	n, fds, err := s.t.Recv(first)
	if err != nil {
		if transport.ErrDisconnected(err) {
			return wlerr.ErrPeerDisconnected
		}
		if err == transport.ErrWouldBlock {
			return wlerr.ErrWouldBlock
		}
		return &wlerr.IOError{Op: "recv", Err: err}
	}
	s.inBytes.Produce(n)
	if len(s.inFDs)+len(fds) > s.maxFDsIn {
		// The compositor is not expected to ever exceed the queue's
		// capacity in practice; accept the fds anyway rather than leak
		// them, since the caller owns closing unconsumed descriptors.
	}
	s.inFDs = append(s.inFDs, fds...)
	return nil
}

// PeekMessageHeader decodes the header of the next buffered message
// without consuming it. ok is false if fewer than 8 bytes are currently
// buffered.
func (s *BufferedSocket) PeekMessageHeader() (hdr wire.MessageHeader, ok bool, err error) {
	if s.inBytes.Len() < wire.HeaderSize {
		return wire.MessageHeader{}, false, nil
	}
	var raw [wire.HeaderSize]byte
	s.inBytes.PeekAt(0, raw[:])
	objID := binary.NativeEndian.Uint32(raw[0:4])
	sizeOp := binary.NativeEndian.Uint32(raw[4:8])
	size := uint16(sizeOp >> 16)
	opcode := uint16(sizeOp & 0xFFFF)
	if objID == 0 {
		return wire.MessageHeader{}, false, wlerr.ErrNullObjectID
	}
	if int(size) < wire.HeaderSize {
		return wire.MessageHeader{}, false, &wlerr.DecodeError{Reason: fmt.Sprintf("message size %d smaller than header", size)}
	}
	if size%4 != 0 {
		return wire.MessageHeader{}, false, &wlerr.DecodeError{Reason: fmt.Sprintf("message size %d is not a multiple of 4", size)}
	}
	return wire.MessageHeader{ObjectID: wire.ObjectID(objID), Size: size, Opcode: opcode}, true, nil
}

// RecvMessage decodes the next buffered message using sig to interpret its
// argument bytes, consuming it (and any fds it carries) from the incoming
// buffers. It returns ErrIncomplete if the full message body has not yet
// arrived; the caller should FillIncoming and retry.
func (s *BufferedSocket) RecvMessage(sig []wire.ArgType) (wire.Message, error) {
	hdr, ok, err := s.PeekMessageHeader()
	if err != nil {
		return wire.Message{}, err
	}
	if !ok || s.inBytes.Len() < int(hdr.Size) {
		return wire.Message{}, ErrIncomplete
	}

	if cap(s.scratch) < int(hdr.Size) {
		s.scratch = make([]byte, hdr.Size)
	}
	body := s.scratch[:hdr.Size]
	s.inBytes.PeekAt(0, body)

	args, err := decodeArgs(body[wire.HeaderSize:], sig, &s.inFDs)
	if err != nil {
		return wire.Message{}, err
	}
	s.inBytes.Consume(int(hdr.Size))
	return wire.Message{Header: hdr, Args: args}, nil
}

// PendingOutBytes reports how many encoded bytes are waiting for Flush.
func (s *BufferedSocket) PendingOutBytes() int { return s.outBytes.Len() }

// Close closes the underlying transport.
func (s *BufferedSocket) Close() error { return s.t.Close() }
