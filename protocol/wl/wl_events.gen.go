// Hand-written event helpers for wayland.xml, in the style of wlscanner output.

package wl

import (
	"github.com/bnema/wlcore/connection"
	"github.com/bnema/wlcore/wire"
)

// SeatEvent is the decoded event enum for wl_seat.
type SeatEvent struct {
	Capabilities *uint32
	Name         *string
}

func decodeSeatEvent(opcode uint16, msg wire.Message) (any, error) {
	switch opcode {
	case 0:
		v := msg.Args[0].Uint
		return SeatEvent{Capabilities: &v}, nil
	case 1:
		v := msg.Args[0].String
		return SeatEvent{Name: &v}, nil
	default:
		return nil, &unknownOpcodeError{iface: "wl_seat", opcode: opcode}
	}
}

// OnEvent registers handle to receive every wl_seat event delivered to p.
func (p Seat) OnEvent(state any, handle func(connection.EventCtx[any, Seat], SeatEvent)) {
	connection.SetEventHandler(p.Conn, state, p, decodeSeatEvent, func(ctx connection.EventCtx[any, Seat], ev any) {
		handle(ctx, ev.(SeatEvent))
	})
}

// SurfaceEvent is the decoded event enum for wl_surface.
type SurfaceEvent struct {
	EnterOutput *wire.ObjectID
	LeaveOutput *wire.ObjectID
}

func decodeSurfaceEvent(opcode uint16, msg wire.Message) (any, error) {
	switch opcode {
	case 0:
		v := msg.Args[0].Object
		return SurfaceEvent{EnterOutput: &v}, nil
	case 1:
		v := msg.Args[0].Object
		return SurfaceEvent{LeaveOutput: &v}, nil
	default:
		return nil, &unknownOpcodeError{iface: "wl_surface", opcode: opcode}
	}
}

// OnEvent registers handle to receive every wl_surface event delivered to p.
func (p Surface) OnEvent(state any, handle func(connection.EventCtx[any, Surface], SurfaceEvent)) {
	connection.SetEventHandler(p.Conn, state, p, decodeSurfaceEvent, func(ctx connection.EventCtx[any, Surface], ev any) {
		handle(ctx, ev.(SurfaceEvent))
	})
}

type unknownOpcodeError struct {
	iface  string
	opcode uint16
}

func (e *unknownOpcodeError) Error() string {
	return "wl: unknown event opcode " + itoa(uint32(e.opcode)) + " for " + e.iface
}

func itoa(v uint32) string {
	if v == 0 {
		return "0"
	}
	var buf [10]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}
