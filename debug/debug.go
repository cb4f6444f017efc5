// Package debug formats wire messages for human-readable tracing, the Go
// equivalent of WAYLAND_DEBUG=1 output: one line per request/event naming
// the interface, object id, message name, and decoded arguments.
package debug

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/wlcore/wire"
)

// Direction distinguishes an outgoing request from an incoming event in
// formatted trace output.
type Direction int

const (
	Outgoing Direction = iota
	Incoming
)

func (d Direction) arrow() string {
	if d == Outgoing {
		return "->"
	}
	return "<-"
}

// FormatMessage renders msg as a single trace line, e.g.:
//
//	[3]wl_registry.bind(12, new id [7]wl_seat v5) ->
func FormatMessage(dir Direction, ifaceName string, obj wire.ObjectID, desc *wire.MessageDesc, msg wire.Message) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d]%s.%s(", obj, ifaceName, desc.Name)
	for i, a := range msg.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatArg(a))
	}
	b.WriteString(") ")
	b.WriteString(dir.arrow())
	return b.String()
}

func formatArg(a wire.ArgValue) string {
	switch a.Kind {
	case wire.KindInt:
		return strconv.FormatInt(int64(a.Int), 10)
	case wire.KindUint:
		return strconv.FormatUint(uint64(a.Uint), 10)
	case wire.KindFixed:
		return strconv.FormatFloat(a.Fixed.Float64(), 'f', -1, 64)
	case wire.KindObject:
		return fmt.Sprintf("[%d]", a.Object)
	case wire.KindNewID:
		return fmt.Sprintf("new id [%d]", a.Object)
	case wire.KindOptObject:
		if !a.HasOpt {
			return "nil"
		}
		return fmt.Sprintf("[%d]", a.OptObject)
	case wire.KindString:
		return strconv.Quote(a.String)
	case wire.KindOptString:
		if !a.HasOpt {
			return "nil"
		}
		return strconv.Quote(a.OptString)
	case wire.KindArray:
		return fmt.Sprintf("array[%d]", len(a.Array))
	case wire.KindFd:
		return fmt.Sprintf("fd %d", a.Fd)
	case wire.KindAnyNewID:
		return fmt.Sprintf("new id [%d]%s v%d", a.AnyID, a.AnyIfaceName, a.AnyVersion)
	default:
		return "?"
	}
}
