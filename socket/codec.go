package socket

import (
	"encoding/binary"
	"fmt"

	"github.com/bnema/wlcore/wire"
	"github.com/bnema/wlcore/wlerr"
)

// encodeArg writes a into buf (which must be at least a.Size() bytes long)
// and returns the number of bytes written.
func encodeArg(buf []byte, a wire.ArgValue) (int, error) {
	switch a.Kind {
	case wire.KindInt:
		binary.NativeEndian.PutUint32(buf, uint32(a.Int))
		return 4, nil
	case wire.KindUint, wire.KindObject, wire.KindNewID:
		v := a.Uint
		if a.Kind != wire.KindUint {
			v = uint32(a.Object)
		}
		binary.NativeEndian.PutUint32(buf, v)
		return 4, nil
	case wire.KindFixed:
		binary.NativeEndian.PutUint32(buf, uint32(a.Fixed))
		return 4, nil
	case wire.KindOptObject:
		binary.NativeEndian.PutUint32(buf, uint32(a.OptObject))
		return 4, nil
	case wire.KindString:
		return putString(buf, a.String), nil
	case wire.KindOptString:
		if !a.HasOpt {
			binary.NativeEndian.PutUint32(buf, 0)
			return 4, nil
		}
		return putString(buf, a.OptString), nil
	case wire.KindArray:
		return putArray(buf, a.Array), nil
	case wire.KindAnyNewID:
		n := putString(buf, a.AnyIfaceName)
		binary.NativeEndian.PutUint32(buf[n:], a.AnyVersion)
		binary.NativeEndian.PutUint32(buf[n+4:], uint32(a.AnyID))
		return n + 8, nil
	case wire.KindFd:
		// Fds travel out-of-band; they occupy no bytes in the body.
		return 0, nil
	default:
		return 0, &wlerr.DecodeError{Reason: fmt.Sprintf("encode: unknown arg kind %d", a.Kind)}
	}
}

func putString(buf []byte, s string) int {
	l := uint32(len(s) + 1)
	binary.NativeEndian.PutUint32(buf[0:4], l)
	copy(buf[4:], s)
	buf[4+len(s)] = 0
	pad := (4 - int(l)%4) % 4
	for i := 0; i < pad; i++ {
		buf[4+int(l)+i] = 0
	}
	return 4 + int(l) + pad
}

func putArray(buf []byte, data []byte) int {
	l := uint32(len(data))
	binary.NativeEndian.PutUint32(buf[0:4], l)
	copy(buf[4:], data)
	pad := (4 - int(l)%4) % 4
	for i := 0; i < pad; i++ {
		buf[4+int(l)+i] = 0
	}
	return 4 + int(l) + pad
}

// decodeArgs parses body according to sig, pulling fds off the front of
// *fds for each ArgFd entry encountered.
func decodeArgs(body []byte, sig []wire.ArgType, fds *[]int) ([]wire.ArgValue, error) {
	args := make([]wire.ArgValue, 0, len(sig))
	off := 0
	for _, t := range sig {
		v, n, err := decodeArg(body[off:], t, fds)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		off += n
	}
	return args, nil
}

func decodeArg(buf []byte, t wire.ArgType, fds *[]int) (wire.ArgValue, int, error) {
	need4 := func() error {
		if len(buf) < 4 {
			return &wlerr.DecodeError{Reason: "truncated fixed-width argument"}
		}
		return nil
	}
	switch t {
	case wire.ArgInt:
		if err := need4(); err != nil {
			return wire.ArgValue{}, 0, err
		}
		return wire.ArgInt(int32(binary.NativeEndian.Uint32(buf))), 4, nil
	case wire.ArgUint:
		if err := need4(); err != nil {
			return wire.ArgValue{}, 0, err
		}
		return wire.ArgUint(binary.NativeEndian.Uint32(buf)), 4, nil
	case wire.ArgFixed:
		if err := need4(); err != nil {
			return wire.ArgValue{}, 0, err
		}
		return wire.ArgFixedVal(wire.Fixed(binary.NativeEndian.Uint32(buf))), 4, nil
	case wire.ArgObject, wire.ArgNewID:
		if err := need4(); err != nil {
			return wire.ArgValue{}, 0, err
		}
		id := wire.ObjectID(binary.NativeEndian.Uint32(buf))
		if id == 0 {
			return wire.ArgValue{}, 0, wlerr.ErrUnexpectedNull
		}
		if t == wire.ArgNewID {
			return wire.ArgNewIDVal(id), 4, nil
		}
		return wire.ArgObjectVal(id), 4, nil
	case wire.ArgOptObject:
		if err := need4(); err != nil {
			return wire.ArgValue{}, 0, err
		}
		id := wire.ObjectID(binary.NativeEndian.Uint32(buf))
		return wire.ArgOptObjectVal(id, id != 0), 4, nil
	case wire.ArgString, wire.ArgOptString:
		s, n, err := getString(buf)
		if err != nil {
			return wire.ArgValue{}, 0, err
		}
		if t == wire.ArgString {
			return wire.ArgStringVal(s), n, nil
		}
		return wire.ArgOptStringVal(s, len(buf) >= 4 && binary.NativeEndian.Uint32(buf) != 0), n, nil
	case wire.ArgArray:
		b, n, err := getArray(buf)
		if err != nil {
			return wire.ArgValue{}, 0, err
		}
		return wire.ArgArrayVal(b), n, nil
	case wire.ArgAnyNewID:
		iface, n, err := getString(buf)
		if err != nil {
			return wire.ArgValue{}, 0, err
		}
		rest := buf[n:]
		if len(rest) < 8 {
			return wire.ArgValue{}, 0, &wlerr.DecodeError{Reason: "truncated any_new_id argument"}
		}
		version := binary.NativeEndian.Uint32(rest[0:4])
		id := wire.ObjectID(binary.NativeEndian.Uint32(rest[4:8]))
		return wire.ArgAnyNewIDVal(iface, version, id), n + 8, nil
	case wire.ArgFd:
		if fds == nil || len(*fds) == 0 {
			return wire.ArgValue{}, 0, &wlerr.DecodeError{Reason: "fd argument with no ancillary fd available"}
		}
		fd := (*fds)[0]
		*fds = (*fds)[1:]
		return wire.ArgFdVal(fd), 0, nil
	default:
		return wire.ArgValue{}, 0, &wlerr.DecodeError{Reason: fmt.Sprintf("decode: unknown arg type %d", t)}
	}
}

func getString(buf []byte) (string, int, error) {
	if len(buf) < 4 {
		return "", 0, &wlerr.DecodeError{Reason: "truncated string length"}
	}
	l := binary.NativeEndian.Uint32(buf)
	pad := (4 - int(l)%4) % 4
	total := 4 + int(l) + pad
	if len(buf) < total {
		return "", 0, &wlerr.DecodeError{Reason: "string overruns message body"}
	}
	if l == 0 {
		return "", total, nil
	}
	content := buf[4 : 4+l-1]
	for _, b := range content {
		if b == 0 {
			return "", 0, wlerr.ErrNullInString
		}
	}
	return string(content), total, nil
}

func getArray(buf []byte) ([]byte, int, error) {
	if len(buf) < 4 {
		return nil, 0, &wlerr.DecodeError{Reason: "truncated array length"}
	}
	l := binary.NativeEndian.Uint32(buf)
	pad := (4 - int(l)%4) % 4
	total := 4 + int(l) + pad
	if len(buf) < total {
		return nil, 0, &wlerr.DecodeError{Reason: "array overruns message body"}
	}
	out := make([]byte, l)
	copy(out, buf[4:4+l])
	return out, total, nil
}
