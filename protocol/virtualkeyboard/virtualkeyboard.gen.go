// Hand-written bindings for virtual-keyboard-unstable-v1.xml, in the style of wlscanner output.

package virtualkeyboard

import (
	"github.com/bnema/wlcore/connection"
	"github.com/bnema/wlcore/wire"
)

// KeyboardInterface is the static descriptor for zwp_virtual_keyboard_v1.
var KeyboardInterface = &wire.Interface{
	Name:    "zwp_virtual_keyboard_v1",
	Version: 1,
	Requests: []wire.MessageDesc{
		{Name: "keymap", Signature: []wire.ArgType{wire.ArgUint, wire.ArgFd, wire.ArgUint}},
		{Name: "key", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgUint}},
		{Name: "modifiers", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgUint, wire.ArgUint}},
		{Name: "destroy", IsDestructor: true},
	},
}

// Keyboard is a typed proxy for a bound zwp_virtual_keyboard_v1 object.
type Keyboard struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Keyboard) WlID() wire.ObjectID          { return p.ID }
func (p Keyboard) WlInterface() *wire.Interface { return KeyboardInterface }

// Keymap uploads a compiled XKB keymap of the given format and size,
// passed as an open, read-only memory-mapped file descriptor. Ownership
// of fd passes to the compositor once Keymap returns without error; the
// caller must not close it itself in that case.
func (p Keyboard) Keymap(format uint32, fd int, size uint32) error {
	desc := &KeyboardInterface.Requests[0]
	args := []wire.ArgValue{wire.ArgUint(format), wire.ArgFdVal(fd), wire.ArgUint(size)}
	_, err := p.Conn.SendRequest(p.ID, 0, desc, args)
	return err
}

// Key sends a key press or release event for the given keycode.
func (p Keyboard) Key(time, key, state uint32) error {
	desc := &KeyboardInterface.Requests[1]
	args := []wire.ArgValue{wire.ArgUint(time), wire.ArgUint(key), wire.ArgUint(state)}
	_, err := p.Conn.SendRequest(p.ID, 1, desc, args)
	return err
}

// Modifiers updates the depressed, latched, locked modifier masks and the
// active layout group.
func (p Keyboard) Modifiers(depressed, latched, locked, group uint32) error {
	desc := &KeyboardInterface.Requests[2]
	args := []wire.ArgValue{wire.ArgUint(depressed), wire.ArgUint(latched), wire.ArgUint(locked), wire.ArgUint(group)}
	_, err := p.Conn.SendRequest(p.ID, 2, desc, args)
	return err
}

// Destroy sends the destroy request.
func (p Keyboard) Destroy() error {
	desc := &KeyboardInterface.Requests[3]
	_, err := p.Conn.SendRequest(p.ID, 3, desc, nil)
	return err
}

// ManagerInterface is the static descriptor for
// zwp_virtual_keyboard_manager_v1.
var ManagerInterface = &wire.Interface{
	Name:    "zwp_virtual_keyboard_manager_v1",
	Version: 1,
	Requests: []wire.MessageDesc{
		{Name: "create_virtual_keyboard", Signature: []wire.ArgType{wire.ArgObject, wire.ArgNewID}},
	},
}

// Manager is a typed proxy for a bound zwp_virtual_keyboard_manager_v1
// object.
type Manager struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Manager) WlID() wire.ObjectID          { return p.ID }
func (p Manager) WlInterface() *wire.Interface { return ManagerInterface }

// CreateVirtualKeyboard allocates and registers a fresh Keyboard against
// the given seat, returning the bound proxy.
func (p Manager) CreateVirtualKeyboard(seat wire.ObjectID) (Keyboard, error) {
	desc := &ManagerInterface.Requests[0]
	args := []wire.ArgValue{wire.ArgObjectVal(seat), wire.ArgNewIDRequest(KeyboardInterface)}
	id, err := p.Conn.SendRequest(p.ID, 0, desc, args)
	if err != nil {
		return Keyboard{}, err
	}
	return Keyboard{Conn: p.Conn, ID: id}, nil
}
