// Hand-written bindings for virtual-pointer-unstable-v1.xml, in the style of wlscanner output.

package virtualpointer

import (
	"github.com/bnema/wlcore/connection"
	"github.com/bnema/wlcore/wire"
)

// PointerInterface is the static descriptor for zwlr_virtual_pointer_v1.
var PointerInterface = &wire.Interface{
	Name:    "zwlr_virtual_pointer_v1",
	Version: 2,
	Requests: []wire.MessageDesc{
		{Name: "motion", Signature: []wire.ArgType{wire.ArgUint, wire.ArgFixed, wire.ArgFixed}},
		{Name: "motion_absolute", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgUint, wire.ArgUint, wire.ArgUint}},
		{Name: "button", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgUint}},
		{Name: "axis", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgFixed}},
		{Name: "frame"},
		{Name: "destroy", IsDestructor: true},
	},
}

// Pointer is a typed proxy for a bound zwlr_virtual_pointer_v1 object.
type Pointer struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Pointer) WlID() wire.ObjectID          { return p.ID }
func (p Pointer) WlInterface() *wire.Interface { return PointerInterface }

// Motion sends a relative motion event.
func (p Pointer) Motion(time uint32, dx, dy wire.Fixed) error {
	desc := &PointerInterface.Requests[0]
	args := []wire.ArgValue{wire.ArgUint(time), wire.ArgFixedVal(dx), wire.ArgFixedVal(dy)}
	_, err := p.Conn.SendRequest(p.ID, 0, desc, args)
	return err
}

// MotionAbsolute sends an absolute motion event within a virtual
// xExtent x yExtent coordinate space.
func (p Pointer) MotionAbsolute(time, x, y, xExtent, yExtent uint32) error {
	desc := &PointerInterface.Requests[1]
	args := []wire.ArgValue{wire.ArgUint(time), wire.ArgUint(x), wire.ArgUint(y), wire.ArgUint(xExtent), wire.ArgUint(yExtent)}
	_, err := p.Conn.SendRequest(p.ID, 1, desc, args)
	return err
}

// Button sends a button press or release event using evdev button codes.
func (p Pointer) Button(time, button, state uint32) error {
	desc := &PointerInterface.Requests[2]
	args := []wire.ArgValue{wire.ArgUint(time), wire.ArgUint(button), wire.ArgUint(state)}
	_, err := p.Conn.SendRequest(p.ID, 2, desc, args)
	return err
}

// Axis sends a scroll axis event.
func (p Pointer) Axis(time, axis uint32, value wire.Fixed) error {
	desc := &PointerInterface.Requests[3]
	args := []wire.ArgValue{wire.ArgUint(time), wire.ArgUint(axis), wire.ArgFixedVal(value)}
	_, err := p.Conn.SendRequest(p.ID, 3, desc, args)
	return err
}

// Frame terminates a group of motion/button/axis requests describing a
// single pointer event, mirroring wl_pointer.frame.
func (p Pointer) Frame() error {
	desc := &PointerInterface.Requests[4]
	_, err := p.Conn.SendRequest(p.ID, 4, desc, nil)
	return err
}

// Destroy sends the destroy request.
func (p Pointer) Destroy() error {
	desc := &PointerInterface.Requests[5]
	_, err := p.Conn.SendRequest(p.ID, 5, desc, nil)
	return err
}

// ManagerInterface is the static descriptor for
// zwlr_virtual_pointer_manager_v1.
var ManagerInterface = &wire.Interface{
	Name:    "zwlr_virtual_pointer_manager_v1",
	Version: 2,
	Requests: []wire.MessageDesc{
		{Name: "create_virtual_pointer", Signature: []wire.ArgType{wire.ArgOptObject, wire.ArgNewID}},
	},
}

// Manager is a typed proxy for a bound zwlr_virtual_pointer_manager_v1
// object.
type Manager struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Manager) WlID() wire.ObjectID          { return p.ID }
func (p Manager) WlInterface() *wire.Interface { return ManagerInterface }

// CreateVirtualPointer allocates and registers a fresh Pointer, optionally
// tied to a specific seat (pass 0 for the compositor's default seat).
func (p Manager) CreateVirtualPointer(seat wire.ObjectID) (Pointer, error) {
	desc := &ManagerInterface.Requests[0]
	args := []wire.ArgValue{wire.ArgOptObjectVal(seat, seat != 0), wire.ArgNewIDRequest(PointerInterface)}
	id, err := p.Conn.SendRequest(p.ID, 0, desc, args)
	if err != nil {
		return Pointer{}, err
	}
	return Pointer{Conn: p.Conn, ID: id}, nil
}
