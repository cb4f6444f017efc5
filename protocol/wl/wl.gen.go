// Hand-written bindings for wayland.xml, in the style of wlscanner output.

package wl

import (
	"github.com/bnema/wlcore/connection"
	"github.com/bnema/wlcore/wire"
)

// DisplayInterface is the static descriptor for wl_display.
var DisplayInterface = &wire.Interface{
	Name:    "wl_display",
	Version: 1,
	Requests: []wire.MessageDesc{
		{Name: "sync", Signature: []wire.ArgType{wire.ArgNewID}},
		{Name: "get_registry", Signature: []wire.ArgType{wire.ArgNewID}},
	},
	Events: []wire.MessageDesc{
		{Name: "error", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgString}},
		{Name: "delete_id", Signature: []wire.ArgType{wire.ArgUint}},
	},
}

// Display is a typed proxy for the implicit wl_display object (id 1).
type Display struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Display) WlID() wire.ObjectID          { return p.ID }
func (p Display) WlInterface() *wire.Interface { return DisplayInterface }

// RegistryInterface is the static descriptor for wl_registry.
var RegistryInterface = &wire.Interface{
	Name:    "wl_registry",
	Version: 1,
	Requests: []wire.MessageDesc{
		{Name: "bind", Signature: []wire.ArgType{wire.ArgUint, wire.ArgAnyNewID}},
	},
	Events: []wire.MessageDesc{
		{Name: "global", Signature: []wire.ArgType{wire.ArgUint, wire.ArgString, wire.ArgUint}},
		{Name: "global_remove", Signature: []wire.ArgType{wire.ArgUint}},
	},
}

// Registry is a typed proxy for a bound wl_registry object.
type Registry struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Registry) WlID() wire.ObjectID          { return p.ID }
func (p Registry) WlInterface() *wire.Interface { return RegistryInterface }

// CallbackInterface is the static descriptor for wl_callback.
var CallbackInterface = &wire.Interface{
	Name:    "wl_callback",
	Version: 1,
	Events: []wire.MessageDesc{
		{Name: "done", Signature: []wire.ArgType{wire.ArgUint}},
	},
}

// Callback is a typed proxy for a bound wl_callback object.
type Callback struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Callback) WlID() wire.ObjectID          { return p.ID }
func (p Callback) WlInterface() *wire.Interface { return CallbackInterface }

// CompositorInterface is the static descriptor for wl_compositor.
var CompositorInterface = &wire.Interface{
	Name:    "wl_compositor",
	Version: 5,
	Requests: []wire.MessageDesc{
		{Name: "create_surface", Signature: []wire.ArgType{wire.ArgNewID}},
	},
}

// Compositor is a typed proxy for a bound wl_compositor object.
type Compositor struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Compositor) WlID() wire.ObjectID          { return p.ID }
func (p Compositor) WlInterface() *wire.Interface { return CompositorInterface }

// CreateSurface sends the create_surface request. It allocates and
// registers a fresh wl_surface object, returning the bound proxy.
func (p Compositor) CreateSurface() (Surface, error) {
	desc := &CompositorInterface.Requests[0]
	args := []wire.ArgValue{wire.ArgNewIDRequest(SurfaceInterface)}
	id, err := p.Conn.SendRequest(p.ID, 0, desc, args)
	if err != nil {
		return Surface{}, err
	}
	return Surface{Conn: p.Conn, ID: id}, nil
}

// SurfaceInterface is the static descriptor for wl_surface.
var SurfaceInterface = &wire.Interface{
	Name:    "wl_surface",
	Version: 5,
	Requests: []wire.MessageDesc{
		{Name: "destroy", IsDestructor: true},
		{Name: "attach", Signature: []wire.ArgType{wire.ArgOptObject, wire.ArgInt, wire.ArgInt}},
		{Name: "damage", Signature: []wire.ArgType{wire.ArgInt, wire.ArgInt, wire.ArgInt, wire.ArgInt}},
		{Name: "commit"},
	},
	Events: []wire.MessageDesc{
		{Name: "enter", Signature: []wire.ArgType{wire.ArgObject}},
		{Name: "leave", Signature: []wire.ArgType{wire.ArgObject}},
	},
}

// Surface is a typed proxy for a bound wl_surface object.
type Surface struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Surface) WlID() wire.ObjectID          { return p.ID }
func (p Surface) WlInterface() *wire.Interface { return SurfaceInterface }

// Destroy sends the destroy request.
func (p Surface) Destroy() error {
	desc := &SurfaceInterface.Requests[0]
	_, err := p.Conn.SendRequest(p.ID, 0, desc, nil)
	return err
}

// Attach sends the attach request. buffer may be 0 to attach null.
func (p Surface) Attach(buffer wire.ObjectID, x, y int32) error {
	desc := &SurfaceInterface.Requests[1]
	args := []wire.ArgValue{
		wire.ArgOptObjectVal(buffer, buffer != 0),
		wire.ArgInt(x),
		wire.ArgInt(y),
	}
	_, err := p.Conn.SendRequest(p.ID, 1, desc, args)
	return err
}

// Damage sends the damage request.
func (p Surface) Damage(x, y, width, height int32) error {
	desc := &SurfaceInterface.Requests[2]
	args := []wire.ArgValue{wire.ArgInt(x), wire.ArgInt(y), wire.ArgInt(width), wire.ArgInt(height)}
	_, err := p.Conn.SendRequest(p.ID, 2, desc, args)
	return err
}

// Commit sends the commit request.
func (p Surface) Commit() error {
	desc := &SurfaceInterface.Requests[3]
	_, err := p.Conn.SendRequest(p.ID, 3, desc, nil)
	return err
}

// SeatInterface is the static descriptor for wl_seat.
var SeatInterface = &wire.Interface{
	Name:    "wl_seat",
	Version: 8,
	Requests: []wire.MessageDesc{
		{Name: "get_pointer", Signature: []wire.ArgType{wire.ArgNewID}},
		{Name: "get_keyboard", Signature: []wire.ArgType{wire.ArgNewID}},
	},
	Events: []wire.MessageDesc{
		{Name: "capabilities", Signature: []wire.ArgType{wire.ArgUint}},
		{Name: "name", Signature: []wire.ArgType{wire.ArgString}},
	},
}

// Seat is a typed proxy for a bound wl_seat object.
type Seat struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Seat) WlID() wire.ObjectID          { return p.ID }
func (p Seat) WlInterface() *wire.Interface { return SeatInterface }

// GetPointer sends the get_pointer request. It allocates and registers a
// fresh wl_pointer object, returning the bound proxy.
func (p Seat) GetPointer() (Pointer, error) {
	desc := &SeatInterface.Requests[0]
	id, err := p.Conn.SendRequest(p.ID, 0, desc, []wire.ArgValue{wire.ArgNewIDRequest(PointerInterface)})
	if err != nil {
		return Pointer{}, err
	}
	return Pointer{Conn: p.Conn, ID: id}, nil
}

// GetKeyboard sends the get_keyboard request. It allocates and registers
// a fresh wl_keyboard object, returning the bound proxy.
func (p Seat) GetKeyboard() (Keyboard, error) {
	desc := &SeatInterface.Requests[1]
	id, err := p.Conn.SendRequest(p.ID, 1, desc, []wire.ArgValue{wire.ArgNewIDRequest(KeyboardInterface)})
	if err != nil {
		return Keyboard{}, err
	}
	return Keyboard{Conn: p.Conn, ID: id}, nil
}

// PointerInterface is the static descriptor for wl_pointer.
var PointerInterface = &wire.Interface{
	Name:    "wl_pointer",
	Version: 8,
	Requests: []wire.MessageDesc{
		{Name: "release", IsDestructor: true},
	},
	Events: []wire.MessageDesc{
		{Name: "enter", Signature: []wire.ArgType{wire.ArgUint, wire.ArgObject, wire.ArgFixed, wire.ArgFixed}},
		{Name: "leave", Signature: []wire.ArgType{wire.ArgUint, wire.ArgObject}},
		{Name: "motion", Signature: []wire.ArgType{wire.ArgUint, wire.ArgFixed, wire.ArgFixed}},
		{Name: "button", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgUint, wire.ArgUint}},
		{Name: "axis", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgFixed}},
	},
}

// Pointer is a typed proxy for a bound wl_pointer object.
type Pointer struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Pointer) WlID() wire.ObjectID          { return p.ID }
func (p Pointer) WlInterface() *wire.Interface { return PointerInterface }

// Release sends the release request.
func (p Pointer) Release() error {
	desc := &PointerInterface.Requests[0]
	_, err := p.Conn.SendRequest(p.ID, 0, desc, nil)
	return err
}

// KeyboardInterface is the static descriptor for wl_keyboard.
var KeyboardInterface = &wire.Interface{
	Name:    "wl_keyboard",
	Version: 8,
	Requests: []wire.MessageDesc{
		{Name: "release", IsDestructor: true},
	},
	Events: []wire.MessageDesc{
		{Name: "keymap", Signature: []wire.ArgType{wire.ArgUint, wire.ArgFd, wire.ArgUint}},
		{Name: "enter", Signature: []wire.ArgType{wire.ArgUint, wire.ArgObject, wire.ArgArray}},
		{Name: "leave", Signature: []wire.ArgType{wire.ArgUint, wire.ArgObject}},
		{Name: "key", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgUint, wire.ArgUint}},
		{Name: "modifiers", Signature: []wire.ArgType{wire.ArgUint, wire.ArgUint, wire.ArgUint, wire.ArgUint, wire.ArgUint}},
	},
}

// Keyboard is a typed proxy for a bound wl_keyboard object.
type Keyboard struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Keyboard) WlID() wire.ObjectID          { return p.ID }
func (p Keyboard) WlInterface() *wire.Interface { return KeyboardInterface }

// Release sends the release request.
func (p Keyboard) Release() error {
	desc := &KeyboardInterface.Requests[0]
	_, err := p.Conn.SendRequest(p.ID, 0, desc, nil)
	return err
}
