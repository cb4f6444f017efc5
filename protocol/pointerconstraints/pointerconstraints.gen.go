// Hand-written bindings for pointer-constraints-unstable-v1.xml, in the style of wlscanner output.

package pointerconstraints

import (
	"github.com/bnema/wlcore/connection"
	"github.com/bnema/wlcore/wire"
)

// Lifetime values for lock_pointer/confine_pointer requests.
const (
	LifetimeOneshot    uint32 = 1
	LifetimePersistent uint32 = 2
)

// ConstraintsInterface is the static descriptor for
// zwp_pointer_constraints_v1.
var ConstraintsInterface = &wire.Interface{
	Name:    "zwp_pointer_constraints_v1",
	Version: 1,
	Requests: []wire.MessageDesc{
		{Name: "lock_pointer", Signature: []wire.ArgType{wire.ArgNewID, wire.ArgObject, wire.ArgObject, wire.ArgOptObject, wire.ArgUint}},
		{Name: "confine_pointer", Signature: []wire.ArgType{wire.ArgNewID, wire.ArgObject, wire.ArgObject, wire.ArgOptObject, wire.ArgUint}},
	},
}

// Constraints is a typed proxy for a bound zwp_pointer_constraints_v1
// object.
type Constraints struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p Constraints) WlID() wire.ObjectID          { return p.ID }
func (p Constraints) WlInterface() *wire.Interface { return ConstraintsInterface }

// LockPointer allocates and registers a fresh LockedPointer, locking the
// pointer in place on surface (optionally restricted to region) for
// lifetime.
func (p Constraints) LockPointer(surface, pointer, region wire.ObjectID, lifetime uint32) (LockedPointer, error) {
	desc := &ConstraintsInterface.Requests[0]
	args := []wire.ArgValue{
		wire.ArgNewIDRequest(LockedPointerInterface),
		wire.ArgObjectVal(surface),
		wire.ArgObjectVal(pointer),
		wire.ArgOptObjectVal(region, region != 0),
		wire.ArgUint(lifetime),
	}
	id, err := p.Conn.SendRequest(p.ID, 0, desc, args)
	if err != nil {
		return LockedPointer{}, err
	}
	return LockedPointer{Conn: p.Conn, ID: id}, nil
}

// ConfinePointer allocates and registers a fresh ConfinedPointer, confining
// pointer motion to surface (optionally clipped to region) for lifetime.
func (p Constraints) ConfinePointer(surface, pointer, region wire.ObjectID, lifetime uint32) (ConfinedPointer, error) {
	desc := &ConstraintsInterface.Requests[1]
	args := []wire.ArgValue{
		wire.ArgNewIDRequest(ConfinedPointerInterface),
		wire.ArgObjectVal(surface),
		wire.ArgObjectVal(pointer),
		wire.ArgOptObjectVal(region, region != 0),
		wire.ArgUint(lifetime),
	}
	id, err := p.Conn.SendRequest(p.ID, 1, desc, args)
	if err != nil {
		return ConfinedPointer{}, err
	}
	return ConfinedPointer{Conn: p.Conn, ID: id}, nil
}

// LockedPointerInterface is the static descriptor for
// zwp_locked_pointer_v1.
var LockedPointerInterface = &wire.Interface{
	Name:    "zwp_locked_pointer_v1",
	Version: 1,
	Requests: []wire.MessageDesc{
		{Name: "destroy", IsDestructor: true},
		{Name: "set_cursor_position_hint", Signature: []wire.ArgType{wire.ArgFixed, wire.ArgFixed}},
	},
	Events: []wire.MessageDesc{
		{Name: "locked"},
		{Name: "unlocked"},
	},
}

// LockedPointer is a typed proxy for a bound zwp_locked_pointer_v1 object.
type LockedPointer struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p LockedPointer) WlID() wire.ObjectID          { return p.ID }
func (p LockedPointer) WlInterface() *wire.Interface { return LockedPointerInterface }

// Destroy sends the destroy request.
func (p LockedPointer) Destroy() error {
	desc := &LockedPointerInterface.Requests[0]
	_, err := p.Conn.SendRequest(p.ID, 0, desc, nil)
	return err
}

// SetCursorPositionHint sends the set_cursor_position_hint request.
func (p LockedPointer) SetCursorPositionHint(x, y wire.Fixed) error {
	desc := &LockedPointerInterface.Requests[1]
	args := []wire.ArgValue{wire.ArgFixedVal(x), wire.ArgFixedVal(y)}
	_, err := p.Conn.SendRequest(p.ID, 1, desc, args)
	return err
}

// LockedEvent is the decoded event enum for zwp_locked_pointer_v1.
type LockedEvent struct {
	Locked   bool
	Unlocked bool
}

func decodeLockedEvent(opcode uint16, _ wire.Message) (any, error) {
	switch opcode {
	case 0:
		return LockedEvent{Locked: true}, nil
	case 1:
		return LockedEvent{Unlocked: true}, nil
	default:
		return nil, nil
	}
}

// OnEvent registers handle to receive locked/unlocked events for p.
func (p LockedPointer) OnEvent(state any, handle func(connection.EventCtx[any, LockedPointer], LockedEvent)) {
	connection.SetEventHandler(p.Conn, state, p, decodeLockedEvent, func(ctx connection.EventCtx[any, LockedPointer], ev any) {
		handle(ctx, ev.(LockedEvent))
	})
}

// ConfinedPointerInterface is the static descriptor for
// zwp_confined_pointer_v1.
var ConfinedPointerInterface = &wire.Interface{
	Name:    "zwp_confined_pointer_v1",
	Version: 1,
	Requests: []wire.MessageDesc{
		{Name: "destroy", IsDestructor: true},
	},
	Events: []wire.MessageDesc{
		{Name: "confined"},
		{Name: "unconfined"},
	},
}

// ConfinedPointer is a typed proxy for a bound zwp_confined_pointer_v1
// object.
type ConfinedPointer struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p ConfinedPointer) WlID() wire.ObjectID          { return p.ID }
func (p ConfinedPointer) WlInterface() *wire.Interface { return ConfinedPointerInterface }

// Destroy sends the destroy request.
func (p ConfinedPointer) Destroy() error {
	desc := &ConfinedPointerInterface.Requests[0]
	_, err := p.Conn.SendRequest(p.ID, 0, desc, nil)
	return err
}
