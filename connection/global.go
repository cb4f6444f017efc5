package connection

import (
	"github.com/bnema/wlcore/wire"
)

// Global describes one entry advertised by wl_registry.global: a stable
// numeric name the compositor assigned, the interface it implements, and
// the highest version the compositor supports for it.
type Global struct {
	Name      uint32
	Interface string
	Version   uint32
}

// registryInterface is the built-in wl_registry descriptor, sufficient to
// receive global/global_remove events and send bind requests without a
// generated protocol package.
var registryInterface = &wire.Interface{
	Name:    "wl_registry",
	Version: 1,
	Events: []wire.MessageDesc{
		{Name: "global", Signature: []wire.ArgType{wire.ArgUint, wire.ArgString, wire.ArgUint}},
		{Name: "global_remove", Signature: []wire.ArgType{wire.ArgUint}},
	},
	Requests: []wire.MessageDesc{
		{Name: "bind", Signature: []wire.ArgType{wire.ArgUint, wire.ArgAnyNewID}},
	},
}

// Registry tracks the set of globals a compositor has advertised and lets
// a caller bind any of them to a freshly allocated object id.
type Registry struct {
	conn    *Connection
	id      wire.ObjectID
	globals []Global
}

type registryProxy struct{ id wire.ObjectID }

func (p registryProxy) WlID() wire.ObjectID          { return p.id }
func (p registryProxy) WlInterface() *wire.Interface { return registryInterface }

// GetRegistry sends wl_display.get_registry and returns a Registry that
// accumulates global/global_remove events as they are dispatched. Call
// conn.Roundtrip afterward (see BlockingCollectInitialGlobals) to ensure
// the compositor's initial burst of globals has actually arrived before
// inspecting Registry.Globals.
func GetRegistry(conn *Connection) (*Registry, error) {
	getRegistryDesc := &displayInterface.Requests[1]
	id, err := conn.SendRequest(wire.DISPLAY, 1, getRegistryDesc, []wire.ArgValue{wire.ArgNewIDRequest(registryInterface)})
	if err != nil {
		return nil, err
	}

	r := &Registry{conn: conn, id: id}
	SetEventHandler(conn, r, registryProxy{id: id}, decodeRegistryEvent, handleRegistryEvent)
	return r, nil
}

// BlockingCollectInitialGlobals calls GetRegistry, flushes the request,
// and performs a roundtrip so the returned Registry's Globals reflects
// the compositor's full initial advertisement.
func BlockingCollectInitialGlobals(conn *Connection) (*Registry, error) {
	r, err := GetRegistry(conn)
	if err != nil {
		return nil, err
	}
	if err := conn.Flush(); err != nil {
		return nil, err
	}
	if err := conn.Roundtrip(); err != nil {
		return nil, err
	}
	return r, nil
}

// Globals returns a snapshot of the currently known globals.
func (r *Registry) Globals() []Global {
	out := make([]Global, len(r.globals))
	copy(out, r.globals)
	return out
}

// Find returns the first global implementing the given interface name, if
// any.
func (r *Registry) Find(interfaceName string) (Global, bool) {
	for _, g := range r.globals {
		if g.Interface == interfaceName {
			return g, true
		}
	}
	return Global{}, false
}

// Bind allocates a new object id for iface and sends wl_registry.bind for
// global name g, registering the new object on the connection so its
// events can be dispatched once a handler is attached via
// SetEventHandler. It returns the freshly bound id.
func (r *Registry) Bind(g Global, iface *wire.Interface, version uint32) (wire.ObjectID, error) {
	id, err := r.conn.objs.AllocateID()
	if err != nil {
		return 0, err
	}
	r.conn.objs.Register(&wire.Object{ID: id, Interface: iface, Version: version})

	bindDesc := &registryInterface.Requests[0]
	args := []wire.ArgValue{
		wire.ArgUint(g.Name),
		wire.ArgAnyNewIDVal(iface.Name, version, id),
	}
	if _, err := r.conn.SendRequest(r.id, 0, bindDesc, args); err != nil {
		return 0, err
	}
	return id, nil
}

type registryEvent struct {
	opcode uint16
	msg    wire.Message
}

func decodeRegistryEvent(opcode uint16, msg wire.Message) (any, error) {
	return registryEvent{opcode: opcode, msg: msg}, nil
}

func handleRegistryEvent(ctx EventCtx[*Registry, registryProxy], ev any) {
	re := ev.(registryEvent)
	r := ctx.State
	switch re.opcode {
	case 0: // global
		r.globals = append(r.globals, Global{
			Name:      re.msg.Args[0].Uint,
			Interface: re.msg.Args[1].String,
			Version:   re.msg.Args[2].Uint,
		})
	case 1: // global_remove
		name := re.msg.Args[0].Uint
		for i, g := range r.globals {
			if g.Name == name {
				r.globals = append(r.globals[:i], r.globals[i+1:]...)
				break
			}
		}
	}
}
