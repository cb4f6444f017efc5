// Package objects implements the client-side object id lifecycle: a
// three-structure live/dead/reusable manager mirroring how the protocol
// recycles ids only after the compositor acknowledges their destruction
// with a wl_display.delete_id event, never before.
package objects

import (
	"fmt"

	"github.com/bnema/wlcore/wire"
)

// Manager tracks every object id a client connection knows about. It is
// not safe for concurrent use; a Connection owns exactly one Manager and
// serializes access to it.
type Manager struct {
	live map[wire.ObjectID]*wire.Object

	// dead holds the Object record for ids whose destructor request has
	// been queued (removed from live immediately, per request-send
	// semantics) but whose wl_display.delete_id acknowledgment has not
	// yet arrived. Keeping the record, not just the id, lets an event
	// addressed to a destroyed-but-not-yet-deleted object still be
	// decoded and dispatched against its interface.
	dead map[wire.ObjectID]*wire.Object

	// reusable is a LIFO stack of ids released by delete_id, available
	// for AllocateID to hand out again before minting a new one.
	reusable []wire.ObjectID

	nextNew wire.ObjectID
}

// NewManager creates a Manager with the implicit wl_display object
// pre-registered at id 1.
func NewManager(displayInterface *wire.Interface) *Manager {
	m := &Manager{
		live:    make(map[wire.ObjectID]*wire.Object),
		dead:    make(map[wire.ObjectID]*wire.Object),
		nextNew: 2,
	}
	m.live[wire.DISPLAY] = &wire.Object{ID: wire.DISPLAY, Interface: displayInterface, Version: 1}
	return m
}

// ErrExhausted is returned by AllocateID when the client id space
// [2, MaxClient] has been entirely consumed.
var ErrExhausted = fmt.Errorf("objects: client id space exhausted")

// AllocateID reserves the next available client-side object id, preferring
// a previously reused id (most recently freed first) over minting a new
// one, so a long-lived connection's id space does not grow unboundedly
// under churn.
func (m *Manager) AllocateID() (wire.ObjectID, error) {
	if n := len(m.reusable); n > 0 {
		id := m.reusable[n-1]
		m.reusable = m.reusable[:n-1]
		return id, nil
	}
	if m.nextNew > wire.MaxClient {
		return 0, ErrExhausted
	}
	id := m.nextNew
	m.nextNew++
	return id, nil
}

// Register records obj as live under its own id. It panics if id is
// already live, which would indicate a caller allocated ids incorrectly;
// that is a programmer error, not a recoverable runtime condition.
func (m *Manager) Register(obj *wire.Object) {
	if _, exists := m.live[obj.ID]; exists {
		panic(fmt.Sprintf("objects: id %d registered while already live", obj.ID))
	}
	delete(m.dead, obj.ID)
	m.live[obj.ID] = obj
}

// Lookup returns the live object for id, if any.
func (m *Manager) Lookup(id wire.ObjectID) (*wire.Object, bool) {
	obj, ok := m.live[id]
	return obj, ok
}

// IsLive reports whether id currently refers to a live object.
func (m *Manager) IsLive(id wire.ObjectID) bool {
	_, ok := m.live[id]
	return ok
}

// IsDead reports whether id has been destroyed by the client but not yet
// acknowledged by a delete_id event.
func (m *Manager) IsDead(id wire.ObjectID) bool {
	_, ok := m.dead[id]
	return ok
}

// LookupDead returns the Object record for a destroyed-but-not-yet-deleted
// id, letting an event that arrives in the window between a destructor
// request and its delete_id acknowledgment still be decoded against the
// interface it was created with.
func (m *Manager) LookupDead(id wire.ObjectID) (*wire.Object, bool) {
	obj, ok := m.dead[id]
	return obj, ok
}

// OnSendRequest must be called at the moment a request is queued for
// sending (not when it is flushed to the wire): if desc is a destructor,
// the object is removed from the live set immediately, so that no event
// arriving before the delete_id acknowledgment can be mistaken for
// targeting a still-live object.
func (m *Manager) OnSendRequest(id wire.ObjectID, desc *wire.MessageDesc) {
	if !desc.IsDestructor {
		return
	}
	obj, ok := m.live[id]
	if !ok {
		return
	}
	delete(m.live, id)
	m.dead[id] = obj
}

// Release removes id from the live set and makes it immediately available
// for reuse, without touching the dead set. It is for a caller that
// speculatively allocated id (e.g. for a NewId request argument) but failed
// to actually send the request, so the id was never truly handed to the
// compositor and no delete_id acknowledgment will ever arrive for it.
func (m *Manager) Release(id wire.ObjectID) {
	delete(m.live, id)
	m.reusable = append(m.reusable, id)
}

// OnDeleteID processes a wl_display.delete_id event, moving id from dead
// to reusable. An id that was never sent a destructor (and is not already
// dead) is accepted for forward compatibility with a server that deletes
// ids the client never explicitly destroyed, but such ids are pushed
// straight onto the reusable stack rather than treated as an error.
func (m *Manager) OnDeleteID(id wire.ObjectID) {
	delete(m.dead, id)
	delete(m.live, id)
	m.reusable = append(m.reusable, id)
}

// LiveCount returns the number of currently live objects, including the
// display.
func (m *Manager) LiveCount() int { return len(m.live) }
