package objects

import (
	"testing"

	"github.com/bnema/wlcore/wire"
)

func TestDisplayPreregistered(t *testing.T) {
	m := NewManager(&wire.Interface{Name: "wl_display"})
	if !m.IsLive(wire.DISPLAY) {
		t.Fatal("expected wl_display (id 1) to be live at construction")
	}
}

func TestAllocateIDStartsAtTwo(t *testing.T) {
	m := NewManager(nil)
	id, err := m.AllocateID()
	if err != nil {
		t.Fatalf("AllocateID: %v", err)
	}
	if id != 2 {
		t.Fatalf("first allocated id = %d, want 2", id)
	}
}

func TestIDNotReusedWhileLive(t *testing.T) {
	m := NewManager(nil)
	id, _ := m.AllocateID()
	m.Register(&wire.Object{ID: id})

	next, _ := m.AllocateID()
	if next == id {
		t.Fatalf("allocated id %d twice while still live", id)
	}
}

func TestDestructorRemovesFromLiveBeforeDeleteID(t *testing.T) {
	m := NewManager(nil)
	id, _ := m.AllocateID()
	m.Register(&wire.Object{ID: id})

	destructor := &wire.MessageDesc{Name: "release", IsDestructor: true}
	m.OnSendRequest(id, destructor)

	if m.IsLive(id) {
		t.Fatal("object should no longer be live immediately after destructor send")
	}
	if !m.IsDead(id) {
		t.Fatal("object should be dead, awaiting delete_id")
	}
}

func TestDeleteIDMovesToReusableLIFO(t *testing.T) {
	m := NewManager(nil)
	idA, _ := m.AllocateID()
	idB, _ := m.AllocateID()
	m.Register(&wire.Object{ID: idA})
	m.Register(&wire.Object{ID: idB})

	destructor := &wire.MessageDesc{IsDestructor: true}
	m.OnSendRequest(idA, destructor)
	m.OnSendRequest(idB, destructor)

	m.OnDeleteID(idA)
	m.OnDeleteID(idB)

	// idB was freed last, so it must be handed out first.
	got, _ := m.AllocateID()
	if got != idB {
		t.Fatalf("AllocateID() = %d, want %d (LIFO order)", got, idB)
	}
	got2, _ := m.AllocateID()
	if got2 != idA {
		t.Fatalf("AllocateID() = %d, want %d", got2, idA)
	}
}

func TestNonDestructorRequestDoesNotKillObject(t *testing.T) {
	m := NewManager(nil)
	id, _ := m.AllocateID()
	m.Register(&wire.Object{ID: id})

	m.OnSendRequest(id, &wire.MessageDesc{IsDestructor: false})
	if !m.IsLive(id) {
		t.Fatal("non-destructor request must not kill the object")
	}
}

func TestAllocateIDExhaustion(t *testing.T) {
	m := NewManager(nil)
	m.nextNew = wire.MaxClient
	if _, err := m.AllocateID(); err != nil {
		t.Fatalf("expected last id to be allocatable, got %v", err)
	}
	if _, err := m.AllocateID(); err != ErrExhausted {
		t.Fatalf("expected ErrExhausted, got %v", err)
	}
}

func TestRegisterPanicsOnDoubleLive(t *testing.T) {
	m := NewManager(nil)
	id, _ := m.AllocateID()
	m.Register(&wire.Object{ID: id})

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering an already-live id")
		}
	}()
	m.Register(&wire.Object{ID: id})
}
