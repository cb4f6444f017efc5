package connection

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/bnema/wlcore/wire"
)

func TestGlobalsSnapshotIsIndependentCopy(t *testing.T) {
	conn, compositor := newTestConnection(t)

	var registryID wire.ObjectID
	done := make(chan struct{})
	go func() {
		compositor.step(t, &registryID)
		compositor.step(t, &registryID)
		close(done)
	}()

	reg, err := BlockingCollectInitialGlobals(conn)
	if err != nil {
		t.Fatalf("BlockingCollectInitialGlobals: %v", err)
	}
	<-done

	want := []Global{
		{Name: 1, Interface: "wl_compositor", Version: 4},
		{Name: 2, Interface: "wl_seat", Version: 7},
	}
	got := reg.Globals()
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b Global) bool { return a.Name < b.Name })); diff != "" {
		t.Fatalf("Globals() mismatch (-want +got):\n%s", diff)
	}

	snapshot := reg.Globals()
	snapshot[0].Version = 999
	if reg.globals[0].Version == 999 {
		t.Fatal("Globals() must return an independent copy, not alias internal state")
	}
}
