package connection

import (
	"github.com/bnema/wlcore/wire"
	"github.com/bnema/wlcore/wlerr"
)

// callbackInterface is the built-in wl_callback descriptor: a single
// "done" event carrying an opaque uint, used by wl_display.sync to
// implement roundtrips without depending on a generated protocol package.
var callbackInterface = &wire.Interface{
	Name:    "wl_callback",
	Version: 1,
	Events: []wire.MessageDesc{
		{Name: "done", Signature: []wire.ArgType{wire.ArgUint}},
	},
}

// Roundtrip sends a wl_display.sync request and blocks until the
// compositor's corresponding wl_callback.done event has been dispatched,
// guaranteeing every request sent before the call was processed by the
// compositor and every event it produced in response has been delivered.
func (c *Connection) Roundtrip() error {
	syncDesc := &displayInterface.Requests[0]
	id, err := c.SendRequest(wire.DISPLAY, 0, syncDesc, []wire.ArgValue{wire.ArgNewIDRequest(callbackInterface)})
	if err != nil {
		return err
	}
	defer delete(c.dispatchers, id)

	done := false
	SetEventHandler(c, struct{}{}, callbackProxy{id: id}, decodeCallbackDone, func(_ EventCtx[struct{}, callbackProxy], _ any) {
		done = true
	})

	if err := c.Flush(); err != nil {
		return err
	}

	for !done {
		if err := c.DispatchBlocking(); err != nil {
			return err
		}
		if c.lastProtoErr != nil {
			return &wlerr.ProtocolError{ObjectID: c.lastProtoErr.ObjectID, Code: c.lastProtoErr.Code, Message: c.lastProtoErr.Message}
		}
	}
	return nil
}

type callbackProxy struct{ id wire.ObjectID }

func (p callbackProxy) WlID() wire.ObjectID          { return p.id }
func (p callbackProxy) WlInterface() *wire.Interface { return callbackInterface }

func decodeCallbackDone(_ uint16, msg wire.Message) (any, error) {
	return msg.Args[0].Uint, nil
}
