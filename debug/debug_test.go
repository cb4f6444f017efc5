package debug

import (
	"strings"
	"testing"

	"github.com/bnema/wlcore/wire"
)

func TestFormatMessageRequest(t *testing.T) {
	desc := &wire.MessageDesc{Name: "bind"}
	msg := wire.Message{
		Args: []wire.ArgValue{
			wire.ArgUint(12),
			wire.ArgAnyNewIDVal("wl_seat", 5, 7),
		},
	}
	line := FormatMessage(Outgoing, "wl_registry", 3, desc, msg)
	if !strings.Contains(line, "[3]wl_registry.bind(12, new id [7]wl_seat v5) ->") {
		t.Fatalf("unexpected format: %q", line)
	}
}

func TestFormatMessageEvent(t *testing.T) {
	desc := &wire.MessageDesc{Name: "delete_id"}
	msg := wire.Message{Args: []wire.ArgValue{wire.ArgUint(9)}}
	line := FormatMessage(Incoming, "wl_display", wire.DISPLAY, desc, msg)
	if !strings.HasSuffix(line, "<-") {
		t.Fatalf("expected incoming arrow, got %q", line)
	}
}

func TestFormatArgOptionalNull(t *testing.T) {
	a := wire.ArgOptObjectVal(0, false)
	if got := formatArg(a); got != "nil" {
		t.Fatalf("formatArg(null opt object) = %q, want nil", got)
	}
}
