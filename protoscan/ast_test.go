package protoscan

import (
	"bytes"
	"strings"
	"testing"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<protocol name="sample">
  <interface name="wl_widget" version="2">
    <request name="destroy" type="destructor"/>
    <request name="resize">
      <arg name="width" type="int"/>
      <arg name="height" type="int"/>
    </request>
    <event name="resized">
      <arg name="width" type="int"/>
      <arg name="height" type="int"/>
    </event>
    <enum name="kind">
      <entry name="square" value="0"/>
      <entry name="circle" value="1"/>
    </enum>
  </interface>
</protocol>`

func TestParse(t *testing.T) {
	p, err := Parse(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if p.Name != "sample" {
		t.Fatalf("protocol name = %q", p.Name)
	}
	if len(p.Interfaces) != 1 {
		t.Fatalf("got %d interfaces, want 1", len(p.Interfaces))
	}
	iface := p.Interfaces[0]
	if iface.Name != "wl_widget" || iface.Version != 2 {
		t.Fatalf("unexpected interface: %+v", iface)
	}
	if len(iface.Requests) != 2 || !iface.Requests[0].IsDestructor() {
		t.Fatalf("unexpected requests: %+v", iface.Requests)
	}
	if len(iface.Events) != 1 || len(iface.Events[0].Args) != 2 {
		t.Fatalf("unexpected events: %+v", iface.Events)
	}
	if len(iface.Enums) != 1 || len(iface.Enums[0].Entries) != 2 {
		t.Fatalf("unexpected enums: %+v", iface.Enums)
	}
}

func TestGenerateProducesValidGoSkeleton(t *testing.T) {
	p, err := Parse(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var buf bytes.Buffer
	if err := Generate(p, "sample", &buf); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"package sample", "WidgetInterface", "func (p Widget) Resize(", "DO NOT EDIT"} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source missing %q:\n%s", want, out)
		}
	}
}
