// Package protoscan parses Wayland protocol XML definitions and generates
// Go source exposing typed Proxy wrappers, static Interface/MessageDesc
// descriptors, enum types, and request methods over the connection
// package. It does not generate event decoders or event-handler helpers.
// It is the code-generator half of the protocol contract;
// cmd/wlscanner is its command-line front end.
package protoscan

import (
	"encoding/xml"
	"fmt"
	"io"
)

// Protocol is the root of a parsed protocol XML file.
type Protocol struct {
	XMLName    xml.Name    `xml:"protocol"`
	Name       string      `xml:"name,attr"`
	Copyright  string      `xml:"copyright"`
	Interfaces []Interface `xml:"interface"`
}

// Interface describes one <interface> element: its requests, events, and
// enums.
type Interface struct {
	Name        string    `xml:"name,attr"`
	Version     int       `xml:"version,attr"`
	Description string    `xml:"description>text"`
	Requests    []Message `xml:"request"`
	Events      []Message `xml:"event"`
	Enums       []Enum    `xml:"enum"`
}

// Message describes one <request> or <event> element.
type Message struct {
	Name        string `xml:"name,attr"`
	Type        string `xml:"type,attr"` // "destructor" or empty
	Since       int    `xml:"since,attr"`
	Description string `xml:"description>text"`
	Args        []Arg  `xml:"arg"`
}

// IsDestructor reports whether this message is marked as a destructor
// request.
func (m Message) IsDestructor() bool { return m.Type == "destructor" }

// Arg describes one <arg> element of a request or event.
type Arg struct {
	Name      string `xml:"name,attr"`
	Type      string `xml:"type,attr"`
	Interface string `xml:"interface,attr"`
	AllowNull bool   `xml:"allow-null,attr"`
	Enum      string `xml:"enum,attr"`
	Summary   string `xml:"summary,attr"`
}

// Enum describes one <enum> element, either a plain enumeration or, when
// Bitfield is true, a set of flag values.
type Enum struct {
	Name     string       `xml:"name,attr"`
	Bitfield bool         `xml:"bitfield,attr"`
	Entries  []EnumEntry  `xml:"entry"`
}

// EnumEntry is one <entry> of an <enum>.
type EnumEntry struct {
	Name    string `xml:"name,attr"`
	Value   string `xml:"value,attr"`
	Summary string `xml:"summary,attr"`
}

// Parse reads a protocol XML document from r.
func Parse(r io.Reader) (*Protocol, error) {
	var p Protocol
	if err := xml.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("protoscan: parse: %w", err)
	}
	return &p, nil
}

// wireArgType maps a wire arg type (and, for object/string/new_id args,
// allow-null or whether an interface was named) to the name of the
// wire.ArgType constant the template emits for it; see the argType
// template function in generate.go.
func (a Arg) wireArgType() string {
	switch a.Type {
	case "int":
		return "ArgInt"
	case "uint":
		return "ArgUint"
	case "fixed":
		return "ArgFixed"
	case "string":
		if a.AllowNull {
			return "ArgOptString"
		}
		return "ArgString"
	case "array":
		return "ArgArray"
	case "fd":
		return "ArgFd"
	case "object":
		if a.AllowNull {
			return "ArgOptObject"
		}
		return "ArgObject"
	case "new_id":
		if a.Interface == "" {
			return "ArgAnyNewID"
		}
		return "ArgNewID"
	default:
		return "ArgUint"
	}
}
