package protoscan

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
)

// Generate renders Go source implementing every interface in p into a
// single file in package pkgName, writing the formatted result to w. The
// output defines, per interface: a package-level *wire.Interface variable
// carrying the static MessageDesc tables, a Proxy struct, a named type with
// constants per enum, and a typed method per request. Requests with an
// untyped new_id argument get no method (see hasAnyNewID).
func Generate(p *Protocol, pkgName string, w io.Writer) error {
	tmpl := template.Must(template.New("protocol").Funcs(template.FuncMap{
		"goName":         goName,
		"exported":       exported,
		"argType":        func(a Arg) string { return a.wireArgType() },
		"argValueExpr":   argValueExpr,
		"eventArgAccess": eventArgAccess,
		"hasAnyNewID":    hasAnyNewID,
		"newIDArg":       newIDArg,
		"enumTypeName":   enumTypeName,
		"enumEntryName":  enumEntryName,
		"argGoType":      argGoType,
	}).Parse(sourceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Package  string
		Protocol *Protocol
	}{Package: pkgName, Protocol: p}); err != nil {
		return fmt.Errorf("protoscan: execute template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("protoscan: gofmt generated source: %w\n%s", err, buf.String())
	}
	_, err = w.Write(formatted)
	return err
}

// goName converts a snake_case wire name (wl_surface, get_registry) to
// Go-exported CamelCase (Surface, GetRegistry), stripping a leading wl_
// since the package name already carries that namespace.
func goName(name string) string {
	name = strings.TrimPrefix(name, "wl_")
	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(exported(part))
	}
	return b.String()
}

func exported(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// argValueExpr renders the wire.ArgValue constructor call for a request
// argument named goArgName of the given Arg.
func argValueExpr(a Arg, goArgName string) string {
	if a.Enum != "" {
		if a.Type == "int" {
			return fmt.Sprintf("wire.ArgInt(int32(%s))", goArgName)
		}
		return fmt.Sprintf("wire.ArgUint(uint32(%s))", goArgName)
	}
	switch a.wireArgType() {
	case "ArgInt":
		return fmt.Sprintf("wire.ArgInt(%s)", goArgName)
	case "ArgUint":
		return fmt.Sprintf("wire.ArgUint(%s)", goArgName)
	case "ArgFixed":
		return fmt.Sprintf("wire.ArgFixedVal(%s)", goArgName)
	case "ArgString":
		return fmt.Sprintf("wire.ArgStringVal(%s)", goArgName)
	case "ArgOptString":
		return fmt.Sprintf("wire.ArgOptStringVal(%s, %s != \"\")", goArgName, goArgName)
	case "ArgArray":
		return fmt.Sprintf("wire.ArgArrayVal(%s)", goArgName)
	case "ArgFd":
		return fmt.Sprintf("wire.ArgFdVal(%s)", goArgName)
	case "ArgObject":
		return fmt.Sprintf("wire.ArgObjectVal(%s)", goArgName)
	case "ArgOptObject":
		return fmt.Sprintf("wire.ArgOptObjectVal(%s, %s != 0)", goArgName, goArgName)
	case "ArgNewID":
		// goArgName is unused: newIDArg strips this argument from the
		// generated method's parameter list entirely, since SendRequest
		// allocates and registers the id itself.
		return fmt.Sprintf("wire.ArgNewIDRequest(%sInterface)", goName(a.Interface))
	default:
		// ArgAnyNewID never reaches here: hasAnyNewID filters those
		// requests out of method generation entirely (see sourceTemplate).
		return fmt.Sprintf("wire.ArgUint(uint32(%s))", goArgName)
	}
}

// hasAnyNewID reports whether req has an any_new_id argument (wl_registry.bind
// being the sole occurrence in upstream protocols). Such requests need three
// wire arguments synthesized from a single dynamic interface choice, which
// the per-request method shape generated here cannot express; callers with
// an any_new_id request are expected to hand-write that one method the way
// Registry.Bind does.
func hasAnyNewID(req Message) bool {
	for _, a := range req.Args {
		if a.wireArgType() == "ArgAnyNewID" {
			return true
		}
	}
	return false
}

// newIDArg returns the request's typed new_id argument, if any (hasAnyNewID
// already filters the untyped any_new_id case out of method generation), so
// the generated method can omit it as a parameter and instead allocate and
// return the freshly registered proxy for it.
func newIDArg(req Message) *Arg {
	for i := range req.Args {
		if req.Args[i].wireArgType() == "ArgNewID" {
			return &req.Args[i]
		}
	}
	return nil
}

// enumTypeName builds the Go type name generated for an <enum>/<bitfield>
// declared on rawIface (the raw XML interface name, e.g. "wl_output"):
// <IfaceGoName><EnumGoName>, e.g. OutputTransform.
func enumTypeName(rawIface, enumName string) string {
	return goName(rawIface) + goName(enumName)
}

// enumGoType resolves an Arg.Enum reference to its generated Go type name.
// A bare reference (e.g. "transform") names an enum on rawIface itself; a
// dotted reference (e.g. "wl_output.transform") names one declared on a
// different interface.
func enumGoType(rawIface, enumRef string) string {
	iface, enum := rawIface, enumRef
	if i := strings.IndexByte(enumRef, '.'); i >= 0 {
		iface, enum = enumRef[:i], enumRef[i+1:]
	}
	return enumTypeName(iface, enum)
}

// enumEntryName renders the exported constant name for one <entry>,
// guarding against entry names that are bare numerals (wl_output.transform's
// "90", "180", "270") which would otherwise produce an invalid identifier.
func enumEntryName(name string) string {
	n := exported(name)
	if n != "" && n[0] >= '0' && n[0] <= '9' {
		n = "N" + n
	}
	return n
}

// argGoType renders the Go parameter type for a request argument: its
// generated enum/bitfield type if Arg.Enum names one, else the plain wire
// type.
func argGoType(rawIface string, a Arg) string {
	if a.Enum != "" {
		return enumGoType(rawIface, a.Enum)
	}
	switch a.wireArgType() {
	case "ArgString", "ArgOptString":
		return "string"
	case "ArgArray":
		return "[]byte"
	case "ArgFd":
		return "int"
	case "ArgFixed":
		return "wire.Fixed"
	case "ArgInt":
		return "int32"
	case "ArgObject", "ArgOptObject", "ArgNewID":
		return "wire.ObjectID"
	default:
		return "uint32"
	}
}

// eventArgAccess renders the expression reading argument index i of an
// event message as its native Go type.
func eventArgAccess(a Arg, i int) string {
	base := fmt.Sprintf("msg.Args[%d]", i)
	switch a.wireArgType() {
	case "ArgInt":
		return base + ".Int"
	case "ArgUint":
		return base + ".Uint"
	case "ArgFixed":
		return base + ".Fixed"
	case "ArgString", "ArgOptString":
		return base + ".String"
	case "ArgArray":
		return base + ".Array"
	case "ArgFd":
		return base + ".Fd"
	case "ArgObject", "ArgNewID":
		return base + ".Object"
	case "ArgOptObject":
		return base + ".OptObject"
	default:
		return base + ".Uint"
	}
}

const sourceTemplate = `// Code generated by wlscanner from {{.Protocol.Name}}.xml. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/bnema/wlcore/connection"
	"github.com/bnema/wlcore/wire"
)

{{range .Protocol.Interfaces}}
{{$rawIface := .Name}}
{{$ifaceName := goName .Name}}
// {{$ifaceName}}Interface is the static descriptor for {{.Name}}.
var {{$ifaceName}}Interface = &wire.Interface{
	Name:    "{{.Name}}",
	Version: {{.Version}},
	Requests: []wire.MessageDesc{
{{range .Requests}}		{Name: "{{.Name}}", IsDestructor: {{.IsDestructor}}, Signature: []wire.ArgType{ {{range .Args}}wire.{{argType .}}, {{end}} }},
{{end}}	},
	Events: []wire.MessageDesc{
{{range .Events}}		{Name: "{{.Name}}", Signature: []wire.ArgType{ {{range .Args}}wire.{{argType .}}, {{end}} }},
{{end}}	},
}

{{range .Enums}}
{{$enumType := enumTypeName $rawIface .Name}}
// {{$enumType}} is the {{.Name}} enum of {{$rawIface}}.
type {{$enumType}} uint32

const (
{{range .Entries}}	{{$enumType}}{{enumEntryName .Name}} {{$enumType}} = {{.Value}}
{{end}})
{{end}}

// {{$ifaceName}} is a typed proxy for a bound {{.Name}} object.
type {{$ifaceName}} struct {
	Conn *connection.Connection
	ID   wire.ObjectID
}

func (p {{$ifaceName}}) WlID() wire.ObjectID          { return p.ID }
func (p {{$ifaceName}}) WlInterface() *wire.Interface { return {{$ifaceName}}Interface }

{{range $i, $req := .Requests}}
{{if not (hasAnyNewID $req)}}
{{$newArg := newIDArg $req}}
// {{goName $req.Name}} sends the {{$req.Name}} request.{{if $newArg}} It allocates
// and registers a fresh {{$newArg.Interface}} object, returning the bound proxy.{{end}}
func (p {{$ifaceName}}) {{goName $req.Name}}({{range $req.Args}}{{if ne (argType .) "ArgNewID"}}{{.Name}} {{argGoType $rawIface .}}, {{end}}{{end}}) ({{if $newArg}}{{goName $newArg.Interface}}, {{end}}error) {
	desc := &{{$ifaceName}}Interface.Requests[{{$i}}]
	args := []wire.ArgValue{ {{range $req.Args}}{{argValueExpr . .Name}}, {{end}} }
	{{if $newArg}}newID{{else}}_{{end}}, err := p.Conn.SendRequest(p.ID, {{$i}}, desc, args)
{{if $newArg}}	if err != nil {
		return {{goName $newArg.Interface}}{}, err
	}
	return {{goName $newArg.Interface}}{Conn: p.Conn, ID: newID}, nil
{{else}}	return err
{{end}}}
{{end}}
{{end}}
{{end}}
`
