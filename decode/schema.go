package decode

import (
	"fmt"

	"github.com/wippyai/tracedecode/decode/internal/abi"
	"github.com/wippyai/tracedecode/decode/internal/layout"
	"github.com/wippyai/tracedecode/xlat"
)

// Format selects how a scalar member is printed.
type Format uint8

const (
	FormatDefault Format = iota // decimal, signed for signed kinds
	FormatD                     // signed decimal
	FormatU                     // unsigned decimal
	FormatX                     // hex, 0 as "0"
	FormatFlags                 // bit set through a flag table
	FormatXVal                  // single value through an enum table
	FormatIfIndex               // network interface index
	FormatString                // quoted C string, KindChars only
)

// TableFunc picks a symbol table from the configured set.
type TableFunc func(*xlat.Tables) *xlat.Table

// CommentFunc derives an annotation printed after a rendered structure.
// It returns "" for no comment.
type CommentFunc func(c *Context, rec Record) string

// Field describes one structure member.
type Field struct {
	Table  TableFunc
	Elem   *Struct
	Name   string
	Dflt   string
	Count  uint32
	Kind   Kind
	Format Format
	Hidden bool
}

func scalarField(name string, k Kind) Field {
	return Field{Name: name, Kind: k}
}

func U8(name string) Field  { return scalarField(name, KindU8) }
func S8(name string) Field  { return scalarField(name, KindS8) }
func U16(name string) Field { return scalarField(name, KindU16) }
func S16(name string) Field { return scalarField(name, KindS16) }
func U32(name string) Field { return scalarField(name, KindU32) }
func S32(name string) Field { return scalarField(name, KindS32) }
func U64(name string) Field { return scalarField(name, KindU64) }
func S64(name string) Field { return scalarField(name, KindS64) }

// Chars declares a fixed char array of n bytes printed as a C string.
func Chars(name string, n uint32) Field {
	return Field{Name: name, Kind: KindChars, Count: n, Format: FormatString}
}

// Embed declares a structure stored inline.
func Embed(name string, s *Struct) Field {
	return Field{Name: name, Kind: KindStruct, Elem: s}
}

// Ptr declares a traced pointer to s.
func Ptr(name string, s *Struct) Field {
	return Field{Name: name, Kind: KindPtr, Elem: s}
}

// Elems declares a fixed array of n structures.
func Elems(name string, s *Struct, n uint32) Field {
	return Field{Name: name, Kind: KindStruct, Elem: s, Count: n}
}

// Reserved declares n hidden scalars of kind k.
func Reserved(name string, k Kind, n uint32) Field {
	return Field{Name: name, Kind: k, Count: n, Hidden: true}
}

// Times turns f into a fixed array of n elements.
func (f Field) Times(n uint32) Field {
	f.Count = n
	return f
}

func (f Field) Hex() Field {
	f.Format = FormatX
	return f
}

func (f Field) Dec() Field {
	f.Format = FormatD
	return f
}

func (f Field) Unsigned() Field {
	f.Format = FormatU
	return f
}

func (f Field) Flags(t TableFunc, dflt string) Field {
	f.Format, f.Table, f.Dflt = FormatFlags, t, dflt
	return f
}

func (f Field) XVal(t TableFunc, dflt string) Field {
	f.Format, f.Table, f.Dflt = FormatXVal, t, dflt
	return f
}

func (f Field) IfIndex() Field {
	f.Format = FormatIfIndex
	return f
}

func (f Field) Hide() Field {
	f.Hidden = true
	return f
}

// IsArray reports whether f declares more than one element.
func (f Field) IsArray() bool {
	return f.Count > 1 && f.Kind != KindChars
}

func (f Field) member() (layout.Member, error) {
	m := layout.Member{Name: f.Name, Count: f.Count}
	switch f.Kind {
	case KindStruct:
		if f.Elem == nil {
			return m, fmt.Errorf("field %q: embedded structure without schema", f.Name)
		}
		m.Size, m.Align = f.Elem.size, f.Elem.align
	case KindPtr:
		if f.Elem == nil {
			return m, fmt.Errorf("field %q: pointer without target schema", f.Name)
		}
		if f.Count > 1 {
			return m, fmt.Errorf("field %q: pointer arrays are not supported", f.Name)
		}
		m.Size, m.Align = abi.PointerSize, abi.PointerSize
	case KindChars:
		if f.Count == 0 {
			return m, fmt.Errorf("field %q: char array without length", f.Name)
		}
		m.Size, m.Align = 1, 1
	default:
		if !f.Kind.IsScalar() {
			return m, fmt.Errorf("field %q: unknown kind %d", f.Name, f.Kind)
		}
		m.Size = f.Kind.Width()
		m.Align = m.Size
	}

	switch f.Format {
	case FormatFlags, FormatXVal:
		if f.Table == nil {
			return m, fmt.Errorf("field %q: %s format needs a table", f.Name, formatName(f.Format))
		}
	case FormatString:
		if f.Kind != KindChars {
			return m, fmt.Errorf("field %q: string format on %s", f.Name, f.Kind)
		}
	}
	if f.Format != FormatDefault && f.Format != FormatString && !f.Kind.IsScalar() {
		return m, fmt.Errorf("field %q: %s format on %s", f.Name, formatName(f.Format), f.Kind)
	}
	return m, nil
}

func formatName(f Format) string {
	switch f {
	case FormatD:
		return "decimal"
	case FormatU:
		return "unsigned"
	case FormatX:
		return "hex"
	case FormatFlags:
		return "flags"
	case FormatXVal:
		return "xval"
	case FormatIfIndex:
		return "ifindex"
	case FormatString:
		return "string"
	default:
		return "default"
	}
}

// Struct is the static schema of one ABI structure: its members in
// declaration order and their natural-alignment offsets.
type Struct struct {
	comment CommentFunc
	index   map[string]int
	Name    string
	Fields  []Field
	offsets []uint32
	size    uint32
	align   uint32
}

// NewStruct lays out fields with C natural alignment.
func NewStruct(name string, fields ...Field) (*Struct, error) {
	members := make([]layout.Member, len(fields))
	for i, f := range fields {
		m, err := f.member()
		if err != nil {
			return nil, fmt.Errorf("struct %s: %w", name, err)
		}
		members[i] = m
	}

	info, err := layout.Struct(members)
	if err != nil {
		return nil, fmt.Errorf("struct %s: %w", name, err)
	}

	s := &Struct{
		Name:    name,
		Fields:  fields,
		offsets: info.Offsets,
		size:    info.Size,
		align:   info.Align,
		index:   make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.index[f.Name] = i
	}
	return s, nil
}

// MustStruct is NewStruct for package-level schemas; it panics on error.
func MustStruct(name string, fields ...Field) *Struct {
	s, err := NewStruct(name, fields...)
	if err != nil {
		panic("decode: " + err.Error())
	}
	return s
}

// WithComment returns a copy of s annotated by fn.
func (s *Struct) WithComment(fn CommentFunc) *Struct {
	cp := *s
	cp.comment = fn
	return &cp
}

func (s *Struct) Size() uint32  { return s.size }
func (s *Struct) Align() uint32 { return s.align }

// Offset returns the byte offset of the named member.
func (s *Struct) Offset(name string) (uint32, bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return s.offsets[i], true
}

// Field returns the named member.
func (s *Struct) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.Fields[i], true
}

// Visible lists the names of members that are rendered by default.
func (s *Struct) Visible() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if !f.Hidden {
			names = append(names, f.Name)
		}
	}
	return names
}

// extent returns the offset and size of member i.
func (s *Struct) extent(i int) (uint32, uint32) {
	f := s.Fields[i]
	var elem uint32
	switch f.Kind {
	case KindStruct:
		elem = f.Elem.size
	default:
		elem = f.Kind.Width()
	}
	n := f.Count
	if n == 0 {
		n = 1
	}
	return s.offsets[i], elem * n
}

func (s *Struct) mustIndex(name string) int {
	i, ok := s.index[name]
	if !ok {
		panic(fmt.Sprintf("decode: struct %s has no field %q", s.Name, name))
	}
	return i
}
