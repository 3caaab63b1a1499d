package decode

import (
	"strconv"
	"strings"

	"github.com/wippyai/tracedecode"
	"github.com/wippyai/tracedecode/xlat"
)

// Marker is printed where output was cut short.
const Marker = "..."

// Writer renders fields onto a Sink. Every Field* method emits prefix first,
// so callers compose structures left to right: "{" before the first member,
// ", " before the rest.
type Writer struct {
	sink tracedecode.Sink
}

func NewWriter(sink tracedecode.Sink) *Writer {
	return &Writer{sink: sink}
}

func (w *Writer) Punct(s string) {
	if s != "" {
		w.sink.Emit(tracedecode.TokenPunct, s)
	}
}

// Name emits prefix, the member name and "=".
func (w *Writer) Name(prefix, name string) {
	w.Punct(prefix)
	w.sink.Emit(tracedecode.TokenName, name)
	w.sink.Emit(tracedecode.TokenPunct, "=")
}

func (w *Writer) Value(s string) {
	w.sink.Emit(tracedecode.TokenValue, s)
}

// Comment attaches an annotation to the preceding value; empty text is dropped.
func (w *Writer) Comment(s string) {
	if s != "" {
		w.sink.Emit(tracedecode.TokenComment, s)
	}
}

func (w *Writer) Marker() {
	w.sink.Emit(tracedecode.TokenMarker, Marker)
}

// Sym emits a translated value and its comment.
func (w *Writer) Sym(s xlat.Sym) {
	w.Value(s.Text)
	w.Comment(s.Comment)
}

// Addr prints a traced address, NULL for 0.
func (w *Writer) Addr(addr uint64) {
	if addr == 0 {
		w.Value("NULL")
		return
	}
	w.Value(xlat.Hex(addr))
}

func (w *Writer) FieldD(prefix, name string, v int64) {
	w.Name(prefix, name)
	w.Value(strconv.FormatInt(v, 10))
}

func (w *Writer) FieldU(prefix, name string, v uint64) {
	w.Name(prefix, name)
	w.Value(strconv.FormatUint(v, 10))
}

func (w *Writer) FieldX(prefix, name string, v uint64) {
	w.Name(prefix, name)
	w.Value(xlat.Hex(v))
}

func (w *Writer) FieldFlags(prefix, name string, v uint64, t *xlat.Table, dflt string) {
	w.Name(prefix, name)
	w.Sym(xlat.Flags(v, t, dflt))
}

func (w *Writer) FieldXVal(prefix, name string, v uint64, t *xlat.Table, dflt string) {
	w.Name(prefix, name)
	w.Sym(xlat.Enum(v, t, dflt))
}

// FieldString prints a NUL-padded char array as a quoted C string. An array
// with no terminator is printed in full followed by the marker.
func (w *Writer) FieldString(prefix, name string, b []byte) {
	w.Name(prefix, name)
	w.String(b)
}

// String prints b as a quoted C string, see FieldString.
func (w *Writer) String(b []byte) {
	s, terminated := quoteCString(b)
	w.Value(s)
	if !terminated {
		w.Marker()
	}
}

// FieldIfIndex prints an interface index, by name when resolve knows it.
func (w *Writer) FieldIfIndex(prefix, name string, idx int32, resolve func(int32) (string, bool)) {
	w.Name(prefix, name)
	w.IfIndex(idx, resolve)
}

func (w *Writer) IfIndex(idx int32, resolve func(int32) (string, bool)) {
	if resolve != nil && idx > 0 {
		if ifname, ok := resolve(idx); ok {
			w.Value("if_nametoindex(" + quote(ifname) + ")")
			return
		}
	}
	w.Value(strconv.FormatInt(int64(idx), 10))
}

// quoteCString quotes b up to its first NUL using C escapes. terminated is
// false when b holds no NUL.
func quoteCString(b []byte) (string, bool) {
	terminated := false
	for i, c := range b {
		if c == 0 {
			b, terminated = b[:i], true
			break
		}
	}
	return quote(string(b)), terminated
}

func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\v':
			sb.WriteString(`\v`)
		case '\f':
			sb.WriteString(`\f`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			if c < ' ' || c >= 0x7f {
				sb.WriteByte('\\')
				sb.WriteByte('0' + c>>6)
				sb.WriteByte('0' + c>>3&7)
				sb.WriteByte('0' + c&7)
				continue
			}
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
