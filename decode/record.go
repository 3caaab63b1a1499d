package decode

import "encoding/binary"

// Record is a local copy of one structure read from traced memory. Only the
// bytes actually returned by the read are present; accessors report false for
// members that lie beyond them.
type Record struct {
	order  binary.ByteOrder
	schema *Struct
	data   []byte
	Addr   uint64
}

// NewRecord wraps data read from addr. data may be shorter than s.
func NewRecord(s *Struct, addr uint64, data []byte, order binary.ByteOrder) Record {
	if uint32(len(data)) > s.size {
		data = data[:s.size]
	}
	if order == nil {
		order = binary.NativeEndian
	}
	return Record{schema: s, Addr: addr, data: data, order: order}
}

func (r Record) Struct() *Struct { return r.schema }

// Bytes returns the valid prefix.
func (r Record) Bytes() []byte { return r.data }

// Valid returns the number of valid bytes.
func (r Record) Valid() uint32 { return uint32(len(r.data)) }

// Complete reports whether the whole structure is present.
func (r Record) Complete() bool {
	return r.schema != nil && uint32(len(r.data)) == r.schema.size
}

func (r Record) fits(i int) bool {
	off, size := r.schema.extent(i)
	return uint64(off)+uint64(size) <= uint64(len(r.data))
}

// Has reports whether the named member lies entirely within the valid prefix.
func (r Record) Has(name string) bool {
	i, ok := r.schema.index[name]
	return ok && r.fits(i)
}

// Uint returns the named scalar zero-extended to 64 bits.
func (r Record) Uint(name string) (uint64, bool) {
	i, ok := r.schema.index[name]
	if !ok || !r.fits(i) || !r.schema.Fields[i].Kind.IsScalar() {
		return 0, false
	}
	return r.scalar(r.schema.offsets[i], r.schema.Fields[i].Kind), true
}

// Int returns the named scalar sign-extended to 64 bits.
func (r Record) Int(name string) (int64, bool) {
	i, ok := r.schema.index[name]
	if !ok || !r.fits(i) || !r.schema.Fields[i].Kind.IsScalar() {
		return 0, false
	}
	k := r.schema.Fields[i].Kind
	return signExtend(r.scalar(r.schema.offsets[i], k), k.Width()), true
}

// Chars returns the raw bytes of a char array member.
func (r Record) Chars(name string) ([]byte, bool) {
	i, ok := r.schema.index[name]
	if !ok || !r.fits(i) || r.schema.Fields[i].Kind != KindChars {
		return nil, false
	}
	off, size := r.schema.extent(i)
	return r.data[off : off+size], true
}

// Sub returns the embedded structure member as its own record. A member that
// is only partly valid yields a partial record.
func (r Record) Sub(name string) (Record, bool) {
	i, ok := r.schema.index[name]
	if !ok {
		return Record{}, false
	}
	f := r.schema.Fields[i]
	if f.Kind != KindStruct || f.IsArray() {
		return Record{}, false
	}
	return r.elem(i, 0), true
}

// elem returns element j of member i, clipped to the valid prefix.
func (r Record) elem(i int, j uint32) Record {
	f := r.schema.Fields[i]
	size := f.Elem.size
	off := uint64(r.schema.offsets[i]) + uint64(j)*uint64(size)
	end := off + uint64(size)
	n := uint64(len(r.data))
	if off > n {
		off = n
	}
	if end > n {
		end = n
	}
	return Record{schema: f.Elem, Addr: r.Addr + off, data: r.data[off:end], order: r.order}
}

func (r Record) scalar(off uint32, k Kind) uint64 {
	b := r.data[off:]
	switch k.Width() {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(r.order.Uint16(b))
	case 4:
		return uint64(r.order.Uint32(b))
	default:
		return r.order.Uint64(b)
	}
}

func signExtend(v uint64, width uint32) int64 {
	switch width {
	case 1:
		return int64(int8(v))
	case 2:
		return int64(int16(v))
	case 4:
		return int64(int32(v))
	default:
		return int64(v)
	}
}
