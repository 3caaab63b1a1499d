package decode

// Kind is the storage class of a structure member.
type Kind uint8

const (
	KindU8 Kind = iota
	KindS8
	KindU16
	KindS16
	KindU32
	KindS32
	KindU64
	KindS64
	KindChars  // fixed-size NUL-padded character array
	KindStruct // embedded structure, rendered inline
	KindPtr    // traced-process pointer to a structure
)

var kindNames = [...]string{
	KindU8:     "u8",
	KindS8:     "s8",
	KindU16:    "u16",
	KindS16:    "s16",
	KindU32:    "u32",
	KindS32:    "s32",
	KindU64:    "u64",
	KindS64:    "s64",
	KindChars:  "chars",
	KindStruct: "struct",
	KindPtr:    "ptr",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether k is an integer kind.
func (k Kind) IsScalar() bool {
	return k <= KindS64
}

// Signed reports whether k is a signed integer kind.
func (k Kind) Signed() bool {
	switch k {
	case KindS8, KindS16, KindS32, KindS64:
		return true
	default:
		return false
	}
}

// Width returns the size of one scalar or pointer, or 0 for aggregate kinds.
func (k Kind) Width() uint32 {
	switch k {
	case KindU8, KindS8, KindChars:
		return 1
	case KindU16, KindS16:
		return 2
	case KindU32, KindS32:
		return 4
	case KindU64, KindS64, KindPtr:
		return 8
	default:
		return 0
	}
}
