package tracedecode

// Memory is the address space of a traced subject.
//
// A full read returns all requested bytes and a nil error. A short read returns
// the readable prefix together with an error of kind partial. An unreadable
// address returns nil data and an error of kind unavailable. Implementations make
// a single attempt per call.
type Memory interface {
	Read(addr uint64, length uint32) ([]byte, error)
}

// Token classifies a piece of rendered output so sinks can style it.
type Token uint8

const (
	TokenPunct   Token = iota // {, }, [, ], "=", ", "
	TokenName                 // field names
	TokenValue                // numbers, mnemonics, addresses, strings
	TokenMarker               // "..." truncation marker
	TokenComment              // derived annotation, framed by the sink
)

var tokenNames = [...]string{
	TokenPunct:   "punct",
	TokenName:    "name",
	TokenValue:   "value",
	TokenMarker:  "marker",
	TokenComment: "comment",
}

func (t Token) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return "unknown"
}

// Sink is an append-only formatted text stream.
type Sink interface {
	Emit(tok Token, text string)
}
