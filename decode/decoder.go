package decode

import (
	"go.uber.org/zap"

	"github.com/wippyai/tracedecode"
)

// Phase is the point of the traced call a decode happens at.
type Phase uint8

const (
	PhaseEntry Phase = iota
	PhaseExit
)

func (p Phase) String() string {
	if p == PhaseEntry {
		return "entry"
	}
	return "exit"
}

// Result tells the caller what to do after a decode.
type Result uint8

const (
	// NotHandled means nothing was printed; the caller renders the raw
	// argument itself.
	NotHandled Result = iota
	// Handled means the argument is fully rendered.
	Handled
	// NeedExit means the decode must be resumed at exit.
	NeedExit
)

func (r Result) String() string {
	switch r {
	case Handled:
		return "handled"
	case NeedExit:
		return "need_exit"
	default:
		return "not_handled"
	}
}

// Request is one decode invocation.
type Request struct {
	// Known holds leading bytes of the argument the caller already copied
	// from the traced process.
	Known []byte

	// Arg is the argument, usually the traced address of a structure.
	Arg uint64

	// Code is the operation code.
	Code uint32

	// Len, when non-zero, limits the argument bytes consulted.
	Len uint32

	// Phase selects the entry or exit half.
	Phase Phase

	// Failed reports, at exit, that the traced call returned an error.
	Failed bool
}

// Decoder dispatches requests to the handlers of one Table. It is immutable
// and safe for concurrent use.
type Decoder struct {
	table *Table
	cfg   Config
}

// New creates a decoder with default configuration.
func New(t *Table) *Decoder {
	return NewWithConfig(t, nil)
}

// NewWithConfig creates a decoder. A nil cfg uses defaults.
func NewWithConfig(t *Table, cfg *Config) *Decoder {
	return &Decoder{table: t, cfg: cfg.withDefaults()}
}

func (d *Decoder) Table() *Table { return d.table }

// Config returns the effective configuration.
func (d *Decoder) Config() Config { return d.cfg }

// Decode renders the argument of req onto sink, reading traced memory
// through mem. Unreadable or short memory never fails a decode; it is
// reflected in the output.
func (d *Decoder) Decode(mem tracedecode.Memory, sink tracedecode.Sink, req Request) Result {
	if d.cfg.Terse {
		return NotHandled
	}
	e, ok := d.table.Lookup(req.Code)
	if !ok {
		Logger().Debug("unhandled code",
			zap.String("table", d.table.name),
			zap.Uint32("code", req.Code))
		return NotHandled
	}
	cfg := d.cfg
	return e.Handler.Handle(newContext(mem, sink, &cfg), req)
}
