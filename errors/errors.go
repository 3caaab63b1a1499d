package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRead     Phase = "read"     // traced memory access
	PhaseDecode   Phase = "decode"   // structure rendering
	PhaseDispatch Phase = "dispatch" // operation table construction and lookup
	PhaseLoad     Phase = "load"     // scenario and module loading
	PhaseAttach   Phase = "attach"   // opening a traced subject
)

// Kind categorizes the error
type Kind string

const (
	KindUnavailable  Kind = "unavailable"
	KindPartial      Kind = "partial"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindOverflow     Kind = "overflow"
	KindInvalidInput Kind = "invalid_input"
	KindInvalidData  Kind = "invalid_data"
	KindNotFound     Kind = "not_found"
	KindUnsupported  Kind = "unsupported"
	KindDuplicate    Kind = "duplicate"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
	Addr   uint64
	// HasAddr distinguishes address 0 from no address.
	HasAddr bool
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.HasAddr {
		fmt.Fprintf(&b, " @%#x", e.Addr)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Addr sets the traced address
func (b *Builder) Addr(addr uint64) *Builder {
	b.err.Addr = addr
	b.err.HasAddr = true
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for traced memory access

// Unavailable reports that no byte at addr could be read.
func Unavailable(addr uint64, length uint32, cause error) *Error {
	return &Error{
		Phase:   PhaseRead,
		Kind:    KindUnavailable,
		Addr:    addr,
		HasAddr: true,
		Detail:  fmt.Sprintf("cannot read %d bytes", length),
		Cause:   cause,
	}
}

// Partial reports a short read; Value holds the number of bytes returned.
func Partial(addr uint64, want, got uint32) *Error {
	return &Error{
		Phase:   PhaseRead,
		Kind:    KindPartial,
		Addr:    addr,
		HasAddr: true,
		Detail:  fmt.Sprintf("read %d of %d bytes", got, want),
		Value:   got,
	}
}

// IsUnavailable reports whether err is an unavailable read.
func IsUnavailable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindUnavailable
}

// IsPartial reports whether err is a short read.
func IsPartial(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindPartial
}

// PartialCount returns the byte count carried by a partial read error.
func PartialCount(err error) (uint32, bool) {
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindPartial {
		return 0, false
	}
	n, ok := e.Value.(uint32)
	return n, ok
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, limit any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Detail: fmt.Sprintf("value %v exceeds %v", value, limit),
		Value:  value,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Duplicate creates an error for a key registered twice
func Duplicate(phase Phase, what string, key any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicate,
		Detail: fmt.Sprintf("%s %v registered twice", what, key),
		Value:  key,
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Load creates a scenario or module loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// Attach creates an error for a traced subject that cannot be opened
func Attach(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseAttach,
		Kind:   KindUnavailable,
		Detail: detail,
		Cause:  cause,
	}
}
