package memory

import (
	"github.com/wippyai/tracedecode"
	"github.com/wippyai/tracedecode/errors"
)

// Status is the outcome of one read.
type Status uint8

const (
	StatusOK Status = iota
	StatusPartial
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusPartial:
		return "partial"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// StatusOf classifies the error returned by a Memory read.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.IsPartial(err):
		return StatusPartial
	default:
		return StatusUnavailable
	}
}

// ReadRecord describes one request seen by a Recorder.
type ReadRecord struct {
	Addr   uint64
	Length uint32
	Got    uint32
	Status Status
}

// Recorder logs the requests made against another Memory.
// It is not safe for concurrent use.
type Recorder struct {
	Mem   tracedecode.Memory
	reads []ReadRecord
}

// NewRecorder wraps mem.
func NewRecorder(mem tracedecode.Memory) *Recorder {
	return &Recorder{Mem: mem}
}

// Read forwards to the wrapped Memory and records the outcome.
func (r *Recorder) Read(addr uint64, length uint32) ([]byte, error) {
	data, err := r.Mem.Read(addr, length)
	r.reads = append(r.reads, ReadRecord{
		Addr:   addr,
		Length: length,
		Got:    uint32(len(data)),
		Status: StatusOf(err),
	})
	return data, err
}

// Reads returns the requests recorded since the last Reset.
func (r *Recorder) Reads() []ReadRecord {
	return append([]ReadRecord(nil), r.reads...)
}

// Reset discards recorded requests.
func (r *Recorder) Reset() {
	r.reads = r.reads[:0]
}
