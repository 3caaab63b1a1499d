package decode

import (
	"encoding/binary"
	"time"

	"github.com/wippyai/tracedecode/xlat"
)

// DefaultMaxDepth bounds pointer recursion when Config.MaxDepth is 0.
const DefaultMaxDepth = 8

// Config holds decoder configuration
type Config struct {
	// ByteOrder of the traced ABI. nil means the host order.
	ByteOrder binary.ByteOrder

	// Tables supplies the symbol tables. nil means xlat.Default.
	Tables *xlat.Tables

	// Location for timestamp comments. nil means UTC, which keeps output
	// independent of the host time zone.
	Location *time.Location

	// IfName resolves network interface indexes to names. nil prints the
	// plain index.
	IfName func(index int32) (string, bool)

	// MaxDepth limits how many traced pointers are followed from one
	// argument. 0 means DefaultMaxDepth; past the limit the address is
	// printed instead.
	MaxDepth int

	// Terse disables structure decoding, like strace without -v: every code
	// is reported as not handled and the caller prints the raw argument.
	Terse bool
}

func (c *Config) withDefaults() Config {
	var out Config
	if c != nil {
		out = *c
	}
	if out.ByteOrder == nil {
		out.ByteOrder = binary.NativeEndian
	}
	if out.Tables == nil {
		out.Tables = xlat.Default
	}
	if out.Location == nil {
		out.Location = time.UTC
	}
	if out.MaxDepth <= 0 {
		out.MaxDepth = DefaultMaxDepth
	}
	return out
}
