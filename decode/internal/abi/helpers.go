package abi

import "math"

func SafeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

func SafeAddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

// SafeAddAddr offsets a traced address, failing on wrap-around.
func SafeAddAddr(addr uint64, off uint64) (uint64, bool) {
	if addr > math.MaxUint64-off {
		return 0, false
	}
	return addr + off, true
}

func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// Clamp limits a runtime count read from traced memory.
func Clamp(n uint64, max uint32) uint32 {
	if n > uint64(max) {
		return max
	}
	return uint32(n)
}

// Extent returns mult*n+add, or false when it does not fit in 32 bits.
func Extent(n, mult, add uint32) (uint32, bool) {
	v, ok := SafeMulU32(n, mult)
	if !ok {
		return 0, false
	}
	return SafeAddU32(v, add)
}

const (
	// MaxRecordSize bounds a single structure read.
	MaxRecordSize = 1 << 20
	// PointerSize is the width of a traced pointer.
	PointerSize = 8
)
