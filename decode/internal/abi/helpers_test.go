package abi

import (
	"math"
	"testing"
)

func TestSafeMulU32(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint32
		want   uint32
		wantOK bool
	}{
		{"zero * zero", 0, 0, 0, true},
		{"zero * max", 0, math.MaxUint32, 0, true},
		{"max * zero", math.MaxUint32, 0, 0, true},
		{"small * small", 100, 200, 20000, true},
		{"max * one", math.MaxUint32, 1, math.MaxUint32, true},
		{"overflow", math.MaxUint32, 2, 0, false},
		{"overflow symmetric", 2, math.MaxUint32, 0, false},
		{"edge case ok", 65536, 65535, 65536 * 65535, true},
		{"edge case overflow", 65536, 65537, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeMulU32(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Errorf("SafeMulU32(%d, %d) ok = %v, want %v", tt.a, tt.b, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("SafeMulU32(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSafeAddU32(t *testing.T) {
	tests := []struct {
		name   string
		a, b   uint32
		want   uint32
		wantOK bool
	}{
		{"zero", 0, 0, 0, true},
		{"max + zero", math.MaxUint32, 0, math.MaxUint32, true},
		{"max - 1 + 1", math.MaxUint32 - 1, 1, math.MaxUint32, true},
		{"overflow", math.MaxUint32, 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SafeAddU32(tt.a, tt.b)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("SafeAddU32(%d, %d) = %d, %v, want %d, %v", tt.a, tt.b, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestSafeAddAddr(t *testing.T) {
	if v, ok := SafeAddAddr(0x1000, 16); !ok || v != 0x1010 {
		t.Errorf("SafeAddAddr(0x1000, 16) = %#x, %v", v, ok)
	}
	if _, ok := SafeAddAddr(math.MaxUint64-4, 8); ok {
		t.Error("SafeAddAddr should fail on wrap")
	}
}

func TestAlignTo(t *testing.T) {
	tests := []struct {
		offset, align, want uint32
	}{
		{0, 8, 0},
		{1, 8, 8},
		{8, 8, 8},
		{9, 4, 12},
		{3, 1, 3},
		{5, 0, 5},
	}
	for _, tt := range tests {
		if got := AlignTo(tt.offset, tt.align); got != tt.want {
			t.Errorf("AlignTo(%d, %d) = %d, want %d", tt.offset, tt.align, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		n    uint64
		max  uint32
		want uint32
	}{
		{0, 25, 0},
		{24, 25, 24},
		{25, 25, 25},
		{26, 25, 25},
		{math.MaxUint32, 25, 25},
		{math.MaxUint64, 25, 25},
	}
	for _, tt := range tests {
		if got := Clamp(tt.n, tt.max); got != tt.want {
			t.Errorf("Clamp(%d, %d) = %d, want %d", tt.n, tt.max, got, tt.want)
		}
	}
}

func TestExtent(t *testing.T) {
	tests := []struct {
		name         string
		n, mult, add uint32
		want         uint32
		wantOK       bool
	}{
		{"sys offset", 25, 2, 1, 51, true},
		{"extended", 25, 3, 0, 75, true},
		{"empty", 0, 2, 1, 1, true},
		{"mul overflow", math.MaxUint32, 2, 0, 0, false},
		{"add overflow", math.MaxUint32, 1, 1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extent(tt.n, tt.mult, tt.add)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("Extent(%d, %d, %d) = %d, %v, want %d, %v", tt.n, tt.mult, tt.add, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
