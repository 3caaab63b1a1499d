package xlat

import (
	"strconv"
	"strings"
	"testing"
)

func TestEnum(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		table *Table
		want  string
	}{
		{"known", 2, Default.AddressFamilies, "AF_INET"},
		{"zero named", 0, Default.AddressFamilies, "AF_UNSPEC"},
		{"unknown", 0x9999, Default.ARPHardwareTypes, "0x9999 /* ARPHRD_??? */"},
		{"high value", 0xffff, Default.ARPHardwareTypes, "ARPHRD_VOID"},
		{"nil table", 7, nil, "0x7 /* ARPHRD_??? */"},
		{"nil table zero", 0, nil, "0 /* ARPHRD_??? */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Enum(tt.value, tt.table, "ARPHRD_???").String()
			if got != tt.want {
				t.Errorf("Enum(%#x) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFlags(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		table *Table
		want  string
	}{
		{"single", 1, Default.PTPExttsFlags, "PTP_ENABLE_FEATURE"},
		{"two", 3, Default.PTPExttsFlags, "PTP_ENABLE_FEATURE|PTP_RISING_EDGE"},
		{"all", 0xf, Default.PTPExttsFlags, "PTP_ENABLE_FEATURE|PTP_RISING_EDGE|PTP_FALLING_EDGE|PTP_STRICT_FLAGS"},
		{"with remainder", 0x31, Default.PTPExttsFlags, "PTP_ENABLE_FEATURE|0x30"},
		{"no match", 0x30, Default.PTPExttsFlags, "0x30 /* PTP_??? */"},
		{"zero without name", 0, Default.PTPExttsFlags, "0"},
		{"zero with name", 0, Default.PTPPinFuncs, "PTP_PF_NONE"},
		{"iff", 0x11043, Default.InterfaceFlags, "IFF_UP|IFF_BROADCAST|IFF_RUNNING|IFF_MULTICAST|IFF_LOWER_UP"},
		{"nil table", 0x5, nil, "0x5 /* PTP_??? */"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flags(tt.value, tt.table, "PTP_???").String()
			if got != tt.want {
				t.Errorf("Flags(%#x) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestNewTableDuplicateKeepsFirst(t *testing.T) {
	tbl := NewTable("dup", Pair{"FIRST", 1}, Pair{"SECOND", 1})
	name, ok := tbl.Lookup(1)
	if !ok || name != "FIRST" {
		t.Errorf("Lookup(1) = %q, %v, want FIRST, true", name, ok)
	}
}

func TestHex(t *testing.T) {
	for v, want := range map[uint64]string{0: "0", 1: "0x1", 0xdeadbeef: "0xdeadbeef"} {
		if got := Hex(v); got != want {
			t.Errorf("Hex(%d) = %q, want %q", v, got, want)
		}
	}
}

// parseSym recovers the numeric value from translator output.
func parseSym(t *testing.T, s string, tbl *Table) uint64 {
	t.Helper()
	if i := strings.Index(s, " /* "); i >= 0 {
		s = s[:i]
	}
	byName := make(map[string]uint64, len(tbl.Pairs))
	for _, p := range tbl.Pairs {
		byName[p.Name] = p.Value
	}
	var v uint64
	for _, part := range strings.Split(s, "|") {
		if n, ok := byName[part]; ok {
			v |= n
			continue
		}
		n, err := strconv.ParseUint(part, 0, 64)
		if err != nil {
			t.Fatalf("cannot parse %q in %q: %v", part, s, err)
		}
		v |= n
	}
	return v
}

func TestValueRecoverable(t *testing.T) {
	values := []uint64{0, 1, 2, 0x7, 0x10, 0x31, 0xff, 0x80000000, 1<<64 - 1}
	tables := []*Table{
		Default.PTPExttsFlags,
		Default.PTPPeroutFlags,
		Default.InterfaceFlags,
	}
	for _, tbl := range tables {
		for _, v := range values {
			got := parseSym(t, Flags(v, tbl, "X_???").String(), tbl)
			if got != v {
				t.Errorf("%s: Flags(%#x) parsed back to %#x", tbl.Name, v, got)
			}
		}
	}

	for _, v := range []uint64{0, 1, 772, 0x9999, 0xfffe} {
		got := parseSym(t, Enum(v, Default.ARPHardwareTypes, "ARPHRD_???").String(), Default.ARPHardwareTypes)
		if got != v {
			t.Errorf("Enum(%#x) parsed back to %#x", v, got)
		}
	}
}
