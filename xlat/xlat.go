// Package xlat translates numeric constants into their mnemonic names.
//
// Translators are total: every value renders as something. A value or bit set
// missing from its table is printed in hex alongside the caller's unknown
// marker, so the number can always be recovered from the output:
//
//	xlat.Flags(0x3, xlat.Default.PTPExttsFlags, "PTP_???")  // PTP_ENABLE_FEATURE|PTP_RISING_EDGE
//	xlat.Flags(0x30, xlat.Default.PTPExttsFlags, "PTP_???") // 0x30 /* PTP_??? */
//	xlat.Enum(0x9999, xlat.Default.ARPHardwareTypes, "ARPHRD_???")
//
// Tables are immutable after package initialisation and may be shared freely.
package xlat

import (
	"strconv"
	"strings"
)

// Pair maps one value to its name.
type Pair struct {
	Name  string
	Value uint64
}

// Table is an ordered set of Pairs. For flag tables the order is the order
// names are printed in.
type Table struct {
	index map[uint64]string
	Name  string
	Pairs []Pair
}

// NewTable builds a table. A value listed twice keeps its first name.
func NewTable(name string, pairs ...Pair) *Table {
	t := &Table{
		Name:  name,
		Pairs: pairs,
		index: make(map[uint64]string, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := t.index[p.Value]; !dup {
			t.index[p.Value] = p.Name
		}
	}
	return t
}

// Lookup returns the name of v.
func (t *Table) Lookup(v uint64) (string, bool) {
	if t == nil {
		return "", false
	}
	name, ok := t.index[v]
	return name, ok
}

// Sym is a translated value: the text to print and an optional comment the
// output sink attaches next to it.
type Sym struct {
	Text    string
	Comment string
}

func (s Sym) String() string {
	if s.Comment == "" {
		return s.Text
	}
	return s.Text + " /* " + s.Comment + " */"
}

// Hex formats v the way C's "%#x" does, so 0 prints as "0".
func Hex(v uint64) string {
	if v == 0 {
		return "0"
	}
	return "0x" + strconv.FormatUint(v, 16)
}

// Enum translates a single value.
func Enum(v uint64, t *Table, dflt string) Sym {
	if name, ok := t.Lookup(v); ok {
		return Sym{Text: name}
	}
	return Sym{Text: Hex(v), Comment: dflt}
}

// Flags translates a bit set. Matched names are joined with "|"; leftover bits
// follow as a hex remainder. If nothing matches the whole value is printed in
// hex with dflt as comment.
func Flags(v uint64, t *Table, dflt string) Sym {
	if v == 0 {
		if name, ok := t.Lookup(0); ok {
			return Sym{Text: name}
		}
		return Sym{Text: "0"}
	}

	var names []string
	rest := v
	if t != nil {
		for _, p := range t.Pairs {
			if p.Value != 0 && rest&p.Value == p.Value {
				names = append(names, p.Name)
				rest &^= p.Value
			}
		}
	}

	if len(names) == 0 {
		return Sym{Text: Hex(v), Comment: dflt}
	}
	if rest != 0 {
		names = append(names, Hex(rest))
	}
	return Sym{Text: strings.Join(names, "|")}
}
