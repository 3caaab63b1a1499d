package decode

import (
	"sort"

	"github.com/wippyai/tracedecode/errors"
)

// Code is one numeric operation code and its symbolic name.
type Code struct {
	Name  string
	Value uint32
}

// Entry binds every code of one logical operation to a single handler.
// Versioned duplicates of an operation are listed side by side in Codes and
// therefore decode identically.
type Entry struct {
	Handler Handler
	Tag     string
	Codes   []Code
}

// Table maps operation codes of one subsystem to their entries.
type Table struct {
	byValue map[uint32]*Entry
	byName  map[string]Code
	name    string
	entries []*Entry
}

// NewTable indexes entries. A code value or name used twice is an error.
func NewTable(name string, entries ...Entry) (*Table, error) {
	t := &Table{
		name:    name,
		byValue: make(map[uint32]*Entry),
		byName:  make(map[string]Code),
		entries: make([]*Entry, 0, len(entries)),
	}
	for i := range entries {
		e := entries[i]
		if e.Handler == nil {
			return nil, errors.New(errors.PhaseDispatch, errors.KindInvalidInput).
				Path(name, e.Tag).
				Detail("entry without handler").
				Build()
		}
		if len(e.Codes) == 0 {
			return nil, errors.New(errors.PhaseDispatch, errors.KindInvalidInput).
				Path(name, e.Tag).
				Detail("entry without codes").
				Build()
		}
		ep := &e
		for _, code := range e.Codes {
			if _, dup := t.byValue[code.Value]; dup {
				return nil, errors.Duplicate(errors.PhaseDispatch, "code", code.Name)
			}
			if _, dup := t.byName[code.Name]; dup {
				return nil, errors.Duplicate(errors.PhaseDispatch, "code name", code.Name)
			}
			t.byValue[code.Value] = ep
			t.byName[code.Name] = code
		}
		t.entries = append(t.entries, ep)
	}
	return t, nil
}

// MustTable is NewTable for package-level tables; it panics on error.
func MustTable(name string, entries ...Entry) *Table {
	t, err := NewTable(name, entries...)
	if err != nil {
		panic("decode: " + err.Error())
	}
	return t
}

// Name returns the subsystem name.
func (t *Table) Name() string { return t.name }

// Lookup finds the entry handling code.
func (t *Table) Lookup(code uint32) (*Entry, bool) {
	e, ok := t.byValue[code]
	return e, ok
}

// Resolve finds a code by its symbolic name.
func (t *Table) Resolve(name string) (Code, bool) {
	c, ok := t.byName[name]
	return c, ok
}

// CodeName returns the symbolic name of a code value.
func (t *Table) CodeName(v uint32) (string, bool) {
	e, ok := t.byValue[v]
	if !ok {
		return "", false
	}
	for _, c := range e.Codes {
		if c.Value == v {
			return c.Name, true
		}
	}
	return "", false
}

// Entries returns the entries in declaration order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		out[i] = *e
	}
	return out
}

// Codes returns every code sorted by value.
func (t *Table) Codes() []Code {
	out := make([]Code, 0, len(t.byName))
	for _, c := range t.byName {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Value < out[j].Value })
	return out
}
