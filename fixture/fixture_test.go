package fixture

import (
	"encoding/binary"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/wippyai/tracedecode/decode"
	"github.com/wippyai/tracedecode/errors"
	"github.com/wippyai/tracedecode/memory"
	"github.com/wippyai/tracedecode/printer"
	"github.com/wippyai/tracedecode/ptp"
)

func TestTestdata(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no scenarios in testdata")
	}
	for _, path := range files {
		t.Run(filepath.Base(path), func(t *testing.T) {
			f, err := Load(path, nil)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			out := printer.NewText()
			rep := NewRunner(f, nil).RunAll(f, out)
			for _, o := range rep.Mismatches() {
				t.Errorf("%s(%s):\n got  %q\n want %q", o.Call.Subsystem, o.Call.Name, o.Arg, *o.Call.Expect)
			}
			if rep.Failed != len(rep.Mismatches()) {
				t.Errorf("Failed = %d, mismatches = %d", rep.Failed, len(rep.Mismatches()))
			}
			if n := strings.Count(out.String(), "\n"); n != len(f.Calls) {
				t.Errorf("%d lines for %d calls", n, len(f.Calls))
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		terse bool
		order binary.ByteOrder
		depth int
		zone  string
	}{
		{
			name:  "defaults",
			src:   "calls: []",
			order: nil,
		},
		{
			name:  "big endian terse",
			src:   "config: {verbose: false, byte_order: big, max_depth: 3}",
			terse: true,
			order: binary.BigEndian,
			depth: 3,
		},
		{
			name:  "timezone",
			src:   "config: {byte_order: LE, timezone: UTC}",
			order: binary.LittleEndian,
			zone:  "UTC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.src), nil)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if f.Config.Terse != tt.terse {
				t.Errorf("Terse = %v, want %v", f.Config.Terse, tt.terse)
			}
			if f.Config.ByteOrder != tt.order {
				t.Errorf("ByteOrder = %v, want %v", f.Config.ByteOrder, tt.order)
			}
			if f.Config.MaxDepth != tt.depth {
				t.Errorf("MaxDepth = %d, want %d", f.Config.MaxDepth, tt.depth)
			}
			if tt.zone != "" && (f.Config.Location == nil || f.Config.Location.String() != tt.zone) {
				t.Errorf("Location = %v, want %s", f.Config.Location, tt.zone)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind errors.Kind
	}{
		{"bad yaml", "calls: [", errors.KindInvalidData},
		{"byte order", "config: {byte_order: middle}", errors.KindInvalidInput},
		{"negative depth", "config: {max_depth: -1}", errors.KindInvalidInput},
		{"bad zone", "config: {timezone: Nowhere/Atlantis}", errors.KindInvalidData},
		{"empty region", "memory: [{addr: 0x10}]", errors.KindInvalidInput},
		{"hex and size", `memory: [{addr: 0x10, size: 4, hex: "00"}]`, errors.KindInvalidInput},
		{"bad hex", `memory: [{addr: 0x10, hex: "zz"}]`, errors.KindInvalidInput},
		{"overlap", "memory: [{addr: 0x10, size: 8}, {addr: 0x14, size: 8}]", errors.KindInvalidInput},
		{"subsystem", "calls: [{subsystem: fcntl, code: F_GETFL}]", errors.KindInvalidInput},
		{"code", "calls: [{subsystem: ioctl, code: PTP_BOGUS}]", errors.KindInvalidInput},
		{"phase", "calls: [{subsystem: ioctl, code: PTP_ENABLE_PPS, phases: [middle]}]", errors.KindInvalidInput},
		{"known", `calls: [{subsystem: netlink-route, code: RTM_GETLINK, known: "x"}]`, errors.KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), nil)
			if err == nil {
				t.Fatal("expected error")
			}
			e, ok := err.(*errors.Error)
			if !ok {
				t.Fatalf("error %T is not structured: %v", err, err)
			}
			if e.Phase != errors.PhaseLoad || e.Kind != tt.kind {
				t.Errorf("got %v/%v, want load/%v: %v", e.Phase, e.Kind, tt.kind, err)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("Load = %v", err)
	}
}

func TestResolveCode(t *testing.T) {
	tests := []struct {
		in   string
		want decode.Code
		ok   bool
	}{
		{"PTP_SYS_OFFSET", decode.Code{Name: "PTP_SYS_OFFSET", Value: ptp.SysOffset}, true},
		{"0x40043d04", decode.Code{Name: "PTP_ENABLE_PPS", Value: ptp.EnablePPS}, true},
		{"12345", decode.Code{Name: "0x3039", Value: 12345}, true},
		{"", decode.Code{}, false},
		{"PTP_NOPE", decode.Code{}, false},
		{"0x1ffffffff", decode.Code{}, false},
	}
	for _, tt := range tests {
		got, err := ResolveCode(ptp.Table(), tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ResolveCode(%q) error = %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ResolveCode(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestDefaultPhases(t *testing.T) {
	f, err := Parse([]byte("calls: [{subsystem: ioctl, code: PTP_SYS_OFFSET, arg: 0x10}]"), nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []decode.Phase{decode.PhaseEntry, decode.PhaseExit}
	if diff := cmp.Diff(want, f.Calls[0].Phases); diff != "" {
		t.Errorf("phases mismatch (-want +got):\n%s", diff)
	}
}

func runOne(t *testing.T, src string) (string, Outcome) {
	t.Helper()
	f, err := Parse([]byte(src), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out := printer.NewText()
	o := NewRunner(f, nil).Run(f.Calls[0], out)
	return out.String(), o
}

func TestRunLine(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		line   string
		result decode.Result
		match  bool
	}{
		{
			name:   "handled",
			src:    "calls: [{subsystem: ioctl, code: PTP_ENABLE_PPS, arg: 1}]",
			line:   "ioctl(PTP_ENABLE_PPS, 1) = 0",
			result: decode.Handled,
			match:  true,
		},
		{
			name:   "unknown code",
			src:    "calls: [{subsystem: ioctl, code: '0x1234', arg: 0xbeef}]",
			line:   "ioctl(0x1234, 0xbeef) = 0",
			result: decode.NotHandled,
			match:  true,
		},
		{
			name:   "failed",
			src:    "calls: [{subsystem: ioctl, code: PTP_CLOCK_GETCAPS, arg: 0x50, failed: true}]",
			line:   "ioctl(PTP_CLOCK_GETCAPS, 0x50) = -1",
			result: decode.Handled,
			match:  true,
		},
		{
			name:   "entry only",
			src:    "calls: [{subsystem: ioctl, code: PTP_CLOCK_GETCAPS, arg: 0x50, phases: [entry]}]",
			line:   "ioctl(PTP_CLOCK_GETCAPS, <unfinished ...>",
			result: decode.NeedExit,
			match:  true,
		},
		{
			name:   "terse",
			src:    "{config: {verbose: false}, calls: [{subsystem: ioctl, code: PTP_ENABLE_PPS, arg: 1}]}",
			line:   "ioctl(PTP_ENABLE_PPS, 0x1) = 0",
			result: decode.NotHandled,
			match:  true,
		},
		{
			name:   "expectation fails",
			src:    "calls: [{subsystem: ioctl, code: PTP_ENABLE_PPS, arg: 1, expect: '2'}]",
			line:   "ioctl(PTP_ENABLE_PPS, 1) = 0",
			result: decode.Handled,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, o := runOne(t, tt.src)
			if line != tt.line {
				t.Errorf("line %q, want %q", line, tt.line)
			}
			if o.Result != tt.result {
				t.Errorf("result %v, want %v", o.Result, tt.result)
			}
			if o.Match != tt.match {
				t.Errorf("match %v, want %v", o.Match, tt.match)
			}
		})
	}
}

func TestRunnerOverrideMemory(t *testing.T) {
	f, err := Parse([]byte(`
config: {byte_order: little}
memory: [{addr: 0x2000, hex: "0a00010002000000"}]
calls:
  - {subsystem: netlink-route, code: RTM_GETLINK, arg: 0x2000, len: 8}
`), nil)
	if err != nil {
		t.Fatal(err)
	}

	live := memory.NewBuffer()
	if err := f.CopyTo(bufferWriter{live}); err != nil {
		t.Fatal(err)
	}
	rec := memory.NewRecorder(live)

	out := printer.NewText()
	o := NewRunner(f, rec).Run(f.Calls[0], out)
	if want := "{ifi_family=AF_INET6, ifi_type=ARPHRD_ETHER, ifi_index=2, ...}"; o.Arg != want {
		t.Errorf("arg %q, want %q", o.Arg, want)
	}
	want := []memory.ReadRecord{{Addr: 0x2000, Length: 8, Got: 8, Status: memory.StatusOK}}
	if diff := cmp.Diff(want, rec.Reads()); diff != "" {
		t.Errorf("reads mismatch (-want +got):\n%s", diff)
	}
}

// bufferWriter maps each write as a new segment.
type bufferWriter struct{ b *memory.Buffer }

func (w bufferWriter) Write(addr uint64, data []byte) error {
	return w.b.Map(addr, append([]byte(nil), data...))
}
