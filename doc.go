// Package tracedecode renders the structured arguments of traced operations.
//
// Given an operation code issued by a traced process and the address of its
// argument, the decoder reads the argument through a Memory and writes a
// strace-style rendering to a Sink, even when the memory is partly unreadable,
// shorter than the ABI structure, or carries a runtime-sized trailing array.
//
// # Architecture Overview
//
//	tracedecode/         Root package with the Memory and Sink interfaces
//	├── decode/          Schemas, field formatter, fixed/array/phased decoders, dispatch
//	├── memory/          Buffer, wazero guest memory and live-process readers
//	├── xlat/            Flag and enum translators with the bundled symbol tables
//	├── printer/         Plain and lipgloss-styled sinks
//	├── ptp/             PTP clock ioctl handlers
//	├── rtnl/            rtnetlink link message decoder
//	├── fixture/         YAML scenarios: memory image plus call list
//	├── errors/          Structured error types
//	└── cmd/tracedecode/ Command line front end
//
// # Quick Start
//
//	dec := decode.New(ptp.Table())
//	mem := memory.NewBuffer(memory.Segment{Addr: 0x1000, Data: caps})
//	out := printer.NewText()
//
//	res := dec.Decode(mem, out, decode.Request{
//	    Code:  ptp.ClockGetCaps,
//	    Arg:   0x1000,
//	    Phase: decode.PhaseExit,
//	})
//	fmt.Println(res, out.String())
//	// handled {max_adj=1, n_alarm=2, n_ext_ts=3, n_per_out=4, pps=5}
//
// # Reading Rules
//
//   - Unavailable memory: the raw address is printed and that sub-decode stops.
//   - Partial reads: only fields fully inside the returned prefix are printed,
//     followed by "...".
//   - Runtime counts are clamped to a published maximum before they size any read.
//
// # Thread Safety
//
// A Decoder is immutable once built and safe for concurrent use. Every call to
// Decode works on its own state; symbol tables are read-only.
package tracedecode
