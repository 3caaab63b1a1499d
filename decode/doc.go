// Package decode renders structured operation arguments read from traced
// memory.
//
// A Struct describes one fixed ABI structure: its members, their kinds and
// how each is printed. Layout follows C natural alignment, so a schema built
// from the kernel header's member list has the kernel's offsets and size.
//
//	var clockTime = decode.MustStruct("ptp_clock_time",
//	    decode.S64("sec"),
//	    decode.U32("nsec"),
//	    decode.Reserved("reserved", decode.KindU32, 1),
//	)
//
// Handlers use a Context to read and print structures. Context.Struct prints
// every visible member; Context.Fetch and Context.Fields give handlers that
// print in several steps finer control. Array prints a trailing array whose
// length comes from a header count, clamped to a fixed maximum. Phased splits
// a decode between the entry and exit of the traced call.
//
// # Reading Rules
//
// Each structure is fetched with one read. When no byte can be read the
// address is printed in place of the structure. When only a prefix can be
// read, members that lie entirely within it are printed and the marker
// "..." replaces the rest. Traced pointers are followed up to
// Config.MaxDepth levels. None of these conditions is an error: Decode
// always produces output and never panics on traced data.
//
// # Dispatch
//
// A Table maps operation codes to handlers. All codes of one Entry share its
// handler, which is how legacy and extended numberings of the same operation
// stay in step.
//
//	dec := decode.New(table)
//	res := dec.Decode(mem, sink, decode.Request{Code: code, Arg: addr, Phase: decode.PhaseEntry})
//	if res == decode.NeedExit {
//	    // call again with PhaseExit once the traced call returns
//	}
package decode
