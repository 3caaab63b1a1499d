// Package memory provides address spaces that implement tracedecode.Memory.
//
// # Buffer
//
// A set of mapped segments held in Go memory. Reads that run off the end of a
// mapping return the mapped prefix; reads of unmapped addresses fail:
//
//	mem := memory.NewBuffer(memory.Segment{Addr: 0x1000, Data: raw})
//
// # Wasm
//
// A WebAssembly guest's linear memory, so a sandboxed instance can stand in for
// a traced process:
//
//	mem := memory.WrapMemory(mod.ExportedMemory("memory"))
//
// # Process
//
// The address space of a live process, read with process_vm_readv(2) one page
// at a time so faults late in a range still yield the readable prefix. Linux only.
//
// # Recorder
//
// Wraps another Memory and logs every request, for tests and the CLI's
// --show-reads output.
package memory
