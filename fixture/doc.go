// Package fixture loads YAML scenarios: a memory image of a traced process
// plus a list of calls to decode against it.
//
//	config:
//	  byte_order: little
//	memory:
//	  - {addr: 0x1000, hex: "0100000002000000"}
//	  - {addr: 0x2000, size: 64}
//	calls:
//	  - subsystem: ioctl
//	    code: PTP_SYS_OFFSET
//	    arg: 0x1000
//	    expect: "{n_samples=1, ts=[...]}"
//
// Codes are given by name or number and are resolved against a Registry of
// decode tables. A Runner renders each call as one strace-style line and
// checks it against the optional expectation.
package fixture
