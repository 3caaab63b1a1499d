// Package ptp decodes the ioctl arguments of PTP hardware clocks
// (/dev/ptpN).
//
// Each operation is registered under its legacy number and its "2"
// renumbering; both decode identically. Structures the kernel fills in are
// decoded at exit, requests the caller fills in at entry, and the sample
// queries split across both:
//
//	ioctl(fd, PTP_SYS_OFFSET, {n_samples=3, ts=[{sec=..., nsec=...}, ...]})
//	                          ^ entry       ^ exit
//
// Sample arrays are clamped to MaxSamples no matter what n_samples says.
package ptp
