// Package abi provides checked arithmetic for C ABI layout and for sizing reads
// from traced memory.
//
// Every size derived from traced data passes through these helpers, so a
// hostile count can never wrap an offset or size an oversized read.
//
// This package is internal to decode.
package abi
