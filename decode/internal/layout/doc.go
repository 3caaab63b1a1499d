// Package layout computes C natural-alignment layouts for ABI structures.
//
// # Layout Rules
//
//   - Scalars: size equals alignment (u8=1, u32=4, u64=8)
//   - Arrays: element layout repeated, alignment of the element
//   - Structures: members laid out in order, each at the next multiple of its
//     alignment; the size is rounded up to the largest member alignment
//
// # Usage
//
//	info, err := layout.Struct([]layout.Member{{Name: "sec", Size: 8, Align: 8}, ...})
//	// info.Size, info.Align, info.FieldOffs available
//
// This package is internal to decode.
package layout
