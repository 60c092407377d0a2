// Package structs is a data-reflection and serialization toolkit for
// arbitrary, recursively composed structured values.
//
// At its center is a runtime type descriptor graph (Type) that tells a
// small engine how to initialize, copy, compare, traverse, name-address,
// textually render, textually parse, and binary-encode any value whose
// shape is described by that graph. Descriptor graphs are constant and may
// be shared and referenced cyclically across goroutines; a single live
// Value must not be mutated concurrently with any other access to it.
package structs
