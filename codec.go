package structs

// This file provides the top-level entry points for the binary codec
// described in spec §4.9: a presence-bitmap scheme that recursively omits
// fields and elements equal to their type's default. The per-class
// encode/decode bodies live alongside their other operations (array.go,
// fixedarray.go, struct.go, union.go, leaf_*.go); this file only supplies
// the public surface. The shared isDefault/presenceBitmap helpers are
// defined in array.go and used by the array, fixed-array and structure
// encoders.

// EncodeBinary produces v's compact binary form.
func EncodeBinary(v *Value) ([]byte, error) {
	b, err := v.typ.Ops.Encode(v.typ, v)
	if err != nil {
		return nil, wrapErr("", err)
	}
	return b, nil
}

// DecodeBinary parses data as a value of type t, reporting the number of
// bytes consumed so the caller may continue parsing a sibling value
// immediately following it in the same buffer.
func DecodeBinary(t *Type, data []byte) (*Value, int, error) {
	v := &Value{typ: t}
	n, err := t.Ops.Decode(t, data, v)
	if err != nil {
		return nil, 0, wrapErr("", err)
	}
	return v, n, nil
}
