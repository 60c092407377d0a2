package structs

import "strconv"

// BoolType is the canonical boolean leaf descriptor.
var BoolType = &Type{
	Label: "bool",
	Class: ClassPrimitive,
	Size:  1,
	Ops: Ops{
		Init: func(t *Type, v *Value) error { v.prim = false; return nil },
		Copy: func(t *Type, src, dst *Value) error { dst.prim = src.prim; return nil },
		Equal: func(t *Type, a, b *Value) bool {
			return a.prim.(bool) == b.prim.(bool)
		},
		Ascify: func(t *Type, v *Value) (string, error) {
			return strconv.FormatBool(v.prim.(bool)), nil
		},
		Binify: func(t *Type, text string, v *Value) error {
			b, err := strconv.ParseBool(text)
			if err != nil {
				return errInvalid("", "invalid bool %q", text)
			}
			v.prim = b
			return nil
		},
		Encode: func(t *Type, v *Value) ([]byte, error) {
			if v.prim.(bool) {
				return []byte{1}, nil
			}
			return []byte{0}, nil
		},
		Decode: func(t *Type, data []byte, v *Value) (int, error) {
			if len(data) < 1 {
				return 0, errInvalid("", "truncated bool")
			}
			v.prim = data[0] != 0
			return 1, nil
		},
		Uninit: nothingUninit,
	},
}
