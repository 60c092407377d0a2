package structs

import (
	"bytes"
	"unicode/utf8"
)

// StringType is the canonical UTF-8 string leaf descriptor. Its wire form
// is null-terminated UTF-8 (spec §6: "Strings null-terminated"), reused
// directly by union.go to encode a variant's name.
var StringType = &Type{
	Label: "string",
	Class: ClassPrimitive,
	Ops: Ops{
		Init: func(t *Type, v *Value) error { v.prim = ""; return nil },
		Copy: func(t *Type, src, dst *Value) error { dst.prim = src.prim; return nil },
		Equal: func(t *Type, a, b *Value) bool {
			return a.prim.(string) == b.prim.(string)
		},
		Ascify: func(t *Type, v *Value) (string, error) {
			return v.prim.(string), nil
		},
		Binify: func(t *Type, text string, v *Value) error {
			if !utf8.ValidString(text) {
				return errInvalid("", "invalid UTF-8")
			}
			v.prim = text
			return nil
		},
		Encode: func(t *Type, v *Value) ([]byte, error) {
			s := v.prim.(string)
			if bytes.IndexByte([]byte(s), 0) >= 0 {
				return nil, errInvalid("", "string contains an embedded NUL byte")
			}
			out := make([]byte, len(s)+1)
			copy(out, s)
			return out, nil
		},
		Decode: func(t *Type, data []byte, v *Value) (int, error) {
			i := bytes.IndexByte(data, 0)
			if i < 0 {
				return 0, errInvalid("", "unterminated string")
			}
			if !utf8.Valid(data[:i]) {
				return 0, errInvalid("", "invalid UTF-8")
			}
			v.prim = string(data[:i])
			return i + 1, nil
		},
		Uninit: nothingUninit,
	},
}
