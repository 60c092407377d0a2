package structs

import (
	"math"
	"strconv"
)

// Float32Type and Float64Type are the canonical floating-point leaf
// descriptors. Wire form is the IEEE-754 bit pattern, big-endian.
var (
	Float32Type = newFloatType(32)
	Float64Type = newFloatType(64)
)

func newFloatType(bits int) *Type {
	width := bits / 8
	label := "float32"
	if bits == 64 {
		label = "float64"
	}
	return &Type{
		Label: label,
		Class: ClassPrimitive,
		Size:  uintptr(width),
		Ops: Ops{
			Init: func(t *Type, v *Value) error { v.prim = 0.0; return nil },
			Copy: func(t *Type, src, dst *Value) error { dst.prim = src.prim; return nil },
			Equal: func(t *Type, a, b *Value) bool {
				return a.prim.(float64) == b.prim.(float64)
			},
			Ascify: func(t *Type, v *Value) (string, error) {
				return strconv.FormatFloat(v.prim.(float64), 'g', -1, bits), nil
			},
			Binify: func(t *Type, text string, v *Value) error {
				f, err := strconv.ParseFloat(text, bits)
				if err != nil {
					return errInvalid("", "invalid %s %q", label, text)
				}
				v.prim = f
				return nil
			},
			Encode: func(t *Type, v *Value) ([]byte, error) {
				f := v.prim.(float64)
				if bits == 32 {
					return encodeBits(uint64(math.Float32bits(float32(f))), 4), nil
				}
				return encodeBits(math.Float64bits(f), 8), nil
			},
			Decode: func(t *Type, data []byte, v *Value) (int, error) {
				n, err := decodeBits(data, width)
				if err != nil {
					return 0, err
				}
				if bits == 32 {
					v.prim = float64(math.Float32frombits(uint32(n)))
				} else {
					v.prim = math.Float64frombits(n)
				}
				return width, nil
			},
			Uninit: nothingUninit,
		},
	}
}
