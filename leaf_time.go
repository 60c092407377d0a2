package structs

import "time"

// TimeType is the timestamp leaf descriptor. Text form is RFC3339Nano,
// wire form is big-endian Unix nanoseconds (8 bytes), grounded on
// original_source's time leaf per SPEC_FULL.md §4. time.Time stays on the
// standard library: no example repo in the pack carries a calendar/clock
// dependency worth adopting in its place.
var TimeType = &Type{
	Label: "time",
	Class: ClassPrimitive,
	Size:  8,
	Ops: Ops{
		Init: func(t *Type, v *Value) error { v.prim = time.Unix(0, 0).UTC(); return nil },
		Copy: func(t *Type, src, dst *Value) error { dst.prim = src.prim; return nil },
		Equal: func(t *Type, a, b *Value) bool {
			return a.prim.(time.Time).Equal(b.prim.(time.Time))
		},
		Ascify: func(t *Type, v *Value) (string, error) {
			return v.prim.(time.Time).Format(time.RFC3339Nano), nil
		},
		Binify: func(t *Type, text string, v *Value) error {
			tm, err := time.Parse(time.RFC3339Nano, text)
			if err != nil {
				return errInvalid("", "invalid time %q", text)
			}
			v.prim = tm.UTC()
			return nil
		},
		Encode: func(t *Type, v *Value) ([]byte, error) {
			return encodeBits(uint64(v.prim.(time.Time).UnixNano()), 8), nil
		},
		Decode: func(t *Type, data []byte, v *Value) (int, error) {
			n, err := decodeBits(data, 8)
			if err != nil {
				return 0, err
			}
			v.prim = time.Unix(0, int64(n)).UTC()
			return 8, nil
		},
		Uninit: nothingUninit,
	},
}
