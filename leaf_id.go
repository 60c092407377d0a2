package structs

import "strings"

// IDEntry is one row of an id leaf's symbolic name/value table, mirroring
// original_source's `struct structs_id { id, value, imatch }` (structs_type_id.c).
type IDEntry struct {
	Name  string
	Value uint32
	// IMatch makes Binify compare Name case-insensitively, matching the
	// original's id->imatch ? strcasecmp : strcmp dispatch.
	IMatch bool
}

// NewIDType builds a symbolic identifier leaf: a uint32 wire value that only
// ever takes on one of the names in entries. Init installs entries[0]'s
// value (the original's structs_id_init takes "ids[0].value" as the
// default), Ascify renders the matching name or "INVALID" if the stored
// value isn't in the table, and Binify accepts only a name present in the
// table. entries must be non-empty.
func NewIDType(label string, entries []IDEntry) *Type {
	t := &Type{Label: label, Class: ClassPrimitive, Size: 4}
	t.Args[0] = entries
	t.Ops = Ops{
		Init: func(t *Type, v *Value) error {
			v.prim = t.Args[0].([]IDEntry)[0].Value
			return nil
		},
		Copy: func(t *Type, src, dst *Value) error { dst.prim = src.prim; return nil },
		Equal: func(t *Type, a, b *Value) bool {
			return a.prim.(uint32) == b.prim.(uint32)
		},
		Ascify: func(t *Type, v *Value) (string, error) {
			value := v.prim.(uint32)
			for _, id := range t.Args[0].([]IDEntry) {
				if id.Value == value {
					return id.Name, nil
				}
			}
			return "INVALID", nil
		},
		Binify: func(t *Type, text string, v *Value) error {
			for _, id := range t.Args[0].([]IDEntry) {
				name := id.Name
				match := name == text
				if id.IMatch {
					match = strings.EqualFold(name, text)
				}
				if match {
					v.prim = id.Value
					return nil
				}
			}
			return errInvalid("", "invalid value %q", text)
		},
		Encode: func(t *Type, v *Value) ([]byte, error) {
			return encodeBits(uint64(v.prim.(uint32)), 4), nil
		},
		Decode: func(t *Type, data []byte, v *Value) (int, error) {
			n, err := decodeBits(data, 4)
			if err != nil {
				return 0, err
			}
			v.prim = uint32(n)
			return 4, nil
		},
		Uninit: nothingUninit,
	}
	return t
}
