package structs

import "github.com/google/uuid"

// UUIDType is a 128-bit random/opaque identifier leaf, distinct from the
// symbolic name/value IDType (leaf_id.go): where an id leaf is always one
// of a fixed known set of named values, a uuid leaf has no enumerable
// table — any 16-byte value is valid. Grounded on the teacher's direct
// dependency on github.com/google/uuid.
var UUIDType = &Type{
	Label: "uuid",
	Class: ClassPrimitive,
	Size:  16,
	Ops: Ops{
		Init: func(t *Type, v *Value) error { v.prim = uuid.UUID{}; return nil },
		Copy: func(t *Type, src, dst *Value) error { dst.prim = src.prim; return nil },
		Equal: func(t *Type, a, b *Value) bool {
			return a.prim.(uuid.UUID) == b.prim.(uuid.UUID)
		},
		Ascify: func(t *Type, v *Value) (string, error) {
			return v.prim.(uuid.UUID).String(), nil
		},
		Binify: func(t *Type, text string, v *Value) error {
			id, err := uuid.Parse(text)
			if err != nil {
				return errInvalid("", "invalid uuid %q: %v", text, err)
			}
			v.prim = id
			return nil
		},
		Encode: func(t *Type, v *Value) ([]byte, error) {
			id := v.prim.(uuid.UUID)
			return id[:], nil
		},
		Decode: func(t *Type, data []byte, v *Value) (int, error) {
			if len(data) < 16 {
				return 0, errInvalid("", "truncated uuid")
			}
			var id uuid.UUID
			copy(id[:], data[:16])
			v.prim = id
			return 16, nil
		},
		Uninit: nothingUninit,
	},
}
