package structs

// NewUnionType builds a tagged-variant descriptor from an ordered field
// table. The first entry is the default variant installed by Init. Two
// union values share a variant iff their active field is the identical
// *UnionField slot of this very table (pointer identity, not name
// comparison), per spec §3.3 invariant 5.
func NewUnionType(label string, fields []UnionField) *Type {
	t := &Type{Label: label, Class: ClassUnion}
	t.Args[0] = fields
	t.Ops = Ops{
		Init:   unionInit,
		Copy:   unionCopy,
		Equal:  unionEqual,
		Ascify: notSupportedAscify,
		Binify: notSupportedBinify,
		Encode: unionEncode,
		Decode: unionDecode,
		Uninit: unionUninit,
	}
	return t
}

func unionFieldByName(fields []UnionField, name string) *UnionField {
	for i := range fields {
		if fields[i].Name == name {
			return &fields[i]
		}
	}
	return nil
}

func unionInit(t *Type, v *Value) error {
	fields := t.UnionFields()
	if len(fields) == 0 {
		return errInvalid("", "%s has no variants", t)
	}
	def := &fields[0]
	payload := &Value{typ: def.Type}
	if err := def.Type.Ops.Init(def.Type, payload); err != nil {
		return err
	}
	v.active = def
	v.payload = payload
	return nil
}

func unionCopy(t *Type, src, dst *Value) error {
	if src.active == nil {
		return errInvalid("", "%s: cannot copy an uninitialized union", t)
	}
	payload := &Value{typ: src.active.Type}
	if err := src.active.Type.Ops.Copy(src.active.Type, src.payload, payload); err != nil {
		return err
	}
	dst.active = src.active
	dst.payload = payload
	return nil
}

func unionEqual(t *Type, a, b *Value) bool {
	if a.active != b.active {
		return false
	}
	if a.active == nil {
		return true
	}
	return a.active.Type.Ops.Equal(a.active.Type, a.payload, b.payload)
}

func unionUninit(t *Type, v *Value) {
	if v.active != nil {
		v.active.Type.Ops.Uninit(v.active.Type, v.payload)
		v.active = nil
		v.payload = nil
	}
}

// variantName is a transient Value of the canonical string leaf type, used
// purely to reuse that leaf's own wire format for a union's variant name
// (spec §4.6: "encode prefixes the variant's name via the string
// primitive's own encode").
func variantName(name string) *Value {
	return &Value{typ: StringType, prim: name}
}

func unionEncode(t *Type, v *Value) ([]byte, error) {
	if v.active == nil {
		return nil, errInvalid("", "%s: cannot encode an uninitialized union", t)
	}
	name, err := StringType.Ops.Encode(StringType, variantName(v.active.Name))
	if err != nil {
		return nil, err
	}
	payload, err := v.active.Type.Ops.Encode(v.active.Type, v.payload)
	if err != nil {
		return nil, err
	}
	return append(name, payload...), nil
}

func unionDecode(t *Type, data []byte, v *Value) (int, error) {
	nameVal := &Value{typ: StringType}
	consumed, err := StringType.Ops.Decode(StringType, data, nameVal)
	if err != nil {
		return 0, err
	}
	name := nameVal.prim.(string)

	fields := t.UnionFields()
	field := unionFieldByName(fields, name)
	if field == nil {
		return 0, errInvalid("", "%s: unknown variant %q in wire form", t, name)
	}
	payload := &Value{typ: field.Type}
	n, err := field.Type.Ops.Decode(field.Type, data[consumed:], payload)
	if err != nil {
		return 0, err
	}
	v.active = field
	v.payload = payload
	return consumed + n, nil
}

// ActiveFieldName returns the name of the union's currently active variant.
// Returns ErrInvalid if the union has no active variant (never initialized,
// or freed).
func ActiveFieldName(v *Value) (string, error) {
	if v.typ.Class != ClassUnion {
		return "", errNotSupported("", "%s is not a union", v.typ)
	}
	if v.active == nil {
		return "", errInvalid("", "union has no active variant")
	}
	return v.active.Name, nil
}

// UnionSet switches v, a union value, to the variant named name, tearing
// down the previously active variant only after the new one has been
// successfully constructed (write-through-temporary). The new variant is
// initialized to its type's default.
func UnionSet(v *Value, name string) error {
	if v.typ.Class != ClassUnion {
		return errNotSupported("", "%s is not a union", v.typ)
	}
	field := unionFieldByName(v.typ.UnionFields(), name)
	if field == nil {
		return errNotFound("", "no variant named %q", name)
	}
	payload := &Value{typ: field.Type}
	if err := field.Type.Ops.Init(field.Type, payload); err != nil {
		return err
	}
	if v.active != nil {
		v.active.Type.Ops.Uninit(v.active.Type, v.payload)
	}
	v.active = field
	v.payload = payload
	return nil
}

// unionSwitch implements the speculative variant switch described in spec
// §4.6: it allocates and initializes a fresh value of the requested
// variant's type, lets the caller (find.go) resolve the remainder of a path
// inside it, and only installs it in place of the old variant if that
// probe succeeds. On any failure the old variant is untouched.
func unionSwitch(v *Value, name string, probe func(candidate *Value) (*Value, error)) (*Value, error) {
	field := unionFieldByName(v.typ.UnionFields(), name)
	if field == nil {
		return nil, errNotFound("", "no variant named %q", name)
	}
	candidate := &Value{typ: field.Type}
	if err := field.Type.Ops.Init(field.Type, candidate); err != nil {
		return nil, err
	}
	result, err := probe(candidate)
	if err != nil {
		field.Type.Ops.Uninit(field.Type, candidate)
		return nil, err
	}
	if v.active != nil {
		v.active.Type.Ops.Uninit(v.active.Type, v.payload)
	}
	v.active = field
	v.payload = candidate
	return result, nil
}
