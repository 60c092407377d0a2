package structs

// NewStructType builds a structure descriptor from an ordered field table.
// Field order is significant only for binary encoding (spec §4.7).
func NewStructType(label string, fields []StructField) *Type {
	t := &Type{Label: label, Class: ClassStructure}
	t.Args[0] = fields
	t.Ops = Ops{
		Init:   structInit,
		Copy:   structCopy,
		Equal:  structEqual,
		Ascify: notSupportedAscify,
		Binify: notSupportedBinify,
		Encode: structEncode,
		Decode: structDecode,
		Uninit: structUninit,
	}
	return t
}

func structInit(t *Type, v *Value) error {
	fields := t.StructFields()
	out := make([]*Value, len(fields))
	for i, f := range fields {
		c := &Value{typ: f.Type}
		if err := f.Type.Ops.Init(f.Type, c); err != nil {
			for j := 0; j < i; j++ {
				fields[j].Type.Ops.Uninit(fields[j].Type, out[j])
			}
			return err
		}
		out[i] = c
	}
	v.fields = out
	return nil
}

func structCopy(t *Type, src, dst *Value) error {
	fields := t.StructFields()
	out := make([]*Value, len(fields))
	for i, f := range fields {
		c := &Value{typ: f.Type}
		if err := f.Type.Ops.Copy(f.Type, src.fields[i], c); err != nil {
			for j := 0; j < i; j++ {
				fields[j].Type.Ops.Uninit(fields[j].Type, out[j])
			}
			return err
		}
		out[i] = c
	}
	dst.fields = out
	return nil
}

func structEqual(t *Type, a, b *Value) bool {
	fields := t.StructFields()
	for i, f := range fields {
		if !f.Type.Ops.Equal(f.Type, a.fields[i], b.fields[i]) {
			return false
		}
	}
	return true
}

func structUninit(t *Type, v *Value) {
	for _, c := range v.fields {
		if c != nil {
			c.typ.Ops.Uninit(c.typ, c)
		}
	}
	v.fields = nil
}

func structEncode(t *Type, v *Value) ([]byte, error) {
	fields := t.StructFields()
	bm := make([]byte, (len(fields)+7)/8)
	var payload []byte
	for i, f := range fields {
		if isDefault(f.Type, v.fields[i]) {
			continue
		}
		bm[i/8] |= 1 << uint(i%8)
		b, err := f.Type.Ops.Encode(f.Type, v.fields[i])
		if err != nil {
			return nil, err
		}
		payload = append(payload, b...)
	}
	return append(bm, payload...), nil
}

func structDecode(t *Type, data []byte, v *Value) (int, error) {
	fields := t.StructFields()
	bmLen := (len(fields) + 7) / 8
	if len(data) < bmLen {
		return 0, errInvalid("", "truncated structure presence bitmap")
	}
	bm := data[:bmLen]
	off := bmLen

	out := make([]*Value, len(fields))
	for i, f := range fields {
		c := &Value{typ: f.Type}
		if bitSet(bm, i) {
			consumed, err := f.Type.Ops.Decode(f.Type, data[off:], c)
			if err != nil {
				for j := 0; j < i; j++ {
					fields[j].Type.Ops.Uninit(fields[j].Type, out[j])
				}
				return 0, err
			}
			off += consumed
		} else if err := f.Type.Ops.Init(f.Type, c); err != nil {
			for j := 0; j < i; j++ {
				fields[j].Type.Ops.Uninit(fields[j].Type, out[j])
			}
			return 0, err
		}
		out[i] = c
	}
	v.fields = out
	return off, nil
}
