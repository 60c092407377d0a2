package structs

// NewFixedArrayType builds a compile-time-fixed-length array descriptor of
// n elements of elem. Unlike NewArrayType, there is no insert/delete/
// setsize: the length is a constant carried in the descriptor itself.
func NewFixedArrayType(label string, elem *Type, n int) *Type {
	t := &Type{Label: label, Class: ClassFixedArray}
	t.Args[0] = elem
	t.Args[2] = n
	t.Ops = Ops{
		Init:   fixedArrayInit,
		Copy:   fixedArrayCopy,
		Equal:  arrayEqual,
		Ascify: notSupportedAscify,
		Binify: notSupportedBinify,
		Encode: fixedArrayEncode,
		Decode: fixedArrayDecode,
		Uninit: arrayUninit,
	}
	return t
}

func fixedArrayInit(t *Type, v *Value) error {
	elem := t.ElemType()
	n := t.FixedLen()
	elems := make([]*Value, n)
	for i := 0; i < n; i++ {
		c := &Value{typ: elem}
		if err := elem.Ops.Init(elem, c); err != nil {
			for j := 0; j < i; j++ {
				elem.Ops.Uninit(elem, elems[j])
			}
			return err
		}
		elems[i] = c
	}
	v.elems = elems
	v.length = n
	return nil
}

func fixedArrayCopy(t *Type, src, dst *Value) error {
	return arrayCopy(t, src, dst)
}

func fixedArrayEncode(t *Type, v *Value) ([]byte, error) {
	elem := t.ElemType()
	out := presenceBitmap(elem, v.elems)
	for _, e := range v.elems {
		if isDefault(elem, e) {
			continue
		}
		b, err := elem.Ops.Encode(elem, e)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func fixedArrayDecode(t *Type, data []byte, v *Value) (int, error) {
	elem := t.ElemType()
	n := t.FixedLen()
	bmLen := (n + 7) / 8
	if len(data) < bmLen {
		return 0, errInvalid("", "truncated fixed-array presence bitmap")
	}
	bm := data[:bmLen]
	off := bmLen

	elems := make([]*Value, n)
	for i := 0; i < n; i++ {
		c := &Value{typ: elem}
		if bitSet(bm, i) {
			consumed, err := elem.Ops.Decode(elem, data[off:], c)
			if err != nil {
				for j := 0; j < i; j++ {
					elem.Ops.Uninit(elem, elems[j])
				}
				return 0, err
			}
			off += consumed
		} else if err := elem.Ops.Init(elem, c); err != nil {
			for j := 0; j < i; j++ {
				elem.Ops.Uninit(elem, elems[j])
			}
			return 0, err
		}
		elems[i] = c
	}
	v.elems = elems
	v.length = n
	return off, nil
}
