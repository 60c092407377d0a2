package structs

import "encoding/binary"

// NewArrayType builds a variable-length array descriptor over elem.
func NewArrayType(label string, elem *Type) *Type {
	t := &Type{Label: label, Class: ClassArray}
	t.Args[0] = elem
	t.Ops = Ops{
		Init:   arrayInit,
		Copy:   arrayCopy,
		Equal:  arrayEqual,
		Ascify: notSupportedAscify,
		Binify: notSupportedBinify,
		Encode: arrayEncode,
		Decode: arrayDecode,
		Uninit: arrayUninit,
	}
	return t
}

func arrayInit(t *Type, v *Value) error {
	v.length = 0
	v.elems = nil
	return nil
}

func arrayCopy(t *Type, src, dst *Value) error {
	elem := t.ElemType()
	out := make([]*Value, 0, len(src.elems))
	for _, e := range src.elems {
		c := &Value{typ: elem}
		if err := elem.Ops.Copy(elem, e, c); err != nil {
			// Roll back everything copied so far.
			for _, done := range out {
				elem.Ops.Uninit(elem, done)
			}
			return err
		}
		out = append(out, c)
	}
	dst.elems = out
	dst.length = len(out)
	return nil
}

func arrayEqual(t *Type, a, b *Value) bool {
	if a.length != b.length {
		return false
	}
	elem := t.ElemType()
	for i := range a.elems {
		if !elem.Ops.Equal(elem, a.elems[i], b.elems[i]) {
			return false
		}
	}
	return true
}

func arrayUninit(t *Type, v *Value) {
	elem := t.ElemType()
	for _, e := range v.elems {
		elem.Ops.Uninit(elem, e)
	}
	v.elems = nil
	v.length = 0
}

// isDefault reports whether v equals a fresh default value of its type,
// used by the binary codec to decide which slots the presence bitmap omits
// (spec §4.9, invariant 4 "zero-default").
func isDefault(t *Type, v *Value) bool {
	def := &Value{typ: t}
	if err := t.Ops.Init(t, def); err != nil {
		return false
	}
	defer t.Ops.Uninit(t, def)
	return t.Ops.Equal(t, v, def)
}

func presenceBitmap(t *Type, elems []*Value) []byte {
	bm := make([]byte, (len(elems)+7)/8)
	for i, e := range elems {
		if !isDefault(t, e) {
			bm[i/8] |= 1 << uint(i%8)
		}
	}
	return bm
}

func bitSet(bm []byte, i int) bool {
	return bm[i/8]&(1<<uint(i%8)) != 0
}

func arrayEncode(t *Type, v *Value) ([]byte, error) {
	elem := t.ElemType()
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(v.length))
	out = append(out, presenceBitmap(elem, v.elems)...)
	for i, e := range v.elems {
		if isDefault(elem, e) {
			continue
		}
		_ = i
		b, err := elem.Ops.Encode(elem, e)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func arrayDecode(t *Type, data []byte, v *Value) (int, error) {
	elem := t.ElemType()
	if len(data) < 4 {
		return 0, errInvalid("", "truncated array length")
	}
	n := int(binary.BigEndian.Uint32(data))
	off := 4
	bmLen := (n + 7) / 8
	if len(data) < off+bmLen {
		return 0, errInvalid("", "truncated array presence bitmap")
	}
	bm := data[off : off+bmLen]
	off += bmLen

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

// ArrayLength returns the length of an array or fixed-array value.
func ArrayLength(v *Value) (int, error) {
	switch v.typ.Class {
	case ClassArray, ClassFixedArray:
		return v.length, nil
	default:
		return 0, errNotSupported("", "%s is not an array", v.typ)
	}
}

// ArrayReset empties a variable-length array, destroying every element.
// Fixed arrays cannot change length; call Reset on the value itself to
// reinitialize each element to its default instead.
func ArrayReset(v *Value) error {
	if v.typ.Class != ClassArray {
		return errNotSupported("", "%s does not support reset-to-empty", v.typ)
	}
	v.typ.Ops.Uninit(v.typ, v)
	return v.typ.Ops.Init(v.typ, v)
}

// ArrayInsert initializes a new element at index, shifting the tail right
// by one. 0 <= index <= length.
func ArrayInsert(v *Value, index int) error {
	if v.typ.Class != ClassArray {
		return errNotSupported("", "%s does not support insert", v.typ)
	}
	if index < 0 || index > v.length {
		return errDomain("", "insert index %d out of range [0,%d]", index, v.length)
	}
	elem := v.typ.ElemType()
	c := &Value{typ: elem}
	if err := elem.Ops.Init(elem, c); err != nil {
		return err
	}
	v.elems = append(v.elems, nil)
	copy(v.elems[index+1:], v.elems[index:])
	v.elems[index] = c
	v.length++
	return nil
}

// ArrayDelete destroys and removes the element at index, shifting the tail
// left by one. 0 <= index < length.
func ArrayDelete(v *Value, index int) error {
	if v.typ.Class != ClassArray {
		return errNotSupported("", "%s does not support delete", v.typ)
	}
	if index < 0 || index >= v.length {
		return errDomain("", "delete index %d out of range [0,%d)", index, v.length)
	}
	elem := v.typ.ElemType()
	elem.Ops.Uninit(elem, v.elems[index])
	copy(v.elems[index:], v.elems[index+1:])
	v.elems = v.elems[:v.length-1]
	v.length--
	return nil
}

// ArraySetSize grows or truncates a variable-length array to n elements.
// On truncation, discarded elements are destroyed. On growth, new slots are
// always brought to their type's default value: the owned-tree value model
// has no "all zero bytes" representation the way the original's POD memory
// did (an unboxed *Value has a nil prim, which every leaf Ops.Get*/Equal
// dereferences), so doInit is not read: Init runs on every new slot
// whatever its value.
func ArraySetSize(v *Value, n int, doInit bool) error {
	if v.typ.Class != ClassArray {
		return errNotSupported("", "%s does not support setsize", v.typ)
	}
	if n < 0 {
		return errDomain("", "negative size %d", n)
	}
	elem := v.typ.ElemType()
	switch {
	case n < v.length:
		for i := n; i < v.length; i++ {
			elem.Ops.Uninit(elem, v.elems[i])
		}
		v.elems = v.elems[:n]
	case n > v.length:
		for i := v.length; i < n; i++ {
			c := &Value{typ: elem}
			if err := elem.Ops.Init(elem, c); err != nil {
				for _, done := range v.elems[v.length:] {
					elem.Ops.Uninit(elem, done)
				}
				v.elems = v.elems[:v.length]
				return err
			}
			v.elems = append(v.elems, c)
		}
	}
	v.length = n
	return nil
}
