package structs

// NewPointerType builds a transparent owning-indirection descriptor over
// ref. Text, binary, and name-resolution operations delegate through to
// the referent; the pointer itself is invisible in every external form.
func NewPointerType(label string, ref *Type) *Type {
	t := &Type{
		Label: label,
		Class: ClassPointer,
	}
	t.Args[0] = ref
	t.Ops = Ops{
		Init:   pointerInit,
		Copy:   pointerCopy,
		Equal:  pointerEqual,
		Ascify: pointerAscify,
		Binify: pointerBinify,
		Encode: pointerEncode,
		Decode: pointerDecode,
		Uninit: pointerUninit,
	}
	return t
}

func pointerInit(t *Type, v *Value) error {
	ref := t.RefType()
	child := &Value{typ: ref}
	if err := ref.Ops.Init(ref, child); err != nil {
		return err
	}
	v.ref = child
	return nil
}

func pointerCopy(t *Type, src, dst *Value) error {
	ref := t.RefType()
	if src.ref == nil {
		dst.ref = nil
		return nil
	}
	child := &Value{typ: ref}
	if err := ref.Ops.Copy(ref, src.ref, child); err != nil {
		return err
	}
	dst.ref = child
	return nil
}

func pointerEqual(t *Type, a, b *Value) bool {
	if (a.ref == nil) != (b.ref == nil) {
		return false
	}
	if a.ref == nil {
		return true
	}
	ref := t.RefType()
	return ref.Ops.Equal(ref, a.ref, b.ref)
}

func pointerAscify(t *Type, v *Value) (string, error) {
	ref := t.RefType()
	return ref.Ops.Ascify(ref, v.ref)
}

func pointerBinify(t *Type, text string, v *Value) error {
	ref := t.RefType()
	child := &Value{typ: ref}
	if err := ref.Ops.Binify(ref, text, child); err != nil {
		return err
	}
	v.ref = child
	return nil
}

func pointerEncode(t *Type, v *Value) ([]byte, error) {
	ref := t.RefType()
	return ref.Ops.Encode(ref, v.ref)
}

func pointerDecode(t *Type, data []byte, v *Value) (int, error) {
	ref := t.RefType()
	child := &Value{typ: ref}
	n, err := ref.Ops.Decode(ref, data, child)
	if err != nil {
		return 0, err
	}
	v.ref = child
	return n, nil
}

func pointerUninit(t *Type, v *Value) {
	if v.ref != nil {
		ref := t.RefType()
		ref.Ops.Uninit(ref, v.ref)
		v.ref = nil
	}
}
