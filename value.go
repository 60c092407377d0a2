package structs

// Value is a live, owned instance of some Type. Values form a strict
// ownership tree: destroying a Value destroys every value it transitively
// owns. A Value must not be mutated concurrently with any other access to
// it; distinct Values may be accessed from distinct goroutines freely.
type Value struct {
	typ *Type

	// prim holds the primitive payload; its concrete Go type is private to
	// the leaf descriptor that produced it (see leaf_*.go).
	prim any

	// ref is the owned referent of a ClassPointer value.
	ref *Value

	// length and elems back ClassArray and ClassFixedArray values.
	length int
	elems  []*Value

	// fields backs ClassStructure values, parallel to Type.StructFields().
	fields []*Value

	// active and payload back ClassUnion values. active is nil exactly
	// when the union has never been initialized or has been freed (spec
	// §9's "zero union" open question).
	active  *UnionField
	payload *Value
}

// Type returns the descriptor for this value.
func (v *Value) Type() *Type { return v.typ }

// New allocates and initializes a fresh value of t.
func New(t *Type) (*Value, error) {
	v := &Value{typ: t}
	if err := t.Ops.Init(t, v); err != nil {
		return nil, wrapErr("", err)
	}
	return v, nil
}

// Reset destroys v's current contents and reinitializes it to t's default,
// in place.
func Reset(v *Value) error {
	v.typ.Ops.Uninit(v.typ, v)
	if err := v.typ.Ops.Init(v.typ, v); err != nil {
		return wrapErr("", err)
	}
	return nil
}

// Free releases every resource v transitively owns: arrays, structures and
// pointers are emptied and a union is left with no active variant. A
// primitive's payload is not cleared. Free is idempotent: calling it twice
// in a row is a no-op the second time.
func Free(v *Value) {
	v.typ.Ops.Uninit(v.typ, v)
}

// Copy produces an independently owned deep duplicate of v.
func Copy(v *Value) (*Value, error) {
	dst := &Value{typ: v.typ}
	if err := v.typ.Ops.Copy(v.typ, v, dst); err != nil {
		return nil, wrapErr("", err)
	}
	return dst, nil
}

// Equal reports whether a and b are structurally equal under their shared
// descriptor. Values of different types are never equal.
func Equal(a, b *Value) bool {
	if a.typ != b.typ {
		return false
	}
	return a.typ.Ops.Equal(a.typ, a, b)
}

// Get resolves path inside v and returns the addressed sub-value. The
// returned Value aliases storage inside v; mutating it mutates v. The
// synthetic "length" and "field_name" components are the exception: they
// return detached snapshots (see find.go). Get never
// mutates v, even when path would otherwise require a union variant switch
// to resolve (see Set).
func Get(v *Value, path string) (*Value, error) {
	return Find(v, path, false)
}

// Set resolves path inside v, switching union variants as needed, and
// replaces the addressed sub-value with a deep copy of src. Per the
// write-through-temporary discipline, the copy is built in a side buffer
// first; v is left untouched if src cannot be copied into the target's
// type, or if an intervening union variant switch fails.
func Set(v *Value, path string, src *Value) error {
	dst, err := Find(v, path, true)
	if err != nil {
		return err
	}
	if dst.typ != src.typ {
		return errInvalid(path, "type mismatch: target is %s, source is %s", dst.typ, src.typ)
	}
	temp := &Value{typ: dst.typ}
	if err := dst.typ.Ops.Copy(dst.typ, src, temp); err != nil {
		return wrapErr(path, err)
	}
	dst.typ.Ops.Uninit(dst.typ, dst)
	*dst = *temp
	return nil
}

// GetString resolves path inside v and renders the addressed primitive as
// text.
func GetString(v *Value, path string) (string, error) {
	dst, err := Find(v, path, false)
	if err != nil {
		return "", err
	}
	s, err := dst.typ.Ops.Ascify(dst.typ, dst)
	if err != nil {
		return "", wrapErr(path, err)
	}
	return s, nil
}

// SetString resolves path inside v, switching union variants as needed and
// appending an array element when an index equals the array's length (see
// Prep), and parses text into the addressed primitive, replacing it.
func SetString(v *Value, path, text string) error {
	dst, err := Prep(v, path)
	if err != nil {
		return err
	}
	temp := &Value{typ: dst.typ}
	if err := dst.typ.Ops.Binify(dst.typ, text, temp); err != nil {
		return wrapErr(path, err)
	}
	dst.typ.Ops.Uninit(dst.typ, dst)
	*dst = *temp
	return nil
}

// GetBinary resolves path inside v and produces its compact binary form.
func GetBinary(v *Value, path string) ([]byte, error) {
	dst, err := Find(v, path, false)
	if err != nil {
		return nil, err
	}
	b, err := dst.typ.Ops.Encode(dst.typ, dst)
	if err != nil {
		return nil, wrapErr(path, err)
	}
	return b, nil
}

// SetBinary resolves path inside v, switching union variants as needed,
// and decodes data into the addressed sub-value, replacing it. data must
// be consumed in full; trailing bytes are an error.
func SetBinary(v *Value, path string, data []byte) error {
	dst, err := Find(v, path, true)
	if err != nil {
		return err
	}
	temp := &Value{typ: dst.typ}
	n, err := dst.typ.Ops.Decode(dst.typ, data, temp)
	if err != nil {
		return wrapErr(path, err)
	}
	if n != len(data) {
		return errInvalid(path, "trailing data: consumed %d of %d bytes", n, len(data))
	}
	dst.typ.Ops.Uninit(dst.typ, dst)
	*dst = *temp
	return nil
}
