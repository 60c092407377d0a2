package structs

import (
	"strconv"
	"strings"
)

// Separator is the single ASCII character joining path components. It is
// permitted to appear inside structure field names; see matchStructField.
const Separator = '.'

// Find resolves path inside v and returns the addressed sub-value,
// following spec §4.7. An empty path is the identity. Pointers are
// auto-dereferenced. When setUnion is true, resolving through a union
// whose next path component does not name the currently active variant
// performs a speculative switch (spec §4.6): a fresh value of the
// requested variant is built and the remainder of path is resolved inside
// it before anything is torn down, so a failing probe leaves v completely
// untouched. When setUnion is false, a mismatched union component is
// simply "not found" and Find never mutates v.
func Find(v *Value, path string, setUnion bool) (*Value, error) {
	return resolve(v, path, setUnion, false)
}

// Prep walks path exactly like Find with setUnion=true, except that when it
// encounters a variable-length array and the next component's index equals
// the array's current length, it inserts (and initializes) that element on
// demand instead of failing. This is what lets a caller build up an array
// by naming "arr.0", "arr.1", ... without pre-sizing it (spec §4.3). An
// index strictly greater than the current length is still "not found":
// Prep only ever grows an array by exactly one past its end at a time.
func Prep(v *Value, path string) (*Value, error) {
	return resolve(v, path, true, true)
}

func resolve(v *Value, path string, setUnion, prep bool) (*Value, error) {
	if path == "" {
		return v, nil
	}
	for v.typ.Class == ClassPointer {
		v = v.ref
	}
	switch v.typ.Class {
	case ClassPrimitive:
		return nil, errNotFound(path, "%s is a primitive and cannot be addressed into", v.typ)

	case ClassArray, ClassFixedArray:
		comp, rest := splitComponent(path)
		if comp == "length" {
			if rest != "" {
				return nil, errNotFound(path, "length has no sub-fields")
			}
			return lengthView(v.length), nil
		}
		idx, err := strconv.Atoi(comp)
		if err != nil || idx < 0 {
			return nil, errNotFound(path, "invalid array index %q", comp)
		}
		if v.typ.Class == ClassArray && prep && idx == v.length {
			if err := ArrayInsert(v, idx); err != nil {
				return nil, wrapErr(path, err)
			}
		} else if idx >= v.length {
			if prep {
				return nil, errNotFound(path, "index %d is more than one past length %d", idx, v.length)
			}
			return nil, errDomain(path, "index %d >= length %d", idx, v.length)
		}
		return resolve(v.elems[idx], rest, setUnion, prep)

	case ClassStructure:
		idx, rest, ok := matchStructField(v.typ.StructFields(), path)
		if !ok {
			return nil, errNotFound(path, "no such field")
		}
		return resolve(v.fields[idx], rest, setUnion, prep)

	case ClassUnion:
		comp, rest := splitComponent(path)
		if comp == "field_name" {
			if rest != "" {
				return nil, errNotFound(path, "field_name has no sub-fields")
			}
			name, err := ActiveFieldName(v)
			if err != nil {
				return nil, wrapErr(path, err)
			}
			return variantName(name), nil
		}
		if v.active != nil && v.active.Name == comp {
			return resolve(v.payload, rest, setUnion, prep)
		}
		if !setUnion {
			return nil, errNotFound(path, "field %q is not the active variant", comp)
		}
		return unionSwitch(v, comp, func(candidate *Value) (*Value, error) {
			return resolve(candidate, rest, setUnion, prep)
		})

	default:
		return nil, errInvalid(path, "unknown class %s", v.typ.Class)
	}
}

// splitComponent splits path on the first separator, used by classes
// (array, union) whose component names never themselves contain the
// separator. Structures are different; see matchStructField.
func splitComponent(path string) (comp, rest string) {
	if i := strings.IndexByte(path, Separator); i >= 0 {
		return path[:i], path[i+1:]
	}
	return path, ""
}

// matchStructField implements spec §4.7's structure rule: choose the field
// whose name is a prefix of path and is followed by end-of-path or a
// separator, tolerating field names that themselves contain the separator
// character. When more than one field qualifies, the longest name wins.
func matchStructField(fields []StructField, path string) (idx int, rest string, ok bool) {
	best := -1
	bestLen := -1
	for i, f := range fields {
		if !strings.HasPrefix(path, f.Name) {
			continue
		}
		after := path[len(f.Name):]
		if after != "" && after[0] != byte(Separator) {
			continue
		}
		if len(f.Name) > bestLen {
			bestLen = len(f.Name)
			best = i
		}
	}
	if best < 0 {
		return 0, "", false
	}
	after := path[len(fields[best].Name):]
	if after != "" {
		after = after[1:]
	}
	return best, after, true
}

// lengthView returns a detached snapshot Value exposing n through the
// canonical uint64 leaf type. It is a read-only view synthesized on demand,
// not a pointer into v's storage, since an array's length is not itself a
// stored child value (spec §4.7's "synthetic read-only uint descriptor").
func lengthView(n int) *Value {
	return &Value{typ: Uint64Type, prim: uint64(n)}
}
