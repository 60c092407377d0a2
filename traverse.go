package structs

import "strconv"

// Traverse enumerates every leaf path of v — every path whose descriptor is
// a primitive after auto-dereferencing pointers (spec §4.8). Structure
// fields are joined with Separator; array elements are joined as decimal
// indices; a union contributes its active variant's name as one path
// component before descending into it.
func Traverse(v *Value) ([]string, error) {
	var out []string
	if err := traverseInto(v, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func traverseInto(v *Value, prefix string, out *[]string) error {
	for v.typ.Class == ClassPointer {
		v = v.ref
	}
	switch v.typ.Class {
	case ClassPrimitive:
		*out = append(*out, prefix)
		return nil

	case ClassArray, ClassFixedArray:
		for i, e := range v.elems {
			if err := traverseInto(e, joinPath(prefix, strconv.Itoa(i)), out); err != nil {
				return err
			}
		}
		return nil

	case ClassStructure:
		fields := v.typ.StructFields()
		for i, f := range fields {
			if err := traverseInto(v.fields[i], joinPath(prefix, f.Name), out); err != nil {
				return err
			}
		}
		return nil

	case ClassUnion:
		if v.active == nil {
			return errInvalid(prefix, "cannot traverse an uninitialized union")
		}
		return traverseInto(v.payload, joinPath(prefix, v.active.Name), out)

	default:
		return errInvalid(prefix, "unknown class %s", v.typ.Class)
	}
}

func joinPath(prefix, comp string) string {
	if prefix == "" {
		return comp
	}
	return prefix + string(Separator) + comp
}
