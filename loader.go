package structs

import (
	"fmt"
	"strconv"

	"github.com/ugorji/go/codec"
)

// defaultMaxDepth bounds the loader's descent into a document when no
// LoaderOption overrides it (spec §4.10: "up to a bounded depth (e.g.
// 32)").
const defaultMaxDepth = 32

// LoaderOption configures a document-loading call.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	logger   Logger
	maxDepth int
}

// WithLoaderLogger supplies a diagnostic sink for the loader to report
// through. The core engine never logs; only the loader does, and only
// when given a non-null Logger.
func WithLoaderLogger(l Logger) LoaderOption {
	return func(c *loaderConfig) { c.logger = l }
}

// WithMaxDepth overrides the loader's stack-depth guard. Exceeding it is
// reported as ErrDepthExceeded, never a silent truncation or a Go stack
// overflow (spec §4.10: "exceeding the stack depth is an explicit error,
// not a recursion overflow").
func WithMaxDepth(n int) LoaderOption {
	return func(c *loaderConfig) { c.maxDepth = n }
}

func newLoaderConfig(opts []LoaderOption) *loaderConfig {
	c := &loaderConfig{logger: NullLogger{}, maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// decodeDocument parses data with h into a generic tree
// (map[string]interface{} / []interface{} / scalars) and drives the
// shared loader state machine over it, per spec §4.10: "a single state
// machine drives both JSON and MessagePack inputs." json.go and
// msgpack.go are thin adapters that only choose h.
func decodeDocument(v *Value, tag string, data []byte, h codec.Handle, opts ...LoaderOption) error {
	cfg := newLoaderConfig(opts)
	var doc any
	dec := codec.NewDecoderBytes(data, h)
	if err := dec.Decode(&doc); err != nil {
		return errInvalid(tag, "decode document: %v", err)
	}
	top, ok := doc.(map[string]any)
	if !ok {
		return errInvalid(tag, "top-level document must be an object")
	}
	node, ok := top[tag]
	if !ok {
		cfg.logger.Err("loader: top-level tag %q not present", tag)
		return errNotFound(tag, "top-level tag %q not present", tag)
	}
	cfg.logger.Debug("loader: entering tag %q", tag)
	return loadInto(v, tag, node, cfg, 1)
}

// loadInto is the shared state machine of spec §4.10, collapsed onto an
// already-decoded generic tree: each recursive call corresponds to one
// start/.../end cycle over the frame for dst.
func loadInto(dst *Value, path string, node any, cfg *loaderConfig, depth int) error {
	if depth > cfg.maxDepth {
		return errDepthExceeded(path, "loader depth exceeds %d", cfg.maxDepth)
	}
	for dst.typ.Class == ClassPointer {
		dst = dst.ref
	}
	switch dst.typ.Class {
	case ClassStructure, ClassUnion:
		m, ok := node.(map[string]any)
		if !ok {
			if dst.typ.Class == ClassUnion {
				return loadUnionScalar(dst, path, node, cfg)
			}
			return errInvalid(path, "expected an object for %s", dst.typ)
		}
		for key, child := range m {
			childPath := joinPath(path, key)
			target, err := Find(dst, key, true)
			if err != nil {
				return wrapErr(childPath, err)
			}
			if err := loadInto(target, childPath, child, cfg, depth+1); err != nil {
				return err
			}
		}
		return nil

	case ClassArray:
		arr, ok := node.([]any)
		if !ok {
			return errInvalid(path, "expected an array for %s", dst.typ)
		}
		if err := ArrayReset(dst); err != nil {
			return wrapErr(path, err)
		}
		for i, elemNode := range arr {
			if err := ArrayInsert(dst, i); err != nil {
				return wrapErr(path, err)
			}
			elemPath := fmt.Sprintf("%s.%d", path, i)
			if err := loadInto(dst.elems[i], elemPath, elemNode, cfg, depth+1); err != nil {
				return err
			}
		}
		return nil

	case ClassFixedArray:
		arr, ok := node.([]any)
		if !ok {
			return errInvalid(path, "expected an array for %s", dst.typ)
		}
		if len(arr) != dst.length {
			return errInvalid(path, "%s expects exactly %d elements, got %d", dst.typ, dst.length, len(arr))
		}
		for i, elemNode := range arr {
			elemPath := fmt.Sprintf("%s.%d", path, i)
			if err := loadInto(dst.elems[i], elemPath, elemNode, cfg, depth+1); err != nil {
				return err
			}
		}
		return nil

	case ClassPrimitive:
		text, err := scalarText(node)
		if err != nil {
			return errInvalid(path, "%v", err)
		}
		temp := &Value{typ: dst.typ}
		if err := dst.typ.Ops.Binify(dst.typ, text, temp); err != nil {
			return wrapErr(path, err)
		}
		dst.typ.Ops.Uninit(dst.typ, dst)
		*dst = *temp
		return nil

	default:
		return errInvalid(path, "unknown class %s", dst.typ.Class)
	}
}

// loadUnionScalar implements the bare-scalar union rule: a union node in
// the document that is not itself an object switches to the union's
// default variant and binifies into it, provided that variant is a
// primitive (spec §4.10 end()).
func loadUnionScalar(dst *Value, path string, node any, cfg *loaderConfig) error {
	fields := dst.typ.UnionFields()
	if len(fields) == 0 {
		return errInvalid(path, "%s has no variants", dst.typ)
	}
	def := &fields[0]
	if def.Type.Class != ClassPrimitive {
		return errInvalid(path, "%s: a bare scalar requires a primitive default variant", dst.typ)
	}
	text, err := scalarText(node)
	if err != nil {
		return errInvalid(path, "%v", err)
	}
	payload := &Value{typ: def.Type}
	if err := def.Type.Ops.Binify(def.Type, text, payload); err != nil {
		return wrapErr(path, err)
	}
	if dst.active != nil {
		dst.active.Type.Ops.Uninit(dst.active.Type, dst.payload)
	}
	dst.active = def
	dst.payload = payload
	cfg.logger.Debug("loader: %s switched to default variant %q via bare scalar", path, def.Name)
	return nil
}

// scalarText renders a decoded generic-tree scalar as the text every
// primitive's Binify expects, matching spec §6's "primitives always
// ascify/binify through their canonical text form, even when the outer
// container is MsgPack."
func scalarText(node any) (string, error) {
	switch n := node.(type) {
	case string:
		return n, nil
	case bool:
		return strconv.FormatBool(n), nil
	case int64:
		return strconv.FormatInt(n, 10), nil
	case uint64:
		return strconv.FormatUint(n, 10), nil
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(n), 'g', -1, 32), nil
	case int:
		return strconv.Itoa(n), nil
	case []byte:
		return string(n), nil
	case nil:
		return "", errInvalid("", "unexpected null scalar")
	default:
		return "", errInvalid("", "unsupported scalar type %T", node)
	}
}
