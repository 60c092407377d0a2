package structs

import (
	"encoding/binary"

	"github.com/silentwarg/structs/filter"
)

// DataCharset selects the text rendering of a "data" leaf — an opaque byte
// blob whose binary wire form (length-prefixed raw bytes) never changes,
// but whose Ascify/Binify behavior depends on which charset it was
// constructed with (spec §1's data leaf, supplemented per SPEC_FULL.md §7
// from original_source's structs_base64.h/structs_filter.c).
type DataCharset int

const (
	// DataCharsetBinary has no text rendering at all: Ascify/Binify return
	// ErrNotSupported, matching spec §7's example ("ascify of an opaque
	// blob without a charset").
	DataCharsetBinary DataCharset = iota
	DataCharsetHex
	DataCharsetBase64
	DataCharsetQuotedPrintable
)

// NewDataType builds a raw-byte-blob leaf descriptor with the given text
// charset.
func NewDataType(label string, charset DataCharset) *Type {
	t := &Type{Label: label, Class: ClassPrimitive}
	t.Args[0] = charset
	t.Ops = Ops{
		Init: func(t *Type, v *Value) error { v.prim = []byte(nil); return nil },
		Copy: func(t *Type, src, dst *Value) error {
			b := src.prim.([]byte)
			out := make([]byte, len(b))
			copy(out, b)
			dst.prim = out
			return nil
		},
		Equal: func(t *Type, a, b *Value) bool {
			ab, bb := a.prim.([]byte), b.prim.([]byte)
			if len(ab) != len(bb) {
				return false
			}
			for i := range ab {
				if ab[i] != bb[i] {
					return false
				}
			}
			return true
		},
		Ascify: func(t *Type, v *Value) (string, error) {
			b := v.prim.([]byte)
			switch charset {
			case DataCharsetHex:
				return filter.EncodeHex(b), nil
			case DataCharsetBase64:
				return filter.EncodeBase64(b), nil
			case DataCharsetQuotedPrintable:
				return filter.EncodeQuotedPrintable(b)
			default:
				return "", errNotSupported("", "%s has no text charset", t)
			}
		},
		Binify: func(t *Type, text string, v *Value) error {
			var b []byte
			var err error
			switch charset {
			case DataCharsetHex:
				b, err = filter.DecodeHex(text)
			case DataCharsetBase64:
				b, err = filter.DecodeBase64(text)
			case DataCharsetQuotedPrintable:
				b, err = filter.DecodeQuotedPrintable(text)
			default:
				return errNotSupported("", "%s has no text charset", t)
			}
			if err != nil {
				return errInvalid("", "invalid %s data: %v", t.Label, err)
			}
			v.prim = b
			return nil
		},
		Encode: func(t *Type, v *Value) ([]byte, error) {
			b := v.prim.([]byte)
			out := make([]byte, 4+len(b))
			binary.BigEndian.PutUint32(out, uint32(len(b)))
			copy(out[4:], b)
			return out, nil
		},
		Decode: func(t *Type, data []byte, v *Value) (int, error) {
			if len(data) < 4 {
				return 0, errInvalid("", "truncated data length")
			}
			n := int(binary.BigEndian.Uint32(data))
			if len(data) < 4+n {
				return 0, errInvalid("", "truncated data payload")
			}
			b := make([]byte, n)
			copy(b, data[4:4+n])
			v.prim = b
			return 4 + n, nil
		},
		Uninit: nothingUninit,
	}
	return t
}
