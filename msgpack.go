package structs

import (
	"reflect"

	"github.com/ugorji/go/codec"
)

var msgpackHandle = newMsgpackHandle()

func newMsgpackHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.MapType = reflect.TypeOf(map[string]any{})
	h.RawToString = true
	return h
}

// LoadMsgpack parses data as MessagePack and loads the element tagged tag
// into v, per spec §6's text formats ("maps for structures/unions, arrays
// for arrays, strings for all scalars").
func LoadMsgpack(v *Value, tag string, data []byte, opts ...LoaderOption) error {
	return decodeDocument(v, tag, data, msgpackHandle, opts...)
}
