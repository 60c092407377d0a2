package structs

import (
	"reflect"

	"github.com/ugorji/go/codec"
)

var jsonHandle = newJSONHandle()

func newJSONHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.MapType = reflect.TypeOf(map[string]any{})
	return h
}

// LoadJSON parses data as JSON and loads the element tagged tag into v,
// per spec §6's text formats ("object keys match structure/union field
// names; arrays are arrays; scalars are parsed via primitive binify").
func LoadJSON(v *Value, tag string, data []byte, opts ...LoaderOption) error {
	return decodeDocument(v, tag, data, jsonHandle, opts...)
}
