package structs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ugorji/go/codec"

	structs "github.com/silentwarg/structs"
)

func rootDescriptor() *structs.Type {
	item := structs.NewStructType("item", []structs.StructField{
		{Name: "a", Type: structs.Uint32Type},
	})
	return structs.NewStructType("root", []structs.StructField{
		{Name: "arr", Type: structs.NewArrayType("arr", item)},
	})
}

// E5: JSON {"root":{"arr":[{"a":1},{"a":2}]}} against struct{arr:
// array<struct{a:int}>} at tag "root".
func TestE5LoadJSON(t *testing.T) {
	typ := rootDescriptor()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	doc := []byte(`{"root":{"arr":[{"a":1},{"a":2}]}}`)
	require.NoError(t, structs.LoadJSON(v, "root", doc))

	n, err := structs.ArrayLength(mustGet(t, v, "arr"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	a0, err := structs.GetString(v, "arr.0.a")
	require.NoError(t, err)
	assert.Equal(t, "1", a0)

	a1, err := structs.GetString(v, "arr.1.a")
	require.NoError(t, err)
	assert.Equal(t, "2", a1)
}

func TestLoadMsgpack(t *testing.T) {
	typ := rootDescriptor()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	var h codec.MsgpackHandle
	doc := map[string]any{
		"root": map[string]any{
			"arr": []any{
				map[string]any{"a": 5},
			},
		},
	}
	var data []byte
	require.NoError(t, codec.NewEncoderBytes(&data, &h).Encode(doc))

	require.NoError(t, structs.LoadMsgpack(v, "root", data))

	a0, err := structs.GetString(v, "arr.0.a")
	require.NoError(t, err)
	assert.Equal(t, "5", a0)
}

func TestLoaderRejectsMissingTag(t *testing.T) {
	typ := rootDescriptor()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	err = structs.LoadJSON(v, "root", []byte(`{"other":{}}`))
	require.Error(t, err)
	var se *structs.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, structs.ErrNotFound, se.Code)
}

func TestLoaderMaxDepthExceeded(t *testing.T) {
	typ := rootDescriptor()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	doc := []byte(`{"root":{"arr":[{"a":1}]}}`)
	err = structs.LoadJSON(v, "root", doc, structs.WithMaxDepth(1))
	require.Error(t, err)
	var se *structs.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, structs.ErrDepthExceeded, se.Code)
}

func TestLoaderBareScalarSwitchesUnionDefault(t *testing.T) {
	root := structs.NewStructType("root", []structs.StructField{
		{Name: "u", Type: xyUnionType()},
	})
	v, err := structs.New(root)
	require.NoError(t, err)
	defer structs.Free(v)

	require.NoError(t, structs.LoadJSON(v, "root", []byte(`{"root":{"u":9}}`)))
	name, err := structs.GetString(v, "u.field_name")
	require.NoError(t, err)
	assert.Equal(t, "x", name)
	got, err := structs.GetString(v, "u.x")
	require.NoError(t, err)
	assert.Equal(t, "9", got)
}

func mustGet(t *testing.T, v *structs.Value, path string) *structs.Value {
	t.Helper()
	got, err := structs.Get(v, path)
	require.NoError(t, err)
	return got
}
