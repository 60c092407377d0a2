package structs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structs "github.com/silentwarg/structs"
)

func recordType() *structs.Type {
	return structs.NewStructType("record", []structs.StructField{
		{Name: "a", Type: structs.Uint32Type},
		{Name: "b", Type: structs.StringType},
		{Name: "arr", Type: structs.NewArrayType("arr", structs.Uint32Type)},
	})
}

// E1: set a handful of fields and read them back by path, and via Traverse.
func TestE1SetGetTraverse(t *testing.T) {
	typ := recordType()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	require.NoError(t, structs.SetString(v, "a", "7"))
	require.NoError(t, structs.SetString(v, "b", "hi"))
	require.NoError(t, structs.SetString(v, "arr.0", "100"))
	require.NoError(t, structs.SetString(v, "arr.1", "200"))

	a, err := structs.GetString(v, "a")
	require.NoError(t, err)
	assert.Equal(t, "7", a)

	b, err := structs.GetString(v, "b")
	require.NoError(t, err)
	assert.Equal(t, "hi", b)

	paths, err := structs.Traverse(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "arr.0", "arr.1"}, paths)

	length, err := structs.GetString(v, "arr.length")
	require.NoError(t, err)
	assert.Equal(t, "2", length)
}

// E4: prep grows a variable array exactly one slot past its current length.
func TestE4Prep(t *testing.T) {
	typ := structs.NewArrayType("arr", structs.Uint32Type)
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	_, err = structs.Prep(v, "0")
	require.NoError(t, err)
	n, err := structs.ArrayLength(v)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = structs.Prep(v, "2")
	require.Error(t, err)
	var se *structs.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, structs.ErrNotFound, se.Code)

	_, err = structs.Prep(v, "1")
	require.NoError(t, err)
	n, err = structs.ArrayLength(v)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

// Testable property 1: copy round-trip.
func TestCopyRoundTrip(t *testing.T) {
	typ := recordType()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)
	require.NoError(t, structs.SetString(v, "a", "42"))
	require.NoError(t, structs.SetString(v, "b", "hello"))
	require.NoError(t, structs.SetString(v, "arr.0", "9"))

	cp, err := structs.Copy(v)
	require.NoError(t, err)
	defer structs.Free(cp)
	assert.True(t, structs.Equal(v, cp))
}

// Testable property 4/5: uninit idempotence and zero == init for a leaf.
func TestUninitIdempotentZeroEqualsInit(t *testing.T) {
	v, err := structs.New(structs.Uint32Type)
	require.NoError(t, err)
	structs.Free(v)
	structs.Free(v) // must not panic or double-free

	zero, _, err := structs.DecodeBinary(structs.Uint32Type, []byte{0, 0, 0, 0})
	require.NoError(t, err)
	defer structs.Free(zero)
	fresh, err := structs.New(structs.Uint32Type)
	require.NoError(t, err)
	defer structs.Free(fresh)
	assert.True(t, structs.Equal(zero, fresh))
}

// Testable property 7: find is a pure view when set_union=false.
func TestFindIsPureView(t *testing.T) {
	typ := structs.NewUnionType("u", []structs.UnionField{
		{Name: "x", Type: structs.Uint32Type},
		{Name: "y", Type: structs.StringType},
	})
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	_, err = structs.Find(v, "y", false)
	require.Error(t, err)
	name, err := structs.ActiveFieldName(v)
	require.NoError(t, err)
	assert.Equal(t, "x", name)
}

// Testable property 8: a failing variant-switch probe leaves field_name
// unchanged.
func TestVariantSwitchAtomicity(t *testing.T) {
	typ := structs.NewUnionType("u", []structs.UnionField{
		{Name: "x", Type: structs.Uint32Type},
		{Name: "y", Type: structs.NewArrayType("arr", structs.Uint32Type)},
	})
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	_, err = structs.Find(v, "y.length.extra", true)
	require.Error(t, err)
	name, err := structs.ActiveFieldName(v)
	require.NoError(t, err)
	assert.Equal(t, "x", name)
}
