package structs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structs "github.com/silentwarg/structs"
)

func xyUnionType() *structs.Type {
	return structs.NewUnionType("u", []structs.UnionField{
		{Name: "x", Type: structs.Uint32Type},
		{Name: "y", Type: structs.StringType},
	})
}

// E3: a fresh union defaults to its first variant; set_string through the
// resolver switches variants, tearing down the old payload.
func TestE3UnionVariantSwitch(t *testing.T) {
	typ := xyUnionType()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	name, err := structs.ActiveFieldName(v)
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	require.NoError(t, structs.SetString(v, "y", "hello"))

	name, err = structs.ActiveFieldName(v)
	require.NoError(t, err)
	assert.Equal(t, "y", name)

	got, err := structs.GetString(v, "y")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	_, err = structs.Find(v, "x", false)
	require.Error(t, err)
}

func TestUnionEncodeDecodeRoundTrip(t *testing.T) {
	typ := xyUnionType()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)
	require.NoError(t, structs.SetString(v, "y", "round-trip"))

	data, err := structs.EncodeBinary(v)
	require.NoError(t, err)
	decoded, n, err := structs.DecodeBinary(typ, data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.True(t, structs.Equal(v, decoded))
}

func TestUnionSetAndFieldNamePath(t *testing.T) {
	typ := xyUnionType()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	require.NoError(t, structs.UnionSet(v, "y"))
	name, err := structs.GetString(v, "field_name")
	require.NoError(t, err)
	assert.Equal(t, "y", name)

	require.Error(t, structs.UnionSet(v, "nonexistent"))
}

// New always leaves a union with its default variant active; only a freed
// union reaches the spec §9 zero-union case, which ActiveFieldName rejects.
func TestFreshUnionHasActiveVariant(t *testing.T) {
	typ := xyUnionType()
	fresh, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(fresh)
	_, err = structs.ActiveFieldName(fresh)
	require.NoError(t, err)
}
