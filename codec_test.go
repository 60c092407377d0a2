package structs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structs "github.com/silentwarg/structs"
)

// E2: literal encode layout for { a: uint32, b: string, arr: array<uint32> }.
func TestE2EncodeLayout(t *testing.T) {
	typ := recordType()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	require.NoError(t, structs.SetString(v, "a", "7"))
	require.NoError(t, structs.SetString(v, "b", "hi"))
	require.NoError(t, structs.SetString(v, "arr.0", "100"))
	require.NoError(t, structs.SetString(v, "arr.1", "200"))

	data, err := structs.EncodeBinary(v)
	require.NoError(t, err)

	expected := []byte{
		0x07,                   // structure presence bitmap: a, b, arr all set
		0x00, 0x00, 0x00, 0x07, // a = 7, big-endian uint32
		'h', 'i', 0x00, // b = "hi\0"
		0x00, 0x00, 0x00, 0x02, // arr length = 2
		0x03,                   // arr per-element presence bitmap: both set
		0x00, 0x00, 0x00, 0x64, // arr.0 = 100
		0x00, 0x00, 0x00, 0xC8, // arr.1 = 200
	}
	assert.Equal(t, expected, data)

	decoded, n, err := structs.DecodeBinary(typ, data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.True(t, structs.Equal(v, decoded))
}

// Testable property 2: encode round-trip for a record whose fields are all
// at their defaults.
func TestEncodeDecodeRoundTrip(t *testing.T) {
	typ := recordType()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)
	require.NoError(t, structs.SetString(v, "a", "0"))
	require.NoError(t, structs.SetString(v, "b", ""))

	data, err := structs.EncodeBinary(v)
	require.NoError(t, err)
	decoded, n, err := structs.DecodeBinary(typ, data)
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.True(t, structs.Equal(v, decoded))
}

// Testable property 6: a defaulted field and an explicit-equal-to-default
// field encode identically.
func TestDefaultOmissionIsLossless(t *testing.T) {
	typ := recordType()
	fresh, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(fresh)

	explicit, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(explicit)
	require.NoError(t, structs.SetString(explicit, "a", "0"))

	freshBytes, err := structs.EncodeBinary(fresh)
	require.NoError(t, err)
	explicitBytes, err := structs.EncodeBinary(explicit)
	require.NoError(t, err)
	assert.Equal(t, freshBytes, explicitBytes)
}

// Testable property 3: ascify/binify round-trip for primitives.
func TestAscifyRoundTrip(t *testing.T) {
	colorType := structs.NewIDType("color", []structs.IDEntry{
		{Name: "red", Value: 1},
		{Name: "green", Value: 2},
		{Name: "blue", Value: 3, IMatch: true},
	})

	cases := []struct {
		typ  *structs.Type
		text string
	}{
		{structs.Uint32Type, "123"},
		{structs.Int32Type, "-42"},
		{structs.BoolType, "true"},
		{structs.StringType, "hello world"},
		{structs.Float64Type, "3.25"},
		{structs.IP4Type, "192.0.2.1"},
		{structs.IP6Type, "2001:db8::1"},
		{structs.EtherType, "01:02:03:04:05:06"},
		{structs.TimeType, "2024-01-02T03:04:05.000000006Z"},
		{colorType, "green"},
		{structs.UUIDType, "f47ac10b-58cc-0372-8567-0e02b2c3d479"},
	}
	for _, c := range cases {
		v, err := structs.New(c.typ)
		require.NoError(t, err)
		require.NoError(t, structs.SetString(v, "", c.text))
		got, err := structs.GetString(v, "")
		require.NoError(t, err)
		assert.Equal(t, c.text, got)
		structs.Free(v)
	}
}
