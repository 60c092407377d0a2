package structs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	structs "github.com/silentwarg/structs"
)

func statusType() *structs.Type {
	return structs.NewIDType("status", []structs.IDEntry{
		{Name: "PENDING", Value: 0},
		{Name: "ACTIVE", Value: 1},
		{Name: "CLOSED", Value: 2, IMatch: true},
	})
}

func TestIDInitInstallsFirstTableEntry(t *testing.T) {
	v, err := structs.New(statusType())
	require.NoError(t, err)
	defer structs.Free(v)

	text, err := structs.GetString(v, "")
	require.NoError(t, err)
	assert.Equal(t, "PENDING", text)
}

func TestIDAscifyOfUnknownValueIsInvalid(t *testing.T) {
	typ := statusType()
	v, err := structs.New(typ)
	require.NoError(t, err)
	defer structs.Free(v)

	data, err := structs.EncodeBinary(v)
	require.NoError(t, err)
	data[3] = 0x63 // corrupt the encoded value to one absent from the table

	decoded, _, err := structs.DecodeBinary(typ, data)
	require.NoError(t, err)
	defer structs.Free(decoded)

	text, err := structs.GetString(decoded, "")
	require.NoError(t, err)
	assert.Equal(t, "INVALID", text)
}

func TestIDBinifyRejectsUnknownName(t *testing.T) {
	v, err := structs.New(statusType())
	require.NoError(t, err)
	defer structs.Free(v)

	err = structs.SetString(v, "", "BOGUS")
	require.Error(t, err)
	var se *structs.Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, structs.ErrInvalid, se.Code)
}

func TestIDBinifyCaseInsensitiveMatch(t *testing.T) {
	v, err := structs.New(statusType())
	require.NoError(t, err)
	defer structs.Free(v)

	require.NoError(t, structs.SetString(v, "", "closed"))
	text, err := structs.GetString(v, "")
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", text)
}
