package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/silentwarg/structs/filter"
)

func TestHexRoundTrip(t *testing.T) {
	data := []byte{0xde, 0xad, 0xbe, 0xef}
	text := filter.EncodeHex(data)
	assert.Equal(t, "deadbeef", text)
	got, err := filter.DecodeHex(text)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestBase64RoundTrip(t *testing.T) {
	data := []byte("hello, world")
	text := filter.EncodeBase64(data)
	got, err := filter.DecodeBase64(text)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestQuotedPrintableRoundTrip(t *testing.T) {
	data := []byte("caf\xc3\xa9 tab\there")
	text, err := filter.EncodeQuotedPrintable(data)
	require.NoError(t, err)
	got, err := filter.DecodeQuotedPrintable(text)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDecodeHexInvalid(t *testing.T) {
	_, err := filter.DecodeHex("not hex")
	assert.Error(t, err)
}
