// Package filter implements the small text-charset adapters the "data"
// leaf type layers over an opaque byte blob: hexadecimal, base64, and
// quoted-printable. These mirror the original_source filter plumbing
// (structs_base64.h, structs_filter.c) named in spec.md §1 as an external
// collaborator, kept deliberately thin — there is no framing or streaming
// here, just a byte-slice-to-string conversion and its inverse.
package filter

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"mime/quotedprintable"
)

// EncodeHex renders data as lowercase hexadecimal.
func EncodeHex(data []byte) string {
	return hex.EncodeToString(data)
}

// DecodeHex parses lowercase or uppercase hexadecimal.
func DecodeHex(text string) ([]byte, error) {
	return hex.DecodeString(text)
}

// EncodeBase64 renders data as standard (RFC 4648) base64.
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// DecodeBase64 parses standard (RFC 4648) base64.
func DecodeBase64(text string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(text)
}

// EncodeQuotedPrintable renders data as quoted-printable text (RFC 2045).
func EncodeQuotedPrintable(data []byte) (string, error) {
	var buf bytes.Buffer
	w := quotedprintable.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// DecodeQuotedPrintable parses quoted-printable text (RFC 2045).
func DecodeQuotedPrintable(text string) ([]byte, error) {
	r := quotedprintable.NewReader(bytes.NewReader([]byte(text)))
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
