package b64

import (
	"encoding/hex"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ToBytes normalizes text to a byte sequence. Text that validates as
// standard Base64 is decoded; anything else is returned as its raw bytes.
func (c *Codec) ToBytes(text string) []byte {
	if c.IsValid(text, Standard.ID) {
		return c.Decode(text, Standard.ID)
	}
	return []byte(text)
}

// NormalizeBytes runs bytes through an encode/decode round trip under the
// standard variant. This reproduces the way arbitrary binary input is
// normalized before text conversion.
func (c *Codec) NormalizeBytes(data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}
	return c.Decode(c.Encode(data, Standard.ID), Standard.ID)
}

// ToText decodes Base64 text under the standard variant and reinterprets the
// resulting bytes in the requested character set: "ascii", "utf-8" (the
// default), "utf-16", "latin-1" (or "iso-8859-1") or "hex". Unknown
// character sets fall back to utf-8. Trailing NUL characters are stripped
// from the result. Like Decode, this never fails -- untranscodable bytes
// degrade to their raw utf-8 interpretation.
func (c *Codec) ToText(text string, charset string) string {
	return renderText(c.Decode(text, Standard.ID), charset)
}

// BytesToText converts already-decoded bytes to text in the requested
// character set. The bytes are first normalized through an encode/decode
// round trip, mirroring ToText on strings.
func (c *Codec) BytesToText(data []byte, charset string) string {
	return renderText(c.NormalizeBytes(data), charset)
}

func renderText(data []byte, charset string) string {
	var out string

	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "hex":
		out = hex.EncodeToString(data)
	case "ascii", "latin-1", "latin1", "iso-8859-1":
		if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data); err == nil {
			out = string(decoded)
		} else {
			out = string(data)
		}
	case "utf-16", "utf16":
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		if decoded, err := dec.Bytes(data); err == nil {
			out = string(decoded)
		} else {
			out = string(data)
		}
	default:
		// utf-8 and anything unrecognized
		out = string(data)
	}

	return strings.TrimRight(out, "\x00")
}

// ToBytes normalizes text to bytes using the default engine.
func ToBytes(text string) []byte {
	return Default.ToBytes(text)
}

// ToText decodes and transcodes text using the default engine.
func ToText(text string, charset string) string {
	return Default.ToText(text, charset)
}

// BytesToText converts bytes to text using the default engine.
func BytesToText(data []byte, charset string) string {
	return Default.BytesToText(data, charset)
}
