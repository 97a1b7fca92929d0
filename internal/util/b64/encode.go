package b64

import (
	"strings"
)

// Encode converts a byte sequence into Base64 text for the given variant.
// Input bytes are taken in groups of three and emitted as four 6-bit symbols
// from the variant's alphabet; a short final group emits two symbols for one
// byte and three symbols for two bytes. Unless the variant's policy is
// PaddingNone the final quantum is filled up with the padding character.
//
// The result is passed through Clean with the variant's default options, so
// encoder output is always valid for variants with optional or mandatory
// padding. Empty input encodes to the empty string.
func (c *Codec) Encode(data []byte, variantID string) string {
	v := Resolve(variantID)
	if len(data) == 0 {
		return ""
	}
	t := c.table(v)

	var sb strings.Builder
	sb.Grow(((len(data) + 2) / 3) * 4)

	for i := 0; i < len(data); i += 3 {
		rest := len(data) - i

		// Pack up to 3 bytes into a 24-bit big-endian group.
		group := uint32(data[i]) << 16
		if rest > 1 {
			group |= uint32(data[i+1]) << 8
		}
		if rest > 2 {
			group |= uint32(data[i+2])
		}

		sb.WriteByte(t.forward[group>>18&0x3f])
		sb.WriteByte(t.forward[group>>12&0x3f])
		if rest > 1 {
			sb.WriteByte(t.forward[group>>6&0x3f])
		}
		if rest > 2 {
			sb.WriteByte(t.forward[group&0x3f])
		}
	}

	out := sb.String()
	if v.Padding != PaddingNone {
		for len(out)%4 != 0 {
			out += string(v.PadChar)
		}
	}

	return Clean(out, OptionsFor(v))
}

// EncodeString encodes the UTF-8 bytes of s.
func (c *Codec) EncodeString(s string, variantID string) string {
	return c.Encode([]byte(s), variantID)
}

// Encode converts bytes to Base64 text using the default engine.
func Encode(data []byte, variantID string) string {
	return Default.Encode(data, variantID)
}

// EncodeString encodes the UTF-8 bytes of s using the default engine.
func EncodeString(s string, variantID string) string {
	return Default.EncodeString(s, variantID)
}
