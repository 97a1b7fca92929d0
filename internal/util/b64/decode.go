package b64

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Decode converts Base64 text for the given variant back into bytes. The
// text is cleaned first; characters which are then still not part of the
// variant's alphabet contribute the value zero instead of aborting the
// decode. The result for such input is best-effort garbage rather than an
// error -- see DecodeStrict for the checked alternative.
//
// Empty input, or input that cleans down to nothing, decodes to an empty
// byte slice. Decode never fails.
func (c *Codec) Decode(text string, variantID string) []byte {
	v := Resolve(variantID)
	if len(text) == 0 {
		return []byte{}
	}

	cleaned := Clean(text, OptionsFor(v))
	if len(cleaned) == 0 {
		return []byte{}
	}

	t := c.table(v)

	// Up to two trailing padding characters shorten the final group.
	padding := 0
	for i := len(cleaned) - 1; i >= 0 && cleaned[i] == v.PadChar && padding < 2; i-- {
		padding++
	}

	out := make([]byte, 0, (len(cleaned)+3)/4*3)

	for i := 0; i < len(cleaned); i += 4 {
		var group uint32
		for k := 0; k < 4; k++ {
			group <<= 6
			if i+k < len(cleaned) {
				// Unknown characters (including the padding character,
				// which is deliberately absent from the reverse table
				// unless it doubles as an alphabet symbol) count as zero.
				group |= uint32(t.reverse[cleaned[i+k]])
			}
		}
		out = append(out, byte(group>>16), byte(group>>8), byte(group))
	}

	if padding > len(out) {
		padding = len(out)
	}
	return out[:len(out)-padding]
}

// Decode converts Base64 text into bytes using the default engine.
func Decode(text string, variantID string) []byte {
	return Default.Decode(text, variantID)
}

// DecodeStrict is the checked counterpart of Decode. The input is cleaned
// the same way, but instead of mapping unknown characters to zero every
// offending character -- and, for mandatory-padding variants, a broken
// length -- is reported. All problems are collected so the caller sees the
// full damage at once.
func (c *Codec) DecodeStrict(text string, variantID string) ([]byte, error) {
	v := Resolve(variantID)
	if len(text) == 0 {
		return nil, errors.Errorf("%s: empty input", v.ID)
	}

	cleaned := Clean(text, OptionsFor(v))
	if len(cleaned) == 0 {
		return nil, errors.Errorf("%s: input is empty after cleaning", v.ID)
	}

	t := c.table(v)

	var errs error
	for i := 0; i < len(cleaned); i++ {
		ch := cleaned[i]
		if ch == v.PadChar {
			continue
		}
		if _, ok := t.reverse[ch]; !ok {
			errs = multierror.Append(errs, errors.Errorf("%s: invalid character %q at offset %d", v.ID, ch, i))
		}
	}
	if v.Padding == PaddingMandatory && len(cleaned)%4 != 0 {
		errs = multierror.Append(errs, errors.Errorf("%s: length %d is not a multiple of 4", v.ID, len(cleaned)))
	}
	if errs != nil {
		return nil, errs
	}

	return c.Decode(cleaned, variantID), nil
}

// DecodeStrict decodes with full validation using the default engine.
func DecodeStrict(text string, variantID string) ([]byte, error) {
	return Default.DecodeStrict(text, variantID)
}
