package b64

// IsValid reports whether text is well-formed content for the given variant.
// Every character must be part of the variant's alphabet (the padding
// character is allowed as well, its placement is not checked here). Variants
// with mandatory padding additionally require the length to be a multiple of
// four. The empty string is invalid under every policy.
//
// This is a syntactic pre-check only -- it performs no decoding.
func (c *Codec) IsValid(text string, variantID string) bool {
	if len(text) == 0 {
		return false
	}
	v := Resolve(variantID)
	t := c.table(v)

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == v.PadChar {
			continue
		}
		if _, ok := t.reverse[ch]; !ok {
			return false
		}
	}

	if v.Padding == PaddingMandatory {
		return len(text)%4 == 0
	}
	return true
}

// IsValid reports whether text is well-formed Base64 for the given variant,
// using the default engine.
func IsValid(text string, variantID string) bool {
	return Default.IsValid(text, variantID)
}
