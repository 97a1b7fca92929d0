package b64

import (
	"regexp"
	"strings"
)

// maxPaddingTrim bounds the trailing-padding trim loop so that pathological
// input (a long run of padding characters) cannot keep the cleaner busy.
const maxPaddingTrim = 8

// Substitution is one ordered repair rule applied by Clean over the whole
// string.
type Substitution struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// CleanOptions configures the Clean pass. The zero value cleans for the
// standard variant.
type CleanOptions struct {
	// Substitutions are applied in order after line breaks are stripped
	Substitutions []Substitution
	// Padding is the target variant's padding policy
	Padding PaddingPolicy
	// PadChar defaults to '=' when zero
	PadChar byte
	// TrimCutset defaults to " \t\r\n" when empty
	TrimCutset string
}

var spaceToPlus = Substitution{
	Pattern:     regexp.MustCompile(` `),
	Replacement: "+",
}

// DefaultSubstitutions returns the default repair rules for a variant. The
// single stock rule turns spaces back into '+' -- the most common corruption,
// from URL-decoding contexts. Variants whose alphabet contains the space
// character (uuencode) get no rules at all, spaces are data there.
func DefaultSubstitutions(v Variant) []Substitution {
	if v.hasSymbol(' ') {
		return nil
	}
	return []Substitution{spaceToPlus}
}

// OptionsFor builds the default clean options for a variant.
func OptionsFor(v Variant) CleanOptions {
	cutset := " \t\r\n"
	if v.hasSymbol(' ') {
		cutset = "\t\r\n"
	}
	return CleanOptions{
		Substitutions: DefaultSubstitutions(v),
		Padding:       v.Padding,
		PadChar:       v.PadChar,
		TrimCutset:    cutset,
	}
}

// crlfReplacer strips line breaks, both as literal bytes and as the
// two-character escape sequences found in hand-edited sources.
var crlfReplacer = strings.NewReplacer(
	"\r", "",
	"\n", "",
	`\r`, "",
	`\n`, "",
)

// Clean repairs common superficial malformations of almost-Base64 text:
// line breaks, space-for-plus substitution and broken padding. It is a
// best-effort pass -- the result is returned even when it is still invalid.
// Clean is idempotent for a fixed set of options.
func Clean(text string, opts CleanOptions) string {
	pad := opts.PadChar
	if pad == 0 {
		pad = PadChar
	}
	cutset := opts.TrimCutset
	if cutset == "" {
		cutset = " \t\r\n"
	}

	text = crlfReplacer.Replace(text)

	for _, sub := range opts.Substitutions {
		text = sub.Pattern.ReplaceAllString(text, sub.Replacement)
	}

	if opts.Padding == PaddingMandatory {
		padStr := string(pad)
		for i := 0; i < maxPaddingTrim && len(text)%4 != 0 && strings.HasSuffix(text, padStr); i++ {
			text = text[:len(text)-1]
		}
		for len(text)%4 != 0 {
			text += padStr
		}
	}

	return strings.Trim(text, cutset)
}

// CleanFor cleans text with the default options of the named variant, using
// the default engine's view of that variant.
func CleanFor(text string, variantID string) string {
	return Clean(text, OptionsFor(Resolve(variantID)))
}
