package b64

import (
	"fmt"
	"sort"
	"strings"
)

// PaddingPolicy defines what a variant expects of the trailing padding characters.
type PaddingPolicy int

const (
	// PaddingOptional -- padding is emitted on encode but not required on validation
	PaddingOptional PaddingPolicy = iota
	// PaddingMandatory -- encoded text must always be a multiple of 4 characters
	PaddingMandatory
	// PaddingNone -- padding is never emitted and never expected
	PaddingNone
)

func (p PaddingPolicy) String() string {
	switch p {
	case PaddingMandatory:
		return "mandatory"
	case PaddingNone:
		return "none"
	default:
		return "optional"
	}
}

const (
	// cbBase are the first 62 symbols shared by all RFC-style alphabets
	cbBase = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	cbStandard = cbBase + "+/"
	cbUrlSafe  = cbBase + "+_"
	cbMailSafe = cbBase + "+,"

	// cbUuencode is the historical uuencode table -- the 64 printable
	// characters starting at space (ASCII 32 through 95). Note that it
	// contains both '+' and '=' as regular symbols.
	cbUuencode = " !\"#$%&'()*+,-./0123456789:;<=>?" +
		"@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_"

	// PadChar is the padding character used by every variant
	PadChar = '='
)

// Variant is one dialect of Base64: a 64-symbol alphabet plus a padding policy.
// All variants are defined below as constant data and are never mutated.
type Variant struct {
	// ID is the canonical identifier of the variant
	ID string
	// Alphabet is the ordered 64-character symbol table
	Alphabet string
	// Padding tells whether trailing padding is optional, mandatory or forbidden
	Padding PaddingPolicy
	// PadChar is the character used to fill the last quantum
	PadChar byte
	// Checksum marks variants which carry a trailing checksum in the original
	// standard (RFC 4880). The flag is informational only -- checksum
	// computation is out of scope and neither encode nor decode consume it.
	Checksum bool
}

func (v Variant) String() string {
	return fmt.Sprintf("%s(padding=%s)", v.ID, v.Padding)
}

var (
	// Standard is RFC 4648 Base64 and the fallback for unknown identifiers.
	Standard = Variant{ID: "standard", Alphabet: cbStandard, Padding: PaddingOptional, PadChar: PadChar}

	// UrlSafe replaces '/' with '_' so encoded text survives URL path segments.
	UrlSafe = Variant{ID: "url-safe", Alphabet: cbUrlSafe, Padding: PaddingOptional, PadChar: PadChar}

	// Pem is RFC 1421 privacy-enhanced mail encoding.
	Pem = Variant{ID: "1421", Alphabet: cbStandard, Padding: PaddingMandatory, PadChar: PadChar}

	// Mime is RFC 2045 MIME transfer encoding.
	Mime = Variant{ID: "2045", Alphabet: cbStandard, Padding: PaddingMandatory, PadChar: PadChar}

	// Utf7 is RFC 2152 modified Base64, which never pads.
	Utf7 = Variant{ID: "2152", Alphabet: cbStandard, Padding: PaddingNone, PadChar: PadChar}

	// MailSafe is RFC 3501 IMAP mailbox-name encoding: ',' instead of '/', no padding.
	MailSafe = Variant{ID: "3501", Alphabet: cbMailSafe, Padding: PaddingNone, PadChar: PadChar}

	// OpenPgp is RFC 4880 radix-64. The trailing CRC is not computed here,
	// the flag is only carried through.
	OpenPgp = Variant{ID: "4880", Alphabet: cbStandard, Padding: PaddingMandatory, PadChar: PadChar, Checksum: true}

	// Uuencode uses the space-based historical table.
	Uuencode = Variant{ID: "uuencode", Alphabet: cbUuencode, Padding: PaddingMandatory, PadChar: PadChar}
)

// variants maps every accepted identifier (normalized form) to its variant.
var variants = map[string]Variant{
	"":          Standard,
	"standard":  Standard,
	"base64":    Standard,
	"4648":      Standard,
	"url":       UrlSafe,
	"urlsafe":   UrlSafe,
	"url-safe":  UrlSafe,
	"4648-url":  UrlSafe,
	"1421":      Pem,
	"pem":       Pem,
	"2045":      Mime,
	"mime":      Mime,
	"2152":      Utf7,
	"utf7":      Utf7,
	"utf-7":     Utf7,
	"3501":      MailSafe,
	"imap":      MailSafe,
	"mail-safe": MailSafe,
	"mailsafe":  MailSafe,
	"4880":      OpenPgp,
	"openpgp":   OpenPgp,
	"radix64":   OpenPgp,
	"radix-64":  OpenPgp,
	"uu":        Uuencode,
	"uuencode":  Uuencode,
}

// Resolve finds the variant for the given identifier. Identifiers are
// case-insensitive and may carry an "RFC_" style prefix ("RFC_2045",
// "rfc-2045" and "2045" all name the same variant). Unknown or empty
// identifiers fall back to the standard variant -- Resolve never fails.
func Resolve(id string) Variant {
	key := strings.ToLower(strings.TrimSpace(id))
	key = strings.TrimPrefix(key, "rfc_")
	key = strings.TrimPrefix(key, "rfc-")
	key = strings.TrimPrefix(key, "rfc")
	key = strings.TrimPrefix(key, "_")

	if v, ok := variants[key]; ok {
		return v
	}
	return Standard
}

// Variants returns the canonical identifiers of all registered variants.
func Variants() []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range variants {
		if !seen[v.ID] {
			seen[v.ID] = true
			out = append(out, v.ID)
		}
	}
	sort.Strings(out)
	return out
}

// hasSymbol reports whether c is part of the variant's alphabet.
func (v Variant) hasSymbol(c byte) bool {
	return strings.IndexByte(v.Alphabet, c) != -1
}
