package b64

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Resolve_Aliases(t *testing.T) {
	require.Equal(t, Standard, Resolve(""))
	require.Equal(t, Standard, Resolve("standard"))
	require.Equal(t, Standard, Resolve("RFC_4648"))
	require.Equal(t, Standard, Resolve("rfc4648"))
	require.Equal(t, UrlSafe, Resolve("URL-SAFE"))
	require.Equal(t, UrlSafe, Resolve("urlsafe"))
	require.Equal(t, Pem, Resolve("RFC_1421"))
	require.Equal(t, Mime, Resolve("rfc-2045"))
	require.Equal(t, Mime, Resolve("mime"))
	require.Equal(t, Utf7, Resolve("utf-7"))
	require.Equal(t, MailSafe, Resolve("imap"))
	require.Equal(t, OpenPgp, Resolve("RFC_4880"))
	require.Equal(t, Uuencode, Resolve("uu"))
}

func Test_Resolve_UnknownFallsBack(t *testing.T) {
	require.Equal(t, Standard, Resolve("no-such-variant"))
	require.Equal(t, Standard, Resolve("  "))
}

func Test_Variant_Alphabets(t *testing.T) {
	for _, id := range Variants() {
		v := Resolve(id)
		require.Len(t, v.Alphabet, 64, "variant %s", id)

		seen := make(map[byte]bool)
		for i := 0; i < len(v.Alphabet); i++ {
			require.False(t, seen[v.Alphabet[i]], "variant %s: duplicate symbol %q", id, v.Alphabet[i])
			seen[v.Alphabet[i]] = true
		}
	}
}

func Test_Variant_ChecksumFlag(t *testing.T) {
	require.True(t, Resolve("4880").Checksum)
	require.False(t, Resolve("standard").Checksum)
}

func Test_Variant_UrlSafeKeepsPlus(t *testing.T) {
	// Only '/' is replaced in this dialect, '+' stays.
	v := Resolve("url-safe")
	require.True(t, v.hasSymbol('+'))
	require.True(t, v.hasSymbol('_'))
	require.False(t, v.hasSymbol('/'))
}
