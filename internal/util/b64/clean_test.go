package b64

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Clean_StripsLineBreaks(t *testing.T) {
	opts := OptionsFor(Standard)
	require.Equal(t, "SGVsbG8=", Clean("SGVs\r\nbG8=", opts))
	require.Equal(t, "SGVsbG8=", Clean(`SGVs\r\nbG8=`, opts))
}

func Test_Clean_SpaceBecomesPlus(t *testing.T) {
	require.Equal(t, "SGVsbG8+", Clean("SGVsbG8 ", OptionsFor(Mime)))
}

func Test_Clean_RepairsPadding(t *testing.T) {
	opts := OptionsFor(Mime)
	// missing padding is appended
	require.Equal(t, "SGVsbG8=", Clean("SGVsbG8", opts))
	// excess padding is trimmed back to a full quantum
	require.Equal(t, "SGVsbG8=", Clean("SGVsbG8==", opts))
	require.Equal(t, "SGVsbG8=", Clean("SGVsbG8===", opts))
	// already a full quantum, nothing to repair
	require.Equal(t, "SGVsbG8=====", Clean("SGVsbG8=====", opts))
}

func Test_Clean_TrimsWhitespace(t *testing.T) {
	require.Equal(t, "SGVsbG8=", Clean("\tSGVsbG8=\t", OptionsFor(Standard)))
}

func Test_Clean_Idempotent(t *testing.T) {
	inputs := []string{
		"SGVsbG8=",
		"SGVs bG8",
		"SG Vs\r\nbG8==",
		"",
		"  = = ",
	}
	for _, v := range []Variant{Standard, Mime, Utf7, Uuencode} {
		opts := OptionsFor(v)
		for _, in := range inputs {
			once := Clean(in, opts)
			require.Equal(t, once, Clean(once, opts), "variant %s, input %q", v.ID, in)
		}
	}
}

func Test_Clean_MakesInvalidValid(t *testing.T) {
	in := "SGVsbG8 "
	require.False(t, IsValid(in, "2045"))
	cleaned := CleanFor(in, "2045")
	require.True(t, IsValid(cleaned, "2045"), "cleaned: %q", cleaned)
}

func Test_Clean_UuencodeKeepsSpaces(t *testing.T) {
	// Space is symbol zero of the uuencode alphabet and must survive
	// cleaning untouched.
	opts := OptionsFor(Uuencode)
	require.Equal(t, "  ==", Clean("  ==", opts))
}

func Test_Clean_CustomSubstitutions(t *testing.T) {
	opts := OptionsFor(Standard)
	opts.Substitutions = []Substitution{
		{Pattern: regexp.MustCompile(`-`), Replacement: "+"},
		{Pattern: regexp.MustCompile(`!`), Replacement: "/"},
	}
	require.Equal(t, "a+b/c=", Clean("a-b!c=", opts))
}
