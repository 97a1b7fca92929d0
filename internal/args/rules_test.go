package args

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bokysan/base64kit/internal/util/b64"
	"github.com/stretchr/testify/require"
)

func writeRules(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "rules")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = os.RemoveAll(dir)
	})

	name := filepath.Join(dir, "rules.yaml")
	require.NoError(t, ioutil.WriteFile(name, []byte(content), 0644))
	return name
}

func Test_LoadRules(t *testing.T) {
	name := writeRules(t, `
rules:
  - pattern: " "
    replacement: "+"
  - pattern: "\\*"
    replacement: "="
`)

	subs, err := LoadRules(name)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	opts := b64.OptionsFor(b64.Standard)
	opts.Substitutions = subs
	require.Equal(t, "SGVsbG8+=", b64.Clean("SGVsbG8 *", opts))
}

func Test_LoadRules_BadPattern(t *testing.T) {
	name := writeRules(t, `
rules:
  - pattern: "["
    replacement: "x"
`)

	_, err := LoadRules(name)
	require.Error(t, err)
}

func Test_LoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules("/no/such/file.yaml")
	require.Error(t, err)
}
