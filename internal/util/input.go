package util

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ReadInput returns the data a command should work on: the positional
// arguments joined by a single space, or everything from stdin when no
// arguments were given.
func ReadInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(strings.Join(args, " ")), nil
	}

	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return data, nil
}
