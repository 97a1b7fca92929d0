package validate

import (
	"fmt"
	"os"
	"strings"

	"github.com/bokysan/base64kit/internal/logging"
	"github.com/bokysan/base64kit/internal/util"
	"github.com/bokysan/base64kit/internal/util/b64"
	"github.com/pkg/errors"
)

// Command checks whether the input is well-formed Base64 for a variant.
// Exits with status 0 for valid input and 1 for invalid input.
type Command struct {
	Variant string `short:"i" long:"variant" env:"B64_VARIANT" default:"standard" description:"Base64 variant to validate against"`
	Quiet   bool   `short:"q" long:"quiet"                                        description:"Do not print anything, only set the exit status"`
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	input, err := util.ReadInput(args)
	if err != nil {
		return errors.Wrap(err, "Could not read input")
	}

	// A trailing newline from shell pipes is not part of the payload.
	text := strings.TrimRight(string(input), "\r\n")

	if b64.IsValid(text, s.Variant) {
		if !s.Quiet {
			fmt.Println("valid")
		}
		return nil
	}

	if !s.Quiet {
		fmt.Println("invalid")
	}
	os.Exit(1)
	return nil
}
