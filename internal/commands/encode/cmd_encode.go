package encode

import (
	"fmt"

	"github.com/bokysan/base64kit/internal/logging"
	"github.com/bokysan/base64kit/internal/util"
	"github.com/bokysan/base64kit/internal/util/b64"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes bytes from the arguments or stdin into Base64 text.
type Command struct {
	Variant   string `short:"i" long:"variant"    env:"B64_VARIANT" default:"standard" description:"Base64 variant to encode with, e.g. 'standard', 'url-safe', 'rfc_2045', 'uuencode'"`
	NoNewline bool   `short:"n" long:"no-newline"                                      description:"Do not print the trailing newline"`
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()

	data, err := util.ReadInput(args)
	if err != nil {
		return errors.Wrap(err, "Could not read input")
	}

	variant := b64.Resolve(s.Variant)
	log.Debugf("Encoding %d bytes with %v", len(data), variant)

	if s.NoNewline {
		fmt.Print(b64.Encode(data, s.Variant))
	} else {
		fmt.Println(b64.Encode(data, s.Variant))
	}
	return nil
}
