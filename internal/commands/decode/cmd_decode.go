package decode

import (
	"fmt"
	"os"

	"github.com/bokysan/base64kit/internal/logging"
	"github.com/bokysan/base64kit/internal/util"
	"github.com/bokysan/base64kit/internal/util/b64"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command decodes Base64 text from the arguments or stdin back into bytes.
type Command struct {
	Variant string `short:"i" long:"variant" env:"B64_VARIANT" default:"standard" description:"Base64 variant to decode with, e.g. 'standard', 'url-safe', 'rfc_2045', 'uuencode'"`
	Strict  bool   `short:"s" long:"strict"                                       description:"Fail on invalid characters instead of decoding them as zero"`
	Text    bool   `short:"t" long:"text"                                         description:"Interpret the decoded bytes as text in the given charset"`
	Charset string `short:"c" long:"charset" default:"utf-8"                      description:"Charset for --text output: ascii, utf-8, utf-16, latin-1 or hex" choice:"ascii" choice:"utf-8" choice:"utf-16" choice:"latin-1" choice:"hex"`
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

	var decoded []byte
	if s.Strict {
		decoded, err = b64.DecodeStrict(string(input), s.Variant)
		if err != nil {
			return errors.Wrap(err, "Could not decode input")
		}
	} else {
		decoded = b64.Decode(string(input), s.Variant)
	}

	log.Tracef("Decoded buffer: %s", spew.Sdump(decoded))

	if s.Text {
		fmt.Println(b64.BytesToText(decoded, s.Charset))
		return nil
	}

	if _, err := os.Stdout.Write(decoded); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
