package main

import (
	"os"
	"path"

	"github.com/bokysan/base64kit/internal/args"
	"github.com/bokysan/base64kit/internal/commands/clean"
	"github.com/bokysan/base64kit/internal/commands/decode"
	"github.com/bokysan/base64kit/internal/commands/encode"
	"github.com/bokysan/base64kit/internal/commands/validate"
	"github.com/bokysan/base64kit/internal/commands/version"
	"github.com/bokysan/base64kit/internal/util"
	"github.com/jessevdk/go-flags"
)

// Base64Kit is the main executable
type Base64Kit struct {
	parser *flags.Parser
}

// NewBase64Kit will create a new instance of Base64Kit and initialize the parser
func NewBase64Kit() *Base64Kit {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	kit := &Base64Kit{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	kit.setupGeneral()
	kit.setupVersion()
	kit.setupEncode()
	kit.setupDecode()
	kit.setupValidate()
	kit.setupClean()

	return kit
}

// setupGeneral will configure general options
func (kit *Base64Kit) setupGeneral() {
	_, err := kit.parser.AddGroup("General", "General options", &args.General)
	util.MustErrorNilOrExit(err)
}

// setupVersion adds the `version` command
func (kit *Base64Kit) setupVersion() {
	cmd := &version.Command{}
	_, err := kit.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (kit *Base64Kit) setupEncode() {
	cmd := encode.NewCommand()
	_, err := kit.parser.AddCommand(
		"encode",
		"Encode bytes as Base64",
		"Encode the arguments (or stdin) as Base64 text in the selected variant",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (kit *Base64Kit) setupDecode() {
	cmd := decode.NewCommand()
	_, err := kit.parser.AddCommand(
		"decode",
		"Decode Base64 to bytes",
		"Decode the arguments (or stdin) from Base64 text in the selected variant back to bytes",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupValidate adds the `validate` command
func (kit *Base64Kit) setupValidate() {
	cmd := validate.NewCommand()
	_, err := kit.parser.AddCommand(
		"validate",
		"Validate Base64 text",
		"Check whether the arguments (or stdin) are well-formed Base64 for the selected variant",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupClean adds the `clean` command
func (kit *Base64Kit) setupClean() {
	cmd := clean.NewCommand()
	_, err := kit.parser.AddCommand(
		"clean",
		"Repair almost-Base64 text",
		"Strip line breaks, apply substitution rules and fix up padding for the selected variant",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

func main() {
	kit := NewBase64Kit()
	_, err := kit.parser.Parse()
	util.MustErrorNilOrExit(err)
}
