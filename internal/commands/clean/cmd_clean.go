package clean

import (
	"fmt"

	rules "github.com/bokysan/base64kit/internal/args"
	"github.com/bokysan/base64kit/internal/logging"
	"github.com/bokysan/base64kit/internal/util"
	"github.com/bokysan/base64kit/internal/util/b64"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command repairs almost-Base64 input: strips line breaks, applies the
// substitution rules and fixes up padding for the chosen variant.
type Command struct {
	Variant string `short:"i" long:"variant" env:"B64_VARIANT" default:"standard" description:"Base64 variant whose padding rules to clean for"`
	Rules   string `short:"r" long:"rules"   env:"B64_RULES"                      description:"YAML file with custom substitution rules, replacing the default space-to-plus rule"`
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

	opts := b64.OptionsFor(b64.Resolve(s.Variant))
	if s.Rules != "" {
		subs, err := rules.LoadRules(s.Rules)
		if err != nil {
			return errors.Wrapf(err, "Could not load rules from %s", s.Rules)
		}
		log.Debugf("Loaded %d substitution rules from %s", len(subs), s.Rules)
		opts.Substitutions = subs
	}

	fmt.Println(b64.Clean(string(input), opts))
	return nil
}
