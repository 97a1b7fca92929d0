package args

import (
	"os"
	"regexp"

	"github.com/bokysan/base64kit/internal/util/b64"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Rule is one cleaning rule as written in a rules file: a regular expression
// and its replacement.
type Rule struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// RulesFile is the on-disk format for custom cleaning rules:
//
//   rules:
//     - pattern: " "
//       replacement: "+"
//     - pattern: "\\*"
//       replacement: "="
//
type RulesFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRules reads a YAML rules file and compiles it into an ordered
// substitution list. Rules keep the order they have in the file.
func LoadRules(filename string) ([]b64.Substitution, error) {
	body, err := os.Open(filename)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	var file RulesFile
	if err := yaml.NewDecoder(body).Decode(&file); err != nil {
		return nil, errors.Wrapf(err, "Could not parse rules file %s", filename)
	}

	subs := make([]b64.Substitution, 0, len(file.Rules))
	for i, r := range file.Rules {
		pattern, err := regexp.Compile(r.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "Invalid pattern in rule %d of %s", i+1, filename)
		}
		subs = append(subs, b64.Substitution{
			Pattern:     pattern,
			Replacement: r.Replacement,
		})
	}

	return subs, nil
}
