package forge

import (
	_ "embed"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed recipes.yaml
var recipesYAML []byte

// Rule names a variant when every keyword occurs in the combined text of
// the pot. Name uses {base} for the base item's name.
type Rule struct {
	ID        string   `yaml:"id"`
	Keywords  []string `yaml:"when"`
	Name      string   `yaml:"name"`
	HealthAdd int      `yaml:"health_add"`
	CostMul   float64  `yaml:"cost_mul"`
	Notes     string   `yaml:"notes"`
}

// Matches reports whether every keyword is a substring of text. text must
// already be lower case.
func (r Rule) Matches(text string) bool {
	for _, k := range r.Keywords {
		if !strings.Contains(text, k) {
			return false
		}
	}
	return true
}

// VariantName renders the rule's name for a base item.
func (r Rule) VariantName(base string) string {
	return strings.ReplaceAll(r.Name, "{base}", base)
}

// DefaultRules returns the bundled recipe book, in priority order.
func DefaultRules() []Rule {
	rules, err := ParseRules(recipesYAML)
	if err != nil {
		panic(err)
	}
	return rules
}

// LoadRules reads a recipe book from path, or the bundled one when path is
// empty.
func LoadRules(path string) ([]Rule, error) {
	if path == "" {
		return ParseRules(recipesYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read recipes %s", path)
	}
	return ParseRules(data)
}

func ParseRules(data []byte) ([]Rule, error) {
	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, errors.Wrap(err, "parse recipes")
	}
	for i := range rules {
		if len(rules[i].Keywords) == 0 {
			return nil, errors.Errorf("recipe %q has no keywords", rules[i].ID)
		}
		for k, kw := range rules[i].Keywords {
			rules[i].Keywords[k] = strings.ToLower(strings.TrimSpace(kw))
		}
	}
	return rules, nil
}
