// Package forge combines a base item with auxiliary items into a variant,
// and holds the staging pot the combination is assembled in.
package forge

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
)

const (
	ForgeSupplier = "Sacred Forge"
	VariantNotes  = "Variant preview (not persisted)"
)

// Engine applies a recipe book. The zero value uses no recipes and always
// falls back to adjective naming.
type Engine struct {
	Rules []Rule
}

func NewEngine(rules []Rule) Engine {
	return Engine{Rules: rules}
}

// adjective is applied when its pattern occurs in the auxiliary text.
type adjective struct {
	word     string
	triggers []string
}

var adjectives = []adjective{
	{"Dragon", []string{"dragon"}},
	{"Leather", []string{"leather"}},
	{"Blessed", []string{"blessed", "sacred", "sanctified"}},
	{"Reinforced", []string{"reinforc", "strap"}},
	{"Alloyed", []string{"spring", "alloy"}},
	{"Swift", []string{"light", "swift"}},
}

func baseText(base catalog.Item) string {
	return strings.ToLower(base.Name + " " + base.Description + " " + base.Type)
}

func auxText(aux []catalog.Item) string {
	parts := make([]string, len(aux))
	for i, it := range aux {
		parts[i] = it.Name + " " + it.Description
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// Corpus is the lower-case text recipes are matched against.
func Corpus(base catalog.Item, aux []catalog.Item) string {
	return baseText(base) + " " + auxText(aux)
}

// Match returns every rule matching the combination, in priority order.
func (e Engine) Match(base catalog.Item, aux []catalog.Item) []Rule {
	text := Corpus(base, aux)
	var out []Rule
	for _, r := range e.Rules {
		if r.Matches(text) {
			out = append(out, r)
		}
	}
	return out
}

// Discover returns the winning rule for the combination, if any.
func (e Engine) Discover(base catalog.Item, aux []catalog.Item) (Rule, bool) {
	text := Corpus(base, aux)
	for _, r := range e.Rules {
		if r.Matches(text) {
			return r, true
		}
	}
	return Rule{}, false
}

// Combine derives a variant of base. base and aux are not modified.
func (e Engine) Combine(base catalog.Item, aux []catalog.Item) catalog.Item {
	ingredients := auxText(aux)

	var words []string
	for _, adj := range adjectives {
		for _, trig := range adj.triggers {
			if strings.Contains(ingredients, trig) {
				words = append(words, adj.word)
				break
			}
		}
	}
	name := base.Name + " Mk II"
	if len(words) > 0 {
		name = strings.Join(words, " ") + " " + base.Name
	}

	auxCost := 0.0
	names := make([]string, len(aux))
	for i, it := range aux {
		auxCost += it.Cost
		names[i] = it.Name
	}
	cost := roundHalfUp(base.Cost + auxCost*0.3)
	health := min(100, max(20, base.HealthPct+len(aux)*12))

	if rule, ok := e.Discover(base, aux); ok {
		name = rule.VariantName(base.Name)
		if rule.HealthAdd != 0 {
			health = min(100, health+rule.HealthAdd)
		}
		if rule.CostMul != 0 {
			cost = roundHalfUp(cost * rule.CostMul)
		}
	}

	out := base
	out.ID = fmt.Sprintf("%s-VAR-%d", base.ID, len(aux))
	out.Name = name
	out.Revision = BumpRevision(base.Revision)
	out.Supplier = ForgeSupplier
	out.Description = fmt.Sprintf("Forged from %s with %s.", base.Name, strings.Join(names, ", "))
	out.Cost = cost
	out.HealthPct = health
	out.Notes = VariantNotes
	return out
}

// CombineItems treats the first item as the base. It reports false for an
// empty slice.
func (e Engine) CombineItems(items []catalog.Item) (catalog.Item, bool) {
	if len(items) == 0 {
		return catalog.Item{}, false
	}
	return e.Combine(items[0], items[1:]), true
}

var revisionRE = regexp.MustCompile(`(?i)Rev\s+([A-Z])`)

// BumpRevision advances "Rev X" to the next letter, stopping at Z. A
// revision without a letter becomes "Rev B".
func BumpRevision(rev string) string {
	m := revisionRE.FindStringSubmatch(rev)
	if m == nil {
		return "Rev B"
	}
	letter := strings.ToUpper(m[1])[0]
	if letter < 'Z' {
		letter++
	}
	return "Rev " + string(letter)
}

func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
