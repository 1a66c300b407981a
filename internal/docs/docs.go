// Package docs renders the control and recipe references as Markdown. The
// terminal client shows the controls page; cmd/docsgen writes both to disk.
package docs

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/forge"
	"github.com/appengine-ltd/forge-and-field/internal/input"
)

// Controls lists every action with its keys and gamepad button.
func Controls() string {
	var b strings.Builder
	b.WriteString("# Controls\n\n")
	b.WriteString("Global actions switch screens from anywhere; the rest act on the focused element.\n\n")
	b.WriteString("| Action | Keys | Gamepad |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, a := range input.Actions() {
		keys := input.KeysFor(a)
		for i, k := range keys {
			keys[i] = "`" + k + "`"
		}
		button := "-"
		if idx, ok := input.ButtonFor(a); ok {
			button = input.ButtonName(idx)
		}
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escape(a.String()), strings.Join(keys, ", "), escape(button))
	}
	b.WriteString("\nScreen keys: `tab`/`shift+tab` and `1`-`6` pick inventory categories, ")
	b.WriteString("`o` opens the focused item in the forge, `/` searches the forge inventory, `t` cycles its type filter.\n")
	return b.String()
}

// Recipes lists rules in priority order; the first matching rule wins.
func Recipes(rules []forge.Rule) string {
	var b strings.Builder
	b.WriteString("# Recipes\n\n")
	fmt.Fprintf(&b, "Total recipes: **%d**. Rules are checked top to bottom and the first whose keywords all appear wins.\n\n", len(rules))
	b.WriteString("| ID | Keywords | Variant | Health | Cost | Notes |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
	for _, r := range rules {
		fmt.Fprintf(&b, "| %s | %s | %s | %+d | x%.2f | %s |\n",
			escape(r.ID),
			escape(strings.Join(r.Keywords, ", ")),
			escape(r.VariantName("{base}")),
			r.HealthAdd,
			r.CostMul,
			escape(r.Notes),
		)
	}
	return b.String()
}

// Items lists the dataset inventory grouped by type, then by name.
func Items(d *catalog.Dataset) string {
	items := slices.Clone(d.Items)
	slices.SortStableFunc(items, func(a, b catalog.Item) int {
		if c := cmp.Compare(a.Type, b.Type); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	var b strings.Builder
	b.WriteString("# Items\n\n")
	fmt.Fprintf(&b, "Total items: **%d**.\n\n", len(items))
	b.WriteString("| ID | Name | Type | Rev | Status | Cost | Health |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, it := range items {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %.0f | %d%% |\n",
			escape(it.ID), escape(it.Name), escape(it.Type), escape(it.Revision), escape(it.Status), it.Cost, it.HealthPct)
	}
	return b.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
