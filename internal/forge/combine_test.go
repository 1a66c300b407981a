package forge

import (
	"testing"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
)

func item(id, name, typ, desc string, cost float64, health int) catalog.Item {
	return catalog.Item{ID: id, Name: name, Type: typ, Description: desc, Revision: "Rev A", Cost: cost, HealthPct: health}
}

func TestCombineFallbackCostAndName(t *testing.T) {
	base := item("B-1", "Lantern", "tool", "Oil lantern", 100, 50)
	aux := []catalog.Item{
		item("A-1", "Wick", "material", "Cotton wick", 50, 100),
		item("A-2", "Glass", "material", "Clear pane", 30, 100),
	}
	got := Engine{}.Combine(base, aux)
	if got.Cost != 124 {
		t.Fatalf("expected cost 124, got %v", got.Cost)
	}
	if got.Name != "Lantern Mk II" {
		t.Fatalf("expected fallback name, got %q", got.Name)
	}
	if got.HealthPct != 74 {
		t.Fatalf("expected health 74, got %d", got.HealthPct)
	}
	if got.ID != "B-1-VAR-2" || got.Revision != "Rev B" || got.Supplier != ForgeSupplier || got.Notes != VariantNotes {
		t.Fatalf("unexpected variant metadata: %+v", got)
	}
	if got.Description != "Forged from Lantern with Wick, Glass." {
		t.Fatalf("unexpected description %q", got.Description)
	}
	if base.Name != "Lantern" || base.Cost != 100 {
		t.Fatalf("expected base untouched, got %+v", base)
	}
}

func TestCombineHealthClamps(t *testing.T) {
	base := item("B", "Lantern", "tool", "", 10, 95)
	aux := []catalog.Item{item("1", "a", "", "", 0, 0), item("2", "b", "", "", 0, 0), item("3", "c", "", "", 0, 0)}
	if got := (Engine{}).Combine(base, aux).HealthPct; got != 100 {
		t.Fatalf("expected health capped at 100, got %d", got)
	}
	base.HealthPct = 0
	if got := (Engine{}).Combine(base, aux[:1]).HealthPct; got != 20 {
		t.Fatalf("expected health floor of 20, got %d", got)
	}
}

func TestCombineAdjectivesFollowFixedOrder(t *testing.T) {
	base := item("B", "Hook", "tool", "grappling hook", 10, 50)
	aux := []catalog.Item{
		item("1", "Strap", "material", "light strap", 0, 0),
		item("2", "Scale", "material", "dragon scale", 0, 0),
		item("3", "Sacred Thread", "material", "", 0, 0),
	}
	got := Engine{Rules: DefaultRules()}.Combine(base, aux)
	if got.Name != "Dragon Blessed Reinforced Swift Hook" {
		t.Fatalf("unexpected name %q", got.Name)
	}
}

func TestCombineAdjectivesIgnoreBaseText(t *testing.T) {
	base := item("B", "Dragon Hook", "tool", "leather grip", 10, 50)
	got := Engine{}.Combine(base, []catalog.Item{item("1", "Pin", "", "", 0, 0)})
	if got.Name != "Dragon Hook Mk II" {
		t.Fatalf("expected base text not to add adjectives, got %q", got.Name)
	}
}

func TestCombineFirstRuleWins(t *testing.T) {
	e := Engine{Rules: DefaultRules()}
	base := item("S", "Steel Sword", "weapon", "steel sword", 100, 50)
	aux := []catalog.Item{item("C", "Blessed Fire Crystal", "material", "", 0, 0)}
	if n := len(e.Match(base, aux)); n != 2 {
		t.Fatalf("expected two matching rules, got %d", n)
	}
	got := e.Combine(base, aux)
	if got.Name != "Blessed Steel Sword" {
		t.Fatalf("expected earlier rule to win, got %q", got.Name)
	}
	if got.HealthPct != 87 || got.Cost != 120 {
		t.Fatalf("expected rule bonuses health=87 cost=120, got health=%d cost=%v", got.HealthPct, got.Cost)
	}
}

func TestCombineDemoRecipes(t *testing.T) {
	ds := catalog.Demo()
	e := Engine{Rules: DefaultRules()}
	pick := func(ids ...string) []catalog.Item {
		var out []catalog.Item
		for _, id := range ids {
			it, ok := ds.Item(id)
			if !ok {
				t.Fatalf("missing demo item %s", id)
			}
			out = append(out, it)
		}
		return out
	}

	cases := []struct {
		ids  []string
		name string
	}{
		{[]string{"I-002", "I-101", "I-102"}, "Dragon-Leather Hylian Shield"},
		{[]string{"I-001", "I-103"}, "Blessed Master Sword"},
		{[]string{"I-003", "I-110"}, "Alloy-Spring Hookshot"},
		{[]string{"I-002", "I-114"}, "Swift Hylian Shield"},
		{[]string{"I-001", "I-104"}, "Flame-Touched Master Sword"},
		{[]string{"I-002", "I-105"}, "Frostguard Hylian Shield"},
		{[]string{"I-003", "I-106"}, "Stormwire Hookshot"},
		{[]string{"I-005", "I-115", "I-102"}, "Sunleather Soldier's Armor"},
		{[]string{"I-001", "I-107"}, "Mithril Master Sword"},
		{[]string{"I-002", "I-108"}, "Obsidian-Plate Hylian Shield"},
		{[]string{"I-001", "I-109"}, "Phoenix Master Sword"},
		{[]string{"I-003", "I-113"}, "Hydraline Hookshot"},
		{[]string{"I-006", "I-112"}, "Runic Sheikah Slate"},
		{[]string{"I-004", "I-111"}, "Silkstring Traveler's Bow"},
		{[]string{"I-007", "I-116"}, "Harmonic Ancient Staff"},
		{[]string{"I-003", "I-102"}, "Leather Reinforced Hookshot"},
	}
	for _, tc := range cases {
		items := pick(tc.ids...)
		got, _ := e.CombineItems(items)
		if got.Name != tc.name {
			t.Fatalf("%v: expected %q, got %q", tc.ids, tc.name, got.Name)
		}
	}

	shield, _ := e.CombineItems(pick("I-002", "I-101", "I-102"))
	if shield.Cost != 1064 || shield.HealthPct != 100 || shield.Revision != "Rev C" {
		t.Fatalf("unexpected dragon shield stats: cost=%v health=%d rev=%s", shield.Cost, shield.HealthPct, shield.Revision)
	}
}

func TestBumpRevision(t *testing.T) {
	cases := map[string]string{
		"Rev A":    "Rev B",
		"rev c":    "Rev D",
		"Rev  Y":   "Rev Z",
		"Rev Z":    "Rev Z",
		"A":        "Rev B",
		"":         "Rev B",
		"Rev. C":   "Rev B",
		"v2 Rev M": "Rev N",
	}
	for in, want := range cases {
		if got := BumpRevision(in); got != want {
			t.Fatalf("BumpRevision(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestCombineItemsEmpty(t *testing.T) {
	if _, ok := (Engine{}).CombineItems(nil); ok {
		t.Fatalf("expected empty input to fail")
	}
}
