package forge

import (
	"testing"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
)

func TestPotCapacityAndRemoval(t *testing.T) {
	var p Pot
	for i := 0; i < PotCapacity; i++ {
		if !p.Add(catalog.Item{ID: string(rune('a' + i))}) {
			t.Fatalf("expected add %d to succeed", i)
		}
	}
	if p.Add(catalog.Item{ID: "overflow"}) {
		t.Fatalf("expected full pot to reject")
	}
	snapshot := p.Items()
	if !p.Remove(0) || p.Len() != PotCapacity-1 {
		t.Fatalf("expected removal, len=%d", p.Len())
	}
	if snapshot[0].ID != "a" || snapshot[1].ID != "b" {
		t.Fatalf("expected earlier snapshot to be unaffected, got %v", snapshot[:2])
	}
	if first, _ := p.Slot(0); first.ID != "b" {
		t.Fatalf("expected b in slot 0, got %s", first.ID)
	}
	if p.Remove(9) {
		t.Fatalf("expected out-of-range removal to fail")
	}
	p.Clear()
	if p.Len() != 0 {
		t.Fatalf("expected empty pot after clear")
	}
}

func TestPotForgeGate(t *testing.T) {
	var p Pot
	p.Add(catalog.Item{ID: "base"})
	if p.CanForge() {
		t.Fatalf("expected single item pot not to forge")
	}
	if _, ok := p.begin(); ok {
		t.Fatalf("expected begin to refuse a single item")
	}
	p.Add(catalog.Item{ID: "aux"})
	items, ok := p.begin()
	if !ok || len(items) != 2 {
		t.Fatalf("expected begin with two items, got %v %v", ok, items)
	}
	if !p.Busy() || p.CanAdd() || p.Add(catalog.Item{ID: "late"}) || p.Remove(0) {
		t.Fatalf("expected busy pot to reject changes")
	}
	if _, ok := p.begin(); ok {
		t.Fatalf("expected second begin while busy to fail")
	}
	p.finish(catalog.Item{ID: "base-VAR-1"})
	if p.Busy() || p.Len() != 0 {
		t.Fatalf("expected idle empty pot after finish")
	}
	if res, ok := p.Result(); !ok || res.ID != "base-VAR-1" {
		t.Fatalf("expected result recorded, got %+v", res)
	}
}

func TestPotPreloadOnlyWhenEmpty(t *testing.T) {
	var p Pot
	if !p.Preload(catalog.Item{ID: "a"}) {
		t.Fatalf("expected preload into empty pot")
	}
	if p.Preload(catalog.Item{ID: "b"}) {
		t.Fatalf("expected preload to leave a non-empty pot alone")
	}
}
