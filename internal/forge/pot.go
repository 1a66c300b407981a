package forge

import "github.com/appengine-ltd/forge-and-field/internal/catalog"

const (
	// PotCapacity is the number of slots in the pot.
	PotCapacity = 6
	// MinForgeItems is the smallest pot that can be forged: a base and one
	// auxiliary.
	MinForgeItems = 2
)

// Pot stages items for forging. The first item is the base.
type Pot struct {
	items  []catalog.Item
	busy   bool
	result *catalog.Item
}

func (p *Pot) Items() []catalog.Item {
	return append([]catalog.Item(nil), p.items...)
}

func (p *Pot) Len() int { return len(p.items) }

// Slot returns the item in slot i.
func (p *Pot) Slot(i int) (catalog.Item, bool) {
	if i < 0 || i >= len(p.items) {
		return catalog.Item{}, false
	}
	return p.items[i], true
}

func (p *Pot) Busy() bool { return p.busy }

func (p *Pot) CanAdd() bool { return !p.busy && len(p.items) < PotCapacity }

func (p *Pot) CanForge() bool {
	return !p.busy && len(p.items) >= MinForgeItems && len(p.items) <= PotCapacity
}

// Result is the last forged variant.
func (p *Pot) Result() (catalog.Item, bool) {
	if p.result == nil {
		return catalog.Item{}, false
	}
	return *p.result, true
}

// Add appends it. A full or busy pot rejects the item.
func (p *Pot) Add(it catalog.Item) bool {
	if !p.CanAdd() {
		return false
	}
	p.items = append(p.items, it)
	return true
}

// Preload puts base in an empty pot.
func (p *Pot) Preload(base catalog.Item) bool {
	if len(p.items) > 0 {
		return false
	}
	return p.Add(base)
}

func (p *Pot) Remove(i int) bool {
	if p.busy || i < 0 || i >= len(p.items) {
		return false
	}
	p.items = append(p.items[:i:i], p.items[i+1:]...)
	return true
}

func (p *Pot) Clear() {
	if p.busy {
		return
	}
	p.items = nil
}

// begin marks the pot busy and returns the items to forge.
func (p *Pot) begin() ([]catalog.Item, bool) {
	if !p.CanForge() {
		return nil, false
	}
	p.busy = true
	p.result = nil
	return p.Items(), true
}

// finish empties the pot and records the result.
func (p *Pot) finish(result catalog.Item) {
	p.items = nil
	p.busy = false
	p.result = &result
}
