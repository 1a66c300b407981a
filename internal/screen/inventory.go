package screen

import (
	"slices"
	"strconv"
	"time"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/focus"
	"github.com/appengine-ltd/forge-and-field/internal/input"
)

const (
	AreaGrid = "grid"

	InventoryColumns = 5
	HoldLimit        = 5
)

// Inventory is the item grid with category tabs and a small hold set.
type Inventory struct {
	env        Env
	open       func(id string)
	categories []string
	category   int
	items      []catalog.Item
	held       []string
	focus      *focus.Machine
}

// NewInventory builds the grid; open is called with an item ID when the
// player asks to take it to the forge.
func NewInventory(env Env, open func(id string)) *Inventory {
	inv := &Inventory{
		env:        env,
		open:       open,
		categories: append([]string{catalog.AllTypes}, env.Dataset.Types()...),
	}
	inv.focus = focus.New(focus.Zone{
		Name:    AreaGrid,
		Count:   func() int { return len(inv.items) },
		Columns: InventoryColumns,
		Confirm: inv.toggleHold,
		Back:    func(int) { inv.held = nil },
	})
	inv.refilter()
	return inv
}

func (inv *Inventory) Screen() input.Screen { return input.ScreenInventory }

func (inv *Inventory) Focus() focus.State { return inv.focus.State() }

func (inv *Inventory) Categories() []string { return slices.Clone(inv.categories) }

func (inv *Inventory) Category() string { return inv.categories[inv.category] }

func (inv *Inventory) Items() []catalog.Item { return slices.Clone(inv.items) }

// Selected is the focused item.
func (inv *Inventory) Selected() (catalog.Item, bool) {
	i := inv.focus.Index()
	if i < 0 || i >= len(inv.items) {
		return catalog.Item{}, false
	}
	return inv.items[i], true
}

// Held lists held item IDs in the order they were picked.
func (inv *Inventory) Held() []string { return slices.Clone(inv.held) }

func (inv *Inventory) IsHeld(id string) bool { return slices.Contains(inv.held, id) }

func (inv *Inventory) HandleAction(a input.Action) { inv.focus.Handle(a) }

// HandleKey binds category selection and open-in-forge.
func (inv *Inventory) HandleKey(ev input.KeyEvent) bool {
	switch name := ev.Name(); name {
	case "tab":
		inv.SelectCategory(inv.category + 1)
	case "shift+tab":
		inv.SelectCategory(inv.category - 1)
	case "o":
		inv.OpenSelected()
	default:
		n, err := strconv.Atoi(name)
		if err != nil || n < 1 || n > categoryKeys {
			return false
		}
		inv.SelectCategory(inv.digitCategory(n))
	}
	return true
}

// categoryKeys is how many digit keys pick a category.
const categoryKeys = 6

// digitCategory maps digit n to a tab: 1 is "all", n picks the (n-1)th
// type. A missing type falls back to "all" for 2-4 and to the first type
// for 5 and 6.
func (inv *Inventory) digitCategory(n int) int {
	if n <= len(inv.categories) {
		return n - 1
	}
	if n >= 5 && len(inv.categories) > 1 {
		return 1
	}
	return 0
}

// SelectCategory switches tab, wrapping at both ends, and moves focus to
// the first item.
func (inv *Inventory) SelectCategory(i int) {
	n := len(inv.categories)
	inv.category = (i%n + n) % n
	inv.refilter()
	inv.focus.Reset()
}

// OpenSelected takes the focused item to the forge.
func (inv *Inventory) OpenSelected() bool {
	it, ok := inv.Selected()
	if !ok || inv.open == nil {
		return false
	}
	inv.open(it.ID)
	return true
}

func (inv *Inventory) Update(time.Time) {}

func (inv *Inventory) toggleHold(i int) {
	if i < 0 || i >= len(inv.items) {
		return
	}
	id := inv.items[i].ID
	if at := slices.Index(inv.held, id); at >= 0 {
		inv.held = slices.Delete(inv.held, at, at+1)
		return
	}
	if len(inv.held) < HoldLimit {
		inv.held = append(inv.held, id)
	}
}

func (inv *Inventory) refilter() {
	inv.items = catalog.Filter(inv.env.Dataset.Items, catalog.Query{Type: inv.Category()})
}
