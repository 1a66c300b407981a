package screen

import (
	"time"

	"github.com/appengine-ltd/forge-and-field/internal/focus"
	"github.com/appengine-ltd/forge-and-field/internal/input"
)

// MenuEntry is one destination on the home menu.
type MenuEntry struct {
	Screen input.Screen
	Label  string
}

var homeMenu = []MenuEntry{
	{input.ScreenInventory, "Inventory (Items)"},
	{input.ScreenQuests, "Quest Board (Requests)"},
	{input.ScreenForge, "Forge (Changes)"},
	{input.ScreenLog, "Adventure Log (Audit)"},
}

const AreaMenu = "menu"

type Home struct {
	focus *focus.Machine
}

// NewHome builds the home menu; confirming an entry calls open.
func NewHome(open func(input.Screen)) *Home {
	h := &Home{}
	h.focus = focus.New(focus.Zone{
		Name:    AreaMenu,
		Count:   func() int { return len(homeMenu) },
		Columns: 1,
		Confirm: func(i int) {
			if i < len(homeMenu) && open != nil {
				open(homeMenu[i].Screen)
			}
		},
	})
	return h
}

func (h *Home) Screen() input.Screen { return input.ScreenHome }

func (h *Home) Focus() focus.State { return h.focus.State() }

func (h *Home) Menu() []MenuEntry {
	return append([]MenuEntry(nil), homeMenu...)
}

func (h *Home) HandleAction(a input.Action) { h.focus.Handle(a) }

func (h *Home) Update(time.Time) {}
