package screen

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/focus"
	"github.com/appengine-ltd/forge-and-field/internal/forge"
	"github.com/appengine-ltd/forge-and-field/internal/input"
	"github.com/appengine-ltd/forge-and-field/internal/logger"
)

const (
	AreaInventory = "inventory"
	AreaPot       = "pot"
	AreaForge     = "forge"

	ToastDuration = 2500 * time.Millisecond
)

// Toast is a transient banner.
type Toast struct {
	Text  string
	Until time.Time
}

// Forge is the forging ritual: a filtered inventory, the pot and the forge
// button, top to bottom.
type Forge struct {
	ctx     context.Context
	env     Env
	smith   *forge.Smith
	types   []string
	query   catalog.Query
	items   []catalog.Item
	editing bool
	toast   Toast
	last    *forge.Outcome
	history []catalog.Change
	now     time.Time
	focus   *focus.Machine
}

// NewForge builds a forge whose pending commit is abandoned when ctx is
// cancelled. A known preload ID starts the pot with that item.
func NewForge(ctx context.Context, env Env, preload string) *Forge {
	f := &Forge{
		ctx:     ctx,
		env:     env,
		smith:   forge.NewSmith(env.Engine, env.ForgeDelay),
		types:   env.Dataset.Types(),
		query:   catalog.Query{Type: catalog.AllTypes},
		history: env.Journal.Changes(),
	}
	f.focus = focus.New(
		focus.Zone{
			Name:  AreaInventory,
			Count: func() int { return len(f.items) },
			Confirm: func(i int) {
				if i < len(f.items) {
					f.smith.Pot().Add(f.items[i])
				}
			},
		},
		focus.Zone{
			Name:    AreaPot,
			Count:   func() int { return forge.PotCapacity },
			Confirm: func(i int) { f.smith.Pot().Remove(i) },
			Back:    func(i int) { f.smith.Pot().Remove(i) },
		},
		focus.Zone{
			Name:    AreaForge,
			Count:   func() int { return 1 },
			Confirm: func(int) { f.Commit() },
		},
	)
	if preload != "" {
		if it, ok := env.Dataset.Item(preload); ok {
			f.smith.Pot().Preload(it)
		}
	}
	f.refilter()
	return f
}

func (f *Forge) Screen() input.Screen { return input.ScreenForge }

func (f *Forge) Focus() focus.State { return f.focus.State() }

func (f *Forge) Pot() *forge.Pot { return f.smith.Pot() }

func (f *Forge) Items() []catalog.Item { return slices.Clone(f.items) }

func (f *Forge) Query() catalog.Query { return f.query }

func (f *Forge) Preview() (catalog.Item, bool) { return f.smith.Preview() }

func (f *Forge) Hints() []forge.Hint { return f.smith.Hints() }

// History lists journaled changes, newest first.
func (f *Forge) History() []catalog.Change { return slices.Clone(f.history) }

// Last is the most recent outcome of this forge, if any.
func (f *Forge) Last() (forge.Outcome, bool) {
	if f.last == nil {
		return forge.Outcome{}, false
	}
	return *f.last, true
}

// Toast returns the banner text while it is showing.
func (f *Forge) Toast() (string, bool) {
	if f.toast.Text == "" || !f.now.Before(f.toast.Until) {
		return "", false
	}
	return f.toast.Text, true
}

// Editing reports whether the search box has the keyboard.
func (f *Forge) Editing() bool { return f.editing }

func (f *Forge) FocusSearch() { f.editing = true }

func (f *Forge) BlurSearch() { f.editing = false }

// SetSearch refilters the inventory; the focus index is clamped to the
// shorter list.
func (f *Forge) SetSearch(text string) {
	f.query.Text = text
	f.refilter()
	f.focus.Clamp()
}

// CycleType steps the type filter through "all" and each item type.
// Focus returns to the first inventory item.
func (f *Forge) CycleType(step int) {
	f.query.Type = catalog.CycleType(f.query.Type, f.types, step)
	f.refilter()
	f.focus.Focus(AreaInventory)
}

// Commit starts a forge of the pot. It reports false when the pot cannot
// forge or a forge is already running.
func (f *Forge) Commit() bool {
	return f.smith.Commit(f.ctx)
}

func (f *Forge) HandleAction(a input.Action) { f.focus.Handle(a) }

func (f *Forge) HandleKey(ev input.KeyEvent) bool {
	switch ev.Name() {
	case "/":
		f.FocusSearch()
	case "t":
		f.CycleType(1)
	default:
		return false
	}
	return true
}

// Update applies a finished forge: the variant is journaled and a newly
// discovered recipe raises a toast.
func (f *Forge) Update(now time.Time) {
	f.now = now
	out, ok := f.smith.Poll(f.ctx)
	if !ok {
		return
	}
	f.last = &out
	change, entry := f.env.Journal.RecordForge(out.Result, out.Base().ID, f.env.Dataset.LastYear())
	f.history = append([]catalog.Change{change}, f.history...)
	logger.Log.WithFields(logrus.Fields{
		"screen":  input.ScreenForge.String(),
		"variant": out.Result.Name,
		"change":  change.ID,
		"year":    entry.Year,
	}).Info("forged variant")
	if out.Discovered {
		f.toast = Toast{
			Text:  fmt.Sprintf("Recipe discovered: %s", out.Recipe.VariantName(out.Base().Name)),
			Until: now.Add(ToastDuration),
		}
	}
}

func (f *Forge) refilter() {
	f.items = catalog.Filter(f.env.Dataset.Items, f.query)
}
