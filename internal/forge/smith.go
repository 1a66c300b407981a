package forge

import (
	"context"
	"time"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
)

// DefaultDelay is how long a forge takes.
const DefaultDelay = 1200 * time.Millisecond

// Outcome is a finished forge.
type Outcome struct {
	Inputs     []catalog.Item
	Result     catalog.Item
	Recipe     Rule
	Discovered bool
}

// Base is the item the variant was forged from.
func (o Outcome) Base() catalog.Item {
	if len(o.Inputs) == 0 {
		return catalog.Item{}
	}
	return o.Inputs[0]
}

// Smith runs forges for one pot. Commit waits off the caller's goroutine;
// the finished outcome is handed back through Poll so the pot is only ever
// touched by the goroutine that owns it.
type Smith struct {
	engine  Engine
	delay   time.Duration
	pot     *Pot
	results chan Outcome
}

func NewSmith(engine Engine, delay time.Duration) *Smith {
	return &Smith{
		engine:  engine,
		delay:   max(0, delay),
		pot:     &Pot{},
		results: make(chan Outcome, 1),
	}
}

func (s *Smith) Pot() *Pot { return s.pot }

func (s *Smith) Engine() Engine { return s.engine }

// Preview is what the pot would forge into right now.
func (s *Smith) Preview() (catalog.Item, bool) {
	if s.pot.Len() < MinForgeItems {
		return catalog.Item{}, false
	}
	return s.engine.CombineItems(s.pot.items)
}

// Hint is a recipe the current pot satisfies.
type Hint struct {
	RuleID string
	Name   string
	Notes  string
}

// MaxHints caps Hints.
const MaxHints = 4

// Hints lists the recipes the pot's contents already satisfy.
func (s *Smith) Hints() []Hint {
	if s.pot.Len() == 0 {
		return nil
	}
	base := s.pot.items[0]
	var out []Hint
	for _, r := range s.engine.Match(base, s.pot.items[1:]) {
		if len(out) == MaxHints {
			break
		}
		out = append(out, Hint{RuleID: r.ID, Name: r.VariantName(base.Name), Notes: r.Notes})
	}
	return out
}

// Commit starts forging a snapshot of the pot. It reports false when the pot
// holds too few items or a forge is already running. Cancelling ctx
// abandons the forge.
func (s *Smith) Commit(ctx context.Context) bool {
	items, ok := s.pot.begin()
	if !ok {
		return false
	}
	go s.run(ctx, items)
	return true
}

func (s *Smith) run(ctx context.Context, items []catalog.Item) {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	out := Outcome{Inputs: items}
	out.Result, _ = s.engine.CombineItems(items)
	out.Recipe, out.Discovered = s.engine.Discover(items[0], items[1:])
	select {
	case s.results <- out:
	case <-ctx.Done():
	}
}

// resultsChan delivers finished forges to tests that want to block.
func (s *Smith) resultsChan() <-chan Outcome {
	return s.results
}

// Poll applies a finished forge if one is waiting.
func (s *Smith) Poll(ctx context.Context) (Outcome, bool) {
	select {
	case out := <-s.results:
		return out, s.Apply(ctx, out)
	default:
		return Outcome{}, false
	}
}

// Apply empties the pot and records out as its result, unless ctx has been
// cancelled.
func (s *Smith) Apply(ctx context.Context, out Outcome) bool {
	if ctx.Err() != nil {
		return false
	}
	s.pot.finish(out.Result)
	return true
}
