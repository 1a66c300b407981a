package screen

import (
	"slices"
	"time"

	"github.com/appengine-ltd/forge-and-field/internal/catalog"
	"github.com/appengine-ltd/forge-and-field/internal/focus"
	"github.com/appengine-ltd/forge-and-field/internal/input"
	"github.com/appengine-ltd/forge-and-field/internal/questmap"
)

const (
	AreaBoard = "board"
	AreaMap   = "map"
)

// Quests pairs the quest board with the selected quest's map. While the
// map is focused Left/Right step through its stages.
type Quests struct {
	env      Env
	requests []catalog.Request
	selected int
	active   int
	focus    *focus.Machine
}

func NewQuests(env Env) *Quests {
	q := &Quests{env: env, requests: env.Dataset.Requests}
	q.focus = focus.New(
		focus.Zone{
			Name:    AreaBoard,
			Count:   func() int { return len(q.requests) },
			Confirm: q.Select,
		},
		focus.Zone{
			Name:  AreaMap,
			Count: func() int { return 1 },
		},
	)
	q.Select(0)
	return q
}

func (q *Quests) Screen() input.Screen { return input.ScreenQuests }

func (q *Quests) Focus() focus.State { return q.focus.State() }

func (q *Quests) Requests() []catalog.Request { return slices.Clone(q.requests) }

// Select makes quest i current and moves its map to the next open stage.
func (q *Quests) Select(i int) {
	if i < 0 || i >= len(q.requests) {
		return
	}
	q.selected = i
	q.active = questmap.NextStage(q.Progress())
}

func (q *Quests) Selected() (catalog.Request, bool) {
	if q.selected >= len(q.requests) {
		return catalog.Request{}, false
	}
	return q.requests[q.selected], true
}

func (q *Quests) SelectedIndex() int { return q.selected }

// Progress is the number of completed stages of the selected quest.
func (q *Quests) Progress() int {
	r, ok := q.Selected()
	if !ok {
		return 0
	}
	return questmap.Progress(r.Status)
}

// ActiveStage is the stage shown in the brief panel.
func (q *Quests) ActiveStage() int { return q.active }

func (q *Quests) StageState(stage int) questmap.StageState {
	return questmap.StateOf(stage, q.Progress())
}

// Layout places the selected quest's stages in a width x height map.
func (q *Quests) Layout(width, height float64) questmap.Layout {
	r, _ := q.Selected()
	return questmap.Generate(questmap.Key(r.ID, r.Title), width, height)
}

// Brief describes the active stage for the selected quest's linked item.
func (q *Quests) Brief() questmap.Brief {
	r, _ := q.Selected()
	return questmap.BriefFor(q.active, q.env.Dataset.ItemName(r.LinkedItem))
}

func (q *Quests) HandleAction(a input.Action) {
	if q.focus.Area() == AreaMap {
		switch a {
		case input.ActionLeft:
			q.active = max(0, q.active-1)
			return
		case input.ActionRight:
			q.active = min(questmap.StageCount-1, q.active+1)
			return
		}
	}
	q.focus.Handle(a)
}

func (q *Quests) Update(time.Time) {}
