package input

import "fmt"

// Gamepad is a polled controller. Buttons returns the pressed state of every
// button on the first connected pad, keyed by standard-layout index, and
// false when no pad is connected.
type Gamepad interface {
	Buttons() (map[int]bool, bool)
}

// GamepadFunc adapts a function to Gamepad.
type GamepadFunc func() (map[int]bool, bool)

func (f GamepadFunc) Buttons() (map[int]bool, bool) { return f() }

// Standard gamepad layout indices the poller understands.
const (
	ButtonA     = 0
	ButtonB     = 1
	ButtonL     = 4
	ButtonR     = 5
	ButtonZR    = 7
	ButtonStart = 9
	ButtonUp    = 12
	ButtonDown  = 13
	ButtonLeft  = 14
	ButtonRight = 15
	ButtonCount = 17
)

// ButtonTable maps standard-layout button indices to actions.
var ButtonTable = map[int]Action{
	ButtonStart: ActionSystem,
	ButtonL:     ActionInventory,
	ButtonR:     ActionQuests,
	ButtonZR:    ActionForge,
	ButtonA:     ActionConfirm,
	ButtonB:     ActionBack,
	ButtonUp:    ActionUp,
	ButtonDown:  ActionDown,
	ButtonLeft:  ActionLeft,
	ButtonRight: ActionRight,
}

var buttonNames = map[int]string{
	ButtonA:     "A",
	ButtonB:     "B",
	ButtonL:     "L",
	ButtonR:     "R",
	ButtonZR:    "ZR",
	ButtonStart: "Start",
	ButtonUp:    "D-Pad Up",
	ButtonDown:  "D-Pad Down",
	ButtonLeft:  "D-Pad Left",
	ButtonRight: "D-Pad Right",
}

// ButtonName is the printed label of a standard-layout button.
func ButtonName(idx int) string {
	if name, ok := buttonNames[idx]; ok {
		return name
	}
	return fmt.Sprintf("Button %d", idx)
}

// ButtonFor returns the button bound to a.
func ButtonFor(a Action) (int, bool) {
	for idx, bound := range ButtonTable {
		if bound == a {
			return idx, true
		}
	}
	return 0, false
}

// Poller samples a Gamepad once per frame and reports press edges as
// actions to a single subscriber.
type Poller struct {
	pad      Gamepad
	frames   FrameScheduler
	table    map[int]Action
	edges    *EdgeDetector[int]
	onAction func(Action)
	frame    FrameID
	running  bool
}

func NewPoller(pad Gamepad, frames FrameScheduler) *Poller {
	return &Poller{
		pad:    pad,
		frames: frames,
		table:  ButtonTable,
		edges:  NewEdgeDetector[int](),
	}
}

// Start subscribes onAction and begins sampling on the next frame. A second
// Start replaces the subscriber.
func (p *Poller) Start(onAction func(Action)) {
	p.onAction = onAction
	if p.running {
		return
	}
	p.running = true
	p.frame = p.frames.RequestFrame(p.tick)
}

// Stop cancels the pending frame. No callback runs after Stop returns,
// including from a Stop issued inside the callback itself.
func (p *Poller) Stop() {
	if !p.running {
		return
	}
	p.running = false
	p.frames.CancelFrame(p.frame)
	p.onAction = nil
}

func (p *Poller) Running() bool {
	return p.running
}

func (p *Poller) tick() {
	if !p.running {
		return
	}
	if p.pad != nil {
		buttons, ok := p.pad.Buttons()
		if !ok {
			// A release while unplugged is never seen.
			p.edges.Reset()
		} else {
			for _, idx := range p.edges.Update(buttons) {
				action, mapped := p.table[idx]
				if !mapped {
					continue
				}
				if !p.running {
					return
				}
				p.onAction(action)
			}
		}
	}
	if p.running {
		p.frame = p.frames.RequestFrame(p.tick)
	}
}
