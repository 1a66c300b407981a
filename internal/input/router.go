package input

// Screen is a top-level destination reachable by a global action.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenInventory
	ScreenQuests
	ScreenForge
	ScreenLog
)

var screenNames = [...]string{
	ScreenHome:      "home",
	ScreenInventory: "inventory",
	ScreenQuests:    "quests",
	ScreenForge:     "forge",
	ScreenLog:       "log",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// Screens lists every destination in menu order.
func Screens() []Screen {
	return []Screen{ScreenHome, ScreenInventory, ScreenQuests, ScreenForge, ScreenLog}
}

// ScreenFor returns the destination of a global action.
func ScreenFor(a Action) (Screen, bool) {
	switch a {
	case ActionSystem:
		return ScreenHome, true
	case ActionInventory:
		return ScreenInventory, true
	case ActionQuests:
		return ScreenQuests, true
	case ActionForge:
		return ScreenForge, true
	case ActionLog:
		return ScreenLog, true
	default:
		return ScreenHome, false
	}
}

// Navigator owns the active screen.
type Navigator interface {
	Current() Screen
	Navigate(to Screen)
}

// Handler consumes local actions for the active screen.
type Handler interface {
	HandleAction(a Action)
}

// KeyHandler is implemented by screens that bind keys outside KeyTable.
type KeyHandler interface {
	HandleKey(ev KeyEvent) bool
}

// Editor is implemented by screens with a text field. While Editing is true
// the router leaves key events to the field.
type Editor interface {
	Editing() bool
}

// Router merges keyboard and gamepad input into one action stream. Global
// actions navigate; everything else goes to the attached screen.
type Router struct {
	nav     Navigator
	handler Handler
	attach  uint64
	poller  *Poller
}

func NewRouter(nav Navigator) *Router {
	return &Router{nav: nav}
}

// Attach makes h the receiver of local actions and returns a func that
// detaches it. A stale detach does not remove a newer handler.
func (r *Router) Attach(h Handler) (detach func()) {
	r.attach++
	id := r.attach
	r.handler = h
	return func() {
		if r.attach == id {
			r.handler = nil
		}
	}
}

// Listen subscribes the router to p and starts it.
func (r *Router) Listen(p *Poller) {
	if r.poller != nil && r.poller != p {
		r.poller.Stop()
	}
	r.poller = p
	p.Start(r.Dispatch)
}

// Close stops the gamepad subscription.
func (r *Router) Close() {
	if r.poller != nil {
		r.poller.Stop()
		r.poller = nil
	}
}

// HandleKey routes a key-down and reports whether it was consumed. Keys are
// not consumed while the attached screen is editing text, so the frontend
// can pass them to its text field. Auto-repeats are swallowed.
func (r *Router) HandleKey(ev KeyEvent) bool {
	if ed, ok := r.handler.(Editor); ok && ed.Editing() {
		return false
	}
	if ev.Repeat {
		return true
	}
	if a, ok := KeyAction(ev); ok {
		r.Dispatch(a)
		return true
	}
	if kh, ok := r.handler.(KeyHandler); ok {
		return kh.HandleKey(ev)
	}
	return false
}

// Dispatch routes one action. Global actions navigate only when the target
// differs from the current screen.
func (r *Router) Dispatch(a Action) {
	if a.IsGlobal() {
		to, _ := ScreenFor(a)
		if r.nav.Current() != to {
			r.nav.Navigate(to)
		}
		return
	}
	if a == ActionNone || r.handler == nil {
		return
	}
	r.handler.HandleAction(a)
}
