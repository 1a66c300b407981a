// Package focus tracks the highlighted element of a screen as an area and
// an index into that area, driven by directional and confirm/back actions.
package focus

import "github.com/appengine-ltd/forge-and-field/internal/input"

// Zone is one focusable region of a screen. Count is read on every
// transition so the zone follows its collection as it changes.
type Zone struct {
	Name string
	// Count returns the number of focusable elements.
	Count func() int
	// Columns > 0 makes the zone a grid: all four directions move within it
	// and Up/Down no longer leave it.
	Columns int
	Confirm func(index int)
	Back    func(index int)
}

func (z Zone) count() int {
	if z.Count == nil {
		return 0
	}
	return max(0, z.Count())
}

// State is the externally visible focus.
type State struct {
	Area  string
	Index int
}

func (s State) Is(area string, index int) bool {
	return s.Area == area && s.Index == index
}

// Machine is a screen's focus. Zones are listed in their Down order; Up
// walks the same cycle backwards.
type Machine struct {
	zones []Zone
	area  int
	index int
}

func New(zones ...Zone) *Machine {
	return &Machine{zones: zones}
}

func (m *Machine) State() State {
	if len(m.zones) == 0 {
		return State{}
	}
	return State{Area: m.zones[m.area].Name, Index: m.index}
}

func (m *Machine) Area() string { return m.State().Area }

func (m *Machine) Index() int { return m.index }

// Is reports whether element index of area is focused.
func (m *Machine) Is(area string, index int) bool {
	return m.State().Is(area, index)
}

// Handle applies one local action and reports whether it was consumed.
func (m *Machine) Handle(a input.Action) bool {
	if len(m.zones) == 0 {
		return false
	}
	zone := m.zones[m.area]
	m.index = clampInt(m.index, 0, max(0, zone.count()-1))
	switch a {
	case input.ActionLeft, input.ActionRight, input.ActionUp, input.ActionDown:
		if zone.Columns > 0 {
			m.moveGrid(zone, a)
			return true
		}
		switch a {
		case input.ActionLeft:
			m.index = max(0, m.index-1)
		case input.ActionRight:
			m.index = min(max(0, zone.count()-1), m.index+1)
		case input.ActionDown:
			m.cycle(1)
		case input.ActionUp:
			m.cycle(-1)
		}
		return true
	case input.ActionConfirm:
		if zone.Confirm != nil {
			zone.Confirm(m.index)
		}
		return true
	case input.ActionBack:
		if zone.Back != nil {
			zone.Back(m.index)
		}
		return true
	}
	return false
}

func (m *Machine) cycle(step int) {
	n := len(m.zones)
	m.area = ((m.area+step)%n + n) % n
	m.index = 0
}

// moveGrid moves over rows of Columns cells. A target past the last element
// lands on the last element.
func (m *Machine) moveGrid(zone Zone, a input.Action) {
	count := zone.count()
	if count == 0 {
		m.index = 0
		return
	}
	cols := zone.Columns
	rows := (count + cols - 1) / cols
	dx, dy := 0, 0
	switch a {
	case input.ActionLeft:
		dx = -1
	case input.ActionRight:
		dx = 1
	case input.ActionUp:
		dy = -1
	case input.ActionDown:
		dy = 1
	}
	x := clampInt(m.index%cols+dx, 0, cols-1)
	y := clampInt(m.index/cols+dy, 0, rows-1)
	next := y*cols + x
	if next >= count {
		next = count - 1
	}
	m.index = next
}

// Clamp pulls the index back inside the current zone after its collection
// shrank.
func (m *Machine) Clamp() {
	if len(m.zones) == 0 {
		return
	}
	m.index = clampInt(m.index, 0, max(0, m.zones[m.area].count()-1))
}

// Reset moves the index to the first element of the current zone.
func (m *Machine) Reset() {
	m.index = 0
}

// Focus jumps to the named zone with index 0. Unknown names are ignored.
func (m *Machine) Focus(area string) {
	for i, z := range m.zones {
		if z.Name == area {
			m.area = i
			m.index = 0
			return
		}
	}
}

// Select moves the index within the current zone, clamped.
func (m *Machine) Select(index int) {
	if len(m.zones) == 0 {
		return
	}
	m.index = clampInt(index, 0, max(0, m.zones[m.area].count()-1))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
